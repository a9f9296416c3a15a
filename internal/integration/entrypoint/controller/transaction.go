// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/budgeteur/backend/internal/application/usecase/transaction"
	domainerror "github.com/budgeteur/backend/internal/domain/error"
	"github.com/budgeteur/backend/internal/domain/valueobject"
	"github.com/budgeteur/backend/internal/integration/entrypoint/dto"
)

// TransactionController handles the grouped transactions view.
type TransactionController struct {
	getTransactionsViewUseCase *transaction.GetTransactionsViewUseCase
	defaultRange               valueobject.RangePreset
	defaultInterval            valueobject.IntervalPreset
}

// NewTransactionController creates a new transaction controller instance.
// The defaults apply when a request omits range or interval.
func NewTransactionController(
	getTransactionsViewUseCase *transaction.GetTransactionsViewUseCase,
	defaultRange valueobject.RangePreset,
	defaultInterval valueobject.IntervalPreset,
) *TransactionController {
	if !defaultRange.IsValid() {
		defaultRange = valueobject.DefaultRangePreset
	}
	if !defaultInterval.IsValid() {
		defaultInterval = valueobject.DefaultIntervalPreset
	}
	return &TransactionController{
		getTransactionsViewUseCase: getTransactionsViewUseCase,
		defaultRange:               defaultRange,
		defaultInterval:            defaultInterval,
	}
}

// GetView handles GET /transactions/view requests.
// Query: range, interval, anchor (YYYY-MM-DD), summary (bool).
// A range too small for the interval redirects to the corrected URL.
func (c *TransactionController) GetView(ctx *gin.Context) {
	rangePreset, intervalPreset, ok := c.parsePresets(ctx)
	if !ok {
		return
	}

	input := transaction.GetTransactionsViewInput{
		Range:    rangePreset,
		Interval: intervalPreset,
	}

	if anchorStr := ctx.Query("anchor"); anchorStr != "" {
		anchor, err := valueobject.ParseDate(anchorStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid anchor format. Use YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeInvalidAnchor),
			})
			return
		}
		input.Anchor = &anchor
	}

	if summaryStr := ctx.Query("summary"); summaryStr != "" {
		withSummary, err := strconv.ParseBool(summaryStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "summary must be true or false",
				Code:  string(domainerror.ErrCodeInvalidRequest),
			})
			return
		}
		input.WithSummary = withSummary
	}

	output, err := c.getTransactionsViewUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	if output.Navigation.Corrected {
		state := output.Navigation
		ctx.Redirect(http.StatusFound, dto.ViewURL(state.Range, state.Interval, state.Anchor, input.WithSummary))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionsViewResponse(output, input.WithSummary))
}

// GetRangeOptions handles GET /transactions/range-options requests.
func (c *TransactionController) GetRangeOptions(ctx *gin.Context) {
	intervalPreset, err := c.parseInterval(ctx.Query("interval"))
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.RangeOptionsResponse{
		Interval: string(intervalPreset),
		Options:  dto.ToRangeOptionResponses(valueobject.RangeOptions(intervalPreset)),
	})
}

func (c *TransactionController) parsePresets(ctx *gin.Context) (valueobject.RangePreset, valueobject.IntervalPreset, bool) {
	rangePreset := c.defaultRange
	if s := ctx.Query("range"); s != "" {
		p, err := valueobject.ParseRangePreset(s)
		if err != nil {
			c.handleTransactionError(ctx, err)
			return "", "", false
		}
		rangePreset = p
	}

	intervalPreset, err := c.parseInterval(ctx.Query("interval"))
	if err != nil {
		c.handleTransactionError(ctx, err)
		return "", "", false
	}
	return rangePreset, intervalPreset, true
}

func (c *TransactionController) parseInterval(s string) (valueobject.IntervalPreset, error) {
	if s == "" {
		return c.defaultInterval, nil
	}
	return valueobject.ParseIntervalPreset(s)
}

// handleTransactionError handles navigation and transaction errors and returns appropriate HTTP responses.
func (c *TransactionController) handleTransactionError(ctx *gin.Context, err error) {
	var navErr *domainerror.NavigationError
	if errors.As(err, &navErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: navErr.Message,
			Code:  string(navErr.Code),
		})
		return
	}

	var txErr *domainerror.TransactionError
	if errors.As(err, &txErr) {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: txErr.Message,
			Code:  string(txErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
