package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/budgeteur/backend/internal/application/usecase/preference"
	domainerror "github.com/budgeteur/backend/internal/domain/error"
	"github.com/budgeteur/backend/internal/integration/entrypoint/dto"
)

// PreferenceController handles tag listing and excluded tag preferences.
type PreferenceController struct {
	getExcludedTagsUseCase    *preference.GetExcludedTagsUseCase
	updateExcludedTagsUseCase *preference.UpdateExcludedTagsUseCase
}

// NewPreferenceController creates a new preference controller instance.
func NewPreferenceController(
	getExcludedTagsUseCase *preference.GetExcludedTagsUseCase,
	updateExcludedTagsUseCase *preference.UpdateExcludedTagsUseCase,
) *PreferenceController {
	return &PreferenceController{
		getExcludedTagsUseCase:    getExcludedTagsUseCase,
		updateExcludedTagsUseCase: updateExcludedTagsUseCase,
	}
}

// ListTags handles GET /tags requests.
func (c *PreferenceController) ListTags(ctx *gin.Context) {
	output, err := c.getExcludedTagsUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleTagError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTagResponses(output.Tags))
}

// GetExcludedTags handles GET /preferences/excluded-tags requests.
func (c *PreferenceController) GetExcludedTags(ctx *gin.Context) {
	output, err := c.getExcludedTagsUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleTagError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExcludedTagsResponse(output))
}

// UpdateExcludedTags handles PUT /preferences/excluded-tags requests.
// The body replaces the whole excluded set; an empty list clears it.
func (c *PreferenceController) UpdateExcludedTags(ctx *gin.Context) {
	var req dto.UpdateExcludedTagsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Code:    string(domainerror.ErrCodeInvalidRequest),
			Details: err.Error(),
		})
		return
	}

	output, err := c.updateExcludedTagsUseCase.Execute(ctx.Request.Context(), preference.UpdateExcludedTagsInput{
		TagIDs: req.TagIDs,
	})
	if err != nil {
		c.handleTagError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExcludedTagsResponse(output))
}

// handleTagError handles tag errors and returns appropriate HTTP responses.
func (c *PreferenceController) handleTagError(ctx *gin.Context, err error) {
	var tagErr *domainerror.TagError
	if errors.As(err, &tagErr) {
		statusCode := c.getStatusCodeForTagError(tagErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: tagErr.Message,
			Code:  string(tagErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForTagError maps tag error codes to HTTP status codes.
func (c *PreferenceController) getStatusCodeForTagError(code domainerror.TagErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidTagID:
		return http.StatusBadRequest
	case domainerror.ErrCodeTagNotFound:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
