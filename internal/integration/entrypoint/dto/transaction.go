package dto

import (
	"net/url"
	"time"

	"github.com/budgeteur/backend/internal/application/analytics"
	"github.com/budgeteur/backend/internal/application/usecase/transaction"
	"github.com/budgeteur/backend/internal/domain/entity"
	"github.com/budgeteur/backend/internal/domain/valueobject"
)

// TransactionsViewPath is the route of the grouped transactions view.
const TransactionsViewPath = "/api/v1/transactions/view"

// TransactionsViewResponse represents the grouped transactions of one range.
type TransactionsViewResponse struct {
	Range            string                  `json:"range"`
	Interval         string                  `json:"interval"`
	Anchor           string                  `json:"anchor"`
	Period           DateRangeResponse       `json:"period"`
	Navigation       RangeNavigationResponse `json:"navigation"`
	RangeOptions     []RangeOptionResponse   `json:"range_options"`
	Intervals        []IntervalResponse      `json:"intervals"`
	Summary          CategorySummaryResponse `json:"summary"`
	Tags             []TagResponse           `json:"tags"`
	ExcludedTagIDs   []int64                 `json:"excluded_tag_ids"`
	TransactionCount int                     `json:"transaction_count"`
	EmptyState       string                  `json:"empty_state,omitempty"`
	EmptyMessage     string                  `json:"empty_message,omitempty"`
}

// RangeNavigationResponse holds the previous, next and latest range links.
type RangeNavigationResponse struct {
	Previous *RangeLinkResponse `json:"previous"`
	Next     *RangeLinkResponse `json:"next"`
	Latest   *RangeLinkResponse `json:"latest"`
}

// RangeLinkResponse is a link to another range.
type RangeLinkResponse struct {
	Anchor string `json:"anchor"`
	Label  string `json:"label"`
	URL    string `json:"url"`
}

// RangeOptionResponse is one selectable range preset.
type RangeOptionResponse struct {
	Value    string `json:"value"`
	Label    string `json:"label"`
	Disabled bool   `json:"disabled"`
}

// IntervalResponse is one grouped interval.
type IntervalResponse struct {
	Period              DateRangeResponse        `json:"period"`
	Income              float64                  `json:"income"`
	Expenses            float64                  `json:"expenses"`
	Net                 float64                  `json:"net"`
	TransactionCount    int                      `json:"transaction_count"`
	Days                []DayGroupResponse       `json:"days"`
	Summary             *CategorySummaryResponse `json:"summary,omitempty"`
	SummaryEmptyMessage string                   `json:"summary_empty_message,omitempty"`
}

// DayGroupResponse holds the transactions of one day.
type DayGroupResponse struct {
	Date         string                `json:"date"`
	Transactions []TransactionResponse `json:"transactions"`
}

// TransactionResponse represents a transaction row.
type TransactionResponse struct {
	ID          int64   `json:"id"`
	Date        string  `json:"date"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	TagID       *int64  `json:"tag_id"`
	TagName     string  `json:"tag_name"`
	IsExcluded  bool    `json:"is_excluded"`
}

// CategorySummaryResponse splits totals by tag.
type CategorySummaryResponse struct {
	Income       []CategoryTotalResponse `json:"income"`
	Expenses     []CategoryTotalResponse `json:"expenses"`
	IncomeTotal  float64                 `json:"income_total"`
	ExpenseTotal float64                 `json:"expense_total"`
}

// CategoryTotalResponse is one tag's share of a pool.
type CategoryTotalResponse struct {
	TagID            *int64  `json:"tag_id"`
	Label            string  `json:"label"`
	Amount           float64 `json:"amount"`
	Percent          int64   `json:"percent"`
	TransactionCount int     `json:"transaction_count"`
	IsOther          bool    `json:"is_other"`
}

// RangeOptionsResponse lists the range presets for an interval.
type RangeOptionsResponse struct {
	Interval string                `json:"interval"`
	Options  []RangeOptionResponse `json:"options"`
}

// ViewURL builds the canonical transactions view URL.
func ViewURL(r valueobject.RangePreset, i valueobject.IntervalPreset, anchor time.Time, withSummary bool) string {
	q := url.Values{}
	q.Set("range", string(r))
	q.Set("interval", string(i))
	q.Set("anchor", formatDate(anchor))
	if withSummary {
		q.Set("summary", "true")
	}
	return TransactionsViewPath + "?" + q.Encode()
}

// ToTransactionsViewResponse converts the view use case output to its response DTO.
func ToTransactionsViewResponse(output *transaction.GetTransactionsViewOutput, withSummary bool) TransactionsViewResponse {
	state := output.Navigation
	exclusions := valueobject.NewExclusionSet(output.ExcludedTagIDs...)

	link := func(l *transaction.RangeLink) *RangeLinkResponse {
		if l == nil {
			return nil
		}
		return &RangeLinkResponse{
			Anchor: formatDate(l.Anchor),
			Label:  l.Label(),
			URL:    ViewURL(state.Range, state.Interval, l.Anchor, withSummary),
		}
	}

	intervals := make([]IntervalResponse, 0, len(output.Intervals))
	for _, view := range output.Intervals {
		item := IntervalResponse{
			Period:              toDateRangeResponse(view.Interval.Bounds),
			Income:              toAmount(view.Interval.Income),
			Expenses:            toAmount(view.Interval.Expenses),
			Net:                 toAmount(view.Interval.Net()),
			TransactionCount:    view.Interval.TransactionCount(),
			Days:                toDayGroupResponses(view.Interval.Days, exclusions),
			SummaryEmptyMessage: view.SummaryEmpty.Message(),
		}
		if view.Summary != nil {
			summary := ToCategorySummaryResponse(*view.Summary)
			item.Summary = &summary
		}
		intervals = append(intervals, item)
	}

	return TransactionsViewResponse{
		Range:    string(state.Range),
		Interval: string(state.Interval),
		Anchor:   formatDate(state.Anchor),
		Period:   toDateRangeResponse(state.DateRange),
		Navigation: RangeNavigationResponse{
			Previous: link(output.RangeNavigation.Previous),
			Next:     link(output.RangeNavigation.Next),
			Latest:   link(output.RangeNavigation.Latest),
		},
		RangeOptions:     ToRangeOptionResponses(output.RangeOptions),
		Intervals:        intervals,
		Summary:          ToCategorySummaryResponse(output.Summary),
		Tags:             ToTagResponses(output.Tags),
		ExcludedTagIDs:   output.ExcludedTagIDs,
		TransactionCount: output.TransactionCount,
		EmptyState:       string(output.EmptyState),
		EmptyMessage:     output.EmptyState.Message(),
	}
}

// ToRangeOptionResponses converts range options to their response DTOs.
func ToRangeOptionResponses(options []valueobject.RangeOption) []RangeOptionResponse {
	result := make([]RangeOptionResponse, len(options))
	for i, o := range options {
		result[i] = RangeOptionResponse{
			Value:    string(o.Preset),
			Label:    o.Preset.Label(),
			Disabled: o.Disabled,
		}
	}
	return result
}

// ToCategorySummaryResponse converts a category summary to its response DTO.
func ToCategorySummaryResponse(summary analytics.CategorySummary) CategorySummaryResponse {
	return CategorySummaryResponse{
		Income:       toCategoryTotalResponses(summary.Income),
		Expenses:     toCategoryTotalResponses(summary.Expenses),
		IncomeTotal:  toAmount(summary.IncomeTotal),
		ExpenseTotal: toAmount(summary.ExpenseTotal),
	}
}

func toCategoryTotalResponses(totals []analytics.CategoryTotal) []CategoryTotalResponse {
	result := make([]CategoryTotalResponse, len(totals))
	for i, total := range totals {
		result[i] = CategoryTotalResponse{
			TagID:            total.TagID,
			Label:            total.Label,
			Amount:           toAmount(total.Amount),
			Percent:          total.Percent,
			TransactionCount: total.TransactionCount,
			IsOther:          total.IsOther(),
		}
	}
	return result
}

func toDayGroupResponses(days []analytics.DayGroup, exclusions valueobject.ExclusionSet) []DayGroupResponse {
	result := make([]DayGroupResponse, len(days))
	for i, day := range days {
		rows := make([]TransactionResponse, len(day.Transactions))
		for j, tx := range day.Transactions {
			rows[j] = toTransactionResponse(tx, exclusions)
		}
		result[i] = DayGroupResponse{Date: formatDate(day.Date), Transactions: rows}
	}
	return result
}

func toTransactionResponse(tx *entity.Transaction, exclusions valueobject.ExclusionSet) TransactionResponse {
	return TransactionResponse{
		ID:          tx.ID,
		Date:        formatDate(tx.Date),
		Description: tx.Description,
		Amount:      toAmount(tx.Amount),
		TagID:       tx.TagID,
		TagName:     tx.TagLabel(),
		IsExcluded:  exclusions.Excludes(tx.TagID),
	}
}
