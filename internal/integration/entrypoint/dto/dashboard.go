package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/budgeteur/backend/internal/application/analytics"
	"github.com/budgeteur/backend/internal/application/usecase/dashboard"
	"github.com/budgeteur/backend/internal/domain/valueobject"
)

// DashboardResponse represents the monthly dashboard.
type DashboardResponse struct {
	TargetMonth      string                     `json:"target_month"`
	TargetMonthLabel string                     `json:"target_month_label"`
	Window           DateRangeResponse          `json:"window"`
	HasData          bool                       `json:"has_data"`
	TagStatistics    []TagStatResponse          `json:"tag_statistics"`
	MonthlyBreakdown []MonthlyBreakdownResponse `json:"monthly_breakdown"`
	Summary          SummaryStatisticsResponse  `json:"summary_statistics"`
	ExpensesByTag    ExpenseSeriesChartResponse `json:"expenses_by_tag"`
	ExcludedTagIDs   []int64                    `json:"excluded_tag_ids"`
}

// TagStatResponse is one tag card.
type TagStatResponse struct {
	TagID                 *int64  `json:"tag_id"`
	TagName               string  `json:"tag_name"`
	IsOther               bool    `json:"is_other"`
	TargetAmount          float64 `json:"target_amount"`
	PercentOfTotal        float64 `json:"percent_of_total"`
	MonthlyAverage        float64 `json:"monthly_average"`
	PercentageChange      float64 `json:"percentage_change"`
	PercentageChangeLabel string  `json:"percentage_change_label"`
	AnnualDelta           float64 `json:"annual_delta"`
	HistoricalMonths      int     `json:"historical_months"`
	TotalMonths           int     `json:"total_months"`
	State                 string  `json:"state"`
	StateLabel            string  `json:"state_label"`
}

// MonthlyBreakdownResponse is one month's totals.
type MonthlyBreakdownResponse struct {
	Month     string  `json:"month"`
	Label     string  `json:"label"`
	Income    float64 `json:"income"`
	Expenses  float64 `json:"expenses"`
	NetIncome float64 `json:"net_income"`
}

// StatisticSetResponse holds a total with its averages.
type StatisticSetResponse struct {
	Total          float64 `json:"total"`
	MonthlyAverage float64 `json:"monthly_average"`
	WeeklyAverage  float64 `json:"weekly_average"`
}

// SummaryStatisticsResponse holds the window totals.
type SummaryStatisticsResponse struct {
	Income    StatisticSetResponse `json:"income"`
	Expenses  StatisticSetResponse `json:"expenses"`
	NetIncome StatisticSetResponse `json:"net_income"`
	Months    int                  `json:"months"`
}

// ExpenseSeriesChartResponse is the stacked expenses chart.
type ExpenseSeriesChartResponse struct {
	Labels []string            `json:"labels"`
	Series []TagSeriesResponse `json:"series"`
}

// TagSeriesResponse is one tag's monthly expenses; months without spend are null.
type TagSeriesResponse struct {
	TagID  *int64     `json:"tag_id"`
	Label  string     `json:"label"`
	Values []*float64 `json:"values"`
}

// DataRangeResponse describes the span of stored transactions.
type DataRangeResponse struct {
	OldestDate        *string `json:"oldest_date"`
	NewestDate        *string `json:"newest_date"`
	TotalTransactions int     `json:"total_transactions"`
	HasData           bool    `json:"has_data"`
}

// ToDashboardResponse converts the dashboard use case output to its response DTO.
func ToDashboardResponse(output *dashboard.GetDashboardOutput) DashboardResponse {
	stats := make([]TagStatResponse, len(output.TagStatistics))
	for i, s := range output.TagStatistics {
		stats[i] = toTagStatResponse(s)
	}

	breakdown := make([]MonthlyBreakdownResponse, len(output.MonthlyBreakdown))
	for i, m := range output.MonthlyBreakdown {
		breakdown[i] = MonthlyBreakdownResponse{
			Month:     m.Month.Format(dashboard.MonthLayout),
			Label:     dashboard.GenerateMonthLabel(m.Month),
			Income:    toAmount(m.Income),
			Expenses:  toAmount(m.Expenses),
			NetIncome: toAmount(m.NetIncome),
		}
	}

	series := make([]TagSeriesResponse, len(output.ExpenseSeries))
	for i, s := range output.ExpenseSeries {
		series[i] = TagSeriesResponse{
			TagID:  s.TagID,
			Label:  s.Label,
			Values: toOptionalAmounts(s.Values),
		}
	}

	return DashboardResponse{
		TargetMonth:      output.TargetMonth.Format(dashboard.MonthLayout),
		TargetMonthLabel: dashboard.GenerateMonthLabel(output.TargetMonth),
		Window:           toDateRangeResponse(output.Window),
		HasData:          output.HasData,
		TagStatistics:    stats,
		MonthlyBreakdown: breakdown,
		Summary: SummaryStatisticsResponse{
			Income:    toStatisticSetResponse(output.Summary.Income),
			Expenses:  toStatisticSetResponse(output.Summary.Expenses),
			NetIncome: toStatisticSetResponse(output.Summary.NetIncome),
			Months:    output.Summary.Months,
		},
		ExpensesByTag: ExpenseSeriesChartResponse{
			Labels: dashboard.GenerateMonthLabels(output.Months),
			Series: series,
		},
		ExcludedTagIDs: output.ExcludedTagIDs,
	}
}

// ToDataRangeResponse converts the data range use case output to its response DTO.
func ToDataRangeResponse(output *dashboard.GetDataRangeOutput) DataRangeResponse {
	return DataRangeResponse{
		OldestDate:        optionalDate(output.OldestDate),
		NewestDate:        optionalDate(output.NewestDate),
		TotalTransactions: output.TotalTransactions,
		HasData:           output.HasData,
	}
}

func toTagStatResponse(s analytics.TagStat) TagStatResponse {
	return TagStatResponse{
		TagID:                 s.TagID,
		TagName:               s.TagName,
		IsOther:               s.IsOther(),
		TargetAmount:          toAmount(s.TargetAmount),
		PercentOfTotal:        toAmount(s.PercentOfTotal),
		MonthlyAverage:        toAmount(s.MonthlyAverage),
		PercentageChange:      toAmount(s.PercentageChange),
		PercentageChangeLabel: valueobject.FormatPercentage(s.PercentageChange),
		AnnualDelta:           toAmount(s.AnnualDelta),
		HistoricalMonths:      s.HistoricalMonths,
		TotalMonths:           s.TotalMonths,
		State:                 string(s.State),
		StateLabel:            s.State.Label(),
	}
}

func toStatisticSetResponse(s analytics.StatisticSet) StatisticSetResponse {
	return StatisticSetResponse{
		Total:          toAmount(s.Total),
		MonthlyAverage: toAmount(s.MonthlyAverage),
		WeeklyAverage:  toAmount(s.WeeklyAverage),
	}
}

func toOptionalAmounts(values []*decimal.Decimal) []*float64 {
	result := make([]*float64, len(values))
	for i, v := range values {
		if v == nil {
			continue
		}
		f := toAmount(*v)
		result[i] = &f
	}
	return result
}

func optionalDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := formatDate(*t)
	return &s
}
