package dto

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/budgeteur/backend/internal/application/analytics"
	"github.com/budgeteur/backend/internal/application/usecase/transaction"
	"github.com/budgeteur/backend/internal/domain/entity"
	"github.com/budgeteur/backend/internal/domain/valueobject"
)

func TestViewURL(t *testing.T) {
	anchor := valueobject.NewDate(2024, 9, 10)

	assert.Equal(t,
		"/api/v1/transactions/view?anchor=2024-09-10&interval=week&range=half-year",
		ViewURL(valueobject.RangeHalfYear, valueobject.IntervalWeek, anchor, false),
	)
	assert.Equal(t,
		"/api/v1/transactions/view?anchor=2024-09-10&interval=month&range=month&summary=true",
		ViewURL(valueobject.RangeMonth, valueobject.IntervalMonth, anchor, true),
	)
}

func TestToTransactionsViewResponse(t *testing.T) {
	rent := int64(2)
	rentName := "Rent"
	txs := []*entity.Transaction{
		{ID: 1, Date: valueobject.NewDate(2024, 9, 10), Description: "Rent", Amount: decimal.RequireFromString("-1200.456"), TagID: &rent, TagName: &rentName},
		{ID: 2, Date: valueobject.NewDate(2024, 9, 11), Description: "Coffee", Amount: decimal.RequireFromString("-4.50")},
	}

	state, err := valueobject.Resolve(valueobject.RangeMonth, valueobject.IntervalWeek, valueobject.NewDate(2024, 9, 10))
	require.NoError(t, err)
	exclusions := valueobject.NewExclusionSet(rent)
	intervals := analytics.GroupTransactions(txs, state.DateRange, state.Interval, exclusions)
	require.Len(t, intervals, 1)

	prev := valueobject.PreviousRange(state.Range, state.DateRange)
	output := &transaction.GetTransactionsViewOutput{
		Navigation: state,
		RangeNavigation: transaction.RangeNavigation{
			Current:  state.DateRange,
			Previous: &transaction.RangeLink{Range: prev, Anchor: prev.Start},
		},
		RangeOptions:     valueobject.RangeOptions(state.Interval),
		Intervals:        []transaction.IntervalView{{Interval: intervals[0]}},
		Summary:          analytics.SummarizeByTag(txs, exclusions),
		ExcludedTagIDs:   exclusions.IDs(),
		TransactionCount: 2,
	}

	response := ToTransactionsViewResponse(output, true)

	assert.Equal(t, "2024-09-01", response.Period.StartDate)
	assert.Equal(t, "2024-09-30", response.Period.EndDate)
	require.NotNil(t, response.Navigation.Previous)
	assert.Equal(t, "2024-08-01", response.Navigation.Previous.Anchor)
	assert.Contains(t, response.Navigation.Previous.URL, "summary=true")
	assert.Nil(t, response.Navigation.Next)

	require.Len(t, response.Intervals, 1)
	interval := response.Intervals[0]
	assert.Equal(t, "2024-09-09", interval.Period.StartDate)
	assert.Equal(t, "2024-09-15", interval.Period.EndDate)
	assert.Equal(t, -4.5, interval.Expenses)
	require.Len(t, interval.Days, 2)
	assert.Equal(t, "2024-09-11", interval.Days[0].Date)
	assert.Equal(t, "Other", interval.Days[0].Transactions[0].TagName)
	assert.True(t, interval.Days[1].Transactions[0].IsExcluded)
	assert.Equal(t, -1200.46, interval.Days[1].Transactions[0].Amount)

	require.Len(t, response.Summary.Expenses, 1)
	assert.True(t, response.Summary.Expenses[0].IsOther)
	assert.Equal(t, []int64{2}, response.ExcludedTagIDs)
}
