package transaction

import (
	"context"
	"errors"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/budgeteur/backend/internal/domain/entity"
	domainerror "github.com/budgeteur/backend/internal/domain/error"
	"github.com/budgeteur/backend/internal/domain/valueobject"
)

func TestGetTransactionsViewUseCase_Execute(t *testing.T) {
	food := &entity.Tag{ID: 1, Name: "Food"}
	rent := &entity.Tag{ID: 2, Name: "Rent"}

	txRepo := &fakeTransactionRepo{txs: []*entity.Transaction{
		newTx(1, valueobject.NewDate(2024, 8, 20), "-15", food),
		newTx(2, valueobject.NewDate(2024, 9, 2), "-50", food),
		newTx(3, valueobject.NewDate(2024, 9, 2), "-800", rent),
		newTx(4, valueobject.NewDate(2024, 9, 10), "-20", nil),
		newTx(5, valueobject.NewDate(2024, 9, 25), "2000", nil),
	}}
	prefRepo := &fakePreferenceRepo{excluded: []int64{2}}
	uc := NewGetTransactionsViewUseCase(
		txRepo,
		&fakeTagRepo{tags: []*entity.Tag{food, rent}},
		prefRepo,
		fixedClock{now: valueobject.NewDate(2024, 9, 12)},
		time.UTC,
	)

	t.Run("month range grouped by week with default anchor", func(t *testing.T) {
		out, err := uc.Execute(context.Background(), GetTransactionsViewInput{
			Range:       valueobject.RangeMonth,
			Interval:    valueobject.IntervalWeek,
			WithSummary: true,
		})
		require.NoError(t, err)

		assert.Equal(t, "1 Sep 2024 - 30 Sep 2024", out.Navigation.DateRange.Label())
		assert.Equal(t, 4, out.TransactionCount)
		require.Len(t, out.Intervals, 3)
		assert.True(t, out.Intervals[0].Interval.Bounds.Start.Equal(valueobject.NewDate(2024, 9, 23)))

		first := out.Intervals[2]
		assert.Equal(t, 2, first.Interval.TransactionCount())
		assert.Equal(t, "-50", first.Interval.Expenses.String())
		require.NotNil(t, first.Summary)
		require.Len(t, first.Summary.Expenses, 1)
		assert.Equal(t, "Food", first.Summary.Expenses[0].Label)

		require.Len(t, out.Summary.Expenses, 2)
		assert.Equal(t, "Food", out.Summary.Expenses[0].Label)
		assert.Equal(t, "Other", out.Summary.Expenses[1].Label)
		assert.Equal(t, EmptyStateNone, out.EmptyState)

		assert.Equal(t, []int64{2}, out.ExcludedTagIDs)
		require.Len(t, out.Tags, 2)
		assert.False(t, out.Tags[0].IsExcluded)
		assert.True(t, out.Tags[1].IsExcluded)
	})

	t.Run("navigation links follow the data bounds", func(t *testing.T) {
		out, err := uc.Execute(context.Background(), GetTransactionsViewInput{
			Range:    valueobject.RangeMonth,
			Interval: valueobject.IntervalWeek,
		})
		require.NoError(t, err)

		require.NotNil(t, out.RangeNavigation.Previous)
		assert.True(t, out.RangeNavigation.Previous.Anchor.Equal(valueobject.NewDate(2024, 8, 1)))
		assert.Nil(t, out.RangeNavigation.Next)
		assert.Nil(t, out.RangeNavigation.Latest)
	})

	t.Run("range without transactions", func(t *testing.T) {
		anchor := valueobject.NewDate(2024, 3, 1)
		out, err := uc.Execute(context.Background(), GetTransactionsViewInput{
			Range:    valueobject.RangeMonth,
			Interval: valueobject.IntervalWeek,
			Anchor:   &anchor,
		})
		require.NoError(t, err)

		assert.Empty(t, out.Intervals)
		assert.Equal(t, EmptyStateNoTransactions, out.EmptyState)
		assert.Nil(t, out.RangeNavigation.Previous)
		require.NotNil(t, out.RangeNavigation.Next)
		require.NotNil(t, out.RangeNavigation.Latest)
		assert.True(t, out.RangeNavigation.Latest.Anchor.Equal(valueobject.NewDate(2024, 9, 1)))
	})

	t.Run("everything excluded", func(t *testing.T) {
		anchor := valueobject.NewDate(2024, 9, 2)
		out, err := uc.Execute(context.Background(), GetTransactionsViewInput{
			Range:       valueobject.RangeWeek,
			Interval:    valueobject.IntervalWeek,
			Anchor:      &anchor,
			WithSummary: true,
		})
		require.NoError(t, err)

		require.Len(t, out.Intervals, 1)
		assert.Equal(t, EmptyStateNone, out.Intervals[0].SummaryEmpty)

		prefRepo.excluded = []int64{1, 2}
		defer func() { prefRepo.excluded = []int64{2} }()

		out, err = uc.Execute(context.Background(), GetTransactionsViewInput{
			Range:       valueobject.RangeWeek,
			Interval:    valueobject.IntervalWeek,
			Anchor:      &anchor,
			WithSummary: true,
		})
		require.NoError(t, err)
		assert.Equal(t, 2, out.TransactionCount)
		assert.Equal(t, EmptyStateNoRowsAfterExclusion, out.EmptyState)
		assert.Equal(t, EmptyStateNoRowsAfterExclusion, out.Intervals[0].SummaryEmpty)
	})

	t.Run("incompatible presets are corrected", func(t *testing.T) {
		out, err := uc.Execute(context.Background(), GetTransactionsViewInput{
			Range:    valueobject.RangeWeek,
			Interval: valueobject.IntervalMonth,
		})
		require.NoError(t, err)
		assert.True(t, out.Navigation.Corrected)
		assert.Equal(t, valueobject.RangeMonth, out.Navigation.Range)
	})

	t.Run("invalid preset", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), GetTransactionsViewInput{
			Range:    "decade",
			Interval: valueobject.IntervalWeek,
		})
		var navErr *domainerror.NavigationError
		assert.True(t, errors.As(err, &navErr))
	})
}

func TestGetTransactionsViewUseCase_RepositoryFailure(t *testing.T) {
	uc := NewGetTransactionsViewUseCase(
		&fakeTransactionRepo{err: errors.New("connection refused")},
		&fakeTagRepo{},
		&fakePreferenceRepo{},
		fixedClock{now: valueobject.NewDate(2024, 9, 12)},
		time.UTC,
	)

	_, err := uc.Execute(context.Background(), GetTransactionsViewInput{
		Range:    valueobject.RangeMonth,
		Interval: valueobject.IntervalWeek,
	})

	var txErr *domainerror.TransactionError
	require.True(t, errors.As(err, &txErr))
	assert.Equal(t, domainerror.ErrCodeTransactionInternalError, txErr.Code)
}

func TestGetTransactionsViewUseCase_DefaultAnchorUsesLocation(t *testing.T) {
	auckland, err := time.LoadLocation("Pacific/Auckland")
	require.NoError(t, err)

	// 20:00 UTC on 30 Sep is already 1 Oct in Auckland.
	clock := fixedClock{now: time.Date(2024, 9, 30, 20, 0, 0, 0, time.UTC)}
	input := GetTransactionsViewInput{Range: valueobject.RangeMonth, Interval: valueobject.IntervalWeek}

	local := NewGetTransactionsViewUseCase(&fakeTransactionRepo{}, &fakeTagRepo{}, &fakePreferenceRepo{}, clock, auckland)
	out, err := local.Execute(context.Background(), input)
	require.NoError(t, err)
	assert.True(t, out.Navigation.Anchor.Equal(valueobject.NewDate(2024, 10, 1)))
	assert.True(t, out.Navigation.DateRange.Start.Equal(valueobject.NewDate(2024, 10, 1)))
	assert.True(t, out.Navigation.DateRange.End.Equal(valueobject.NewDate(2024, 11, 1)))

	utc := NewGetTransactionsViewUseCase(&fakeTransactionRepo{}, &fakeTagRepo{}, &fakePreferenceRepo{}, clock, nil)
	out, err = utc.Execute(context.Background(), input)
	require.NoError(t, err)
	assert.True(t, out.Navigation.DateRange.Start.Equal(valueobject.NewDate(2024, 9, 1)))
}
