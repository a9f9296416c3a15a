// Package analytics holds the pure aggregation engines behind the transactions view and the dashboard.
// Functions here never touch storage; callers pass transaction snapshots in.
package analytics

import (
	"slices"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/budgeteur/backend/internal/domain/entity"
	"github.com/budgeteur/backend/internal/domain/valueobject"
)

// DayGroup holds the transactions of one calendar day, ordered by id.
type DayGroup struct {
	Date         time.Time
	Transactions []*entity.Transaction
}

// Interval is one non-empty sub-period of a grouped range.
type Interval struct {
	// Unit is the full calendar interval; Bounds is its part inside the requested range.
	Unit   valueobject.DateRange
	Bounds valueobject.DateRange
	// Income and Expenses skip excluded tags. Expenses stay negative.
	Income   decimal.Decimal
	Expenses decimal.Decimal
	Days     []DayGroup
}

// Net returns income plus expenses.
func (i Interval) Net() decimal.Decimal {
	return i.Income.Add(i.Expenses)
}

// Transactions flattens the day groups in display order.
func (i Interval) Transactions() []*entity.Transaction {
	var txs []*entity.Transaction
	for _, day := range i.Days {
		txs = append(txs, day.Transactions...)
	}
	return txs
}

// TransactionCount returns the number of rows, excluded tags included.
func (i Interval) TransactionCount() int {
	n := 0
	for _, day := range i.Days {
		n += len(day.Transactions)
	}
	return n
}

// SortForDisplay orders transactions by date descending, then id ascending.
func SortForDisplay(txs []*entity.Transaction) []*entity.Transaction {
	sorted := slices.Clone(txs)
	slices.SortStableFunc(sorted, func(a, b *entity.Transaction) int {
		if c := b.Date.Compare(a.Date); c != 0 {
			return c
		}
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		}
		return 0
	})
	return sorted
}

// GroupTransactions buckets txs into the calendar intervals of preset covering r.
// Transactions outside r are dropped, empty intervals are omitted, and intervals are
// returned newest first. Excluded tags still appear as rows but are left out of totals.
func GroupTransactions(
	txs []*entity.Transaction,
	r valueobject.DateRange,
	preset valueobject.IntervalPreset,
	exclusions valueobject.ExclusionSet,
) []Interval {
	spans := valueobject.Partition(r, preset)
	if len(spans) == 0 {
		return []Interval{}
	}

	buckets := make([][]*entity.Transaction, len(spans))
	for _, tx := range SortForDisplay(txs) {
		if !r.Contains(tx.Date) {
			continue
		}
		date := valueobject.Date(tx.Date)
		idx := sort.Search(len(spans), func(i int) bool {
			return date.Before(spans[i].Bounds.End)
		})
		buckets[idx] = append(buckets[idx], tx)
	}

	intervals := make([]Interval, 0, len(spans))
	for idx := len(spans) - 1; idx >= 0; idx-- {
		if len(buckets[idx]) == 0 {
			continue
		}
		interval := Interval{
			Unit:     spans[idx].Unit,
			Bounds:   spans[idx].Bounds,
			Income:   decimal.Zero,
			Expenses: decimal.Zero,
			Days:     groupByDay(buckets[idx]),
		}
		for _, tx := range buckets[idx] {
			if exclusions.Excludes(tx.TagID) {
				continue
			}
			if tx.IsIncome() {
				interval.Income = interval.Income.Add(tx.Amount)
			} else if tx.IsExpense() {
				interval.Expenses = interval.Expenses.Add(tx.Amount)
			}
		}
		intervals = append(intervals, interval)
	}
	return intervals
}

// groupByDay splits display-ordered transactions into runs of the same date.
func groupByDay(txs []*entity.Transaction) []DayGroup {
	var days []DayGroup
	for _, tx := range txs {
		date := valueobject.Date(tx.Date)
		if n := len(days); n > 0 && days[n-1].Date.Equal(date) {
			days[n-1].Transactions = append(days[n-1].Transactions, tx)
			continue
		}
		days = append(days, DayGroup{Date: date, Transactions: []*entity.Transaction{tx}})
	}
	return days
}
