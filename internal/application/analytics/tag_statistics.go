package analytics

import (
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/budgeteur/backend/internal/domain/entity"
	"github.com/budgeteur/backend/internal/domain/valueobject"
)

var monthsPerYear = decimal.NewFromInt(12)

// TagStat compares one tag's spending in a target month with its earlier months.
type TagStat struct {
	TagID            *int64 // Nil for "Other"
	TagName          string
	TargetAmount     decimal.Decimal // Absolute expenses in the target month
	PercentOfTotal   decimal.Decimal
	MonthlyAverage   decimal.Decimal
	PercentageChange decimal.Decimal
	AnnualDelta      decimal.Decimal
	HistoricalMonths int
	TotalMonths      int
	State            valueobject.TrendState
}

// IsOther reports whether the stat covers untagged transactions.
func (s TagStat) IsOther() bool {
	return s.TagID == nil
}

type tagAccumulator struct {
	key              tagKey
	name             string
	targetExpenses   decimal.Decimal
	targetNet        decimal.Decimal
	historicalSum    decimal.Decimal
	historicalMonths map[time.Time]struct{}
	hasExpense       bool
}

// CalculateTagStatistics builds one TagStat per tag that has expenses, using the month
// containing targetMonth as the target and every other month in txs as history.
// Tags whose net amount in the target month is positive are left out.
// Results are ordered by target amount descending with "Other" last.
func CalculateTagStatistics(txs []*entity.Transaction, targetMonth time.Time) []TagStat {
	target := valueobject.RangeFor(valueobject.RangeMonth, targetMonth)

	index := make(map[tagKey]*tagAccumulator)
	var order []*tagAccumulator
	for _, tx := range txs {
		key := keyOf(tx)
		acc, ok := index[key]
		if !ok {
			acc = &tagAccumulator{
				key:              key,
				name:             tx.TagLabel(),
				targetExpenses:   decimal.Zero,
				targetNet:        decimal.Zero,
				historicalSum:    decimal.Zero,
				historicalMonths: make(map[time.Time]struct{}),
			}
			index[key] = acc
			order = append(order, acc)
		}

		inTarget := target.Contains(tx.Date)
		if inTarget {
			acc.targetNet = acc.targetNet.Add(tx.Amount)
		}
		if !tx.IsExpense() {
			continue
		}
		acc.hasExpense = true
		if inTarget {
			acc.targetExpenses = acc.targetExpenses.Add(tx.Amount.Abs())
		} else {
			acc.historicalSum = acc.historicalSum.Add(tx.Amount.Abs())
			acc.historicalMonths[valueobject.MonthStart(tx.Date)] = struct{}{}
		}
	}

	stats := make([]TagStat, 0, len(order))
	grandTotal := decimal.Zero
	for _, acc := range order {
		if !acc.hasExpense || acc.targetNet.IsPositive() {
			continue
		}
		stat := newTagStat(acc)
		grandTotal = grandTotal.Add(stat.TargetAmount)
		stats = append(stats, stat)
	}

	for i := range stats {
		stats[i].PercentOfTotal = percentOfTotal(stats[i].TargetAmount, grandTotal)
	}

	slices.SortFunc(stats, func(a, b TagStat) int {
		if a.IsOther() != b.IsOther() {
			if a.IsOther() {
				return 1
			}
			return -1
		}
		if c := b.TargetAmount.Cmp(a.TargetAmount); c != 0 {
			return c
		}
		return strings.Compare(a.TagName, b.TagName)
	})
	return stats
}

func newTagStat(acc *tagAccumulator) TagStat {
	stat := TagStat{
		TagName:          acc.name,
		TargetAmount:     acc.targetExpenses,
		MonthlyAverage:   decimal.Zero,
		PercentageChange: decimal.Zero,
		AnnualDelta:      decimal.Zero,
		HistoricalMonths: len(acc.historicalMonths),
	}
	if acc.key.tagged {
		id := acc.key.id
		stat.TagID = &id
	}

	stat.TotalMonths = stat.HistoricalMonths
	if acc.targetExpenses.IsPositive() {
		stat.TotalMonths++
	}

	stat.State = valueobject.ClassifyTrend(decimal.Zero, stat.HistoricalMonths, stat.TotalMonths)
	if stat.State == valueobject.TrendInsufficientData {
		return stat
	}

	stat.MonthlyAverage = acc.historicalSum.Div(decimal.NewFromInt(int64(stat.HistoricalMonths)))
	stat.PercentageChange = PercentageChange(stat.TargetAmount, stat.MonthlyAverage)
	stat.AnnualDelta = stat.TargetAmount.Sub(stat.MonthlyAverage).Mul(monthsPerYear)
	stat.State = valueobject.ClassifyTrend(stat.PercentageChange, stat.HistoricalMonths, stat.TotalMonths)
	return stat
}

// PercentageChange returns (target - average) / average * 100.
// A zero average yields 100 when target is positive and 0 otherwise.
func PercentageChange(target, average decimal.Decimal) decimal.Decimal {
	if average.IsZero() {
		if target.IsPositive() {
			return hundred
		}
		return decimal.Zero
	}
	return target.Sub(average).Mul(hundred).Div(average)
}

func percentOfTotal(part, total decimal.Decimal) decimal.Decimal {
	if total.IsZero() {
		return decimal.Zero
	}
	return part.Mul(hundred).Div(total)
}
