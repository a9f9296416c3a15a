package analytics

import (
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/budgeteur/backend/internal/domain/entity"
	"github.com/budgeteur/backend/internal/domain/valueobject"
)

var weeksPerYear = decimal.NewFromInt(52)

// MonthlyBreakdown holds the totals of one calendar month.
type MonthlyBreakdown struct {
	Month     time.Time // First day of the month
	Income    decimal.Decimal
	Expenses  decimal.Decimal // Absolute
	NetIncome decimal.Decimal
}

// StatisticSet is the total and the averages of one measure.
type StatisticSet struct {
	Total          decimal.Decimal
	MonthlyAverage decimal.Decimal
	WeeklyAverage  decimal.Decimal
}

// SummaryStatistics covers income, expenses and net income over a set of months.
type SummaryStatistics struct {
	Income    StatisticSet
	Expenses  StatisticSet
	NetIncome StatisticSet
	Months    int
}

// TagSeries is one tag's absolute monthly expenses. A nil value marks a month without expenses.
type TagSeries struct {
	TagID  *int64
	Label  string
	Values []*decimal.Decimal
}

// MonthSeries returns the first day of every month overlapping r, oldest first.
func MonthSeries(r valueobject.DateRange) []time.Time {
	var months []time.Time
	for m := valueobject.MonthStart(r.Start); m.Before(r.End); m = m.AddDate(0, 1, 0) {
		months = append(months, m)
	}
	return months
}

// AggregateByMonth totals txs per calendar month, oldest first. Months without
// transactions are not listed.
func AggregateByMonth(txs []*entity.Transaction) []MonthlyBreakdown {
	byMonth := make(map[time.Time]*MonthlyBreakdown)
	for _, tx := range txs {
		month := valueobject.MonthStart(tx.Date)
		b, ok := byMonth[month]
		if !ok {
			b = &MonthlyBreakdown{Month: month, Income: decimal.Zero, Expenses: decimal.Zero}
			byMonth[month] = b
		}
		switch {
		case tx.IsIncome():
			b.Income = b.Income.Add(tx.Amount)
		case tx.IsExpense():
			b.Expenses = b.Expenses.Add(tx.Amount.Abs())
		}
	}

	breakdown := make([]MonthlyBreakdown, 0, len(byMonth))
	for _, b := range byMonth {
		b.NetIncome = b.Income.Sub(b.Expenses)
		breakdown = append(breakdown, *b)
	}
	slices.SortFunc(breakdown, func(a, b MonthlyBreakdown) int {
		return a.Month.Compare(b.Month)
	})
	return breakdown
}

// CalculateSummaryStatistics averages a monthly breakdown. The weekly average is
// the monthly average spread over 52 weeks a year.
func CalculateSummaryStatistics(months []MonthlyBreakdown) SummaryStatistics {
	income, expenses, net := decimal.Zero, decimal.Zero, decimal.Zero
	for _, m := range months {
		income = income.Add(m.Income)
		expenses = expenses.Add(m.Expenses)
		net = net.Add(m.NetIncome)
	}
	return SummaryStatistics{
		Income:    newStatisticSet(income, len(months)),
		Expenses:  newStatisticSet(expenses, len(months)),
		NetIncome: newStatisticSet(net, len(months)),
		Months:    len(months),
	}
}

func newStatisticSet(total decimal.Decimal, months int) StatisticSet {
	set := StatisticSet{Total: total, MonthlyAverage: decimal.Zero, WeeklyAverage: decimal.Zero}
	if months == 0 {
		return set
	}
	set.MonthlyAverage = total.Div(decimal.NewFromInt(int64(months)))
	set.WeeklyAverage = set.MonthlyAverage.Mul(monthsPerYear).Div(weeksPerYear)
	return set
}

// ExpenseSeriesByTag lays out each tag's absolute expenses over months.
// Tags are sorted by name with "Other" last; only expenses are counted.
func ExpenseSeriesByTag(txs []*entity.Transaction, months []time.Time) []TagSeries {
	position := make(map[time.Time]int, len(months))
	for i, m := range months {
		position[valueobject.MonthStart(m)] = i
	}

	index := make(map[tagKey]int)
	series := make([]TagSeries, 0)
	for _, tx := range txs {
		if !tx.IsExpense() {
			continue
		}
		pos, ok := position[valueobject.MonthStart(tx.Date)]
		if !ok {
			continue
		}
		key := keyOf(tx)
		i, ok := index[key]
		if !ok {
			s := TagSeries{Label: tx.TagLabel(), Values: make([]*decimal.Decimal, len(months))}
			if key.tagged {
				id := key.id
				s.TagID = &id
			}
			series = append(series, s)
			i = len(series) - 1
			index[key] = i
		}
		sum := tx.Amount.Abs()
		if current := series[i].Values[pos]; current != nil {
			sum = sum.Add(*current)
		}
		series[i].Values[pos] = &sum
	}

	slices.SortFunc(series, func(a, b TagSeries) int {
		aOther, bOther := a.TagID == nil, b.TagID == nil
		if aOther != bOther {
			if aOther {
				return 1
			}
			return -1
		}
		return strings.Compare(a.Label, b.Label)
	})
	return series
}
