package analytics

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/budgeteur/backend/internal/domain/entity"
	"github.com/budgeteur/backend/internal/domain/valueobject"
)

var hundred = decimal.NewFromInt(100)

// CategoryTotal is the sum of one tag inside an income or expense pool.
type CategoryTotal struct {
	TagID            *int64 // Nil for the untagged "Other" bucket
	Label            string
	Amount           decimal.Decimal
	Percent          int64
	TransactionCount int
}

// IsOther reports whether this is the untagged bucket.
func (c CategoryTotal) IsOther() bool {
	return c.TagID == nil
}

// CategorySummary splits a set of transactions into per-tag income and expense totals.
type CategorySummary struct {
	Income       []CategoryTotal
	Expenses     []CategoryTotal
	IncomeTotal  decimal.Decimal
	ExpenseTotal decimal.Decimal // Negative
	// ExcludedCount is the number of input transactions skipped because of their tag.
	ExcludedCount int
}

// IsEmpty reports whether nothing was left to summarize.
func (s CategorySummary) IsEmpty() bool {
	return len(s.Income) == 0 && len(s.Expenses) == 0
}

// PercentOf returns part as a whole-number share of total, rounded half away from zero.
// A zero total yields 0. The result is never negative.
func PercentOf(part, total decimal.Decimal) int64 {
	if total.IsZero() {
		return 0
	}
	return part.Mul(hundred).Div(total).Abs().Round(0).IntPart()
}

// FilterExcluded returns the transactions whose tag is not in exclusions.
func FilterExcluded(txs []*entity.Transaction, exclusions valueobject.ExclusionSet) []*entity.Transaction {
	if exclusions.Len() == 0 {
		return txs
	}
	kept := make([]*entity.Transaction, 0, len(txs))
	for _, tx := range txs {
		if !exclusions.Excludes(tx.TagID) {
			kept = append(kept, tx)
		}
	}
	return kept
}

// FilterInRange returns the transactions dated inside r.
func FilterInRange(txs []*entity.Transaction, r valueobject.DateRange) []*entity.Transaction {
	kept := make([]*entity.Transaction, 0, len(txs))
	for _, tx := range txs {
		if r.Contains(tx.Date) {
			kept = append(kept, tx)
		}
	}
	return kept
}

// SummarizeByTag totals txs per tag for income and for expenses.
// Excluded tags are removed before the pools are split. Untagged transactions form
// the "Other" bucket, which is always listed last in its pool.
func SummarizeByTag(txs []*entity.Transaction, exclusions valueobject.ExclusionSet) CategorySummary {
	included := FilterExcluded(txs, exclusions)
	summary := CategorySummary{
		IncomeTotal:   decimal.Zero,
		ExpenseTotal:  decimal.Zero,
		ExcludedCount: len(txs) - len(included),
	}

	var income, expenses []*entity.Transaction
	for _, tx := range included {
		switch {
		case tx.IsIncome():
			income = append(income, tx)
			summary.IncomeTotal = summary.IncomeTotal.Add(tx.Amount)
		case tx.IsExpense():
			expenses = append(expenses, tx)
			summary.ExpenseTotal = summary.ExpenseTotal.Add(tx.Amount)
		}
	}

	summary.Income = totalsByTag(income, summary.IncomeTotal)
	summary.Expenses = totalsByTag(expenses, summary.ExpenseTotal)
	return summary
}

type tagKey struct {
	id     int64
	tagged bool
}

func keyOf(tx *entity.Transaction) tagKey {
	if !tx.IsTagged() {
		return tagKey{}
	}
	return tagKey{id: *tx.TagID, tagged: true}
}

func totalsByTag(txs []*entity.Transaction, pool decimal.Decimal) []CategoryTotal {
	index := make(map[tagKey]int)
	totals := make([]CategoryTotal, 0)

	for _, tx := range txs {
		key := keyOf(tx)
		i, ok := index[key]
		if !ok {
			total := CategoryTotal{Label: tx.TagLabel(), Amount: decimal.Zero}
			if key.tagged {
				id := key.id
				total.TagID = &id
			}
			totals = append(totals, total)
			i = len(totals) - 1
			index[key] = i
		}
		totals[i].Amount = totals[i].Amount.Add(tx.Amount)
		totals[i].TransactionCount++
	}

	for i := range totals {
		totals[i].Percent = PercentOf(totals[i].Amount, pool)
	}

	slices.SortFunc(totals, func(a, b CategoryTotal) int {
		if a.IsOther() != b.IsOther() {
			if a.IsOther() {
				return 1
			}
			return -1
		}
		if c := b.Amount.Abs().Cmp(a.Amount.Abs()); c != 0 {
			return c
		}
		return strings.Compare(a.Label, b.Label)
	})
	return totals
}
