// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents an imported bank transaction.
// The grouping and aggregation engines only read transactions.
type Transaction struct {
	ID          int64
	Date        time.Time // Calendar day, UTC midnight
	Description string
	Amount      decimal.Decimal // Negative for expenses, positive for income
	TagID       *int64          // Nil when untagged
	TagName     *string
	ImportID    *int64
	CreatedAt   time.Time
}

// IsIncome reports whether the transaction adds money.
func (t *Transaction) IsIncome() bool {
	return t.Amount.IsPositive()
}

// IsExpense reports whether the transaction removes money.
func (t *Transaction) IsExpense() bool {
	return t.Amount.IsNegative()
}

// IsTagged reports whether a tag is assigned.
func (t *Transaction) IsTagged() bool {
	return t.TagID != nil
}

// TagLabel returns the tag name, or UntaggedLabel for untagged transactions.
func (t *Transaction) TagLabel() string {
	if !t.IsTagged() || t.TagName == nil {
		return UntaggedLabel
	}
	return *t.TagName
}

// TransactionDateBounds describes the span of stored transactions.
type TransactionDateBounds struct {
	OldestDate        *time.Time
	NewestDate        *time.Time
	TotalTransactions int
}

// HasData reports whether at least one transaction exists.
func (b TransactionDateBounds) HasData() bool {
	return b.OldestDate != nil && b.NewestDate != nil
}
