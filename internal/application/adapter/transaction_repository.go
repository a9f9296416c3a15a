// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/budgeteur/backend/internal/domain/entity"
	"github.com/budgeteur/backend/internal/domain/valueobject"
)

// TransactionRepository defines the read access the view and dashboard need to transactions.
type TransactionRepository interface {
	// FindInRange returns the transactions dated inside the half-open range,
	// ordered by date descending then id ascending, with tag names resolved.
	FindInRange(ctx context.Context, r valueobject.DateRange) ([]*entity.Transaction, error)

	// GetDateBounds returns the oldest and newest transaction dates and the row count.
	GetDateBounds(ctx context.Context) (*entity.TransactionDateBounds, error)
}
