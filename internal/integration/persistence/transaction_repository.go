// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/budgeteur/backend/internal/application/adapter"
	"github.com/budgeteur/backend/internal/domain/entity"
	"github.com/budgeteur/backend/internal/domain/valueobject"
	"github.com/budgeteur/backend/internal/integration/persistence/model"
)

// transactionRepository implements the adapter.TransactionRepository interface.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository instance.
func NewTransactionRepository(db *gorm.DB) adapter.TransactionRepository {
	return &transactionRepository{
		db: db,
	}
}

// FindInRange retrieves the transactions dated inside r with their tags.
func (r *transactionRepository) FindInRange(ctx context.Context, dateRange valueobject.DateRange) ([]*entity.Transaction, error) {
	var models []model.TransactionModel
	result := r.db.WithContext(ctx).
		Preload("Tag").
		Where("date >= ? AND date < ?", dateRange.Start, dateRange.End).
		Order("date DESC, id ASC").
		Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find transactions in %s: %w", dateRange, result.Error)
	}

	transactions := make([]*entity.Transaction, len(models))
	for i := range models {
		transactions[i] = models[i].ToEntity()
	}
	return transactions, nil
}

// GetDateBounds returns the oldest and newest transaction dates.
func (r *transactionRepository) GetDateBounds(ctx context.Context) (*entity.TransactionDateBounds, error) {
	db := r.db.WithContext(ctx)

	var total int64
	if err := db.Model(&model.TransactionModel{}).Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count transactions: %w", err)
	}

	bounds := &entity.TransactionDateBounds{TotalTransactions: int(total)}
	if total == 0 {
		return bounds, nil
	}

	oldest, err := r.edgeDate(db, "date ASC, id ASC")
	if err != nil {
		return nil, err
	}
	newest, err := r.edgeDate(db, "date DESC, id DESC")
	if err != nil {
		return nil, err
	}
	bounds.OldestDate = oldest
	bounds.NewestDate = newest
	return bounds, nil
}

func (r *transactionRepository) edgeDate(db *gorm.DB, order string) (*time.Time, error) {
	var m model.TransactionModel
	result := db.Select("id", "date").Order(order).First(&m)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get transaction date bounds: %w", result.Error)
	}
	date := m.ToEntity().Date
	return &date, nil
}
