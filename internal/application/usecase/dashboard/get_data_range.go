package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/budgeteur/backend/internal/application/adapter"
)

// GetDataRangeOutput represents the output of getting data range.
type GetDataRangeOutput struct {
	OldestDate        *time.Time `json:"oldest_date"`
	NewestDate        *time.Time `json:"newest_date"`
	TotalTransactions int        `json:"total_transactions"`
	HasData           bool       `json:"has_data"`
}

// GetDataRangeUseCase handles getting the date range of stored transactions.
type GetDataRangeUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewGetDataRangeUseCase creates a new GetDataRangeUseCase instance.
func NewGetDataRangeUseCase(transactionRepo adapter.TransactionRepository) *GetDataRangeUseCase {
	return &GetDataRangeUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute retrieves the date range of stored transactions.
func (uc *GetDataRangeUseCase) Execute(ctx context.Context) (*GetDataRangeOutput, error) {
	bounds, err := uc.transactionRepo.GetDateBounds(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get date range: %w", err)
	}

	return &GetDataRangeOutput{
		OldestDate:        bounds.OldestDate,
		NewestDate:        bounds.NewestDate,
		TotalTransactions: bounds.TotalTransactions,
		HasData:           bounds.HasData(),
	}, nil
}
