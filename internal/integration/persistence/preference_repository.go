package persistence

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/budgeteur/backend/internal/application/adapter"
	"github.com/budgeteur/backend/internal/integration/persistence/model"
)

// preferenceRepository implements the adapter.PreferenceRepository interface.
type preferenceRepository struct {
	db *gorm.DB
}

// NewPreferenceRepository creates a new preference repository instance.
func NewPreferenceRepository(db *gorm.DB) adapter.PreferenceRepository {
	return &preferenceRepository{
		db: db,
	}
}

// GetExcludedTagIDs returns the excluded tag ids in ascending order.
func (r *preferenceRepository) GetExcludedTagIDs(ctx context.Context) ([]int64, error) {
	ids := make([]int64, 0)
	err := r.db.WithContext(ctx).
		Model(&model.ExcludedTagModel{}).
		Order("tag_id ASC").
		Pluck("tag_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get excluded tags: %w", err)
	}
	return ids, nil
}

// ReplaceExcludedTagIDs swaps the stored set for ids inside one database transaction.
func (r *preferenceRepository) ReplaceExcludedTagIDs(ctx context.Context, ids []int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.ExcludedTagModel{}).Error; err != nil {
			return fmt.Errorf("failed to clear excluded tags: %w", err)
		}
		if len(ids) == 0 {
			return nil
		}

		rows := make([]model.ExcludedTagModel, len(ids))
		for i, id := range ids {
			rows[i] = model.ExcludedTagModel{TagID: id}
		}
		if err := tx.Create(&rows).Error; err != nil {
			return fmt.Errorf("failed to save excluded tags: %w", err)
		}
		return nil
	})
}
