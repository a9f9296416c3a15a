package persistence

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/budgeteur/backend/internal/application/adapter"
	"github.com/budgeteur/backend/internal/domain/entity"
	"github.com/budgeteur/backend/internal/integration/persistence/model"
)

// tagRepository implements the adapter.TagRepository interface.
type tagRepository struct {
	db *gorm.DB
}

// NewTagRepository creates a new tag repository instance.
func NewTagRepository(db *gorm.DB) adapter.TagRepository {
	return &tagRepository{
		db: db,
	}
}

// FindAll retrieves every tag ordered by name.
func (r *tagRepository) FindAll(ctx context.Context) ([]*entity.Tag, error) {
	var models []model.TagModel
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}

	tags := make([]*entity.Tag, len(models))
	for i := range models {
		tags[i] = models[i].ToEntity()
	}
	return tags, nil
}

// FindMissingIDs returns the ids that have no tag row.
func (r *tagRepository) FindMissingIDs(ctx context.Context, ids []int64) ([]int64, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var found []int64
	err := r.db.WithContext(ctx).
		Model(&model.TagModel{}).
		Where("id IN ?", ids).
		Pluck("id", &found).Error
	if err != nil {
		return nil, fmt.Errorf("failed to look up tags: %w", err)
	}

	existing := make(map[int64]struct{}, len(found))
	for _, id := range found {
		existing[id] = struct{}{}
	}
	var missing []int64
	for _, id := range ids {
		if _, ok := existing[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing, nil
}
