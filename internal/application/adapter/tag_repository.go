package adapter

import (
	"context"

	"github.com/budgeteur/backend/internal/domain/entity"
)

// TagRepository defines the interface for tag lookups.
type TagRepository interface {
	// FindAll returns every tag ordered by name.
	FindAll(ctx context.Context) ([]*entity.Tag, error)

	// FindMissingIDs returns the ids among ids that do not match a stored tag.
	FindMissingIDs(ctx context.Context, ids []int64) ([]int64, error)
}
