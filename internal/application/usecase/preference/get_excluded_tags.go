// Package preference contains use cases for the excluded tags preference.
package preference

import (
	"context"
	"fmt"

	"github.com/budgeteur/backend/internal/application/adapter"
	"github.com/budgeteur/backend/internal/domain/entity"
	"github.com/budgeteur/backend/internal/domain/valueobject"
)

// ExcludedTagsOutput lists every tag with its exclusion flag.
type ExcludedTagsOutput struct {
	Tags           []*entity.TagWithExclusion
	ExcludedTagIDs []int64
}

// GetExcludedTagsUseCase reads the excluded tags preference.
type GetExcludedTagsUseCase struct {
	tagRepo        adapter.TagRepository
	preferenceRepo adapter.PreferenceRepository
}

// NewGetExcludedTagsUseCase creates a new GetExcludedTagsUseCase instance.
func NewGetExcludedTagsUseCase(
	tagRepo adapter.TagRepository,
	preferenceRepo adapter.PreferenceRepository,
) *GetExcludedTagsUseCase {
	return &GetExcludedTagsUseCase{
		tagRepo:        tagRepo,
		preferenceRepo: preferenceRepo,
	}
}

// Execute returns every tag along with whether it is excluded.
func (uc *GetExcludedTagsUseCase) Execute(ctx context.Context) (*ExcludedTagsOutput, error) {
	return loadExcludedTags(ctx, uc.tagRepo, uc.preferenceRepo)
}

func loadExcludedTags(
	ctx context.Context,
	tagRepo adapter.TagRepository,
	preferenceRepo adapter.PreferenceRepository,
) (*ExcludedTagsOutput, error) {
	tags, err := tagRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	ids, err := preferenceRepo.GetExcludedTagIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get excluded tags: %w", err)
	}

	exclusions := valueobject.NewExclusionSet(ids...)
	return &ExcludedTagsOutput{
		Tags:           entity.WithExclusionStatus(tags, exclusions.Contains),
		ExcludedTagIDs: exclusions.IDs(),
	}, nil
}
