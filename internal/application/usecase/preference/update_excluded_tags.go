package preference

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/budgeteur/backend/internal/application/adapter"
	domainerror "github.com/budgeteur/backend/internal/domain/error"
	"github.com/budgeteur/backend/internal/domain/valueobject"
)

// UpdateExcludedTagsInput represents the new excluded set. It replaces the stored one.
type UpdateExcludedTagsInput struct {
	TagIDs []int64
}

// UpdateExcludedTagsUseCase replaces the excluded tags preference.
type UpdateExcludedTagsUseCase struct {
	tagRepo        adapter.TagRepository
	preferenceRepo adapter.PreferenceRepository
	cache          adapter.DashboardCache
}

// NewUpdateExcludedTagsUseCase creates a new UpdateExcludedTagsUseCase instance.
func NewUpdateExcludedTagsUseCase(
	tagRepo adapter.TagRepository,
	preferenceRepo adapter.PreferenceRepository,
	cache adapter.DashboardCache,
) *UpdateExcludedTagsUseCase {
	return &UpdateExcludedTagsUseCase{
		tagRepo:        tagRepo,
		preferenceRepo: preferenceRepo,
		cache:          cache,
	}
}

// Execute validates and stores the excluded set, then returns the refreshed tag list.
func (uc *UpdateExcludedTagsUseCase) Execute(ctx context.Context, input UpdateExcludedTagsInput) (*ExcludedTagsOutput, error) {
	for _, id := range input.TagIDs {
		if id <= 0 {
			return nil, domainerror.NewTagError(
				domainerror.ErrCodeInvalidTagID,
				fmt.Sprintf("invalid tag id %d", id),
				domainerror.ErrInvalidTagID,
			)
		}
	}

	ids := valueobject.NewExclusionSet(input.TagIDs...).IDs()
	if len(ids) > 0 {
		missing, err := uc.tagRepo.FindMissingIDs(ctx, ids)
		if err != nil {
			return nil, fmt.Errorf("failed to check tags: %w", err)
		}
		if len(missing) > 0 {
			return nil, domainerror.NewTagError(
				domainerror.ErrCodeTagNotFound,
				fmt.Sprintf("unknown tag ids %v", missing),
				domainerror.ErrTagNotFound,
			)
		}
	}

	if err := uc.preferenceRepo.ReplaceExcludedTagIDs(ctx, ids); err != nil {
		return nil, fmt.Errorf("failed to save excluded tags: %w", err)
	}
	slog.InfoContext(ctx, "excluded tags updated", "tag_ids", ids)

	if err := uc.cache.Invalidate(ctx); err != nil {
		slog.WarnContext(ctx, "dashboard cache invalidation failed", "error", err)
	}

	return loadExcludedTags(ctx, uc.tagRepo, uc.preferenceRepo)
}
