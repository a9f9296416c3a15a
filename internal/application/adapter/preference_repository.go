package adapter

import "context"

// PreferenceRepository persists the set of tags excluded from aggregates.
type PreferenceRepository interface {
	// GetExcludedTagIDs returns the excluded tag ids in ascending order.
	GetExcludedTagIDs(ctx context.Context) ([]int64, error)

	// ReplaceExcludedTagIDs atomically replaces the whole excluded set.
	ReplaceExcludedTagIDs(ctx context.Context, ids []int64) error
}
