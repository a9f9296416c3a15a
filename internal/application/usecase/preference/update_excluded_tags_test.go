package preference

import (
	"context"
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/budgeteur/backend/internal/domain/entity"
	domainerror "github.com/budgeteur/backend/internal/domain/error"
)

type fakeTagRepo struct {
	tags []*entity.Tag
}

func (f *fakeTagRepo) FindAll(_ context.Context) ([]*entity.Tag, error) {
	return f.tags, nil
}

func (f *fakeTagRepo) FindMissingIDs(_ context.Context, ids []int64) ([]int64, error) {
	known := map[int64]bool{}
	for _, tag := range f.tags {
		known[tag.ID] = true
	}
	var missing []int64
	for _, id := range ids {
		if !known[id] {
			missing = append(missing, id)
		}
	}
	return missing, nil
}

type fakePreferenceRepo struct {
	excluded []int64
	saves    int
}

func (f *fakePreferenceRepo) GetExcludedTagIDs(_ context.Context) ([]int64, error) {
	return f.excluded, nil
}

func (f *fakePreferenceRepo) ReplaceExcludedTagIDs(_ context.Context, ids []int64) error {
	f.saves++
	f.excluded = ids
	return nil
}

type countingCache struct {
	invalidations int
}

func (c *countingCache) Get(context.Context, string, any) (bool, error) {
	return false, nil
}

func (c *countingCache) Set(context.Context, string, any, time.Duration) error {
	return nil
}

func (c *countingCache) Invalidate(context.Context) error {
	c.invalidations++
	return nil
}

func TestUpdateExcludedTagsUseCase_Execute(t *testing.T) {
	tags := &fakeTagRepo{tags: []*entity.Tag{
		{ID: 1, Name: "Food"},
		{ID: 2, Name: "Rent"},
		{ID: 3, Name: "Transfers"},
	}}

	tests := []struct {
		name     string
		input    []int64
		wantIDs  []int64
		wantCode domainerror.TagErrorCode
	}{
		{name: "replaces the set", input: []int64{3, 1, 3}, wantIDs: []int64{1, 3}},
		{name: "clears the set", input: nil, wantIDs: []int64{}},
		{name: "unknown tag", input: []int64{1, 42}, wantCode: domainerror.ErrCodeTagNotFound},
		{name: "non positive id", input: []int64{0}, wantCode: domainerror.ErrCodeInvalidTagID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prefs := &fakePreferenceRepo{excluded: []int64{2}}
			cache := &countingCache{}
			uc := NewUpdateExcludedTagsUseCase(tags, prefs, cache)

			out, err := uc.Execute(context.Background(), UpdateExcludedTagsInput{TagIDs: tt.input})

			if tt.wantCode != "" {
				var tagErr *domainerror.TagError
				require.True(t, errors.As(err, &tagErr))
				assert.Equal(t, tt.wantCode, tagErr.Code)
				assert.Equal(t, 0, prefs.saves)
				assert.Equal(t, []int64{2}, prefs.excluded)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantIDs, out.ExcludedTagIDs)
			assert.Equal(t, 1, cache.invalidations)
			require.Len(t, out.Tags, 3)
			for _, tag := range out.Tags {
				assert.Equal(t, slices.Contains(tt.wantIDs, tag.Tag.ID), tag.IsExcluded, "tag %d", tag.Tag.ID)
			}
		})
	}
}

func TestGetExcludedTagsUseCase_Execute(t *testing.T) {
	uc := NewGetExcludedTagsUseCase(
		&fakeTagRepo{tags: []*entity.Tag{{ID: 1, Name: "Food"}, {ID: 2, Name: "Rent"}}},
		&fakePreferenceRepo{excluded: []int64{2}},
	)

	out, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int64{2}, out.ExcludedTagIDs)
	assert.False(t, out.Tags[0].IsExcluded)
	assert.True(t, out.Tags[1].IsExcluded)
}
