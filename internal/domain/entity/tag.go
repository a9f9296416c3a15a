package entity

import "time"

// UntaggedLabel is the display name of the synthetic tag holding untagged transactions.
// It always sorts after every real tag.
const UntaggedLabel = "Other"

// Tag labels transactions for aggregation. Names are unique.
type Tag struct {
	ID        int64
	Name      string
	CreatedAt time.Time
}

// NewTag creates a new Tag entity.
func NewTag(name string) *Tag {
	return &Tag{
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
}

// TagWithExclusion pairs a tag with whether it is left out of aggregates.
type TagWithExclusion struct {
	Tag        *Tag
	IsExcluded bool
}

// WithExclusionStatus pairs every tag with its exclusion flag, keeping the input order.
func WithExclusionStatus(tags []*Tag, isExcluded func(id int64) bool) []*TagWithExclusion {
	result := make([]*TagWithExclusion, 0, len(tags))
	for _, tag := range tags {
		result = append(result, &TagWithExclusion{Tag: tag, IsExcluded: isExcluded(tag.ID)})
	}
	return result
}
