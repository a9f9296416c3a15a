package valueobject

import (
	"slices"
	"strconv"
	"strings"
)

// ExclusionSet holds the tag ids left out of aggregates.
// Untagged transactions are never excluded.
type ExclusionSet struct {
	ids map[int64]struct{}
}

// NewExclusionSet builds a set from tag ids; duplicates are ignored.
func NewExclusionSet(ids ...int64) ExclusionSet {
	set := ExclusionSet{ids: make(map[int64]struct{}, len(ids))}
	for _, id := range ids {
		set.ids[id] = struct{}{}
	}
	return set
}

// Contains reports whether id is excluded.
func (s ExclusionSet) Contains(id int64) bool {
	_, ok := s.ids[id]
	return ok
}

// Excludes reports whether a transaction carrying tagID is left out of totals.
func (s ExclusionSet) Excludes(tagID *int64) bool {
	return tagID != nil && s.Contains(*tagID)
}

// Len returns the number of excluded tags.
func (s ExclusionSet) Len() int {
	return len(s.ids)
}

// IDs returns the excluded tag ids in ascending order.
func (s ExclusionSet) IDs() []int64 {
	ids := make([]int64, 0, len(s.ids))
	for id := range s.ids {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Key is a stable textual form, e.g. "3,7,12". Empty sets yield "none".
func (s ExclusionSet) Key() string {
	if s.Len() == 0 {
		return "none"
	}
	parts := make([]string, 0, s.Len())
	for _, id := range s.IDs() {
		parts = append(parts, strconv.FormatInt(id, 10))
	}
	return strings.Join(parts, ",")
}
