package dto

import (
	"github.com/budgeteur/backend/internal/application/usecase/preference"
	"github.com/budgeteur/backend/internal/domain/entity"
)

// UpdateExcludedTagsRequest replaces the excluded tags.
type UpdateExcludedTagsRequest struct {
	TagIDs []int64 `json:"tag_ids"`
}

// TagResponse is a tag with its exclusion flag.
type TagResponse struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	IsExcluded bool   `json:"is_excluded"`
}

// ExcludedTagsResponse lists every tag and the excluded ids.
type ExcludedTagsResponse struct {
	Tags           []TagResponse `json:"tags"`
	ExcludedTagIDs []int64       `json:"excluded_tag_ids"`
}

// ToTagResponses converts tags with exclusion status to response DTOs.
func ToTagResponses(tags []*entity.TagWithExclusion) []TagResponse {
	result := make([]TagResponse, len(tags))
	for i, t := range tags {
		result[i] = TagResponse{
			ID:         t.Tag.ID,
			Name:       t.Tag.Name,
			IsExcluded: t.IsExcluded,
		}
	}
	return result
}

// ToExcludedTagsResponse converts the preference use case output to its response DTO.
func ToExcludedTagsResponse(output *preference.ExcludedTagsOutput) ExcludedTagsResponse {
	return ExcludedTagsResponse{
		Tags:           ToTagResponses(output.Tags),
		ExcludedTagIDs: output.ExcludedTagIDs,
	}
}
