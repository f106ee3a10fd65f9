package dto

import (
	"time"

	"github.com/SscSPs/roundup_ledger/internal/core/domain"
)

// CreateTagRequest defines the data needed to create a location or department.
type CreateTagRequest struct {
	Name string `json:"name" binding:"required,max=255"`
}

// UpdateTagRequest renames a location or department.
type UpdateTagRequest struct {
	Name    string `json:"name" binding:"required,max=255"`
	Version int64  `json:"version" binding:"required,min=1"`
}

// DeleteTagParams carries the version for a delete.
type DeleteTagParams struct {
	Version int64 `form:"version" binding:"required,min=1"`
}

// TagResponse defines the data returned for a location or department.
type TagResponse struct {
	TagID         string    `json:"id"`
	Kind          string    `json:"kind"`
	Name          string    `json:"name"`
	Version       int64     `json:"version"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// ToTagResponse converts a domain.Tag to TagResponse DTO
func ToTagResponse(t *domain.Tag) TagResponse {
	return TagResponse{
		TagID:         t.TagID,
		Kind:          string(t.Kind),
		Name:          t.Name,
		Version:       t.Version,
		CreatedAt:     t.CreatedAt,
		LastUpdatedAt: t.LastUpdatedAt,
	}
}

// ListTagsResponse wraps a list of tags of one kind.
type ListTagsResponse struct {
	Tags []TagResponse `json:"tags"`
}

// ToListTagsResponse converts a slice of domain.Tag into a ListTagsResponse.
func ToListTagsResponse(tags []domain.Tag) ListTagsResponse {
	res := ListTagsResponse{Tags: make([]TagResponse, len(tags))}
	for i, t := range tags {
		res.Tags[i] = ToTagResponse(&t)
	}
	return res
}
