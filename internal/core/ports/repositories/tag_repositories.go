package repositories

import (
	"context"

	"github.com/SscSPs/roundup_ledger/internal/core/domain"
)

// TagReader defines read operations for locations and departments
type TagReader interface {
	// FindTagByID retrieves a tag of the given kind by its ID.
	FindTagByID(ctx context.Context, kind domain.TagKind, tagID string) (*domain.Tag, error)

	// ListTags retrieves all tags of a kind ordered by name.
	ListTags(ctx context.Context, kind domain.TagKind) ([]domain.Tag, error)
}

// TagWriter defines write operations for locations and departments
type TagWriter interface {
	SaveTag(ctx context.Context, tag domain.Tag) error
	UpsertTags(ctx context.Context, tags []domain.Tag) error
	UpdateTag(ctx context.Context, tag domain.Tag, expectedVersion int64) error
	DeleteTag(ctx context.Context, kind domain.TagKind, tagID string, expectedVersion int64) error
}

// TagRepositoryFacade combines all tag-related repository interfaces
type TagRepositoryFacade interface {
	TagReader
	TagWriter
}
