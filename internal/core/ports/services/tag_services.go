package services

import (
	"context"

	"github.com/SscSPs/roundup_ledger/internal/core/domain"
	"github.com/SscSPs/roundup_ledger/internal/dto"
)

// TagSvcFacade manages locations and departments.
type TagSvcFacade interface {
	ListTags(ctx context.Context, kind domain.TagKind) ([]domain.Tag, error)
	CreateTag(ctx context.Context, kind domain.TagKind, req dto.CreateTagRequest, userID string) (*domain.Tag, error)
	UpdateTag(ctx context.Context, kind domain.TagKind, tagID string, req dto.UpdateTagRequest, userID string) (*domain.Tag, error)
	DeleteTag(ctx context.Context, kind domain.TagKind, tagID string, version int64) error
}
