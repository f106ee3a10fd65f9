package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/roundup_ledger/internal/apperrors"
	"github.com/SscSPs/roundup_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/roundup_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/roundup_ledger/internal/core/ports/services"
	"github.com/SscSPs/roundup_ledger/internal/dto"
)

// tagService implements the TagSvcFacade interface for locations and departments.
type tagService struct {
	BaseService
	tagRepo portsrepo.TagRepositoryFacade
}

// NewTagService creates a new tag service.
func NewTagService(repo portsrepo.TagRepositoryFacade) portssvc.TagSvcFacade {
	return &tagService{
		BaseService: newBaseService(),
		tagRepo:     repo,
	}
}

var _ portssvc.TagSvcFacade = (*tagService)(nil)

func (s *tagService) ListTags(ctx context.Context, kind domain.TagKind) ([]domain.Tag, error) {
	tags, err := s.tagRepo.ListTags(ctx, kind)
	if err != nil {
		s.LogError(ctx, err, "Failed to list tags", slog.String("kind", string(kind)))
		return nil, fmt.Errorf("failed to list %s tags: %w", kind, err)
	}
	if tags == nil {
		return []domain.Tag{}, nil
	}
	return tags, nil
}

func (s *tagService) CreateTag(ctx context.Context, kind domain.TagKind, req dto.CreateTagRequest, userID string) (*domain.Tag, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: %s name is required", apperrors.ErrValidation, kind)
	}

	now := s.Now()
	tag := domain.Tag{
		TagID:   s.NewID(),
		Kind:    kind,
		Name:    name,
		Version: 1,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.tagRepo.SaveTag(ctx, tag); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save tag", slog.String("kind", string(kind)))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Tag created", slog.String("kind", string(kind)), slog.String("tag_id", tag.TagID))
	return &tag, nil
}

func (s *tagService) UpdateTag(ctx context.Context, kind domain.TagKind, tagID string, req dto.UpdateTagRequest, userID string) (*domain.Tag, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: %s name is required", apperrors.ErrValidation, kind)
	}

	current, err := s.tagRepo.FindTagByID(ctx, kind, tagID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find tag", slog.String("tag_id", tagID))
		}
		return nil, err
	}
	if current.Version != req.Version {
		return nil, fmt.Errorf("%w: %s %s is at version %d, request was based on %d", apperrors.ErrConflict, kind, tagID, current.Version, req.Version)
	}

	updated := *current
	updated.Name = name
	updated.Version = req.Version + 1
	updated.LastUpdatedAt = s.Now()
	updated.LastUpdatedBy = userID

	if err := s.tagRepo.UpdateTag(ctx, updated, req.Version); err != nil {
		if !errors.Is(err, apperrors.ErrConflict) && !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to update tag", slog.String("tag_id", tagID))
		}
		return nil, err
	}
	return &updated, nil
}

func (s *tagService) DeleteTag(ctx context.Context, kind domain.TagKind, tagID string, version int64) error {
	if err := s.tagRepo.DeleteTag(ctx, kind, tagID, version); err != nil {
		if !errors.Is(err, apperrors.ErrConflict) && !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete tag", slog.String("tag_id", tagID))
		}
		return err
	}
	s.LogInfo(ctx, "Tag deleted", slog.String("kind", string(kind)), slog.String("tag_id", tagID))
	return nil
}
