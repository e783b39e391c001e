package services

import (
	"context"
	"time"

	"eventmanagement/internal/domain"
)

const (
	defaultTagLimit = 50
	maxTagLimit     = 200
)

type tagService struct {
	tagRepo        domain.TagRepository
	contextTimeout time.Duration
}

// NewTagService creates a new tag service.
func NewTagService(tagRepo domain.TagRepository, timeout time.Duration) domain.TagService {
	return &tagService{
		tagRepo:        tagRepo,
		contextTimeout: timeout,
	}
}

// ListTags clamps limit to (0, maxTagLimit]; a non-positive limit means the default.
func (s *tagService) ListTags(ctx context.Context, accountID string, limit int) ([]domain.TagCount, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if limit <= 0 {
		limit = defaultTagLimit
	}
	return s.tagRepo.ListByAccountID(ctx, accountID, min(limit, maxTagLimit))
}
