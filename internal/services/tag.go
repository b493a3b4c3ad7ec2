package services

import (
	"context"
	"fmt"

	"eventcollective/internal/domain"
)

type tagService struct {
	tagRepo domain.TagRepository
}

// NewTagService creates a TagService with the given repository.
func NewTagService(tagRepo domain.TagRepository) domain.TagService {
	return &tagService{tagRepo: tagRepo}
}

func (s *tagService) ListAll(ctx context.Context) ([]*domain.Tag, error) {
	tags, err := s.tagRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	return tags, nil
}
