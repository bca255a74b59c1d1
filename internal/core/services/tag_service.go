package services

import (
	"context"
	"time"

	"github.com/blogapi/blog_backend/internal/core/domain"
	portsrepo "github.com/blogapi/blog_backend/internal/core/ports/repositories"
	portssvc "github.com/blogapi/blog_backend/internal/core/ports/services"
	"github.com/blogapi/blog_backend/internal/dto"
	"github.com/google/uuid"
)

type TagService struct {
	BaseService
	tagRepo portsrepo.TagRepositoryFacade
}

func NewTagService(tagRepo portsrepo.TagRepositoryFacade) portssvc.TagSvcFacade {
	return &TagService{tagRepo: tagRepo}
}

func (s *TagService) CreateTag(ctx context.Context, req dto.CreateTagRequest) (*domain.Tag, error) {
	now := time.Now()
	tag := domain.Tag{
		TagID: uuid.NewString(),
		Name:  req.Name,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	if err := s.tagRepo.SaveTag(ctx, tag); err != nil {
		return nil, err
	}
	return &tag, nil
}

func (s *TagService) GetTag(ctx context.Context, tagID string) (*domain.Tag, error) {
	return s.tagRepo.FindTagByID(ctx, tagID)
}

func (s *TagService) ListTags(ctx context.Context) ([]domain.Tag, error) {
	return s.tagRepo.FindTags(ctx)
}

func (s *TagService) UpdateTag(ctx context.Context, tagID string, req dto.UpdateTagRequest) (*domain.Tag, error) {
	tag, err := s.tagRepo.FindTagByID(ctx, tagID)
	if err != nil {
		return nil, err
	}
	tag.Name = req.Name
	tag.LastUpdatedAt = time.Now()
	if err := s.tagRepo.UpdateTag(ctx, *tag); err != nil {
		return nil, err
	}
	return tag, nil
}

func (s *TagService) DeleteTag(ctx context.Context, tagID string) error {
	return s.tagRepo.DeleteTag(ctx, tagID)
}
