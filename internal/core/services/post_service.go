package services

import (
	"context"
	"time"

	"github.com/blogapi/blog_backend/internal/apperrors"
	"github.com/blogapi/blog_backend/internal/core/domain"
	portsrepo "github.com/blogapi/blog_backend/internal/core/ports/repositories"
	portssvc "github.com/blogapi/blog_backend/internal/core/ports/services"
	"github.com/blogapi/blog_backend/internal/dto"
	"github.com/google/uuid"
)

type PostService struct {
	BaseService
	postRepo portsrepo.PostRepositoryFacade
}

func NewPostService(postRepo portsrepo.PostRepositoryFacade) portssvc.PostSvcFacade {
	return &PostService{postRepo: postRepo}
}

// canModerate reports whether the role can act on other authors' posts.
func canModerate(role domain.UserRole) bool {
	return role == domain.RoleEditor || role == domain.RoleAdmin
}

func (s *PostService) CreatePost(ctx context.Context, authorID string, req dto.CreatePostRequest) (*domain.Post, error) {
	now := time.Now()
	status := domain.PostStatus(req.Status)
	if req.Status == "" {
		status = domain.PostDraft
	}

	post := domain.Post{
		PostID:     uuid.NewString(),
		Title:      req.Title,
		Content:    req.Content,
		AuthorID:   authorID,
		CategoryID: req.CategoryID,
		Status:     status,
		TagIDs:     req.TagIDs,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	if status == domain.PostPublished {
		post.PublishedAt = &now
	}

	if err := s.postRepo.SavePost(ctx, post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (s *PostService) GetPost(ctx context.Context, postID string, requesterID string, requesterRole domain.UserRole) (*domain.Post, error) {
	post, err := s.postRepo.FindPostByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	// Drafts are visible only to their author and to editors/admins.
	if post.Status == domain.PostDraft && post.AuthorID != requesterID && !canModerate(requesterRole) {
		return nil, apperrors.ErrForbidden
	}
	return post, nil
}

func (s *PostService) ListMyPosts(ctx context.Context, authorID string, params dto.ListPostsParams) ([]domain.Post, int64, error) {
	page := params.Page
	if page < 1 {
		page = 1
	}
	limit := params.Limit
	if limit < 1 {
		limit = 10
	}
	return s.postRepo.FindPostsByAuthor(ctx, authorID, limit, (page-1)*limit)
}

func (s *PostService) UpdatePost(ctx context.Context, postID string, requesterID string, requesterRole domain.UserRole, req dto.UpdatePostRequest) (*domain.Post, error) {
	post, err := s.postRepo.FindPostByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post.AuthorID != requesterID && !canModerate(requesterRole) {
		return nil, apperrors.ErrForbidden
	}

	now := time.Now()
	if req.Title != nil {
		post.Title = *req.Title
	}
	if req.Content != nil {
		post.Content = *req.Content
	}
	if req.CategoryID != nil {
		post.CategoryID = req.CategoryID
	}
	if req.Status != nil {
		newStatus := domain.PostStatus(*req.Status)
		if newStatus == domain.PostPublished && post.Status != domain.PostPublished {
			post.PublishedAt = &now
		}
		post.Status = newStatus
	}
	post.LastUpdatedAt = now

	if err := s.postRepo.UpdatePost(ctx, *post); err != nil {
		return nil, err
	}

	if req.TagIDs != nil {
		if err := s.postRepo.ReplacePostTags(ctx, postID, *req.TagIDs); err != nil {
			return nil, err
		}
		post.TagIDs = *req.TagIDs
	}

	return post, nil
}

func (s *PostService) DeletePost(ctx context.Context, postID string, requesterID string, requesterRole domain.UserRole) error {
	post, err := s.postRepo.FindPostByID(ctx, postID)
	if err != nil {
		return err
	}
	if post.AuthorID != requesterID && !canModerate(requesterRole) {
		return apperrors.ErrForbidden
	}
	return s.postRepo.DeletePost(ctx, postID)
}
