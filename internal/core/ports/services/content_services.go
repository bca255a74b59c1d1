package services

import (
	"context"

	"github.com/blogapi/blog_backend/internal/core/domain"
	"github.com/blogapi/blog_backend/internal/dto"
)

// PostSvcFacade exposes post CRUD. Draft posts are visible only to their
// author and to editors/admins; mutations require ownership or one of those
// roles.
type PostSvcFacade interface {
	CreatePost(ctx context.Context, authorID string, req dto.CreatePostRequest) (*domain.Post, error)
	GetPost(ctx context.Context, postID string, requesterID string, requesterRole domain.UserRole) (*domain.Post, error)
	ListMyPosts(ctx context.Context, authorID string, params dto.ListPostsParams) ([]domain.Post, int64, error)
	UpdatePost(ctx context.Context, postID string, requesterID string, requesterRole domain.UserRole, req dto.UpdatePostRequest) (*domain.Post, error)
	DeletePost(ctx context.Context, postID string, requesterID string, requesterRole domain.UserRole) error
}

// CategorySvcFacade exposes category CRUD.
type CategorySvcFacade interface {
	CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*domain.Category, error)
	GetCategory(ctx context.Context, categoryID string) (*domain.Category, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateCategoryRequest) (*domain.Category, error)
	DeleteCategory(ctx context.Context, categoryID string) error
}

// TagSvcFacade exposes tag CRUD.
type TagSvcFacade interface {
	CreateTag(ctx context.Context, req dto.CreateTagRequest) (*domain.Tag, error)
	GetTag(ctx context.Context, tagID string) (*domain.Tag, error)
	ListTags(ctx context.Context) ([]domain.Tag, error)
	UpdateTag(ctx context.Context, tagID string, req dto.UpdateTagRequest) (*domain.Tag, error)
	DeleteTag(ctx context.Context, tagID string) error
}
