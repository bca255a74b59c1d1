package repositories

import (
	"context"

	"github.com/blogapi/blog_backend/internal/core/domain"
)

// PostRepositoryFacade defines persistence for posts and their tag links.
type PostRepositoryFacade interface {
	SavePost(ctx context.Context, post domain.Post) error
	FindPostByID(ctx context.Context, postID string) (*domain.Post, error)
	FindPostsByAuthor(ctx context.Context, authorID string, limit, offset int) ([]domain.Post, int64, error)
	UpdatePost(ctx context.Context, post domain.Post) error
	DeletePost(ctx context.Context, postID string) error

	// ReplacePostTags swaps the post's tag links for the given set.
	ReplacePostTags(ctx context.Context, postID string, tagIDs []string) error
}

// CategoryRepositoryFacade defines persistence for categories.
type CategoryRepositoryFacade interface {
	SaveCategory(ctx context.Context, category domain.Category) error
	FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)
	FindCategories(ctx context.Context) ([]domain.Category, error)
	UpdateCategory(ctx context.Context, category domain.Category) error
	DeleteCategory(ctx context.Context, categoryID string) error
}

// TagRepositoryFacade defines persistence for tags.
type TagRepositoryFacade interface {
	SaveTag(ctx context.Context, tag domain.Tag) error
	FindTagByID(ctx context.Context, tagID string) (*domain.Tag, error)
	FindTags(ctx context.Context) ([]domain.Tag, error)
	UpdateTag(ctx context.Context, tag domain.Tag) error
	DeleteTag(ctx context.Context, tagID string) error
}
