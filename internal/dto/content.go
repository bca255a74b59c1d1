package dto

import (
	"time"

	"github.com/blogapi/blog_backend/internal/core/domain"
)

// CreatePostRequest carries the payload for creating a post.
type CreatePostRequest struct {
	Title      string   `json:"title" binding:"required,min=1"`
	Content    string   `json:"content" binding:"required"`
	CategoryID *string  `json:"categoryId,omitempty" binding:"omitempty,uuid"`
	TagIDs     []string `json:"tagIds" binding:"omitempty,dive,uuid"`
	Status     string   `json:"status" binding:"omitempty,oneof=draft published"`
}

// UpdatePostRequest enumerates the mutable fields of a post.
// Pointers distinguish omitted fields from zero values.
type UpdatePostRequest struct {
	Title      *string   `json:"title,omitempty" binding:"omitempty,min=1"`
	Content    *string   `json:"content,omitempty"`
	CategoryID *string   `json:"categoryId,omitempty" binding:"omitempty,uuid"`
	TagIDs     *[]string `json:"tagIds,omitempty" binding:"omitempty,dive,uuid"`
	Status     *string   `json:"status,omitempty" binding:"omitempty,oneof=draft published"`
}

// PostResponse is the outward representation of a post.
type PostResponse struct {
	PostID      string     `json:"postId"`
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	AuthorID    string     `json:"authorId"`
	CategoryID  *string    `json:"categoryId,omitempty"`
	Status      string     `json:"status"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
	TagIDs      []string   `json:"tagIds,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// ToPostResponse converts a domain.Post to its outward representation.
func ToPostResponse(post *domain.Post) PostResponse {
	return PostResponse{
		PostID:      post.PostID,
		Title:       post.Title,
		Content:     post.Content,
		AuthorID:    post.AuthorID,
		CategoryID:  post.CategoryID,
		Status:      string(post.Status),
		PublishedAt: post.PublishedAt,
		TagIDs:      post.TagIDs,
		CreatedAt:   post.CreatedAt,
	}
}

// ListPostsParams defines query parameters for listing posts.
type ListPostsParams struct {
	Page  int `form:"page,default=1" binding:"omitempty,min=1"`
	Limit int `form:"limit,default=10" binding:"omitempty,min=1,max=100"`
}

// ListPostsResponse wraps a page of posts.
type ListPostsResponse struct {
	Posts      []PostResponse `json:"posts"`
	Total      int64          `json:"total"`
	Page       int            `json:"page"`
	TotalPages int64          `json:"totalPages"`
}

// CreateCategoryRequest carries the payload for creating a category.
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required,min=1"`
}

// UpdateCategoryRequest enumerates the mutable fields of a category.
type UpdateCategoryRequest struct {
	Name string `json:"name" binding:"required,min=1"`
}

// CategoryResponse is the outward representation of a category.
type CategoryResponse struct {
	CategoryID string    `json:"categoryId"`
	Name       string    `json:"name"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ToCategoryResponse converts a domain.Category to its outward representation.
func ToCategoryResponse(category *domain.Category) CategoryResponse {
	return CategoryResponse{
		CategoryID: category.CategoryID,
		Name:       category.Name,
		CreatedAt:  category.CreatedAt,
	}
}

// CreateTagRequest carries the payload for creating a tag.
type CreateTagRequest struct {
	Name string `json:"name" binding:"required,min=1"`
}

// UpdateTagRequest enumerates the mutable fields of a tag.
type UpdateTagRequest struct {
	Name string `json:"name" binding:"required,min=1"`
}

// TagResponse is the outward representation of a tag.
type TagResponse struct {
	TagID     string    `json:"tagId"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToTagResponse converts a domain.Tag to its outward representation.
func ToTagResponse(tag *domain.Tag) TagResponse {
	return TagResponse{
		TagID:     tag.TagID,
		Name:      tag.Name,
		CreatedAt: tag.CreatedAt,
	}
}
