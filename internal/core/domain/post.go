package domain

import "time"

// PostStatus enumerates the publication states of a post.
type PostStatus string

const (
	PostDraft     PostStatus = "draft"
	PostPublished PostStatus = "published"
)

// Post represents a blog post in the domain.
type Post struct {
	PostID      string     `json:"postID"`
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	AuthorID    string     `json:"authorID"`
	CategoryID  *string    `json:"categoryID,omitempty"`
	Status      PostStatus `json:"status"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
	TagIDs      []string   `json:"tagIDs,omitempty"`
	AuditFields
}

// Category groups posts under a unique name.
type Category struct {
	CategoryID string `json:"categoryID"`
	Name       string `json:"name"`
	AuditFields
}

// Tag labels posts; names are unique.
type Tag struct {
	TagID string `json:"tagID"`
	Name  string `json:"name"`
	AuditFields
}
