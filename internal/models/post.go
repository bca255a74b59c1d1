package models

import "database/sql"

// Post represents a row in the posts table.
type Post struct {
	PostID      string         `db:"post_id"`
	Title       string         `db:"title"`
	Content     string         `db:"content"`
	AuthorID    string         `db:"author_id"`
	CategoryID  sql.NullString `db:"category_id"`
	Status      string         `db:"status"`
	PublishedAt sql.NullTime   `db:"published_at"`
	AuditFields
}

// Category represents a row in the categories table.
type Category struct {
	CategoryID string `db:"category_id"`
	Name       string `db:"name"`
	AuditFields
}

// Tag represents a row in the tags table.
type Tag struct {
	TagID string `db:"tag_id"`
	Name  string `db:"name"`
	AuditFields
}

// PostTag links posts to tags.
type PostTag struct {
	PostID string `db:"post_id"`
	TagID  string `db:"tag_id"`
}
