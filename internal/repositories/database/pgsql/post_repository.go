package pgsql

import (
	"context"

	"github.com/blogapi/blog_backend/internal/core/domain"
	portsrepo "github.com/blogapi/blog_backend/internal/core/ports/repositories"
	"github.com/blogapi/blog_backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxPostRepository struct {
	BaseRepository
}

func newPgxPostRepository(db *pgxpool.Pool) portsrepo.PostRepositoryFacade {
	return &PgxPostRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.PostRepositoryFacade = (*PgxPostRepository)(nil)

func toModelPost(d domain.Post) models.Post {
	return models.Post{
		PostID:      d.PostID,
		Title:       d.Title,
		Content:     d.Content,
		AuthorID:    d.AuthorID,
		CategoryID:  toNullString(d.CategoryID),
		Status:      string(d.Status),
		PublishedAt: toNullTime(d.PublishedAt),
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
}

func toDomainPost(m models.Post) domain.Post {
	return domain.Post{
		PostID:      m.PostID,
		Title:       m.Title,
		Content:     m.Content,
		AuthorID:    m.AuthorID,
		CategoryID:  fromNullString(m.CategoryID),
		Status:      domain.PostStatus(m.Status),
		PublishedAt: fromNullTime(m.PublishedAt),
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

func (r *PgxPostRepository) SavePost(ctx context.Context, post domain.Post) error {
	m := toModelPost(post)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	query := `
        INSERT INTO posts (post_id, title, content, author_id, category_id, status, published_at, created_at, last_updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
    `
	_, err = tx.Exec(ctx, query,
		m.PostID, m.Title, m.Content, m.AuthorID, m.CategoryID, m.Status, m.PublishedAt, m.CreatedAt, m.LastUpdatedAt,
	)
	if err != nil {
		return translateError(err, "save post")
	}

	if err := insertPostTags(ctx, tx, post.PostID, post.TagIDs); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return translateError(err, "commit save post")
	}
	return nil
}

func (r *PgxPostRepository) FindPostByID(ctx context.Context, postID string) (*domain.Post, error) {
	query := `
        SELECT post_id, title, content, author_id, category_id, status, published_at, created_at, last_updated_at
        FROM posts
        WHERE post_id = $1;
    `
	var m models.Post
	err := r.Pool.QueryRow(ctx, query, postID).Scan(
		&m.PostID, &m.Title, &m.Content, &m.AuthorID, &m.CategoryID, &m.Status, &m.PublishedAt, &m.CreatedAt, &m.LastUpdatedAt,
	)
	if err != nil {
		return nil, translateError(err, "find post by ID")
	}

	post := toDomainPost(m)
	tagIDs, err := r.findTagIDs(ctx, postID)
	if err != nil {
		return nil, err
	}
	post.TagIDs = tagIDs
	return &post, nil
}

func (r *PgxPostRepository) findTagIDs(ctx context.Context, postID string) ([]string, error) {
	rows, err := r.Pool.Query(ctx, `SELECT tag_id FROM post_tags WHERE post_id = $1 ORDER BY tag_id;`, postID)
	if err != nil {
		return nil, translateError(err, "find post tags")
	}
	defer rows.Close()

	var tagIDs []string
	for rows.Next() {
		var tagID string
		if err := rows.Scan(&tagID); err != nil {
			return nil, translateError(err, "scan post tag")
		}
		tagIDs = append(tagIDs, tagID)
	}
	if rows.Err() != nil {
		return nil, translateError(rows.Err(), "iterate post tags")
	}
	return tagIDs, nil
}

func (r *PgxPostRepository) FindPostsByAuthor(ctx context.Context, authorID string, limit, offset int) ([]domain.Post, int64, error) {
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}

	query := `
        SELECT post_id, title, content, author_id, category_id, status, published_at, created_at, last_updated_at
        FROM posts
        WHERE author_id = $1
        ORDER BY created_at DESC
        LIMIT $2 OFFSET $3;
    `
	rows, err := r.Pool.Query(ctx, query, authorID, limit, offset)
	if err != nil {
		return nil, 0, translateError(err, "query posts by author")
	}
	defer rows.Close()

	posts := []domain.Post{}
	for rows.Next() {
		var m models.Post
		err := rows.Scan(&m.PostID, &m.Title, &m.Content, &m.AuthorID, &m.CategoryID, &m.Status, &m.PublishedAt, &m.CreatedAt, &m.LastUpdatedAt)
		if err != nil {
			return nil, 0, translateError(err, "scan post row")
		}
		posts = append(posts, toDomainPost(m))
	}
	if rows.Err() != nil {
		return nil, 0, translateError(rows.Err(), "iterate post rows")
	}

	var total int64
	err = r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM posts WHERE author_id = $1;`, authorID).Scan(&total)
	if err != nil {
		return nil, 0, translateError(err, "count posts by author")
	}

	return posts, total, nil
}

func (r *PgxPostRepository) UpdatePost(ctx context.Context, post domain.Post) error {
	m := toModelPost(post)
	query := `
        UPDATE posts
        SET title = $1, content = $2, category_id = $3, status = $4, published_at = $5, last_updated_at = $6
        WHERE post_id = $7;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.Title, m.Content, m.CategoryID, m.Status, m.PublishedAt, m.LastUpdatedAt, m.PostID,
	)
	if err != nil {
		return translateError(err, "update post")
	}
	if cmdTag.RowsAffected() == 0 {
		return translateError(pgx.ErrNoRows, "update post")
	}
	return nil
}

func (r *PgxPostRepository) DeletePost(ctx context.Context, postID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM posts WHERE post_id = $1;`, postID)
	if err != nil {
		return translateError(err, "delete post")
	}
	if cmdTag.RowsAffected() == 0 {
		return translateError(pgx.ErrNoRows, "delete post")
	}
	return nil
}

func (r *PgxPostRepository) ReplacePostTags(ctx context.Context, postID string, tagIDs []string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM post_tags WHERE post_id = $1;`, postID); err != nil {
		return translateError(err, "clear post tags")
	}
	if err := insertPostTags(ctx, tx, postID, tagIDs); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return translateError(err, "commit replace post tags")
	}
	return nil
}

func insertPostTags(ctx context.Context, tx pgx.Tx, postID string, tagIDs []string) error {
	for _, tagID := range tagIDs {
		_, err := tx.Exec(ctx, `INSERT INTO post_tags (post_id, tag_id) VALUES ($1, $2);`, postID, tagID)
		if err != nil {
			return translateError(err, "insert post tag")
		}
	}
	return nil
}
