package pgsql

import (
	"context"

	"github.com/blogapi/blog_backend/internal/core/domain"
	portsrepo "github.com/blogapi/blog_backend/internal/core/ports/repositories"
	"github.com/blogapi/blog_backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTagRepository struct {
	BaseRepository
}

func newPgxTagRepository(db *pgxpool.Pool) portsrepo.TagRepositoryFacade {
	return &PgxTagRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.TagRepositoryFacade = (*PgxTagRepository)(nil)

func toDomainTag(m models.Tag) domain.Tag {
	return domain.Tag{
		TagID: m.TagID,
		Name:  m.Name,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

func (r *PgxTagRepository) SaveTag(ctx context.Context, tag domain.Tag) error {
	query := `INSERT INTO tags (tag_id, name, created_at, last_updated_at) VALUES ($1, $2, $3, $4);`
	_, err := r.Pool.Exec(ctx, query, tag.TagID, tag.Name, tag.CreatedAt, tag.LastUpdatedAt)
	if err != nil {
		return translateError(err, "save tag")
	}
	return nil
}

func (r *PgxTagRepository) FindTagByID(ctx context.Context, tagID string) (*domain.Tag, error) {
	query := `SELECT tag_id, name, created_at, last_updated_at FROM tags WHERE tag_id = $1;`

	var m models.Tag
	err := r.Pool.QueryRow(ctx, query, tagID).Scan(&m.TagID, &m.Name, &m.CreatedAt, &m.LastUpdatedAt)
	if err != nil {
		return nil, translateError(err, "find tag by ID")
	}
	tag := toDomainTag(m)
	return &tag, nil
}

func (r *PgxTagRepository) FindTags(ctx context.Context) ([]domain.Tag, error) {
	rows, err := r.Pool.Query(ctx, `SELECT tag_id, name, created_at, last_updated_at FROM tags ORDER BY name;`)
	if err != nil {
		return nil, translateError(err, "query tags")
	}
	defer rows.Close()

	tags := []domain.Tag{}
	for rows.Next() {
		var m models.Tag
		if err := rows.Scan(&m.TagID, &m.Name, &m.CreatedAt, &m.LastUpdatedAt); err != nil {
			return nil, translateError(err, "scan tag row")
		}
		tags = append(tags, toDomainTag(m))
	}
	if rows.Err() != nil {
		return nil, translateError(rows.Err(), "iterate tag rows")
	}
	return tags, nil
}

func (r *PgxTagRepository) UpdateTag(ctx context.Context, tag domain.Tag) error {
	query := `UPDATE tags SET name = $1, last_updated_at = $2 WHERE tag_id = $3;`
	cmdTag, err := r.Pool.Exec(ctx, query, tag.Name, tag.LastUpdatedAt, tag.TagID)
	if err != nil {
		return translateError(err, "update tag")
	}
	if cmdTag.RowsAffected() == 0 {
		return translateError(pgx.ErrNoRows, "update tag")
	}
	return nil
}

func (r *PgxTagRepository) DeleteTag(ctx context.Context, tagID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM tags WHERE tag_id = $1;`, tagID)
	if err != nil {
		return translateError(err, "delete tag")
	}
	if cmdTag.RowsAffected() == 0 {
		return translateError(pgx.ErrNoRows, "delete tag")
	}
	return nil
}
