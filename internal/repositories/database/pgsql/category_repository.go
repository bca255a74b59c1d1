package pgsql

import (
	"context"

	"github.com/blogapi/blog_backend/internal/core/domain"
	portsrepo "github.com/blogapi/blog_backend/internal/core/ports/repositories"
	"github.com/blogapi/blog_backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCategoryRepository struct {
	BaseRepository
}

func newPgxCategoryRepository(db *pgxpool.Pool) portsrepo.CategoryRepositoryFacade {
	return &PgxCategoryRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.CategoryRepositoryFacade = (*PgxCategoryRepository)(nil)

func toDomainCategory(m models.Category) domain.Category {
	return domain.Category{
		CategoryID: m.CategoryID,
		Name:       m.Name,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

func (r *PgxCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	query := `
        INSERT INTO categories (category_id, name, created_at, last_updated_at)
        VALUES ($1, $2, $3, $4);
    `
	_, err := r.Pool.Exec(ctx, query, category.CategoryID, category.Name, category.CreatedAt, category.LastUpdatedAt)
	if err != nil {
		return translateError(err, "save category")
	}
	return nil
}

func (r *PgxCategoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	query := `SELECT category_id, name, created_at, last_updated_at FROM categories WHERE category_id = $1;`

	var m models.Category
	err := r.Pool.QueryRow(ctx, query, categoryID).Scan(&m.CategoryID, &m.Name, &m.CreatedAt, &m.LastUpdatedAt)
	if err != nil {
		return nil, translateError(err, "find category by ID")
	}
	category := toDomainCategory(m)
	return &category, nil
}

func (r *PgxCategoryRepository) FindCategories(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.Pool.Query(ctx, `SELECT category_id, name, created_at, last_updated_at FROM categories ORDER BY name;`)
	if err != nil {
		return nil, translateError(err, "query categories")
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		var m models.Category
		if err := rows.Scan(&m.CategoryID, &m.Name, &m.CreatedAt, &m.LastUpdatedAt); err != nil {
			return nil, translateError(err, "scan category row")
		}
		categories = append(categories, toDomainCategory(m))
	}
	if rows.Err() != nil {
		return nil, translateError(rows.Err(), "iterate category rows")
	}
	return categories, nil
}

func (r *PgxCategoryRepository) UpdateCategory(ctx context.Context, category domain.Category) error {
	query := `UPDATE categories SET name = $1, last_updated_at = $2 WHERE category_id = $3;`
	cmdTag, err := r.Pool.Exec(ctx, query, category.Name, category.LastUpdatedAt, category.CategoryID)
	if err != nil {
		return translateError(err, "update category")
	}
	if cmdTag.RowsAffected() == 0 {
		return translateError(pgx.ErrNoRows, "update category")
	}
	return nil
}

func (r *PgxCategoryRepository) DeleteCategory(ctx context.Context, categoryID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM categories WHERE category_id = $1;`, categoryID)
	if err != nil {
		return translateError(err, "delete category")
	}
	if cmdTag.RowsAffected() == 0 {
		return translateError(pgx.ErrNoRows, "delete category")
	}
	return nil
}
