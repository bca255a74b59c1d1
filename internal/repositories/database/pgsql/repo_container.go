package pgsql

import (
	portsrepo "github.com/blogapi/blog_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires all pgsql repositories over a shared pool.
func NewRepositoryProvider(db *pgxpool.Pool) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		UserRepo:         newPgxUserRepository(db),
		RefreshTokenRepo: newPgxRefreshTokenRepository(db),
		PostRepo:         newPgxPostRepository(db),
		CategoryRepo:     newPgxCategoryRepository(db),
		TagRepo:          newPgxTagRepository(db),
	}
}
