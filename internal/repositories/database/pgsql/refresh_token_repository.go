package pgsql

import (
	"context"

	"github.com/blogapi/blog_backend/internal/core/domain"
	portsrepo "github.com/blogapi/blog_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxRefreshTokenRepository struct {
	BaseRepository
}

func newPgxRefreshTokenRepository(db *pgxpool.Pool) portsrepo.RefreshTokenRepositoryFacade {
	return &PgxRefreshTokenRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.RefreshTokenRepositoryFacade = (*PgxRefreshTokenRepository)(nil)

func (r *PgxRefreshTokenRepository) SaveRefreshToken(ctx context.Context, token domain.RefreshToken) error {
	query := `
        INSERT INTO refresh_tokens (token, user_id, expires_at, created_at)
        VALUES ($1, $2, $3, $4);
    `
	_, err := r.Pool.Exec(ctx, query, token.Token, token.UserID, token.ExpiresAt, token.CreatedAt)
	if err != nil {
		return translateError(err, "save refresh token")
	}
	return nil
}

// ConsumeRefreshToken deletes the row and returns it in one statement. The
// row delete serializes concurrent consumers of the same token: the database
// hands the row to exactly one of them, the rest see ErrNotFound.
func (r *PgxRefreshTokenRepository) ConsumeRefreshToken(ctx context.Context, token string) (*domain.RefreshToken, error) {
	query := `
        DELETE FROM refresh_tokens
        WHERE token = $1
        RETURNING token, user_id, expires_at, created_at;
    `
	var rt domain.RefreshToken
	err := r.Pool.QueryRow(ctx, query, token).Scan(&rt.Token, &rt.UserID, &rt.ExpiresAt, &rt.CreatedAt)
	if err != nil {
		return nil, translateError(err, "consume refresh token")
	}
	return &rt, nil
}

func (r *PgxRefreshTokenRepository) DeleteRefreshTokensForUser(ctx context.Context, userID string) (int64, error) {
	query := `DELETE FROM refresh_tokens WHERE user_id = $1;`
	cmdTag, err := r.Pool.Exec(ctx, query, userID)
	if err != nil {
		return 0, translateError(err, "delete refresh tokens for user")
	}
	return cmdTag.RowsAffected(), nil
}
