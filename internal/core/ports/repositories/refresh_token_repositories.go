package repositories

import (
	"context"

	"github.com/blogapi/blog_backend/internal/core/domain"
)

// RefreshTokenRepositoryFacade defines persistence for refresh tokens.
// A token is valid only while its row exists; consumption is at-most-once.
type RefreshTokenRepositoryFacade interface {
	// SaveRefreshToken persists a newly issued refresh token row.
	SaveRefreshToken(ctx context.Context, token domain.RefreshToken) error

	// ConsumeRefreshToken deletes the row for the given token value and
	// returns it. Exactly one of any number of concurrent calls presenting
	// the same token observes the row; the rest get apperrors.ErrNotFound.
	ConsumeRefreshToken(ctx context.Context, token string) (*domain.RefreshToken, error)

	// DeleteRefreshTokensForUser removes every refresh token owned by the
	// user and reports how many rows were removed. Zero is not an error.
	DeleteRefreshTokensForUser(ctx context.Context, userID string) (int64, error)
}
