package services

import (
	"context"

	"github.com/blogapi/blog_backend/internal/core/domain"
)

// UserSvcFacade exposes user lookups to handlers and other services.
type UserSvcFacade interface {
	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
}
