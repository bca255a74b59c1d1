package repositories

import (
	"context"
	"time"

	"github.com/blogapi/blog_backend/internal/core/domain"
)

// UserReader defines read operations for user data
type UserReader interface {
	// FindUserByID retrieves a specific user by their ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByEmail retrieves a user by their (lower-cased) email.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// FindUserByUsername retrieves a user by their username.
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	// SaveUser persists a new user.
	SaveUser(ctx context.Context, user domain.User) error

	// UpdateUser updates an existing user's mutable profile fields.
	UpdateUser(ctx context.Context, user domain.User) error
}

// UserActivator defines the OTP-driven activation step.
type UserActivator interface {
	// ActivateUser flips status to active and clears the OTP columns in a
	// single conditional statement. It returns apperrors.ErrOTPInvalidOrExpired
	// when the stored OTP is absent, does not match, or expired before now.
	ActivateUser(ctx context.Context, userID string, otp string, now time.Time) error
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
	UserActivator
}
