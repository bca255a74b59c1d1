package services

import (
	"context"
	"time"

	"github.com/blogapi/blog_backend/internal/core/domain"
	"github.com/blogapi/blog_backend/internal/dto"
)

// AuthSvcFacade orchestrates registration, OTP verification and the session
// lifecycle (login, refresh rotation, logout).
type AuthSvcFacade interface {
	// Register creates an inactive user, generates its OTP and dispatches it
	// via the notifier. The user row is persisted before notification is
	// attempted; a notifier failure does not roll the row back.
	Register(ctx context.Context, req dto.RegisterRequest) (*dto.RegisterResponse, error)

	// VerifyOTP activates the account when the submitted code matches the
	// stored one and has not expired. Activation clears the OTP columns, so a
	// second verification attempt fails.
	VerifyOTP(ctx context.Context, userID string, otp string) error

	// Login authenticates credentials, then checks activation, then issues a
	// token pair and persists the refresh token.
	Login(ctx context.Context, email string, password string) (*dto.TokenPairResponse, error)

	// RefreshSession consumes the presented refresh token (at most once, even
	// under concurrent calls) and issues a fresh pair.
	RefreshSession(ctx context.Context, refreshToken string) (*dto.TokenPairResponse, error)

	// Logout deletes every refresh token owned by the user. Access tokens
	// already issued stay valid until their own expiry.
	Logout(ctx context.Context, userID string) error
}

// TokenSvcFacade signs and verifies the two token classes. Access and refresh
// tokens use independent secret material.
type TokenSvcFacade interface {
	// IssueTokenPair produces a signed access token carrying {id, role} and a
	// signed refresh token carrying {id}, returning the refresh expiry so the
	// caller can persist the refresh token row.
	IssueTokenPair(ctx context.Context, user *domain.User) (*dto.TokenPairResponse, time.Time, error)

	// VerifyAccessToken checks signature and expiry against the access secret
	// and returns the embedded identity and role.
	VerifyAccessToken(tokenString string) (string, domain.UserRole, error)

	// VerifyRefreshToken checks signature and expiry against the refresh
	// secret and returns the subject user ID.
	VerifyRefreshToken(tokenString string) (string, error)
}

// NotifierSvc delivers the OTP to the user out-of-band.
type NotifierSvc interface {
	SendOTP(ctx context.Context, email string, otp string, validFor time.Duration) error
}
