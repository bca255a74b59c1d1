package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/blogapi/blog_backend/internal/apperrors"
	"github.com/blogapi/blog_backend/internal/core/domain"
	portsrepo "github.com/blogapi/blog_backend/internal/core/ports/repositories"
	portssvc "github.com/blogapi/blog_backend/internal/core/ports/services"
	"github.com/blogapi/blog_backend/internal/dto"
	"github.com/blogapi/blog_backend/internal/platform/config"
	"github.com/blogapi/blog_backend/internal/utils"
	"github.com/google/uuid"
)

// authService orchestrates registration, OTP verification and the session
// lifecycle over the user and refresh-token stores.
type authService struct {
	BaseService
	cfg         *config.Config
	userRepo    portsrepo.UserRepositoryFacade
	refreshRepo portsrepo.RefreshTokenRepositoryFacade
	tokenSvc    portssvc.TokenSvcFacade
	notifier    portssvc.NotifierSvc
}

// NewAuthService creates a new instance of authService.
func NewAuthService(
	cfg *config.Config,
	userRepo portsrepo.UserRepositoryFacade,
	refreshRepo portsrepo.RefreshTokenRepositoryFacade,
	tokenSvc portssvc.TokenSvcFacade,
	notifier portssvc.NotifierSvc,
) portssvc.AuthSvcFacade {
	return &authService{
		cfg:         cfg,
		userRepo:    userRepo,
		refreshRepo: refreshRepo,
		tokenSvc:    tokenSvc,
		notifier:    notifier,
	}
}

// Register creates an inactive user with a fresh OTP and dispatches the code.
// The row is persisted before notification; a notifier failure leaves the
// account in place and is reported via OTPSent=false.
func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.RegisterResponse, error) {
	if req.Password != req.ConfirmPassword {
		return nil, apperrors.ErrPasswordMismatch
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if _, err := s.userRepo.FindUserByEmail(ctx, email); err == nil {
		return nil, apperrors.ErrEmailExists
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check email uniqueness: %w", err)
	}

	if _, err := s.userRepo.FindUserByUsername(ctx, req.Username); err == nil {
		return nil, apperrors.ErrUsernameExists
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check username uniqueness: %w", err)
	}

	role := domain.UserRole(req.Role)
	if req.Role == "" {
		role = domain.RoleAuthor
	}
	if !role.IsValid() {
		return nil, apperrors.ErrValidation
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	otp, err := utils.GenerateOTP()
	if err != nil {
		return nil, fmt.Errorf("failed to generate OTP: %w", err)
	}

	now := time.Now()
	otpExpiresAt := now.Add(s.cfg.OTPExpiryDuration)

	user := domain.User{
		UserID:       uuid.NewString(),
		Email:        email,
		Username:     req.Username,
		PasswordHash: passwordHash,
		Role:         role,
		Status:       domain.StatusInactive,
		OTP:          &otp,
		OTPExpiresAt: &otpExpiresAt,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Avatar:       req.Avatar,
		Bio:          req.Bio,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		return nil, err
	}

	// Note: an account that never verifies stays inactive forever and keeps
	// its email/username reserved. No cleanup policy exists yet.
	otpSent := true
	if err := s.notifier.SendOTP(ctx, email, otp, s.cfg.OTPExpiryDuration); err != nil {
		// The account is already created; do not roll it back. The code can
		// be re-sent later without schema changes.
		s.LogWarn(ctx, "Failed to deliver OTP notification",
			slog.String("user_id", user.UserID),
			slog.String("error", err.Error()),
		)
		otpSent = false
	}

	return &dto.RegisterResponse{UserID: user.UserID, OTPSent: otpSent}, nil
}

// VerifyOTP activates the account when the submitted code matches and has not
// expired. The store flips status and clears the OTP columns in one statement,
// so a repeat verification finds no OTP and fails.
func (s *authService) VerifyOTP(ctx context.Context, userID string, otp string) error {
	if _, err := s.userRepo.FindUserByID(ctx, userID); err != nil {
		return err
	}
	return s.userRepo.ActivateUser(ctx, userID, otp, time.Now())
}

// Login authenticates credentials and issues a session. Unknown email and
// wrong password are indistinguishable to the caller; the activation check
// runs only after the credentials matched.
func (s *authService) Login(ctx context.Context, email string, password string) (*dto.TokenPairResponse, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user for login: %w", err)
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !user.IsActive() {
		return nil, apperrors.ErrAccountNotActivated
	}

	return s.startSession(ctx, user)
}

// RefreshSession rotates the presented refresh token. Consumption happens
// before anything else: the conditional delete in the store guarantees that
// of any concurrent calls presenting the same token, exactly one proceeds.
func (s *authService) RefreshSession(ctx context.Context, refreshToken string) (*dto.TokenPairResponse, error) {
	stored, err := s.refreshRepo.ConsumeRefreshToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrInvalidRefreshToken
		}
		return nil, fmt.Errorf("failed to consume refresh token: %w", err)
	}

	// The row is already gone at this point, so a token failing signature or
	// subject checks stays permanently dead.
	subjectID, err := s.tokenSvc.VerifyRefreshToken(refreshToken)
	if err != nil {
		return nil, apperrors.ErrInvalidRefreshToken
	}
	if subjectID != stored.UserID {
		s.LogWarn(ctx, "Refresh token subject does not match stored owner",
			slog.String("stored_user_id", stored.UserID),
		)
		return nil, apperrors.ErrInvalidRefreshToken
	}

	user, err := s.userRepo.FindUserByID(ctx, subjectID)
	if err != nil {
		return nil, err
	}

	return s.startSession(ctx, user)
}

// Logout terminates every session of the user by deleting all refresh token
// rows. Already-issued access tokens remain valid until their own expiry.
func (s *authService) Logout(ctx context.Context, userID string) error {
	deleted, err := s.refreshRepo.DeleteRefreshTokensForUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to delete refresh tokens: %w", err)
	}
	s.LogInfo(ctx, "User logged out",
		slog.String("user_id", userID),
		slog.Int64("sessions_terminated", deleted),
	)
	return nil
}

// startSession issues a token pair and persists the refresh token row. The
// persisted value is the signed refresh string itself: a refresh token is
// honored only if it both verifies and still exists in the store.
func (s *authService) startSession(ctx context.Context, user *domain.User) (*dto.TokenPairResponse, error) {
	pair, refreshExpiry, err := s.tokenSvc.IssueTokenPair(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token pair: %w", err)
	}

	err = s.refreshRepo.SaveRefreshToken(ctx, domain.RefreshToken{
		Token:     pair.RefreshToken,
		UserID:    user.UserID,
		ExpiresAt: refreshExpiry,
		CreatedAt: time.Now(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to persist refresh token: %w", err)
	}

	return pair, nil
}
