package services

import (
	"context"
	"time"

	"github.com/blogapi/blog_backend/internal/apperrors"
	"github.com/blogapi/blog_backend/internal/core/domain"
	portssvc "github.com/blogapi/blog_backend/internal/core/ports/services"
	"github.com/blogapi/blog_backend/internal/dto"
	"github.com/blogapi/blog_backend/internal/platform/config"
	"github.com/blogapi/blog_backend/internal/utils"
)

// tokenService implements the TokenSvcFacade. Access and refresh tokens are
// signed with independent secrets taken from the configuration injected at
// construction; business logic never reads the environment.
type tokenService struct {
	cfg *config.Config
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config) portssvc.TokenSvcFacade {
	return &tokenService{cfg: cfg}
}

// IssueTokenPair creates a signed access token carrying {id, role} and a
// signed refresh token carrying {id}, and reports the refresh expiry so the
// caller can persist the refresh token row.
func (s *tokenService) IssueTokenPair(ctx context.Context, user *domain.User) (*dto.TokenPairResponse, time.Time, error) {
	accessToken, err := utils.GenerateAccessJWT(user.UserID, string(user.Role), s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return nil, time.Time{}, err
	}

	refreshExpiry := time.Now().Add(s.cfg.RefreshTokenExpiryDuration)
	refreshToken, err := utils.GenerateRefreshJWT(user.UserID, s.cfg.RefreshTokenSecret, s.cfg.RefreshTokenExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return nil, time.Time{}, err
	}

	return &dto.TokenPairResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, refreshExpiry, nil
}

// VerifyAccessToken validates signature and expiry against the access secret
// and returns the embedded identity and role.
func (s *tokenService) VerifyAccessToken(tokenString string) (string, domain.UserRole, error) {
	claims, err := utils.ParseAndValidateAccessJWT(tokenString, s.cfg.JWTSecret)
	if err != nil {
		return "", "", apperrors.ErrInvalidAccessToken
	}
	if claims.Subject == "" {
		return "", "", apperrors.ErrInvalidAccessToken
	}
	return claims.Subject, domain.UserRole(claims.Role), nil
}

// VerifyRefreshToken validates signature and expiry against the refresh
// secret and returns the subject user ID.
func (s *tokenService) VerifyRefreshToken(tokenString string) (string, error) {
	claims, err := utils.ParseAndValidateRefreshJWT(tokenString, s.cfg.RefreshTokenSecret)
	if err != nil {
		return "", apperrors.ErrInvalidRefreshToken
	}
	if claims.Subject == "" {
		return "", apperrors.ErrInvalidRefreshToken
	}
	return claims.Subject, nil
}
