package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/blogapi/blog_backend/internal/apperrors"
	"github.com/blogapi/blog_backend/internal/core/domain"
	portssvc "github.com/blogapi/blog_backend/internal/core/ports/services"
	"github.com/blogapi/blog_backend/internal/core/services"
	"github.com/blogapi/blog_backend/internal/platform/config"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type TokenServiceTestSuite struct {
	suite.Suite
	cfg     *config.Config
	service portssvc.TokenSvcFacade
}

func (suite *TokenServiceTestSuite) SetupTest() {
	suite.cfg = &config.Config{
		JWTSecret:                  "access-secret-for-tests",
		JWTExpiryDuration:          15 * time.Minute,
		JWTIssuer:                  "blog-api-test",
		RefreshTokenSecret:         "refresh-secret-for-tests",
		RefreshTokenExpiryDuration: time.Hour,
	}
	suite.service = services.NewTokenService(suite.cfg)
}

func (suite *TokenServiceTestSuite) issuePair() (*domain.User, string, string) {
	user := &domain.User{UserID: uuid.NewString(), Role: domain.RoleEditor}
	pair, refreshExpiry, err := suite.service.IssueTokenPair(context.Background(), user)
	suite.Require().NoError(err)
	suite.Require().NotNil(pair)
	suite.WithinDuration(time.Now().Add(suite.cfg.RefreshTokenExpiryDuration), refreshExpiry, 5*time.Second)
	return user, pair.AccessToken, pair.RefreshToken
}

func (suite *TokenServiceTestSuite) TestIssueAndVerifyAccessToken() {
	user, accessToken, _ := suite.issuePair()

	subject, role, err := suite.service.VerifyAccessToken(accessToken)

	suite.Require().NoError(err)
	suite.Equal(user.UserID, subject)
	suite.Equal(domain.RoleEditor, role)
}

func (suite *TokenServiceTestSuite) TestIssueAndVerifyRefreshToken() {
	user, _, refreshToken := suite.issuePair()

	subject, err := suite.service.VerifyRefreshToken(refreshToken)

	suite.Require().NoError(err)
	suite.Equal(user.UserID, subject)
}

// Refresh tokens are the refresh store's primary key, so two issuances for
// the same user in the same second must still produce distinct strings.
func (suite *TokenServiceTestSuite) TestRefreshTokensDistinctPerIssue() {
	user := &domain.User{UserID: uuid.NewString(), Role: domain.RoleAuthor}

	first, _, err := suite.service.IssueTokenPair(context.Background(), user)
	suite.Require().NoError(err)
	second, _, err := suite.service.IssueTokenPair(context.Background(), user)
	suite.Require().NoError(err)

	suite.NotEqual(first.RefreshToken, second.RefreshToken)
}

// The two token classes use independent secrets: neither verifies as the other.
func (suite *TokenServiceTestSuite) TestTokenClassesNotInterchangeable() {
	_, accessToken, refreshToken := suite.issuePair()

	_, _, err := suite.service.VerifyAccessToken(refreshToken)
	suite.ErrorIs(err, apperrors.ErrInvalidAccessToken)

	_, err = suite.service.VerifyRefreshToken(accessToken)
	suite.ErrorIs(err, apperrors.ErrInvalidRefreshToken)
}

func (suite *TokenServiceTestSuite) TestVerifyAccessToken_WrongSecret() {
	_, accessToken, _ := suite.issuePair()

	other := services.NewTokenService(&config.Config{
		JWTSecret:                  "a-different-access-secret",
		JWTExpiryDuration:          15 * time.Minute,
		JWTIssuer:                  suite.cfg.JWTIssuer,
		RefreshTokenSecret:         suite.cfg.RefreshTokenSecret,
		RefreshTokenExpiryDuration: time.Hour,
	})

	_, _, err := other.VerifyAccessToken(accessToken)
	suite.ErrorIs(err, apperrors.ErrInvalidAccessToken)
}

func (suite *TokenServiceTestSuite) TestVerifyAccessToken_Garbage() {
	_, _, err := suite.service.VerifyAccessToken("not-a-jwt-at-all")
	suite.ErrorIs(err, apperrors.ErrInvalidAccessToken)
}

func (suite *TokenServiceTestSuite) TestVerifyRefreshToken_Garbage() {
	_, err := suite.service.VerifyRefreshToken("")
	suite.ErrorIs(err, apperrors.ErrInvalidRefreshToken)
}

func (suite *TokenServiceTestSuite) TestVerifyAccessToken_Expired() {
	expiredCfg := &config.Config{
		JWTSecret:                  suite.cfg.JWTSecret,
		JWTExpiryDuration:          -time.Minute,
		JWTIssuer:                  suite.cfg.JWTIssuer,
		RefreshTokenSecret:         suite.cfg.RefreshTokenSecret,
		RefreshTokenExpiryDuration: time.Hour,
	}
	expiredSvc := services.NewTokenService(expiredCfg)

	user := &domain.User{UserID: uuid.NewString(), Role: domain.RoleAuthor}
	pair, _, err := expiredSvc.IssueTokenPair(context.Background(), user)
	suite.Require().NoError(err)

	_, _, err = suite.service.VerifyAccessToken(pair.AccessToken)
	suite.ErrorIs(err, apperrors.ErrInvalidAccessToken)
}

func TestTokenServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TokenServiceTestSuite))
}
