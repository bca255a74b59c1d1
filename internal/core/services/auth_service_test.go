package services_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/blogapi/blog_backend/internal/apperrors"
	"github.com/blogapi/blog_backend/internal/core/domain"
	portssvc "github.com/blogapi/blog_backend/internal/core/ports/services"
	"github.com/blogapi/blog_backend/internal/core/services"
	"github.com/blogapi/blog_backend/internal/dto"
	"github.com/blogapi/blog_backend/internal/platform/config"
	"github.com/blogapi/blog_backend/internal/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) ActivateUser(ctx context.Context, userID string, otp string, now time.Time) error {
	args := m.Called(ctx, userID, otp, now)
	return args.Error(0)
}

// --- Mock RefreshTokenRepository ---
type MockRefreshTokenRepository struct {
	mock.Mock
}

func (m *MockRefreshTokenRepository) SaveRefreshToken(ctx context.Context, token domain.RefreshToken) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockRefreshTokenRepository) ConsumeRefreshToken(ctx context.Context, token string) (*domain.RefreshToken, error) {
	args := m.Called(ctx, token)
	var rt *domain.RefreshToken
	if args.Get(0) != nil {
		rt = args.Get(0).(*domain.RefreshToken)
	}
	return rt, args.Error(1)
}

func (m *MockRefreshTokenRepository) DeleteRefreshTokensForUser(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock Notifier ---
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) SendOTP(ctx context.Context, email string, otp string, validFor time.Duration) error {
	args := m.Called(ctx, email, otp, validFor)
	return args.Error(0)
}

// --- Test Suite ---
type AuthServiceTestSuite struct {
	suite.Suite
	cfg             *config.Config
	mockUserRepo    *MockUserRepository
	mockRefreshRepo *MockRefreshTokenRepository
	mockNotifier    *MockNotifier
	service         portssvc.AuthSvcFacade
}

func (suite *AuthServiceTestSuite) SetupTest() {
	suite.cfg = &config.Config{
		JWTSecret:                  "test-access-secret",
		JWTExpiryDuration:          15 * time.Minute,
		JWTIssuer:                  "blog-api-test",
		RefreshTokenSecret:         "test-refresh-secret",
		RefreshTokenExpiryDuration: time.Hour,
		OTPExpiryDuration:          10 * time.Minute,
	}
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockRefreshRepo = new(MockRefreshTokenRepository)
	suite.mockNotifier = new(MockNotifier)
	tokenSvc := services.NewTokenService(suite.cfg)
	suite.service = services.NewAuthService(suite.cfg, suite.mockUserRepo, suite.mockRefreshRepo, tokenSvc, suite.mockNotifier)
}

var otpPattern = regexp.MustCompile(`^\d{6}$`)

// --- Register Tests ---

func (suite *AuthServiceTestSuite) TestRegister_Success() {
	ctx := context.Background()
	req := dto.RegisterRequest{
		Email:           "Alice@Example.com",
		Username:        "alice",
		Password:        "password123",
		ConfirmPassword: "password123",
	}

	// Email is lower-cased before any lookup
	suite.mockUserRepo.On("FindUserByEmail", ctx, "alice@example.com").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("FindUserByUsername", ctx, "alice").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(user domain.User) bool {
		return user.Email == "alice@example.com" &&
			user.Username == "alice" &&
			user.Role == domain.RoleAuthor &&
			user.Status == domain.StatusInactive &&
			user.PasswordHash != "password123" &&
			user.OTP != nil && otpPattern.MatchString(*user.OTP) &&
			user.OTPExpiresAt != nil && user.OTPExpiresAt.After(time.Now())
	})).Return(nil).Once()
	suite.mockNotifier.On("SendOTP", ctx, "alice@example.com", mock.MatchedBy(func(otp string) bool {
		return otpPattern.MatchString(otp)
	}), suite.cfg.OTPExpiryDuration).Return(nil).Once()

	resp, err := suite.service.Register(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(resp)
	suite.NotEmpty(resp.UserID)
	suite.True(resp.OTPSent)
	suite.mockUserRepo.AssertExpectations(suite.T())
	suite.mockNotifier.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestRegister_PasswordMismatch() {
	ctx := context.Background()
	req := dto.RegisterRequest{
		Email:           "bob@example.com",
		Username:        "bob",
		Password:        "password123",
		ConfirmPassword: "password124",
	}

	resp, err := suite.service.Register(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrPasswordMismatch)
	suite.Nil(resp)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *AuthServiceTestSuite) TestRegister_EmailExists() {
	ctx := context.Background()
	req := dto.RegisterRequest{
		Email:           "taken@example.com",
		Username:        "newuser",
		Password:        "password123",
		ConfirmPassword: "password123",
	}

	existing := &domain.User{UserID: uuid.NewString(), Email: "taken@example.com"}
	suite.mockUserRepo.On("FindUserByEmail", ctx, "taken@example.com").Return(existing, nil).Once()

	resp, err := suite.service.Register(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrEmailExists)
	suite.Nil(resp)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestRegister_UsernameExists() {
	ctx := context.Background()
	req := dto.RegisterRequest{
		Email:           "fresh@example.com",
		Username:        "taken",
		Password:        "password123",
		ConfirmPassword: "password123",
	}

	existing := &domain.User{UserID: uuid.NewString(), Username: "taken"}
	suite.mockUserRepo.On("FindUserByEmail", ctx, "fresh@example.com").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("FindUserByUsername", ctx, "taken").Return(existing, nil).Once()

	resp, err := suite.service.Register(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUsernameExists)
	suite.Nil(resp)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestRegister_InvalidRole() {
	ctx := context.Background()
	req := dto.RegisterRequest{
		Email:           "carol@example.com",
		Username:        "carol",
		Password:        "password123",
		ConfirmPassword: "password123",
		Role:            "superadmin",
	}

	suite.mockUserRepo.On("FindUserByEmail", ctx, "carol@example.com").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("FindUserByUsername", ctx, "carol").Return(nil, apperrors.ErrNotFound).Once()

	resp, err := suite.service.Register(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(resp)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *AuthServiceTestSuite) TestRegister_NotifierFailure() {
	ctx := context.Background()
	req := dto.RegisterRequest{
		Email:           "dave@example.com",
		Username:        "dave",
		Password:        "password123",
		ConfirmPassword: "password123",
	}

	suite.mockUserRepo.On("FindUserByEmail", ctx, "dave@example.com").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("FindUserByUsername", ctx, "dave").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).Return(nil).Once()
	suite.mockNotifier.On("SendOTP", ctx, "dave@example.com", mock.AnythingOfType("string"), suite.cfg.OTPExpiryDuration).
		Return(apperrors.ErrUnavailable).Once()

	resp, err := suite.service.Register(ctx, req)

	// Delivery failure is not a registration failure; the account exists.
	suite.Require().NoError(err)
	suite.Require().NotNil(resp)
	suite.False(resp.OTPSent)
	suite.mockUserRepo.AssertExpectations(suite.T())
	suite.mockNotifier.AssertExpectations(suite.T())
}

// --- VerifyOTP Tests ---

func (suite *AuthServiceTestSuite) TestVerifyOTP_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	user := &domain.User{UserID: userID, Status: domain.StatusInactive}

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(user, nil).Once()
	suite.mockUserRepo.On("ActivateUser", ctx, userID, "123456", mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.VerifyOTP(ctx, userID, "123456")

	suite.Require().NoError(err)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestVerifyOTP_UserNotFound() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.VerifyOTP(ctx, userID, "123456")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "ActivateUser", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AuthServiceTestSuite) TestVerifyOTP_WrongOrExpiredCode() {
	ctx := context.Background()
	userID := uuid.NewString()
	user := &domain.User{UserID: userID, Status: domain.StatusInactive}

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(user, nil).Once()
	suite.mockUserRepo.On("ActivateUser", ctx, userID, "000000", mock.AnythingOfType("time.Time")).
		Return(apperrors.ErrOTPInvalidOrExpired).Once()

	err := suite.service.VerifyOTP(ctx, userID, "000000")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrOTPInvalidOrExpired)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

// --- Login Tests ---

func (suite *AuthServiceTestSuite) activeUser(password string) *domain.User {
	hash, err := utils.HashPassword(password)
	suite.Require().NoError(err)
	return &domain.User{
		UserID:       uuid.NewString(),
		Email:        "alice@example.com",
		Username:     "alice",
		PasswordHash: hash,
		Role:         domain.RoleAuthor,
		Status:       domain.StatusActive,
	}
}

func (suite *AuthServiceTestSuite) TestLogin_Success() {
	ctx := context.Background()
	user := suite.activeUser("password123")

	suite.mockUserRepo.On("FindUserByEmail", ctx, "alice@example.com").Return(user, nil).Once()
	suite.mockRefreshRepo.On("SaveRefreshToken", ctx, mock.MatchedBy(func(rt domain.RefreshToken) bool {
		return rt.UserID == user.UserID && rt.Token != "" && rt.ExpiresAt.After(time.Now())
	})).Return(nil).Once()

	pair, err := suite.service.Login(ctx, "Alice@Example.com", "password123")

	suite.Require().NoError(err)
	suite.Require().NotNil(pair)
	suite.NotEmpty(pair.AccessToken)
	suite.NotEmpty(pair.RefreshToken)
	suite.NotEqual(pair.AccessToken, pair.RefreshToken)
	suite.mockUserRepo.AssertExpectations(suite.T())
	suite.mockRefreshRepo.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestLogin_UnknownEmail() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUserByEmail", ctx, "ghost@example.com").Return(nil, apperrors.ErrNotFound).Once()

	pair, err := suite.service.Login(ctx, "ghost@example.com", "password123")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidCredentials)
	suite.Nil(pair)
}

func (suite *AuthServiceTestSuite) TestLogin_WrongPassword() {
	ctx := context.Background()
	user := suite.activeUser("password123")

	suite.mockUserRepo.On("FindUserByEmail", ctx, "alice@example.com").Return(user, nil).Once()

	pair, err := suite.service.Login(ctx, "alice@example.com", "nottherightone")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidCredentials)
	suite.Nil(pair)
}

// Unknown email and wrong password must be indistinguishable to the caller.
func (suite *AuthServiceTestSuite) TestLogin_CredentialErrorsIndistinguishable() {
	ctx := context.Background()
	user := suite.activeUser("password123")

	suite.mockUserRepo.On("FindUserByEmail", ctx, "ghost@example.com").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("FindUserByEmail", ctx, "alice@example.com").Return(user, nil).Once()

	_, errUnknown := suite.service.Login(ctx, "ghost@example.com", "password123")
	_, errWrongPw := suite.service.Login(ctx, "alice@example.com", "nottherightone")

	suite.Require().Error(errUnknown)
	suite.Require().Error(errWrongPw)
	suite.Equal(errUnknown.Error(), errWrongPw.Error())
}

func (suite *AuthServiceTestSuite) TestLogin_NotActivated() {
	ctx := context.Background()
	user := suite.activeUser("password123")
	user.Status = domain.StatusInactive

	suite.mockUserRepo.On("FindUserByEmail", ctx, "alice@example.com").Return(user, nil).Once()

	pair, err := suite.service.Login(ctx, "alice@example.com", "password123")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrAccountNotActivated)
	suite.Nil(pair)
	suite.mockRefreshRepo.AssertNotCalled(suite.T(), "SaveRefreshToken", mock.Anything, mock.Anything)
}

// --- RefreshSession Tests ---

func (suite *AuthServiceTestSuite) TestRefreshSession_Success() {
	ctx := context.Background()
	user := suite.activeUser("password123")

	refreshToken, err := utils.GenerateRefreshJWT(user.UserID, suite.cfg.RefreshTokenSecret, suite.cfg.RefreshTokenExpiryDuration, suite.cfg.JWTIssuer)
	suite.Require().NoError(err)

	stored := &domain.RefreshToken{
		Token:     refreshToken,
		UserID:    user.UserID,
		ExpiresAt: time.Now().Add(suite.cfg.RefreshTokenExpiryDuration),
	}

	suite.mockRefreshRepo.On("ConsumeRefreshToken", ctx, refreshToken).Return(stored, nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, user.UserID).Return(user, nil).Once()
	suite.mockRefreshRepo.On("SaveRefreshToken", ctx, mock.MatchedBy(func(rt domain.RefreshToken) bool {
		return rt.UserID == user.UserID && rt.Token != "" && rt.Token != refreshToken
	})).Return(nil).Once()

	pair, err := suite.service.RefreshSession(ctx, refreshToken)

	suite.Require().NoError(err)
	suite.Require().NotNil(pair)
	suite.NotEmpty(pair.AccessToken)
	suite.NotEqual(refreshToken, pair.RefreshToken)
	suite.mockRefreshRepo.AssertExpectations(suite.T())
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestRefreshSession_UnknownToken() {
	ctx := context.Background()

	// Already consumed or never issued: the store has no row either way.
	suite.mockRefreshRepo.On("ConsumeRefreshToken", ctx, "no-such-token").Return(nil, apperrors.ErrNotFound).Once()

	pair, err := suite.service.RefreshSession(ctx, "no-such-token")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidRefreshToken)
	suite.Nil(pair)
	suite.mockRefreshRepo.AssertNotCalled(suite.T(), "SaveRefreshToken", mock.Anything, mock.Anything)
}

func (suite *AuthServiceTestSuite) TestRefreshSession_BadSignature() {
	ctx := context.Background()
	user := suite.activeUser("password123")

	// Signed with the wrong secret but somehow present in the store.
	forged, err := utils.GenerateRefreshJWT(user.UserID, "some-other-secret", time.Hour, suite.cfg.JWTIssuer)
	suite.Require().NoError(err)

	stored := &domain.RefreshToken{Token: forged, UserID: user.UserID, ExpiresAt: time.Now().Add(time.Hour)}
	suite.mockRefreshRepo.On("ConsumeRefreshToken", ctx, forged).Return(stored, nil).Once()

	pair, err := suite.service.RefreshSession(ctx, forged)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidRefreshToken)
	suite.Nil(pair)
	// The row was consumed before verification, so the token stays dead.
	suite.mockRefreshRepo.AssertExpectations(suite.T())
	suite.mockRefreshRepo.AssertNotCalled(suite.T(), "SaveRefreshToken", mock.Anything, mock.Anything)
}

func (suite *AuthServiceTestSuite) TestRefreshSession_SubjectMismatch() {
	ctx := context.Background()
	user := suite.activeUser("password123")

	refreshToken, err := utils.GenerateRefreshJWT(user.UserID, suite.cfg.RefreshTokenSecret, suite.cfg.RefreshTokenExpiryDuration, suite.cfg.JWTIssuer)
	suite.Require().NoError(err)

	stored := &domain.RefreshToken{Token: refreshToken, UserID: uuid.NewString(), ExpiresAt: time.Now().Add(time.Hour)}
	suite.mockRefreshRepo.On("ConsumeRefreshToken", ctx, refreshToken).Return(stored, nil).Once()

	pair, err := suite.service.RefreshSession(ctx, refreshToken)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidRefreshToken)
	suite.Nil(pair)
	suite.mockRefreshRepo.AssertExpectations(suite.T())
}

// --- Logout Tests ---

func (suite *AuthServiceTestSuite) TestLogout_Success() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockRefreshRepo.On("DeleteRefreshTokensForUser", ctx, userID).Return(int64(2), nil).Once()

	err := suite.service.Logout(ctx, userID)

	suite.Require().NoError(err)
	suite.mockRefreshRepo.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestLogout_NoSessions() {
	ctx := context.Background()
	userID := uuid.NewString()

	// Logging out with no live sessions is not an error.
	suite.mockRefreshRepo.On("DeleteRefreshTokensForUser", ctx, userID).Return(int64(0), nil).Once()

	err := suite.service.Logout(ctx, userID)

	suite.Require().NoError(err)
	suite.mockRefreshRepo.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestLogout_RepoError() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockRefreshRepo.On("DeleteRefreshTokensForUser", ctx, userID).Return(int64(0), assert.AnError).Once()

	err := suite.service.Logout(ctx, userID)

	suite.Require().Error(err)
	suite.Contains(err.Error(), assert.AnError.Error())
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
