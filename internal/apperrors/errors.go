package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates that the caller could not be authenticated.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates that the authenticated caller lacks the required role.
var ErrForbidden = errors.New("forbidden")

// ErrUnavailable indicates a transient store or notifier failure. Callers may retry.
var ErrUnavailable = errors.New("service temporarily unavailable")

// Registration conflicts.
var (
	ErrEmailExists    = errors.New("email already exists")
	ErrUsernameExists = errors.New("username already exists")
)

// ErrPasswordMismatch indicates password and confirmation differ.
var ErrPasswordMismatch = errors.New("passwords do not match")

// Authentication failures.
var (
	// ErrInvalidCredentials is returned for both unknown email and wrong
	// password so responses cannot be used to enumerate accounts.
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrAccountNotActivated = errors.New("account is not activated")
	ErrOTPInvalidOrExpired = errors.New("invalid or expired OTP")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrInvalidAccessToken  = errors.New("invalid or expired token")
	ErrNoToken             = errors.New("no token provided")
)
