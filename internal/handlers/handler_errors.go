package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/blogapi/blog_backend/internal/apperrors"
	"github.com/blogapi/blog_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ErrorResponse is a generic error response structure for handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError maps application errors onto transport status codes. Internal
// failures are logged and reduced to a generic message.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrPasswordMismatch):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Passwords don't match"})
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Validation error"})
	case errors.Is(err, apperrors.ErrEmailExists):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "Email already exists. Please use a different email."})
	case errors.Is(err, apperrors.ErrUsernameExists):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "Username already exists. Please choose a different username."})
	case errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "Resource already exists"})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Resource not found"})
	case errors.Is(err, apperrors.ErrOTPInvalidOrExpired):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid or expired OTP"})
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid credentials"})
	case errors.Is(err, apperrors.ErrAccountNotActivated):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "Account is not activated. Please verify your email with OTP."})
	case errors.Is(err, apperrors.ErrInvalidRefreshToken):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "Invalid refresh token"})
	case errors.Is(err, apperrors.ErrNoToken), errors.Is(err, apperrors.ErrInvalidAccessToken), errors.Is(err, apperrors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "Forbidden. You do not have the necessary role to access this resource."})
	case errors.Is(err, apperrors.ErrUnavailable):
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "Service temporarily unavailable. Please try again later."})
	default:
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Unexpected error", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "An unexpected error occurred. Please try again later."})
	}
}
