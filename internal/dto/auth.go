package dto

// RegisterRequest carries the registration payload.
// Role defaults to author when omitted.
type RegisterRequest struct {
	Email           string  `json:"email" binding:"required,email"`
	Username        string  `json:"username" binding:"required,min=3"`
	Password        string  `json:"password" binding:"required,min=6"`
	ConfirmPassword string  `json:"confirmPassword" binding:"required"`
	Role            string  `json:"role" binding:"omitempty,oneof=author editor admin"`
	FirstName       *string `json:"firstName,omitempty"`
	LastName        *string `json:"lastName,omitempty"`
	Avatar          *string `json:"avatar,omitempty" binding:"omitempty,url"`
	Bio             *string `json:"bio,omitempty"`
}

// RegisterResponse reports the created user and whether the OTP was dispatched.
type RegisterResponse struct {
	UserID  string `json:"userId"`
	OTPSent bool   `json:"otpSent"`
}

// VerifyOTPRequest carries the activation payload.
type VerifyOTPRequest struct {
	UserID string `json:"userId" binding:"required,uuid"`
	OTP    string `json:"otp" binding:"required,len=6,numeric"`
}

// LoginRequest carries credential login input.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshTokenRequest carries a refresh token to rotate.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// TokenPairResponse is the pair of signed tokens representing a session.
type TokenPairResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
