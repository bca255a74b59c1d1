package domain

import "time"

// UserRole enumerates the roles a user can hold.
type UserRole string

const (
	RoleAuthor UserRole = "author"
	RoleEditor UserRole = "editor"
	RoleAdmin  UserRole = "admin"
)

// IsValid reports whether the role is one of the known roles.
func (r UserRole) IsValid() bool {
	switch r {
	case RoleAuthor, RoleEditor, RoleAdmin:
		return true
	}
	return false
}

// UserStatus enumerates the account activation states.
type UserStatus string

const (
	StatusInactive UserStatus = "inactive"
	StatusActive   UserStatus = "active"
)

// User represents a user of the application in the domain.
// OTP and OTPExpiresAt are set only while the account is inactive; both are
// cleared in the same store operation that flips Status to active.
type User struct {
	UserID       string     `json:"userID"` // Primary Key (UUID)
	Email        string     `json:"email"`  // Unique, stored lower-cased
	Username     string     `json:"username"`
	PasswordHash string     `json:"-"`
	Role         UserRole   `json:"role"`
	Status       UserStatus `json:"status"`
	OTP          *string    `json:"-"`
	OTPExpiresAt *time.Time `json:"-"`
	FirstName    *string    `json:"firstName,omitempty"`
	LastName     *string    `json:"lastName,omitempty"`
	Avatar       *string    `json:"avatar,omitempty"`
	Bio          *string    `json:"bio,omitempty"`
	AuditFields
}

// IsActive reports whether the account has completed OTP verification.
func (u *User) IsActive() bool {
	return u.Status == StatusActive
}
