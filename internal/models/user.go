package models

import (
	"database/sql"
	"time"
)

// User represents a row in the users table.
type User struct {
	UserID       string         `db:"user_id"`
	Email        string         `db:"email"`
	Username     string         `db:"username"`
	PasswordHash string         `db:"password_hash"`
	Role         string         `db:"role"`
	Status       string         `db:"status"`
	OTP          sql.NullString `db:"otp"`
	OTPExpiresAt sql.NullTime   `db:"otp_expires_at"`
	FirstName    sql.NullString `db:"first_name"`
	LastName     sql.NullString `db:"last_name"`
	Avatar       sql.NullString `db:"avatar"`
	Bio          sql.NullString `db:"bio"`
	AuditFields
}

// AuditFields holds the audit columns shared by all tables.
type AuditFields struct {
	CreatedAt     time.Time `db:"created_at"`
	LastUpdatedAt time.Time `db:"last_updated_at"`
}
