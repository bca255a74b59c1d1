package models

import "time"

// RefreshToken represents a row in the refresh_tokens table.
// The token string itself is the primary key.
type RefreshToken struct {
	Token     string    `db:"token"`
	UserID    string    `db:"user_id"`
	ExpiresAt time.Time `db:"expires_at"`
	CreatedAt time.Time `db:"created_at"`
}
