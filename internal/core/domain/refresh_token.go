package domain

import "time"

// RefreshToken represents a persisted refresh token. The Token value is the
// signed JWT string itself and is the primary key; a token is honored only
// while its row exists, so deleting the row revokes it regardless of the
// remaining signed lifetime.
type RefreshToken struct {
	Token     string    `json:"-"`
	UserID    string    `json:"userID"`
	ExpiresAt time.Time `json:"expiresAt"`
	CreatedAt time.Time `json:"createdAt"`
}
