package models

import "time"

// RefreshToken mirrors a row in the refresh_tokens table.
type RefreshToken struct {
	TokenID   string
	TokenHash string
	UserID    string
	ExpiresAt time.Time
	IsActive  bool
	IPAddress *string
	UserAgent *string
	CreatedAt time.Time
}
