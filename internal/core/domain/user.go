package domain

import "time"

// User represents a registered account. PasswordHash is internal state and
// is never serialized to clients; handlers expose users via dto.UserResponse.
type User struct {
	UserID          string
	Name            string
	Email           string // stored lowercased, unique
	PasswordHash    string
	Avatar          *string
	IsActive        bool
	IsEmailVerified bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// UserStats summarises a user's account activity.
type UserStats struct {
	TotalProducts  int64
	ActiveProducts int64
	MemberSince    time.Time
	LastUpdated    time.Time
}

// ClientInfo carries request metadata recorded alongside issued refresh tokens.
type ClientInfo struct {
	IPAddress string
	UserAgent string
}
