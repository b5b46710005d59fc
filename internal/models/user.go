package models

import "time"

// User mirrors a row in the users table.
type User struct {
	UserID          string
	Name            string
	Email           string
	PasswordHash    string
	Avatar          *string
	IsActive        bool
	IsEmailVerified bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
