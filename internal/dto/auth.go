package dto

import (
	"time"

	"github.com/prodcat/catalog_backend_app/internal/core/domain"
)

// RegisterRequest carries the registration payload.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginRequest carries the login payload.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResult is the service-level outcome of a successful Register or Login.
// The refresh token leaves the service only to be planted in an HTTP cookie;
// it is not part of any JSON body.
type AuthResult struct {
	User               *domain.User
	AccessToken        string
	RefreshToken       string
	RefreshTokenExpiry time.Time
}

// AuthData is the JSON payload for successful Register/Login responses.
type AuthData struct {
	AccessToken string       `json:"accessToken"`
	User        UserResponse `json:"user"`
}

// RefreshData is the JSON payload for a successful token refresh.
type RefreshData struct {
	AccessToken string `json:"accessToken"`
}
