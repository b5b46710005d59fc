package services

import (
	"context"
	"time"

	"github.com/prodcat/catalog_backend_app/internal/core/domain"
	"github.com/prodcat/catalog_backend_app/internal/dto"
	"github.com/prodcat/catalog_backend_app/internal/utils"
)

// TokenSvcFacade defines the interface for token issuance and verification.
// Access and refresh tokens are signed with separate secrets so a leaked
// access-token secret cannot forge refresh tokens and vice versa.
type TokenSvcFacade interface {
	// GenerateAccessToken creates a short-lived JWT access token.
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)
	// GenerateRefreshToken creates a long-lived JWT refresh token.
	GenerateRefreshToken(ctx context.Context, user *domain.User) (string, time.Time, error)
	// VerifyAccessToken checks signature and expiry of an access token.
	// Any failure surfaces as apperrors.ErrUnauthorized.
	VerifyAccessToken(ctx context.Context, tokenString string) (*utils.AuthClaims, error)
	// VerifyRefreshToken checks signature and expiry of a refresh token.
	// Any failure surfaces as apperrors.ErrUnauthorized.
	VerifyRefreshToken(ctx context.Context, tokenString string) (*utils.AuthClaims, error)
}

// AuthSvcFacade orchestrates the session lifecycle:
// Anonymous -> Authenticated -> (Refreshed)* -> LoggedOut.
type AuthSvcFacade interface {
	// Register creates a user and an initial session; apperrors.ErrDuplicate
	// when the email is already taken (any casing).
	Register(ctx context.Context, req dto.RegisterRequest, client domain.ClientInfo) (*dto.AuthResult, error)
	// Login authenticates by email (case-insensitive) and password;
	// apperrors.ErrUnauthorized on any credential failure.
	Login(ctx context.Context, req dto.LoginRequest, client domain.ClientInfo) (*dto.AuthResult, error)
	// Refresh mints a new access token for a valid, active, unexpired
	// refresh token. The refresh token itself is not rotated.
	Refresh(ctx context.Context, refreshToken string) (string, error)
	// Logout revokes the ledger entry for the given refresh token.
	// Idempotent; never fails for missing or unknown tokens.
	Logout(ctx context.Context, refreshToken string) error
}
