package services

import (
	"context"
	"fmt"
	"time"

	"github.com/prodcat/catalog_backend_app/internal/apperrors"
	"github.com/prodcat/catalog_backend_app/internal/core/domain"
	portssvc "github.com/prodcat/catalog_backend_app/internal/core/ports/services"
	"github.com/prodcat/catalog_backend_app/internal/platform/config"
	"github.com/prodcat/catalog_backend_app/internal/utils"
)

// tokenService implements TokenSvcFacade. Both token classes are
// self-contained HS256 JWTs carrying {sub, email}; they differ only in
// signing secret and lifetime. Verification is purely cryptographic, so
// access-token checks need no storage round trip; revocability of refresh
// tokens is enforced by the auth service against the ledger, not here.
type tokenService struct {
	cfg *config.Config
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config) portssvc.TokenSvcFacade {
	return &tokenService{cfg: cfg}
}

// GenerateAccessToken creates a new JWT access token for the given user.
func (s *tokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	expiryTime := time.Now().Add(s.cfg.JWTExpiryDuration)
	accessToken, err := utils.GenerateJWT(user.UserID, user.Email, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign access token: %w", err)
	}
	return accessToken, expiryTime, nil
}

// GenerateRefreshToken creates a new JWT refresh token for the given user.
func (s *tokenService) GenerateRefreshToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	expiryTime := time.Now().Add(s.cfg.RefreshTokenExpiryDuration)
	refreshToken, err := utils.GenerateJWT(user.UserID, user.Email, s.cfg.RefreshTokenSecret, s.cfg.RefreshTokenExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign refresh token: %w", err)
	}
	return refreshToken, expiryTime, nil
}

// VerifyAccessToken validates an access token's signature and expiry.
func (s *tokenService) VerifyAccessToken(ctx context.Context, tokenString string) (*utils.AuthClaims, error) {
	return verify(tokenString, s.cfg.JWTSecret)
}

// VerifyRefreshToken validates a refresh token's signature and expiry.
func (s *tokenService) VerifyRefreshToken(ctx context.Context, tokenString string) (*utils.AuthClaims, error) {
	return verify(tokenString, s.cfg.RefreshTokenSecret)
}

// verify collapses every parse failure (bad signature, expired, malformed)
// into ErrUnauthorized so callers treat them uniformly as "unauthenticated".
func verify(tokenString, secret string) (*utils.AuthClaims, error) {
	claims, err := utils.ParseAndValidateJWT(tokenString, secret)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrUnauthorized, err)
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: token has no subject", apperrors.ErrUnauthorized)
	}
	return claims, nil
}
