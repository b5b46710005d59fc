package repositories

import (
	"context"

	"github.com/prodcat/catalog_backend_app/internal/core/domain"
)

// RefreshTokenRepository defines persistence operations for the refresh
// token ledger. Tokens are addressed by their SHA-256 hash; the raw token
// string never touches storage.
type RefreshTokenRepository interface {
	// SaveRefreshToken inserts a new ledger row.
	SaveRefreshToken(ctx context.Context, token domain.RefreshToken) error

	// FindActiveByTokenHash returns the ledger row for the given hash if it
	// is still active and unexpired, apperrors.ErrNotFound otherwise.
	FindActiveByTokenHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error)

	// RevokeByTokenHash marks the matching row inactive. Revoking an unknown
	// or already-revoked token is a no-op, not an error.
	RevokeByTokenHash(ctx context.Context, tokenHash string) error

	// DeleteExpired garbage-collects rows past their expiry time and
	// returns the number of rows removed.
	DeleteExpired(ctx context.Context) (int64, error)
}
