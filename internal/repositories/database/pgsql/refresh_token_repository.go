package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/prodcat/catalog_backend_app/internal/apperrors"
	"github.com/prodcat/catalog_backend_app/internal/core/domain"
	portsrepo "github.com/prodcat/catalog_backend_app/internal/core/ports/repositories"
	"github.com/prodcat/catalog_backend_app/internal/models"
)

type PgxRefreshTokenRepository struct {
	db *pgxpool.Pool
}

func newPgxRefreshTokenRepository(db *pgxpool.Pool) portsrepo.RefreshTokenRepository {
	return &PgxRefreshTokenRepository{db: db}
}

var _ portsrepo.RefreshTokenRepository = (*PgxRefreshTokenRepository)(nil)

func toModelRefreshToken(d domain.RefreshToken) models.RefreshToken {
	return models.RefreshToken{
		TokenID:   d.TokenID,
		TokenHash: d.TokenHash,
		UserID:    d.UserID,
		ExpiresAt: d.ExpiresAt,
		IsActive:  d.IsActive,
		IPAddress: d.IPAddress,
		UserAgent: d.UserAgent,
		CreatedAt: d.CreatedAt,
	}
}

func toDomainRefreshToken(m models.RefreshToken) domain.RefreshToken {
	return domain.RefreshToken{
		TokenID:   m.TokenID,
		TokenHash: m.TokenHash,
		UserID:    m.UserID,
		ExpiresAt: m.ExpiresAt,
		IsActive:  m.IsActive,
		IPAddress: m.IPAddress,
		UserAgent: m.UserAgent,
		CreatedAt: m.CreatedAt,
	}
}

func (r *PgxRefreshTokenRepository) SaveRefreshToken(ctx context.Context, token domain.RefreshToken) error {
	modelToken := toModelRefreshToken(token)
	query := `
        INSERT INTO refresh_tokens (token_id, token_hash, user_id, expires_at, is_active, ip_address, user_agent, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
    `
	_, err := r.db.Exec(ctx, query,
		modelToken.TokenID,
		modelToken.TokenHash,
		modelToken.UserID,
		modelToken.ExpiresAt,
		modelToken.IsActive,
		modelToken.IPAddress,
		modelToken.UserAgent,
		modelToken.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save refresh token: %w", err)
	}
	return nil
}

func (r *PgxRefreshTokenRepository) FindActiveByTokenHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error) {
	query := `
		SELECT token_id, token_hash, user_id, expires_at, is_active, ip_address, user_agent, created_at
		FROM refresh_tokens
		WHERE token_hash = $1 AND is_active = TRUE AND expires_at > NOW();
	`
	var modelToken models.RefreshToken
	err := r.db.QueryRow(ctx, query, tokenHash).Scan(
		&modelToken.TokenID,
		&modelToken.TokenHash,
		&modelToken.UserID,
		&modelToken.ExpiresAt,
		&modelToken.IsActive,
		&modelToken.IPAddress,
		&modelToken.UserAgent,
		&modelToken.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find refresh token: %w", err)
	}

	domainToken := toDomainRefreshToken(modelToken)
	return &domainToken, nil
}

// RevokeByTokenHash soft-revokes the token. Zero rows affected means the
// token was unknown or already revoked; both are fine since logout is
// idempotent.
func (r *PgxRefreshTokenRepository) RevokeByTokenHash(ctx context.Context, tokenHash string) error {
	query := `
        UPDATE refresh_tokens
        SET is_active = FALSE
        WHERE token_hash = $1 AND is_active = TRUE;
    `
	if _, err := r.db.Exec(ctx, query, tokenHash); err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	return nil
}

func (r *PgxRefreshTokenRepository) DeleteExpired(ctx context.Context) (int64, error) {
	query := `DELETE FROM refresh_tokens WHERE expires_at < $1;`
	cmdTag, err := r.db.Exec(ctx, query, time.Now())
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired refresh tokens: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}
