package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/prodcat/catalog_backend_app/internal/apperrors"
	"github.com/prodcat/catalog_backend_app/internal/core/domain"
	portsrepo "github.com/prodcat/catalog_backend_app/internal/core/ports/repositories"
	"github.com/prodcat/catalog_backend_app/internal/models"
)

const uniqueViolationCode = "23505"

type PgxUserRepository struct {
	db *pgxpool.Pool
}

func newPgxUserRepository(db *pgxpool.Pool) portsrepo.UserRepository {
	return &PgxUserRepository{db: db}
}

// Ensure PgxUserRepository implements portsrepo.UserRepository
var _ portsrepo.UserRepository = (*PgxUserRepository)(nil)

// Helper to convert domain.User to models.User
func toModelUser(d domain.User) models.User {
	return models.User{
		UserID:          d.UserID,
		Name:            d.Name,
		Email:           d.Email,
		PasswordHash:    d.PasswordHash,
		Avatar:          d.Avatar,
		IsActive:        d.IsActive,
		IsEmailVerified: d.IsEmailVerified,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
}

// Helper to convert models.User to domain.User
func toDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:          m.UserID,
		Name:            m.Name,
		Email:           m.Email,
		PasswordHash:    m.PasswordHash,
		Avatar:          m.Avatar,
		IsActive:        m.IsActive,
		IsEmailVerified: m.IsEmailVerified,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	modelUser := toModelUser(user)
	query := `
        INSERT INTO users (user_id, name, email, password_hash, avatar, is_active, is_email_verified, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
    `
	_, err := r.db.Exec(ctx, query,
		modelUser.UserID,
		modelUser.Name,
		modelUser.Email,
		modelUser.PasswordHash,
		modelUser.Avatar,
		modelUser.IsActive,
		modelUser.IsEmailVerified,
		modelUser.CreatedAt,
		modelUser.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `
		SELECT user_id, name, email, password_hash, avatar, is_active, is_email_verified, created_at, updated_at
		FROM users
		WHERE user_id = $1;
	`
	return r.scanUserRow(r.db.QueryRow(ctx, query, userID), userID)
}

func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
		SELECT user_id, name, email, password_hash, avatar, is_active, is_email_verified, created_at, updated_at
		FROM users
		WHERE LOWER(email) = LOWER($1);
	`
	return r.scanUserRow(r.db.QueryRow(ctx, query, email), email)
}

func (r *PgxUserRepository) scanUserRow(row pgx.Row, key string) (*domain.User, error) {
	var modelUser models.User
	err := row.Scan(
		&modelUser.UserID,
		&modelUser.Name,
		&modelUser.Email,
		&modelUser.PasswordHash,
		&modelUser.Avatar,
		&modelUser.IsActive,
		&modelUser.IsEmailVerified,
		&modelUser.CreatedAt,
		&modelUser.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user %s: %w", key, err)
	}

	domainUser := toDomainUser(modelUser)
	return &domainUser, nil
}

func (r *PgxUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	modelUser := toModelUser(user)
	query := `
        UPDATE users
        SET name = $1, email = $2, avatar = $3, is_email_verified = $4, updated_at = $5
        WHERE user_id = $6 AND is_active = TRUE;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		modelUser.Name,
		modelUser.Email,
		modelUser.Avatar,
		modelUser.IsEmailVerified,
		modelUser.UpdatedAt,
		modelUser.UserID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to execute update user query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("user not found or inactive: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxUserRepository) MarkUserInactive(ctx context.Context, userID string, deactivatedAt time.Time) error {
	query := `
        UPDATE users
        SET is_active = FALSE, updated_at = $1
        WHERE user_id = $2 AND is_active = TRUE;
    `
	cmdTag, err := r.db.Exec(ctx, query, deactivatedAt, userID)
	if err != nil {
		return fmt.Errorf("failed to mark user inactive: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("user not found or already inactive: %w", apperrors.ErrNotFound)
	}
	return nil
}
