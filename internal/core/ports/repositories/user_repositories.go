package repositories

import (
	"context"
	"time"

	"github.com/prodcat/catalog_backend_app/internal/core/domain"
)

// UserRepository defines persistence operations for users.
// Implementations must return apperrors.ErrNotFound when a lookup misses and
// apperrors.ErrDuplicate on a unique-email violation.
type UserRepository interface {
	// SaveUser inserts a new user row.
	SaveUser(ctx context.Context, user domain.User) error

	// FindUserByID returns the user with the given ID regardless of its
	// active flag; callers decide whether inactive users are visible.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByEmail performs a case-insensitive lookup by email.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// UpdateUser persists mutable profile fields of an existing user.
	UpdateUser(ctx context.Context, user domain.User) error

	// MarkUserInactive soft-deletes the user (is_active = false).
	MarkUserInactive(ctx context.Context, userID string, deactivatedAt time.Time) error
}
