package services

import (
	"context"

	"github.com/prodcat/catalog_backend_app/internal/core/domain"
	"github.com/prodcat/catalog_backend_app/internal/dto"
)

// UserSvcFacade defines profile management operations. All lookups are
// scoped to active users; soft-deleted accounts behave as if absent.
type UserSvcFacade interface {
	// GetActiveUserByID returns the active user with the given ID,
	// apperrors.ErrNotFound otherwise.
	GetActiveUserByID(ctx context.Context, userID string) (*domain.User, error)
	// UpdateUser applies profile changes; apperrors.ErrDuplicate when the
	// new email is already taken.
	UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest) (*domain.User, error)
	// DeactivateUser soft-deletes the account.
	DeactivateUser(ctx context.Context, userID string) error
	// GetUserStats returns catalog counts and account timestamps.
	GetUserStats(ctx context.Context, userID string) (*domain.UserStats, error)
}
