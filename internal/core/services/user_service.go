package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/prodcat/catalog_backend_app/internal/apperrors"
	"github.com/prodcat/catalog_backend_app/internal/core/domain"
	portsrepo "github.com/prodcat/catalog_backend_app/internal/core/ports/repositories"
	portssvc "github.com/prodcat/catalog_backend_app/internal/core/ports/services"
	"github.com/prodcat/catalog_backend_app/internal/dto"
)

// userService implements UserSvcFacade. It needs the product repository
// only for the stats endpoint.
type userService struct {
	userRepo    portsrepo.UserRepository
	productRepo portsrepo.ProductRepository
}

// NewUserService creates a new instance of userService.
func NewUserService(userRepo portsrepo.UserRepository, productRepo portsrepo.ProductRepository) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo, productRepo: productRepo}
}

// GetActiveUserByID returns the user if it exists and is active.
func (s *userService) GetActiveUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, apperrors.ErrNotFound
	}
	return user, nil
}

// UpdateUser applies the requested profile changes. An email change is
// re-checked for uniqueness before being persisted.
func (s *userService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest) (*domain.User, error) {
	user, err := s.GetActiveUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Email != nil {
		newEmail := strings.ToLower(strings.TrimSpace(*req.Email))
		if newEmail != user.Email {
			existing, err := s.userRepo.FindUserByEmail(ctx, newEmail)
			if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("failed to check email uniqueness: %w", err)
			}
			if existing != nil {
				return nil, apperrors.ErrDuplicate
			}
			user.Email = newEmail
		}
	}
	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Avatar != nil {
		user.Avatar = req.Avatar
	}
	user.UpdatedAt = time.Now()

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}

// DeactivateUser soft-deletes the account. The user disappears from auth
// lookups; existing refresh tokens become useless because the request
// authorizer re-checks is_active on every request.
func (s *userService) DeactivateUser(ctx context.Context, userID string) error {
	if _, err := s.GetActiveUserByID(ctx, userID); err != nil {
		return err
	}
	if err := s.userRepo.MarkUserInactive(ctx, userID, time.Now()); err != nil {
		return fmt.Errorf("failed to deactivate user: %w", err)
	}
	return nil
}

// GetUserStats returns catalog counts and account timestamps for the user.
func (s *userService) GetUserStats(ctx context.Context, userID string) (*domain.UserStats, error) {
	user, err := s.GetActiveUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	total, active, err := s.productRepo.CountProductsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count products: %w", err)
	}

	return &domain.UserStats{
		TotalProducts:  total,
		ActiveProducts: active,
		MemberSince:    user.CreatedAt,
		LastUpdated:    user.UpdatedAt,
	}, nil
}
