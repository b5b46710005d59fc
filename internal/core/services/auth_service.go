package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/prodcat/catalog_backend_app/internal/apperrors"
	"github.com/prodcat/catalog_backend_app/internal/core/domain"
	portsrepo "github.com/prodcat/catalog_backend_app/internal/core/ports/repositories"
	portssvc "github.com/prodcat/catalog_backend_app/internal/core/ports/services"
	"github.com/prodcat/catalog_backend_app/internal/dto"
	"github.com/prodcat/catalog_backend_app/internal/platform/config"
	"github.com/prodcat/catalog_backend_app/internal/utils"
)

// authService implements AuthSvcFacade. It orchestrates the credential
// store, the token service and the refresh token ledger. Each transition
// that issues a refresh token writes exactly one ledger row; no transition
// touches more than one user row. The user insert and the ledger insert are
// deliberately not wrapped in a transaction: a failure between them leaves a
// registered user with no session, which the client resolves by logging in.
type authService struct {
	cfg         *config.Config
	userRepo    portsrepo.UserRepository
	refreshRepo portsrepo.RefreshTokenRepository
	tokenSvc    portssvc.TokenSvcFacade
}

// NewAuthService creates a new instance of authService.
func NewAuthService(cfg *config.Config, userRepo portsrepo.UserRepository, refreshRepo portsrepo.RefreshTokenRepository, tokenSvc portssvc.TokenSvcFacade) portssvc.AuthSvcFacade {
	return &authService{
		cfg:         cfg,
		userRepo:    userRepo,
		refreshRepo: refreshRepo,
		tokenSvc:    tokenSvc,
	}
}

// Register creates a new user account and its first session.
func (s *authService) Register(ctx context.Context, req dto.RegisterRequest, client domain.ClientInfo) (*dto.AuthResult, error) {
	email := normalizeEmail(req.Email)

	existing, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check for existing user: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrDuplicate
	}

	passwordHash, err := utils.HashPassword(req.Password, s.cfg.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		Name:         req.Name,
		Email:        email,
		PasswordHash: passwordHash,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	return s.issueSession(ctx, &user, client)
}

// Login authenticates a user by email and password.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest, client domain.ClientInfo) (*dto.AuthResult, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Same error as a password mismatch so responses cannot be used
			// to enumerate registered emails.
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !user.IsActive {
		return nil, apperrors.ErrUnauthorized
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrUnauthorized
	}

	return s.issueSession(ctx, user, client)
}

// Refresh validates a refresh token against both its signature and the
// ledger, then mints a new access token. The refresh token is not rotated;
// it stays valid until its original expiry or an explicit logout.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	if refreshToken == "" {
		return "", apperrors.ErrUnauthorized
	}

	claims, err := s.tokenSvc.VerifyRefreshToken(ctx, refreshToken)
	if err != nil {
		return "", apperrors.ErrUnauthorized
	}

	entry, err := s.refreshRepo.FindActiveByTokenHash(ctx, utils.HashRefreshToken(refreshToken))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", apperrors.ErrUnauthorized
		}
		return "", fmt.Errorf("failed to look up refresh token: %w", err)
	}
	if entry.UserID != claims.Subject {
		return "", apperrors.ErrUnauthorized
	}
	if entry.IsExpired() {
		return "", fmt.Errorf("%w: %w", apperrors.ErrUnauthorized, apperrors.ErrRefreshTokenExpired)
	}

	user, err := s.userRepo.FindUserByID(ctx, entry.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", apperrors.ErrUnauthorized
		}
		return "", fmt.Errorf("failed to look up user for refresh: %w", err)
	}
	if !user.IsActive {
		return "", apperrors.ErrUnauthorized
	}

	accessToken, _, err := s.tokenSvc.GenerateAccessToken(ctx, user)
	if err != nil {
		return "", err
	}
	return accessToken, nil
}

// Logout revokes the ledger entry for the given refresh token. The caller's
// intent (end the session) is satisfied whether or not the token resolves to
// a live entry, so this never fails for missing or unknown tokens.
func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	if err := s.refreshRepo.RevokeByTokenHash(ctx, utils.HashRefreshToken(refreshToken)); err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	return nil
}

// issueSession generates the access/refresh token pair and records the
// refresh token in the ledger.
func (s *authService) issueSession(ctx context.Context, user *domain.User, client domain.ClientInfo) (*dto.AuthResult, error) {
	accessToken, _, err := s.tokenSvc.GenerateAccessToken(ctx, user)
	if err != nil {
		return nil, err
	}

	refreshToken, refreshExpiry, err := s.tokenSvc.GenerateRefreshToken(ctx, user)
	if err != nil {
		return nil, err
	}

	entry := domain.RefreshToken{
		TokenID:   uuid.NewString(),
		TokenHash: utils.HashRefreshToken(refreshToken),
		UserID:    user.UserID,
		ExpiresAt: refreshExpiry,
		IsActive:  true,
		CreatedAt: time.Now(),
	}
	if client.IPAddress != "" {
		entry.IPAddress = &client.IPAddress
	}
	if client.UserAgent != "" {
		entry.UserAgent = &client.UserAgent
	}

	if err := s.refreshRepo.SaveRefreshToken(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to save refresh token: %w", err)
	}

	return &dto.AuthResult{
		User:               user,
		AccessToken:        accessToken,
		RefreshToken:       refreshToken,
		RefreshTokenExpiry: refreshExpiry,
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
