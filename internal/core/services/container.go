package services

import (
	portsrepo "github.com/prodcat/catalog_backend_app/internal/core/ports/repositories"
	portssvc "github.com/prodcat/catalog_backend_app/internal/core/ports/services"
	"github.com/prodcat/catalog_backend_app/internal/platform/config"
)

// NewServiceContainer wires all services over the given repositories.
func NewServiceContainer(cfg *config.Config, repos *portsrepo.RepositoryContainer) *portssvc.ServiceContainer {
	tokenSvc := NewTokenService(cfg)
	return &portssvc.ServiceContainer{
		Token:   tokenSvc,
		Auth:    NewAuthService(cfg, repos.User, repos.RefreshToken, tokenSvc),
		User:    NewUserService(repos.User, repos.Product),
		Product: NewProductService(repos.Product),
	}
}
