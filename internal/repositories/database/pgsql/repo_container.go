package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/prodcat/catalog_backend_app/internal/core/ports/repositories"
)

// NewRepositoryContainer builds all pgx-backed repositories over one pool.
func NewRepositoryContainer(db *pgxpool.Pool) *portsrepo.RepositoryContainer {
	return &portsrepo.RepositoryContainer{
		User:         newPgxUserRepository(db),
		RefreshToken: newPgxRefreshTokenRepository(db),
		Product:      newPgxProductRepository(db),
	}
}
