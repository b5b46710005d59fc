package repositories

import (
	"context"
	"time"

	"github.com/prodcat/catalog_backend_app/internal/core/domain"
)

// ProductListFilter carries the sanitised listing options a service hands to
// the repository. SortBy/SortOrder are expected to be pre-validated against
// the allowed sort fields; repositories map them to concrete columns.
type ProductListFilter struct {
	Search    string
	SortBy    string
	SortOrder string
	Limit     int
	Offset    int
}

// ProductRepository defines persistence operations for products.
type ProductRepository interface {
	// SaveProduct inserts a new product row.
	SaveProduct(ctx context.Context, product domain.Product) error

	// FindProductByID returns the active product with the given ID,
	// apperrors.ErrNotFound if it does not exist or is soft-deleted.
	FindProductByID(ctx context.Context, productID string) (*domain.Product, error)

	// ListProducts returns one page of the owner's active products plus the
	// total count matching the filter (for pagination metadata).
	ListProducts(ctx context.Context, userID string, filter ProductListFilter) ([]domain.Product, int64, error)

	// UpdateProduct persists mutable fields of an existing active product.
	UpdateProduct(ctx context.Context, product domain.Product) error

	// MarkProductInactive soft-deletes the product (is_active = false).
	MarkProductInactive(ctx context.Context, productID string, deletedAt time.Time) error

	// CountProductsByUser returns total and active product counts for the user.
	CountProductsByUser(ctx context.Context, userID string) (total int64, active int64, err error)
}
