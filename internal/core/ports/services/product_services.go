package services

import (
	"context"

	"github.com/prodcat/catalog_backend_app/internal/core/domain"
	"github.com/prodcat/catalog_backend_app/internal/dto"
)

// PageResult reports the pagination the service actually applied after
// clamping, plus the total matching count. Callers build response metadata
// from this instead of re-deriving page and limit from the raw params.
type PageResult struct {
	Page  int
	Limit int
	Total int64
}

// ProductSvcFacade defines ownership-scoped product operations. Operations
// on a product that does not exist (or is soft-deleted) return
// apperrors.ErrNotFound; operations on another user's product return
// apperrors.ErrForbidden.
type ProductSvcFacade interface {
	CreateProduct(ctx context.Context, userID string, req dto.CreateProductRequest) (*domain.Product, error)
	GetProductByID(ctx context.Context, userID string, productID string) (*domain.Product, error)
	// ListProducts returns one page of the caller's products plus the
	// effective pagination. Limit is clamped to 100.
	ListProducts(ctx context.Context, userID string, params dto.ListProductsParams) ([]domain.Product, PageResult, error)
	UpdateProduct(ctx context.Context, userID string, productID string, req dto.UpdateProductRequest) (*domain.Product, error)
	// DeleteProduct soft-deletes the product.
	DeleteProduct(ctx context.Context, userID string, productID string) error
	GetProductStats(ctx context.Context, userID string) (*domain.ProductStats, error)
}
