package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/prodcat/catalog_backend_app/internal/apperrors"
	"github.com/prodcat/catalog_backend_app/internal/core/domain"
	portsrepo "github.com/prodcat/catalog_backend_app/internal/core/ports/repositories"
	portssvc "github.com/prodcat/catalog_backend_app/internal/core/ports/services"
	"github.com/prodcat/catalog_backend_app/internal/dto"
)

const (
	defaultPageLimit = 10
	maxPageLimit     = 100
	defaultSortField = "createdAt"
	defaultSortOrder = "DESC"
)

// allowedSortFields whitelists listing sort keys; anything else falls back
// to the default rather than reaching the SQL layer.
var allowedSortFields = map[string]bool{
	"createdAt": true,
	"updatedAt": true,
	"name":      true,
	"price":     true,
}

// productService implements ProductSvcFacade.
type productService struct {
	productRepo portsrepo.ProductRepository
}

// NewProductService creates a new instance of productService.
func NewProductService(productRepo portsrepo.ProductRepository) portssvc.ProductSvcFacade {
	return &productService{productRepo: productRepo}
}

// CreateProduct persists a new product owned by userID.
func (s *productService) CreateProduct(ctx context.Context, userID string, req dto.CreateProductRequest) (*domain.Product, error) {
	if req.Price.IsNegative() {
		return nil, fmt.Errorf("%w: price must not be negative", apperrors.ErrValidation)
	}

	now := time.Now()
	product := domain.Product{
		ProductID:   uuid.NewString(),
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Images:      req.Images,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if product.Images == nil {
		product.Images = []string{}
	}

	if err := s.productRepo.SaveProduct(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to save product: %w", err)
	}
	return &product, nil
}

// GetProductByID returns the product after the ownership check.
func (s *productService) GetProductByID(ctx context.Context, userID string, productID string) (*domain.Product, error) {
	return s.findOwnedProduct(ctx, userID, productID)
}

// ListProducts returns one page of the caller's active products plus the
// effective pagination after clamping.
func (s *productService) ListProducts(ctx context.Context, userID string, params dto.ListProductsParams) ([]domain.Product, portssvc.PageResult, error) {
	page := params.Page
	if page < 1 {
		page = 1
	}
	limit := params.Limit
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	sortBy := params.SortBy
	if !allowedSortFields[sortBy] {
		sortBy = defaultSortField
	}
	sortOrder := strings.ToUpper(params.SortOrder)
	if sortOrder != "ASC" && sortOrder != "DESC" {
		sortOrder = defaultSortOrder
	}

	filter := portsrepo.ProductListFilter{
		Search:    params.Search,
		SortBy:    sortBy,
		SortOrder: sortOrder,
		Limit:     limit,
		Offset:    (page - 1) * limit,
	}

	products, total, err := s.productRepo.ListProducts(ctx, userID, filter)
	if err != nil {
		return nil, portssvc.PageResult{}, fmt.Errorf("failed to list products: %w", err)
	}
	return products, portssvc.PageResult{Page: page, Limit: limit, Total: total}, nil
}

// UpdateProduct applies the requested changes after the ownership check.
func (s *productService) UpdateProduct(ctx context.Context, userID string, productID string, req dto.UpdateProductRequest) (*domain.Product, error) {
	product, err := s.findOwnedProduct(ctx, userID, productID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		if req.Price.IsNegative() {
			return nil, fmt.Errorf("%w: price must not be negative", apperrors.ErrValidation)
		}
		product.Price = *req.Price
	}
	if req.Images != nil {
		product.Images = *req.Images
	}
	product.UpdatedAt = time.Now()

	if err := s.productRepo.UpdateProduct(ctx, *product); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	return product, nil
}

// DeleteProduct soft-deletes the product after the ownership check. The row
// stays in storage but disappears from reads and listings.
func (s *productService) DeleteProduct(ctx context.Context, userID string, productID string) error {
	if _, err := s.findOwnedProduct(ctx, userID, productID); err != nil {
		return err
	}
	if err := s.productRepo.MarkProductInactive(ctx, productID, time.Now()); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}

// GetProductStats returns total/active/inactive counts for the caller.
func (s *productService) GetProductStats(ctx context.Context, userID string) (*domain.ProductStats, error) {
	total, active, err := s.productRepo.CountProductsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count products: %w", err)
	}
	return &domain.ProductStats{
		TotalProducts:    total,
		ActiveProducts:   active,
		InactiveProducts: total - active,
	}, nil
}

// findOwnedProduct fetches an active product and enforces ownership:
// ErrNotFound when it does not exist (or is soft-deleted), ErrForbidden when
// it belongs to someone else. The two are distinct error kinds so callers
// can tell "doesn't exist" from "not yours".
func (s *productService) findOwnedProduct(ctx context.Context, userID string, productID string) (*domain.Product, error) {
	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product.UserID != userID {
		return nil, apperrors.ErrForbidden
	}
	return product, nil
}
