package dto

import (
	"time"

	"github.com/prodcat/catalog_backend_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateProductRequest carries the payload for creating a product.
// Price is validated for non-negativity in the service since the validator
// cannot inspect decimal.Decimal.
type CreateProductRequest struct {
	Name        string          `json:"name" binding:"required,max=255"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Images      []string        `json:"images"`
}

// UpdateProductRequest defines the data allowed for updating a product.
// Pointers differentiate omitted fields from zero-value fields.
type UpdateProductRequest struct {
	Name        *string          `json:"name" binding:"omitempty,max=255"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Images      *[]string        `json:"images"`
}

// ListProductsParams defines query parameters for listing products.
type ListProductsParams struct {
	Page      int    `form:"page,default=1" binding:"omitempty,min=1"`
	Limit     int    `form:"limit,default=10" binding:"omitempty,min=1"`
	Search    string `form:"search"`
	SortBy    string `form:"sortBy,default=createdAt"`
	SortOrder string `form:"sortOrder,default=DESC" binding:"omitempty,oneof=ASC DESC asc desc"`
}

// ProductResponse is the public view of a product.
type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Images      []string        `json:"images"`
	UserID      string          `json:"userId"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// ToProductResponse converts a domain.Product to its public view.
func ToProductResponse(product *domain.Product) ProductResponse {
	images := product.Images
	if images == nil {
		images = []string{}
	}
	return ProductResponse{
		ID:          product.ProductID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Images:      images,
		UserID:      product.UserID,
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
}

// ToProductResponseList converts a slice of domain products.
func ToProductResponseList(products []domain.Product) []ProductResponse {
	responses := make([]ProductResponse, len(products))
	for i := range products {
		responses[i] = ToProductResponse(&products[i])
	}
	return responses
}

// ProductStatsResponse summarises a user's catalog.
type ProductStatsResponse struct {
	TotalProducts    int64 `json:"totalProducts"`
	ActiveProducts   int64 `json:"activeProducts"`
	InactiveProducts int64 `json:"inactiveProducts"`
}

// ToProductStatsResponse converts domain.ProductStats to its response form.
func ToProductStatsResponse(stats *domain.ProductStats) ProductStatsResponse {
	return ProductStatsResponse{
		TotalProducts:    stats.TotalProducts,
		ActiveProducts:   stats.ActiveProducts,
		InactiveProducts: stats.InactiveProducts,
	}
}
