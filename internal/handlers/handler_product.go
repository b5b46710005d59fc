package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prodcat/catalog_backend_app/internal/apperrors"
	portssvc "github.com/prodcat/catalog_backend_app/internal/core/ports/services"
	"github.com/prodcat/catalog_backend_app/internal/dto"
	"github.com/prodcat/catalog_backend_app/internal/middleware"
)

// productHandler handles HTTP requests for the caller's products.
type productHandler struct {
	productService portssvc.ProductSvcFacade
}

// newProductHandler creates a new productHandler.
func newProductHandler(ps portssvc.ProductSvcFacade) *productHandler {
	return &productHandler{productService: ps}
}

// registerProductRoutes registers all product routes.
func registerProductRoutes(rg *gin.RouterGroup, productService portssvc.ProductSvcFacade) {
	h := newProductHandler(productService)

	products := rg.Group("/products")
	{
		products.POST("", h.createProduct)
		products.GET("", h.listProducts)
		products.GET("/stats/overview", h.getStats)
		products.GET("/:productID", h.getProduct)
		products.PUT("/:productID", h.updateProduct)
		products.DELETE("/:productID", h.deleteProduct)
	}
}

// createProduct godoc
// @Summary Create a product
// @Tags products
// @Accept json
// @Produce json
// @Param product body dto.CreateProductRequest true "Product details"
// @Success 201 {object} dto.Response
// @Failure 422 {object} dto.Response "Validation failed"
// @Security BearerAuth
// @Router /products [post]
func (h *productHandler) createProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Unauthorized", nil))
		return
	}

	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	product, err := h.productService.CreateProduct(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse("Validation failed", []dto.FieldError{{Field: "price", Message: "Must not be negative"}}))
			return
		}
		logger.Error("Failed to create product", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Failed to create product", nil))
		return
	}

	logger.Info("Product created", slog.String("product_id", product.ProductID))
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.ToProductResponse(product), "Product created successfully"))
}

// listProducts godoc
// @Summary List own products
// @Description Paginated listing of the caller's products with optional case-insensitive substring search over name and description.
// @Tags products
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page (max 100)" default(10)
// @Param search query string false "Search term"
// @Param sortBy query string false "Sort field" default(createdAt)
// @Param sortOrder query string false "ASC or DESC" default(DESC)
// @Success 200 {object} dto.Response
// @Failure 422 {object} dto.Response
// @Security BearerAuth
// @Router /products [get]
func (h *productHandler) listProducts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Unauthorized", nil))
		return
	}

	var params dto.ListProductsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondValidationError(c, err)
		return
	}

	products, page, err := h.productService.ListProducts(c.Request.Context(), userID, params)
	if err != nil {
		logger.Error("Failed to list products", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Failed to list products", nil))
		return
	}

	c.JSON(http.StatusOK, dto.NewPaginatedResponse(dto.ToProductResponseList(products), "Products retrieved successfully", page.Page, page.Limit, page.Total))
}

// getProduct godoc
// @Summary Get a product by ID
// @Tags products
// @Produce json
// @Param productID path string true "Product ID"
// @Success 200 {object} dto.Response
// @Failure 403 {object} dto.Response "Not the owner"
// @Failure 404 {object} dto.Response "Not found"
// @Security BearerAuth
// @Router /products/{productID} [get]
func (h *productHandler) getProduct(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Unauthorized", nil))
		return
	}

	product, err := h.productService.GetProductByID(c.Request.Context(), userID, c.Param("productID"))
	if err != nil {
		h.respondProductError(c, err, "Failed to retrieve product")
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(dto.ToProductResponse(product), "Product retrieved successfully"))
}

// updateProduct godoc
// @Summary Update a product
// @Tags products
// @Accept json
// @Produce json
// @Param productID path string true "Product ID"
// @Param product body dto.UpdateProductRequest true "Fields to update"
// @Success 200 {object} dto.Response
// @Failure 403 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Failure 422 {object} dto.Response
// @Security BearerAuth
// @Router /products/{productID} [put]
func (h *productHandler) updateProduct(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Unauthorized", nil))
		return
	}

	var req dto.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	product, err := h.productService.UpdateProduct(c.Request.Context(), userID, c.Param("productID"), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse("Validation failed", []dto.FieldError{{Field: "price", Message: "Must not be negative"}}))
			return
		}
		h.respondProductError(c, err, "Failed to update product")
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(dto.ToProductResponse(product), "Product updated successfully"))
}

// deleteProduct godoc
// @Summary Delete a product
// @Description Soft-deletes the product; it disappears from reads and listings.
// @Tags products
// @Produce json
// @Param productID path string true "Product ID"
// @Success 200 {object} dto.Response
// @Failure 403 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Security BearerAuth
// @Router /products/{productID} [delete]
func (h *productHandler) deleteProduct(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Unauthorized", nil))
		return
	}

	if err := h.productService.DeleteProduct(c.Request.Context(), userID, c.Param("productID")); err != nil {
		h.respondProductError(c, err, "Failed to delete product")
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Product deleted successfully"))
}

// getStats godoc
// @Summary Get product statistics
// @Tags products
// @Produce json
// @Success 200 {object} dto.Response
// @Security BearerAuth
// @Router /products/stats/overview [get]
func (h *productHandler) getStats(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Unauthorized", nil))
		return
	}

	stats, err := h.productService.GetProductStats(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to get product stats", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Failed to retrieve statistics", nil))
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(dto.ToProductStatsResponse(stats), "Product statistics retrieved successfully"))
}

func (h *productHandler) respondProductError(c *gin.Context, err error, internalMsg string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Product not found", nil))
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.NewErrorResponse("You do not have access to this product", nil))
	default:
		logger.Error(internalMsg, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(internalMsg, nil))
	}
}
