package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/prodcat/catalog_backend_app/internal/apperrors"
	"github.com/prodcat/catalog_backend_app/internal/core/domain"
	portsrepo "github.com/prodcat/catalog_backend_app/internal/core/ports/repositories"
	portssvc "github.com/prodcat/catalog_backend_app/internal/core/ports/services"
	"github.com/prodcat/catalog_backend_app/internal/core/services"
	"github.com/prodcat/catalog_backend_app/internal/dto"
)

// MockProductRepository is a mock type for the ProductRepository interface
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductRepository) ListProducts(ctx context.Context, userID string, filter portsrepo.ProductListFilter) ([]domain.Product, int64, error) {
	args := m.Called(ctx, userID, filter)
	var products []domain.Product
	if args.Get(0) != nil {
		products = args.Get(0).([]domain.Product)
	}
	return products, args.Get(1).(int64), args.Error(2)
}

func (m *MockProductRepository) UpdateProduct(ctx context.Context, product domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) MarkProductInactive(ctx context.Context, productID string, deletedAt time.Time) error {
	args := m.Called(ctx, productID, deletedAt)
	return args.Error(0)
}

func (m *MockProductRepository) CountProductsByUser(ctx context.Context, userID string) (int64, int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Get(1).(int64), args.Error(2)
}

// --- Test Suite Setup ---

type ProductServiceTestSuite struct {
	suite.Suite
	mockRepo *MockProductRepository
	service  portssvc.ProductSvcFacade
	ownerID  string
}

func (suite *ProductServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockProductRepository)
	suite.service = services.NewProductService(suite.mockRepo)
	suite.ownerID = uuid.NewString()
}

func (suite *ProductServiceTestSuite) ownedProduct() *domain.Product {
	now := time.Now()
	return &domain.Product{
		ProductID:   uuid.NewString(),
		UserID:      suite.ownerID,
		Name:        "Widget",
		Description: "A widget",
		Price:       decimal.NewFromInt(42),
		Images:      []string{},
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// --- CreateProduct Tests ---

func (suite *ProductServiceTestSuite) TestCreateProduct_Success() {
	ctx := context.Background()
	req := dto.CreateProductRequest{
		Name:        "Widget",
		Description: "A widget",
		Price:       decimal.NewFromFloat(19.99),
	}

	suite.mockRepo.On("SaveProduct", ctx, mock.MatchedBy(func(p domain.Product) bool {
		return p.UserID == suite.ownerID &&
			p.Name == req.Name &&
			p.IsActive &&
			p.Images != nil &&
			p.Price.Equal(req.Price)
	})).Return(nil).Once()

	product, err := suite.service.CreateProduct(ctx, suite.ownerID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(product)
	suite.NotEmpty(product.ProductID)
	suite.Equal(suite.ownerID, product.UserID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ProductServiceTestSuite) TestCreateProduct_NegativePrice() {
	ctx := context.Background()
	req := dto.CreateProductRequest{Name: "Widget", Price: decimal.NewFromInt(-1)}

	product, err := suite.service.CreateProduct(ctx, suite.ownerID, req)

	suite.Require().Error(err)
	suite.Nil(product)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveProduct", mock.Anything, mock.Anything)
}

// --- GetProductByID Tests ---

func (suite *ProductServiceTestSuite) TestGetProductByID_NotFound() {
	ctx := context.Background()
	productID := uuid.NewString()

	suite.mockRepo.On("FindProductByID", ctx, productID).Return(nil, apperrors.ErrNotFound).Once()

	product, err := suite.service.GetProductByID(ctx, suite.ownerID, productID)

	suite.Require().Error(err)
	suite.Nil(product)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ProductServiceTestSuite) TestGetProductByID_OtherOwner() {
	ctx := context.Background()
	product := suite.ownedProduct()
	product.UserID = uuid.NewString()

	suite.mockRepo.On("FindProductByID", ctx, product.ProductID).Return(product, nil).Once()

	got, err := suite.service.GetProductByID(ctx, suite.ownerID, product.ProductID)

	// Another user's product exists but is not accessible.
	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

// --- ListProducts Tests ---

func (suite *ProductServiceTestSuite) TestListProducts_DefaultsAndClamping() {
	ctx := context.Background()
	params := dto.ListProductsParams{Page: 0, Limit: 5000, SortBy: "password_hash", SortOrder: "sideways"}

	expectedFilter := portsrepo.ProductListFilter{
		SortBy:    "createdAt",
		SortOrder: "DESC",
		Limit:     100,
		Offset:    0,
	}
	suite.mockRepo.On("ListProducts", ctx, suite.ownerID, expectedFilter).
		Return([]domain.Product{}, int64(0), nil).Once()

	_, page, err := suite.service.ListProducts(ctx, suite.ownerID, params)

	suite.Require().NoError(err)
	// The reported pagination is the clamped one, not the raw request.
	suite.Equal(portssvc.PageResult{Page: 1, Limit: 100, Total: 0}, page)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ProductServiceTestSuite) TestListProducts_PassesThroughValidParams() {
	ctx := context.Background()
	params := dto.ListProductsParams{Page: 3, Limit: 20, Search: "widget", SortBy: "price", SortOrder: "asc"}

	expectedFilter := portsrepo.ProductListFilter{
		Search:    "widget",
		SortBy:    "price",
		SortOrder: "ASC",
		Limit:     20,
		Offset:    40,
	}
	expected := []domain.Product{*suite.ownedProduct()}
	suite.mockRepo.On("ListProducts", ctx, suite.ownerID, expectedFilter).
		Return(expected, int64(41), nil).Once()

	products, page, err := suite.service.ListProducts(ctx, suite.ownerID, params)

	suite.Require().NoError(err)
	suite.Len(products, 1)
	suite.Equal(portssvc.PageResult{Page: 3, Limit: 20, Total: 41}, page)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- UpdateProduct Tests ---

func (suite *ProductServiceTestSuite) TestUpdateProduct_PartialUpdate() {
	ctx := context.Background()
	product := suite.ownedProduct()
	newName := "Better Widget"
	req := dto.UpdateProductRequest{Name: &newName}

	suite.mockRepo.On("FindProductByID", ctx, product.ProductID).Return(product, nil).Once()
	suite.mockRepo.On("UpdateProduct", ctx, mock.MatchedBy(func(p domain.Product) bool {
		return p.ProductID == product.ProductID &&
			p.Name == newName &&
			p.Description == product.Description
	})).Return(nil).Once()

	updated, err := suite.service.UpdateProduct(ctx, suite.ownerID, product.ProductID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(updated)
	suite.Equal(newName, updated.Name)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ProductServiceTestSuite) TestUpdateProduct_NegativePrice() {
	ctx := context.Background()
	product := suite.ownedProduct()
	badPrice := decimal.NewFromInt(-10)
	req := dto.UpdateProductRequest{Price: &badPrice}

	suite.mockRepo.On("FindProductByID", ctx, product.ProductID).Return(product, nil).Once()

	updated, err := suite.service.UpdateProduct(ctx, suite.ownerID, product.ProductID, req)

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateProduct", mock.Anything, mock.Anything)
}

func (suite *ProductServiceTestSuite) TestUpdateProduct_OtherOwner() {
	ctx := context.Background()
	product := suite.ownedProduct()
	product.UserID = uuid.NewString()
	newName := "Hijacked"
	req := dto.UpdateProductRequest{Name: &newName}

	suite.mockRepo.On("FindProductByID", ctx, product.ProductID).Return(product, nil).Once()

	updated, err := suite.service.UpdateProduct(ctx, suite.ownerID, product.ProductID, req)

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateProduct", mock.Anything, mock.Anything)
}

// --- DeleteProduct Tests ---

func (suite *ProductServiceTestSuite) TestDeleteProduct_SoftDeletes() {
	ctx := context.Background()
	product := suite.ownedProduct()

	suite.mockRepo.On("FindProductByID", ctx, product.ProductID).Return(product, nil).Once()
	suite.mockRepo.On("MarkProductInactive", ctx, product.ProductID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.DeleteProduct(ctx, suite.ownerID, product.ProductID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ProductServiceTestSuite) TestDeleteProduct_AlreadyDeleted() {
	ctx := context.Background()
	productID := uuid.NewString()

	// A soft-deleted product is invisible, so a second delete sees NotFound.
	suite.mockRepo.On("FindProductByID", ctx, productID).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.DeleteProduct(ctx, suite.ownerID, productID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "MarkProductInactive", mock.Anything, mock.Anything, mock.Anything)
}

// --- GetProductStats Tests ---

func (suite *ProductServiceTestSuite) TestGetProductStats() {
	ctx := context.Background()

	suite.mockRepo.On("CountProductsByUser", ctx, suite.ownerID).Return(int64(7), int64(5), nil).Once()

	stats, err := suite.service.GetProductStats(ctx, suite.ownerID)

	suite.Require().NoError(err)
	suite.Require().NotNil(stats)
	suite.Equal(int64(7), stats.TotalProducts)
	suite.Equal(int64(5), stats.ActiveProducts)
	suite.Equal(int64(2), stats.InactiveProducts)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- Run Suite ---
func TestProductService(t *testing.T) {
	suite.Run(t, new(ProductServiceTestSuite))
}
