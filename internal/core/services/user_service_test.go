package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/prodcat/catalog_backend_app/internal/apperrors"
	"github.com/prodcat/catalog_backend_app/internal/core/domain"
	portssvc "github.com/prodcat/catalog_backend_app/internal/core/ports/services"
	"github.com/prodcat/catalog_backend_app/internal/core/services"
	"github.com/prodcat/catalog_backend_app/internal/dto"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo    *MockUserRepository
	mockProductRepo *MockProductRepository
	service         portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockProductRepo = new(MockProductRepository)
	suite.service = services.NewUserService(suite.mockUserRepo, suite.mockProductRepo)
}

func (suite *UserServiceTestSuite) existingUser() *domain.User {
	now := time.Now()
	return &domain.User{
		UserID:       uuid.NewString(),
		Name:         "Test User",
		Email:        "test@example.com",
		PasswordHash: "$2a$10$irrelevant",
		IsActive:     true,
		CreatedAt:    now.Add(-24 * time.Hour),
		UpdatedAt:    now,
	}
}

// --- GetActiveUserByID Tests ---

func (suite *UserServiceTestSuite) TestGetActiveUserByID_Success() {
	ctx := context.Background()
	user := suite.existingUser()

	suite.mockUserRepo.On("FindUserByID", ctx, user.UserID).Return(user, nil).Once()

	got, err := suite.service.GetActiveUserByID(ctx, user.UserID)

	suite.Require().NoError(err)
	suite.Equal(user, got)
}

func (suite *UserServiceTestSuite) TestGetActiveUserByID_InactiveBehavesAsAbsent() {
	ctx := context.Background()
	user := suite.existingUser()
	user.IsActive = false

	suite.mockUserRepo.On("FindUserByID", ctx, user.UserID).Return(user, nil).Once()

	got, err := suite.service.GetActiveUserByID(ctx, user.UserID)

	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- UpdateUser Tests ---

func (suite *UserServiceTestSuite) TestUpdateUser_ChangesName() {
	ctx := context.Background()
	user := suite.existingUser()
	newName := "Renamed User"
	req := dto.UpdateUserRequest{Name: &newName}

	suite.mockUserRepo.On("FindUserByID", ctx, user.UserID).Return(user, nil).Once()
	suite.mockUserRepo.On("UpdateUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.UserID == user.UserID && u.Name == newName
	})).Return(nil).Once()

	updated, err := suite.service.UpdateUser(ctx, user.UserID, req)

	suite.Require().NoError(err)
	suite.Equal(newName, updated.Name)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestUpdateUser_EmailTaken() {
	ctx := context.Background()
	user := suite.existingUser()
	other := suite.existingUser()
	other.Email = "taken@example.com"
	newEmail := "Taken@Example.com"
	req := dto.UpdateUserRequest{Email: &newEmail}

	suite.mockUserRepo.On("FindUserByID", ctx, user.UserID).Return(user, nil).Once()
	suite.mockUserRepo.On("FindUserByEmail", ctx, "taken@example.com").Return(other, nil).Once()

	updated, err := suite.service.UpdateUser(ctx, user.UserID, req)

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "UpdateUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestUpdateUser_SameEmailSkipsUniquenessCheck() {
	ctx := context.Background()
	user := suite.existingUser()
	sameEmail := "TEST@example.com"
	req := dto.UpdateUserRequest{Email: &sameEmail}

	suite.mockUserRepo.On("FindUserByID", ctx, user.UserID).Return(user, nil).Once()
	suite.mockUserRepo.On("UpdateUser", ctx, mock.AnythingOfType("domain.User")).Return(nil).Once()

	updated, err := suite.service.UpdateUser(ctx, user.UserID, req)

	suite.Require().NoError(err)
	suite.Equal("test@example.com", updated.Email)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "FindUserByEmail", mock.Anything, mock.Anything)
}

// --- DeactivateUser Tests ---

func (suite *UserServiceTestSuite) TestDeactivateUser_Success() {
	ctx := context.Background()
	user := suite.existingUser()

	suite.mockUserRepo.On("FindUserByID", ctx, user.UserID).Return(user, nil).Once()
	suite.mockUserRepo.On("MarkUserInactive", ctx, user.UserID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.DeactivateUser(ctx, user.UserID)

	suite.Require().NoError(err)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestDeactivateUser_AlreadyInactive() {
	ctx := context.Background()
	user := suite.existingUser()
	user.IsActive = false

	suite.mockUserRepo.On("FindUserByID", ctx, user.UserID).Return(user, nil).Once()

	err := suite.service.DeactivateUser(ctx, user.UserID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "MarkUserInactive", mock.Anything, mock.Anything, mock.Anything)
}

// --- GetUserStats Tests ---

func (suite *UserServiceTestSuite) TestGetUserStats() {
	ctx := context.Background()
	user := suite.existingUser()

	suite.mockUserRepo.On("FindUserByID", ctx, user.UserID).Return(user, nil).Once()
	suite.mockProductRepo.On("CountProductsByUser", ctx, user.UserID).Return(int64(12), int64(9), nil).Once()

	stats, err := suite.service.GetUserStats(ctx, user.UserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(stats)
	assert.Equal(suite.T(), int64(12), stats.TotalProducts)
	assert.Equal(suite.T(), int64(9), stats.ActiveProducts)
	assert.Equal(suite.T(), user.CreatedAt, stats.MemberSince)
	assert.Equal(suite.T(), user.UpdatedAt, stats.LastUpdated)
}

// --- Run Suite ---
func TestUserService(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
