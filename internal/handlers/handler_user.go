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

// userHandler handles HTTP requests for the caller's own profile. There is
// no cross-user access: every route resolves the target from the
// authenticated identity, never from a path parameter.
type userHandler struct {
	userService portssvc.UserSvcFacade
}

// newUserHandler creates a new userHandler.
func newUserHandler(us portssvc.UserSvcFacade) *userHandler {
	return &userHandler{userService: us}
}

// registerUserRoutes registers all profile routes.
func registerUserRoutes(rg *gin.RouterGroup, userService portssvc.UserSvcFacade) {
	h := newUserHandler(userService)

	users := rg.Group("/users")
	{
		users.GET("/me", h.getMe)
		users.PUT("/me", h.updateMe)
		users.DELETE("/me", h.deleteMe)
		users.GET("/me/stats", h.getMyStats)
	}
}

// getMe godoc
// @Summary Get own profile
// @Tags users
// @Produce json
// @Success 200 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Security BearerAuth
// @Router /users/me [get]
func (h *userHandler) getMe(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Unauthorized", nil))
		return
	}

	user, err := h.userService.GetActiveUserByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.NewErrorResponse("User not found", nil))
			return
		}
		logger.Error("Failed to get user", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Failed to retrieve user", nil))
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(dto.ToUserResponse(user), "User profile retrieved successfully"))
}

// updateMe godoc
// @Summary Update own profile
// @Tags users
// @Accept json
// @Produce json
// @Param user body dto.UpdateUserRequest true "Profile fields to update"
// @Success 200 {object} dto.Response
// @Failure 409 {object} dto.Response "Email already in use"
// @Failure 422 {object} dto.Response "Validation failed"
// @Security BearerAuth
// @Router /users/me [put]
func (h *userHandler) updateMe(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Unauthorized", nil))
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	user, err := h.userService.UpdateUser(c.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrDuplicate):
			c.JSON(http.StatusConflict, dto.NewErrorResponse("User with this email already exists", nil))
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, dto.NewErrorResponse("User not found", nil))
		default:
			logger.Error("Failed to update user", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Failed to update user", nil))
		}
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(dto.ToUserResponse(user), "User updated successfully"))
}

// deleteMe godoc
// @Summary Delete own account
// @Description Soft-deletes the account; it disappears from authentication and profile reads.
// @Tags users
// @Produce json
// @Success 200 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Security BearerAuth
// @Router /users/me [delete]
func (h *userHandler) deleteMe(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Unauthorized", nil))
		return
	}

	if err := h.userService.DeactivateUser(c.Request.Context(), userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.NewErrorResponse("User not found", nil))
			return
		}
		logger.Error("Failed to delete user", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Failed to delete user", nil))
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "User account deleted successfully"))
}

// getMyStats godoc
// @Summary Get own account statistics
// @Tags users
// @Produce json
// @Success 200 {object} dto.Response
// @Security BearerAuth
// @Router /users/me/stats [get]
func (h *userHandler) getMyStats(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Unauthorized", nil))
		return
	}

	stats, err := h.userService.GetUserStats(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.NewErrorResponse("User not found", nil))
			return
		}
		logger.Error("Failed to get user stats", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Failed to retrieve statistics", nil))
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(dto.ToUserStatsResponse(stats), "User statistics retrieved successfully"))
}
