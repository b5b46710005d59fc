package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/prodcat/catalog_backend_app/internal/apperrors"
	"github.com/prodcat/catalog_backend_app/internal/core/domain"
	portssvc "github.com/prodcat/catalog_backend_app/internal/core/ports/services"
	"github.com/prodcat/catalog_backend_app/internal/dto"
	"github.com/prodcat/catalog_backend_app/internal/middleware"
	"github.com/prodcat/catalog_backend_app/internal/platform/config"
)

// authHandler handles authentication related requests.
type authHandler struct {
	authService portssvc.AuthSvcFacade
	cfg         *config.Config
}

// newAuthHandler creates a new authHandler.
func newAuthHandler(as portssvc.AuthSvcFacade, cfg *config.Config) *authHandler {
	return &authHandler{
		authService: as,
		cfg:         cfg,
	}
}

// registerPublicAuthRoutes sets up register/login/refresh, which must work
// without a bearer token. Login and register are rate limited by IP.
func registerPublicAuthRoutes(rg *gin.RouterGroup, cfg *config.Config, authService portssvc.AuthSvcFacade) {
	h := newAuthHandler(authService, cfg)

	rate, _ := limiter.NewRateFromFormatted("10-M")
	ipLimiter := limiter.New(memory.NewStore(), rate)
	limitMiddleware := middleware.RateLimit(ipLimiter)

	auth := rg.Group("/auth")
	{
		auth.POST("/register", limitMiddleware, h.register)
		auth.POST("/login", limitMiddleware, h.login)
		auth.POST("/refresh", h.refresh)
	}
}

// registerProtectedAuthRoutes sets up logout and the profile endpoint,
// both behind the auth middleware applied to the parent group.
func registerProtectedAuthRoutes(rg *gin.RouterGroup, cfg *config.Config, authService portssvc.AuthSvcFacade) {
	h := newAuthHandler(authService, cfg)

	auth := rg.Group("/auth")
	{
		auth.POST("/logout", h.logout)
		auth.GET("/me", h.me)
	}
}

// register godoc
// @Summary Register a new user
// @Description Creates a user account and starts a session. The refresh token is set as an HTTP-only cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param register body dto.RegisterRequest true "Registration data"
// @Success 201 {object} dto.Response
// @Failure 409 {object} dto.Response "Email already in use"
// @Failure 422 {object} dto.Response "Validation failed"
// @Router /auth/register [post]
func (h *authHandler) register(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	result, err := h.authService.Register(c.Request.Context(), req, clientInfo(c))
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, dto.NewErrorResponse("User with this email already exists", nil))
			return
		}
		logger.Error("Failed to register user", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Failed to register user", nil))
		return
	}

	h.setRefreshCookie(c, result)
	logger.Info("User registered", slog.String("new_user_id", result.User.UserID))
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.AuthData{
		AccessToken: result.AccessToken,
		User:        dto.ToUserResponse(result.User),
	}, "User registered successfully"))
}

// login godoc
// @Summary Login user
// @Description Authenticates a user and starts a session. The refresh token is set as an HTTP-only cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.Response
// @Failure 401 {object} dto.Response "Invalid credentials"
// @Failure 422 {object} dto.Response "Validation failed"
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	result, err := h.authService.Login(c.Request.Context(), req, clientInfo(c))
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			// Deliberately the same message whether the email is unknown or
			// the password is wrong.
			c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Invalid email or password", nil))
			return
		}
		logger.Error("Failed to login user", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Failed to login", nil))
		return
	}

	h.setRefreshCookie(c, result)
	c.JSON(http.StatusOK, dto.NewSuccessResponse(dto.AuthData{
		AccessToken: result.AccessToken,
		User:        dto.ToUserResponse(result.User),
	}, "User logged in successfully"))
}

// refresh godoc
// @Summary Refresh access token
// @Description Mints a new access token from the refresh token cookie.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.Response
// @Failure 401 {object} dto.Response "Invalid or expired refresh token"
// @Router /auth/refresh [post]
func (h *authHandler) refresh(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	refreshToken, _ := c.Cookie(h.cfg.RefreshTokenCookieName)

	accessToken, err := h.authService.Refresh(c.Request.Context(), refreshToken)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Invalid or expired refresh token", nil))
			return
		}
		logger.Error("Failed to refresh token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Failed to refresh token", nil))
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(dto.RefreshData{AccessToken: accessToken}, "Token refreshed successfully"))
}

// logout godoc
// @Summary Logout user
// @Description Revokes the refresh token from the cookie and clears the cookie. Always succeeds.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.Response
// @Security BearerAuth
// @Router /auth/logout [post]
func (h *authHandler) logout(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	refreshToken, _ := c.Cookie(h.cfg.RefreshTokenCookieName)

	if err := h.authService.Logout(c.Request.Context(), refreshToken); err != nil {
		// The session is over from the client's perspective either way;
		// log and report success.
		logger.Error("Failed to revoke refresh token on logout", slog.String("error", err.Error()))
	}

	h.clearRefreshCookie(c)
	c.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "User logged out successfully"))
}

// me godoc
// @Summary Get current user profile
// @Tags auth
// @Produce json
// @Success 200 {object} dto.Response
// @Failure 401 {object} dto.Response
// @Security BearerAuth
// @Router /auth/me [get]
func (h *authHandler) me(c *gin.Context) {
	user, ok := middleware.GetUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Unauthorized", nil))
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(dto.ToUserResponse(user), "User profile retrieved successfully"))
}

func (h *authHandler) setRefreshCookie(c *gin.Context, result *dto.AuthResult) {
	maxAge := int(h.cfg.RefreshTokenExpiryDuration.Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cfg.RefreshTokenCookieName, result.RefreshToken, maxAge, h.cfg.RefreshTokenCookiePath, "", h.cfg.IsProduction, true)
}

func (h *authHandler) clearRefreshCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cfg.RefreshTokenCookieName, "", -1, h.cfg.RefreshTokenCookiePath, "", h.cfg.IsProduction, true)
}

func clientInfo(c *gin.Context) domain.ClientInfo {
	return domain.ClientInfo{
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	}
}
