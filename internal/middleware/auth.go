package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/prodcat/catalog_backend_app/internal/apperrors"
	portssvc "github.com/prodcat/catalog_backend_app/internal/core/ports/services"
	"github.com/prodcat/catalog_backend_app/internal/dto"
)

// AuthMiddleware creates a Gin middleware handler that validates the bearer
// access token, resolves the user behind its subject claim and attaches the
// user to the request context. Validation happens on every request; nothing
// is cached across requests. Inactive users are rejected even if their
// token is cryptographically valid.
func AuthMiddleware(tokenSvc portssvc.TokenSvcFacade, userSvc portssvc.UserSvcFacade) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Warn("Authorization header missing")
			abortUnauthorized(c, "Access token not provided")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			logger.Warn("Authorization header format invalid")
			abortUnauthorized(c, "Authorization header format must be Bearer {token}")
			return
		}

		claims, err := tokenSvc.VerifyAccessToken(c.Request.Context(), parts[1])
		if err != nil {
			msg := "Invalid or expired token"
			if errors.Is(err, jwt.ErrTokenExpired) {
				msg = "Token has expired"
			}
			logger.Warn("Invalid access token", slog.String("error", err.Error()))
			abortUnauthorized(c, msg)
			return
		}

		user, err := userSvc.GetActiveUserByID(c.Request.Context(), claims.Subject)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				logger.Warn("Token subject is not an active user", slog.String("user_id", claims.Subject))
			} else {
				logger.Error("Failed to resolve token subject", slog.String("error", err.Error()))
			}
			abortUnauthorized(c, "Invalid or expired token")
			return
		}

		ctx := context.WithValue(c.Request.Context(), userIDKey, user.UserID)
		ctx = context.WithValue(ctx, userCtxKey, user)

		enrichedLogger := logger.With(slog.String("user_id", user.UserID))
		ctx = context.WithValue(ctx, loggerCtxKey, enrichedLogger)

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(message, nil))
}
