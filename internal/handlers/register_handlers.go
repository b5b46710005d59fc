package handlers

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/prodcat/catalog_backend_app/cmd/docs"
	portssvc "github.com/prodcat/catalog_backend_app/internal/core/ports/services"
	"github.com/prodcat/catalog_backend_app/internal/middleware"
	"github.com/prodcat/catalog_backend_app/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Public routes: register/login/refresh work without a bearer token
	public := r.Group("/api/v1")
	registerPublicAuthRoutes(public, cfg, services.Auth)

	// Everything else sits behind the request authorizer
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(services.Token, services.User))
	registerProtectedAuthRoutes(v1, cfg, services.Auth)
	registerUserRoutes(v1, services.User)
	registerProductRoutes(v1, services.Product)

	// Swagger routes (conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
