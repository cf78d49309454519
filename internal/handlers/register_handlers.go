package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/arp_backend/cmd/docs"
	portssvc "github.com/SscSPs/arp_backend/internal/core/ports/services"
	"github.com/SscSPs/arp_backend/internal/middleware"
	"github.com/SscSPs/arp_backend/internal/platform/config"
	"github.com/SscSPs/arp_backend/internal/utils"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	posthogClient *utils.PosthogClientWrapper,
) error {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Disposition", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	// Setup API v1 routes with Auth Middleware, passing service interfaces
	if err := setupAPIV1Routes(r, cfg, services, posthogClient); err != nil {
		return err
	}

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
	return nil
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
	posthogClient *utils.PosthogClientWrapper,
) error {
	uploadLimiter, err := middleware.NewUploadLimiter(cfg.RateLimit)
	if err != nil {
		slog.Error("Invalid upload rate limit", slog.String("rate", cfg.RateLimit), slog.String("error", err.Error()))
		return err
	}
	uploads := UploadOptions{
		MaxUploadBytes: cfg.MaxUploadBytes(),
		Middleware:     []gin.HandlerFunc{middleware.RateLimit(uploadLimiter)},
	}

	// Apply AuthMiddleware to the entire v1 group
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret), middleware.PosthogMiddleware(posthogClient))
	v1.GET("/", getHome)

	// Delegate route registration to specific handlers, passing required services
	RegisterFECAnalysisRoutes(v1, service.FECAnalysis, uploads)
	RegisterPayrollRoutes(v1, service.Payroll, uploads)
	return nil
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	// Swagger setup
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
