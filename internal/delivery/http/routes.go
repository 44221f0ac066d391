package http

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/shopscout/backend/config"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler, log *zap.Logger) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	if log == nil {
		log = zap.NewNop()
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(RequestLogger(log))
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))

	// Health check endpoint
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		shopping := v1.Group("/shopping")
		shopping.Use(RateLimitMiddleware(cfg.RateLimit.PerMinute, cfg.RateLimit.Burst))
		{
			shopping.POST("/search", handler.Search)
			shopping.GET("/suggestions", handler.Suggestions)
			shopping.GET("/categories", handler.Categories)
			shopping.GET("/brands", handler.Brands)
		}
	}

	return router
}
