package http

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jiningying/property-chat-agent/config"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler, logger *zap.Logger) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(RequestLogger(logger))
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))
	if cfg.RateLimit.PerIP > 0 {
		router.Use(RateLimitMiddleware(cfg.RateLimit.PerIP))
	}

	router.GET("/health", handler.HealthCheck)

	v1 := router.Group("/api/v1")
	{
		v1.POST("/chat", handler.Chat)
		v1.GET("/properties", handler.ListProperties)

		recommendations := v1.Group("/recommendations")
		{
			recommendations.GET("/:userId", handler.Recommendations)
			recommendations.GET("/:userId/:propertyId/explain", handler.Explain)
		}

		users := v1.Group("/users")
		{
			users.GET("/:userId", handler.GetProfile)
			users.PUT("/:userId/preferences", handler.UpdatePreferences)
			users.POST("/:userId/saved/:propertyId", handler.SaveProperty)
		}
	}

	return router
}
