package routes

import (
	"github.com/meriadock/meriadock-api/internal/api/middleware"
	"github.com/meriadock/meriadock-api/internal/config"
	"github.com/meriadock/meriadock-api/internal/logging"

	"github.com/gin-gonic/gin"
)

// Setup configures all route groups
func Setup(router *gin.Engine, h *Handlers) {
	logger := logging.GetLogger()

	SetupHealthRoutes(router, h.Health)

	api := router.Group("/api")
	SetupFormRoutes(api, h)

	logger.Info("All routes have been set up successfully")
}

// SetupGlobalMiddleware configures middleware that applies to all routes
func SetupGlobalMiddleware(router *gin.Engine, cfg *config.Config, logger *logging.Logger) {
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.CORS(cfg))
	router.Use(middleware.SecurityHeaders())
}
