package api

import (
	"github.com/gin-gonic/gin"

	apperrors "github.com/shaun/portfolio-api/internal/errors"
)

// SetupRoutes sets up the API routes
func SetupRoutes(handler *Handler) *gin.Engine {
	router := gin.New()

	// Middleware
	router.Use(Recovery())
	router.Use(CORS(handler.cfg.AllowedOrigin))
	router.Use(gin.Logger())

	// A GET against the contact route must answer 405, not 404
	router.HandleMethodNotAllowed = true
	router.NoMethod(func(c *gin.Context) {
		respondContactError(c, apperrors.NewMethodNotAllowedError())
	})

	// Health check
	router.GET("/health", handler.HealthCheck)

	api := router.Group("/api")
	{
		api.POST("/contact", handler.Contact)
		api.GET("/github/repos", handler.Repos)
	}

	return router
}
