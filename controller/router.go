package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	serviceName    = "Companion API"
	serviceVersion = "1.0.0"
)

// RouterConfig carries the HTTP settings the router needs.
type RouterConfig struct {
	AllowOrigin string
}

// NewRouter wires middleware, the health check and the API routes.
func NewRouter(c *CompanionController, cfg RouterConfig, logger *zap.Logger) *gin.Engine {
	registerValidators()

	if cfg.AllowOrigin == "" {
		cfg.AllowOrigin = "*"
	}

	router := gin.New()
	router.Use(RequestID(), Logger(logger), Recovery(logger), CORS(cfg.AllowOrigin))

	router.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": serviceName,
			"version": serviceVersion,
		})
	})

	api := router.Group("/api")
	{
		api.POST("/login", c.Login)             // Accept a username and start a client-side session
		api.POST("/store-info", c.StoreInfo)    // Store a note for a user
		api.GET("/store-info", c.GetStoredInfo) // List a user's notes
		api.POST("/chatbot", c.Chat)            // Get a reply to a chat message
	}

	router.NoRoute(func(ctx *gin.Context) {
		respondError(ctx, http.StatusNotFound, "Not found")
	})

	return router
}
