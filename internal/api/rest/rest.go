package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/coastalcarbon/cc-registry/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Project decision (requires authentication)
		v1.POST("/projects/:id/decision", middleware.Auth(authCfg), handler.DecideProject)

		// Project status polling (public read access)
		v1.GET("/projects/:id", handler.GetProject)

		// Ledger mirror of an on-chain credit transfer (requires authentication)
		v1.POST("/credits/transfer", middleware.Auth(authCfg), handler.TransferCredits)

		// Seller balance (public read access)
		v1.GET("/sellers/:kind/:id/balance", handler.GetSellerBalance)
	}
}
