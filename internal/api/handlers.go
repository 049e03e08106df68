package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pageza/recipebox/backend/internal/middleware"
	"github.com/pageza/recipebox/backend/internal/service"
)

// HealthCheck returns the health status of the API
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "Recipebox API is running",
		"version": "v1.0.0",
	})
}

// RateLimits holds the optional limiters for recipe writes. A nil limiter
// disables that limit.
type RateLimits struct {
	Creation     *middleware.RateLimiter
	Modification *middleware.RateLimiter
}

// RegisterRoutes registers all API routes
func RegisterRoutes(router *gin.Engine, authService service.IAuthService, workspace service.IWorkspace, limits RateLimits, logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}

	// Health check endpoint (no auth required)
	router.GET("/health", HealthCheck)
	router.GET("/api/health", HealthCheck)

	authHandler := NewAuthHandler(authService, logger)
	recipeHandler := NewRecipeHandler(authService, workspace, limits, logger)
	favoriteHandler := NewFavoriteHandler(authService, workspace, logger)
	homeHandler := NewHomeHandler(authService, workspace)

	v1 := router.Group("/api/v1")
	authHandler.RegisterRoutes(v1)
	recipeHandler.RegisterRoutes(v1)
	favoriteHandler.RegisterRoutes(v1)
	homeHandler.RegisterRoutes(v1)
}

// currentUserID returns the authenticated user's ID as set by AuthMiddleware
func currentUserID(c *gin.Context) (string, bool) {
	userID, exists := c.Get(middleware.ContextUserID)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return "", false
	}
	return fmt.Sprintf("%v", userID), true
}
