package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/recipebox/backend/internal/middleware"
	"github.com/pageza/recipebox/backend/internal/model"
	"github.com/pageza/recipebox/backend/internal/service"
)

// featuredCount is how many top rated recipes the homepage shows
const featuredCount = 3

// HomeHandler serves the signed-in landing page
type HomeHandler struct {
	authService service.IAuthService
	workspace   service.IWorkspace
}

func NewHomeHandler(authService service.IAuthService, workspace service.IWorkspace) *HomeHandler {
	return &HomeHandler{authService: authService, workspace: workspace}
}

func (h *HomeHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/home", middleware.AuthMiddleware(h.authService), h.Home)
}

func (h *HomeHandler) Home(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	recipes, favorites := h.workspace.ForUser(userID)
	featured := recipes.Featured(c.Request.Context(), featuredCount)
	if featured == nil {
		featured = []model.Recipe{}
	}
	_, favoriteRecipes := resolveFavorites(c, recipes, favorites)

	c.JSON(http.StatusOK, gin.H{
		"email":      c.GetString(middleware.ContextEmail),
		"featured":   featured,
		"favorites":  favoriteRecipes,
		"categories": recipes.Categories(c.Request.Context()),
	})
}
