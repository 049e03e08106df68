package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pageza/recipebox/backend/internal/middleware"
	"github.com/pageza/recipebox/backend/internal/model"
	"github.com/pageza/recipebox/backend/internal/service"
)

type FavoriteHandler struct {
	authService service.IAuthService
	workspace   service.IWorkspace
	logger      *zap.Logger
}

func NewFavoriteHandler(authService service.IAuthService, workspace service.IWorkspace, logger *zap.Logger) *FavoriteHandler {
	return &FavoriteHandler{authService: authService, workspace: workspace, logger: logger}
}

func (h *FavoriteHandler) RegisterRoutes(router *gin.RouterGroup) {
	authed := router.Group("")
	authed.Use(middleware.AuthMiddleware(h.authService))
	{
		authed.GET("/favorites", h.ListFavorites)
		authed.GET("/recipes/:slug/favorite", h.GetFavorite)
		authed.POST("/recipes/:slug/favorite", h.ToggleFavorite)
	}
}

// ListFavorites returns the favorite slugs and the recipes they still
// resolve to. Slugs of recipes that no longer exist are listed but not
// resolved.
func (h *FavoriteHandler) ListFavorites(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	recipes, favorites := h.workspace.ForUser(userID)
	slugs, resolved := resolveFavorites(c, recipes, favorites)
	c.JSON(http.StatusOK, gin.H{
		"favorites": slugs,
		"recipes":   resolved,
	})
}

func (h *FavoriteHandler) GetFavorite(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	_, favorites := h.workspace.ForUser(userID)
	slug := c.Param("slug")
	c.JSON(http.StatusOK, gin.H{
		"slug":     slug,
		"favorite": favorites.IsFavorite(c.Request.Context(), slug),
	})
}

func (h *FavoriteHandler) ToggleFavorite(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	_, favorites := h.workspace.ForUser(userID)
	slug := c.Param("slug")
	favorite, err := favorites.Toggle(c.Request.Context(), slug)
	if err != nil {
		h.logger.Error("failed to toggle favorite", zap.String("slug", slug), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update favorites"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"slug":     slug,
		"favorite": favorite,
	})
}

func resolveFavorites(c *gin.Context, recipes *service.RecipeStore, favorites *service.FavoritesStore) ([]string, []model.Recipe) {
	ctx := c.Request.Context()
	slugs := favorites.List(ctx)
	resolved := make([]model.Recipe, 0, len(slugs))
	for _, slug := range slugs {
		recipe, err := recipes.FindBySlug(ctx, slug)
		if err != nil {
			continue
		}
		resolved = append(resolved, *recipe)
	}
	if slugs == nil {
		slugs = []string{}
	}
	return slugs, resolved
}
