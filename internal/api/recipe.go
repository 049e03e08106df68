package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pageza/recipebox/backend/internal/middleware"
	"github.com/pageza/recipebox/backend/internal/model"
	"github.com/pageza/recipebox/backend/internal/service"
	"github.com/pageza/recipebox/backend/internal/types"
)

type RecipeHandler struct {
	authService service.IAuthService
	workspace   service.IWorkspace
	limits      RateLimits
	logger      *zap.Logger
}

func NewRecipeHandler(authService service.IAuthService, workspace service.IWorkspace, limits RateLimits, logger *zap.Logger) *RecipeHandler {
	return &RecipeHandler{
		authService: authService,
		workspace:   workspace,
		limits:      limits,
		logger:      logger,
	}
}

func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	create := []gin.HandlerFunc{h.CreateRecipe}
	if h.limits.Creation != nil {
		create = append([]gin.HandlerFunc{h.limits.Creation.RateLimitMiddleware()}, create...)
	}
	update := []gin.HandlerFunc{h.UpdateRecipe}
	remove := []gin.HandlerFunc{h.DeleteRecipe}
	if h.limits.Modification != nil {
		update = append([]gin.HandlerFunc{h.limits.Modification.PerRecipeRateLimitMiddleware()}, update...)
		remove = append([]gin.HandlerFunc{h.limits.Modification.PerRecipeRateLimitMiddleware()}, remove...)
	}

	recipes := router.Group("/recipes")
	recipes.Use(middleware.AuthMiddleware(h.authService))
	{
		recipes.GET("", h.ListRecipes)
		recipes.GET("/categories", h.ListCategories)
		recipes.GET("/:slug", h.GetRecipe)
		recipes.POST("", create...)
		recipes.PUT("/:slug", update...)
		recipes.DELETE("/:slug", remove...)
	}
}

func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	query := service.Query{
		Search:     c.Query("q"),
		Category:   c.Query("category"),
		Difficulty: model.Difficulty(c.Query("difficulty")),
		Sort:       c.Query("sort"),
	}
	if !query.Difficulty.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": service.ErrInvalidDifficulty.Error()})
		return
	}
	if !service.ValidSort(query.Sort) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "sort must be one of name, rating, date, cookTime"})
		return
	}

	recipes, _ := h.workspace.ForUser(userID)
	results := recipes.Search(c.Request.Context(), query)
	if results == nil {
		results = []model.Recipe{}
	}

	c.JSON(http.StatusOK, gin.H{
		"recipes": results,
		"count":   len(results),
	})
}

func (h *RecipeHandler) ListCategories(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	recipes, _ := h.workspace.ForUser(userID)
	categories := recipes.Categories(c.Request.Context())
	if categories == nil {
		categories = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	multiplier, err := service.ParseMultiplier(c.Query("multiplier"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipes, favorites := h.workspace.ForUser(userID)
	recipe, err := recipes.FindBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	recipe.Ingredients = service.ScaleIngredients(recipe.Ingredients, multiplier)

	c.JSON(http.StatusOK, gin.H{
		"recipe":     recipe,
		"multiplier": multiplier,
		"builtin":    recipes.IsBuiltin(recipe.Slug),
		"favorite":   favorites.IsFavorite(c.Request.Context(), recipe.Slug),
	})
}

func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req types.CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	draft := req.Draft()
	if draft.Author == "" {
		draft.Author = c.GetString(middleware.ContextEmail)
	}

	recipes, _ := h.workspace.ForUser(userID)
	recipe, err := recipes.Create(c.Request.Context(), draft)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"recipe": recipe})
}

func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req types.UpdateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipes, _ := h.workspace.ForUser(userID)
	recipe, err := recipes.Update(c.Request.Context(), c.Param("slug"), req.Patch())
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"recipe": recipe})
}

func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	recipes, _ := h.workspace.ForUser(userID)
	deleted, err := recipes.DeleteBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}

// writeError maps recipe store errors onto HTTP statuses
func (h *RecipeHandler) writeError(c *gin.Context, err error) {
	var ve *service.ValidationError
	switch {
	case errors.Is(err, service.ErrDuplicateSlug):
		c.JSON(http.StatusConflict, gin.H{"error": service.ErrDuplicateSlug.Error(), "field": "title"})
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Err.Error(), "field": ve.Field})
	case errors.Is(err, service.ErrBuiltinRecipe):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrRecipeNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
	default:
		h.logger.Error("recipe operation failed", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save recipe"})
	}
}
