package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pageza/recipebox/backend/internal/middleware"
	"github.com/pageza/recipebox/backend/internal/service"
	"github.com/pageza/recipebox/backend/internal/types"
)

type AuthHandler struct {
	authService service.IAuthService
	logger      *zap.Logger
}

func NewAuthHandler(authService service.IAuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, logger: logger}
}

func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	{
		auth.POST("/signup", h.SignUp)
		auth.POST("/signin", h.SignIn)
		auth.POST("/signout", middleware.AuthMiddleware(h.authService), h.SignOut)
		auth.GET("/session", middleware.AuthMiddleware(h.authService), h.Session)
	}
}

func (h *AuthHandler) SignUp(c *gin.Context) {
	var req types.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "a valid email and password are required"})
		return
	}

	user, err := h.authService.SignUp(c.Request.Context(), req.Email, req.Password)
	switch {
	case errors.Is(err, service.ErrWeakPassword):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case errors.Is(err, service.ErrUserExists):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	case err != nil:
		h.logger.Error("sign up failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create account"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": user})
}

func (h *AuthHandler) SignIn(c *gin.Context) {
	var req types.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "a valid email and password are required"})
		return
	}

	session, err := h.authService.SignIn(c.Request.Context(), req.Email, req.Password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		h.logger.Error("sign in failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to sign in"})
		return
	}

	c.JSON(http.StatusOK, types.SessionResponse{Token: session.Token, ExpiresAt: session.ExpiresAt})
}

func (h *AuthHandler) SignOut(c *gin.Context) {
	sessionID, err := uuid.Parse(c.GetString(middleware.ContextSessionID))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid session"})
		return
	}

	if err := h.authService.SignOut(c.Request.Context(), sessionID); err != nil {
		h.logger.Error("sign out failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to sign out"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "signed out"})
}

func (h *AuthHandler) Session(c *gin.Context) {
	session, err := h.authService.CurrentSession(c.Request.Context(), c.GetString(middleware.ContextToken))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": service.ErrNoSession.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"session": session,
		"email":   c.GetString(middleware.ContextEmail),
	})
}
