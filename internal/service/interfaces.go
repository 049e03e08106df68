package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/pageza/recipebox/backend/internal/models"
	"github.com/pageza/recipebox/backend/internal/types"
)

// IAuthService defines the interface for authentication operations
type IAuthService interface {
	SignUp(ctx context.Context, email, password string) (*models.User, error)
	SignIn(ctx context.Context, email, password string) (*Session, error)
	SignOut(ctx context.Context, sessionID uuid.UUID) error
	CurrentSession(ctx context.Context, token string) (*models.Session, error)
	ValidateToken(ctx context.Context, token string) (*types.TokenClaims, error)
}

// IWorkspace hands out the per-user recipe and favorites stores
type IWorkspace interface {
	ForUser(userID string) (*RecipeStore, *FavoritesStore)
}

var (
	_ IAuthService = (*AuthService)(nil)
	_ IWorkspace   = (*Workspace)(nil)
)
