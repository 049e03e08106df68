// Package mocks holds testify mocks of the service interfaces.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/pageza/recipebox/backend/internal/models"
	"github.com/pageza/recipebox/backend/internal/service"
	"github.com/pageza/recipebox/backend/internal/types"
)

// MockAuthService is a mock implementation of service.IAuthService
type MockAuthService struct {
	mock.Mock
}

var _ service.IAuthService = (*MockAuthService)(nil)

func (m *MockAuthService) ValidateToken(ctx context.Context, token string) (*types.TokenClaims, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.TokenClaims), args.Error(1)
}

func (m *MockAuthService) SignUp(ctx context.Context, email, password string) (*models.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthService) SignIn(ctx context.Context, email, password string) (*service.Session, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Session), args.Error(1)
}

func (m *MockAuthService) SignOut(ctx context.Context, sessionID uuid.UUID) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func (m *MockAuthService) CurrentSession(ctx context.Context, token string) (*models.Session, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}
