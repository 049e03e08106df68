package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/pageza/recipebox/backend/internal/models"
	"github.com/pageza/recipebox/backend/internal/types"
)

const testSecret = "test-secret"

func setupAuth(t *testing.T) *AuthService {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Session{}))
	return NewAuthService(db, testSecret, nil)
}

func TestSignUp(t *testing.T) {
	ctx := context.Background()
	auth := setupAuth(t)

	user, err := auth.SignUp(ctx, " Cook@Example.com ", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "cook@example.com", user.Email)
	assert.NotEqual(t, "secret1", user.PasswordHash)

	_, err = auth.SignUp(ctx, "cook@example.com", "another1")
	assert.ErrorIs(t, err, ErrUserExists)

	_, err = auth.SignUp(ctx, "short@example.com", "12345")
	assert.ErrorIs(t, err, ErrWeakPassword)
}

func TestSignInAndValidate(t *testing.T) {
	ctx := context.Background()
	auth := setupAuth(t)
	user, err := auth.SignUp(ctx, "cook@example.com", "secret1")
	require.NoError(t, err)

	_, err = auth.SignIn(ctx, "cook@example.com", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = auth.SignIn(ctx, "nobody@example.com", "secret1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	session, err := auth.SignIn(ctx, "COOK@example.com", "secret1")
	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)
	assert.Equal(t, user.ID, session.UserID)
	assert.WithinDuration(t, time.Now().Add(SessionTTL), session.ExpiresAt, time.Minute)

	claims, err := auth.ValidateToken(ctx, session.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, session.ID.String(), claims.ID)

	current, err := auth.CurrentSession(ctx, session.Token)
	require.NoError(t, err)
	assert.Equal(t, session.ID, current.ID)
}

func TestSignOutRevokesSession(t *testing.T) {
	ctx := context.Background()
	auth := setupAuth(t)
	_, err := auth.SignUp(ctx, "cook@example.com", "secret1")
	require.NoError(t, err)
	session, err := auth.SignIn(ctx, "cook@example.com", "secret1")
	require.NoError(t, err)

	require.NoError(t, auth.SignOut(ctx, session.ID))
	require.NoError(t, auth.SignOut(ctx, session.ID))

	_, err = auth.ValidateToken(ctx, session.Token)
	assert.ErrorIs(t, err, ErrNoSession)
	_, err = auth.CurrentSession(ctx, session.Token)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestExpiredSessionRejected(t *testing.T) {
	ctx := context.Background()
	auth := setupAuth(t)
	_, err := auth.SignUp(ctx, "cook@example.com", "secret1")
	require.NoError(t, err)
	session, err := auth.SignIn(ctx, "cook@example.com", "secret1")
	require.NoError(t, err)

	auth.now = func() time.Time { return time.Now().Add(SessionTTL + time.Hour) }

	_, err = auth.ValidateToken(ctx, session.Token)
	assert.Error(t, err)
	_, err = auth.CurrentSession(ctx, session.Token)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestValidateTokenRejectsForeignTokens(t *testing.T) {
	ctx := context.Background()
	auth := setupAuth(t)

	_, err := auth.ValidateToken(ctx, "not-a-token")
	assert.Error(t, err)

	claims := &types.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        "00000000-0000-0000-0000-000000000001",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("other-secret"))
	require.NoError(t, err)
	_, err = auth.ValidateToken(ctx, forged)
	assert.Error(t, err)

	unknown, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	_, err = auth.ValidateToken(ctx, unknown)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestValidateTokenHonoursContext(t *testing.T) {
	ctx := context.Background()
	auth := setupAuth(t)
	_, err := auth.SignUp(ctx, "cook@example.com", "secret1")
	require.NoError(t, err)
	session, err := auth.SignIn(ctx, "cook@example.com", "secret1")
	require.NoError(t, err)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = auth.ValidateToken(cancelled, session.Token)
	assert.ErrorIs(t, err, context.Canceled)

	_, err = auth.ValidateToken(ctx, session.Token)
	assert.NoError(t, err)
}
