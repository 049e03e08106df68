package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/pageza/recipebox/backend/internal/models"
	"github.com/pageza/recipebox/backend/internal/types"
)

// SessionTTL is how long a signed-in session lasts
const SessionTTL = 24 * time.Hour

// MinPasswordLength is the shortest password SignUp accepts
const MinPasswordLength = 6

var (
	ErrUserExists         = errors.New("user already exists")
	ErrWeakPassword       = fmt.Errorf("password must be at least %d characters", MinPasswordLength)
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNoSession          = errors.New("no active session")
)

// Session is a signed-in session together with its bearer token
type Session struct {
	models.Session
	Token string `json:"token"`
}

type AuthService struct {
	db        *gorm.DB
	jwtSecret string
	logger    *zap.Logger
	now       func() time.Time
}

func NewAuthService(db *gorm.DB, jwtSecret string, logger *zap.Logger) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{
		db:        db,
		jwtSecret: jwtSecret,
		logger:    logger,
		now:       time.Now,
	}
}

// SignUp creates an account. The caller signs in separately.
func (s *AuthService) SignUp(ctx context.Context, email, password string) (*models.User, error) {
	email = normalizeEmail(email)
	if len(password) < MinPasswordLength {
		return nil, ErrWeakPassword
	}

	// Check if user already exists
	var existing models.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, ErrUserExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		Email:        email,
		PasswordHash: string(hashedPassword),
	}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("user signed up", zap.String("user_id", user.ID.String()))
	return &user, nil
}

// SignIn checks the credentials and opens a new session
func (s *AuthService) SignIn(ctx context.Context, email, password string) (*Session, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", normalizeEmail(email)).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	now := s.now()
	session := models.Session{
		UserID:    user.ID,
		CreatedAt: now,
		ExpiresAt: now.Add(SessionTTL),
	}
	if err := s.db.WithContext(ctx).Create(&session).Error; err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	token, err := s.generateToken(&user, &session)
	if err != nil {
		return nil, err
	}

	s.logger.Info("user signed in", zap.String("user_id", user.ID.String()), zap.String("session_id", session.ID.String()))
	return &Session{Session: session, Token: token}, nil
}

// SignOut revokes the session. Signing out twice is not an error.
func (s *AuthService) SignOut(ctx context.Context, sessionID uuid.UUID) error {
	now := s.now()
	err := s.db.WithContext(ctx).
		Model(&models.Session{}).
		Where("id = ? AND revoked_at IS NULL", sessionID).
		Update("revoked_at", &now).Error
	if err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}
	return nil
}

// CurrentSession returns the live session behind token
func (s *AuthService) CurrentSession(ctx context.Context, token string) (*models.Session, error) {
	claims, err := s.ValidateToken(ctx, token)
	if err != nil {
		return nil, ErrNoSession
	}
	return s.activeSession(ctx, claims)
}

// ValidateToken checks the token signature and expiry and that its session
// is still active. ctx bounds the session lookup.
func (s *AuthService) ValidateToken(ctx context.Context, tokenString string) (*types.TokenClaims, error) {
	claims := &types.TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.jwtSecret), nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	if _, err := s.activeSession(ctx, claims); err != nil {
		return nil, err
	}
	return claims, nil
}

func (s *AuthService) activeSession(ctx context.Context, claims *types.TokenClaims) (*models.Session, error) {
	id, err := claims.SessionID()
	if err != nil {
		return nil, ErrNoSession
	}

	var session models.Session
	if err := s.db.WithContext(ctx).First(&session, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoSession
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if session.UserID != claims.UserID || !session.Active(s.now()) {
		return nil, ErrNoSession
	}
	return &session, nil
}

func (s *AuthService) generateToken(user *models.User, session *models.Session) (string, error) {
	claims := &types.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        session.ID.String(),
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(session.CreatedAt),
			ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
		},
		UserID: user.ID,
		Email:  user.Email,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
