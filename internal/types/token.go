package types

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenClaims represents the claims in a JWT token. RegisteredClaims.ID
// holds the session ID.
type TokenClaims struct {
	jwt.RegisteredClaims
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
}

// SessionID returns the session the token was issued for
func (c *TokenClaims) SessionID() (uuid.UUID, error) {
	return uuid.Parse(c.ID)
}
