package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims embedded in issued access tokens.
type Claims struct {
	UserID string `json:"uid"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating identity
// tokens. Signature and expiry math belong to the token library; the domain
// only depends on this contract.
type TokenService interface {
	// GenerateToken creates a signed access token embedding the subject id,
	// display name, role and email, and returns it with its expiry time.
	GenerateToken(userID, name, role, email string) (token string, expiresAt time.Time, err error)

	// ValidateToken checks the validity of a token string and returns its claims.
	ValidateToken(tokenString string) (*Claims, error)
}
