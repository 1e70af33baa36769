package middleware

import (
	"slices"
	"strings"

	"million/internal/delivery/api/response"
	"million/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const (
	// KeyUserID is the echo.Context key holding the authenticated user's id.
	KeyUserID = "user_id"

	// KeyClaims is the echo.Context key holding the full token claims.
	KeyClaims = "claims"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate is the core middleware function that validates the JWT access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "UNAUTHORIZED", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid or expired token")
		}
		if claims.UserID == "" {
			return response.Unauthorized(c, "UNAUTHORIZED", "User ID missing from token")
		}

		// Store identity in echo.Context for downstream handlers
		c.Set(KeyUserID, claims.UserID)
		c.Set(KeyClaims, claims)

		return next(c)
	}
}

// RequireRole returns a middleware that checks the authenticated user's role.
// It must run after Authenticate.
func (m *AuthMiddleware) RequireRole(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims := GetClaims(c)
			if claims == nil {
				return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
			}

			if !slices.Contains(roles, claims.Role) {
				return response.Forbidden(c, "FORBIDDEN", "Insufficient role")
			}

			return next(c)
		}
	}
}

// GetUserID extracts the authenticated user's id from echo.Context.
// Returns empty string when the request is unauthenticated.
func GetUserID(c echo.Context) string {
	if id, ok := c.Get(KeyUserID).(string); ok {
		return id
	}

	return ""
}

// GetClaims extracts the full token claims from echo.Context.
func GetClaims(c echo.Context) *service.Claims {
	if claims, ok := c.Get(KeyClaims).(*service.Claims); ok {
		return claims
	}

	return nil
}
