package auth

import (
	"context"
	"net/http"
	"strings"

	apperrors "dad-circles-backend/internal/errors"
	"dad-circles-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

const claimsKey = "admin_claims"

// TokenValidator is the part of TokenService the middleware needs
type TokenValidator interface {
	Validate(tokenString string) (*AdminClaims, error)
}

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	tokens TokenValidator
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(tokens TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// RequireAdmin validates the bearer token and requires the admin role
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrMissingToken.Error()})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			return
		}

		claims, err := m.tokens.Validate(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token", "details": err.Error()})
			return
		}
		if claims.Role != RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": apperrors.ErrAdminRequired.Error()})
			return
		}

		c.Set(claimsKey, claims)
		ctx := context.WithValue(c.Request.Context(), logger.AdminKey, claims.Email)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// GetAdminClaims extracts the validated claims set by RequireAdmin
func GetAdminClaims(c *gin.Context) (*AdminClaims, bool) {
	claims, exists := c.Get(claimsKey)
	if !exists {
		return nil, false
	}
	adminClaims, ok := claims.(*AdminClaims)
	return adminClaims, ok
}
