package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"

	appauth "github.com/sysgesco/backend/internal/app/auth"
	"github.com/sysgesco/backend/internal/app/models"
	"github.com/sysgesco/backend/internal/pkg/apperrors"
	"github.com/sysgesco/backend/internal/pkg/auth"
)

// Context keys set by JWTAuth.
const (
	ContextUserID   = "userID"
	ContextUsername = "username"
	ContextRole     = "role"
)

// AuthMiddleware gates routes behind token validation and the capability
// table.
type AuthMiddleware struct {
	jwtService *auth.JWTService
}

// NewAuthMiddleware creates a new auth middleware.
func NewAuthMiddleware(jwtService *auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{jwtService: jwtService}
}

// JWTAuth validates the bearer token and stores the caller's identity on the
// request context.
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := auth.ExtractBearerToken(c.GetHeader("Authorization"))
		if err != nil {
			HandleAPIError(c, err)
			c.Abort()
			return
		}

		claims, err := m.jwtService.ValidateToken(token)
		if err != nil {
			HandleAPIError(c, err)
			c.Abort()
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextUsername, claims.Username)
		c.Set(ContextRole, claims.Role)
		c.Next()
	}
}

// RequireCapability aborts unless the caller's role holds the capability.
// The capability table is static, so the check never touches storage.
func (m *AuthMiddleware) RequireCapability(domain appauth.Domain, action appauth.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := CallerRole(c)
		if !ok || !appauth.Can(role, domain, action) {
			HandleAPIError(c, apperrors.NewForbiddenError(
				fmt.Sprintf("role lacks %s access to %s", action, domain)))
			c.Abort()
			return
		}
		c.Next()
	}
}

// CallerRole reads the authenticated caller's role from the request context.
func CallerRole(c *gin.Context) (models.Role, bool) {
	value, exists := c.Get(ContextRole)
	if !exists {
		return "", false
	}
	role, ok := value.(models.Role)
	return role, ok
}

// CallerID reads the authenticated caller's user ID from the request context.
func CallerID(c *gin.Context) (int64, bool) {
	value, exists := c.Get(ContextUserID)
	if !exists {
		return 0, false
	}
	id, ok := value.(int64)
	return id, ok
}
