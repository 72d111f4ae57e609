package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"storefront/internal/domain/identity"
	"storefront/internal/handler/httperr"
	"storefront/internal/pkg/cookie"
	"storefront/internal/pkg/errs"
	"storefront/internal/usecase"

	"github.com/gin-gonic/gin"
)

var (
	ErrTokenRequired      = errs.New("access token required")
	ErrInsufficientRights = errs.New("insufficient permissions")
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const ctxIdentityKey = "identity"

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, ErrTokenRequired, "Access token required", nil)
			return
		}

		id, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
			return
		}

		c.Set(ctxIdentityKey, id)
		c.Set("jwt_claims", map[string]any{
			"user_id": id.Subject,
			"role":    id.Role.String(),
		})
		c.Next()
	}
}

// RequireAdmin must run after RequireAuth.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := GetIdentity(c)
		if !ok {
			httperr.AbortWithError(c, http.StatusUnauthorized, ErrTokenRequired, "Access token required", nil)
			return
		}
		if !id.IsAdmin() {
			httperr.AbortWithError(c, http.StatusForbidden, ErrInsufficientRights, "Insufficient permissions", nil)
			return
		}
		c.Next()
	}
}

func GetIdentity(c *gin.Context) (identity.Identity, bool) {
	v, exists := c.Get(ctxIdentityKey)
	if !exists {
		return identity.Identity{}, false
	}
	id, ok := v.(identity.Identity)
	return id, ok
}

// bearerToken prefers the cookie set by the storefront frontend.
func bearerToken(c *gin.Context) string {
	if token := cookie.GetIDToken(c); token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}
