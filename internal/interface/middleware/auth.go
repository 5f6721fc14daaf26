package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/morechaitanya606/ucia/internal/domain/entity"
	"github.com/morechaitanya606/ucia/pkg/helpers"
	"github.com/morechaitanya606/ucia/pkg/response"
)

const (
	CtxUserIDKey   = "userID"
	CtxUserRoleKey = "userRole"
)

// bearerToken extracts the token from the Authorization header.
func bearerToken(c *gin.Context) string {
	auth := c.GetHeader("Authorization")
	if auth == "" {
		return ""
	}
	parts := strings.Fields(auth)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}

// Auth validates the bearer token and injects the resolved user id and role
// into the Gin context. Verification is stateless: signature plus expiry,
// no store lookup, no side effects.
func Auth(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			response.Error[any](c, http.StatusUnauthorized, "missing bearer token", nil)
			c.Abort()
			return
		}
		claims, err := jwt.ParseToken(token)
		if err != nil {
			response.Error[any](c, http.StatusUnauthorized, "invalid or expired token", nil)
			c.Abort()
			return
		}
		c.Set(CtxUserIDKey, claims.UserID)
		c.Set(CtxUserRoleKey, claims.Role)
		c.Next()
	}
}

// RequireRoles gates the downstream handler behind an explicit allow-list.
// The resolved role must be a member of the set; anything else is forbidden,
// including roles added later that no gate has been updated to admit.
func RequireRoles(allowed ...entity.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := entity.ParseRole(c.GetString(CtxUserRoleKey))
		if !role.In(allowed...) {
			response.Error[any](c, http.StatusForbidden, "insufficient role", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}
