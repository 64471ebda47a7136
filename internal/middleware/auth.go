package middleware

import (
	"net/http"
	"strings"

	"coinadmin/config"
	"coinadmin/internal/auth"

	"github.com/gin-gonic/gin"
)

// CookieName is the HTTP-only cookie carrying the admin session token.
const CookieName = "admin_token"

// AdminRequired validates the session token from the admin_token cookie
// (or an Authorization: Bearer header) and sets AdminID and Username in
// the request context.
func AdminRequired(cfg *config.JWTConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(CookieName)
		if err != nil || token == "" {
			header := c.GetHeader("Authorization")
			parts := strings.SplitN(header, " ", 2)
			if len(parts) == 2 && parts[0] == "Bearer" {
				token = parts[1]
			}
		}
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		claims, err := auth.ParseToken(cfg, token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}
		c.Set("admin_id", claims.AdminID)
		c.Set("username", claims.Username)
		c.Next()
	}
}

// GetAdminID returns the authenticated admin id from context (must be used
// after AdminRequired).
func GetAdminID(c *gin.Context) string {
	v, _ := c.Get("admin_id")
	if v == nil {
		return ""
	}
	return v.(string)
}
