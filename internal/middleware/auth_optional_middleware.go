package middleware

import (
	"github.com/gin-gonic/gin"
)

// OptionalAuthMiddleware injects session claims when a valid token is
// present and lets the request through as a guest otherwise.
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, err := parseAccessToken(c); err == nil {
			c.Set("user_id_validated", claims.UserID)
			c.Set("role", claims.Role)
		}
		c.Next()
	}
}
