package middleware

import (
	"strings"

	"finbot/response"
	"finbot/services"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware resolves the bearer token once per request and puts the
// caller's identity into the gin context. Every data route goes through
// it; no handler reads the Authorization header itself.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := services.VerifyToken(tokenString)
		if err != nil {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set("userID", claims.UserInfo.UserId)
		c.Set("userRole", claims.UserInfo.Role)
		c.Next()
	}
}

// GetUserID reads the identity AuthMiddleware stored on the context.
func GetUserID(c *gin.Context) (uint, bool) {
	value, exists := c.Get("userID")
	if !exists {
		return 0, false
	}
	userID, ok := value.(uint)
	return userID, ok
}
