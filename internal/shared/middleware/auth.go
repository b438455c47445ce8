package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"webmusic-backend/internal/shared/response"
	"webmusic-backend/pkg/jwt"
)

// Auth validates the Bearer token and puts the caller's identity into
// the request context under "userID" and "userRole".
func Auth(manager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "missing authorization header")
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := manager.ValidateToken(parts[1])
		if err != nil || claims.Type != "access" {
			response.Unauthorized(c, "invalid token")
			c.Abort()
			return
		}

		userID, err := claims.Subject()
		if err != nil {
			response.Unauthorized(c, "invalid user id in token")
			c.Abort()
			return
		}

		c.Set("userID", userID)
		c.Set("userRole", claims.Role)

		c.Next()
	}
}

// RequireAdmin gates moderation endpoints. Must run after Auth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("userRole")
		if role != "Admin" && role != "Moderator" {
			response.Forbidden(c, "admin access required")
			c.Abort()
			return
		}

		c.Next()
	}
}
