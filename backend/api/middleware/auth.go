package middleware

import (
	"strings"

	"mediavault/backend/common"
	"mediavault/backend/service"

	"github.com/gin-gonic/gin"
)

// JWTAuth rejects requests without a valid bearer token before any
// handler logic runs, and puts the authenticated identity in the context.
func JWTAuth(auth *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			common.RespUnauthorized(c, "Missing Authorization header")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			common.RespUnauthorized(c, "Invalid Authorization header")
			return
		}

		claims, err := auth.ValidateToken(parts[1])
		if err != nil {
			common.RespUnauthorized(c, "Invalid token")
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("email", claims.Email)
		c.Next()
	}
}
