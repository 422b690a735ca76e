package middleware

import (
	"net/http"
	"strings"

	"seminary/pkg/jwt"

	"github.com/gin-gonic/gin"
)

const (
	ContextUserID   = "user_id"
	ContextUserRole = "user_role"
)

// BearerToken extracts the token of an "Authorization: Bearer <token>" header.
func BearerToken(c *gin.Context) (string, bool) {
	parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	return token, token != ""
}

// AuthMiddleware validates the bearer token statelessly and exposes the
// user id and role claims to later handlers.
func AuthMiddleware(jwtService *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required", "code": "UNAUTHORIZED"})
			c.Abort()
			return
		}

		token, ok := BearerToken(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format", "code": "UNAUTHORIZED"})
			c.Abort()
			return
		}

		claims, err := jwtService.ValidateToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token", "code": "UNAUTHORIZED"})
			c.Abort()
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextUserRole, claims.Role)
		c.Next()
	}
}
