package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"sportfields/internal/domain/user"
	"sportfields/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	jwtService *jwt.Service
}

const (
	ctxUsernameKey = "username"
	ctxUserRoleKey = "user_role"
)

func NewAuthMiddleware(jwtService *jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{jwtService: jwtService}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimSpace(authHeader[len("Bearer "):])
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Access token required",
			})
			c.Abort()
			return
		}

		claims, err := m.jwtService.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(ctxUsernameKey, claims.Username)
		c.Set(ctxUserRoleKey, user.Role(claims.Role))
		c.Next()
	}
}

// RequireOwner gates field management routes. Must run after
// RequireAuth.
func (m *AuthMiddleware) RequireOwner() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetUserRole(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"message": "Internal server error",
			})
			c.Abort()
			return
		}

		if role != user.RoleOwner {
			c.JSON(http.StatusForbidden, gin.H{
				"success": false,
				"message": "Owner account required",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

func GetUsername(c *gin.Context) (string, bool) {
	value, exists := c.Get(ctxUsernameKey)
	if !exists {
		return "", false
	}

	username, ok := value.(string)
	return username, ok
}

func GetUserRole(c *gin.Context) (user.Role, bool) {
	value, exists := c.Get(ctxUserRoleKey)
	if !exists {
		return "", false
	}

	role, ok := value.(user.Role)
	return role, ok
}
