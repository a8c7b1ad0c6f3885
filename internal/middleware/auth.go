// Package middleware provides HTTP middleware for the API.
package middleware

import (
	"strings"

	"tripcraft/internal/models"
	"tripcraft/pkg/auth"
	"tripcraft/pkg/response"

	"github.com/gin-gonic/gin"
)

// Context keys for storing caller data
const (
	UserIDKey     = "userID"
	UserNameKey   = "userName"
	UserAvatarKey = "userAvatar"
)

// Auth returns a middleware that validates JWT tokens.
func Auth(jwtManager auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Get Authorization header
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "missing authorization header")
			c.Abort()
			return
		}

		// Check Bearer prefix
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, "invalid authorization header format")
			c.Abort()
			return
		}

		// Validate token
		claims, err := jwtManager.ValidateToken(parts[1])
		if err != nil {
			response.Unauthorized(c, "invalid or expired token")
			c.Abort()
			return
		}

		// Store the caller profile in context for handlers to use
		c.Set(UserIDKey, claims.UserID)
		c.Set(UserNameKey, claims.Name)
		c.Set(UserAvatarKey, claims.AvatarURL)

		// Continue to next handler
		c.Next()
	}
}

// GetUserID retrieves the user ID from the context.
// Returns empty string if not found.
func GetUserID(c *gin.Context) string {
	userID, exists := c.Get(UserIDKey)
	if !exists {
		return ""
	}
	return userID.(string)
}

// GetActor retrieves the full caller profile from the context.
func GetActor(c *gin.Context) models.Actor {
	actor := models.Actor{ID: GetUserID(c)}
	if name, exists := c.Get(UserNameKey); exists {
		actor.Name = name.(string)
	}
	if avatar, exists := c.Get(UserAvatarKey); exists {
		actor.AvatarURL = avatar.(string)
	}
	return actor
}
