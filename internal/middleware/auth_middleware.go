package middleware

import (
	"strings"

	"github.com/chocolog/chocolog-backend/internal/app/model"
	"github.com/chocolog/chocolog-backend/internal/errors"
	"github.com/chocolog/chocolog-backend/pkg/redis"
	"github.com/chocolog/chocolog-backend/pkg/util"
	"github.com/gin-gonic/gin"
)

// Context keys for user information
const (
	UserIDKey    = "user_id"
	UserEmailKey = "user_email"
	UserRoleKey  = "user_role"
)

type AuthMiddleware struct {
	jwtSecret string
}

func NewAuthMiddleware(jwtSecret string) *AuthMiddleware {
	return &AuthMiddleware{
		jwtSecret: jwtSecret,
	}
}

// Authenticate validates the JWT token (required). Mutating routes sit
// behind this, so an unauthenticated caller is rejected before any guard
// logic or persistence access runs.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		log := GetLoggerFromContext(c)

		var token string

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				log.Warn("Invalid authorization header format", map[string]interface{}{
					"path": c.Request.URL.Path,
				})
				errors.RespondUnauthorized(c, "invalid authorization header")
				c.Abort()
				return
			}
			token = parts[1]
		} else {
			// WebSocket clients cannot set headers; they pass the token
			// as a query parameter instead.
			token = c.Query("token")
			if token == "" {
				errors.RespondUnauthorized(c, "")
				c.Abort()
				return
			}
		}

		claims, err := util.ValidateToken(token, m.jwtSecret)
		if err != nil {
			log.Warn("Token validation failed", map[string]interface{}{
				"path":  c.Request.URL.Path,
				"error": err.Error(),
			})
			if err == util.ErrExpiredToken {
				errors.RespondUnauthorized(c, "session expired, please log in again")
			} else {
				errors.RespondUnauthorized(c, "invalid authentication token")
			}
			c.Abort()
			return
		}

		// Logged-out tokens stay blacklisted in redis until they expire
		if redis.GetClient() != nil {
			blacklisted, err := redis.IsTokenBlacklisted(c.Request.Context(), token)
			if err == nil && blacklisted {
				log.Warn("Rejected revoked token", map[string]interface{}{
					"user_id": claims.UserID,
				})
				errors.RespondUnauthorized(c, "session has been revoked")
				c.Abort()
				return
			}
		}

		c.Set(UserIDKey, claims.UserID)
		c.Set(UserEmailKey, claims.Email)
		c.Set(UserRoleKey, model.UserRole(claims.Role))
		c.Set("token", token)

		c.Next()
	}
}

// OptionalAuthenticate validates the JWT token if present.
// Missing or invalid tokens continue as guest.
func (m *AuthMiddleware) OptionalAuthenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.Next()
			return
		}

		claims, err := util.ValidateToken(parts[1], m.jwtSecret)
		if err != nil {
			c.Next()
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Set(UserEmailKey, claims.Email)
		c.Set(UserRoleKey, model.UserRole(claims.Role))

		c.Next()
	}
}

// RequireRole checks if the authenticated user has one of the given roles
func (m *AuthMiddleware) RequireRole(roles ...model.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		log := GetLoggerFromContext(c)

		value, exists := c.Get(UserRoleKey)
		if !exists {
			errors.RespondForbidden(c, "role information not found")
			c.Abort()
			return
		}

		role := value.(model.UserRole)
		for _, r := range roles {
			if role == r {
				c.Next()
				return
			}
		}

		userID, _ := GetUserID(c)
		log.Warn("Insufficient permissions", map[string]interface{}{
			"user_id":   userID,
			"user_role": role,
			"path":      c.Request.URL.Path,
		})
		errors.RespondForbidden(c, "")
		c.Abort()
	}
}

// GetUserID extracts the user ID from context
func GetUserID(c *gin.Context) (uint, bool) {
	userID, exists := c.Get(UserIDKey)
	if !exists {
		return 0, false
	}
	return userID.(uint), true
}

// GetUserRole extracts the user role from context
func GetUserRole(c *gin.Context) (model.UserRole, bool) {
	role, exists := c.Get(UserRoleKey)
	if !exists {
		return "", false
	}
	return role.(model.UserRole), true
}
