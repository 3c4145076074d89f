package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const ctxSubject = "auth_subject"

// RequireAdmin validates the bearer token on protected routes and stores
// the authenticated subject in the Gin context. The 401 body is identical
// for missing, malformed, expired and mis-signed tokens.
func RequireAdmin(tokens *TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "could not validate credentials"})
			return
		}

		subject, err := tokens.Validate(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "could not validate credentials"})
			return
		}

		c.Set(ctxSubject, subject)
		c.Next()
	}
}

// Subject returns the admin username set by RequireAdmin.
func Subject(c *gin.Context) string {
	return strings.TrimSpace(c.GetString(ctxSubject))
}

// extractToken extracts the Bearer token from the Authorization header.
func extractToken(c *gin.Context) string {
	bearerToken := c.GetHeader("Authorization")
	if len(bearerToken) > 7 && strings.HasPrefix(bearerToken, "Bearer ") {
		return bearerToken[7:]
	}
	return ""
}
