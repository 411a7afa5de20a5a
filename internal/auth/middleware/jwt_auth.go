package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/devfolio/portfolio-backend/internal/auth"
)

// RequireUser validates the bearer token and stores the caller
// identity in the context for handlers downstream.
func RequireUser(verifier *auth.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "missing authorization token"})
			c.Abort()
			return
		}

		ident, err := verifier.Verify(token)
		switch {
		case errors.Is(err, auth.ErrNoSecret):
			c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "JWT_SECRET not set"})
			c.Abort()
			return
		case errors.Is(err, auth.ErrTokenExpired):
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "token expired"})
			c.Abort()
			return
		case err != nil:
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "invalid token"})
			c.Abort()
			return
		}

		c.Set(auth.CtxUserID, ident.ID)
		c.Set(auth.CtxUserName, ident.Name)
		c.Next()
	}
}

// RequireAdmin rejects callers whose id does not match the single
// configured admin identity. Must run after RequireUser.
func RequireAdmin(authorizedUserID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if authorizedUserID == "" || auth.UserID(c) != authorizedUserID {
			c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": "forbidden"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// extractToken extracts the Bearer token from the Authorization header
func extractToken(c *gin.Context) string {
	bearerToken := c.GetHeader("Authorization")
	if len(bearerToken) > 7 && strings.HasPrefix(bearerToken, "Bearer ") {
		return bearerToken[7:]
	}
	return ""
}
