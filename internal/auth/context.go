package auth

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	CtxUserID   = "user_id"
	CtxUserName = "user_name"
)

// UserID extracts the caller id from the Gin context.
// This is set by middleware.RequireUser.
func UserID(c *gin.Context) string {
	return strings.TrimSpace(c.GetString(CtxUserID))
}

// UserName extracts the caller display name from the Gin context.
func UserName(c *gin.Context) string {
	return strings.TrimSpace(c.GetString(CtxUserName))
}
