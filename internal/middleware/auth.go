package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/taskdeck/taskdeck/internal/config"
)

const ctxUserID = "userID"

// DefaultUserID is the seeded local user assumed when no identity
// header is sent. A current-user stub, not an authentication scheme.
const DefaultUserID int64 = 1

// CurrentUser resolves the calling user from the configured identity
// header and stores it on the request context.
func CurrentUser(cfg *config.Config) gin.HandlerFunc {
	header := cfg.Auth.UserHeader
	return func(c *gin.Context) {
		userID := DefaultUserID
		if raw := c.GetHeader(header); raw != "" {
			if id, err := strconv.ParseInt(raw, 10, 64); err == nil && id > 0 {
				userID = id
			}
		}
		c.Set(ctxUserID, userID)
		c.Next()
	}
}

// UserID returns the caller resolved by CurrentUser.
func UserID(c *gin.Context) int64 {
	if id, ok := c.Get(ctxUserID); ok {
		if v, ok := id.(int64); ok {
			return v
		}
	}
	return DefaultUserID
}
