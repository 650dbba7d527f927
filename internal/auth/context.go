package auth

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const userIDKey = "userID"

// GetUserID returns the authenticated user's ID or empty string.
func GetUserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}

// setUserID stores the caller and tags the request logger with it.
func setUserID(c *gin.Context, userID string) {
	c.Set(userIDKey, userID)

	logger := zerolog.Ctx(c.Request.Context()).With().Str("user_id", userID).Logger()
	c.Request = c.Request.WithContext(logger.WithContext(c.Request.Context()))
}

// WithUserID is a test helper middleware that authenticates every request as userID.
func WithUserID(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		setUserID(c, userID)
		c.Next()
	}
}
