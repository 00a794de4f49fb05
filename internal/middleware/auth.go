package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/naoyak/worktrack-api/internal/auth"
	"github.com/naoyak/worktrack-api/internal/constants"
	"github.com/naoyak/worktrack-api/internal/database"
	apierrors "github.com/naoyak/worktrack-api/internal/errors"
	"github.com/naoyak/worktrack-api/internal/models"
)

// RequireAuth authenticates the request from the access token cookie, falling
// back to a bearer Authorization header. Every failure mode surfaces the same
// 401 so callers cannot probe which check failed.
func RequireAuth(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		userID, err := tokens.Verify(tokenString)
		if err != nil {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		// The token must still resolve to an existing user.
		var user models.User
		if err := database.GetDB().First(&user, "id = ?", userID).Error; err != nil {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, user.ID)
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if cookie, err := c.Cookie(constants.AccessTokenCookie); err == nil && cookie != "" {
		return cookie
	}

	header := c.GetHeader("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) == 2 && parts[0] == "Bearer" {
		return parts[1]
	}

	return ""
}

// GetUserID retrieves the current user ID from context
func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return uuid.Nil, false
	}

	userID, ok := value.(uuid.UUID)
	if !ok {
		return uuid.Nil, false
	}

	return userID, true
}
