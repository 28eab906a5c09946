package auth

import (
	"github.com/gin-gonic/gin"

	"warbler/backend/internal/database"
	"warbler/backend/internal/models"
)

const currentUserKey = "currentUser"

// LoadUserMiddleware resolves the session user and sets it in the context if
// present, but does not fail if there is no session or the user is gone.
// Public pages use it to show the logged-in state; RequireLogin builds on it.
func LoadUserMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID, ok := SessionUserID(c); ok {
			var user models.User
			if err := database.DB.First(&user, userID).Error; err == nil {
				c.Set(currentUserKey, &user)
			}
		}
		c.Next()
	}
}

// CurrentUser returns the user loaded by LoadUserMiddleware, or nil.
func CurrentUser(c *gin.Context) *models.User {
	if v, exists := c.Get(currentUserKey); exists {
		if user, ok := v.(*models.User); ok {
			return user
		}
	}
	return nil
}
