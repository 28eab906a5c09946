package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireLogin creates a gin middleware that denies anonymous requests.
// It must be used AFTER LoadUserMiddleware. A session pointing at a deleted
// user counts as anonymous. Denial is a flash plus redirect to the home page,
// identical to the ownership-mismatch response, so the caller learns nothing
// about why access was refused.
func RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentUser(c) == nil {
			Flash(c, AccessUnauthorized)
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}

		c.Next()
	}
}

// Deny aborts the request with the uniform unauthorized response. Handlers
// call it when an ownership check fails.
func Deny(c *gin.Context) {
	Flash(c, AccessUnauthorized)
	c.Redirect(http.StatusFound, "/")
	c.Abort()
}
