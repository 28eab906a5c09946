package handler

import (
	"github.com/gin-gonic/gin"

	"warbler/backend/internal/auth"
)

// render draws a template with the ambient page state (session user and
// pending flash messages) merged into data.
func render(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["CurrentUser"] = auth.CurrentUser(c)
	data["Flashes"] = auth.Flashes(c)
	c.HTML(status, name, data)
}
