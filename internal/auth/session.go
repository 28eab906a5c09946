package auth

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// CurrUserKey is the session key holding the logged-in user's id.
const CurrUserKey = "curr_user"

// AccessUnauthorized is the uniform denial message flashed for both
// "not logged in" and "logged in as the wrong user".
const AccessUnauthorized = "Access unauthorized."

// SetSessionUser records userID as the session user.
func SetSessionUser(c *gin.Context, userID uint) error {
	session := sessions.Default(c)
	session.Set(CurrUserKey, userID)
	return session.Save()
}

// ClearSessionUser removes the session user, logging the browser out.
func ClearSessionUser(c *gin.Context) error {
	session := sessions.Default(c)
	session.Delete(CurrUserKey)
	return session.Save()
}

// SessionUserID returns the session user's id, if a session is present.
func SessionUserID(c *gin.Context) (uint, bool) {
	session := sessions.Default(c)
	v := session.Get(CurrUserKey)
	if v == nil {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

// Flash queues a one-shot message for the next rendered page.
func Flash(c *gin.Context, message string) {
	session := sessions.Default(c)
	session.AddFlash(message)
	_ = session.Save()
}

// Flashes drains and returns the queued flash messages.
func Flashes(c *gin.Context) []string {
	session := sessions.Default(c)
	raw := session.Flashes()
	if len(raw) == 0 {
		return nil
	}
	_ = session.Save() // Flashes() consumes; persist the now-empty list

	messages := make([]string, 0, len(raw))
	for _, f := range raw {
		if s, ok := f.(string); ok {
			messages = append(messages, s)
		}
	}
	return messages
}
