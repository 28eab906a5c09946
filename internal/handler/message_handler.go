package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"warbler/backend/internal/auth"
	"warbler/backend/internal/database"
	"warbler/backend/internal/models"
	"warbler/backend/internal/monitoring"
)

// region --- Create ---

// NewMessageForm renders the new-message page.
func NewMessageForm(c *gin.Context) {
	render(c, http.StatusOK, "message_new.tmpl", gin.H{"Error": "", "Text": ""})
}

// CreateMessage persists a new message owned by the session user.
func CreateMessage(c *gin.Context) {
	user := auth.CurrentUser(c)
	text := strings.TrimSpace(c.PostForm("text"))

	if text == "" || len(text) > models.MaxMessageLength {
		render(c, http.StatusOK, "message_new.tmpl", gin.H{
			"Error": "Message must be between 1 and 140 characters.",
			"Text":  text,
		})
		return
	}

	message := models.Message{Text: text, UserID: user.ID}
	if err := database.DB.Create(&message).Error; err != nil {
		c.String(http.StatusInternalServerError, "Failed to create message")
		return
	}

	monitoring.MessagesPosted.Inc()
	c.Redirect(http.StatusFound, "/users/"+strconv.FormatUint(uint64(user.ID), 10))
}

// endregion

// region --- View & delete ---

// ShowMessage renders a single message. Public.
func ShowMessage(c *gin.Context) {
	message, ok := loadMessageParam(c)
	if !ok {
		return
	}

	viewer := auth.CurrentUser(c)
	render(c, http.StatusOK, "message_show.tmpl", gin.H{
		"Message": message,
		"IsOwner": viewer != nil && viewer.ID == message.UserID,
	})
}

// DeleteMessage removes a message. Only its owner may; anyone else gets the
// uniform denial response and the message stays.
func DeleteMessage(c *gin.Context) {
	user := auth.CurrentUser(c)
	message, ok := loadMessageParam(c)
	if !ok {
		return
	}

	if message.UserID != user.ID {
		auth.Deny(c)
		return
	}

	if err := database.DB.Unscoped().Delete(&models.Message{}, message.ID).Error; err != nil {
		c.String(http.StatusInternalServerError, "Failed to delete message")
		return
	}

	c.Redirect(http.StatusFound, "/users/"+strconv.FormatUint(uint64(user.ID), 10))
}

// endregion

// region --- Likes ---

// ToggleLike likes a message, or unlikes it if already liked. Liking your
// own message is refused.
func ToggleLike(c *gin.Context) {
	user := auth.CurrentUser(c)
	message, ok := loadMessageParam(c)
	if !ok {
		return
	}

	if message.UserID == user.ID {
		auth.Deny(c)
		return
	}

	var existing models.Like
	err := database.DB.
		Where("user_id = ? AND message_id = ?", user.ID, message.ID).
		First(&existing).Error
	if err == nil {
		database.DB.Delete(&existing)
	} else {
		like := models.Like{UserID: user.ID, MessageID: message.ID}
		// The unique index backstops a double-submit race.
		if err := database.DB.Create(&like).Error; err != nil && !database.IsIntegrityViolation(err) {
			c.String(http.StatusInternalServerError, "Failed to like message")
			return
		}
	}

	c.Redirect(http.StatusFound, "/")
}

// endregion

// loadMessageParam fetches the message named by the :id route parameter.
func loadMessageParam(c *gin.Context) (*models.Message, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.String(http.StatusBadRequest, "Invalid message ID")
		return nil, false
	}

	var message models.Message
	if err := database.DB.Preload("User").First(&message, uint(id)).Error; err != nil {
		c.String(http.StatusNotFound, "Message not found")
		return nil, false
	}
	return &message, true
}
