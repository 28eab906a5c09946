package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"warbler/backend/internal/auth"
	"warbler/backend/internal/database"
	"warbler/backend/internal/models"
)

// region --- Follow listings ---

// Following lists the users a given user follows.
func Following(c *gin.Context) {
	profile, ok := loadUserParam(c)
	if !ok {
		return
	}

	var follows []models.Follow
	if err := database.DB.Preload("Followed").
		Where("follower_id = ?", profile.ID).
		Find(&follows).Error; err != nil {
		c.String(http.StatusInternalServerError, "Failed to fetch follows")
		return
	}

	users := make([]models.User, 0, len(follows))
	for _, f := range follows {
		if f.Followed.ID == 0 {
			continue
		}
		users = append(users, f.Followed)
	}

	render(c, http.StatusOK, "following.tmpl", gin.H{"User": profile, "Users": users})
}

// Followers lists the users following a given user.
func Followers(c *gin.Context) {
	profile, ok := loadUserParam(c)
	if !ok {
		return
	}

	var follows []models.Follow
	if err := database.DB.Preload("Follower").
		Where("followed_id = ?", profile.ID).
		Find(&follows).Error; err != nil {
		c.String(http.StatusInternalServerError, "Failed to fetch follows")
		return
	}

	users := make([]models.User, 0, len(follows))
	for _, f := range follows {
		if f.Follower.ID == 0 {
			continue
		}
		users = append(users, f.Follower)
	}

	render(c, http.StatusOK, "followers.tmpl", gin.H{"User": profile, "Users": users})
}

// endregion

// region --- Follow / unfollow ---

// FollowUser creates a follow edge from the session user to the target.
// Following yourself is refused; the schema alone does not forbid it.
func FollowUser(c *gin.Context) {
	viewer := auth.CurrentUser(c)
	target, ok := loadUserParam(c)
	if !ok {
		return
	}

	if target.ID == viewer.ID {
		auth.Deny(c)
		return
	}

	follow := models.Follow{FollowerID: viewer.ID, FollowedID: target.ID}
	if err := database.DB.Create(&follow).Error; err != nil && !database.IsIntegrityViolation(err) {
		c.String(http.StatusInternalServerError, "Failed to follow user")
		return
	}

	c.Redirect(http.StatusFound, "/users/"+strconv.FormatUint(uint64(viewer.ID), 10)+"/following")
}

// UnfollowUser removes the follow edge from the session user to the target.
func UnfollowUser(c *gin.Context) {
	viewer := auth.CurrentUser(c)
	target, ok := loadUserParam(c)
	if !ok {
		return
	}

	err := database.DB.
		Where("follower_id = ? AND followed_id = ?", viewer.ID, target.ID).
		Delete(&models.Follow{}).Error
	if err != nil {
		c.String(http.StatusInternalServerError, "Failed to unfollow user")
		return
	}

	c.Redirect(http.StatusFound, "/users/"+strconv.FormatUint(uint64(viewer.ID), 10)+"/following")
}

// endregion
