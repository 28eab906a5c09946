package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"warbler/backend/internal/auth"
	"warbler/backend/internal/database"
	"warbler/backend/internal/models"
)

const feedLimit = 100

// region --- Home ---

// Home shows the feed for a logged-in user and the landing page otherwise.
func Home(c *gin.Context) {
	user := auth.CurrentUser(c)
	if user == nil {
		render(c, http.StatusOK, "home_anon.tmpl", nil)
		return
	}

	// Own messages plus those of followed users, newest first.
	followedIDs := database.DB.Model(&models.Follow{}).
		Select("followed_id").
		Where("follower_id = ?", user.ID)

	var messages []models.Message
	err := database.DB.Preload("User").
		Where("user_id IN (?) OR user_id = ?", followedIDs, user.ID).
		Order("created_at DESC").
		Limit(feedLimit).
		Find(&messages).Error
	if err != nil {
		c.String(http.StatusInternalServerError, "Failed to load feed")
		return
	}

	render(c, http.StatusOK, "home.tmpl", gin.H{"Messages": messages})
}

// endregion

// region --- Listing & detail ---

// ListUsers lists all users, optionally filtered by a username search.
func ListUsers(c *gin.Context) {
	searchQuery := c.Query("q")

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	query := database.DB.Model(&models.User{})
	if searchQuery != "" {
		query = query.Where("username LIKE ?", "%"+searchQuery+"%")
	}

	users, err := paginate[models.User](query, page, 50)
	if err != nil {
		c.String(http.StatusInternalServerError, "Failed to retrieve users")
		return
	}

	render(c, http.StatusOK, "users_index.tmpl", gin.H{
		"Users": users.Items,
		"Query": searchQuery,
		"Page":  users,
	})
}

// ShowUser renders a user's public profile with messages and counts.
func ShowUser(c *gin.Context) {
	profile, ok := loadUserParam(c)
	if !ok {
		return
	}

	var messages []models.Message
	if err := database.DB.Where("user_id = ?", profile.ID).
		Order("created_at DESC").
		Limit(feedLimit).
		Find(&messages).Error; err != nil {
		c.String(http.StatusInternalServerError, "Failed to load messages")
		return
	}

	viewer := auth.CurrentUser(c)
	isOwner := viewer != nil && viewer.ID == profile.ID

	isFollowing := false
	if viewer != nil && !isOwner {
		var count int64
		database.DB.Model(&models.Follow{}).
			Where("follower_id = ? AND followed_id = ?", viewer.ID, profile.ID).
			Count(&count)
		isFollowing = count > 0
	}

	render(c, http.StatusOK, "user_detail.tmpl", gin.H{
		"User":           profile,
		"Messages":       messages,
		"MessageCount":   countMessages(profile.ID),
		"FollowingCount": countFollows("follower_id", profile.ID),
		"FollowerCount":  countFollows("followed_id", profile.ID),
		"LikeCount":      countLikes(profile.ID),
		"IsOwner":        isOwner,
		"IsFollowing":    isFollowing,
	})
}

// LikedMessages lists the messages a user has liked.
func LikedMessages(c *gin.Context) {
	profile, ok := loadUserParam(c)
	if !ok {
		return
	}

	var likes []models.Like
	if err := database.DB.Preload("Message.User").
		Where("user_id = ?", profile.ID).
		Order("created_at DESC").
		Find(&likes).Error; err != nil {
		c.String(http.StatusInternalServerError, "Failed to load likes")
		return
	}

	messages := make([]models.Message, 0, len(likes))
	for _, like := range likes {
		messages = append(messages, like.Message)
	}

	render(c, http.StatusOK, "likes.tmpl", gin.H{
		"User":     profile,
		"Messages": messages,
	})
}

// endregion

// region --- Profile edit & delete ---

// EditProfileForm renders the profile edit page for the session user.
func EditProfileForm(c *gin.Context) {
	render(c, http.StatusOK, "profile_edit.tmpl", gin.H{
		"User":  auth.CurrentUser(c),
		"Error": "",
	})
}

// EditProfile applies profile changes after re-verifying the current
// password. On verification failure nothing is persisted.
func EditProfile(c *gin.Context) {
	user := auth.CurrentUser(c)

	if auth.Authenticate(database.DB, user.Username, c.PostForm("password")) == nil {
		auth.Flash(c, "Wrong password, please try again.")
		c.Redirect(http.StatusFound, "/")
		return
	}

	// Unique fields keep their old value when the form leaves them blank.
	if v := c.PostForm("username"); v != "" {
		user.Username = v
	}
	if v := c.PostForm("email"); v != "" {
		user.Email = v
	}
	if v := c.PostForm("image_url"); v != "" {
		user.ImageURL = v
	}
	if v := c.PostForm("header_image_url"); v != "" {
		user.HeaderImageURL = v
	}
	user.Bio = c.PostForm("bio")
	user.Location = c.PostForm("location")

	if err := database.DB.Save(user).Error; err != nil {
		message := "Something went wrong, please try again."
		if database.IsIntegrityViolation(err) {
			message = "Username or email already taken"
		}
		render(c, http.StatusOK, "profile_edit.tmpl", gin.H{"User": user, "Error": message})
		return
	}

	c.Redirect(http.StatusFound, "/users/"+strconv.FormatUint(uint64(user.ID), 10))
}

// DeleteUser removes the session user. The schema cascades the delete to the
// user's messages, likes, and both directions of follow edges.
func DeleteUser(c *gin.Context) {
	user := auth.CurrentUser(c)

	if err := database.DB.Unscoped().Delete(&models.User{}, user.ID).Error; err != nil {
		c.String(http.StatusInternalServerError, "Failed to delete user")
		return
	}

	logrus.WithField("user_id", user.ID).Info("User account deleted")
	_ = auth.ClearSessionUser(c)
	c.Redirect(http.StatusFound, "/signup")
}

// endregion

// region --- Helpers ---

// loadUserParam fetches the user named by the :id route parameter. It writes
// the error response itself and reports success through the second value.
func loadUserParam(c *gin.Context) (*models.User, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.String(http.StatusBadRequest, "Invalid user ID")
		return nil, false
	}

	var user models.User
	if err := database.DB.First(&user, uint(id)).Error; err != nil {
		c.String(http.StatusNotFound, "User not found")
		return nil, false
	}
	return &user, true
}

func countFollows(column string, userID uint) int64 {
	var count int64
	database.DB.Model(&models.Follow{}).Where(column+" = ?", userID).Count(&count)
	return count
}

func countMessages(userID uint) int64 {
	var count int64
	database.DB.Model(&models.Message{}).Where("user_id = ?", userID).Count(&count)
	return count
}

func countLikes(userID uint) int64 {
	var count int64
	database.DB.Model(&models.Like{}).Where("user_id = ?", userID).Count(&count)
	return count
}

// endregion
