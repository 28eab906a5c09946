package auth

import (
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"warbler/backend/internal/models"
)

// Signup hashes the password and stores a new user.
//
// Validation of the unique fields is deferred to the storage layer: an empty
// or already-taken username or email comes back as an integrity violation
// from Create, not as an error raised here. Callers classify the error with
// database.IsIntegrityViolation.
func Signup(db *gorm.DB, username, email, password, imageURL string) (*models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	if imageURL == "" {
		imageURL = models.DefaultImageURL
	}

	user := models.User{
		Username:       username,
		Email:          email,
		PasswordHash:   string(hashed),
		ImageURL:       imageURL,
		HeaderImageURL: models.DefaultHeaderImageURL,
	}
	if err := db.Create(&user).Error; err != nil {
		logrus.WithFields(logrus.Fields{"username": username, "email": email}).
			WithError(err).Warn("Signup rejected by storage layer")
		return nil, err
	}

	logrus.WithField("user_id", user.ID).Info("User signed up")
	return &user, nil
}

// Authenticate looks up a user by username and verifies the password.
// It returns nil for an unknown username and for a wrong password alike, so a
// caller cannot tell which usernames exist.
func Authenticate(db *gorm.DB, username, password string) *models.User {
	var user models.User
	if err := db.Where("username = ?", username).First(&user).Error; err != nil {
		logrus.WithField("username", username).Warn("Login attempt failed: user not found")
		return nil
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logrus.WithField("username", username).Warn("Login attempt failed: invalid password")
		return nil
	}

	return &user
}
