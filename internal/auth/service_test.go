package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"warbler/backend/internal/auth"
	"warbler/backend/internal/database"
	"warbler/backend/internal/models"
)

func setupTestDB(t *testing.T) {
	t.Helper()
	if database.DB == nil {
		require.NoError(t, database.ConnectInMemory())
	}
	database.DB.Exec("DELETE FROM likes")
	database.DB.Exec("DELETE FROM follows")
	database.DB.Exec("DELETE FROM messages")
	database.DB.Exec("DELETE FROM users")
}

func TestSignupStoresSubmittedFields(t *testing.T) {
	setupTestDB(t)

	user, err := auth.Signup(database.DB, "testuser3", "test3@test.com", "password", "http://testimage.com/test.jpg")
	require.NoError(t, err)
	require.NotZero(t, user.ID)

	var stored models.User
	require.NoError(t, database.DB.First(&stored, user.ID).Error)

	assert.Equal(t, "testuser3", stored.Username)
	assert.Equal(t, "test3@test.com", stored.Email)
	assert.Equal(t, "http://testimage.com/test.jpg", stored.ImageURL)
	assert.NotEqual(t, "password", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("password")))
}

func TestSignupDefaultImage(t *testing.T) {
	setupTestDB(t)

	user, err := auth.Signup(database.DB, "testuser", "testuser@testuser.com", "password", "")
	require.NoError(t, err)

	assert.Equal(t, models.DefaultImageURL, user.ImageURL)
	assert.Equal(t, models.DefaultHeaderImageURL, user.HeaderImageURL)
}

func TestSignupMissingUsername(t *testing.T) {
	setupTestDB(t)

	_, err := auth.Signup(database.DB, "", "test4@test.com", "password", "")
	require.Error(t, err)
	assert.True(t, database.IsIntegrityViolation(err))
}

func TestSignupMissingEmail(t *testing.T) {
	setupTestDB(t)

	_, err := auth.Signup(database.DB, "testuser6", "", "password", "")
	require.Error(t, err)
	assert.True(t, database.IsIntegrityViolation(err))
}

func TestSignupDuplicateUsername(t *testing.T) {
	setupTestDB(t)

	_, err := auth.Signup(database.DB, "testuser", "first@test.com", "password", "")
	require.NoError(t, err)

	_, err = auth.Signup(database.DB, "testuser", "second@test.com", "password", "")
	require.Error(t, err)
	assert.True(t, database.IsIntegrityViolation(err))
}

func TestSignupDuplicateEmail(t *testing.T) {
	setupTestDB(t)

	_, err := auth.Signup(database.DB, "first", "same@test.com", "password", "")
	require.NoError(t, err)

	_, err = auth.Signup(database.DB, "second", "same@test.com", "password", "")
	require.Error(t, err)
	assert.True(t, database.IsIntegrityViolation(err))
}

func TestAuthenticate(t *testing.T) {
	setupTestDB(t)

	created, err := auth.Signup(database.DB, "user1", "test@test.com", "password", "")
	require.NoError(t, err)

	user := auth.Authenticate(database.DB, "user1", "password")
	require.NotNil(t, user)
	assert.Equal(t, created.ID, user.ID)
}

func TestAuthenticateWrongUsername(t *testing.T) {
	setupTestDB(t)

	_, err := auth.Signup(database.DB, "user1", "test@test.com", "password", "")
	require.NoError(t, err)

	assert.Nil(t, auth.Authenticate(database.DB, "user5", "password"))
}

func TestAuthenticateWrongPassword(t *testing.T) {
	setupTestDB(t)

	_, err := auth.Signup(database.DB, "user1", "test@test.com", "password", "")
	require.NoError(t, err)

	assert.Nil(t, auth.Authenticate(database.DB, "user1", "asdfaefda"))
}
