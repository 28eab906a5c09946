package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"warbler/backend/internal/auth"
	"warbler/backend/internal/database"
	"warbler/backend/internal/monitoring"
)

// region --- Signup ---

// SignupForm renders the signup page.
func SignupForm(c *gin.Context) {
	render(c, http.StatusOK, "signup.tmpl", signupFormData("", "", "", ""))
}

// Signup creates a new user from the submitted form and logs the browser in.
// Missing or taken unique fields surface as an integrity violation from the
// storage layer and redisplay the form.
func Signup(c *gin.Context) {
	username := c.PostForm("username")
	email := c.PostForm("email")
	password := c.PostForm("password")
	imageURL := c.PostForm("image_url")

	user, err := auth.Signup(database.DB, username, email, password, imageURL)
	if err != nil {
		message := "Something went wrong, please try again."
		if database.IsIntegrityViolation(err) {
			message = "Username or email already taken"
		}
		render(c, http.StatusOK, "signup.tmpl", signupFormData(message, username, email, imageURL))
		return
	}

	monitoring.SignupSuccess.Inc()

	if err := auth.SetSessionUser(c, user.ID); err != nil {
		render(c, http.StatusOK, "signup.tmpl", signupFormData("Something went wrong, please try again.", username, email, imageURL))
		return
	}

	c.Redirect(http.StatusFound, "/")
}

func signupFormData(errMsg, username, email, imageURL string) gin.H {
	return gin.H{
		"Error":    errMsg,
		"Username": username,
		"Email":    email,
		"ImageURL": imageURL,
	}
}

// endregion

// region --- Login / Logout ---

// LoginForm renders the login page.
func LoginForm(c *gin.Context) {
	render(c, http.StatusOK, "login.tmpl", gin.H{"Error": "", "Username": ""})
}

// Login authenticates the submitted credentials and establishes a session.
// Unknown username and wrong password produce the same generic failure.
func Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	user := auth.Authenticate(database.DB, username, password)
	if user == nil {
		monitoring.LoginFailure.Inc()
		render(c, http.StatusOK, "login.tmpl", gin.H{"Error": "Invalid credentials.", "Username": username})
		return
	}

	if err := auth.SetSessionUser(c, user.ID); err != nil {
		render(c, http.StatusOK, "login.tmpl", gin.H{"Error": "Something went wrong, please try again.", "Username": username})
		return
	}

	monitoring.LoginSuccess.Inc()
	auth.Flash(c, fmt.Sprintf("Hello, %s!", user.Username))
	c.Redirect(http.StatusFound, "/")
}

// Logout clears the session.
func Logout(c *gin.Context) {
	_ = auth.ClearSessionUser(c)
	auth.Flash(c, "You have been logged out.")
	c.Redirect(http.StatusFound, "/login")
}

// endregion
