package handler_test

import (
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"warbler/backend/internal/auth"
	"warbler/backend/internal/config"
	"warbler/backend/internal/database"
	"warbler/backend/internal/models"
	"warbler/backend/internal/routes"
)

// setupServer starts the real router on an in-memory database with empty
// tables. Each test gets its own server; the database is shared and wiped.
func setupServer(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	if config.AppConfig == nil {
		config.LoadConfig()
	}
	if database.DB == nil {
		require.NoError(t, database.ConnectInMemory())
	}
	for _, table := range []string{"likes", "follows", "messages", "users"} {
		database.DB.Exec("DELETE FROM " + table)
	}

	srv := httptest.NewServer(routes.SetupRouter())
	t.Cleanup(srv.Close)
	return srv
}

// newClient returns a cookie-carrying client that follows redirects, the
// same way a browser does.
func newClient(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &http.Client{Jar: jar}
}

func signupUser(t *testing.T, username, email string) *models.User {
	t.Helper()
	user, err := auth.Signup(database.DB, username, email, "password", "")
	require.NoError(t, err)
	return user
}

func login(t *testing.T, client *http.Client, srv *httptest.Server, username string) {
	t.Helper()
	resp, err := client.PostForm(srv.URL+"/login", url.Values{
		"username": {username},
		"password": {"password"},
	})
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}

// get fetches a page following redirects and returns the final body.
func get(t *testing.T, client *http.Client, url string) (int, string) {
	t.Helper()
	resp, err := client.Get(url)
	require.NoError(t, err)
	return resp.StatusCode, readBody(t, resp)
}

// postForm submits a form following redirects and returns the final body.
func postForm(t *testing.T, client *http.Client, url string, form url.Values) (int, string) {
	t.Helper()
	resp, err := client.PostForm(url, form)
	require.NoError(t, err)
	return resp.StatusCode, readBody(t, resp)
}

// getNoRedirect fetches a page without following redirects.
func getNoRedirect(t *testing.T, client *http.Client, url string) *http.Response {
	t.Helper()
	old := client.CheckRedirect
	client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
		return http.ErrUseLastResponse
	}
	defer func() { client.CheckRedirect = old }()

	resp, err := client.Get(url)
	require.NoError(t, err)
	return resp
}

// postFormNoRedirect submits a form without following redirects.
func postFormNoRedirect(t *testing.T, client *http.Client, url string, form url.Values) *http.Response {
	t.Helper()
	old := client.CheckRedirect
	client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
		return http.ErrUseLastResponse
	}
	defer func() { client.CheckRedirect = old }()

	resp, err := client.PostForm(url, form)
	require.NoError(t, err)
	return resp
}
