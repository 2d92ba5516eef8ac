package controllers_test

import (
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goldencrust/bakery/app/models"
	"github.com/goldencrust/bakery/internal/server"
	"github.com/goldencrust/bakery/pkg/cache"
	"github.com/goldencrust/bakery/pkg/database"
	"github.com/goldencrust/bakery/pkg/storage"
)

// startSite boots the full production handler against a throwaway
// database and returns a server plus a cookie-carrying client.
func startSite(t *testing.T) (*httptest.Server, *http.Client) {
	t.Helper()

	db, err := database.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Product{}, &models.Order{},
		&models.OrderItem{}, &models.BlogPost{},
	))
	database.DB = db
	cache.Use(cache.NewMemoryStore())
	storage.Connect()

	ts := httptest.NewServer(server.Handler())
	t.Cleanup(ts.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return ts, &http.Client{Jar: jar}
}

func get(t *testing.T, client *http.Client, rawURL string) (*http.Response, string) {
	t.Helper()
	resp, err := client.Get(rawURL)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func postForm(t *testing.T, client *http.Client, rawURL string, form url.Values) (*http.Response, string) {
	t.Helper()
	resp, err := client.PostForm(rawURL, form)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func TestHomePage(t *testing.T) {
	ts, client := startSite(t)

	resp, body := get(t, client, ts.URL+"/")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Golden Crust Bakery")
	assert.Contains(t, body, "Login")
	assert.NotContains(t, body, "Logout")
}

func TestProductsPage(t *testing.T) {
	ts, client := startSite(t)

	require.NoError(t, database.DB.Create(&models.Product{
		Name: "Classic Sourdough", Price: 7.00, Variety: "Sourdough",
		Description: "Tangy and crusty.",
	}).Error)

	resp, body := get(t, client, ts.URL+"/products")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Classic Sourdough")
	assert.Contains(t, body, "$7.00")
	assert.Contains(t, body, "Sourdough")
}

func TestBlogPages(t *testing.T) {
	ts, client := startSite(t)

	resp, body := get(t, client, ts.URL+"/blog")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "The Secret to Perfect Sourdough")
	assert.Contains(t, body, "Meet the Baker: Maria&#39;s Story")

	resp, body = get(t, client, ts.URL+"/blog/baking-with-autumn-flavors")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Baking with Autumn Flavors")
	assert.Contains(t, body, "<p>This is the full content for")

	resp, body = get(t, client, ts.URL+"/blog/no-such-post")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, body, "Blog post not found.")
}

func TestAnonymousProfileRedirectsToLogin(t *testing.T) {
	ts, client := startSite(t)

	resp, _ := get(t, client, ts.URL+"/profile")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "/login", resp.Request.URL.Path)
	assert.Equal(t, "/profile", resp.Request.URL.Query().Get("next"))
}

func TestRegisterLoginProfileLogoutFlow(t *testing.T) {
	ts, client := startSite(t)

	// Register.
	resp, body := postForm(t, client, ts.URL+"/register", url.Values{
		"username":         {"alice"},
		"email":            {"alice@example.com"},
		"password":         {"S3cretBread"},
		"confirm_password": {"S3cretBread"},
	})
	assert.Equal(t, "/login", resp.Request.URL.Path)
	assert.Contains(t, body, "Your account has been created! You can now log in.")

	// The flash is one-shot: a reload shows a clean page.
	_, body = get(t, client, ts.URL+"/login")
	assert.NotContains(t, body, "Your account has been created!")

	// Log in; lands on the profile page.
	resp, body = postForm(t, client, ts.URL+"/login", url.Values{
		"identifier": {"alice"},
		"password":   {"S3cretBread"},
	})
	assert.Equal(t, "/profile", resp.Request.URL.Path)
	assert.Contains(t, body, "Login successful!")
	assert.Contains(t, body, "alice")

	// Authenticated users are bounced off the auth forms.
	resp, _ = get(t, client, ts.URL+"/register")
	assert.Equal(t, "/", resp.Request.URL.Path)
	resp, _ = get(t, client, ts.URL+"/login")
	assert.Equal(t, "/", resp.Request.URL.Path)

	// Update the profile.
	resp, body = postForm(t, client, ts.URL+"/profile", url.Values{
		"full_name":        {"Alice Crumb"},
		"phone_number":     {"555-0101"},
		"shipping_address": {"1 Bakery Lane"},
	})
	assert.Equal(t, "/profile", resp.Request.URL.Path)
	assert.Contains(t, body, "Your profile has been updated successfully!")
	assert.Contains(t, body, "Alice Crumb")
	assert.Contains(t, body, "1 Bakery Lane")

	// Log out.
	resp, body = get(t, client, ts.URL+"/logout")
	assert.Equal(t, "/", resp.Request.URL.Path)
	assert.Contains(t, body, "You have been logged out.")

	// Session is gone: the profile page requires login again.
	resp, _ = get(t, client, ts.URL+"/profile")
	assert.Equal(t, "/login", resp.Request.URL.Path)
}

func TestLoginFailureShowsUnifiedMessage(t *testing.T) {
	ts, client := startSite(t)

	resp, body := postForm(t, client, ts.URL+"/login", url.Values{
		"identifier": {"ghost"},
		"password":   {"whatever"},
	})
	assert.Equal(t, "/login", resp.Request.URL.Path)
	assert.Contains(t, body, "Login unsuccessful. Please check username/email and password.")
}

func TestLoginHonorsNextParam(t *testing.T) {
	ts, client := startSite(t)

	resp, _ := postForm(t, client, ts.URL+"/register", url.Values{
		"username":         {"bob"},
		"email":            {"bob@example.com"},
		"password":         {"S3cretBread"},
		"confirm_password": {"S3cretBread"},
	})
	require.Equal(t, "/login", resp.Request.URL.Path)

	resp, _ = postForm(t, client, ts.URL+"/login?next=%2Fprofile", url.Values{
		"identifier": {"bob@example.com"},
		"password":   {"S3cretBread"},
	})
	assert.Equal(t, "/profile", resp.Request.URL.Path)
}

func TestLoginRejectsOffsiteNext(t *testing.T) {
	ts, client := startSite(t)

	postForm(t, client, ts.URL+"/register", url.Values{
		"username":         {"carol"},
		"email":            {"carol@example.com"},
		"password":         {"S3cretBread"},
		"confirm_password": {"S3cretBread"},
	})

	next := url.QueryEscape("https://evil.example/phish")
	resp, _ := postForm(t, client, ts.URL+"/login?next="+next, url.Values{
		"identifier": {"carol"},
		"password":   {"S3cretBread"},
	})
	require.True(t, strings.HasPrefix(resp.Request.URL.String(), ts.URL),
		"login must never redirect off-site")
	assert.Equal(t, "/profile", resp.Request.URL.Path)
}
