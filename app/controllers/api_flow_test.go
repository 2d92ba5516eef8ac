package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goldencrust/bakery/app/models"
	"github.com/goldencrust/bakery/pkg/database"
)

func postJSON(t *testing.T, client *http.Client, rawURL string, payload any) (*http.Response, map[string]any) {
	t.Helper()

	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	resp, err := client.Post(rawURL, "application/json", bytes.NewReader(raw))
	require.NoError(t, err)
	defer resp.Body.Close()

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp, body
}

func getJSON(t *testing.T, client *http.Client, rawURL, token string) (*http.Response, map[string]any) {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, rawURL, nil)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp, body
}

func TestAPIRegisterLoginProfile(t *testing.T) {
	ts, client := startSite(t)

	resp, body := postJSON(t, client, ts.URL+"/api/register", map[string]any{
		"username":              "alice",
		"email":                 "alice@example.com",
		"password":              "S3cretBread",
		"password_confirmation": "S3cretBread",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	data := body["data"].(map[string]any)
	assert.Equal(t, "alice", data["username"])

	// Conflicting username.
	resp, body = postJSON(t, client, ts.URL+"/api/register", map[string]any{
		"username":              "alice",
		"email":                 "other@example.com",
		"password":              "S3cretBread",
		"password_confirmation": "S3cretBread",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "Username already exists. Please choose a different one.", body["message"])

	// Bad credentials.
	resp, _ = postJSON(t, client, ts.URL+"/api/login", map[string]any{
		"identifier": "alice",
		"password":   "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Good credentials yield a token.
	resp, body = postJSON(t, client, ts.URL+"/api/login", map[string]any{
		"identifier": "alice",
		"password":   "S3cretBread",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	token := body["data"].(map[string]any)["token"].(string)
	require.NotEmpty(t, token)

	// Profile requires the token.
	resp, _ = getJSON(t, client, ts.URL+"/api/profile", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, body = getJSON(t, client, ts.URL+"/api/profile", token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data = body["data"].(map[string]any)
	assert.Equal(t, "alice", data["username"])
	assert.Equal(t, "alice@example.com", data["email"])
}

func TestAPIProducts(t *testing.T) {
	ts, client := startSite(t)

	require.NoError(t, database.DB.Create(&models.Product{
		Name: "Rye Resilience", Price: 6.50, Variety: "Rye",
	}).Error)

	resp, body := getJSON(t, client, ts.URL+"/api/products", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	items := body["data"].([]any)
	require.Len(t, items, 1)
	item := items[0].(map[string]any)
	assert.Equal(t, "Rye Resilience", item["name"])
	assert.InDelta(t, 6.50, item["price"].(float64), 0.001)
	assert.NotEmpty(t, item["image_url"])
}

func TestGraphQLProducts(t *testing.T) {
	ts, client := startSite(t)

	require.NoError(t, database.DB.Create(&models.Product{
		Name: "French Baguette", Price: 5.00, Variety: "Artisan",
	}).Error)
	require.NoError(t, database.DB.Create(&models.Product{
		Name: "Whole Wheat Wonder", Price: 6.00, Variety: "Whole Wheat",
	}).Error)

	query := url.QueryEscape(`{ products(variety: "Artisan") { name price variety } }`)
	resp, body := getJSON(t, client, ts.URL+"/api/graphql?query="+query, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	require.Nil(t, body["errors"])
	products := body["data"].(map[string]any)["products"].([]any)
	require.Len(t, products, 1)
	first := products[0].(map[string]any)
	assert.Equal(t, "French Baguette", first["name"])
	assert.InDelta(t, 5.00, first["price"].(float64), 0.001)
}
