package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goldencrust/bakery/config"
	"github.com/goldencrust/bakery/pkg/auth"
	"github.com/goldencrust/bakery/pkg/cache"
	"github.com/goldencrust/bakery/pkg/middleware"
	"github.com/goldencrust/bakery/pkg/session"
)

func serve(t *testing.T, mw func(http.Handler) http.Handler, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	rec := httptest.NewRecorder()
	session.Middleware(session.DefaultOptions())(mw(inner)).ServeHTTP(rec, req)
	return rec
}

func TestRequireAuthRedirectsAnonymous(t *testing.T) {
	cache.Use(cache.NewMemoryStore())

	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	rec := serve(t, middleware.RequireAuth, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login?next=%2Fprofile", rec.Header().Get("Location"))
}

func TestRequireAuthPassesAuthenticated(t *testing.T) {
	cache.Use(cache.NewMemoryStore())

	// Prime a session holding an identity.
	var cookie *http.Cookie
	primeReq := httptest.NewRequest(http.MethodGet, "/login", nil)
	primeRec := httptest.NewRecorder()
	session.Middleware(session.DefaultOptions())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := session.FromCtx(r)
		sess.Set(session.UserKey, uint(1))
		require.NoError(t, sess.Save(w))
	})).ServeHTTP(primeRec, primeReq)
	for _, c := range primeRec.Result().Cookies() {
		if c.Name == "bakery_session" {
			cookie = c
		}
	}
	require.NotNil(t, cookie)

	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	req.AddCookie(cookie)
	rec := serve(t, middleware.RequireAuth, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAPIAuth(t *testing.T) {
	config.Set("APP_SECRET", "test-secret")

	// No token.
	req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	rec := httptest.NewRecorder()
	middleware.APIAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run without a token")
	})).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Garbage token.
	req = httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	req.Header.Set("Authorization", "Bearer nonsense")
	rec = httptest.NewRecorder()
	middleware.APIAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run with a bad token")
	})).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Valid token: claims land in the request context.
	token, err := auth.GenerateToken(42, "alice")
	require.NoError(t, err)

	req = httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	middleware.APIAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := auth.ClaimsFromCtx(r.Context())
		require.True(t, ok)
		assert.Equal(t, uint(42), claims.UserID)
		assert.Equal(t, "alice", claims.Username)
		w.WriteHeader(http.StatusOK)
	})).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
