package session_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goldencrust/bakery/pkg/cache"
	"github.com/goldencrust/bakery/pkg/session"
)

func setupCache(t *testing.T) {
	t.Helper()
	cache.Use(cache.NewMemoryStore())
}

// roundTrip runs a request through the session middleware and returns
// the recorder.
func roundTrip(t *testing.T, cookie *http.Cookie, handler func(w http.ResponseWriter, r *http.Request)) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()

	session.Middleware(session.DefaultOptions())(http.HandlerFunc(handler)).ServeHTTP(rec, req)
	return rec
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == "bakery_session" {
			return c
		}
	}
	t.Fatal("no session cookie in response")
	return nil
}

func TestSessionPersistsAcrossRequests(t *testing.T) {
	setupCache(t)

	rec := roundTrip(t, nil, func(w http.ResponseWriter, r *http.Request) {
		sess := session.FromCtx(r)
		sess.Set(session.UserKey, uint(42))
		require.NoError(t, sess.Save(w))
	})
	cookie := sessionCookie(t, rec)

	roundTrip(t, cookie, func(w http.ResponseWriter, r *http.Request) {
		sess := session.FromCtx(r)
		userID, ok := sess.UserID()
		assert.True(t, ok)
		assert.Equal(t, uint(42), userID)
		assert.True(t, sess.Authenticated())
	})
}

func TestAnonymousSession(t *testing.T) {
	setupCache(t)

	roundTrip(t, nil, func(w http.ResponseWriter, r *http.Request) {
		sess := session.FromCtx(r)
		assert.False(t, sess.Authenticated())
		_, ok := sess.UserID()
		assert.False(t, ok)
	})
}

func TestFlashIsOneShot(t *testing.T) {
	setupCache(t)

	rec := roundTrip(t, nil, func(w http.ResponseWriter, r *http.Request) {
		sess := session.FromCtx(r)
		sess.Flash("success", "Login successful!")
		require.NoError(t, sess.Save(w))
	})
	cookie := sessionCookie(t, rec)

	rec = roundTrip(t, cookie, func(w http.ResponseWriter, r *http.Request) {
		sess := session.FromCtx(r)
		flash, ok := sess.GetFlash()
		require.True(t, ok)
		assert.Equal(t, "success", flash.Category)
		assert.Equal(t, "Login successful!", flash.Message)
		require.NoError(t, sess.Save(w))
	})
	cookie = sessionCookie(t, rec)

	roundTrip(t, cookie, func(w http.ResponseWriter, r *http.Request) {
		_, ok := session.FromCtx(r).GetFlash()
		assert.False(t, ok, "flash must not survive a second read")
	})
}

func TestInvalidateClearsIdentity(t *testing.T) {
	setupCache(t)

	rec := roundTrip(t, nil, func(w http.ResponseWriter, r *http.Request) {
		sess := session.FromCtx(r)
		sess.Set(session.UserKey, uint(7))
		require.NoError(t, sess.Save(w))
	})
	cookie := sessionCookie(t, rec)

	rec = roundTrip(t, cookie, func(w http.ResponseWriter, r *http.Request) {
		sess := session.FromCtx(r)
		require.True(t, sess.Authenticated())
		sess.Invalidate()
		require.NoError(t, sess.Save(w))
	})
	cookie = sessionCookie(t, rec)

	roundTrip(t, cookie, func(w http.ResponseWriter, r *http.Request) {
		assert.False(t, session.FromCtx(r).Authenticated())
	})
}
