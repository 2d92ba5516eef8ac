package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/goldencrust/bakery/pkg/auth"
	"github.com/goldencrust/bakery/pkg/response"
	"github.com/goldencrust/bakery/pkg/session"
)

// RequireAuth gates browser routes: anonymous requests are redirected to
// the login page, carrying the originally requested path in ?next= so the
// login handler can send the user back after authenticating.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := session.FromCtx(r)
		if !sess.Authenticated() {
			dest := "/login?next=" + url.QueryEscape(r.URL.RequestURI())
			http.Redirect(w, r, dest, http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// APIAuth gates JSON API routes with a bearer token.
func APIAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		if token == "" {
			response.Unauthorized(w)
			return
		}

		claims, err := auth.ValidateToken(token)
		if err != nil {
			response.Unauthorized(w)
			return
		}

		next.ServeHTTP(w, r.WithContext(auth.WithClaims(r.Context(), claims)))
	})
}
