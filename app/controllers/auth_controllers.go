package controllers

import (
	"net/http"
	"strings"

	"github.com/goldencrust/bakery/app/services"
	"github.com/goldencrust/bakery/app/views"
	"github.com/goldencrust/bakery/pkg/logger"
	"github.com/goldencrust/bakery/pkg/session"
)

// AuthController handles the registration and login forms.
type AuthController struct {
	service *services.AuthService
}

func NewAuthController() *AuthController {
	return &AuthController{service: services.NewAuthService()}
}

// flashError records err as an error flash. Service failures carry a
// user-presentable message; anything else gets a generic one.
func flashError(sess *session.Session, err error) {
	if svcErr, ok := err.(*services.Error); ok {
		sess.Flash(svcErr.Category(), svcErr.Message)
		return
	}
	sess.Flash("error", "Something went wrong. Please try again.")
}

func redirectWithFlash(w http.ResponseWriter, r *http.Request, sess *session.Session, target string) {
	if err := sess.Save(w); err != nil {
		logger.WithCtx(r.Context()).Error("session save failed", "err", err)
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// safeNext keeps post-login redirects on this site.
func safeNext(next string) string {
	if strings.HasPrefix(next, "/") && !strings.HasPrefix(next, "//") {
		return next
	}
	return ""
}

func (c *AuthController) ShowRegister(w http.ResponseWriter, r *http.Request) {
	if session.FromCtx(r).Authenticated() {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	views.Render(w, r, "register", "Register", nil)
}

func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	sess := session.FromCtx(r)
	if sess.Authenticated() {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form data", http.StatusBadRequest)
		return
	}

	_, err := c.service.Register(services.RegisterInput{
		Username:        r.PostFormValue("username"),
		Email:           r.PostFormValue("email"),
		Password:        r.PostFormValue("password"),
		ConfirmPassword: r.PostFormValue("confirm_password"),
	})
	if err != nil {
		flashError(sess, err)
		redirectWithFlash(w, r, sess, "/register")
		return
	}

	sess.Flash("success", "Your account has been created! You can now log in.")
	redirectWithFlash(w, r, sess, "/login")
}

func (c *AuthController) ShowLogin(w http.ResponseWriter, r *http.Request) {
	if session.FromCtx(r).Authenticated() {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	views.Render(w, r, "login", "Login", map[string]any{
		"Next": safeNext(r.URL.Query().Get("next")),
	})
}

func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	sess := session.FromCtx(r)
	if sess.Authenticated() {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form data", http.StatusBadRequest)
		return
	}

	user, err := c.service.Login(r.PostFormValue("identifier"), r.PostFormValue("password"))
	if err != nil {
		flashError(sess, err)
		redirectWithFlash(w, r, sess, "/login")
		return
	}

	sess.Set(session.UserKey, user.ID)
	sess.Flash("success", "Login successful!")

	target := safeNext(r.URL.Query().Get("next"))
	if target == "" {
		target = "/profile"
	}
	redirectWithFlash(w, r, sess, target)
}

func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	sess := session.FromCtx(r)
	sess.Invalidate()
	sess.Flash("success", "You have been logged out.")
	redirectWithFlash(w, r, sess, "/")
}
