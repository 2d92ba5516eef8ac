package controllers

import (
	"net/http"

	"github.com/goldencrust/bakery/app/services"
	"github.com/goldencrust/bakery/app/views"
	"github.com/goldencrust/bakery/pkg/logger"
	"github.com/goldencrust/bakery/pkg/session"
)

// ProfileController serves the account page. Routes are mounted behind
// RequireAuth, so a session user ID is always present here.
type ProfileController struct {
	service *services.AuthService
}

func NewProfileController() *ProfileController {
	return &ProfileController{service: services.NewAuthService()}
}

func (c *ProfileController) Show(w http.ResponseWriter, r *http.Request) {
	sess := session.FromCtx(r)
	userID, _ := sess.UserID()

	user, err := c.service.CurrentUser(userID)
	if err != nil {
		// Stale session referencing a deleted account.
		sess.Invalidate()
		redirectWithFlash(w, r, sess, "/login")
		return
	}

	views.Render(w, r, "profile", "Profile", map[string]any{"User": user})
}

func (c *ProfileController) Update(w http.ResponseWriter, r *http.Request) {
	sess := session.FromCtx(r)
	userID, _ := sess.UserID()

	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form data", http.StatusBadRequest)
		return
	}

	err := c.service.UpdateProfile(
		userID,
		r.PostFormValue("full_name"),
		r.PostFormValue("phone_number"),
		r.PostFormValue("shipping_address"),
	)
	if err != nil {
		logger.WithCtx(r.Context()).Error("profile update failed", "user_id", userID, "err", err)
		flashError(sess, err)
	} else {
		sess.Flash("success", "Your profile has been updated successfully!")
	}
	redirectWithFlash(w, r, sess, "/profile")
}
