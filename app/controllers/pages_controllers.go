package controllers

import (
	"net/http"

	"github.com/goldencrust/bakery/app/views"
)

// PagesController serves the static storefront pages.
type PagesController struct{}

func NewPagesController() *PagesController { return &PagesController{} }

func (c *PagesController) Index(w http.ResponseWriter, r *http.Request) {
	views.Render(w, r, "index", "Home", nil)
}

// Cart is a placeholder page; online ordering is not live yet.
func (c *PagesController) Cart(w http.ResponseWriter, r *http.Request) {
	views.Render(w, r, "cart", "Cart", nil)
}
