package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/goldencrust/bakery/app/services"
	"github.com/goldencrust/bakery/app/views"
)

type BlogController struct {
	blog *services.BlogService
}

func NewBlogController() *BlogController {
	return &BlogController{blog: services.NewBlogService()}
}

func (c *BlogController) Index(w http.ResponseWriter, r *http.Request) {
	views.Render(w, r, "blog", "Blog", map[string]any{
		"Posts": c.blog.List(),
	})
}

// Show renders a single post. An unknown slug falls back to the blog
// index with an inline error rather than a bare 404 page.
func (c *BlogController) Show(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	post, ok := c.blog.BySlug(slug)
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		views.Render(w, r, "blog", "Blog", map[string]any{
			"Posts":        c.blog.List(),
			"ErrorMessage": "Blog post not found.",
		})
		return
	}

	views.Render(w, r, "blog_post", post.Title, map[string]any{"Post": post})
}
