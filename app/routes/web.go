package routes

import (
	"github.com/goldencrust/bakery/app/controllers"
	"github.com/goldencrust/bakery/pkg/middleware"
	"github.com/goldencrust/bakery/pkg/router"
)

// RegisterWeb mounts the HTML storefront.
func RegisterWeb(r *router.Router) {
	pages := controllers.NewPagesController()
	catalog := controllers.NewCatalogController()
	blog := controllers.NewBlogController()
	auth := controllers.NewAuthController()
	profile := controllers.NewProfileController()

	r.Get("/", "pages.index", pages.Index)
	r.Get("/products", "catalog.products", catalog.Products)
	r.Get("/blog", "blog.index", blog.Index)
	r.Get("/blog/{slug}", "blog.show", blog.Show)
	r.Get("/cart", "pages.cart", pages.Cart)

	r.Get("/register", "auth.register.show", auth.ShowRegister)
	r.Post("/register", "auth.register", auth.Register)
	r.Get("/login", "auth.login.show", auth.ShowLogin)
	r.Post("/login", "auth.login", auth.Login)

	protected := r.Group("", middleware.RequireAuth)
	protected.Get("/logout", "auth.logout", auth.Logout)
	protected.Get("/profile", "profile.show", profile.Show)
	protected.Post("/profile", "profile.update", profile.Update)
}
