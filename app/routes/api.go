package routes

import (
	"github.com/goldencrust/bakery/app/controllers"
	"github.com/goldencrust/bakery/pkg/ctx"
	"github.com/goldencrust/bakery/pkg/middleware"
	"github.com/goldencrust/bakery/pkg/router"
)

// RegisterAPI mounts the JSON and GraphQL surfaces under /api.
func RegisterAPI(r *router.Router) {
	apiController := controllers.NewAPIController()
	gqlController, err := controllers.NewGraphQLController()
	if err != nil {
		panic("routes: graphql schema: " + err.Error())
	}

	api := r.Group("/api")
	api.Post("/login", "api.login", ctx.Wrap(apiController.Login))
	api.Post("/register", "api.register", ctx.Wrap(apiController.Register))
	api.Get("/products", "api.products", ctx.Wrap(apiController.Products))
	api.Get("/graphql", "api.graphql", ctx.Wrap(gqlController.Query))
	api.Post("/graphql", "api.graphql.post", ctx.Wrap(gqlController.Query))

	protected := api.Group("", middleware.APIAuth)
	protected.Get("/profile", "api.profile", ctx.Wrap(apiController.Profile))
}
