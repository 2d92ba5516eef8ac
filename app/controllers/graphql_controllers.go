package controllers

import (
	"net/http"

	"github.com/graphql-go/graphql"

	"github.com/goldencrust/bakery/app/models"
	"github.com/goldencrust/bakery/app/services"
	"github.com/goldencrust/bakery/pkg/collection"
	"github.com/goldencrust/bakery/pkg/ctx"
	gqlschema "github.com/goldencrust/bakery/pkg/graphql"
)

// GraphQLController exposes the catalogue as a read-only GraphQL
// endpoint.
type GraphQLController struct {
	catalog *services.CatalogService
	schema  graphql.Schema
}

func NewGraphQLController() (*GraphQLController, error) {
	c := &GraphQLController{catalog: services.NewCatalogService()}

	productType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Product",
		Fields: graphql.Fields{
			"id":          &graphql.Field{Type: graphql.Int},
			"name":        &graphql.Field{Type: graphql.String},
			"description": &graphql.Field{Type: graphql.String},
			"price":       &graphql.Field{Type: graphql.Float},
			"variety":     &graphql.Field{Type: graphql.String},
			"imageUrl":    &graphql.Field{Type: graphql.String},
		},
	})

	rootQuery := graphql.NewObject(graphql.ObjectConfig{
		Name: "RootQuery",
		Fields: graphql.Fields{
			"products": &graphql.Field{
				Type: graphql.NewList(productType),
				Args: graphql.FieldConfigArgument{
					"variety": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: c.resolveProducts,
			},
		},
	})

	schema, err := gqlschema.NewSchema(rootQuery)
	if err != nil {
		return nil, err
	}
	c.schema = schema
	return c, nil
}

func (c *GraphQLController) resolveProducts(p graphql.ResolveParams) (interface{}, error) {
	products, err := c.catalog.List()
	if err != nil {
		return nil, err
	}

	if variety, ok := p.Args["variety"].(string); ok && variety != "" {
		products = collection.Filter(products, func(pr models.Product) bool {
			return pr.Variety == variety
		})
	}

	return collection.Map(products, func(pr models.Product) map[string]any {
		return map[string]any{
			"id":          pr.ID,
			"name":        pr.Name,
			"description": pr.Description,
			"price":       pr.Price,
			"variety":     pr.Variety,
			"imageUrl":    c.catalog.ImageURL(pr),
		}
	}), nil
}

type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

// Query executes a GraphQL request. Errors from the engine come back in
// the standard "errors" array with a 200 status, per convention.
func (c *GraphQLController) Query(cc *ctx.Context) {
	var req graphqlRequest

	switch cc.Method() {
	case http.MethodGet:
		req.Query = cc.Query("query")
	default:
		if errs, err := cc.ShouldBindJSON(&req); err != nil || len(errs) > 0 {
			cc.Error(http.StatusBadRequest, "malformed GraphQL request")
			return
		}
	}

	if req.Query == "" {
		cc.Error(http.StatusBadRequest, "missing query")
		return
	}

	result := graphql.Do(graphql.Params{
		Schema:         c.schema,
		RequestString:  req.Query,
		VariableValues: req.Variables,
		Context:        cc.Context(),
	})
	cc.JSON(http.StatusOK, result)
}
