package controllers

import (
	"net/http"

	"github.com/goldencrust/bakery/app/models"
	"github.com/goldencrust/bakery/app/services"
	"github.com/goldencrust/bakery/app/views"
	"github.com/goldencrust/bakery/pkg/collection"
	"github.com/goldencrust/bakery/pkg/logger"
)

// productView is a Product with its image resolved to an absolute URL.
type productView struct {
	ID          uint
	Name        string
	Description string
	Price       float64
	Variety     string
	ImageURL    string
}

type CatalogController struct {
	catalog *services.CatalogService
}

func NewCatalogController() *CatalogController {
	return &CatalogController{catalog: services.NewCatalogService()}
}

func (c *CatalogController) Products(w http.ResponseWriter, r *http.Request) {
	products, err := c.catalog.List()
	if err != nil {
		logger.WithCtx(r.Context()).Error("catalog: list failed", "err", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	items := collection.Map(products, func(p models.Product) productView {
		return productView{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price,
			Variety:     p.Variety,
			ImageURL:    c.catalog.ImageURL(p),
		}
	})

	views.Render(w, r, "products", "Our Breads", map[string]any{"Products": items})
}
