package services

import (
	"strings"
	"time"

	"github.com/goldencrust/bakery/app/models"
	"github.com/goldencrust/bakery/app/repositories"
	"github.com/goldencrust/bakery/pkg/orm"
	"github.com/goldencrust/bakery/pkg/storage"
)

const (
	catalogCacheKey = "bakery:catalog:all"
	catalogCacheTTL = 5 * time.Minute
)

// CatalogService lists the bread catalogue for display.
type CatalogService struct {
	products *repositories.ProductRepository
}

func NewCatalogService() *CatalogService {
	return &CatalogService{products: repositories.NewProductRepository()}
}

// List returns all products ordered by id. Results are cached briefly;
// the catalogue changes only when a seeder or back-office tool writes.
func (s *CatalogService) List() ([]models.Product, error) {
	var products []models.Product
	err := orm.DB().Model(&models.Product{}).Order("id").
		Cache(catalogCacheKey, catalogCacheTTL, &products)
	return products, err
}

// ImageURL resolves a product's image to an absolute URL. Seeded
// products may carry full URLs; uploaded or defaulted images are paths
// on the storage disk.
func (s *CatalogService) ImageURL(p models.Product) string {
	path := p.ImageURL
	if path == "" {
		path = models.PlaceholderImage
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return storage.URL(path)
}
