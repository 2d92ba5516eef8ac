package repositories

import (
	"time"

	"github.com/goldencrust/bakery/app/models"
	"github.com/goldencrust/bakery/pkg/metrics"
	"github.com/goldencrust/bakery/pkg/orm"
)

// ProductRepository handles database operations for Product.
type ProductRepository struct{}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

// All returns every product ordered by id, so listings are stable
// across requests and databases.
func (r *ProductRepository) All() ([]models.Product, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	var products []models.Product
	err := orm.DB().Model(&models.Product{}).Order("id").Get(&products)
	return products, err
}

// FindByID looks up a product by primary key.
func (r *ProductRepository) FindByID(id uint) (models.Product, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	var product models.Product
	err := orm.DB().Model(&models.Product{}).Where("id = ?", id).First(&product)
	return product, err
}

// FindByName looks up a product by its unique name.
func (r *ProductRepository) FindByName(name string) (models.Product, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	var product models.Product
	err := orm.DB().Model(&models.Product{}).Where("name = ?", name).First(&product)
	return product, err
}

// ExistsByName reports whether a product with that name is already in
// the catalogue.
func (r *ProductRepository) ExistsByName(name string) (bool, error) {
	defer metrics.ObserveDBQuery("select", time.Now())
	return orm.DB().Model(&models.Product{}).Where("name = ?", name).Exists()
}

// Create persists a new product.
func (r *ProductRepository) Create(product *models.Product) error {
	defer metrics.ObserveDBQuery("insert", time.Now())

	return orm.DB().Transaction(func(tx *orm.Query) error {
		return tx.Create(product)
	})
}
