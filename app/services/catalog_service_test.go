package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goldencrust/bakery/app/models"
	"github.com/goldencrust/bakery/app/services"
	"github.com/goldencrust/bakery/pkg/database"
	"github.com/goldencrust/bakery/pkg/storage"
)

func seedProduct(t *testing.T, name string, price float64) models.Product {
	t.Helper()
	p := models.Product{Name: name, Price: price}
	require.NoError(t, database.DB.Create(&p).Error)
	return p
}

func TestListOrderedByID(t *testing.T) {
	setupDB(t)
	svc := services.NewCatalogService()

	// Insert out of alphabetical order so id ordering is observable.
	seedProduct(t, "Rye Resilience", 6.50)
	seedProduct(t, "Ciabatta Cloud", 5.50)
	seedProduct(t, "Classic Sourdough", 7.00)

	products, err := svc.List()
	require.NoError(t, err)
	require.Len(t, products, 3)
	assert.Equal(t, "Rye Resilience", products[0].Name)
	assert.Equal(t, "Ciabatta Cloud", products[1].Name)
	assert.Equal(t, "Classic Sourdough", products[2].Name)
}

func TestListUsesCache(t *testing.T) {
	setupDB(t)
	installORMCache(t)
	svc := services.NewCatalogService()

	seedProduct(t, "Classic Sourdough", 7.00)

	first, err := svc.List()
	require.NoError(t, err)
	require.Len(t, first, 1)

	// A row added behind the cache's back is invisible until the TTL
	// lapses.
	seedProduct(t, "French Baguette", 5.00)

	second, err := svc.List()
	require.NoError(t, err)
	assert.Len(t, second, 1)
}

func TestProductDefaultsOnSave(t *testing.T) {
	setupDB(t)

	p := models.Product{Name: "Mystery Loaf", Price: 4.00}
	require.NoError(t, database.DB.Create(&p).Error)
	assert.Equal(t, models.PlaceholderImage, p.ImageURL)

	bad := models.Product{Name: "Free Bread", Price: -1}
	err := database.DB.Create(&bad).Error
	assert.ErrorIs(t, err, models.ErrNegativePrice)
}

func TestImageURLResolution(t *testing.T) {
	setupDB(t)
	storage.Connect()
	svc := services.NewCatalogService()

	absolute := models.Product{ImageURL: "https://images.unsplash.com/photo-123"}
	assert.Equal(t, "https://images.unsplash.com/photo-123", svc.ImageURL(absolute))

	relative := models.Product{ImageURL: "products/rye.jpg"}
	assert.Contains(t, svc.ImageURL(relative), "/products/rye.jpg")

	blank := models.Product{}
	assert.Contains(t, svc.ImageURL(blank), models.PlaceholderImage)
}
