package repositories_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goldencrust/bakery/app/models"
	"github.com/goldencrust/bakery/app/repositories"
	"github.com/goldencrust/bakery/pkg/database"
)

func setupDB(t *testing.T) {
	t.Helper()

	db, err := database.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Product{}, &models.Order{}, &models.OrderItem{},
	))
	database.DB = db
}

func seedCatalog(t *testing.T) (models.Product, models.Product) {
	t.Helper()

	sourdough := models.Product{Name: "Classic Sourdough", Price: 7.00}
	baguette := models.Product{Name: "French Baguette", Price: 5.00}
	require.NoError(t, database.DB.Create(&sourdough).Error)
	require.NoError(t, database.DB.Create(&baguette).Error)
	return sourdough, baguette
}

func TestCreateOrderSnapshotsPrices(t *testing.T) {
	setupDB(t)
	sourdough, baguette := seedCatalog(t)
	repo := repositories.NewOrderRepository()

	order, err := repo.Create(1, []repositories.Line{
		{ProductID: sourdough.ID, Quantity: 2},
		{ProductID: baguette.ID, Quantity: 1},
	})
	require.NoError(t, err)
	assert.Equal(t, models.OrderPending, order.Status)
	assert.InDelta(t, 19.00, order.TotalAmount, 0.001)
	require.Len(t, order.Items, 2)
	assert.InDelta(t, 7.00, order.Items[0].PriceAtPurchase, 0.001)

	// Catalogue price changes must not touch the frozen line price.
	require.NoError(t, database.DB.Model(&models.Product{}).
		Where("id = ?", sourdough.ID).Update("price", 9.99).Error)

	loaded, err := repo.FindByID(order.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Items, 2)
	assert.InDelta(t, 7.00, loaded.Items[0].PriceAtPurchase, 0.001)
}

func TestCreateOrderRollsBackOnUnknownProduct(t *testing.T) {
	setupDB(t)
	sourdough, _ := seedCatalog(t)
	repo := repositories.NewOrderRepository()

	_, err := repo.Create(1, []repositories.Line{
		{ProductID: sourdough.ID, Quantity: 1},
		{ProductID: 9999, Quantity: 1},
	})
	require.Error(t, err)

	var count int64
	require.NoError(t, database.DB.Model(&models.Order{}).Count(&count).Error)
	assert.Zero(t, count, "a failed line must leave no partial order behind")
	require.NoError(t, database.DB.Model(&models.OrderItem{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestOrdersForUserNewestFirst(t *testing.T) {
	setupDB(t)
	sourdough, _ := seedCatalog(t)
	repo := repositories.NewOrderRepository()

	first, err := repo.Create(7, []repositories.Line{{ProductID: sourdough.ID, Quantity: 1}})
	require.NoError(t, err)
	second, err := repo.Create(7, []repositories.Line{{ProductID: sourdough.ID, Quantity: 3}})
	require.NoError(t, err)

	orders, err := repo.ForUser(7)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, second.ID, orders[0].ID)
	assert.Equal(t, first.ID, orders[1].ID)
}

func TestUpdateStatusRejectsUnknownValues(t *testing.T) {
	setupDB(t)
	sourdough, _ := seedCatalog(t)
	repo := repositories.NewOrderRepository()

	order, err := repo.Create(1, []repositories.Line{{ProductID: sourdough.ID, Quantity: 1}})
	require.NoError(t, err)

	require.NoError(t, repo.UpdateStatus(order.ID, models.OrderShipped))

	err = repo.UpdateStatus(order.ID, "teleported")
	require.Error(t, err)

	loaded, err := repo.FindByID(order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderShipped, loaded.Status)
}
