package repositories

import (
	"fmt"
	"time"

	"github.com/goldencrust/bakery/app/models"
	"github.com/goldencrust/bakery/pkg/metrics"
	"github.com/goldencrust/bakery/pkg/orm"
)

// OrderRepository handles database operations for Order and OrderItem.
// There is no storefront checkout yet; this is the storage contract the
// schema promises, exercised by back-office tooling and tests.
type OrderRepository struct{}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

// Line is one requested product/quantity pair for a new order.
type Line struct {
	ProductID uint
	Quantity  int
}

// Create inserts an order and its items in a single transaction,
// freezing each line's price_at_purchase from the current catalogue
// price. Any failure rolls the whole order back.
func (r *OrderRepository) Create(userID uint, lines []Line) (models.Order, error) {
	defer metrics.ObserveDBQuery("insert", time.Now())

	var order models.Order
	err := orm.DB().Transaction(func(tx *orm.Query) error {
		order = models.Order{UserID: userID, Status: models.OrderPending}

		var total float64
		items := make([]models.OrderItem, 0, len(lines))
		for _, line := range lines {
			var product models.Product
			if err := tx.Model(&models.Product{}).Where("id = ?", line.ProductID).First(&product); err != nil {
				return fmt.Errorf("order line product %d: %w", line.ProductID, err)
			}

			qty := line.Quantity
			if qty < 1 {
				qty = 1
			}

			items = append(items, models.OrderItem{
				ProductID:       product.ID,
				Quantity:        qty,
				PriceAtPurchase: product.Price,
			})
			total += product.Price * float64(qty)
		}

		order.TotalAmount = total
		if err := tx.Create(&order); err != nil {
			return err
		}

		for i := range items {
			items[i].OrderID = order.ID
			if err := tx.Create(&items[i]); err != nil {
				return err
			}
		}
		order.Items = items
		return nil
	})

	return order, err
}

// FindByID looks up an order with its items.
func (r *OrderRepository) FindByID(id uint) (models.Order, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	var order models.Order
	if err := orm.DB().Model(&models.Order{}).Where("id = ?", id).First(&order); err != nil {
		return order, err
	}

	err := orm.DB().Model(&models.OrderItem{}).Where("order_id = ?", id).Order("id").Get(&order.Items)
	return order, err
}

// ForUser returns a user's orders, newest first.
func (r *OrderRepository) ForUser(userID uint) ([]models.Order, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	var orders []models.Order
	err := orm.DB().Model(&models.Order{}).Where("user_id = ?", userID).Order("id desc").Get(&orders)
	return orders, err
}

// UpdateStatus moves an order to a new status within the enumerated set.
func (r *OrderRepository) UpdateStatus(id uint, status string) error {
	defer metrics.ObserveDBQuery("update", time.Now())

	if !models.ValidOrderStatus(status) {
		return fmt.Errorf("invalid order status %q", status)
	}

	return orm.DB().Transaction(func(tx *orm.Query) error {
		return tx.Model(&models.Order{}).Where("id = ?", id).Updates(map[string]interface{}{
			"status": status,
		})
	})
}
