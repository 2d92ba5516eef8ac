package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Order statuses. The set is closed; BeforeSave rejects anything else.
const (
	OrderPending    = "Pending"
	OrderProcessing = "Processing"
	OrderShipped    = "Shipped"
	OrderDelivered  = "Delivered"
	OrderCancelled  = "Cancelled"
)

// ValidOrderStatus reports whether s is one of the enumerated statuses.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderPending, OrderProcessing, OrderShipped, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

// Order is a customer purchase, owning its line items.
type Order struct {
	gorm.Model
	OrderDate   time.Time   `gorm:"not null"                        json:"order_date"`
	UserID      uint        `gorm:"not null;index"                  json:"user_id"`
	TotalAmount float64     `gorm:"not null"                        json:"total_amount"`
	Status      string      `gorm:"size:50;not null;default:Pending" json:"status"`
	Items       []OrderItem `gorm:"foreignKey:OrderID"              json:"items"`
}

func (o *Order) BeforeCreate(_ *gorm.DB) error {
	if o.OrderDate.IsZero() {
		o.OrderDate = time.Now().UTC()
	}
	if o.Status == "" {
		o.Status = OrderPending
	}
	return nil
}

func (o *Order) BeforeSave(_ *gorm.DB) error {
	if o.Status == "" {
		return nil // BeforeCreate fills the default
	}
	if !ValidOrderStatus(o.Status) {
		return fmt.Errorf("invalid order status %q", o.Status)
	}
	return nil
}

// OrderItem is one catalogue line of an order. PriceAtPurchase is a
// frozen snapshot of the product price at checkout time; later catalogue
// price changes never touch it.
type OrderItem struct {
	gorm.Model
	OrderID         uint    `gorm:"not null;index" json:"order_id"`
	ProductID       uint    `gorm:"not null;index" json:"product_id"`
	Quantity        int     `gorm:"not null;default:1" json:"quantity"`
	PriceAtPurchase float64 `gorm:"not null"       json:"price_at_purchase"`
}

func (i *OrderItem) BeforeCreate(_ *gorm.DB) error {
	if i.Quantity == 0 {
		i.Quantity = 1
	}
	if i.Quantity < 0 {
		return fmt.Errorf("order item quantity must be positive, got %d", i.Quantity)
	}
	return nil
}
