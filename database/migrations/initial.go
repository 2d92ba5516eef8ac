package migrations

import (
	"github.com/goldencrust/bakery/app/models"
	"github.com/goldencrust/bakery/pkg/migration"
	"gorm.io/gorm"
)

func init() {
	migration.Register("20260101000000_create_users_table", &CreateUsersTable{})
	migration.Register("20260101000001_create_products_table", &CreateProductsTable{})
	migration.Register("20260101000002_create_orders_table", &CreateOrdersTable{})
	migration.Register("20260101000003_create_order_items_table", &CreateOrderItemsTable{})
	migration.Register("20260101000004_create_blog_posts_table", &CreateBlogPostsTable{})
}

// -------- 0001: users --------

type CreateUsersTable struct{}

func (m *CreateUsersTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{})
}

func (m *CreateUsersTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("users")
}

// -------- 0002: products --------

type CreateProductsTable struct{}

func (m *CreateProductsTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Product{})
}

func (m *CreateProductsTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("products")
}

// -------- 0003: orders --------

type CreateOrdersTable struct{}

func (m *CreateOrdersTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Order{})
}

func (m *CreateOrdersTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("orders")
}

// -------- 0004: order items --------

type CreateOrderItemsTable struct{}

func (m *CreateOrderItemsTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.OrderItem{})
}

func (m *CreateOrderItemsTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("order_items")
}

// -------- 0005: blog posts --------

type CreateBlogPostsTable struct{}

func (m *CreateBlogPostsTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.BlogPost{})
}

func (m *CreateBlogPostsTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("blog_posts")
}
