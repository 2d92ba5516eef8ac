package repositories

import (
	"time"

	"github.com/goldencrust/bakery/app/models"
	"github.com/goldencrust/bakery/pkg/metrics"
	"github.com/goldencrust/bakery/pkg/orm"
)

// UserRepository handles database operations for User.
type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

// FindByID looks up a user by primary key.
func (r *UserRepository) FindByID(id uint) (models.User, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	var user models.User
	err := orm.DB().Model(&models.User{}).Where("id = ?", id).First(&user)
	return user, err
}

// FindByIdentifier looks up a user whose username OR email matches the
// single identifier string the login form submits.
func (r *UserRepository) FindByIdentifier(identifier string) (models.User, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	var user models.User
	err := orm.DB().Model(&models.User{}).
		Where("username = ?", identifier).
		Or("email = ?", identifier).
		First(&user)
	return user, err
}

// ExistsByUsername reports whether a user already holds the username.
func (r *UserRepository) ExistsByUsername(username string) (bool, error) {
	defer metrics.ObserveDBQuery("select", time.Now())
	return orm.DB().Model(&models.User{}).Where("username = ?", username).Exists()
}

// ExistsByEmail reports whether a user already holds the email address.
func (r *UserRepository) ExistsByEmail(email string) (bool, error) {
	defer metrics.ObserveDBQuery("select", time.Now())
	return orm.DB().Model(&models.User{}).Where("email = ?", email).Exists()
}

// Create persists a new user record inside a transaction.
func (r *UserRepository) Create(user *models.User) error {
	defer metrics.ObserveDBQuery("insert", time.Now())

	return orm.DB().Transaction(func(tx *orm.Query) error {
		return tx.Create(user)
	})
}

// UpdateProfile overwrites the three optional profile fields. Empty
// strings are written as-is — blank input clears a stored value.
func (r *UserRepository) UpdateProfile(id uint, fullName, phoneNumber, shippingAddress string) error {
	defer metrics.ObserveDBQuery("update", time.Now())

	return orm.DB().Transaction(func(tx *orm.Query) error {
		return tx.Model(&models.User{}).Where("id = ?", id).Updates(map[string]interface{}{
			"full_name":        fullName,
			"phone_number":     phoneNumber,
			"shipping_address": shippingAddress,
		})
	})
}
