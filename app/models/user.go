package models

import "gorm.io/gorm"

// User is a storefront customer account. Optional contact fields are
// filled in from the profile page after registration.
type User struct {
	gorm.Model
	Username        string `gorm:"uniqueIndex;size:80;not null"  json:"username"`
	Email           string `gorm:"uniqueIndex;size:120;not null" json:"email"`
	PasswordHash    string `gorm:"size:128;not null"             json:"-"` // bcrypt digest, never serialised
	FullName        string `gorm:"size:100"                      json:"full_name"`
	ShippingAddress string `gorm:"size:200"                      json:"shipping_address"`
	PhoneNumber     string `gorm:"size:20"                       json:"phone_number"`

	Orders    []Order    `gorm:"foreignKey:UserID" json:"-"`
	BlogPosts []BlogPost `gorm:"foreignKey:UserID" json:"-"`
}
