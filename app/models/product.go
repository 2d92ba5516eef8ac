package models

import (
	"errors"

	"gorm.io/gorm"
)

// PlaceholderImage is served for products without their own photo.
const PlaceholderImage = "products/default_product.jpg"

// ErrNegativePrice rejects writes that would persist a negative price.
var ErrNegativePrice = errors.New("product price must not be negative")

// Product is one item in the bread catalogue.
type Product struct {
	gorm.Model
	Name        string  `gorm:"uniqueIndex;size:100;not null" json:"name"`
	Description string  `gorm:"type:text;not null"            json:"description"`
	Price       float64 `gorm:"not null"                      json:"price"`
	Variety     string  `gorm:"size:50"                       json:"variety"` // e.g. Sourdough, Whole Wheat
	ImageURL    string  `gorm:"size:200"                      json:"image_url"`
}

// BeforeSave enforces the non-negative price invariant and the image
// placeholder default at the persistence boundary.
func (p *Product) BeforeSave(_ *gorm.DB) error {
	if p.Price < 0 {
		return ErrNegativePrice
	}
	if p.ImageURL == "" {
		p.ImageURL = PlaceholderImage
	}
	return nil
}
