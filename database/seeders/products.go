package seeders

import (
	"gorm.io/gorm"

	"github.com/goldencrust/bakery/app/models"
)

func init() {
	Register("products", SeedProducts)
}

// SeedProducts inserts the demonstration catalogue. Re-running it is
// safe: products already present by name are skipped.
func SeedProducts(db *gorm.DB) error {
	products := []models.Product{
		{
			Name:        "Classic Sourdough",
			Description: "Traditional sourdough with a crisp crust and tangy flavor. Made with organic flour and a long fermentation process.",
			Price:       7.00,
			Variety:     "Sourdough",
			ImageURL:    "https://images.unsplash.com/photo-1608198093002-ad4e005484ec",
		},
		{
			Name:        "Whole Wheat Wonder",
			Description: "Nutritious whole wheat bread packed with fiber and natural goodness. Hearty and wholesome.",
			Price:       6.00,
			Variety:     "Whole Wheat",
			ImageURL:    "https://images.unsplash.com/photo-1549931319-a545dcf3bc73",
		},
		{
			Name:        "Multigrain Medley",
			Description: "A hearty blend of grains and seeds (flax, sesame, sunflower) for maximum flavor and texture.",
			Price:       7.50,
			Variety:     "Multigrain",
			ImageURL:    "https://images.unsplash.com/photo-1509440159596-0249088772ff",
		},
		{
			Name:        "French Baguette",
			Description: "Classic French baguette with a crispy crust and soft, chewy interior. Perfect for sandwiches or with cheese.",
			Price:       5.00,
			Variety:     "Artisan",
			ImageURL:    "https://images.unsplash.com/photo-1517686469429-8bdb88b9f907",
		},
		{
			Name:        "Rye Resilience",
			Description: "A dark and flavorful rye bread with a dense texture. Great for savory pairings.",
			Price:       6.50,
			Variety:     "Rye",
			ImageURL:    "https://via.placeholder.com/300x200.png?text=Rye+Resilience",
		},
		{
			Name:        "Ciabatta Cloud",
			Description: "An Italian white bread with a light, airy crumb and a slightly crisp crust. Ideal for dipping in olive oil.",
			Price:       5.50,
			Variety:     "Artisan",
			ImageURL:    "https://via.placeholder.com/300x200.png?text=Ciabatta+Cloud",
		},
	}

	for _, p := range products {
		var count int64
		if err := db.Model(&models.Product{}).Where("name = ?", p.Name).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		if err := db.Create(&p).Error; err != nil {
			return err
		}
	}
	return nil
}
