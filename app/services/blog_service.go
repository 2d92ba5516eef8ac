package services

import (
	"time"

	"github.com/goldencrust/bakery/pkg/collection"
)

// BlogEntry is a rendered blog article. The blog is editorial content
// maintained alongside the code rather than user-generated data, so the
// entries live here instead of in the database.
type BlogEntry struct {
	Slug        string
	Title       string
	PublishDate time.Time
	ImageURL    string
	ContentHTML string
}

var blogEntries = map[string]BlogEntry{
	"the-secret-to-perfect-sourdough": {
		Slug:        "the-secret-to-perfect-sourdough",
		Title:       "The Secret to Perfect Sourdough",
		PublishDate: time.Date(2023, time.October, 27, 0, 0, 0, 0, time.UTC),
		ImageURL:    "https://via.placeholder.com/800x400/F9A825/3E2723?text=Perfect+Sourdough",
		ContentHTML: "<p>This is the full content for 'The Secret to Perfect Sourdough'.</p><p>Lorem ipsum dolor sit amet, consectetur adipiscing elit. Suspendisse varius enim in eros elementum tristique. Duis cursus, mi quis viverra ornare, eros dolor interdum nulla, ut commodo diam libero vitae erat.</p>",
	},
	"baking-with-autumn-flavors": {
		Slug:        "baking-with-autumn-flavors",
		Title:       "Baking with Autumn Flavors",
		PublishDate: time.Date(2023, time.October, 22, 0, 0, 0, 0, time.UTC),
		ImageURL:    "https://via.placeholder.com/800x400/5D4037/FFF8E1?text=Autumn+Baking",
		ContentHTML: "<p>This is the full content for 'Baking with Autumn Flavors'.</p><p>Embrace the season with our favorite fall recipes, featuring pumpkin, apple, and warm spices. Perfect for a cozy weekend treat.</p>",
	},
	"meet-the-baker-marias-story": {
		Slug:        "meet-the-baker-marias-story",
		Title:       "Meet the Baker: Maria's Story",
		PublishDate: time.Date(2023, time.October, 15, 0, 0, 0, 0, time.UTC),
		ImageURL:    "https://via.placeholder.com/800x400/E53935/FFFFFF?text=Meet+Maria",
		ContentHTML: "<p>This is the full content for 'Meet the Baker: Maria's Story'.</p><p>Get to know our head baker, Maria, and her journey into the world of artisan bread making. Her passion is an inspiration to us all!</p>",
	},
	"benefits-of-whole-grains": {
		Slug:        "benefits-of-whole-grains",
		Title:       "The Benefits of Whole Grains",
		PublishDate: time.Date(2023, time.October, 10, 0, 0, 0, 0, time.UTC),
		ImageURL:    "https://via.placeholder.com/800x400/FFF8E1/212121?text=Healthy+Grains+Post",
		ContentHTML: "<p>This is the full content for 'The Benefits of Whole Grains'.</p><p>Learn about the nutritional advantages of incorporating more whole grains into your diet, and discover our tastiest whole grain breads.</p>",
	},
}

// BlogService serves the editorial blog entries.
type BlogService struct{}

func NewBlogService() *BlogService { return &BlogService{} }

// List returns all entries, newest first.
func (s *BlogService) List() []BlogEntry {
	entries := make([]BlogEntry, 0, len(blogEntries))
	for _, e := range blogEntries {
		entries = append(entries, e)
	}
	return collection.SortBy(entries, func(a, b BlogEntry) bool {
		return a.PublishDate.After(b.PublishDate)
	})
}

// BySlug returns the entry for slug, or false when none exists.
func (s *BlogService) BySlug(slug string) (BlogEntry, bool) {
	e, ok := blogEntries[slug]
	return e, ok
}
