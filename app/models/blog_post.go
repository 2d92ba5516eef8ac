package models

import (
	"time"

	"gorm.io/gorm"
)

// BlogPost is an article authored by a user, looked up by slug.
type BlogPost struct {
	gorm.Model
	Slug        string    `gorm:"uniqueIndex;size:100;not null" json:"slug"`
	Title       string    `gorm:"size:150;not null"             json:"title"`
	ContentHTML string    `gorm:"type:text;not null"            json:"content_html"`
	PublishDate time.Time `gorm:"not null"                      json:"publish_date"`
	UserID      uint      `gorm:"not null;index"                json:"user_id"`
}

func (p *BlogPost) BeforeCreate(_ *gorm.DB) error {
	if p.PublishDate.IsZero() {
		p.PublishDate = time.Now().UTC()
	}
	return nil
}
