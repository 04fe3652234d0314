package model

import "time"

// GalleryImage is one photo in the storefront gallery, ordered by Position.
type GalleryImage struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	ImageURL  string    `gorm:"size:512;not null" json:"image_url"`
	Title     string    `gorm:"size:256" json:"title"`
	Position  int       `gorm:"not null;default:0" json:"order"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}
