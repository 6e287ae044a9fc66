package models

import "gorm.io/gorm"

type Video struct {
	gorm.Model
	Title       string `gorm:"size:100;not null" json:"title"`
	Description string `gorm:"type:text;not null" json:"description"`
	URL         string `gorm:"size:200;not null" json:"url"`
	// Free-text keyword string, comma separated.
	Tags     string `gorm:"size:100" json:"tags"`
	ImageURL string `gorm:"size:200" json:"imageUrl"`
	Likes    int    `gorm:"default:0;not null" json:"likes"`
	Dislikes int    `gorm:"default:0;not null" json:"dislikes"`
	// Structured categorization against the taxonomy; empty when unclassified.
	Board string `gorm:"size:50;index" json:"board"`
	Topic string `gorm:"size:100;index" json:"topic"`
}
