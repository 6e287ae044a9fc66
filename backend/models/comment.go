package models

import "gorm.io/gorm"

type Comment struct {
	gorm.Model
	Text    string `gorm:"type:text;not null" json:"text"`
	UserID  uint   `gorm:"not null;index" json:"userId"`
	VideoID uint   `gorm:"not null;index" json:"videoId"`

	User  User  `json:"-"`
	Video Video `json:"-"`
}
