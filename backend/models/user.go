package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username     string `gorm:"size:80;unique;not null" json:"username"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Email        string `gorm:"size:120;uniqueIndex" json:"email"`
	// Comma-joined, lower-cased, deduplicated keyword list produced by the
	// tendency normalizer. Never written directly by handlers.
	Tendency string `gorm:"type:text" json:"tendency"`
	// Attentiveness level in [0,1]; nil means not measured yet.
	FocusLevel *float64 `json:"focusLevel"`
	PhotoURL   string   `gorm:"size:255" json:"photoUrl"`
}

// EffectiveFocusLevel returns the stored focus level or the 0.5 default.
func (u *User) EffectiveFocusLevel() float64 {
	if u.FocusLevel == nil {
		return 0.5
	}
	return *u.FocusLevel
}
