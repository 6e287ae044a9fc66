package models

import (
	"time"

	"gorm.io/gorm"
)

// WatchHistory records one watch session. Entries are append-only: multiple
// rows per (user, video) pair are expected and each contributes independently
// to aggregate statistics.
type WatchHistory struct {
	gorm.Model
	UserID    uint      `gorm:"not null;index" json:"userId"`
	VideoID   uint      `gorm:"not null;index" json:"videoId"`
	WatchedAt time.Time `gorm:"not null" json:"watchedAt"`
	// Fraction of the video watched, in [0,1]; nil when unknown.
	Progress *float64 `json:"progress"`
	// Independent attentiveness signal for the session, in [0,1].
	FocusSample *float64 `json:"focusSample"`

	User  User  `json:"-"`
	Video Video `json:"-"`
}

// ProgressOrZero returns the watched fraction, treating absent as 0.
func (w *WatchHistory) ProgressOrZero() float64 {
	if w.Progress == nil {
		return 0
	}
	return *w.Progress
}

// FocusOrProgress returns the focus sample, falling back to progress when the
// session carried no focus measurement.
func (w *WatchHistory) FocusOrProgress() float64 {
	if w.FocusSample != nil {
		return *w.FocusSample
	}
	return w.ProgressOrZero()
}
