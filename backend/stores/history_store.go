package stores

import (
	"context"
	"time"

	"gorm.io/gorm"

	"braingrow/backend/models"
)

type WatchHistoryStore struct {
	DB *gorm.DB
}

func NewWatchHistoryStore(db *gorm.DB) *WatchHistoryStore {
	return &WatchHistoryStore{DB: db}
}

// Append records one watch session. Progress and focus sample are clamped
// to [0,1] at write time; entries are never updated or deleted afterwards.
func (s *WatchHistoryStore) Append(ctx context.Context, userID, videoID uint, progress, focusSample *float64) (*models.WatchHistory, error) {
	entry := models.WatchHistory{
		UserID:      userID,
		VideoID:     videoID,
		WatchedAt:   time.Now().UTC(),
		Progress:    clampUnit(progress),
		FocusSample: clampUnit(focusSample),
	}
	if err := s.DB.WithContext(ctx).Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// ListForUser returns every entry for the user, newest first.
func (s *WatchHistoryStore) ListForUser(ctx context.Context, userID uint) ([]models.WatchHistory, error) {
	var entries []models.WatchHistory
	err := s.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("watched_at DESC").
		Find(&entries).Error
	return entries, err
}

func clampUnit(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	if c < 0 {
		c = 0
	} else if c > 1 {
		c = 1
	}
	return &c
}
