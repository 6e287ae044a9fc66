package recommend

import (
	"context"

	"braingrow/backend/models"
)

// CatalogStore is the slice of the video catalog the engine reads. Absent
// videos are reported as (nil, nil); errors are store failures and propagate
// to the caller untranslated.
type CatalogStore interface {
	GetByID(ctx context.Context, id uint) (*models.Video, error)
	// RandomSample returns up to limit videos drawn uniformly without
	// repeats within one call, skipping the excluded ids.
	RandomSample(ctx context.Context, limit int, exclude []uint) ([]models.Video, error)
	FindByTopic(ctx context.Context, topic string, exclude []uint, limit int) ([]models.Video, error)
	// FindByKeyword matches the keyword as a substring of tags, title or
	// description, or exactly against board/topic.
	FindByKeyword(ctx context.Context, keyword string, exclude []uint, limit int) ([]models.Video, error)
}

// HistoryStore reads the append-only watch log.
type HistoryStore interface {
	// ListForUser returns all entries for the user, newest first.
	ListForUser(ctx context.Context, userID uint) ([]models.WatchHistory, error)
}

// UserStore resolves user profiles. Absent users are (nil, nil).
type UserStore interface {
	GetByID(ctx context.Context, id uint) (*models.User, error)
}
