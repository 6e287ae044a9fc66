// Package stores provides the GORM-backed catalog and watch-history stores
// behind the recommendation engine's interfaces.
package stores

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"braingrow/backend/models"
)

type VideoStore struct {
	DB *gorm.DB
}

func NewVideoStore(db *gorm.DB) *VideoStore {
	return &VideoStore{DB: db}
}

// Search matches the query as a substring of title or tags.
func (s *VideoStore) Search(ctx context.Context, query string, limit int) ([]models.Video, error) {
	like := "%" + query + "%"
	var videos []models.Video
	err := s.DB.WithContext(ctx).
		Where("title ILIKE ? OR tags ILIKE ?", like, like).
		Limit(limit).
		Find(&videos).Error
	return videos, err
}

func (s *VideoStore) GetByID(ctx context.Context, id uint) (*models.Video, error) {
	var video models.Video
	err := s.DB.WithContext(ctx).First(&video, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &video, nil
}

// RandomSample draws up to limit videos uniformly, with no repeats within
// one call.
func (s *VideoStore) RandomSample(ctx context.Context, limit int, exclude []uint) ([]models.Video, error) {
	q := s.DB.WithContext(ctx).Order("RANDOM()").Limit(limit)
	if len(exclude) > 0 {
		q = q.Where("id NOT IN ?", exclude)
	}
	var videos []models.Video
	err := q.Find(&videos).Error
	return videos, err
}

func (s *VideoStore) FindByTopic(ctx context.Context, topic string, exclude []uint, limit int) ([]models.Video, error) {
	q := s.DB.WithContext(ctx).Where("LOWER(topic) = LOWER(?)", topic).Limit(limit)
	if len(exclude) > 0 {
		q = q.Where("id NOT IN ?", exclude)
	}
	var videos []models.Video
	err := q.Find(&videos).Error
	return videos, err
}

// FindByKeyword matches the keyword as a substring of tags, title or
// description, or exactly against board/topic.
func (s *VideoStore) FindByKeyword(ctx context.Context, keyword string, exclude []uint, limit int) ([]models.Video, error) {
	like := "%" + keyword + "%"
	q := s.DB.WithContext(ctx).
		Where("tags ILIKE ? OR title ILIKE ? OR description ILIKE ? OR LOWER(board) = LOWER(?) OR LOWER(topic) = LOWER(?)",
			like, like, like, keyword, keyword).
		Limit(limit)
	if len(exclude) > 0 {
		q = q.Where("id NOT IN ?", exclude)
	}
	var videos []models.Video
	err := q.Find(&videos).Error
	return videos, err
}

// React bumps the like or dislike counter.
func (s *VideoStore) React(ctx context.Context, id uint, like bool) error {
	column := "dislikes"
	if like {
		column = "likes"
	}
	res := s.DB.WithContext(ctx).Model(&models.Video{}).
		Where("id = ?", id).
		UpdateColumn(column, gorm.Expr(column+" + 1"))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
