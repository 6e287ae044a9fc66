package controllers

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"braingrow/backend/models"
)

// In-memory catalog implementing recommend.CatalogStore for handler tests
// that should not need a database.
type memCatalog struct {
	videos []models.Video
}

func (m *memCatalog) GetByID(_ context.Context, id uint) (*models.Video, error) {
	for i := range m.videos {
		if m.videos[i].ID == id {
			v := m.videos[i]
			return &v, nil
		}
	}
	return nil, nil
}

func (m *memCatalog) RandomSample(_ context.Context, limit int, exclude []uint) ([]models.Video, error) {
	skip := make(map[uint]struct{}, len(exclude))
	for _, id := range exclude {
		skip[id] = struct{}{}
	}
	var out []models.Video
	for _, v := range m.videos {
		if len(out) >= limit {
			break
		}
		if _, ok := skip[v.ID]; ok {
			continue
		}
		out = append(out, v)
	}
	return out, nil
}

func (m *memCatalog) FindByTopic(ctx context.Context, topic string, exclude []uint, limit int) ([]models.Video, error) {
	all, err := m.RandomSample(ctx, len(m.videos), exclude)
	if err != nil {
		return nil, err
	}
	var out []models.Video
	for _, v := range all {
		if len(out) >= limit {
			break
		}
		if strings.EqualFold(v.Topic, topic) {
			out = append(out, v)
		}
	}
	return out, nil
}

func (m *memCatalog) FindByKeyword(ctx context.Context, keyword string, exclude []uint, limit int) ([]models.Video, error) {
	all, err := m.RandomSample(ctx, len(m.videos), exclude)
	if err != nil {
		return nil, err
	}
	kw := strings.ToLower(keyword)
	var out []models.Video
	for _, v := range all {
		if len(out) >= limit {
			break
		}
		text := strings.ToLower(v.Tags + " " + v.Title + " " + v.Description)
		if strings.Contains(text, kw) || strings.EqualFold(v.Board, keyword) || strings.EqualFold(v.Topic, keyword) {
			out = append(out, v)
		}
	}
	return out, nil
}

type memHistory struct {
	entries map[uint][]models.WatchHistory
}

func (m *memHistory) ListForUser(_ context.Context, userID uint) ([]models.WatchHistory, error) {
	return m.entries[userID], nil
}

type memUsers struct {
	users map[uint]models.User
}

func (m *memUsers) GetByID(_ context.Context, id uint) (*models.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func testVideo(id uint, title, board, topic, tags string) models.Video {
	return models.Video{
		Model: gorm.Model{ID: id},
		Title: title,
		Board: board,
		Topic: topic,
		Tags:  tags,
		URL:   "https://youtube.com/watch?v=test",
	}
}
