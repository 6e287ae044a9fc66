package recommend

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"braingrow/backend/models"
)

// fakeCatalog serves videos from a slice. "Random" sampling returns videos
// in slice order, which keeps tests deterministic; the engine's own shuffle
// is seeded explicitly where order matters.
type fakeCatalog struct {
	videos []models.Video
}

func (f *fakeCatalog) GetByID(_ context.Context, id uint) (*models.Video, error) {
	for i := range f.videos {
		if f.videos[i].ID == id {
			v := f.videos[i]
			return &v, nil
		}
	}
	return nil, nil
}

func (f *fakeCatalog) RandomSample(_ context.Context, limit int, exclude []uint) ([]models.Video, error) {
	skip := idSet(exclude)
	var out []models.Video
	for _, v := range f.videos {
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

func (f *fakeCatalog) FindByTopic(_ context.Context, topic string, exclude []uint, limit int) ([]models.Video, error) {
	skip := idSet(exclude)
	var out []models.Video
	for _, v := range f.videos {
		if len(out) >= limit {
			break
		}
		if _, ok := skip[v.ID]; ok {
			continue
		}
		if strings.EqualFold(v.Topic, topic) {
			out = append(out, v)
		}
	}
	return out, nil
}

func (f *fakeCatalog) FindByKeyword(_ context.Context, keyword string, exclude []uint, limit int) ([]models.Video, error) {
	skip := idSet(exclude)
	kw := strings.ToLower(keyword)
	var out []models.Video
	for _, v := range f.videos {
		if len(out) >= limit {
			break
		}
		if _, ok := skip[v.ID]; ok {
			continue
		}
		haystack := strings.ToLower(v.Tags + " " + v.Title + " " + v.Description)
		if strings.Contains(haystack, kw) ||
			strings.EqualFold(v.Board, keyword) ||
			strings.EqualFold(v.Topic, keyword) {
			out = append(out, v)
		}
	}
	return out, nil
}

type fakeHistory struct {
	entries map[uint][]models.WatchHistory
}

func (f *fakeHistory) ListForUser(_ context.Context, userID uint) ([]models.WatchHistory, error) {
	return f.entries[userID], nil
}

type fakeUsers struct {
	users map[uint]models.User
}

func (f *fakeUsers) GetByID(_ context.Context, id uint) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func idSet(ids []uint) map[uint]struct{} {
	set := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func vid(id uint, title, board, topic, tags string) models.Video {
	return models.Video{
		Model: gorm.Model{ID: id},
		Title: title,
		Board: board,
		Topic: topic,
		Tags:  tags,
	}
}

func watch(videoID uint, progress float64) models.WatchHistory {
	p := progress
	return models.WatchHistory{VideoID: videoID, Progress: &p}
}

func watchWithFocus(videoID uint, progress, focus float64) models.WatchHistory {
	w := watch(videoID, progress)
	f := focus
	w.FocusSample = &f
	return w
}
