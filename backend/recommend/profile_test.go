package recommend

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"braingrow/backend/models"
)

func TestBuildProfileAggregates(t *testing.T) {
	catalog := &fakeCatalog{videos: []models.Video{
		vid(1, "Linear Equations", "math", "algebra", "math,algebra"),
		vid(2, "Quadratics", "math", "algebra", "math,algebra"),
		vid(3, "Intro to AI", "science", "ai", "ai,ml"),
	}}
	history := []models.WatchHistory{
		watchWithFocus(1, 0.8, 0.6),
		watch(2, 0.4),
		watch(3, 0.5),
	}

	p, err := BuildProfile(context.Background(), history, catalog)
	require.NoError(t, err)

	assert.True(t, p.Watched(1))
	assert.True(t, p.Watched(3))
	assert.False(t, p.Watched(99))
	assert.Equal(t, []uint{1, 2, 3}, p.WatchedIDs())

	// algebra: avg progress 0.6, avg focus (0.6 + 0.4)/2 = 0.5 since the
	// second session falls back to its progress.
	assert.InDelta(t, 0.6*0.6+0.4*0.5, p.TopicPreference("algebra"), 1e-9)
	assert.InDelta(t, 0.6*0.5+0.4*0.5, p.TopicPreference("ai"), 1e-9)
	assert.Zero(t, p.TopicPreference("geometry"))

	// Weight: algebra 1.2 vs ai 0.5.
	assert.Equal(t, "algebra", p.TopTopic())
}

func TestBuildProfileEmptyHistory(t *testing.T) {
	p, err := BuildProfile(context.Background(), nil, &fakeCatalog{})
	require.NoError(t, err)
	assert.Empty(t, p.TopTopic())
	assert.Empty(t, p.WatchedIDs())
	assert.Zero(t, p.BoardPreference("math"))
}

func TestBuildProfileSkipsMissingVideos(t *testing.T) {
	catalog := &fakeCatalog{videos: []models.Video{
		vid(1, "Linear Equations", "math", "algebra", ""),
	}}
	history := []models.WatchHistory{watch(1, 0.9), watch(42, 1.0)}

	p, err := BuildProfile(context.Background(), history, catalog)
	require.NoError(t, err)
	assert.Equal(t, []uint{1}, p.WatchedIDs())
	assert.Equal(t, "algebra", p.TopTopic())
}

func TestBuildProfileUntaggedVideosCarryNoTopic(t *testing.T) {
	catalog := &fakeCatalog{videos: []models.Video{
		vid(1, "Untagged", "", "", "misc"),
	}}
	p, err := BuildProfile(context.Background(), []models.WatchHistory{watch(1, 1.0)}, catalog)
	require.NoError(t, err)
	assert.Empty(t, p.TopTopic())
	assert.True(t, p.Watched(1))
}

func TestTopTopicTieBreakFirstSeen(t *testing.T) {
	catalog := &fakeCatalog{videos: []models.Video{
		vid(1, "Geometry Basics", "math", "geometry", ""),
		vid(2, "Algebra Basics", "math", "algebra", ""),
	}}
	// Equal accumulated weight; geometry appears first in history order.
	history := []models.WatchHistory{watch(1, 0.7), watch(2, 0.7)}

	p, err := BuildProfile(context.Background(), history, catalog)
	require.NoError(t, err)
	assert.Equal(t, "geometry", p.TopTopic())
}

func TestTopTopicCaseInsensitive(t *testing.T) {
	catalog := &fakeCatalog{videos: []models.Video{
		vid(1, "One", "math", "Algebra", ""),
		vid(2, "Two", "math", "ALGEBRA", ""),
		vid(3, "Three", "science", "ai", ""),
	}}
	history := []models.WatchHistory{watch(3, 0.9), watch(1, 0.5), watch(2, 0.5)}

	p, err := BuildProfile(context.Background(), history, catalog)
	require.NoError(t, err)
	// Differently-cased topic labels accumulate into one key: 1.0 > 0.9.
	assert.Equal(t, "algebra", p.TopTopic())
}

func TestEngagementOrdering(t *testing.T) {
	catalog := &fakeCatalog{videos: []models.Video{
		vid(1, "One", "math", "algebra", ""),
		vid(2, "Two", "science", "ai", ""),
	}}
	history := []models.WatchHistory{watch(1, 1.0), watch(2, 0.2)}

	p, err := BuildProfile(context.Background(), history, catalog)
	require.NoError(t, err)

	boards := p.BoardEngagement()
	require.Len(t, boards, 2)
	assert.Equal(t, "math", boards[0].Key)
	assert.Equal(t, 1, boards[0].Count)
	assert.InDelta(t, 1.0, boards[0].AvgProgress, 1e-9)
	assert.Greater(t, boards[0].Preference, boards[1].Preference)
}
