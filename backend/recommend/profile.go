package recommend

import (
	"context"
	"sort"
	"strings"

	"braingrow/backend/models"
)

type keyStats struct {
	count       int
	sumProgress float64
	sumFocus    float64
}

// Profile aggregates a user's watch history into per-board and per-topic
// statistics plus the single top topic by accumulated watch progress.
type Profile struct {
	watched     map[uint]struct{}
	boardStats  map[string]*keyStats
	topicStats  map[string]*keyStats
	topicWeight map[string]float64
	topicOrder  []string
	topTopic    string
}

// KeyEngagement is a per-board or per-topic watch summary.
type KeyEngagement struct {
	Key         string  `json:"key"`
	Count       int     `json:"count"`
	AvgProgress float64 `json:"avgProgress"`
	AvgFocus    float64 `json:"avgFocus"`
	Preference  float64 `json:"preference"`
}

// BuildProfile resolves each history entry against the catalog and
// accumulates statistics. Entries whose video no longer resolves are
// skipped; a store error aborts.
func BuildProfile(ctx context.Context, history []models.WatchHistory, catalog CatalogStore) (*Profile, error) {
	p := &Profile{
		watched:     make(map[uint]struct{}),
		boardStats:  make(map[string]*keyStats),
		topicStats:  make(map[string]*keyStats),
		topicWeight: make(map[string]float64),
	}
	for i := range history {
		h := &history[i]
		v, err := catalog.GetByID(ctx, h.VideoID)
		if err != nil {
			return nil, err
		}
		if v == nil {
			continue
		}
		p.watched[v.ID] = struct{}{}

		prog := h.ProgressOrZero()
		foc := h.FocusOrProgress()
		if v.Board != "" {
			p.accumulate(p.boardStats, v.Board, prog, foc)
		}
		if v.Topic != "" {
			p.accumulate(p.topicStats, v.Topic, prog, foc)
			key := strings.ToLower(v.Topic)
			if _, seen := p.topicWeight[key]; !seen {
				p.topicOrder = append(p.topicOrder, key)
			}
			p.topicWeight[key] += prog
		}
	}
	p.topTopic = p.resolveTopTopic()
	return p, nil
}

func (p *Profile) accumulate(stats map[string]*keyStats, key string, prog, foc float64) {
	k := strings.ToLower(key)
	s, ok := stats[k]
	if !ok {
		s = &keyStats{}
		stats[k] = s
	}
	s.count++
	s.sumProgress += prog
	s.sumFocus += foc
}

// resolveTopTopic picks the topic with the greatest accumulated progress
// weight. Ties go to the topic seen first in history iteration order, which
// keeps the result deterministic across calls.
func (p *Profile) resolveTopTopic() string {
	best := ""
	bestWeight := 0.0
	for _, topic := range p.topicOrder {
		if w := p.topicWeight[topic]; best == "" || w > bestWeight {
			best = topic
			bestWeight = w
		}
	}
	return best
}

// TopTopic returns the dominant topic of the watch history, or "" when the
// history is empty or no watched video carries a topic.
func (p *Profile) TopTopic() string { return p.topTopic }

// Watched reports whether the video id appears in the history.
func (p *Profile) Watched(id uint) bool {
	_, ok := p.watched[id]
	return ok
}

// WatchedIDs returns the distinct watched video ids in ascending order.
func (p *Profile) WatchedIDs() []uint {
	ids := make([]uint, 0, len(p.watched))
	for id := range p.watched {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// BoardPreference scores affinity to a board from past progress and focus:
// 0.6*avgProgress + 0.4*avgFocus, zero when the board has no history.
func (p *Profile) BoardPreference(board string) float64 {
	return preference(p.boardStats, board)
}

// TopicPreference is BoardPreference for topic keys.
func (p *Profile) TopicPreference(topic string) float64 {
	return preference(p.topicStats, topic)
}

func preference(stats map[string]*keyStats, key string) float64 {
	s, ok := stats[strings.ToLower(key)]
	if !ok || s.count == 0 {
		return 0
	}
	avgProg := s.sumProgress / float64(s.count)
	avgFocus := s.sumFocus / float64(s.count)
	return 0.6*avgProg + 0.4*avgFocus
}

// BoardEngagement summarizes the per-board statistics, strongest first.
func (p *Profile) BoardEngagement() []KeyEngagement {
	return engagement(p.boardStats)
}

// TopicEngagement summarizes the per-topic statistics, strongest first.
func (p *Profile) TopicEngagement() []KeyEngagement {
	return engagement(p.topicStats)
}

func engagement(stats map[string]*keyStats) []KeyEngagement {
	out := make([]KeyEngagement, 0, len(stats))
	for key, s := range stats {
		out = append(out, KeyEngagement{
			Key:         key,
			Count:       s.count,
			AvgProgress: s.sumProgress / float64(s.count),
			AvgFocus:    s.sumFocus / float64(s.count),
			Preference:  preference(stats, key),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Preference != out[j].Preference {
			return out[i].Preference > out[j].Preference
		}
		return out[i].Key < out[j].Key
	})
	return out
}
