package recommend

import (
	"sort"
	"strings"

	"braingrow/backend/models"
)

// Seed scores for candidate collection: top-topic hits outrank keyword hits
// before per-video scoring refines the order.
const (
	topicBaseScore   = 5
	keywordBaseScore = 3

	topTopicBonus   = 2
	keywordMatchCap = 3

	// How many topic candidates to pull per requested slot, and how many
	// videos each tendency keyword may contribute.
	topicCandidateFactor = 3
	keywordCandidateMax  = 10
)

type candidate struct {
	video models.Video
	base  int
	score int
}

// candidateSet collects candidate videos keyed by id. Re-adding an id keeps
// the maximum base score rather than summing, so a video reachable through
// several signals is not overcounted. Insertion order is retained for stable
// tie-breaks.
type candidateSet struct {
	byID  map[uint]*candidate
	order []uint
}

func newCandidateSet() *candidateSet {
	return &candidateSet{byID: make(map[uint]*candidate)}
}

func (cs *candidateSet) add(v models.Video, base int) {
	if c, ok := cs.byID[v.ID]; ok {
		if base > c.base {
			c.base = base
		}
		return
	}
	cs.byID[v.ID] = &candidate{video: v, base: base}
	cs.order = append(cs.order, v.ID)
}

func (cs *candidateSet) addAll(videos []models.Video, base int) {
	for _, v := range videos {
		cs.add(v, base)
	}
}

func (cs *candidateSet) len() int { return len(cs.byID) }

// rank scores every candidate and returns them ordered by score descending;
// equal scores keep insertion order.
func (cs *candidateSet) rank(topTopic string, keywords []string) []*candidate {
	ranked := make([]*candidate, 0, len(cs.order))
	for _, id := range cs.order {
		c := cs.byID[id]
		c.score = scoreVideo(&c.video, c.base, topTopic, keywords)
		ranked = append(ranked, c)
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})
	return ranked
}

// scoreVideo combines the collection seed with a top-topic bonus and a
// capped count of tendency keyword matches. Keywords match tags by
// substring and board/topic by case-insensitive equality.
func scoreVideo(v *models.Video, base int, topTopic string, keywords []string) int {
	score := base
	if topTopic != "" && strings.EqualFold(v.Topic, topTopic) {
		score += topTopicBonus
	}
	if len(keywords) > 0 {
		tags := strings.ToLower(v.Tags)
		board := strings.ToLower(v.Board)
		topic := strings.ToLower(v.Topic)
		matches := 0
		for _, kw := range keywords {
			if strings.Contains(tags, kw) || kw == board || kw == topic {
				matches++
			}
		}
		if matches > keywordMatchCap {
			matches = keywordMatchCap
		}
		score += matches
	}
	return score
}
