// Package recommend ranks and diversifies the video feed. The engine is
// stateless per request: every call reads a snapshot of catalog and history
// data through the injected stores and retains nothing between calls, so
// computations for different users may run concurrently.
package recommend

import (
	"context"
	"math"
	"math/rand"
	"sync"
	"time"

	"braingrow/backend/models"
)

// DefaultRandomRatio is the serendipity blend used when none is configured.
const DefaultRandomRatio = 0.15

type Engine struct {
	catalog CatalogStore
	history HistoryStore
	users   UserStore

	randomRatio float64

	mu  sync.Mutex
	rng *rand.Rand
}

type Option func(*Engine)

// WithRandomRatio sets the serendipity fraction; values outside [0, 0.5]
// are clamped.
func WithRandomRatio(ratio float64) Option {
	return func(e *Engine) { e.randomRatio = ratio }
}

// WithRand injects the randomness source for the final shuffle, so tests
// can fix a seed and assert exact output.
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) { e.rng = rng }
}

func NewEngine(catalog CatalogStore, history HistoryStore, users UserStore, opts ...Option) *Engine {
	e := &Engine{
		catalog:     catalog,
		history:     history,
		users:       users,
		randomRatio: DefaultRandomRatio,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if e.randomRatio < 0 {
		e.randomRatio = 0
	} else if e.randomRatio > 0.5 {
		e.randomRatio = 0.5
	}
	return e
}

// Recommend returns up to limit videos for the user; userID 0 means an
// anonymous request. The list never contains duplicates or videos from the
// user's watch history, and is shorter than limit only when the unwatched
// catalog is exhausted.
func (e *Engine) Recommend(ctx context.Context, userID uint, limit int) ([]models.Video, error) {
	if limit <= 0 {
		return nil, nil
	}
	if userID == 0 {
		return e.Anonymous(ctx, limit)
	}
	return e.Personalized(ctx, userID, limit)
}

// Anonymous returns a uniformly random, repeat-free sample of the catalog.
func (e *Engine) Anonymous(ctx context.Context, limit int) ([]models.Video, error) {
	if limit <= 0 {
		return nil, nil
	}
	videos, err := e.catalog.RandomSample(ctx, limit, nil)
	if err != nil {
		return nil, err
	}
	e.shuffle(videos)
	return videos, nil
}

// Personalized blends topic affinity from watch history, keyword affinity
// from declared tendency, and a configurable share of random picks. A user
// with no history and no tendency degrades to the anonymous feed.
func (e *Engine) Personalized(ctx context.Context, userID uint, limit int) ([]models.Video, error) {
	if limit <= 0 {
		return nil, nil
	}

	user, err := e.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return e.Anonymous(ctx, limit)
	}

	history, err := e.history.ListForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	profile, err := BuildProfile(ctx, history, e.catalog)
	if err != nil {
		return nil, err
	}

	keywords := TendencyKeywords(user.Tendency)
	topTopic := profile.TopTopic()
	watched := profile.WatchedIDs()

	// Candidate collection. Later additions of the same video keep the max
	// base score, never a sum.
	cands := newCandidateSet()
	if topTopic != "" {
		topicVideos, err := e.catalog.FindByTopic(ctx, topTopic, watched, limit*topicCandidateFactor)
		if err != nil {
			return nil, err
		}
		cands.addAll(topicVideos, topicBaseScore)
	}
	perKeyword := make(map[string][]uint, len(keywords))
	for _, kw := range keywords {
		kwVideos, err := e.catalog.FindByKeyword(ctx, kw, watched, keywordCandidateMax)
		if err != nil {
			return nil, err
		}
		cands.addAll(kwVideos, keywordBaseScore)
		ids := make([]uint, 0, len(kwVideos))
		for _, v := range kwVideos {
			ids = append(ids, v.ID)
		}
		perKeyword[kw] = ids
	}

	ranked := cands.rank(topTopic, keywords)

	randomTarget := e.randomTarget(limit)
	baseTarget := limit - randomTarget

	selected := make([]models.Video, 0, limit)
	selectedIDs := make(map[uint]struct{}, limit)
	take := func(v models.Video) {
		selected = append(selected, v)
		selectedIDs[v.ID] = struct{}{}
	}

	// Coverage pass: one video per declared keyword, in declaration order,
	// so breadth across interests survives the score sort.
	for _, kw := range keywords {
		if len(selected) >= baseTarget {
			break
		}
		var best *candidate
		for _, id := range perKeyword[kw] {
			if _, dup := selectedIDs[id]; dup {
				continue
			}
			if c := cands.byID[id]; best == nil || c.score > best.score {
				best = c
			}
		}
		if best != nil {
			take(best.video)
		}
	}

	// Fill pass: top up the personalized slots with the best remaining
	// candidates overall.
	for _, c := range ranked {
		if len(selected) >= baseTarget {
			break
		}
		if _, dup := selectedIDs[c.video.ID]; dup {
			continue
		}
		take(c.video)
	}

	// Random pass for serendipity. With a zero target the sample only
	// covers whatever the personalized passes left unfilled.
	randomNeeded := limit - len(selected)
	if randomTarget > 0 && randomTarget < randomNeeded {
		randomNeeded = randomTarget
	}
	if randomNeeded > 0 {
		exclude := excludeIDs(selectedIDs, watched)
		pool, err := e.catalog.RandomSample(ctx, randomNeeded*3, exclude)
		if err != nil {
			return nil, err
		}
		for _, v := range pool {
			if randomNeeded == 0 {
				break
			}
			if _, dup := selectedIDs[v.ID]; dup {
				continue
			}
			take(v)
			randomNeeded--
		}
	}

	// Backfill a sparse result from the next-ranked candidates, then from a
	// fresh random sample.
	for _, c := range ranked {
		if len(selected) >= limit {
			break
		}
		if _, dup := selectedIDs[c.video.ID]; dup {
			continue
		}
		take(c.video)
	}
	if len(selected) < limit {
		exclude := excludeIDs(selectedIDs, watched)
		extra, err := e.catalog.RandomSample(ctx, limit-len(selected), exclude)
		if err != nil {
			return nil, err
		}
		for _, v := range extra {
			if len(selected) >= limit {
				break
			}
			if _, dup := selectedIDs[v.ID]; dup {
				continue
			}
			take(v)
		}
	}

	// Interleave personalized and serendipitous picks.
	e.shuffle(selected)
	return selected, nil
}

// randomTarget converts the serendipity ratio into a slot count. For limits
// of 5 and above at least one slot is random and at least one personalized.
func (e *Engine) randomTarget(limit int) int {
	target := int(math.Round(float64(limit) * e.randomRatio))
	if limit >= 5 {
		if target < 1 {
			target = 1
		}
		if target > limit-1 {
			target = limit - 1
		}
		return target
	}
	if target > limit {
		target = limit
	}
	return target
}

func (e *Engine) shuffle(videos []models.Video) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.rng.Shuffle(len(videos), func(i, j int) {
		videos[i], videos[j] = videos[j], videos[i]
	})
}

func excludeIDs(selected map[uint]struct{}, watched []uint) []uint {
	out := make([]uint, 0, len(selected)+len(watched))
	out = append(out, watched...)
	for id := range selected {
		out = append(out, id)
	}
	return out
}
