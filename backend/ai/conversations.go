package ai

import (
	"fmt"
	"sync"
)

// MaxTurns bounds how much conversation each (user, video) pair keeps;
// only the most recent turns are forwarded to the service.
const MaxTurns = 40

// Conversations holds in-memory question-answering history per user and
// video, so follow-up questions carry context. Anonymous callers share the
// zero user id.
type Conversations struct {
	mu    sync.Mutex
	byKey map[string][]Turn
}

func NewConversations() *Conversations {
	return &Conversations{byKey: make(map[string][]Turn)}
}

func key(userID, videoID uint) string {
	return fmt.Sprintf("%d-%d", userID, videoID)
}

// History returns a copy of the conversation so far.
func (c *Conversations) History(userID, videoID uint) []Turn {
	c.mu.Lock()
	defer c.mu.Unlock()
	turns := c.byKey[key(userID, videoID)]
	out := make([]Turn, len(turns))
	copy(out, turns)
	return out
}

// Record appends a question/answer exchange, trimming to the most recent
// MaxTurns turns.
func (c *Conversations) Record(userID, videoID uint, question, answer string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	k := key(userID, videoID)
	turns := append(c.byKey[k],
		Turn{Role: RoleUser, Text: question},
		Turn{Role: RoleModel, Text: answer},
	)
	if len(turns) > MaxTurns {
		turns = turns[len(turns)-MaxTurns:]
	}
	c.byKey[k] = turns
}
