package taxonomy

import (
	"sort"
	"strings"
)

// Catalog maps a board (e.g. "math") to its topics (e.g. "algebra"), each
// with an ordered list of related keyword tags. Loaded once at startup and
// read-only afterwards; every topic belongs to exactly one board, keyword
// lists may overlap across topics.
type Catalog map[string]map[string][]string

// Boards returns the board keys in lexicographic order.
func (c Catalog) Boards() []string {
	boards := make([]string, 0, len(c))
	for b := range c {
		boards = append(boards, b)
	}
	sort.Strings(boards)
	return boards
}

// Topics returns the topic keys under a board in lexicographic order.
// Unknown boards yield an empty list.
func (c Catalog) Topics(board string) []string {
	topics, ok := c[strings.ToLower(board)]
	if !ok {
		return nil
	}
	keys := make([]string, 0, len(topics))
	for t := range topics {
		keys = append(keys, t)
	}
	sort.Strings(keys)
	return keys
}

// Keywords returns the keyword list for a board/topic pair, or nil when
// either key is unknown.
func (c Catalog) Keywords(board, topic string) []string {
	topics, ok := c[strings.ToLower(board)]
	if !ok {
		return nil
	}
	return topics[strings.ToLower(topic)]
}

// HasBoard reports whether the board exists, case-insensitively.
func (c Catalog) HasBoard(board string) bool {
	_, ok := c[strings.ToLower(board)]
	return ok
}
