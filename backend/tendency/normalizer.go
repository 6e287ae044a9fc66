// Package tendency turns free-form or structured interest input into the
// canonical keyword list stored on a user profile.
package tendency

import (
	"errors"
	"sort"
	"strings"

	"braingrow/backend/taxonomy"
)

// ErrInvalidInput is returned when none of the three recognized input
// shapes is present.
var ErrInvalidInput = errors.New("tendency: provide one of raw(string), tags(array), selected(object)")

// Input carries one of three interest declaration shapes. Exactly one is
// consulted, in this priority: Raw, Tags, Selected.
type Input struct {
	// Raw is a free-form string of comma/space separated tokens.
	Raw string
	// Tags is an explicit list of tag strings.
	Tags []string
	// Selected maps a board to the topic keys chosen under it.
	Selected map[string][]string
}

// Normalize produces the canonical keyword list and its comma-joined
// serialization for storage. Output tokens are lower-cased, deduplicated in
// first-seen order and never empty; normalizing an already-canonical list is
// a no-op.
func Normalize(in Input, cat taxonomy.Catalog) ([]string, string, error) {
	var tokens []string
	switch {
	case strings.TrimSpace(in.Raw) != "":
		tokens = SplitKeywords(in.Raw)
	case in.Tags != nil:
		tokens = in.Tags
	case in.Selected != nil:
		tokens = expandSelection(in.Selected, cat)
	default:
		return nil, "", ErrInvalidInput
	}

	norm := normalizeTokens(tokens)
	return norm, strings.Join(norm, ","), nil
}

// SplitKeywords tokenizes a serialized tendency: split on commas first, then
// on whitespace within each segment, dropping empty tokens.
func SplitKeywords(raw string) []string {
	var out []string
	for _, chunk := range strings.Split(raw, ",") {
		for _, p := range strings.Fields(chunk) {
			out = append(out, p)
		}
	}
	return out
}

// expandSelection flattens a board -> chosen-topics selection. The board name
// itself becomes a token only when every topic under that board was chosen;
// chosen topics always contribute their own name plus the catalog keywords
// for that board/topic. Unknown boards and topics degrade to the bare tokens.
func expandSelection(selected map[string][]string, cat taxonomy.Catalog) []string {
	// Board iteration order is part of the output order, so keep it stable.
	boards := make([]string, 0, len(selected))
	for b := range selected {
		boards = append(boards, b)
	}
	sort.Strings(boards)

	var tokens []string
	for _, board := range boards {
		b := strings.TrimSpace(board)
		if b == "" {
			continue
		}
		chosen := make([]string, 0, len(selected[board]))
		for _, t := range selected[board] {
			if t = strings.TrimSpace(t); t != "" {
				chosen = append(chosen, t)
			}
		}

		if coversAllTopics(cat.Topics(b), chosen) {
			tokens = append(tokens, b)
		}
		for _, topic := range chosen {
			tokens = append(tokens, topic)
			tokens = append(tokens, cat.Keywords(b, topic)...)
		}
	}
	return tokens
}

func coversAllTopics(all, chosen []string) bool {
	if len(all) == 0 {
		return false
	}
	set := make(map[string]struct{}, len(chosen))
	for _, t := range chosen {
		set[strings.ToLower(t)] = struct{}{}
	}
	for _, t := range all {
		if _, ok := set[strings.ToLower(t)]; !ok {
			return false
		}
	}
	return true
}

func normalizeTokens(tokens []string) []string {
	seen := make(map[string]struct{}, len(tokens))
	norm := make([]string, 0, len(tokens))
	for _, t := range tokens {
		k := strings.ToLower(strings.TrimSpace(t))
		if k == "" {
			continue
		}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		norm = append(norm, k)
	}
	return norm
}
