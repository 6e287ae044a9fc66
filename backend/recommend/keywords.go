package recommend

import (
	"strings"

	"braingrow/backend/tendency"
)

// TendencyKeywords splits a stored tendency string into keywords. Rows
// written before the normalizer existed may not be canonical, so the value
// is re-split and lower-cased here as well.
func TendencyKeywords(stored string) []string {
	return tendency.SplitKeywords(strings.ToLower(stored))
}
