// file: internal/check/suggest.go
// version: 1.0.0
// guid: 7f9b1d3e-5a8c-4e0a-b2d4-6f8a0c2e4a6c

package check

import (
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// SuggestCanonical picks the spelling most likely to be correct among the
// names of a flagged cluster: the most frequent one, ties broken by the
// smallest total edit distance to the rest, then lexicographically so the
// choice is deterministic.
func SuggestCanonical(names []string) string {
	if len(names) == 0 {
		return ""
	}

	counts := make(map[string]int, len(names))
	for _, n := range names {
		counts[n]++
	}

	best := ""
	bestCount := -1
	bestSpread := 0
	for name, count := range counts {
		spread := 0
		for other := range counts {
			if other != name {
				spread += fuzzy.LevenshteinDistance(name, other)
			}
		}
		switch {
		case count > bestCount:
		case count == bestCount && spread < bestSpread:
		case count == bestCount && spread == bestSpread && name < best:
		default:
			continue
		}
		best = name
		bestCount = count
		bestSpread = spread
	}
	return best
}
