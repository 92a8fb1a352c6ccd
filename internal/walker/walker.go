// file: internal/walker/walker.go
// version: 1.1.0
// guid: 1c3e5a7b-9d2f-4b4c-8e6a-0d2f4b6c8e0a

package walker

import (
	"github.com/osmlint/roadname-checker/internal/geo"
	"github.com/osmlint/roadname-checker/internal/graph"
)

// ExpandFunc yields the segments reachable one hop beyond the given segment,
// filtered by the caller's own admissibility rule. Returning an empty slice
// prunes the traversal at that segment.
type ExpandFunc func(segment graph.Segment) []graph.Segment

// Collect runs a breadth-first frontier expansion from start and returns
// every segment reached through expand, in visit order. The start segment
// itself is never part of the result. The visited set guarantees each
// segment is expanded at most once, so Collect terminates on any finite
// graph, cycles included.
func Collect(start graph.Segment, expand ExpandFunc) []graph.Segment {
	visited := map[int64]bool{start.ID(): true}
	frontier := []graph.Segment{start}
	var result []graph.Segment

	for len(frontier) > 0 {
		current := frontier[0]
		frontier = frontier[1:]

		for _, next := range expand(current) {
			if visited[next.ID()] {
				continue
			}
			visited[next.ID()] = true
			frontier = append(frontier, next)
			result = append(result, next)
		}
	}
	return result
}

// SearchRadius is the expansion rule for the spelling consistency check: a
// segment whose end lies within max of the start segment's start yields all
// of its primary neighbors; anything farther out is pruned. The measure is
// deliberately end-to-start rather than cumulative path length, so a long
// segment looping back toward the origin is still admitted.
func SearchRadius(start graph.Segment, max geo.Distance) ExpandFunc {
	origin := start.Start()
	return func(segment graph.Segment) []graph.Segment {
		if segment.End().DistanceTo(origin).GreaterThan(max) {
			return nil
		}
		var out []graph.Segment
		for _, next := range segment.Connected() {
			if next.IsPrimary() {
				out = append(out, next)
			}
		}
		return out
	}
}
