// file: internal/check/check.go
// version: 1.2.0
// guid: 3d5f7a9c-1e4b-4c6d-8a0b-2c4e6a8c0d2f

package check

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/osmlint/roadname-checker/internal/geo"
	"github.com/osmlint/roadname-checker/internal/graph"
	"github.com/osmlint/roadname-checker/internal/metrics"
	"github.com/osmlint/roadname-checker/internal/spelling"
	"github.com/osmlint/roadname-checker/internal/walker"
)

// Source supplies the start segments for a check run.
type Source interface {
	PrimarySegments() []graph.Segment
}

// Match is one segment whose name is inconsistent with the flagged start
// segment's name.
type Match struct {
	SegmentID int64        `json:"segment_id"`
	Name      string       `json:"name"`
	Location  geo.Location `json:"location"`
}

// Flag is the result of one traversal that found at least one inconsistent
// spelling in the start segment's neighborhood.
type Flag struct {
	SegmentID int64        `json:"segment_id"`
	Name      string       `json:"name"`
	Location  geo.Location `json:"location"`
	Matches   []Match      `json:"matches"`
	Suggested string       `json:"suggested"`
}

// Check runs the road name spelling consistency check over a road graph.
type Check struct {
	SearchDistance geo.Distance
	Workers        int
	// ShowProgress draws a progress bar over the start segments; meant for
	// interactive CLI runs only.
	ShowProgress bool
}

// Run evaluates every named primary segment as a traversal start, in
// parallel. Each traversal owns its private frontier; a GraphDataError on
// one traversal is collected and does not abort the others. Flagged pairs
// are deduplicated across traversals within this run in a single pass
// ordered by start segment ID, after all workers finish, so the surviving
// clusters never depend on worker completion order.
func (c *Check) Run(ctx context.Context, src Source) ([]Flag, []error) {
	workers := c.Workers
	if workers < 1 {
		workers = 1
	}

	starts := make([]graph.Segment, 0)
	for _, seg := range src.PrimarySegments() {
		if _, named := seg.Name(); named {
			starts = append(starts, seg)
		}
	}

	var bar *progressbar.ProgressBar
	if c.ShowProgress {
		bar = progressbar.Default(int64(len(starts)))
	}

	var (
		mu    sync.Mutex
		flags []Flag
		errs  []error
	)

	jobs := make(chan graph.Segment)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for start := range jobs {
				flag, err := c.evaluate(start)
				mu.Lock()
				if err != nil {
					errs = append(errs, err)
					metrics.IncTraversalFailed()
				} else if flag != nil {
					flags = append(flags, *flag)
				}
				mu.Unlock()
				if bar != nil {
					_ = bar.Add(1)
				}
			}
		}()
	}

feed:
	for _, start := range starts {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- start:
		}
	}
	close(jobs)
	wg.Wait()

	return dedupPairs(flags), errs
}

// dedupPairs drops every match whose unordered segment pair was already
// reported by a lower-ID flag, and every flag left with no matches. Flags
// are sorted by start segment ID first, so the same input always keeps the
// same clusters regardless of evaluation order.
func dedupPairs(flags []Flag) []Flag {
	sort.Slice(flags, func(i, j int) bool { return flags[i].SegmentID < flags[j].SegmentID })

	flagged := make(map[[2]int64]bool)
	out := flags[:0]
	for _, flag := range flags {
		kept := flag.Matches[:0]
		for _, m := range flag.Matches {
			key := pairKey(flag.SegmentID, m.SegmentID)
			if !flagged[key] {
				flagged[key] = true
				kept = append(kept, m)
			}
		}
		flag.Matches = kept
		if len(kept) > 0 {
			out = append(out, flag)
		}
	}
	return out
}

// evaluate runs a single bounded traversal from start and compares every
// reached name against the start name. Returns nil when nothing is flagged.
func (c *Check) evaluate(start graph.Segment) (*Flag, error) {
	began := time.Now()
	defer func() { metrics.ObserveTraversalDuration(time.Since(began)) }()
	metrics.IncTraversal()

	if err := graph.Validate(start); err != nil {
		return nil, err
	}
	startName, _ := start.Name()

	candidates := walker.Collect(start, walker.SearchRadius(start, c.SearchDistance))

	var matches []Match
	names := []string{startName}
	for _, candidate := range candidates {
		if err := graph.Validate(candidate); err != nil {
			return nil, err
		}
		name, named := candidate.Name()
		if !named {
			continue
		}
		if !spelling.IsInconsistent(startName, name) {
			continue
		}
		matches = append(matches, Match{
			SegmentID: candidate.ID(),
			Name:      name,
			Location:  candidate.Start(),
		})
		names = append(names, name)
		metrics.IncPairFlagged()
	}
	if len(matches) == 0 {
		return nil, nil
	}

	sort.Slice(matches, func(i, j int) bool { return matches[i].SegmentID < matches[j].SegmentID })
	return &Flag{
		SegmentID: start.ID(),
		Name:      startName,
		Location:  start.Start(),
		Matches:   matches,
		Suggested: SuggestCanonical(names),
	}, nil
}

// pairKey builds the unordered dedup key for a flagged pair.
func pairKey(a, b int64) [2]int64 {
	if a > b {
		a, b = b, a
	}
	return [2]int64{a, b}
}
