// file: internal/graph/memory.go
// version: 1.2.0
// guid: 8e1f4a6c-3b5d-4d7e-9c2a-0b4f6d8e1a3c

package graph

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/osmlint/roadname-checker/internal/geo"
)

// MemoryGraph is an in-memory road network built from a GeoJSON snapshot.
// After Load returns the graph is read-only, so concurrent traversals may
// share it without locking.
type MemoryGraph struct {
	segments map[int64]*memSegment
	primary  []Segment
}

type memSegment struct {
	graph     *MemoryGraph
	id        int64
	start     geo.Location
	end       geo.Location
	name      string
	hasName   bool
	primary   bool
	connected []int64
}

func (s *memSegment) ID() int64           { return s.id }
func (s *memSegment) Start() geo.Location { return s.start }
func (s *memSegment) End() geo.Location   { return s.end }
func (s *memSegment) IsPrimary() bool     { return s.primary }

func (s *memSegment) Name() (string, bool) {
	return s.name, s.hasName
}

func (s *memSegment) Connected() []Segment {
	out := make([]Segment, 0, len(s.connected))
	for _, id := range s.connected {
		out = append(out, s.graph.segments[id])
	}
	return out
}

// GeoJSON wire types. Only the fields the loader reads are declared.

type featureCollection struct {
	Type     string    `json:"type"`
	Features []feature `json:"features"`
}

type feature struct {
	Type       string          `json:"type"`
	Geometry   geometry        `json:"geometry"`
	Properties json.RawMessage `json:"properties"`
}

type geometry struct {
	Type        string      `json:"type"`
	Coordinates [][]float64 `json:"coordinates"`
}

type roadProperties struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Oneway bool   `json:"oneway"`
}

// LoadFile reads a GeoJSON FeatureCollection from path and builds the graph.
func LoadFile(path string) (*MemoryGraph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open road snapshot: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Load builds a MemoryGraph from a GeoJSON FeatureCollection of LineString
// features. Each feature becomes one forward segment; two-way features also
// get a reversed, non-primary twin with the negated ID. Adjacency is by
// shared endpoint node. Names are NFC-normalized so that visually identical
// names compare equal.
func Load(r io.Reader) (*MemoryGraph, error) {
	var fc featureCollection
	if err := json.NewDecoder(r).Decode(&fc); err != nil {
		return nil, fmt.Errorf("failed to decode GeoJSON: %w", err)
	}
	if fc.Type != "FeatureCollection" {
		return nil, fmt.Errorf("expected FeatureCollection, got %q", fc.Type)
	}

	g := &MemoryGraph{segments: make(map[int64]*memSegment)}
	nodeSegments := make(map[string][]int64)
	nextID := int64(1)

	for i, feat := range fc.Features {
		if feat.Geometry.Type != "LineString" {
			continue
		}
		var props roadProperties
		if len(feat.Properties) > 0 {
			if err := json.Unmarshal(feat.Properties, &props); err != nil {
				return nil, fmt.Errorf("feature %d: bad properties: %w", i, err)
			}
		}
		id := props.ID
		if id == 0 {
			id = nextID
		}
		if id >= nextID {
			nextID = id + 1
		}
		if _, dup := g.segments[id]; dup {
			return nil, fmt.Errorf("feature %d: duplicate segment id %d", i, id)
		}

		seg := &memSegment{graph: g, id: id, primary: true}
		if name := strings.TrimSpace(props.Name); name != "" {
			seg.name = norm.NFC.String(name)
			seg.hasName = true
		}

		coords := feat.Geometry.Coordinates
		// Malformed geometry is kept with zero locations; graph.Validate
		// surfaces it as a GraphDataError during the traversal that hits it.
		if len(coords) >= 2 && len(coords[0]) >= 2 && len(coords[len(coords)-1]) >= 2 {
			seg.start = geo.Location{Lat: coords[0][1], Lon: coords[0][0]}
			seg.end = geo.Location{Lat: coords[len(coords)-1][1], Lon: coords[len(coords)-1][0]}
		}
		g.segments[id] = seg
		if !seg.start.IsZero() && !seg.end.IsZero() {
			nodeSegments[nodeKey(seg.start)] = append(nodeSegments[nodeKey(seg.start)], id)
			nodeSegments[nodeKey(seg.end)] = append(nodeSegments[nodeKey(seg.end)], id)
		}

		if !props.Oneway {
			rev := &memSegment{
				graph:   g,
				id:      -id,
				start:   seg.end,
				end:     seg.start,
				name:    seg.name,
				hasName: seg.hasName,
				primary: false,
			}
			g.segments[rev.id] = rev
			if !rev.start.IsZero() && !rev.end.IsZero() {
				nodeSegments[nodeKey(rev.start)] = append(nodeSegments[nodeKey(rev.start)], rev.id)
				nodeSegments[nodeKey(rev.end)] = append(nodeSegments[nodeKey(rev.end)], rev.id)
			}
		}
	}

	g.link(nodeSegments)
	return g, nil
}

// link fills each segment's adjacency list from the shared-node index.
func (g *MemoryGraph) link(nodeSegments map[string][]int64) {
	for _, seg := range g.segments {
		seen := map[int64]bool{seg.id: true}
		for _, key := range []string{nodeKey(seg.start), nodeKey(seg.end)} {
			for _, other := range nodeSegments[key] {
				if !seen[other] {
					seen[other] = true
					seg.connected = append(seg.connected, other)
				}
			}
		}
		sort.Slice(seg.connected, func(i, j int) bool {
			return seg.connected[i] < seg.connected[j]
		})
	}

	primary := make([]Segment, 0, len(g.segments)/2+1)
	for _, seg := range g.segments {
		if seg.primary {
			primary = append(primary, seg)
		}
	}
	sort.Slice(primary, func(i, j int) bool { return primary[i].ID() < primary[j].ID() })
	g.primary = primary
}

// PrimarySegments returns every forward segment, ordered by ID.
func (g *MemoryGraph) PrimarySegments() []Segment {
	return g.primary
}

// Segment looks up a segment by ID.
func (g *MemoryGraph) Segment(id int64) (Segment, bool) {
	s, ok := g.segments[id]
	return s, ok
}

// Len returns the total segment count, reversed twins included.
func (g *MemoryGraph) Len() int {
	return len(g.segments)
}

// nodeKey buckets a coordinate to ~1cm so float noise from the GeoJSON
// round-trip cannot split a shared node in two.
func nodeKey(l geo.Location) string {
	return fmt.Sprintf("%.7f:%.7f", l.Lat, l.Lon)
}
