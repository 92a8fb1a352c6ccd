// file: internal/task/task.go
// version: 1.2.0
// guid: 3b5d7f9a-1c4e-4d6b-8a0c-2e4a6c8e0b2d

package task

import (
	"crypto/rand"
	"fmt"
	"sort"
	"strings"
	"time"

	ulid "github.com/oklog/ulid/v2"

	"github.com/osmlint/roadname-checker/internal/check"
	"github.com/osmlint/roadname-checker/internal/geo"
)

// Point is a flagged location with a human-readable description.
type Point struct {
	Location    geo.Location
	Description string
}

// Task is a single unit of work for a MapRoulette challenge. Identity is the
// identifier plus the challenge name; geometry and instruction do not
// participate in equality.
type Task struct {
	Identifier      string
	ChallengeName   string
	Instruction     string
	Points          []Point
	CooperativeWork []TagChangeOperation
}

// Equal reports whether two tasks denote the same unit of work.
func (t *Task) Equal(other *Task) bool {
	return other != nil &&
		t.Identifier == other.Identifier &&
		t.ChallengeName == other.ChallengeName
}

// FromFlag converts a check flag into a task. The identifier is derived from
// the sorted segment IDs of the flagged cluster, so re-running the check
// over the same data produces the same identifier. The cooperative work
// proposes renaming every segment whose spelling differs from the suggested
// canonical form.
func FromFlag(flag check.Flag, challengeName string) *Task {
	ids := []int64{flag.SegmentID}
	for _, m := range flag.Matches {
		ids = append(ids, m.SegmentID)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprintf("%d", id)
	}

	t := &Task{
		Identifier:    "roadname-" + strings.Join(parts, "-"),
		ChallengeName: challengeName,
		Instruction: fmt.Sprintf(
			"The road name %q may be inconsistent with %d nearby road name(s). Suggested spelling: %q.",
			flag.Name, len(flag.Matches), flag.Suggested),
	}

	t.Points = append(t.Points, Point{
		Location:    flag.Location,
		Description: fmt.Sprintf("Segment %d is named %q", flag.SegmentID, flag.Name),
	})
	if flag.Name != flag.Suggested && flag.Suggested != "" {
		t.CooperativeWork = append(t.CooperativeWork, TagChangeOperation{
			Type:      ModifyElement,
			ElementID: flag.SegmentID,
			Changes:   []TagChange{{Operation: "setTags", Key: "name", Value: flag.Suggested}},
		})
	}
	for _, m := range flag.Matches {
		t.Points = append(t.Points, Point{
			Location:    m.Location,
			Description: fmt.Sprintf("Segment %d is named %q", m.SegmentID, m.Name),
		})
		if m.Name != flag.Suggested && flag.Suggested != "" {
			t.CooperativeWork = append(t.CooperativeWork, TagChangeOperation{
				Type:      ModifyElement,
				ElementID: m.SegmentID,
				Changes:   []TagChange{{Operation: "setTags", Key: "name", Value: flag.Suggested}},
			})
		}
	}
	return t
}

// Document is the wire form of a task.
type Document struct {
	Name            string            `json:"name"`
	Parent          int64             `json:"parent"`
	Instruction     string            `json:"instruction"`
	Geometries      featureCollection `json:"geometries"`
	CooperativeWork []operationDoc    `json:"cooperativeWork,omitempty"`
}

type featureCollection struct {
	Type     string       `json:"type"`
	Features []featureDoc `json:"features"`
}

type featureDoc struct {
	Type       string            `json:"type"`
	Geometry   geometryDoc       `json:"geometry"`
	Properties map[string]string `json:"properties"`
}

type geometryDoc struct {
	Type string `json:"type"`
	// Coordinates is [longitude, latitude] per GeoJSON.
	Coordinates []float64 `json:"coordinates"`
}

// Generate renders the task into the document submitted to MapRoulette,
// parented under the given challenge identifier.
func (t *Task) Generate(parentID int64) (Document, error) {
	if len(t.Points) == 0 {
		return Document{}, fmt.Errorf("task %s has no features", t.Identifier)
	}

	features := make([]featureDoc, 0, len(t.Points))
	for _, p := range t.Points {
		props := map[string]string{}
		if p.Description != "" {
			props["description"] = p.Description
		}
		features = append(features, featureDoc{
			Type: "Feature",
			Geometry: geometryDoc{
				Type:        "Point",
				Coordinates: []float64{p.Location.Lon, p.Location.Lat},
			},
			Properties: props,
		})
	}

	doc := Document{
		Name:        t.Identifier,
		Parent:      parentID,
		Instruction: t.Instruction,
		Geometries:  featureCollection{Type: "FeatureCollection", Features: features},
	}
	for _, op := range t.CooperativeWork {
		doc.CooperativeWork = append(doc.CooperativeWork, op.document())
	}
	return doc, nil
}

// Batch groups the tasks produced by one check run.
type Batch struct {
	RunID         string     `json:"run_id"`
	ChallengeName string     `json:"challenge_name"`
	Generated     time.Time  `json:"generated"`
	Tasks         []Document `json:"tasks"`
}

// NewBatch creates an empty batch with a fresh ULID run identifier.
func NewBatch(challengeName string) (*Batch, error) {
	entropy := ulid.Monotonic(rand.Reader, 0)
	id, err := ulid.New(ulid.Timestamp(time.Now()), entropy)
	if err != nil {
		return nil, fmt.Errorf("failed to generate run ID: %w", err)
	}
	return &Batch{
		RunID:         id.String(),
		ChallengeName: challengeName,
		Generated:     time.Now().UTC(),
	}, nil
}
