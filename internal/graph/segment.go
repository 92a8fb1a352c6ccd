// file: internal/graph/segment.go
// version: 1.1.0
// guid: 5a9c3b7d-2e4f-4c6a-8b0d-1f3e5a7c9b2d

package graph

import (
	"fmt"

	"github.com/osmlint/roadname-checker/internal/geo"
)

// Segment is a directed piece of a road. Implementations are immutable and
// safe for concurrent reads.
type Segment interface {
	// ID is a stable identifier. A segment and its reversed twin share the
	// same magnitude; the reversed twin carries the negated value.
	ID() int64
	// Start is the location of the segment's first node.
	Start() geo.Location
	// End is the location of the segment's last node.
	End() geo.Location
	// Name returns the segment's name tag, if present.
	Name() (string, bool)
	// Connected returns every segment sharing a node with this one,
	// excluding the segment itself.
	Connected() []Segment
	// IsPrimary reports whether this is the forward direction of the road.
	// Reversed twins of two-way roads are not primary.
	IsPrimary() bool
}

// GraphDataError reports malformed geometry or missing location data on a
// segment. It is fatal to the single traversal that touched the segment and
// must not abort sibling traversals.
type GraphDataError struct {
	SegmentID int64
	Reason    string
}

func (e *GraphDataError) Error() string {
	return fmt.Sprintf("segment %d: %s", e.SegmentID, e.Reason)
}

// Validate checks that a segment carries usable geometry. It returns a
// *GraphDataError when either endpoint is missing.
func Validate(s Segment) error {
	if s.Start().IsZero() {
		return &GraphDataError{SegmentID: s.ID(), Reason: "missing start location"}
	}
	if s.End().IsZero() {
		return &GraphDataError{SegmentID: s.ID(), Reason: "missing end location"}
	}
	return nil
}
