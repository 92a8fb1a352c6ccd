// file: internal/graph/memory_test.go
// version: 1.1.0
// guid: 2b6d8f0a-4c7e-4e9b-a1d3-5f7a9c1e3b5d

package graph

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// threeRoads is a tiny connected network: two named two-way roads meeting a
// oneway link at shared nodes.
const threeRoads = `{
  "type": "FeatureCollection",
  "features": [
    {
      "type": "Feature",
      "geometry": {"type": "LineString", "coordinates": [[13.4000, 52.5200], [13.4010, 52.5200]]},
      "properties": {"id": 1, "name": "Main Street"}
    },
    {
      "type": "Feature",
      "geometry": {"type": "LineString", "coordinates": [[13.4010, 52.5200], [13.4020, 52.5200]]},
      "properties": {"id": 2, "name": "Main Steet"}
    },
    {
      "type": "Feature",
      "geometry": {"type": "LineString", "coordinates": [[13.4020, 52.5200], [13.4020, 52.5210]]},
      "properties": {"id": 3, "name": "Side Road", "oneway": true}
    }
  ]
}`

func TestLoad(t *testing.T) {
	g, err := Load(strings.NewReader(threeRoads))
	require.NoError(t, err)

	// Two two-way roads (forward + reversed twin) plus one oneway.
	assert.Equal(t, 5, g.Len())
	assert.Len(t, g.PrimarySegments(), 3)

	seg, ok := g.Segment(1)
	require.True(t, ok)
	name, has := seg.Name()
	assert.True(t, has)
	assert.Equal(t, "Main Street", name)
	assert.True(t, seg.IsPrimary())
	assert.InDelta(t, 52.52, seg.Start().Lat, 1e-9)
	assert.InDelta(t, 13.40, seg.Start().Lon, 1e-9)

	rev, ok := g.Segment(-1)
	require.True(t, ok)
	assert.False(t, rev.IsPrimary())
	assert.Equal(t, seg.Start(), rev.End())
	assert.Equal(t, seg.End(), rev.Start())

	// The oneway link has no reversed twin.
	_, ok = g.Segment(-3)
	assert.False(t, ok)
}

func TestLoad_Adjacency(t *testing.T) {
	g, err := Load(strings.NewReader(threeRoads))
	require.NoError(t, err)

	seg, _ := g.Segment(2)
	ids := make(map[int64]bool)
	for _, c := range seg.Connected() {
		ids[c.ID()] = true
	}
	// Segment 2 touches 1 and -1 at its west node, 3 at its east node, and
	// its own twin -2 at both.
	assert.Equal(t, map[int64]bool{1: true, -1: true, -2: true, 3: true}, ids)
	assert.False(t, ids[2], "a segment never lists itself as connected")
}

func TestLoad_NormalizesNames(t *testing.T) {
	// U+0065 U+0301 (e + combining acute) must load as the precomposed U+00E9.
	input := `{"type":"FeatureCollection","features":[{"type":"Feature",
	  "geometry":{"type":"LineString","coordinates":[[0.1,0.1],[0.2,0.2]]},
	  "properties":{"id":7,"name":"Café Lane"}}]}`
	g, err := Load(strings.NewReader(input))
	require.NoError(t, err)
	seg, _ := g.Segment(7)
	name, _ := seg.Name()
	assert.Equal(t, "Café Lane", name)
}

func TestLoad_UnnamedAndBlankNames(t *testing.T) {
	input := `{"type":"FeatureCollection","features":[
	  {"type":"Feature","geometry":{"type":"LineString","coordinates":[[0.1,0.1],[0.2,0.2]]},"properties":{"id":1,"name":"   "}},
	  {"type":"Feature","geometry":{"type":"LineString","coordinates":[[0.2,0.2],[0.3,0.3]]},"properties":{"id":2}}]}`
	g, err := Load(strings.NewReader(input))
	require.NoError(t, err)
	for _, id := range []int64{1, 2} {
		seg, _ := g.Segment(id)
		if _, has := seg.Name(); has {
			t.Errorf("segment %d: blank or absent name should read as unnamed", id)
		}
	}
}

func TestLoad_RejectsNonFeatureCollection(t *testing.T) {
	_, err := Load(strings.NewReader(`{"type":"Feature"}`))
	assert.Error(t, err)
}

func TestLoad_DuplicateID(t *testing.T) {
	input := `{"type":"FeatureCollection","features":[
	  {"type":"Feature","geometry":{"type":"LineString","coordinates":[[0.1,0.1],[0.2,0.2]]},"properties":{"id":4}},
	  {"type":"Feature","geometry":{"type":"LineString","coordinates":[[0.3,0.3],[0.4,0.4]]},"properties":{"id":4}}]}`
	_, err := Load(strings.NewReader(input))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	input := `{"type":"FeatureCollection","features":[
	  {"type":"Feature","geometry":{"type":"LineString","coordinates":[[0.1,0.1]]},"properties":{"id":9,"name":"Broken Way"}},
	  {"type":"Feature","geometry":{"type":"LineString","coordinates":[[0.1,0.1],[0.2,0.2]]},"properties":{"id":10,"name":"Fine Way"}}]}`
	g, err := Load(strings.NewReader(input))
	require.NoError(t, err)

	broken, _ := g.Segment(9)
	err = Validate(broken)
	require.Error(t, err)
	var gde *GraphDataError
	require.True(t, errors.As(err, &gde))
	assert.Equal(t, int64(9), gde.SegmentID)

	fine, _ := g.Segment(10)
	assert.NoError(t, Validate(fine))
}
