// file: internal/task/task_test.go
// version: 1.1.0
// guid: 5d7f9b1c-3e6a-4f8c-a0b2-4d6f8a0c2e4a

package task

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osmlint/roadname-checker/internal/check"
	"github.com/osmlint/roadname-checker/internal/geo"
)

func sampleFlag() check.Flag {
	return check.Flag{
		SegmentID: 2,
		Name:      "Main Steet",
		Location:  geo.Location{Lat: 52.5200, Lon: 13.4010},
		Matches: []check.Match{
			{SegmentID: 1, Name: "Main Street", Location: geo.Location{Lat: 52.5200, Lon: 13.4000}},
		},
		Suggested: "Main Street",
	}
}

func TestFromFlag(t *testing.T) {
	task := FromFlag(sampleFlag(), "Road Name Spelling Consistency")

	assert.Equal(t, "roadname-1-2", task.Identifier, "identifier is built from sorted segment IDs")
	assert.Equal(t, "Road Name Spelling Consistency", task.ChallengeName)
	assert.Contains(t, task.Instruction, `"Main Steet"`)
	assert.Contains(t, task.Instruction, `"Main Street"`)
	require.Len(t, task.Points, 2)

	// Only the misspelled segment gets a rename operation.
	require.Len(t, task.CooperativeWork, 1)
	op := task.CooperativeWork[0]
	assert.Equal(t, ModifyElement, op.Type)
	assert.Equal(t, int64(2), op.ElementID)
	require.Len(t, op.Changes, 1)
	assert.Equal(t, "setTags", op.Changes[0].Operation)
	assert.Equal(t, "name", op.Changes[0].Key)
	assert.Equal(t, "Main Street", op.Changes[0].Value)
}

func TestFromFlag_DeterministicIdentifier(t *testing.T) {
	a := FromFlag(sampleFlag(), "c")
	b := FromFlag(sampleFlag(), "c")
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(FromFlag(sampleFlag(), "other challenge")))
}

func TestGenerate(t *testing.T) {
	task := FromFlag(sampleFlag(), "c")
	doc, err := task.Generate(77)
	require.NoError(t, err)

	raw, err := json.Marshal(doc)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))

	assert.Equal(t, "roadname-1-2", decoded["name"])
	assert.EqualValues(t, 77, decoded["parent"])

	geometries := decoded["geometries"].(map[string]any)
	assert.Equal(t, "FeatureCollection", geometries["type"])
	features := geometries["features"].([]any)
	require.Len(t, features, 2)

	first := features[0].(map[string]any)
	assert.Equal(t, "Feature", first["type"])
	geom := first["geometry"].(map[string]any)
	assert.Equal(t, "Point", geom["type"])
	coords := geom["coordinates"].([]any)
	// GeoJSON order: [lon, lat].
	assert.InDelta(t, 13.4010, coords[0].(float64), 1e-9)
	assert.InDelta(t, 52.5200, coords[1].(float64), 1e-9)
	props := first["properties"].(map[string]any)
	assert.Contains(t, props["description"], "Segment 2")

	coop := decoded["cooperativeWork"].([]any)
	require.Len(t, coop, 1)
	op := coop[0].(map[string]any)
	assert.Equal(t, "modifyElement", op["operationType"])
	data := op["data"].(map[string]any)
	assert.EqualValues(t, 2, data["id"])
	ops := data["operations"].([]any)
	require.Len(t, ops, 1)
	nested := ops[0].(map[string]any)
	assert.Equal(t, "setTags", nested["operation"])
	assert.Equal(t, map[string]any{"name": "Main Street"}, nested["data"])
}

func TestGenerate_NoPoints(t *testing.T) {
	empty := &Task{Identifier: "x", ChallengeName: "c"}
	_, err := empty.Generate(1)
	assert.Error(t, err)
}

func TestCooperativeWork_UnsetTags(t *testing.T) {
	op := TagChangeOperation{
		Type:      RemoveElement,
		ElementID: 9,
		Changes:   []TagChange{{Operation: "unsetTags", Key: "name"}},
	}
	raw, err := json.Marshal(op.document())
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "removeElement", decoded["operationType"])
	nested := decoded["data"].(map[string]any)["operations"].([]any)[0].(map[string]any)
	assert.Equal(t, "unsetTags", nested["operation"])
	assert.Equal(t, []any{"name"}, nested["data"])
}

func TestNewBatch(t *testing.T) {
	b1, err := NewBatch("c")
	require.NoError(t, err)
	b2, err := NewBatch("c")
	require.NoError(t, err)
	assert.NotEmpty(t, b1.RunID)
	assert.NotEqual(t, b1.RunID, b2.RunID)
	assert.Equal(t, "c", b1.ChallengeName)
}
