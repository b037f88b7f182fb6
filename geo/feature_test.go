package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleGeoJSON = `{
  "type": "FeatureCollection",
  "features": [
    {"type": "Feature", "properties": {"name": "Square"},
     "geometry": {"type": "Polygon", "coordinates": [
       [[0,0],[10,0],[10,10],[0,10],[0,0]],
       [[4,4],[6,4],[6,6],[4,6],[4,4]]
     ]}},
    {"type": "Feature", "properties": {"name": "Islands"},
     "geometry": {"type": "MultiPolygon", "coordinates": [
       [[[20,20],[22,20],[22,22],[20,22],[20,20]]],
       [[[30,30],[32,30],[32,32],[30,32],[30,30]]]
     ]}},
    {"type": "Feature", "properties": {"name": "Overlay"},
     "geometry": {"type": "Polygon", "coordinates": [[[8,8],[12,8],[12,12],[8,12],[8,8]]]}},
    {"type": "Feature", "properties": {"name": "Line"},
     "geometry": {"type": "LineString", "coordinates": [[0,0],[1,1]]}},
    {"type": "Feature", "properties": {"name": "Empty"}, "geometry": null}
  ]
}`

func TestDecode_KeepsPolygons(t *testing.T) {
	c, err := Decode([]byte(sampleGeoJSON))
	require.NoError(t, err)
	assert.Equal(t, []string{"Square", "Islands", "Overlay"}, c.Names())
	assert.Len(t, c.Features[0].Polygons[0], 2)
	assert.Len(t, c.Features[1].Polygons, 2)
}

func TestDecode_Errors(t *testing.T) {
	_, err := Decode([]byte(`not json`))
	assert.ErrorIs(t, err, ErrDecode)

	_, err = Decode([]byte(`{"type":"Feature"}`))
	assert.ErrorIs(t, err, ErrDecode)
}

func TestFeatureAt_HolesAndTopmost(t *testing.T) {
	c, err := Decode([]byte(sampleGeoJSON))
	require.NoError(t, err)

	f, ok := c.FeatureAt(2, 2)
	require.True(t, ok)
	assert.Equal(t, "Square", f.Name)

	// Inside the hole
	_, ok = c.FeatureAt(5, 5)
	assert.False(t, ok)

	// Square and Overlay overlap; Overlay is drawn later
	f, ok = c.FeatureAt(9, 9)
	require.True(t, ok)
	assert.Equal(t, "Overlay", f.Name)

	f, ok = c.FeatureAt(31, 31)
	require.True(t, ok)
	assert.Equal(t, "Islands", f.Name)

	_, ok = c.FeatureAt(-50, -50)
	assert.False(t, ok)
}

func TestFeatureAt_NilCollection(t *testing.T) {
	var c *Collection
	_, ok := c.FeatureAt(0, 0)
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())
}

func TestRingContains_UnclosedRing(t *testing.T) {
	r := Ring{{0, 0}, {4, 0}, {4, 4}, {0, 4}}
	assert.True(t, ringContains(r, 1, 1))
	assert.False(t, ringContains(r, 5, 1))
}
