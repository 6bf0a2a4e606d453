package basemap

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Layers(t *testing.T) {
	bm, err := Load()
	require.NoError(t, err)

	assert.Len(t, bm.Land, 1)
	assert.Len(t, bm.Ocean, 2)
	assert.Len(t, bm.Borders, 2)
	assert.NotEmpty(t, bm.Lakes)
	assert.NotEmpty(t, bm.Rivers)
	assert.Len(t, bm.Coastlines(), len(bm.Land))
}

func TestLoad_HostCitiesOnLand(t *testing.T) {
	bm, err := Load()
	require.NoError(t, err)

	cities := map[string]orb.Point{
		"Denver":       {-104.9903, 39.7392},
		"Chicago":      {-87.6298, 41.8781},
		"Orlando":      {-81.3792, 28.5383},
		"San Antonio":  {-98.4936, 29.4241},
		"Indianapolis": {-86.1581, 39.7684},
	}
	for name, pt := range cities {
		assert.True(t, planar.PolygonContains(bm.Land[0], pt), "%s should be on land", name)
		for _, ocean := range bm.Ocean {
			assert.False(t, planar.PolygonContains(ocean, pt), "%s should not be in the ocean", name)
		}
	}
}

func TestLoad_RingsClosed(t *testing.T) {
	bm, err := Load()
	require.NoError(t, err)

	polys := append(append(append([]orb.Polygon{}, bm.Land...), bm.Ocean...), bm.Lakes...)
	for i, p := range polys {
		require.NotEmpty(t, p)
		assert.True(t, p[0].Closed(), "polygon %d ring not closed", i)
	}
}

func TestParse_UnknownKind(t *testing.T) {
	_, err := Parse([]byte(`{"type":"FeatureCollection","features":[
		{"type":"Feature","properties":{"kind":"glacier"},"geometry":{"type":"Point","coordinates":[0,0]}}
	]}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown kind "glacier"`)
}

func TestParse_WrongGeometry(t *testing.T) {
	_, err := Parse([]byte(`{"type":"FeatureCollection","features":[
		{"type":"Feature","properties":{"kind":"river"},"geometry":{"type":"Point","coordinates":[0,0]}}
	]}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "want line, got Point")
}

func TestParse_MultiGeometries(t *testing.T) {
	bm, err := Parse([]byte(`{"type":"FeatureCollection","features":[
		{"type":"Feature","properties":{"kind":"lake"},"geometry":{"type":"MultiPolygon","coordinates":[
			[[[0,0],[1,0],[1,1],[0,0]]],
			[[[2,2],[3,2],[3,3],[2,2]]]
		]}},
		{"type":"Feature","properties":{"kind":"border"},"geometry":{"type":"MultiLineString","coordinates":[
			[[0,0],[1,1]],
			[[2,2],[3,3]]
		]}}
	]}`))
	require.NoError(t, err)
	assert.Len(t, bm.Lakes, 2)
	assert.Len(t, bm.Borders, 2)
}
