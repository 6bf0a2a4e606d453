// Package basemap provides the background features drawn under the meeting
// markers: land and ocean fills, national borders, lakes, rivers and
// coastlines.
//
// Features are coarse outlines embedded as GeoJSON. Each feature carries a
// "kind" property that selects its layer.
package basemap

import (
	_ "embed"
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

//go:embed features.geojson
var featuresGeoJSON []byte

// Kind names a basemap layer.
type Kind string

const (
	KindLand   Kind = "land"
	KindOcean  Kind = "ocean"
	KindBorder Kind = "border"
	KindLake   Kind = "lake"
	KindRiver  Kind = "river"
)

// Basemap holds the parsed features grouped by layer.
type Basemap struct {
	Land    []orb.Polygon
	Ocean   []orb.Polygon
	Borders []orb.LineString
	Lakes   []orb.Polygon
	Rivers  []orb.LineString
}

// Load parses the embedded features.
func Load() (*Basemap, error) {
	return Parse(featuresGeoJSON)
}

// Parse builds a Basemap from a GeoJSON feature collection.
// Polygon layers accept Polygon and MultiPolygon geometries; line layers
// accept LineString and MultiLineString.
func Parse(data []byte) (*Basemap, error) {
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("parsing basemap: %w", err)
	}

	bm := &Basemap{}
	for i, f := range fc.Features {
		kind := Kind(f.Properties.MustString("kind", ""))
		switch kind {
		case KindLand:
			bm.Land, err = appendPolygons(bm.Land, f.Geometry)
		case KindOcean:
			bm.Ocean, err = appendPolygons(bm.Ocean, f.Geometry)
		case KindLake:
			bm.Lakes, err = appendPolygons(bm.Lakes, f.Geometry)
		case KindBorder:
			bm.Borders, err = appendLines(bm.Borders, f.Geometry)
		case KindRiver:
			bm.Rivers, err = appendLines(bm.Rivers, f.Geometry)
		default:
			err = fmt.Errorf("unknown kind %q", kind)
		}
		if err != nil {
			return nil, fmt.Errorf("basemap feature %d: %w", i, err)
		}
	}
	return bm, nil
}

// Coastlines returns the outer ring of every land polygon.
func (b *Basemap) Coastlines() []orb.LineString {
	lines := make([]orb.LineString, 0, len(b.Land))
	for _, p := range b.Land {
		if len(p) == 0 {
			continue
		}
		lines = append(lines, orb.LineString(p[0]))
	}
	return lines
}

func appendPolygons(dst []orb.Polygon, g orb.Geometry) ([]orb.Polygon, error) {
	switch g := g.(type) {
	case orb.Polygon:
		return append(dst, g), nil
	case orb.MultiPolygon:
		return append(dst, g...), nil
	default:
		return dst, fmt.Errorf("want polygon, got %s", geometryType(g))
	}
}

func appendLines(dst []orb.LineString, g orb.Geometry) ([]orb.LineString, error) {
	switch g := g.(type) {
	case orb.LineString:
		return append(dst, g), nil
	case orb.MultiLineString:
		return append(dst, g...), nil
	default:
		return dst, fmt.Errorf("want line, got %s", geometryType(g))
	}
}

func geometryType(g orb.Geometry) string {
	if g == nil {
		return "no geometry"
	}
	return g.GeoJSONType()
}
