// Package geo loads country outlines for the globe and answers point-in-country queries
package geo

import (
	"encoding/json"
	"fmt"
)

// Point is a longitude/latitude pair in degrees
type Point struct {
	Lon, Lat float64
}

// Ring is a closed linear ring; the first point may or may not be repeated at the end
type Ring []Point

// Polygon is an outer ring followed by zero or more holes
type Polygon []Ring

// Feature is one named country outline
type Feature struct {
	Name     string
	Polygons []Polygon
	bounds   bbox
}

type bbox struct {
	minLon, minLat, maxLon, maxLat float64
}

func (b bbox) contains(lon, lat float64) bool {
	return lon >= b.minLon && lon <= b.maxLon && lat >= b.minLat && lat <= b.maxLat
}

// NewFeature builds a feature and caches its bounding box
func NewFeature(name string, polygons ...Polygon) Feature {
	f := Feature{Name: name, Polygons: polygons}
	f.bounds = bbox{minLon: 181, minLat: 91, maxLon: -181, maxLat: -91}
	for _, poly := range polygons {
		if len(poly) == 0 {
			continue
		}
		for _, p := range poly[0] {
			f.bounds.minLon = min(f.bounds.minLon, p.Lon)
			f.bounds.maxLon = max(f.bounds.maxLon, p.Lon)
			f.bounds.minLat = min(f.bounds.minLat, p.Lat)
			f.bounds.maxLat = max(f.bounds.maxLat, p.Lat)
		}
	}
	return f
}

// Contains reports whether (lon, lat) lies inside any polygon of f and outside its holes
func (f Feature) Contains(lon, lat float64) bool {
	if !f.bounds.contains(lon, lat) {
		return false
	}
	for _, poly := range f.Polygons {
		if len(poly) == 0 || !ringContains(poly[0], lon, lat) {
			continue
		}
		inHole := false
		for _, hole := range poly[1:] {
			if ringContains(hole, lon, lat) {
				inHole = true
				break
			}
		}
		if !inHole {
			return true
		}
	}
	return false
}

// ringContains is even-odd ray casting in the lon/lat plane
func ringContains(r Ring, lon, lat float64) bool {
	inside := false
	n := len(r)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := r[i], r[j]
		if (a.Lat > lat) != (b.Lat > lat) {
			x := (b.Lon-a.Lon)*(lat-a.Lat)/(b.Lat-a.Lat) + a.Lon
			if lon < x {
				inside = !inside
			}
		}
	}
	return inside
}

// Collection is the ordered feature list; later features draw on top of earlier ones
type Collection struct {
	Features []Feature
}

// FeatureAt returns the topmost feature containing the point
func (c *Collection) FeatureAt(lon, lat float64) (Feature, bool) {
	if c == nil {
		return Feature{}, false
	}
	for i := len(c.Features) - 1; i >= 0; i-- {
		if c.Features[i].Contains(lon, lat) {
			return c.Features[i], true
		}
	}
	return Feature{}, false
}

// Names returns every feature name in draw order
func (c *Collection) Names() []string {
	if c == nil {
		return nil
	}
	names := make([]string, len(c.Features))
	for i, f := range c.Features {
		names[i] = f.Name
	}
	return names
}

// Len returns the number of features
func (c *Collection) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Features)
}

// GeoJSON wire shapes
type featureCollectionJSON struct {
	Type     string        `json:"type"`
	Features []featureJSON `json:"features"`
}

type featureJSON struct {
	Properties struct {
		Name string `json:"name"`
	} `json:"properties"`
	Geometry *geometryJSON `json:"geometry"`
}

type geometryJSON struct {
	Type        string          `json:"type"`
	Coordinates json.RawMessage `json:"coordinates"`
}

// Decode parses a GeoJSON FeatureCollection. Polygon and MultiPolygon geometries are
// kept, features with other or missing geometry are skipped
func Decode(data []byte) (*Collection, error) {
	var fc featureCollectionJSON
	if err := json.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if fc.Type != "FeatureCollection" {
		return nil, fmt.Errorf("%w: unexpected type %q", ErrDecode, fc.Type)
	}

	c := &Collection{Features: make([]Feature, 0, len(fc.Features))}
	for i, fj := range fc.Features {
		if fj.Geometry == nil || fj.Properties.Name == "" {
			continue
		}
		var polys []Polygon
		switch fj.Geometry.Type {
		case "Polygon":
			var raw [][][]float64
			if err := json.Unmarshal(fj.Geometry.Coordinates, &raw); err != nil {
				return nil, fmt.Errorf("%w: feature %d (%s): %v", ErrDecode, i, fj.Properties.Name, err)
			}
			polys = []Polygon{toPolygon(raw)}
		case "MultiPolygon":
			var raw [][][][]float64
			if err := json.Unmarshal(fj.Geometry.Coordinates, &raw); err != nil {
				return nil, fmt.Errorf("%w: feature %d (%s): %v", ErrDecode, i, fj.Properties.Name, err)
			}
			polys = make([]Polygon, 0, len(raw))
			for _, p := range raw {
				polys = append(polys, toPolygon(p))
			}
		default:
			continue
		}
		c.Features = append(c.Features, NewFeature(fj.Properties.Name, polys...))
	}
	return c, nil
}

func toPolygon(raw [][][]float64) Polygon {
	poly := make(Polygon, 0, len(raw))
	for _, r := range raw {
		ring := make(Ring, 0, len(r))
		for _, pt := range r {
			if len(pt) < 2 {
				continue
			}
			ring = append(ring, Point{Lon: pt[0], Lat: pt[1]})
		}
		poly = append(poly, ring)
	}
	return poly
}
