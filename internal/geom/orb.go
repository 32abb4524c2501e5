package geom

import (
	"github.com/paulmach/orb"

	"tilesvg/internal/tile"
)

// FromOrb converts a geometry produced by orb's MVT decoder. conv maps each
// orb point into tile coordinates.
func FromOrb(g orb.Geometry, conv func(orb.Point) tile.Point) Geometry {
	ring := func(ls []orb.Point) tile.Ring {
		out := make(tile.Ring, len(ls))
		for i, p := range ls {
			out[i] = conv(p)
		}
		return out
	}
	polygon := func(p orb.Polygon) []tile.Ring {
		out := make([]tile.Ring, len(p))
		for i, r := range p {
			out[i] = ring(r)
		}
		return out
	}

	switch v := g.(type) {
	case orb.Point:
		return Geometry{Type: Point, Points: []tile.Point{conv(v)}}
	case orb.MultiPoint:
		return Geometry{Type: Point, Points: ring(v)}
	case orb.LineString:
		return Geometry{Type: LineString, Lines: []tile.Ring{ring(v)}}
	case orb.MultiLineString:
		lines := make([]tile.Ring, len(v))
		for i, ls := range v {
			lines[i] = ring(ls)
		}
		return Geometry{Type: LineString, Lines: lines}
	case orb.Polygon:
		return Geometry{Type: Polygon, Polygons: [][]tile.Ring{polygon(v)}}
	case orb.MultiPolygon:
		polys := make([][]tile.Ring, len(v))
		for i, p := range v {
			polys[i] = polygon(p)
		}
		return Geometry{Type: Polygon, Polygons: polys}
	}
	return Geometry{Type: Unknown}
}
