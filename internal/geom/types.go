package geom

import "tilesvg/internal/tile"

// GeometryType is the MVT geometry-type tag carried by every feature.
type GeometryType int

const (
	Unknown GeometryType = iota
	Point
	LineString
	Polygon
)

func (t GeometryType) String() string {
	switch t {
	case Point:
		return "Point"
	case LineString:
		return "LineString"
	case Polygon:
		return "Polygon"
	default:
		return "Unknown"
	}
}

// Geometry is a decoded feature geometry in tile coordinates.
// Single and multi variants share one shape: a LineString holds one or more
// entries in Lines, a Polygon one or more entries in Polygons (each a list
// of rings, first outer, following holes).
type Geometry struct {
	Type     GeometryType
	Points   []tile.Point
	Lines    []tile.Ring
	Polygons [][]tile.Ring
}

// Multi reports whether the geometry has more than one part.
func (g Geometry) Multi() bool {
	switch g.Type {
	case Point:
		return len(g.Points) > 1
	case LineString:
		return len(g.Lines) > 1
	case Polygon:
		return len(g.Polygons) > 1
	}
	return false
}
