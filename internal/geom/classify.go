package geom

import "tilesvg/internal/tile"

// Classify flattens a geometry into the rings to render, in input order:
// every line of a (multi) line string, and the outer ring of every polygon.
// Holes are dropped. Points and unknown geometries yield nothing.
func Classify(g Geometry) []tile.Ring {
	switch g.Type {
	case LineString:
		out := make([]tile.Ring, 0, len(g.Lines))
		out = append(out, g.Lines...)
		return out
	case Polygon:
		out := make([]tile.Ring, 0, len(g.Polygons))
		for _, poly := range g.Polygons {
			if len(poly) == 0 {
				continue
			}
			out = append(out, poly[0])
		}
		return out
	}
	return nil
}

// Renderable reports whether Classify can produce rings for t.
func Renderable(t GeometryType) bool {
	return t == LineString || t == Polygon
}

// Transform returns a copy of g with fn applied to every point.
func Transform(g Geometry, fn func(tile.Point) tile.Point) Geometry {
	ring := func(r tile.Ring) tile.Ring {
		if r == nil {
			return nil
		}
		out := make(tile.Ring, len(r))
		for i, p := range r {
			out[i] = fn(p)
		}
		return out
	}

	out := Geometry{Type: g.Type, Points: ring(g.Points)}
	for _, ls := range g.Lines {
		out.Lines = append(out.Lines, ring(ls))
	}
	for _, poly := range g.Polygons {
		rings := make([]tile.Ring, len(poly))
		for i, r := range poly {
			rings[i] = ring(r)
		}
		out.Polygons = append(out.Polygons, rings)
	}
	return out
}
