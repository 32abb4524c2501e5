package geom

import (
	"encoding/json"

	"tilesvg/internal/tile"
)

// ParsePayload builds a Geometry from a decoded nested-array payload such as
// the "geometry" member of a JSON tile dump. Decoders of that kind emit the
// same tag for single and multi variants, so the nesting depth of the first
// element decides which one it is. ok is false when the payload does not
// have the shape the tag calls for.
func ParsePayload(t GeometryType, payload any) (g Geometry, ok bool) {
	g.Type = t
	switch t {
	case Point:
		if pt, ok := parsePoint(payload); ok {
			g.Points = []tile.Point{pt}
			return g, true
		}
		pts, ok := parseRing(payload)
		if !ok {
			return Geometry{}, false
		}
		g.Points = pts
		return g, true
	case LineString:
		arr, ok := payload.([]any)
		if !ok {
			return Geometry{}, false
		}
		if len(arr) > 0 && !isPair(arr[0]) {
			lines, ok := parseMultiLineString(arr)
			if !ok {
				return Geometry{}, false
			}
			g.Lines = lines
			return g, true
		}
		ls, ok := parseRing(arr)
		if !ok {
			return Geometry{}, false
		}
		g.Lines = []tile.Ring{ls}
		return g, true
	case Polygon:
		arr, ok := payload.([]any)
		if !ok {
			return Geometry{}, false
		}
		if len(arr) > 0 && isRing(arr[0]) {
			poly, ok := parsePolygon(arr)
			if !ok {
				return Geometry{}, false
			}
			g.Polygons = [][]tile.Ring{poly}
			return g, true
		}
		for _, el := range arr {
			poly, ok := parsePolygon(el)
			if !ok {
				return Geometry{}, false
			}
			g.Polygons = append(g.Polygons, poly)
		}
		return g, true
	}
	return Geometry{Type: Unknown}, true
}

func number(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		return int(n), true
	case float32:
		return int(n), true
	case int:
		return n, true
	case int64:
		return int(n), true
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return int(i), true
		}
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return int(f), true
	}
	return 0, false
}

func isPair(v any) bool {
	_, ok := parsePoint(v)
	return ok
}

// isRing reports whether v is a sequence whose first element is a coordinate
// pair. An empty sequence counts as a ring.
func isRing(v any) bool {
	arr, ok := v.([]any)
	if !ok {
		return false
	}
	return len(arr) == 0 || isPair(arr[0])
}

func parsePoint(v any) (pt tile.Point, ok bool) {
	a, ok := v.([]any)
	if !ok || len(a) < 2 {
		return tile.Point{}, false
	}
	x, xok := number(a[0])
	y, yok := number(a[1])
	if !xok || !yok {
		return tile.Point{}, false
	}
	return tile.Point{x, y}, true
}

// parseRing fails on the first element that is not a coordinate pair.
func parseRing(v any) (tile.Ring, bool) {
	arr, ok := v.([]any)
	if !ok {
		return nil, false
	}
	ring := make(tile.Ring, 0, len(arr))
	for _, el := range arr {
		pt, ok := parsePoint(el)
		if !ok {
			return nil, false
		}
		ring = append(ring, pt)
	}
	return ring, true
}

func parseMultiLineString(arr []any) ([]tile.Ring, bool) {
	lines := make([]tile.Ring, 0, len(arr))
	for _, el := range arr {
		ls, ok := parseRing(el)
		if !ok {
			return nil, false
		}
		lines = append(lines, ls)
	}
	return lines, true
}

func parsePolygon(v any) ([]tile.Ring, bool) {
	arr, ok := v.([]any)
	if !ok {
		return nil, false
	}
	poly := make([]tile.Ring, 0, len(arr))
	for _, el := range arr {
		ring, ok := parseRing(el)
		if !ok {
			return nil, false
		}
		poly = append(poly, ring)
	}
	return poly, true
}
