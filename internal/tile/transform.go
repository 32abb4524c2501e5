package tile

const (
	// Extent is the size of the integer coordinate space every decoded tile
	// is expressed in.
	Extent = 4096
	// PixelSize is the width and height of a rendered tile.
	PixelSize = 256
	// ScaleFactor compresses Extent-space coordinates into pixel space.
	ScaleFactor = Extent / PixelSize
)

// Point is an integer coordinate pair, x first.
type Point [2]int

// Ring is an ordered sequence of points forming a line string or a polygon
// boundary.
type Ring []Point

// FlipY inverts the y axis: tile space grows upwards, pixel space downwards.
func FlipY(p Point) Point {
	return Point{p[0], Extent - p[1]}
}

// FlipRing applies FlipY to every point and returns a new ring.
func FlipRing(r Ring) Ring {
	out := make(Ring, len(r))
	for i, p := range r {
		out[i] = FlipY(p)
	}
	return out
}

func inRange(v int) bool {
	return v >= 0 && v <= Extent
}

// IsVisible reports whether any point has x in [0, Extent] or any point has
// y in [0, Extent]. The test looks at each axis on its own, so a ring
// lying entirely outside the tile can still pass when one of its
// components happens to fall in range. Rendering output depends on this
// exact rule.
func IsVisible(r Ring) bool {
	for _, p := range r {
		if inRange(p[0]) {
			return true
		}
		if inRange(p[1]) {
			return true
		}
	}
	return false
}

func clamp(v int) int {
	return max(0, min(Extent, v))
}

// Clip clamps both axes of every point into [0, Extent]. The point count
// never changes.
func Clip(r Ring) Ring {
	out := make(Ring, len(r))
	for i, p := range r {
		out[i] = Point{clamp(p[0]), clamp(p[1])}
	}
	return out
}

// Scale divides every coordinate by factor, truncating toward zero.
// A factor below 1 leaves coordinates unchanged.
func Scale(r Ring, factor int) Ring {
	out := make(Ring, len(r))
	if factor < 1 {
		copy(out, r)
		return out
	}
	for i, p := range r {
		out[i] = Point{p[0] / factor, p[1] / factor}
	}
	return out
}
