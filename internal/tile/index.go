package tile

import "math"

// MaxZoom is the deepest zoom whose row arithmetic fits 32-bit tile keys.
const MaxZoom = 31

// ValidIndex reports whether x and y address a tile at zoom.
func ValidIndex(x, y, zoom int) bool {
	if zoom < 0 || zoom > MaxZoom {
		return false
	}
	n := 1 << uint(zoom)
	return x >= 0 && x < n && y >= 0 && y < n
}

// LonLatToTileIndex returns the slippy-map tile containing lon/lat at zoom.
// Polar latitudes are undefined.
func LonLatToTileIndex(lat, lon float64, zoom int) (x, y int) {
	latRad := lat * math.Pi / 180
	n := math.Exp2(float64(zoom))

	x = int(math.Floor((lon + 180.0) / 360.0 * n))
	y = int(math.Floor((1.0 - math.Log(math.Tan(latRad)+1.0/math.Cos(latRad))/math.Pi) / 2.0 * n))
	return
}

// FlipRow converts between XYZ and TMS row numbering at zoom.
func FlipRow(row, zoom int) int {
	return (1 << uint(zoom)) - row - 1
}
