package geom

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkt"

	"tilesvg/internal/tile"
)

// ParseWKT reads one WKT geometry whose coordinates are already tile
// coordinates (Y up). Coordinates are rounded to the integer grid.
// Supported: POINT, MULTIPOINT, LINESTRING, MULTILINESTRING, POLYGON,
// MULTIPOLYGON.
func ParseWKT(s string) (Geometry, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Geometry{}, errors.New("empty wkt")
	}
	g, err := wkt.Unmarshal(s)
	if err != nil {
		return Geometry{}, fmt.Errorf("wkt: %w", err)
	}
	out := FromOrb(g, func(p orb.Point) tile.Point {
		return tile.Point{int(math.Round(p[0])), int(math.Round(p[1]))}
	})
	if out.Type == Unknown {
		return Geometry{}, fmt.Errorf("unsupported wkt type %q", g.GeoJSONType())
	}
	return out, nil
}
