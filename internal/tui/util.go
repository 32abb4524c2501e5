package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/paulmach/orb/maptile"

	"tilesvg/internal/tile"
)

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// parseTileKey reads "z/x/y".
func parseTileKey(s string) (maptile.Tile, error) {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) != 3 {
		return maptile.Tile{}, fmt.Errorf("want z/x/y, got %q", s)
	}
	var v [3]uint64
	for i, p := range parts {
		n, err := strconv.ParseUint(strings.TrimSpace(p), 10, 32)
		if err != nil {
			return maptile.Tile{}, fmt.Errorf("want z/x/y, got %q", s)
		}
		v[i] = n
	}
	if !tile.ValidIndex(int(v[1]), int(v[2]), int(v[0])) {
		return maptile.Tile{}, fmt.Errorf("tile %s out of range", s)
	}
	return maptile.New(uint32(v[1]), uint32(v[2]), maptile.Zoom(v[0])), nil
}

func tileKey(t maptile.Tile) string {
	return fmt.Sprintf("%d/%d/%d", t.Z, t.X, t.Y)
}
