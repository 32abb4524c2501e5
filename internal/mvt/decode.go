package mvt

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/mvt"
	log "github.com/sirupsen/logrus"

	"tilesvg/internal/geom"
	"tilesvg/internal/tile"
)

// Decode decodes protobuf-encoded tile bytes, gzip-wrapped or not.
// Coordinates come back Y-up and rescaled to tile.Extent.
func Decode(data []byte) (*Tile, error) {
	// orb sniffs the gzip magic and needs two bytes for it; no field fits
	// in fewer anyway
	if len(data) < 2 {
		return nil, fmt.Errorf("%w: %d bytes of tile data", ErrDecode, len(data))
	}

	layers, err := mvt.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	t := &Tile{Layers: make([]Layer, 0, len(layers))}
	for _, l := range layers {
		t.Layers = append(t.Layers, decodeLayer(l))
	}

	log.WithFields(log.Fields{
		"layers":   len(t.Layers),
		"features": t.FeatureCount(),
	}).Debug("decoded tile")

	return t, nil
}

func decodeLayer(l *mvt.Layer) Layer {
	extent := int(l.Extent)
	if extent <= 0 {
		extent = tile.Extent
	}

	// orb hands back y-down coordinates in the layer's own extent
	conv := func(p orb.Point) tile.Point {
		x, y := int(p[0]), int(p[1])
		if extent != tile.Extent {
			x = x * tile.Extent / extent
			y = y * tile.Extent / extent
		}
		return tile.Point{x, tile.Extent - y}
	}

	out := Layer{
		Name:     l.Name,
		Extent:   tile.Extent,
		Features: make([]Feature, 0, len(l.Features)),
	}
	for _, f := range l.Features {
		if f == nil {
			continue
		}
		g := geom.FromOrb(f.Geometry, conv)
		out.Features = append(out.Features, Feature{
			ID:         f.ID,
			Type:       g.Type,
			Geometry:   g,
			Properties: map[string]any(f.Properties),
		})
	}
	return out
}
