package mvt

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"tilesvg/internal/geom"
	"tilesvg/internal/tile"
)

// DecodeWKT builds a single-layer tile from WKT text, one geometry per
// line in Y-up tile coordinates. Text after a tab becomes the feature's
// "type" property. Blank lines and lines starting with # are skipped.
func DecodeWKT(layer string, data []byte) (*Tile, error) {
	l := Layer{Name: layer, Extent: tile.Extent}
	sc := bufio.NewScanner(bytes.NewReader(data))
	n := 0
	for sc.Scan() {
		n++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		text, tag, _ := strings.Cut(line, "\t")
		g, err := geom.ParseWKT(text)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrDecode, n, err)
		}
		props := map[string]any{}
		if tag = strings.TrimSpace(tag); tag != "" {
			props["type"] = tag
		}
		l.Features = append(l.Features, Feature{Type: g.Type, Geometry: g, Properties: props})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	log.WithFields(log.Fields{"layer": layer, "features": len(l.Features)}).Debug("decoded wkt tile")
	return &Tile{Layers: []Layer{l}}, nil
}
