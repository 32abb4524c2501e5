package mvt

import (
	"bytes"
	"encoding/json"
	"fmt"

	log "github.com/sirupsen/logrus"

	"tilesvg/internal/geom"
	"tilesvg/internal/tile"
)

type jsonLayer struct {
	Extent   int           `json:"extent"`
	Features []jsonFeature `json:"features"`
}

type jsonFeature struct {
	ID         any            `json:"id,omitempty"`
	Type       int            `json:"type"`
	Geometry   any            `json:"geometry"`
	Properties map[string]any `json:"properties"`
}

// DecodeJSON reads a decoded-tile dump: an object mapping layer names to
// {"extent", "features": [{"geometry", "type", "properties"}]} with Y-up
// coordinates. Layers keep their document order; a repeated name replaces
// the earlier layer in place.
func DecodeJSON(data []byte) (*Tile, error) {
	names, raw, err := readLayers(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	t := &Tile{Layers: make([]Layer, 0, len(names))}
	for _, name := range names {
		jl := raw[name]
		extent := jl.Extent
		if extent <= 0 {
			extent = tile.Extent
		}
		rescale := func(p tile.Point) tile.Point {
			return tile.Point{p[0] * tile.Extent / extent, p[1] * tile.Extent / extent}
		}

		l := Layer{Name: name, Extent: tile.Extent, Features: make([]Feature, 0, len(jl.Features))}
		for i, jf := range jl.Features {
			tag := geom.GeometryType(jf.Type)
			g, ok := geom.ParsePayload(tag, jf.Geometry)
			if !ok {
				log.WithFields(log.Fields{"layer": name, "feature": i, "type": tag}).Debug("geometry payload has unexpected shape")
				g = geom.Geometry{Type: geom.Unknown}
			}
			if extent != tile.Extent {
				g = geom.Transform(g, rescale)
			}
			l.Features = append(l.Features, Feature{
				ID:         jf.ID,
				Type:       tag,
				Geometry:   g,
				Properties: jf.Properties,
			})
		}
		t.Layers = append(t.Layers, l)
	}
	return t, nil
}

func readLayers(data []byte) ([]string, map[string]jsonLayer, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, nil, fmt.Errorf("want an object of layers, got %v", tok)
	}

	var names []string
	raw := map[string]jsonLayer{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, nil, err
		}
		name, _ := tok.(string)
		var jl jsonLayer
		if err := dec.Decode(&jl); err != nil {
			return nil, nil, fmt.Errorf("layer %q: %w", name, err)
		}
		if _, seen := raw[name]; !seen {
			names = append(names, name)
		}
		raw[name] = jl
	}
	if _, err := dec.Token(); err != nil {
		return nil, nil, err
	}
	return names, raw, nil
}
