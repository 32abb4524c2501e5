package mvt

import (
	"errors"

	"tilesvg/internal/geom"
)

// ErrDecode wraps every failure to turn raw bytes into a Tile.
var ErrDecode = errors.New("mvt: decode failed")

// Tile is a decoded vector tile. Layers keep their decode order.
type Tile struct {
	Layers []Layer
}

// Layer is a named list of features. A layer never outlives its tile.
type Layer struct {
	Name     string
	Extent   int
	Features []Feature
}

// Feature is one decoded feature in Y-up tile coordinates.
type Feature struct {
	ID         any
	Type       geom.GeometryType
	Geometry   geom.Geometry
	Properties map[string]any
}

// Layer returns the layer called name.
func (t *Tile) Layer(name string) (Layer, bool) {
	for _, l := range t.Layers {
		if l.Name == name {
			return l, true
		}
	}
	return Layer{}, false
}

// LayerNames returns the layer names in decode order.
func (t *Tile) LayerNames() []string {
	names := make([]string, 0, len(t.Layers))
	for _, l := range t.Layers {
		names = append(names, l.Name)
	}
	return names
}

// FeatureCount returns the number of features across all layers.
func (t *Tile) FeatureCount() int {
	count := 0
	for _, l := range t.Layers {
		count += len(l.Features)
	}
	return count
}
