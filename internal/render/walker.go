package render

import (
	log "github.com/sirupsen/logrus"

	"tilesvg/internal/geom"
	"tilesvg/internal/mvt"
	"tilesvg/internal/tile"
)

// Stats counts what a Walker did with the features it saw.
type Stats struct {
	Features    int
	Unsupported int
	Degenerate  int
	Invisible   int
	Emitted     int
}

// Walker runs classification, transform and filtering over decoded
// features and appends the surviving rings to a Context.
type Walker struct {
	ctx   *Context
	scale int
	stats Stats
}

// NewWalker returns a walker writing into ctx.
func NewWalker(ctx *Context) *Walker {
	return &Walker{ctx: ctx, scale: tile.ScaleFactor}
}

// Stats returns the counters accumulated so far.
func (w *Walker) Stats() Stats {
	return w.stats
}

// ProcessRing flips, tests, clips and scales one ring, in that order, and
// reports whether it reached the context. Rings with fewer than two points
// are never emitted.
func (w *Walker) ProcessRing(r tile.Ring, style string) bool {
	if len(r) < 2 {
		w.stats.Degenerate++
		log.WithFields(log.Fields{"style": style, "points": len(r)}).Debug("skipping degenerate ring")
		return false
	}

	flipped := tile.FlipRing(r)
	// visibility is decided on unclipped coordinates
	if !tile.IsVisible(flipped) {
		w.stats.Invisible++
		log.WithFields(log.Fields{"style": style, "points": len(r)}).Debug("ring not in extent")
		return false
	}

	w.ctx.Add(Polyline{
		Points: tile.Scale(tile.Clip(flipped), w.scale),
		Style:  style,
	})
	w.stats.Emitted++
	return true
}

// ProcessFeature renders every line string or polygon outer ring of f.
// Features of other types are skipped.
func (w *Walker) ProcessFeature(layer string, f mvt.Feature) int {
	w.stats.Features++

	if !geom.Renderable(f.Type) || f.Geometry.Type != f.Type {
		w.stats.Unsupported++
		log.WithFields(log.Fields{
			"layer":    layer,
			"type":     f.Type,
			"geometry": f.Geometry.Type,
		}).Debug("skipping unsupported geometry")
		return 0
	}

	style := StyleTag(layer, f.Properties)
	emitted := 0
	for _, r := range geom.Classify(f.Geometry) {
		if w.ProcessRing(r, style) {
			emitted++
		}
	}
	return emitted
}

// WalkLayer processes the features of l in order.
func (w *Walker) WalkLayer(l mvt.Layer) int {
	emitted := 0
	for _, f := range l.Features {
		emitted += w.ProcessFeature(l.Name, f)
	}
	return emitted
}

// WalkTile processes every layer of t in decode order.
func (w *Walker) WalkTile(t *mvt.Tile) int {
	if t == nil {
		return 0
	}
	emitted := 0
	for _, l := range t.Layers {
		emitted += w.WalkLayer(l)
	}
	return emitted
}
