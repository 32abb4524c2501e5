package render

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"tilesvg/internal/mvt"
)

// Options selects what a Driver renders. An empty Layer means every layer.
type Options struct {
	Layer string
}

// Driver owns one render context per call and flushes it to its sink.
type Driver struct {
	sink Sink
}

// NewDriver returns a driver emitting into sink.
func NewDriver(sink Sink) *Driver {
	return &Driver{sink: sink}
}

// Render walks t, or only the layer named in opts, and finalizes the
// result into the sink. A tile without renderable features still produces
// an empty image.
func (d *Driver) Render(t *mvt.Tile, opts Options) error {
	ctx := NewContext()
	w := NewWalker(ctx)

	if opts.Layer == "" {
		w.WalkTile(t)
	} else {
		var (
			l  mvt.Layer
			ok bool
		)
		if t != nil {
			l, ok = t.Layer(opts.Layer)
		}
		if !ok {
			return fmt.Errorf("%w: %q", ErrLayerNotFound, opts.Layer)
		}
		w.WalkLayer(l)
	}

	st := w.Stats()
	log.WithFields(log.Fields{
		"layer":       opts.Layer,
		"features":    st.Features,
		"unsupported": st.Unsupported,
		"degenerate":  st.Degenerate,
		"invisible":   st.Invisible,
		"polylines":   st.Emitted,
	}).Debug("render finished")

	return ctx.Finalize(d.sink)
}
