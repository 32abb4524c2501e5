package render

import (
	"errors"

	log "github.com/sirupsen/logrus"

	"tilesvg/internal/tile"
)

var (
	// ErrFinalized is returned when a context is flushed a second time.
	ErrFinalized = errors.New("render: context already finalized")
	// ErrLayerNotFound is returned in single-layer mode when the tile has no
	// layer of that name.
	ErrLayerNotFound = errors.New("render: layer not found")
)

// Polyline is a pixel-space line and the style tag that picks its stroke.
type Polyline struct {
	Points tile.Ring
	Style  string
}

// Sink receives every polyline of one render, in accumulation order.
type Sink interface {
	Emit(width, height int, lines []Polyline) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(width, height int, lines []Polyline) error

func (f SinkFunc) Emit(width, height int, lines []Polyline) error {
	return f(width, height, lines)
}

// Context accumulates the polylines of a single render. It is flushed to a
// Sink exactly once and must not be reused afterwards.
type Context struct {
	Width  int
	Height int

	lines     []Polyline
	finalized bool
}

// NewContext returns an empty context sized to one tile.
func NewContext() *Context {
	return &Context{Width: tile.PixelSize, Height: tile.PixelSize}
}

// Add appends a polyline. Polylines added after Finalize are dropped.
func (c *Context) Add(p Polyline) {
	if c.finalized {
		log.WithField("style", p.Style).Warn("polyline added to finalized render context")
		return
	}
	c.lines = append(c.lines, p)
}

// Len returns the number of accumulated polylines.
func (c *Context) Len() int {
	return len(c.lines)
}

// Polylines returns the accumulated polylines in order.
func (c *Context) Polylines() []Polyline {
	out := make([]Polyline, len(c.lines))
	copy(out, c.lines)
	return out
}

// Finalize hands every polyline to s. A second call returns ErrFinalized
// without touching s.
func (c *Context) Finalize(s Sink) error {
	if c.finalized {
		return ErrFinalized
	}
	c.finalized = true
	lines := c.lines
	c.lines = nil
	return s.Emit(c.Width, c.Height, lines)
}
