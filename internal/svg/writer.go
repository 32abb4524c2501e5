package svg

import (
	"fmt"
	"io"

	svgo "github.com/ajstarks/svgo"

	"tilesvg/internal/render"
)

// Writer is a render.Sink that writes one SVG document per Emit call.
type Writer struct {
	w           io.Writer
	palette     Palette
	StrokeWidth int
}

// NewWriter returns a sink writing SVG to w.
func NewWriter(w io.Writer, p Palette) *Writer {
	return &Writer{w: w, palette: p, StrokeWidth: 1}
}

// errWriter remembers the first write error; svgo does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}

// Emit draws every polyline as an unfilled stroked path, in order.
func (s *Writer) Emit(width, height int, lines []render.Polyline) error {
	ew := &errWriter{w: s.w}
	canvas := svgo.New(ew)
	canvas.Start(width, height)
	for _, l := range lines {
		if len(l.Points) == 0 {
			continue
		}
		xs := make([]int, len(l.Points))
		ys := make([]int, len(l.Points))
		for i, p := range l.Points {
			xs[i], ys[i] = p[0], p[1]
		}
		canvas.Polyline(xs, ys, s.style(l.Style))
	}
	canvas.End()
	if ew.err != nil {
		return fmt.Errorf("write svg: %w", ew.err)
	}
	return nil
}

func (s *Writer) style(tag string) string {
	return fmt.Sprintf("fill:none;stroke:%s;stroke-width:%d", s.palette.Stroke(tag), s.StrokeWidth)
}
