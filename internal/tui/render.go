package tui

import (
	"strings"

	"tilesvg/internal/tile"
)

// viewport maps tile pixels onto a square area of the braille microgrid
// (2x4 per cell) centred in a w x h cell canvas.
type viewport struct {
	side       int // microgrid pixels per tile edge
	padX, padY int
	zoom       float64
	offX, offY int // pan in microgrid pixels
}

func (m Model) viewport(w, h int) viewport {
	wMic, hMic := w*2, h*4
	side := min(wMic, hMic)
	return viewport{
		side: side,
		padX: (wMic - side) / 2,
		padY: (hMic - side) / 2,
		zoom: m.zoom,
		offX: m.offsetX * 2,
		offY: m.offsetY * 4,
	}
}

// toMicro maps a pixel position (Y down) onto the microgrid.
func (v viewport) toMicro(p tile.Point) (int, int) {
	nx := float64(p[0]) / tile.PixelSize
	ny := float64(p[1]) / tile.PixelSize
	zx := 0.5 + (nx-0.5)*v.zoom
	zy := 0.5 + (ny-0.5)*v.zoom
	span := float64(v.side - 1)
	return int(zx*span) + v.padX + v.offX, int(zy*span) + v.padY + v.offY
}

// fromCell maps a map cell back to tile pixels.
func (v viewport) fromCell(cx, cy int) (float64, float64, bool) {
	if v.side <= 1 || v.zoom == 0 {
		return 0, 0, false
	}
	span := float64(v.side - 1)
	zx := float64(cx*2-v.padX-v.offX) / span
	zy := float64(cy*4-v.padY-v.offY) / span
	nx := 0.5 + (zx-0.5)/v.zoom
	ny := 0.5 + (zy-0.5)/v.zoom
	return nx * tile.PixelSize, ny * tile.PixelSize, true
}

// cellToPixel converts a map cell coordinate to tile pixels using zoom and pan.
func (m Model) cellToPixel(cx, cy, w, h int) (float64, float64, bool) {
	return m.viewport(w, h).fromCell(cx, cy)
}

func (m Model) renderMap(w, h int) string {
	if w <= 0 || h <= 0 {
		return ""
	}
	br := newBrailleBuf(w, h)
	vp := m.viewport(w, h)

	// tile outline
	const edge = tile.PixelSize
	corners := []tile.Point{{0, 0}, {edge, 0}, {edge, edge}, {0, edge}, {0, 0}}
	for i := 1; i < len(corners); i++ {
		x0, y0 := vp.toMicro(corners[i-1])
		x1, y1 := vp.toMicro(corners[i])
		br.drawLineMicro(x0, y0, x1, y1, "")
	}

	for _, l := range m.lines {
		for i := 1; i < len(l.Points); i++ {
			x0, y0 := vp.toMicro(l.Points[i-1])
			x1, y1 := vp.toMicro(l.Points[i])
			br.drawLineMicro(x0, y0, x1, y1, l.Style)
		}
	}

	hx, hy := -1, -1
	if m.hover != nil {
		mx, my := vp.toMicro(m.hover.pt)
		hx, hy = mx/2, my/4
	}
	rows := br.toLines(func(x, y int, glyph, tag string) string {
		switch {
		case x == hx && y == hy:
			return hoverStyle.Render("◯")
		case glyph == " ":
			return glyph
		case tag == "":
			return dimStyle.Render(glyph)
		}
		return m.styles.style(tag).Render(glyph)
	})
	return strings.Join(rows, "\n")
}
