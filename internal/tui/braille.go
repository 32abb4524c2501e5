package tui

import "strings"

type brailleBuf struct {
	w, h int        // in cells
	m    [][]uint8  // per-cell 8-bit mask
	tag  [][]string // style tag of the last stroke through each cell
}

func newBrailleBuf(w, h int) *brailleBuf {
	m := make([][]uint8, h)
	tag := make([][]string, h)
	for i := range m {
		m[i] = make([]uint8, w)
		tag[i] = make([]string, w)
	}
	return &brailleBuf{w: w, h: h, m: m, tag: tag}
}

var brailleBits = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// setPixel sets a micro-pixel at micro coords (2x4 per cell)
func (b *brailleBuf) setPixel(mx, my int, tag string) {
	if mx < 0 || my < 0 {
		return
	}
	cx, rx := mx/2, mx%2
	cy, ry := my/4, my%4
	if cy >= b.h || cx >= b.w {
		return
	}
	b.m[cy][cx] |= brailleBits[rx][ry]
	b.tag[cy][cx] = tag
}

// drawLineMicro draws a line on the microgrid using Bresenham
func (b *brailleBuf) drawLineMicro(x0, y0, x1, y1 int, tag string) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		b.setPixel(x0, y0, tag)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// toLines renders the buffer. cell, when set, decorates every cell's glyph
// given its position and the style tag of the stroke through it.
func (b *brailleBuf) toLines(cell func(x, y int, glyph, tag string) string) []string {
	out := make([]string, b.h)
	for y := 0; y < b.h; y++ {
		var row strings.Builder
		for x := 0; x < b.w; x++ {
			glyph := " "
			if mask := b.m[y][x]; mask != 0 {
				glyph = string(rune(0x2800 + int(mask)))
			}
			if cell != nil {
				glyph = cell(x, y, glyph, b.tag[y][x])
			}
			row.WriteString(glyph)
		}
		out[y] = row.String()
	}
	return out
}
