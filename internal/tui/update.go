package tui

import (
	"fmt"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"tilesvg/internal/tile"
)

const (
	sidebarWidth = 28
	headerHeight = 1
	footerHeight = 2
)

// mapArea returns the origin and size of the map canvas; it must match View.
func (m Model) mapArea() (x, y, w, h int) {
	contentHeight := max(4, m.height-headerHeight-footerHeight)
	contentWidth := max(10, m.width)
	sw := 0
	if m.showSidebar {
		sw = sidebarWidth + 1
	}
	return sw, headerHeight, max(10, contentWidth-sw), contentHeight
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		_, _, _, h := m.mapArea()
		m.l.SetSize(sidebarWidth-2, h-2)
	case tea.KeyMsg:
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		if m.gotoMode {
			switch msg.String() {
			case "esc":
				m.gotoMode = false
				m.ta.Blur()
				return m, nil
			case "enter":
				key, err := parseTileKey(m.ta.Value())
				if err != nil {
					m.status = "goto: " + err.Error()
					return m, nil
				}
				m.gotoMode = false
				m.ta.Blur()
				m.loadKey(key)
				return m, nil
			}
			var cmd tea.Cmd
			m.ta, cmd = m.ta.Update(msg)
			return m, cmd
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "+", "=":
			if m.zoom < 64 {
				m.zoom *= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "-", "_":
			if m.zoom > 0.05 {
				m.zoom /= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "0":
			m.zoom = 1.0
			m.offsetX, m.offsetY = 0, 0
			m.status = "view reset"
		case "tab":
			m.showSidebar = !m.showSidebar
		case "g":
			m.gotoMode = true
			m.ta.SetValue("")
			if m.hasKey {
				m.ta.SetValue(tileKey(m.key))
			}
			m.ta.Focus()
			m.status = "goto tile"
			return m, nil
		case "h":
			m.helpVisible = !m.helpVisible
		case "a":
			m.showAttrs = !m.showAttrs
			if m.showAttrs {
				m.refreshAttrs()
			}
		case "i":
			m.inspect()
		case "esc":
			m.inspectPopup = ""
		case "enter":
			if m.showSidebar {
				if it, ok := m.l.SelectedItem().(layerItem); ok {
					m.selectLayer(it.layer())
				}
				return m, nil
			}
		case "up":
			if !m.showSidebar {
				m.offsetY++
			}
		case "down":
			if !m.showSidebar {
				m.offsetY--
			}
		case "left":
			m.offsetX++
		case "right":
			m.offsetX--
		}
	case tea.MouseMsg:
		ox, oy, w, h := m.mapArea()
		cx, cy := msg.X, msg.Y
		if cx >= ox && cx < ox+w && cy >= oy && cy < oy+h {
			m.hovering = true
			m.hoverCellX = cx - ox
			m.hoverCellY = cy - oy
			if px, py, ok := m.cellToPixel(m.hoverCellX, m.hoverCellY, w, h); ok {
				m.hoverPx, m.hoverPy = px, py
				m.hover, _ = m.index.nearest(px, py)
			}
		} else {
			m.hovering = false
			m.hover = nil
		}
	}
	if m.showSidebar && !m.gotoMode {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

// inspect describes the vertex nearest to the pointer, or to the centre of
// the tile when the pointer is outside the map.
func (m *Model) inspect() {
	px, py := float64(tile.PixelSize)/2, float64(tile.PixelSize)/2
	if m.hovering {
		px, py = m.hoverPx, m.hoverPy
	}
	v, ok := m.index.nearest(px, py)
	if !ok {
		m.inspectPopup = "no feature nearby"
		m.status = m.inspectPopup
		return
	}
	l := m.lines[v.line]
	layer := m.layer
	if layer == "" {
		layer = allLayers
	}
	meta := []string{
		fmt.Sprintf("tile: %s", m.name),
		fmt.Sprintf("layer: %s", layer),
		fmt.Sprintf("style: %s", v.style),
		fmt.Sprintf("colour: %s", m.styles.palette.Stroke(v.style)),
		fmt.Sprintf("polyline: %d of %d (%d points)", v.line+1, len(m.lines), len(l.Points)),
		fmt.Sprintf("vertex: %d at %d,%d", v.index, v.pt[0], v.pt[1]),
	}
	m.hover = v
	m.inspectPopup = strings.Join(meta, "\n")
	m.status = "inspect popup"
}
