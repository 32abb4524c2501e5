package tui

import (
	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/paulmach/orb/maptile"

	"tilesvg/internal/mbtiles"
	"tilesvg/internal/mvt"
	"tilesvg/internal/render"
	"tilesvg/internal/svg"
)

type Model struct {
	width  int
	height int

	showSidebar bool
	helpVisible bool

	zoom    float64
	offsetX int
	offsetY int

	status string

	// Source
	store  *mbtiles.Store
	key    maptile.Tile
	hasKey bool
	name   string
	tile   *mvt.Tile

	// Layer selector; "" renders every layer
	l     list.Model
	layer string

	// Rendered output in pixel space
	lines  []render.Polyline
	index  *vertexIndex
	styles *strokeStyles

	// goto prompt
	gotoMode bool
	ta       textarea.Model

	// inspect popup
	inspectPopup string

	// hover state
	hovering   bool
	hoverCellX int
	hoverCellY int
	hoverPx    float64
	hoverPy    float64
	hover      *vertex

	// attributes table
	showAttrs bool
	tbl       table.Model
}

func New(p svg.Palette) Model {
	m := Model{
		showSidebar: true,
		helpVisible: true,
		zoom:        1.0,
		status:      "tileview ready",
		styles:      newStrokeStyles(p),
	}
	d := list.NewDefaultDelegate()
	d.ShowDescription = true
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Layers"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)

	m.ta = textarea.New()
	m.ta.Placeholder = "z/x/y  Enter to load; Esc to cancel."
	m.ta.CharLimit = 32
	m.ta.ShowLineNumbers = false
	m.ta.SetWidth(40)
	m.ta.SetHeight(1)

	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)
	return m
}

// NewWithStore previews tile key from an open MBTiles store. The store
// stays owned by the caller.
func NewWithStore(s *mbtiles.Store, key maptile.Tile, p svg.Palette) Model {
	m := New(p)
	m.store = s
	m.loadKey(key)
	return m
}

// NewWithTile previews an already decoded tile.
func NewWithTile(name string, t *mvt.Tile, p svg.Palette) Model {
	m := New(p)
	m.setTile(name, t)
	return m
}

func (m Model) Init() tea.Cmd { return nil }
