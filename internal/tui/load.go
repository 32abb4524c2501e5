package tui

import (
	"errors"
	"fmt"

	list "github.com/charmbracelet/bubbles/list"
	"github.com/paulmach/orb/maptile"
	log "github.com/sirupsen/logrus"

	"tilesvg/internal/mbtiles"
	"tilesvg/internal/mvt"
	"tilesvg/internal/render"
)

const allLayers = "all"

type layerItem struct {
	name     string
	features int
	all      bool
}

func (i layerItem) Title() string { return i.name }
func (i layerItem) Description() string {
	return fmt.Sprintf("%d features", i.features)
}
func (i layerItem) FilterValue() string { return i.name }

// layer is the value handed to the render driver.
func (i layerItem) layer() string {
	if i.all {
		return ""
	}
	return i.name
}

func layerItems(t *mvt.Tile) []list.Item {
	if t == nil {
		return nil
	}
	items := []list.Item{layerItem{name: allLayers, features: t.FeatureCount(), all: true}}
	for _, l := range t.Layers {
		items = append(items, layerItem{name: l.Name, features: len(l.Features)})
	}
	return items
}

// loadKey reads tile key from the store, gunzips it and shows it.
func (m *Model) loadKey(key maptile.Tile) {
	if m.store == nil {
		m.status = "goto needs an mbtiles store"
		return
	}
	data, err := mbtiles.Extract(m.store, key, true)
	if errors.Is(err, mbtiles.ErrNotFound) {
		m.status = "no tile at " + tileKey(key)
		return
	}
	if err != nil {
		m.status = "load error: " + err.Error()
		return
	}
	t, err := mvt.Decode(data)
	if err != nil {
		m.status = "decode error: " + err.Error()
		return
	}
	m.key, m.hasKey = key, true
	m.setTile(tileKey(key), t)
}

// setTile replaces the shown tile and resets the view to all layers.
func (m *Model) setTile(name string, t *mvt.Tile) {
	m.name = name
	m.tile = t
	m.layer = ""
	m.zoom = 1.0
	m.offsetX, m.offsetY = 0, 0
	m.inspectPopup = ""
	m.hover = nil
	m.l.SetItems(layerItems(t))
	m.l.Select(0)
	m.rerender()
	if m.showAttrs {
		m.refreshAttrs()
	}
}

// selectLayer switches between all-layers ("") and single-layer mode.
func (m *Model) selectLayer(layer string) {
	m.layer = layer
	m.hover = nil
	m.rerender()
	if m.showAttrs {
		m.refreshAttrs()
	}
}

// rerender runs the tile through the render driver and rebuilds the
// vertex index over its output.
func (m *Model) rerender() {
	m.lines = nil
	sink := render.SinkFunc(func(_, _ int, lines []render.Polyline) error {
		m.lines = lines
		return nil
	})
	if err := render.NewDriver(sink).Render(m.tile, render.Options{Layer: m.layer}); err != nil {
		m.status = "render error: " + err.Error()
		m.index = nil
		return
	}
	m.index = newVertexIndex(m.lines)
	shown := m.layer
	if shown == "" {
		shown = allLayers
	}
	m.status = fmt.Sprintf("%s  layer: %s  polylines=%d", m.name, shown, len(m.lines))
	log.WithFields(log.Fields{"tile": m.name, "layer": shown, "polylines": len(m.lines)}).Debug("preview rendered")
}
