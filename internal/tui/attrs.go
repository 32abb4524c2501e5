package tui

import (
	"fmt"
	"sort"

	table "github.com/charmbracelet/bubbles/table"

	"tilesvg/internal/mvt"
)

const maxColW = 24

// refreshAttrs rebuilds the table from the features of the selected layer.
func (m *Model) refreshAttrs() {
	cols, rows := buildAttributes(m.tile, m.layer)
	if len(rows) == 0 {
		m.showAttrs = false
		m.status = "no features in current layer"
		return
	}
	tcols := make([]table.Column, 0, len(cols)+1)
	tcols = append(tcols, table.Column{Title: "#", Width: 4})
	for _, c := range cols {
		tcols = append(tcols, table.Column{Title: c, Width: min(len(c)+2, maxColW)})
	}
	trows := make([]table.Row, 0, len(rows))
	for i, r := range rows {
		row := make(table.Row, 0, len(r)+1)
		row = append(row, fmt.Sprintf("%d", i+1))
		row = append(row, r...)
		trows = append(trows, row)
	}
	// clear rows first so columns and rows never disagree in width
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(tcols)
	m.tbl.SetRows(trows)
}

// buildAttributes lists one row per feature of layer, or of every layer
// when layer is empty. Property keys are unioned and sorted.
func buildAttributes(t *mvt.Tile, layer string) ([]string, [][]string) {
	if t == nil {
		return nil, nil
	}
	var layers []mvt.Layer
	if layer == "" {
		layers = t.Layers
	} else if l, ok := t.Layer(layer); ok {
		layers = []mvt.Layer{l}
	}

	seen := map[string]bool{}
	var keys []string
	for _, l := range layers {
		for _, f := range l.Features {
			for k := range f.Properties {
				if !seen[k] {
					seen[k] = true
					keys = append(keys, k)
				}
			}
		}
	}
	sort.Strings(keys)

	var cols []string
	if layer == "" {
		cols = append(cols, "layer")
	}
	cols = append(cols, "geometry")
	cols = append(cols, keys...)

	var rows [][]string
	for _, l := range layers {
		for _, f := range l.Features {
			row := make([]string, 0, len(cols))
			if layer == "" {
				row = append(row, l.Name)
			}
			row = append(row, geometryName(f))
			for _, k := range keys {
				row = append(row, formatValue(f.Properties[k]))
			}
			rows = append(rows, row)
		}
	}
	return cols, rows
}

// geometryName names the feature geometry, Multi-prefixed for multipart
// geometries.
func geometryName(f mvt.Feature) string {
	if f.Geometry.Type == f.Type && f.Geometry.Multi() {
		return "Multi" + f.Type.String()
	}
	return f.Type.String()
}

func formatValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return fmt.Sprintf("%g", t)
	default:
		return fmt.Sprint(t)
	}
}
