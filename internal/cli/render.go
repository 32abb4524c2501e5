package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"tilesvg/internal/mvt"
	"tilesvg/internal/render"
	"tilesvg/internal/svg"
)

// LoadTile decodes a tile file by extension: .json is a decoded-tile dump,
// .wkt is one geometry per line in a layer named after the file, anything
// else is protobuf bytes (optionally gzipped).
func LoadTile(path string) (*mvt.Tile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	ext := filepath.Ext(path)
	switch strings.ToLower(ext) {
	case ".json":
		return mvt.DecodeJSON(data)
	case ".wkt":
		return mvt.DecodeWKT(strings.TrimSuffix(filepath.Base(path), ext), data)
	}
	return mvt.Decode(data)
}

// RenderSVG renders t (or one layer of it) and writes the SVG document to w
// without a trailing newline.
func RenderSVG(w io.Writer, t *mvt.Tile, layer, palettePath string) error {
	palette, err := svg.LoadPalette(palettePath)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := render.NewDriver(svg.NewWriter(&buf, palette)).Render(t, render.Options{Layer: layer}); err != nil {
		return err
	}
	return WriteOutput(w, bytes.TrimRight(buf.Bytes(), "\n"))
}
