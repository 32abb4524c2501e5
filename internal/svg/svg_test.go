package svg

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matryer/is"

	"tilesvg/internal/render"
	"tilesvg/internal/tile"
)

func TestPaletteStroke(t *testing.T) {
	is := is.New(t)

	p := DefaultPalette()
	is.Equal(p.Stroke("road"), "#c80a10")
	is.Equal(p.Stroke("ferry"), "#105ac8")
	is.Equal(p.Stroke(""), "#c80a10")

	p.Tags = map[string]string{"water": "#0000ff", "ferry": "#00ff00"}
	is.Equal(p.Stroke("water"), "#0000ff")
	is.Equal(p.Stroke("ferry"), "#00ff00")
}

func TestParsePalette(t *testing.T) {
	is := is.New(t)

	p, err := ParsePalette([]byte("ferry: \"#123456\"\ntags:\n  water: \"#0000ff\"\n"))
	is.NoErr(err)
	is.Equal(p.Default, "#c80a10")
	is.Equal(p.Stroke("ferry"), "#123456")
	is.Equal(p.Stroke("water"), "#0000ff")

	_, err = ParsePalette([]byte("tags: [not, a, map]"))
	is.True(err != nil)
}

func TestLoadPalette(t *testing.T) {
	is := is.New(t)

	p, err := LoadPalette("")
	is.NoErr(err)
	is.Equal(p, DefaultPalette())

	path := filepath.Join(t.TempDir(), "style.yaml")
	is.NoErr(os.WriteFile(path, []byte("default: \"#000000\"\n"), 0o644))
	p, err = LoadPalette(path)
	is.NoErr(err)
	is.Equal(p.Stroke("road"), "#000000")

	_, err = LoadPalette(filepath.Join(t.TempDir(), "missing.yaml"))
	is.True(err != nil)
}

func TestWriterEmitsPolylinesInOrder(t *testing.T) {
	is := is.New(t)

	var buf bytes.Buffer
	w := NewWriter(&buf, DefaultPalette())
	err := w.Emit(tile.PixelSize, tile.PixelSize, []render.Polyline{
		{Points: tile.Ring{{6, 249}, {12, 0}}, Style: "ferry"},
		{Points: tile.Ring{{1, 2}, {3, 4}, {5, 6}}, Style: "road"},
	})
	is.NoErr(err)

	out := buf.String()
	is.Equal(strings.Count(out, "<polyline"), 2)
	is.True(strings.Contains(out, `width="256"`))
	is.True(strings.Contains(out, "6,249 12,0"))
	is.True(strings.Contains(out, "fill:none;stroke:#105ac8"))
	is.True(strings.Contains(out, "fill:none;stroke:#c80a10"))
	is.True(strings.Index(out, "#105ac8") < strings.Index(out, "#c80a10"))
	is.True(strings.HasSuffix(strings.TrimSpace(out), "</svg>"))
}

func TestWriterEmptyImage(t *testing.T) {
	is := is.New(t)

	var buf bytes.Buffer
	is.NoErr(NewWriter(&buf, DefaultPalette()).Emit(tile.PixelSize, tile.PixelSize, nil))

	out := buf.String()
	is.True(strings.Contains(out, "<svg"))
	is.True(strings.Contains(out, "</svg>"))
	is.Equal(strings.Count(out, "<polyline"), 0)
}

func TestWriterThroughDriver(t *testing.T) {
	is := is.New(t)

	var buf bytes.Buffer
	ctx := render.NewContext()
	ctx.Add(render.Polyline{Points: tile.Ring{{0, 0}, {256, 256}}, Style: "road"})
	is.NoErr(ctx.Finalize(NewWriter(&buf, DefaultPalette())))
	is.True(strings.Contains(buf.String(), "0,0 256,256"))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriterReportsWriteErrors(t *testing.T) {
	is := is.New(t)
	err := NewWriter(failingWriter{}, DefaultPalette()).Emit(1, 1, nil)
	is.True(err != nil)
}
