package cli

import (
	"bytes"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matryer/is"
	"github.com/paulmach/orb"
	orbmvt "github.com/paulmach/orb/encoding/mvt"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/maptile"

	"tilesvg/internal/mvt"
	"tilesvg/internal/render"
)

func parse(t *testing.T, args ...string) *TileFlags {
	t.Helper()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	tf := BindTile(fs)
	tf.BindTMS(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatal(err)
	}
	return tf
}

func TestResolve(t *testing.T) {
	is := is.New(t)

	key, err := parse(t, "-x", "164", "-y", "367", "-z", "10").Resolve()
	is.NoErr(err)
	is.Equal(key, maptile.New(164, 367, 10))

	key, err = parse(t, "--tilex", "1", "--tiley", "0", "--zoom", "1", "-tms").Resolve()
	is.NoErr(err)
	is.Equal(key, maptile.New(1, 1, 1))

	key, err = parse(t, "-z", "10", "-lat", "52.52", "-lon", "13.405").Resolve()
	is.NoErr(err)
	is.Equal(key, maptile.New(550, 335, 10))
}

func TestResolveMissing(t *testing.T) {
	is := is.New(t)

	_, err := parse(t, "-x", "1", "-y", "2").Resolve()
	is.True(errors.Is(err, ErrMissingTile))

	_, err = parse(t, "-x", "1", "-z", "2").Resolve()
	is.True(errors.Is(err, ErrMissingTile))

	_, err = parse(t, "-z", "2", "-lat", "90", "-lon", "0").Resolve()
	is.True(err != nil)
}

func TestResolveRejectsOutOfRange(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"zoom 32", []string{"-x", "0", "-y", "0", "-z", "32"}},
		{"x past grid", []string{"-x", "4", "-y", "0", "-z", "2"}},
		{"tms row past grid", []string{"-x", "0", "-y", "4", "-z", "2", "-tms"}},
		{"antimeridian edge", []string{"-z", "3", "-lat", "0", "-lon", "180"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			is := is.New(t)
			_, err := parse(t, tt.args...).Resolve()
			is.True(errors.Is(err, ErrTileRange))
		})
	}
}

func TestResolveNeedsBothLatAndLon(t *testing.T) {
	is := is.New(t)

	_, err := parse(t, "-x", "1", "-y", "1", "-z", "2", "-lat", "52.5").Resolve()
	is.True(err != nil) // lat without lon

	_, err = parse(t, "-x", "1", "-y", "1", "-z", "2", "-lon", "13.4").Resolve()
	is.True(err != nil) // lon without lat

	key, err := parse(t, "-x", "3", "-y", "0", "-z", "2", "-tms").Resolve()
	is.NoErr(err)
	is.Equal(key, maptile.New(3, 3, 2))
}

func TestWriteOutputAddsNothing(t *testing.T) {
	is := is.New(t)
	var buf bytes.Buffer
	is.NoErr(WriteOutput(&buf, []byte{0x00, 0x01}))
	is.Equal(buf.Bytes(), []byte{0x00, 0x01})
}

func writeTile(t *testing.T, dir string) string {
	t.Helper()
	f := geojson.NewFeature(orb.LineString{{100, 3996}, {200, 6}})
	f.Properties["type"] = "ferry"
	data, err := orbmvt.MarshalGzipped(orbmvt.Layers{{Name: "road", Version: 2, Extent: 4096, Features: []*geojson.Feature{f}}})
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "tile.mvt")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadTileAndRenderSVG(t *testing.T) {
	is := is.New(t)
	dir := t.TempDir()

	tl, err := LoadTile(writeTile(t, dir))
	is.NoErr(err)

	var buf bytes.Buffer
	is.NoErr(RenderSVG(&buf, tl, "road", ""))
	out := buf.String()
	is.True(strings.Contains(out, "6,249 12,0"))
	is.True(!strings.HasSuffix(out, "\n"))

	err = RenderSVG(&buf, tl, "water", "")
	is.True(errors.Is(err, render.ErrLayerNotFound))
}

func TestLoadTileJSON(t *testing.T) {
	is := is.New(t)

	path := filepath.Join(t.TempDir(), "tile.json")
	is.NoErr(os.WriteFile(path, []byte(`{"road": {"features": []}}`), 0o644))

	tl, err := LoadTile(path)
	is.NoErr(err)
	is.Equal(tl.LayerNames(), []string{"road"})

	is.NoErr(os.WriteFile(path, []byte(`{`), 0o644))
	_, err = LoadTile(path)
	is.True(errors.Is(err, mvt.ErrDecode))
}

func TestLoadTileWKT(t *testing.T) {
	is := is.New(t)

	path := filepath.Join(t.TempDir(), "ferries.wkt")
	is.NoErr(os.WriteFile(path, []byte("LINESTRING(100 100, 200 4090)\tferry\n"), 0o644))

	tl, err := LoadTile(path)
	is.NoErr(err)
	is.Equal(tl.LayerNames(), []string{"ferries"})

	var buf bytes.Buffer
	is.NoErr(RenderSVG(&buf, tl, "ferries", ""))
	is.True(strings.Contains(buf.String(), "6,249 12,0"))
	is.True(strings.Contains(buf.String(), "#105ac8"))
}
