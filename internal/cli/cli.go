package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/paulmach/orb/maptile"
	log "github.com/sirupsen/logrus"

	"tilesvg/internal/mbtiles"
	"tilesvg/internal/tile"
)

var (
	// ErrMissingTile is returned when neither -x/-y nor -lat/-lon were given.
	ErrMissingTile = errors.New("tile x, y and zoom are required")
	// ErrTileRange is returned for a zoom above tile.MaxZoom or an index
	// outside the tile grid of its zoom.
	ErrTileRange = errors.New("tile index out of range")
)

// TileFlags holds the tile address options shared by every command.
type TileFlags struct {
	X, Y, Z  int
	Lat, Lon float64
	TMS      bool
}

// BindTile registers -x/-tilex, -y/-tiley, -z/-zoom and -lat/-lon on fs.
func BindTile(fs *flag.FlagSet) *TileFlags {
	t := &TileFlags{}
	for _, name := range []string{"x", "tilex"} {
		fs.IntVar(&t.X, name, -1, "Tile x index")
	}
	for _, name := range []string{"y", "tiley"} {
		fs.IntVar(&t.Y, name, -1, "Tile y index")
	}
	for _, name := range []string{"z", "zoom"} {
		fs.IntVar(&t.Z, name, -1, "Tile zoom")
	}
	t.Lat, t.Lon = math.NaN(), math.NaN()
	fs.Float64Var(&t.Lat, "lat", t.Lat, "latitude (degree), alternative to -x/-y")
	fs.Float64Var(&t.Lon, "lon", t.Lon, "longitude (degree), alternative to -x/-y")
	return t
}

// BindTMS registers -tms on fs.
func (t *TileFlags) BindTMS(fs *flag.FlagSet) {
	fs.BoolVar(&t.TMS, "tms", false, "treat -y as an XYZ row and flip it to the TMS row stored in MBTiles")
}

// Resolve returns the requested tile. -lat/-lon, when both set, take
// precedence over -x/-y.
func (t *TileFlags) Resolve() (maptile.Tile, error) {
	if t.Z < 0 {
		return maptile.Tile{}, ErrMissingTile
	}
	if t.Z > tile.MaxZoom {
		return maptile.Tile{}, fmt.Errorf("%w: zoom %d above %d", ErrTileRange, t.Z, tile.MaxZoom)
	}
	x, y := t.X, t.Y
	hasLat, hasLon := !math.IsNaN(t.Lat), !math.IsNaN(t.Lon)
	if hasLat != hasLon {
		return maptile.Tile{}, errors.New("-lat and -lon must be given together")
	}
	if hasLat {
		if math.Abs(t.Lat) >= 90 {
			return maptile.Tile{}, fmt.Errorf("latitude %v: poles have no tile", t.Lat)
		}
		x, y = tile.LonLatToTileIndex(t.Lat, t.Lon, t.Z)
		log.WithFields(log.Fields{"x": x, "y": y, "z": t.Z}).Info("recommended tile")
	} else if x < 0 || y < 0 {
		return maptile.Tile{}, ErrMissingTile
	}
	if !tile.ValidIndex(x, y, t.Z) {
		return maptile.Tile{}, fmt.Errorf("%w: %d/%d/%d", ErrTileRange, t.Z, x, y)
	}
	key := maptile.New(uint32(x), uint32(y), maptile.Zoom(t.Z))
	if t.TMS {
		key = mbtiles.FlipY(key)
	}
	return key, nil
}

// BindVerbose registers -v on fs.
func BindVerbose(fs *flag.FlagSet) *bool {
	return fs.Bool("v", false, "verbose logging")
}

// SetupLogging sends logs to stderr; stdout carries the command output.
// LOG_LEVEL overrides the level chosen by verbose.
func SetupLogging(verbose bool) {
	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	log.SetLevel(log.WarnLevel)
	if verbose {
		log.SetLevel(log.DebugLevel)
	}
	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		parsed, err := log.ParseLevel(lvl)
		if err != nil {
			log.WithError(err).Warn("ignoring LOG_LEVEL")
			return
		}
		log.SetLevel(parsed)
	}
}

// WriteOutput writes data as is, with no trailing newline.
func WriteOutput(w io.Writer, data []byte) error {
	_, err := w.Write(data)
	return err
}
