// Mvt2svg renders a Mapbox Vector Tile file as SVG.
//
// Usage:
//
//	mvt2svg -x 164 -y 367 -z 10 -f fixtures/12-1143-1497.vector.pbf > tile.svg
package main

import (
	"flag"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"tilesvg/internal/cli"
)

func main() {
	tf := cli.BindTile(flag.CommandLine)
	path := flag.String("f", "", "Mapbox Vector Tile file to load (.json decoded-tile dump, .wkt one geometry per line)")
	flag.StringVar(path, "mvt", "", "alias for -f")
	layer := flag.String("layer", "road", "render only this layer; empty renders all layers")
	style := flag.String("style", "", "YAML stroke palette")
	verbose := cli.BindVerbose(flag.CommandLine)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s -x X -y Y -z Z -f tile.mvt\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	cli.SetupLogging(*verbose)

	if *path == "" {
		flag.Usage()
		os.Exit(2)
	}
	key, err := tf.Resolve()
	if err != nil {
		log.Fatal(err)
	}

	t, err := cli.LoadTile(*path)
	if err != nil {
		log.WithError(err).Fatal("could not decode tile")
	}
	log.WithFields(log.Fields{"tile": key, "layers": t.LayerNames()}).Debug("loaded tile")

	if err := cli.RenderSVG(os.Stdout, t, *layer, *style); err != nil {
		log.WithError(err).Fatal("could not render tile")
	}
}
