// Mbtiles2svg renders one tile of a vector MBTiles archive as SVG.
//
// Usage:
//
//	mbtiles2svg -x 0 -y 0 -z 0 planet_z0-z5.mbtiles > planet_x0y0z0.svg
package main

import (
	"flag"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"tilesvg/internal/cli"
	"tilesvg/internal/mbtiles"
	"tilesvg/internal/mvt"
)

func main() {
	tf := cli.BindTile(flag.CommandLine)
	tf.BindTMS(flag.CommandLine)
	layer := flag.String("layer", "", "render only this layer (default: all layers)")
	style := flag.String("style", "", "YAML stroke palette")
	verbose := cli.BindVerbose(flag.CommandLine)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s -x X -y Y -z Z [-layer NAME] mbtiles_file\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	cli.SetupLogging(*verbose)

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	key, err := tf.Resolve()
	if err != nil {
		log.Fatal(err)
	}

	store, err := mbtiles.Open(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

	raw, err := mbtiles.Extract(store, key, true)
	if err != nil {
		log.WithError(err).Fatal("could not extract tile")
	}
	t, err := mvt.Decode(raw)
	if err != nil {
		log.WithError(err).Fatal("could not decode tile")
	}
	if err := cli.RenderSVG(os.Stdout, t, *layer, *style); err != nil {
		log.WithError(err).Fatal("could not render tile")
	}
}
