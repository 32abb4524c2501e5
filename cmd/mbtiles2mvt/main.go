// Mbtiles2mvt extracts one raw tile blob from an MBTiles archive.
//
// Usage:
//
//	mbtiles2mvt -x 0 -y 0 -z 0 planet_z0-z5.mbtiles > planet_x0y0z0.mvt.gz
package main

import (
	"flag"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"tilesvg/internal/cli"
	"tilesvg/internal/mbtiles"
)

func main() {
	tf := cli.BindTile(flag.CommandLine)
	tf.BindTMS(flag.CommandLine)
	gunzip := flag.Bool("gunzip", false, "decompress gzip-wrapped tiles before writing them")
	verbose := cli.BindVerbose(flag.CommandLine)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s -x X -y Y -z Z [-gunzip] mbtiles_file\n", os.Args[0])
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

	data, err := mbtiles.Extract(store, key, *gunzip)
	if err != nil {
		log.WithError(err).Fatal("could not extract tile")
	}
	if err := cli.WriteOutput(os.Stdout, data); err != nil {
		log.Fatal(err)
	}
}
