// Tileview previews one vector tile in the terminal.
//
// Usage:
//
//	tileview -x 0 -y 0 -z 0 planet_z0-z5.mbtiles
//	tileview tile.mvt
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"

	"tilesvg/internal/cli"
	"tilesvg/internal/mbtiles"
	"tilesvg/internal/svg"
	"tilesvg/internal/tui"
)

func main() {
	tf := cli.BindTile(flag.CommandLine)
	tf.BindTMS(flag.CommandLine)
	style := flag.String("style", "", "YAML stroke palette")
	logFile := flag.String("log", "", "write logs to this file (the terminal is taken by the preview)")
	verbose := cli.BindVerbose(flag.CommandLine)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [-x X -y Y -z Z] mbtiles_file | tile_file\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	cli.SetupLogging(*verbose)

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	palette, err := svg.LoadPalette(*style)
	if err != nil {
		log.Fatal(err)
	}

	var m tui.Model
	path := flag.Arg(0)
	if strings.EqualFold(filepath.Ext(path), ".mbtiles") {
		key, err := tf.Resolve()
		if err != nil {
			log.Fatal(err)
		}
		store, err := mbtiles.Open(path)
		if err != nil {
			log.Fatal(err)
		}
		defer store.Close()
		m = tui.NewWithStore(store, key, palette)
	} else {
		t, err := cli.LoadTile(path)
		if err != nil {
			log.WithError(err).Fatal("could not load tile")
		}
		m = tui.NewWithTile(filepath.Base(path), t, palette)
	}

	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}

	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run(); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}
}
