// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command penguinplot draws exploratory charts of the Palmer penguins
// measurements.
//
// penguinplot reads a delimited file (CSV, TSV or an XLSX workbook)
// with one penguin per row and the columns species, island,
// bill_length_mm, bill_depth_mm, flipper_length_mm, body_mass_g and
// sex. Rows with a missing value are dropped.
//
// The render command writes a heatmap of counts by island and species,
// a scatter plot of bill length against bill depth and a scatter-plot
// matrix of all four measurements, each as SVG, plus an index.html
// bundling them with a summary of the data.
//
// The scatter-plot matrix is interactive. The replay command drives it
// from a script of legend clicks, brush selections and double clicks
// and writes snapshots along the way. The explore command drives it
// from the keyboard.
//
// Configuration is read from the YAML file named by --config or
// $PENGUINPLOT_CONFIG, and the dataset from --data, $PENGUINPLOT_DATA
// or the configuration. Environment variables may also be set in a
// .env file in the current directory.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/aclements/penguinplot/internal/config"
	"github.com/aclements/penguinplot/penguins"
)

var (
	flagConfig  string
	flagData    string
	flagStrict  bool
	flagVerbose bool
)

func main() {
	log.SetPrefix("penguinplot: ")
	log.SetFlags(0)

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatal(err)
	}

	root := &cobra.Command{
		Use:           "penguinplot",
		Short:         "exploratory charts of the Palmer penguins",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&flagConfig, "config", os.Getenv("PENGUINPLOT_CONFIG"), "read configuration from `file`")
	root.PersistentFlags().StringVar(&flagData, "data", os.Getenv("PENGUINPLOT_DATA"), "read penguins from `file`")
	root.PersistentFlags().BoolVar(&flagStrict, "strict", false, "fail on malformed rows instead of dropping them")
	root.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "log progress")

	root.AddCommand(renderCmd(), replayCmd(), exploreCmd())

	if err := root.Execute(); err != nil {
		log.Fatal(err)
	}
}

func vlogf(format string, args ...interface{}) {
	if flagVerbose {
		log.Printf(format, args...)
	}
}

// setup loads the configuration and the dataset, applying the
// command-line overrides.
func setup() (*config.Config, *penguins.Dataset, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, nil, err
	}
	if flagData != "" {
		cfg.Data = flagData
	}
	if flagStrict {
		cfg.Strict = true
	}

	d, err := penguins.LoadDataset(cfg.Data, cfg.Penguins())
	if err != nil {
		return nil, nil, fmt.Errorf("loading penguins: %w", err)
	}
	vlogf("read %d rows from %s: kept %d, dropped %d with missing values and %d malformed",
		d.Rows, cfg.Data, len(d.Observations), d.Missing, d.Malformed)
	return cfg, d, nil
}
