// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/aclements/penguinplot/heatmap"
	"github.com/aclements/penguinplot/internal/config"
	"github.com/aclements/penguinplot/internal/report"
	"github.com/aclements/penguinplot/penguins"
	"github.com/aclements/penguinplot/scatter"
	"github.com/aclements/penguinplot/splom"
)

// A surface is one SVG document penguinplot can draw.
type surface struct {
	name   string
	render func(w io.Writer) error
}

func (s surface) file() string {
	return s.name + ".svg"
}

// surfaces returns every chart of obs, in output order.
func surfaces(cfg *config.Config, obs []penguins.Observation) ([]surface, error) {
	hopts, err := cfg.HeatmapOptions()
	if err != nil {
		return nil, err
	}
	return []surface{
		{"heatmap", func(w io.Writer) error {
			return heatmap.Render(w, obs, hopts)
		}},
		{"scatter", func(w io.Writer) error {
			return scatter.Render(w, obs, cfg.ScatterOptions())
		}},
		{"scatter-matrix", func(w io.Writer) error {
			return splom.New(obs, cfg.MatrixOptions()).Render(w)
		}},
		{"scatter-facets", func(w io.Writer) error {
			n := len(penguins.SpeciesOf(obs))
			if n == 0 {
				n = 1
			}
			return scatter.Facets(obs).WriteSVG(w, 300*n, 350)
		}},
	}, nil
}

func renderCmd() *cobra.Command {
	var (
		outDir string
		stdout string
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "write every chart and an HTML report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, d, err := setup()
			if err != nil {
				return err
			}
			if stdout != "" {
				return renderStdout(cfg, d, stdout)
			}
			return renderAll(cfg, d, outDir)
		},
	}
	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "write charts to `dir`")
	cmd.Flags().StringVar(&stdout, "stdout", "", "write only `surface` to standard output")
	return cmd
}

func renderStdout(cfg *config.Config, d *penguins.Dataset, name string) error {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("refusing to write SVG to a terminal")
	}
	surfs, err := surfaces(cfg, d.Observations)
	if err != nil {
		return err
	}
	var names []string
	for _, s := range surfs {
		if s.name == name {
			return s.render(os.Stdout)
		}
		names = append(names, s.name)
	}
	return fmt.Errorf("unknown surface %q (want one of %s)", name, strings.Join(names, ", "))
}

// renderAll writes every surface and index.html to dir.
func renderAll(cfg *config.Config, d *penguins.Dataset, dir string) error {
	if err := os.MkdirAll(dir, 0777); err != nil {
		return err
	}
	surfs, err := surfaces(cfg, d.Observations)
	if err != nil {
		return err
	}

	svgs := make(map[string][]byte)
	for _, s := range surfs {
		var buf bytes.Buffer
		if err := s.render(&buf); err != nil {
			return fmt.Errorf("%s: %w", s.name, err)
		}
		svgs[s.name] = buf.Bytes()
		path := filepath.Join(dir, s.file())
		if err := os.WriteFile(path, buf.Bytes(), 0666); err != nil {
			return err
		}
		vlogf("wrote %s", path)
	}

	var buf bytes.Buffer
	err = report.Write(&buf, report.Report{
		Source:  filepath.Base(cfg.Data),
		Dataset: d,
		Heatmap: svgs["heatmap"],
		Scatter: svgs["scatter"],
		Matrix:  svgs["scatter-matrix"],
	})
	if err != nil {
		return err
	}
	path := filepath.Join(dir, "index.html")
	if err := os.WriteFile(path, buf.Bytes(), 0666); err != nil {
		return err
	}
	vlogf("wrote %s", path)
	return nil
}
