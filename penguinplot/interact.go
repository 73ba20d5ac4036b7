// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/aclements/penguinplot/internal/explore"
	"github.com/aclements/penguinplot/internal/replay"
	"github.com/aclements/penguinplot/splom"
)

func replayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "replay script",
		Short: "run a script of interactions against the scatter-plot matrix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			steps, err := replay.Parse(f)
			if err != nil {
				return err
			}

			cfg, d, err := setup()
			if err != nil {
				return err
			}
			c := splom.New(d.Observations, cfg.MatrixOptions())
			return replay.Run(c, steps, func(path string) error {
				if err := writeSnapshot(c, path); err != nil {
					return err
				}
				vlogf("wrote %s (%s view)", path, c.State().View)
				return nil
			})
		},
	}
}

func exploreCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "explore",
		Short: "explore the scatter-plot matrix from the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, d, err := setup()
			if err != nil {
				return err
			}
			c := splom.New(d.Observations, cfg.MatrixOptions())
			return explore.Run(c, func() (string, error) {
				return out, writeSnapshot(c, out)
			})
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "scatter-matrix.svg", "write snapshots to `file`")
	return cmd
}

// writeSnapshot writes the current view of c to path.
func writeSnapshot(c *splom.Controller, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := c.Render(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
