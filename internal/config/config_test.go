// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aclements/penguinplot/heatmap"
	"github.com/aclements/penguinplot/scatter"
	"github.com/aclements/penguinplot/splom"
)

func writeConfig(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "penguinplot.yaml")
	require.NoError(t, os.WriteFile(path, []byte(text), 0644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	h, err := cfg.HeatmapOptions()
	require.NoError(t, err)
	assert.Equal(t, heatmap.DefaultOptions(), h)
	assert.Equal(t, scatter.DefaultOptions(), cfg.ScatterOptions())
	assert.Equal(t, splom.DefaultOptions(), cfg.MatrixOptions())
	assert.Equal(t, "NA", cfg.Penguins().Missing)
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverlay(t *testing.T) {
	path := writeConfig(t, `
data: data/penguins.tsv
strict: true
heatmap:
  palette: Greens
  levels: 5
scatter_matrix:
  width: 1200
  style:
    faint_opacity: 0.2
    transition: 400ms
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "data/penguins.tsv", cfg.Data)
	assert.True(t, cfg.Penguins().Strict)
	assert.Equal(t, "Greens", cfg.Heatmap.Palette)
	assert.Equal(t, 5, cfg.Heatmap.Levels)
	assert.Equal(t, 1200, cfg.Matrix.Width)
	assert.Equal(t, 0.2, cfg.Matrix.Style.FaintOpacity)
	assert.Equal(t, 400*time.Millisecond, cfg.Matrix.Style.Transition)

	// Unmentioned fields keep their defaults.
	def := Default()
	assert.Equal(t, def.Matrix.Height, cfg.Matrix.Height)
	assert.Equal(t, def.Matrix.Style.FullOpacity, cfg.Matrix.Style.FullOpacity)
	assert.Equal(t, def.Scatter, cfg.Scatter)
	assert.Equal(t, def.Margin, cfg.Margin)

	h, err := cfg.HeatmapOptions()
	require.NoError(t, err)
	assert.Len(t, h.Colors, 5)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	for name, text := range map[string]string{
		"syntax":        "heatmap: [",
		"palette":       "heatmap: {palette: Plaid}",
		"levels":        "heatmap: {levels: 40}",
		"surface":       "scatter: {width: 100}",
		"marker":        "scatter: {marker_width: [10, 2]}",
		"radius":        "scatter_matrix: {radius: 0}",
		"opacity":       "scatter_matrix: {style: {faint_opacity: 0}}",
		"margin":        "margin: {top: -1}",
		"matrix ticks":  "scatter_matrix: {ticks: 0}",
		"negative time": "scatter_matrix: {style: {transition: -1s}}",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, text))
			assert.Error(t, err)
		})
	}
}
