// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads penguinplot's YAML configuration.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/aclements/penguinplot/heatmap"
	"github.com/aclements/penguinplot/internal/plotutil"
	"github.com/aclements/penguinplot/penguins"
	"github.com/aclements/penguinplot/scatter"
	"github.com/aclements/penguinplot/splom"
)

// Config is the complete configuration of penguinplot.
type Config struct {
	// Data is the path of the dataset.
	Data string `yaml:"data"`

	// Missing is the missing-value sentinel.
	Missing string `yaml:"missing"`

	// Strict makes malformed rows an error instead of dropping them.
	Strict bool `yaml:"strict"`

	// Margin is shared by every surface.
	Margin plotutil.Margin `yaml:"margin"`

	Heatmap HeatmapConfig `yaml:"heatmap"`
	Scatter ScatterConfig `yaml:"scatter"`
	Matrix  MatrixConfig  `yaml:"scatter_matrix"`
}

// Surface is the size of one SVG document.
type Surface struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type HeatmapConfig struct {
	Surface `yaml:",inline"`
	Palette string `yaml:"palette"`
	Levels  int    `yaml:"levels"`
}

type ScatterConfig struct {
	Surface      `yaml:",inline"`
	MarkerWidth  [2]float64 `yaml:"marker_width"`
	MarkerHeight [2]float64 `yaml:"marker_height"`
	Ticks        int        `yaml:"ticks"`
}

type MatrixConfig struct {
	Surface `yaml:",inline"`
	Padding float64     `yaml:"padding"`
	Radius  int         `yaml:"radius"`
	Ticks   int         `yaml:"ticks"`
	Style   splom.Style `yaml:"style"`
}

// Default returns the built-in configuration.
func Default() *Config {
	h, s, m := heatmap.DefaultOptions(), scatter.DefaultOptions(), splom.DefaultOptions()
	return &Config{
		Data:    "penguins.csv",
		Missing: penguins.DefaultMissing,
		Margin:  plotutil.DefaultMargin,
		Heatmap: HeatmapConfig{
			Surface: Surface{h.Width, h.Height},
			Palette: "Blues",
			Levels:  len(h.Colors),
		},
		Scatter: ScatterConfig{
			Surface:      Surface{s.Width, s.Height},
			MarkerWidth:  s.MarkerWidth,
			MarkerHeight: s.MarkerHeight,
			Ticks:        s.Ticks,
		},
		Matrix: MatrixConfig{
			Surface: Surface{m.Width, m.Height},
			Padding: m.Padding,
			Radius:  m.Radius,
			Ticks:   m.Ticks,
			Style:   m.Style,
		},
	}
}

// Load reads the configuration at path over the defaults. Fields the
// file does not mention keep their default values. An empty path
// returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that c describes drawable surfaces.
func (c *Config) Validate() error {
	if c.Margin.Top < 0 || c.Margin.Right < 0 || c.Margin.Bottom < 0 || c.Margin.Left < 0 {
		return fmt.Errorf("negative margin")
	}
	for _, s := range []struct {
		name string
		Surface
	}{
		{"heatmap", c.Heatmap.Surface},
		{"scatter", c.Scatter.Surface},
		{"scatter_matrix", c.Matrix.Surface},
	} {
		w, h := c.Margin.Inner(s.Width, s.Height)
		if w <= 0 || h <= 0 {
			return fmt.Errorf("%s: surface %d×%d leaves no room inside the margins", s.name, s.Width, s.Height)
		}
	}
	if _, err := heatmap.Palette(c.Heatmap.Palette, c.Heatmap.Levels); err != nil {
		return err
	}
	for _, r := range [][2]float64{c.Scatter.MarkerWidth, c.Scatter.MarkerHeight} {
		if r[0] <= 0 || r[1] < r[0] {
			return fmt.Errorf("scatter: bad marker size range %v", r)
		}
	}
	if c.Scatter.Ticks <= 0 || c.Matrix.Ticks <= 0 {
		return fmt.Errorf("tick count must be positive")
	}
	if c.Matrix.Radius <= 0 {
		return fmt.Errorf("scatter_matrix: radius must be positive")
	}
	if c.Matrix.Padding < 0 {
		return fmt.Errorf("scatter_matrix: negative padding")
	}
	st := c.Matrix.Style
	if st.FaintOpacity <= 0 || st.FaintOpacity > st.FullOpacity || st.FullOpacity > 1 {
		return fmt.Errorf("scatter_matrix: need 0 < faint_opacity <= full_opacity <= 1")
	}
	if st.Transition < 0 {
		return fmt.Errorf("scatter_matrix: negative transition")
	}
	return nil
}

// Penguins returns the dataset loading options.
func (c *Config) Penguins() penguins.Options {
	return penguins.Options{Missing: c.Missing, Strict: c.Strict}
}

// HeatmapOptions returns the heatmap layout.
func (c *Config) HeatmapOptions() (heatmap.Options, error) {
	colors, err := heatmap.Palette(c.Heatmap.Palette, c.Heatmap.Levels)
	if err != nil {
		return heatmap.Options{}, err
	}
	return heatmap.Options{
		Width:  c.Heatmap.Width,
		Height: c.Heatmap.Height,
		Margin: c.Margin,
		Colors: colors,
	}, nil
}

// ScatterOptions returns the scatter plot layout.
func (c *Config) ScatterOptions() scatter.Options {
	return scatter.Options{
		Width:        c.Scatter.Width,
		Height:       c.Scatter.Height,
		Margin:       c.Margin,
		MarkerWidth:  c.Scatter.MarkerWidth,
		MarkerHeight: c.Scatter.MarkerHeight,
		Ticks:        c.Scatter.Ticks,
	}
}

// MatrixOptions returns the scatter-plot matrix layout.
func (c *Config) MatrixOptions() splom.Options {
	return splom.Options{
		Width:   c.Matrix.Width,
		Height:  c.Matrix.Height,
		Margin:  c.Margin,
		Padding: c.Matrix.Padding,
		Radius:  c.Matrix.Radius,
		Ticks:   c.Matrix.Ticks,
		Style:   c.Matrix.Style,
	}
}
