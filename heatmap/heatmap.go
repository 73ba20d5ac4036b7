// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package heatmap draws the island × species count heatmap.
package heatmap

import (
	"fmt"
	"image/color"
	"io"
	"sort"

	"github.com/aclements/go-gg/palette/brewer"
	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/vec"
	svg "github.com/ajstarks/svgo"

	"github.com/aclements/penguinplot/internal/plotutil"
	"github.com/aclements/penguinplot/penguins"
)

// Cell is one island and species combination.
type Cell struct {
	Island  string
	Species penguins.Species
	Count   int
}

// Label returns the category pair of c, as shown in its tooltip.
func (c Cell) Label() string {
	return fmt.Sprintf("%s / %s", c.Island, c.Species)
}

// Counts counts obs by island and species. The result is the full
// cross product of the distinct islands (sorted by name) and the
// distinct species (in display order) in obs, so combinations that
// never occur are present with a zero count.
func Counts(obs []penguins.Observation) []Cell {
	if len(obs) == 0 {
		return nil
	}
	g := table.GroupBy(penguins.Table(obs), "island", "species")

	counts := make(map[string]map[string]int)
	for _, gid := range g.Tables() {
		island := gid.Parent().Label().(string)
		species := gid.Label().(string)
		if counts[island] == nil {
			counts[island] = make(map[string]int)
		}
		counts[island][species] = g.Table(gid).Len()
	}

	islands := make([]string, 0, len(counts))
	for island := range counts {
		islands = append(islands, island)
	}
	sort.Strings(islands)

	species := penguins.SpeciesOf(obs)
	var cells []Cell
	for _, island := range islands {
		for _, s := range species {
			cells = append(cells, Cell{island, s, counts[island][s.String()]})
		}
	}
	return cells
}

// Palette returns the brewer palette called name with the given
// number of levels.
func Palette(name string, levels int) ([]color.Color, error) {
	p, ok := brewer.ByName[name]
	if !ok {
		return nil, fmt.Errorf("unknown palette %q", name)
	}
	colors, ok := p[levels]
	if !ok {
		return nil, fmt.Errorf("palette %q has no %d-level variant", name, levels)
	}
	return colors, nil
}

// Quantize maps counts in [0, Max] onto a discrete list of colors by
// splitting the interval into len(Colors) equal bins.
type Quantize struct {
	Max    int
	Colors []color.Color
}

// Level returns the bin of count.
func (q Quantize) Level(count int) int {
	n := len(q.Colors)
	if q.Max <= 0 || count <= 0 {
		return 0
	}
	l := count * n / q.Max
	if l >= n {
		l = n - 1
	}
	return l
}

// Color returns the color of count.
func (q Quantize) Color(count int) color.Color {
	return q.Colors[q.Level(count)]
}

// Thresholds returns the lower bound of each bin.
func (q Quantize) Thresholds() []float64 {
	n := len(q.Colors)
	return vec.Linspace(0, float64(q.Max), n+1)[:n]
}

// Options controls the size and colors of the heatmap.
type Options struct {
	Width, Height int
	Margin        plotutil.Margin

	// Colors is the sequential palette for counts, low to high.
	Colors []color.Color
}

// DefaultOptions returns a 600×400 heatmap with a 9-level blue
// palette.
func DefaultOptions() Options {
	return Options{
		Width:  600,
		Height: 400,
		Margin: plotutil.DefaultMargin,
		Colors: brewer.Blues[9],
	}
}

// Render writes the heatmap of obs to w as SVG.
func Render(w io.Writer, obs []penguins.Observation, opts Options) error {
	if len(opts.Colors) == 0 {
		return fmt.Errorf("heatmap: empty palette")
	}
	cells := Counts(obs)

	var islands []string
	var species []string
	max := 0
	for _, c := range cells {
		if len(islands) == 0 || islands[len(islands)-1] != c.Island {
			islands = append(islands, c.Island)
		}
		if len(islands) == 1 {
			species = append(species, c.Species.String())
		}
		if c.Count > max {
			max = c.Count
		}
	}
	q := Quantize{Max: max, Colors: opts.Colors}

	iw, ih := opts.Margin.Inner(opts.Width, opts.Height)
	x := plotutil.NewBand(islands, 0, float64(iw), 0.05)
	y := plotutil.NewBand(species, 0, float64(ih), 0.05)

	s := svg.New(w)
	s.Start(opts.Width, opts.Height, `id="heatmap"`, `font-family="sans-serif"`)
	s.Style("text/css", ".cell:hover rect { stroke: #000; stroke-width: 2px; }")
	s.Group(opts.Margin.Translate())

	bw, bh := plotutil.Round(x.Bandwidth()), plotutil.Round(y.Bandwidth())
	for _, c := range cells {
		cx, _ := x.Map(c.Island)
		cy, _ := y.Map(c.Species.String())
		s.Group(`class="cell"`, fmt.Sprintf(`data-count="%d"`, c.Count))
		s.Title(fmt.Sprintf("%s: %d", c.Label(), c.Count))
		s.Rect(plotutil.Round(cx), plotutil.Round(cy), bw, bh, "fill:"+plotutil.Hex(q.Color(c.Count)))
		s.Gend()
	}

	plotutil.BandBottomAxis(s, x, ih)
	plotutil.BandLeftAxis(s, y, 0)
	plotutil.AxisLabel(s, iw/2, ih+40, "island", false)
	plotutil.AxisLabel(s, -60, ih/2, "species", true)
	legend(s, q, iw)

	s.Gend()
	s.End()
	return nil
}

// legend draws the color bins above the plotting area, right-aligned.
func legend(s *svg.SVG, q Quantize, width int) {
	const sw, sh = 18, 10
	n := len(q.Colors)
	x0 := width - n*sw
	s.Group(`class="legend"`, "font-size:9px")
	for i, t := range q.Thresholds() {
		x := x0 + i*sw
		s.Rect(x, -30, sw, sh, "fill:"+plotutil.Hex(q.Colors[i]))
		if i == 0 || i == n-1 {
			s.Text(x, -34, fmt.Sprintf("%.0f", t))
		}
	}
	label := "count"
	s.Text(x0-plotutil.TextWidth(label)-4, -21, label)
	s.Gend()
}
