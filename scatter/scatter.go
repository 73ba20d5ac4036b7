// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scatter draws the bill length against bill depth scatter
// plot.
//
// Each penguin is a triangle: bill length and depth give its position,
// body mass its width and flipper length its height. Triangles are
// filled by species and tilted by sex.
package scatter

import (
	"fmt"
	"image/color"
	"io"
	"math"

	"github.com/aclements/go-gg/gg"
	svg "github.com/ajstarks/svgo"

	"github.com/aclements/penguinplot/internal/plotutil"
	"github.com/aclements/penguinplot/penguins"
)

// Options controls the layout of the scatter plot.
type Options struct {
	Width, Height int
	Margin        plotutil.Margin

	// MarkerWidth and MarkerHeight are the pixel ranges that body
	// mass and flipper length map onto.
	MarkerWidth  [2]float64
	MarkerHeight [2]float64

	// Ticks is the maximum number of ticks per axis.
	Ticks int
}

// DefaultOptions returns the default 800×600 layout.
func DefaultOptions() Options {
	return Options{
		Width:        800,
		Height:       600,
		Margin:       plotutil.DefaultMargin,
		MarkerWidth:  [2]float64{4, 14},
		MarkerHeight: [2]float64{6, 18},
		Ticks:        10,
	}
}

// Mark is one triangle of the scatter plot.
type Mark struct {
	Obs penguins.Observation

	// X and Y are the center of the triangle in plot coordinates.
	X, Y float64

	// W and H are the base width and height of the triangle.
	W, H float64

	// Tilt is the rotation of the triangle in degrees.
	Tilt float64

	Fill color.RGBA
}

// Points returns the vertices of m before rotation: the apex, then the
// two base corners.
func (m Mark) Points() (xs, ys [3]float64) {
	xs = [3]float64{m.X, m.X - m.W/2, m.X + m.W/2}
	ys = [3]float64{m.Y - m.H/2, m.Y + m.H/2, m.Y + m.H/2}
	return
}

// Tooltip returns the hover text of m.
func (m Mark) Tooltip() string {
	o := m.Obs
	return fmt.Sprintf("species: %s\nisland: %s\nsex: %s\nbill length: %g mm\nbill depth: %g mm\nflipper length: %g mm\nbody mass: %g g",
		o.Species, o.Island, o.Sex, o.BillLength, o.BillDepth, o.FlipperLength, o.BodyMass)
}

// Tilt returns the rotation in degrees of markers for sex.
func Tilt(sex penguins.Sex) float64 {
	switch sex {
	case penguins.Female:
		return -20
	case penguins.Male:
		return 20
	}
	panic(fmt.Sprintf("no tilt for %v", sex))
}

// Layout is the result of mapping observations onto the plot.
type Layout struct {
	Marks []Mark
	X, Y  *plotutil.Linear
}

// Marks lays out obs. Observations with a missing measurement are
// skipped. The x and y domains are rounded outward to tick
// multiples.
func Marks(obs []penguins.Observation, opts Options) Layout {
	var valid []penguins.Observation
	for _, o := range obs {
		if o.Complete() {
			valid = append(valid, o)
		}
	}

	iw, ih := opts.Margin.Inner(opts.Width, opts.Height)
	x := linear(valid, penguins.BillLength, 0, float64(iw)).Nice(opts.Ticks)
	y := linear(valid, penguins.BillDepth, float64(ih), 0).Nice(opts.Ticks)
	w := linear(valid, penguins.BodyMass, opts.MarkerWidth[0], opts.MarkerWidth[1])
	h := linear(valid, penguins.FlipperLength, opts.MarkerHeight[0], opts.MarkerHeight[1])

	l := Layout{X: x, Y: y, Marks: make([]Mark, len(valid))}
	for i, o := range valid {
		l.Marks[i] = Mark{
			Obs:  o,
			X:    x.Map(o.BillLength),
			Y:    y.Map(o.BillDepth),
			W:    w.Map(o.BodyMass),
			H:    h.Map(o.FlipperLength),
			Tilt: Tilt(o.Sex),
			Fill: plotutil.SpeciesColor(o.Species),
		}
	}
	return l
}

func linear(obs []penguins.Observation, v penguins.Variable, r0, r1 float64) *plotutil.Linear {
	min, max, ok := penguins.Extent(obs, v)
	if !ok {
		min, max = math.NaN(), math.NaN()
	}
	return plotutil.NewLinear(min, max, r0, r1)
}

// Render writes the scatter plot of obs to w as SVG.
func Render(w io.Writer, obs []penguins.Observation, opts Options) error {
	l := Marks(obs, opts)
	iw, ih := opts.Margin.Inner(opts.Width, opts.Height)

	s := svg.New(w)
	s.Start(opts.Width, opts.Height, `id="scatter"`, `font-family="sans-serif"`)
	s.Style("text/css", ".mark:hover polygon { stroke: #000; stroke-width: 1.5px; }")
	s.Group(opts.Margin.Translate())

	for _, m := range l.Marks {
		xs, ys := m.Points()
		var xi, yi []int
		for i := range xs {
			xi = append(xi, plotutil.Round(xs[i]))
			yi = append(yi, plotutil.Round(ys[i]))
		}
		s.Group(`class="mark"`, fmt.Sprintf(`data-species="%s"`, m.Obs.Species))
		s.Title(m.Tooltip())
		s.Polygon(xi, yi,
			fmt.Sprintf(`transform="rotate(%g %d %d)"`, m.Tilt, plotutil.Round(m.X), plotutil.Round(m.Y)),
			fmt.Sprintf("fill:%s;fill-opacity:0.8;stroke:#fff;stroke-width:0.5", plotutil.Hex(m.Fill)))
		s.Gend()
	}

	plotutil.BottomAxis(s, l.X, ih, opts.Ticks)
	plotutil.LeftAxis(s, l.Y, 0, opts.Ticks)
	plotutil.AxisLabel(s, iw/2, ih+40, "bill length (mm)", false)
	plotutil.AxisLabel(s, -50, ih/2, "bill depth (mm)", true)
	speciesLegend(s, penguins.SpeciesOf(l.observations()), iw)

	s.Gend()
	s.End()
	return nil
}

func (l Layout) observations() []penguins.Observation {
	obs := make([]penguins.Observation, len(l.Marks))
	for i, m := range l.Marks {
		obs[i] = m.Obs
	}
	return obs
}

// speciesLegend draws a right-aligned row of species swatches above
// the plotting area.
func speciesLegend(s *svg.SVG, species []penguins.Species, width int) {
	const sw, gap = 10, 12
	total := 0
	for _, sp := range species {
		total += sw + 4 + plotutil.TextWidth(sp.String()) + gap
	}
	x := width - total
	s.Group(`class="legend"`, "font-size:11px")
	for _, sp := range species {
		s.Rect(x, -25, sw, sw, "fill:"+plotutil.Hex(plotutil.SpeciesColor(sp)))
		s.Text(x+sw+4, -16, sp.String())
		x += sw + 4 + plotutil.TextWidth(sp.String()) + gap
	}
	s.Gend()
}

// Facets returns a static plot of bill length against bill depth with
// one panel per species, colored by sex.
func Facets(obs []penguins.Observation) *gg.Plot {
	p := gg.NewPlot(penguins.Table(obs))
	p.Add(gg.FacetX{Col: "species"})
	p.Add(gg.LayerPoints{
		X:     penguins.BillLength.Name(),
		Y:     penguins.BillDepth.Name(),
		Color: "sex",
	})
	p.Add(gg.AxisLabel("x", "bill length (mm)"), gg.AxisLabel("y", "bill depth (mm)"))
	return p
}
