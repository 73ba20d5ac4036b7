// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package splom

import (
	"fmt"
	"io"
	"strings"

	svg "github.com/ajstarks/svgo"

	"github.com/aclements/penguinplot/internal/plotutil"
)

// Render writes the current view to w as SVG.
//
// Style changes are carried by CSS transitions on the points, so a
// renderer that swaps in a new document animates from the previous
// opacities. After a full redraw the whole view fades in.
func (c *Controller) Render(w io.Writer) error {
	o := c.opts
	cw, ch := c.Canvas()

	s := svg.New(w)
	s.Start(o.Width, o.Height, `id="scatter-matrix"`, `font-family="sans-serif"`,
		fmt.Sprintf(`data-view="%s"`, c.state.View))
	s.Style("text/css", stylesheet(o.Style))
	s.Group(o.Margin.Translate())

	class := `class="view"`
	if c.last.Kind == RedrawFull {
		class = `class="view fade-in"`
	}
	s.Group(class)

	switch c.state.View {
	case Overview:
		// The background is the target area of brush gestures and
		// double clicks.
		s.Rect(0, 0, plotutil.Round(cw), plotutil.Round(ch), `class="background"`, "fill:#fff")
		c.drawGrid(s, c.overview, true, c.Style)
		c.drawLegend(s)
		if b := c.state.Brush; b != nil {
			s.Rect(plotutil.Round(b.X0), plotutil.Round(b.Y0),
				plotutil.Round(b.X1-b.X0), plotutil.Round(b.Y1-b.Y0),
				`class="selection"`, "fill:#777;fill-opacity:0.3;stroke:#fff")
		}

	case Faceted:
		s.Rect(0, 0, plotutil.Round(cw), plotutil.Round(ch), `class="background"`, "fill:#fff")
		full := func(Point) PointStyle {
			return PointStyle{o.Style.FullOpacity, o.Style.Stroke}
		}
		for i, g := range c.facets {
			s.Text(plotutil.Round(g.X0+g.W/2), plotutil.Round(g.Y0-8), g.Title,
				`class="facet-title"`, "text-anchor:middle;font-size:14px;font-weight:bold")
			c.drawGrid(s, g, i == 0, full)
		}
	}

	s.Gend()
	s.Gend()
	s.End()
	return nil
}

func stylesheet(st Style) string {
	d := fmt.Sprintf("%dms", st.Transition.Milliseconds())
	var b strings.Builder
	fmt.Fprintf(&b, ".point { transition: opacity %s, stroke-width %s; }\n", d, d)
	fmt.Fprintf(&b, "@keyframes fade-in { from { opacity: 0; } to { opacity: 1; } }\n")
	fmt.Fprintf(&b, ".fade-in { animation: fade-in %s; }\n", d)
	fmt.Fprintf(&b, ".legend-entry { cursor: pointer; transition: opacity %s; }\n", d)
	fmt.Fprintf(&b, ".cell > rect { fill: none; stroke: #aaa; }\n")
	return b.String()
}

// drawGrid draws the cells of g, their points styled by style, and
// axes along the outer cells. Row labels are drawn only if rowLabels
// is set.
func (c *Controller) drawGrid(s *svg.SVG, g *Grid, rowLabels bool, style func(Point) PointStyle) {
	o := c.opts
	n := len(g.Vars)
	s.Group(`class="grid"`)

	for _, cell := range g.Cells {
		s.Group(`class="cell"`, fmt.Sprintf(`data-row="%s"`, cell.RowVar.Name()), fmt.Sprintf(`data-col="%s"`, cell.ColVar.Name()))
		s.Title(cell.Label())
		s.Rect(plotutil.Round(cell.X0), plotutil.Round(cell.Y0), plotutil.Round(cell.W), plotutil.Round(cell.H))
		s.Gend()
	}

	for _, p := range g.Points {
		ps := style(p)
		s.Circle(plotutil.Round(p.X), plotutil.Round(p.Y), o.Radius,
			`class="point"`, fmt.Sprintf(`data-species="%s"`, p.Obs.Species),
			fmt.Sprintf("fill:%s;stroke:#000;opacity:%g;stroke-width:%g",
				plotutil.Hex(plotutil.SpeciesColor(p.Obs.Species)), ps.Opacity, ps.StrokeWidth))
	}

	for i := 0; i < n; i++ {
		bottom := g.Cell(n-1, i)
		y := plotutil.Round(bottom.Y0 + bottom.H)
		plotutil.BottomAxis(s, bottom.X, y, o.Ticks)
		plotutil.AxisLabel(s, plotutil.Round(bottom.X0+bottom.W/2), y+34, bottom.ColVar.String(), false)

		left := g.Cell(i, 0)
		x := plotutil.Round(left.X0)
		plotutil.LeftAxis(s, left.Y, x, o.Ticks)
		if rowLabels {
			plotutil.AxisLabel(s, x-50, plotutil.Round(left.Y0+left.H/2), left.RowVar.String(), true)
		}
	}
	s.Gend()
}

// drawLegend draws one entry per species in the top margin. Inactive
// entries are faint.
func (c *Controller) drawLegend(s *svg.SVG) {
	const r, gap = 5, 16
	st := c.opts.Style
	x := 0
	s.Group(`class="legend"`, "font-size:11px")
	for _, sp := range c.state.Species() {
		op, class := st.FullOpacity, "legend-entry"
		if !c.state.Active[sp] {
			op, class = st.FaintOpacity, "legend-entry inactive"
		}
		s.Group(fmt.Sprintf(`class="%s"`, class), fmt.Sprintf(`data-species="%s"`, sp), fmt.Sprintf("opacity:%g", op))
		s.Circle(x+r, -20, r, "fill:"+plotutil.Hex(plotutil.SpeciesColor(sp)))
		s.Text(x+2*r+4, -16, sp.String())
		s.Gend()
		x += 2*r + 4 + plotutil.TextWidth(sp.String()) + gap
	}
	s.Gend()
}
