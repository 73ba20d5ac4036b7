// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package splom

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/aclements/penguinplot/internal/plotutil"
	"github.com/aclements/penguinplot/penguins"
)

// Cell is one small scatter plot of the matrix, plotting the column
// variable against the row variable.
type Cell struct {
	Row, Col       int
	RowVar, ColVar penguins.Variable

	// X0, Y0, W and H locate the cell on the matrix canvas.
	X0, Y0, W, H float64

	// X maps the column variable and Y the row variable onto the
	// matrix canvas.
	X, Y *plotutil.Linear

	// Corr is the Pearson correlation of the two variables, or NaN
	// if it is undefined.
	Corr float64
}

// Label returns a short description of c.
func (c *Cell) Label() string {
	if math.IsNaN(c.Corr) {
		return fmt.Sprintf("%s vs %s", c.RowVar, c.ColVar)
	}
	return fmt.Sprintf("%s vs %s (r = %.2f)", c.RowVar, c.ColVar, c.Corr)
}

// Point is one observation drawn in one cell.
type Point struct {
	Obs  penguins.Observation
	Cell *Cell

	// X and Y are the position of the point on the matrix canvas.
	// They are computed once when the grid is built.
	X, Y float64
}

// Grid is an N×N matrix of cells over a set of observations.
type Grid struct {
	// Title is shown above the grid. It is empty for the overview.
	Title string

	Vars []penguins.Variable

	X0, Y0, W, H float64

	// Cells is in row-major order.
	Cells  []*Cell
	Points []Point
}

// Cell returns the cell at row i and column j.
func (g *Grid) Cell(i, j int) *Cell {
	return g.Cells[i*len(g.Vars)+j]
}

// NewGrid lays out a matrix of vars over obs in the rectangle at
// (x0, y0) of size w×h. Each cell's scales cover the extents of its
// variables in obs, inset by padding pixels. A variable without any
// values gets the domain [0, 1] and its cells stay empty.
func NewGrid(obs []penguins.Observation, vars []penguins.Variable, x0, y0, w, h, padding float64) *Grid {
	n := len(vars)
	g := &Grid{Vars: vars, X0: x0, Y0: y0, W: w, H: h}
	if n == 0 {
		return g
	}
	cw, ch := w/float64(n), h/float64(n)

	type extent struct{ min, max float64 }
	extents := make([]extent, n)
	cols := make([][]float64, n)
	for i, v := range vars {
		min, max, ok := penguins.Extent(obs, v)
		if !ok {
			min, max = math.NaN(), math.NaN()
		}
		extents[i] = extent{min, max}
		cols[i] = penguins.Column(obs, v)
	}

	for i, rv := range vars {
		for j, cv := range vars {
			cx, cy := x0+float64(j)*cw, y0+float64(i)*ch
			c := &Cell{
				Row: i, Col: j, RowVar: rv, ColVar: cv,
				X0: cx, Y0: cy, W: cw, H: ch,
				X:    plotutil.NewLinear(extents[j].min, extents[j].max, cx+padding, cx+cw-padding),
				Y:    plotutil.NewLinear(extents[i].min, extents[i].max, cy+ch-padding, cy+padding),
				Corr: correlation(cols[j], cols[i]),
			}
			g.Cells = append(g.Cells, c)
		}
	}

	for _, c := range g.Cells {
		for _, o := range obs {
			xv, yv := c.ColVar.Value(o), c.RowVar.Value(o)
			if math.IsNaN(xv) || math.IsNaN(yv) {
				continue
			}
			g.Points = append(g.Points, Point{Obs: o, Cell: c, X: c.X.Map(xv), Y: c.Y.Map(yv)})
		}
	}
	return g
}

func correlation(xs, ys []float64) float64 {
	if len(xs) < 2 {
		return math.NaN()
	}
	return stat.Correlation(xs, ys, nil)
}
