// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package splom implements an interactive scatter-plot matrix over the
// four penguin measurements.
//
// The matrix has two views. The overview is a single N×N grid over all
// observations with a species legend whose entries toggle the
// visibility of a species and a rectangular brush shared by the whole
// grid. The faceted view is one grid per species. A double click
// switches between them.
//
// A Controller owns the interaction state. Events are applied with
// Dispatch, which runs the pure Transition function and rebuilds the
// layout when the view changes. Render writes the current view as SVG.
package splom

import (
	"github.com/aclements/penguinplot/internal/plotutil"
	"github.com/aclements/penguinplot/penguins"
)

// Options controls the layout and appearance of the matrix.
type Options struct {
	Width, Height int
	Margin        plotutil.Margin

	// Padding insets each cell's scales from the cell's edges.
	Padding float64

	// Radius is the radius of a point in pixels.
	Radius int

	// Ticks is the maximum number of ticks on each cell axis.
	Ticks int

	Style Style
}

// DefaultOptions returns the default 900×900 layout.
func DefaultOptions() Options {
	return Options{
		Width:   900,
		Height:  900,
		Margin:  plotutil.DefaultMargin,
		Padding: 10,
		Radius:  3,
		Ticks:   4,
		Style:   DefaultStyle,
	}
}

// facetGap separates adjacent faceted grids and leaves room for their
// y axes.
const facetGap = 40

// facetTitle is the height reserved above a faceted grid for its
// title.
const facetTitle = 24

// A Controller drives one scatter-plot matrix.
type Controller struct {
	obs  []penguins.Observation
	opts Options

	state    State
	overview *Grid
	facets   []*Grid

	// last is the redraw caused by the most recent event.
	last Redraw
}

// New returns a controller showing the overview of obs.
func New(obs []penguins.Observation, opts Options) *Controller {
	c := &Controller{obs: obs, opts: opts}
	c.build()
	c.last = Redraw{RedrawFull, Overview}
	return c
}

// build constructs the overview from scratch.
func (c *Controller) build() {
	c.state = Initial(penguins.SpeciesOf(c.obs))
	w, h := c.Canvas()
	c.overview = NewGrid(c.obs, penguins.Variables, 0, 0, w, h, c.opts.Padding)
	c.facets = nil
}

// buildFacets constructs one grid per species, left to right.
func (c *Controller) buildFacets() {
	w, h := c.Canvas()
	species := penguins.SpeciesOf(c.obs)
	groups := penguins.BySpecies(c.obs)
	c.facets = nil
	if len(species) == 0 {
		return
	}
	fw := w / float64(len(species))
	for i, sp := range species {
		x0, gw := float64(i)*fw, fw
		if i > 0 {
			x0 += facetGap
			gw -= facetGap
		}
		g := NewGrid(groups[sp], penguins.Variables, x0, facetTitle, gw, h-facetTitle, c.opts.Padding)
		g.Title = sp.String()
		c.facets = append(c.facets, g)
	}
}

// Canvas returns the size of the matrix canvas, which is the surface
// less its margins. Brush rectangles and point coordinates are in this
// space.
func (c *Controller) Canvas() (w, h float64) {
	iw, ih := c.opts.Margin.Inner(c.opts.Width, c.opts.Height)
	return float64(iw), float64(ih)
}

// Dispatch applies ev and returns what must be redrawn.
func (c *Controller) Dispatch(ev Event) Redraw {
	next, r := Transition(c.state, ev)
	c.state = next
	if r.Kind == RedrawFull {
		switch r.View {
		case Overview:
			c.build()
		case Faceted:
			c.buildFacets()
		}
	}
	c.last = r
	return r
}

// State returns the current interaction state. The caller must not
// modify it.
func (c *Controller) State() State {
	return c.state
}

// Points returns the points of the overview.
func (c *Controller) Points() []Point {
	return c.overview.Points
}

// Facets returns the per-species grids, or nil in the overview.
func (c *Controller) Facets() []*Grid {
	if c.state.View != Faceted {
		return nil
	}
	return c.facets
}

// Style returns the appearance of p in the current state.
func (c *Controller) Style(p Point) PointStyle {
	return StyleOf(p, c.state, c.opts.Style)
}

// Selected returns the overview points inside the brush, or nil if no
// brush is live.
func (c *Controller) Selected() []Point {
	b := c.state.Brush
	if b == nil || c.state.View != Overview {
		return nil
	}
	var sel []Point
	for _, p := range c.overview.Points {
		if b.Contains(p.X, p.Y) {
			sel = append(sel, p)
		}
	}
	return sel
}

// SelectedCounts returns the number of selected points of each
// species.
func (c *Controller) SelectedCounts() map[penguins.Species]int {
	counts := make(map[penguins.Species]int)
	for _, p := range c.Selected() {
		counts[p.Obs.Species]++
	}
	return counts
}
