// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package splom

import (
	"fmt"
	"time"

	"github.com/aclements/penguinplot/penguins"
)

// View is the display mode of the matrix.
type View int

const (
	// Overview is a single matrix over all observations, with a
	// species legend and a brush.
	Overview View = iota

	// Faceted is one matrix per species, side by side. It has no
	// legend and no brush.
	Faceted
)

func (v View) String() string {
	switch v {
	case Overview:
		return "overview"
	case Faceted:
		return "faceted"
	}
	return fmt.Sprintf("View(%d)", int(v))
}

// Rect is an axis-aligned rectangle in matrix-canvas coordinates.
type Rect struct {
	X0, Y0, X1, Y1 float64
}

// Canon returns r with X0 <= X1 and Y0 <= Y1.
func (r Rect) Canon() Rect {
	if r.X0 > r.X1 {
		r.X0, r.X1 = r.X1, r.X0
	}
	if r.Y0 > r.Y1 {
		r.Y0, r.Y1 = r.Y1, r.Y0
	}
	return r
}

// Contains reports whether (x, y) lies in r, edges included.
func (r Rect) Contains(x, y float64) bool {
	r = r.Canon()
	return r.X0 <= x && x <= r.X1 && r.Y0 <= y && y <= r.Y1
}

func (r Rect) String() string {
	return fmt.Sprintf("[%g,%g]-[%g,%g]", r.X0, r.Y0, r.X1, r.Y1)
}

// An Event is a user interaction with the matrix.
type Event interface {
	event()
}

// LegendClick toggles the visibility of a species.
type LegendClick struct {
	Species penguins.Species
}

// BrushPhase is the stage of a brush gesture.
type BrushPhase int

const (
	BrushStart BrushPhase = iota
	BrushMove
	BrushEnd
)

// BrushChange reports the current brush selection. A nil Selection
// means the brush was cleared.
type BrushChange struct {
	Phase     BrushPhase
	Selection *Rect
}

// DoubleClick toggles between the overview and the faceted view.
type DoubleClick struct{}

func (LegendClick) event() {}
func (BrushChange) event() {}
func (DoubleClick) event() {}

// State is the interaction state of the matrix.
type State struct {
	View View

	// Active holds one entry per species in the legend. A species
	// is shown at full opacity when its entry is true.
	Active map[penguins.Species]bool

	// Brush is the live brush selection, or nil.
	Brush *Rect
}

// Initial returns the state of a freshly built matrix: the overview,
// every species active and no brush.
func Initial(species []penguins.Species) State {
	active := make(map[penguins.Species]bool, len(species))
	for _, s := range species {
		active[s] = true
	}
	return State{View: Overview, Active: active}
}

func (s State) clone() State {
	active := make(map[penguins.Species]bool, len(s.Active))
	for k, v := range s.Active {
		active[k] = v
	}
	s.Active = active
	if s.Brush != nil {
		b := *s.Brush
		s.Brush = &b
	}
	return s
}

// Species returns the legend's species in display order.
func (s State) Species() []penguins.Species {
	var out []penguins.Species
	for _, sp := range penguins.AllSpecies {
		if _, ok := s.Active[sp]; ok {
			out = append(out, sp)
		}
	}
	return out
}

// ActiveSpecies returns the active species in display order.
func (s State) ActiveSpecies() []penguins.Species {
	var out []penguins.Species
	for _, sp := range s.Species() {
		if s.Active[sp] {
			out = append(out, sp)
		}
	}
	return out
}

// RedrawKind says how much of the rendering an event invalidates.
type RedrawKind int

const (
	// RedrawNone means the event had no visible effect.
	RedrawNone RedrawKind = iota

	// RedrawStyles means point and legend styles changed and
	// should transition to their new values.
	RedrawStyles

	// RedrawFull means the old rendering is faded out and removed
	// and a new one is faded in.
	RedrawFull
)

func (k RedrawKind) String() string {
	switch k {
	case RedrawNone:
		return "none"
	case RedrawStyles:
		return "styles"
	case RedrawFull:
		return "full"
	}
	return fmt.Sprintf("RedrawKind(%d)", int(k))
}

// Redraw describes the rendering work caused by an event.
type Redraw struct {
	Kind RedrawKind

	// View is the view to draw.
	View View
}

// Transition applies ev to s and returns the next state along with
// what must be redrawn. s is not modified.
//
// Legend clicks and brush changes only apply to the overview.
// Entering the faceted view drops the brush and the legend state.
// Leaving it rebuilds the overview from scratch, so the legend returns
// to all active and the brush is cleared.
func Transition(s State, ev Event) (State, Redraw) {
	switch ev := ev.(type) {
	case LegendClick:
		if s.View != Overview {
			break
		}
		active, ok := s.Active[ev.Species]
		if !ok {
			break
		}
		next := s.clone()
		next.Active[ev.Species] = !active
		return next, Redraw{RedrawStyles, Overview}

	case BrushChange:
		if s.View != Overview {
			break
		}
		next := s.clone()
		next.Brush = nil
		if ev.Selection != nil {
			r := ev.Selection.Canon()
			next.Brush = &r
		}
		return next, Redraw{RedrawStyles, Overview}

	case DoubleClick:
		if s.View == Overview {
			next := Initial(s.Species())
			next.View = Faceted
			return next, Redraw{RedrawFull, Faceted}
		}
		return Initial(s.Species()), Redraw{RedrawFull, Overview}
	}
	return s, Redraw{RedrawNone, s.View}
}

// Style holds the visual constants of point emphasis.
type Style struct {
	FullOpacity  float64 `yaml:"full_opacity"`
	FaintOpacity float64 `yaml:"faint_opacity"`

	Stroke           float64 `yaml:"stroke_width"`
	EmphasizedStroke float64 `yaml:"emphasized_stroke_width"`

	// Transition is the duration of opacity and stroke changes,
	// and of fades between views.
	Transition time.Duration `yaml:"transition"`
}

// DefaultStyle is the default point emphasis.
var DefaultStyle = Style{
	FullOpacity:      1,
	FaintOpacity:     0.1,
	Stroke:           0,
	EmphasizedStroke: 1.5,
	Transition:       250 * time.Millisecond,
}

// PointStyle is the computed appearance of one point.
type PointStyle struct {
	Opacity     float64
	StrokeWidth float64
}

// StyleOf returns the appearance of p under s.
//
// Without a brush, p is at full opacity if its species is active and
// faint otherwise. With a brush, points inside the brush are
// emphasized and at full opacity and every other point is faint,
// whatever the legend says.
func StyleOf(p Point, s State, st Style) PointStyle {
	if s.Brush != nil {
		if s.Brush.Contains(p.X, p.Y) {
			return PointStyle{st.FullOpacity, st.EmphasizedStroke}
		}
		return PointStyle{st.FaintOpacity, st.Stroke}
	}
	if s.Active[p.Obs.Species] {
		return PointStyle{st.FullOpacity, st.Stroke}
	}
	return PointStyle{st.FaintOpacity, st.Stroke}
}
