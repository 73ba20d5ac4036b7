// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package explore is a terminal front end for a scatter-plot matrix.
//
// Keys play the role of the pointer: number keys click legend
// entries, the arrow keys drag the brush and H, J, K and L resize it,
// and enter stands in for a double click. The matrix itself is
// written as SVG with w.
package explore

import (
	"fmt"
	"math"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aclements/penguinplot/internal/plotutil"
	"github.com/aclements/penguinplot/penguins"
	"github.com/aclements/penguinplot/splom"
)

var (
	title = lipgloss.NewStyle().Bold(true)
	dim   = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	warn  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	bad   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// Step is how far one key press moves or resizes the brush, in
// canvas pixels.
const Step = 20

// newBrush is the side of the brush created by b.
const newBrush = 100

// Model is the bubbletea model of the explorer.
type Model struct {
	c        *splom.Controller
	snapshot func() (string, error)

	status string
	err    error
}

// New returns an explorer driving c. The w key calls snapshot, which
// returns the path it wrote.
func New(c *splom.Controller, snapshot func() (string, error)) Model {
	return Model{c: c, snapshot: snapshot}
}

// Run runs the explorer on the terminal until the user quits.
func Run(c *splom.Controller, snapshot func() (string, error)) error {
	_, err := tea.NewProgram(New(c, snapshot)).Run()
	return err
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	m.status, m.err = "", nil
	key := msg.String()
	switch key {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "1", "2", "3":
		species := m.c.State().Species()
		i := int(key[0] - '1')
		if i >= len(species) {
			m.status = fmt.Sprintf("no species %s", key)
			break
		}
		m.dispatch(splom.LegendClick{Species: species[i]})

	case "b":
		w, h := m.c.Canvas()
		r := splom.Rect{X0: w/2 - newBrush/2, Y0: h/2 - newBrush/2, X1: w/2 + newBrush/2, Y1: h/2 + newBrush/2}
		m.dispatch(splom.BrushChange{Phase: splom.BrushStart, Selection: &r})

	case "c":
		m.dispatch(splom.BrushChange{Phase: splom.BrushEnd})

	case "up", "down", "left", "right":
		dx, dy := arrow(key)
		m.adjust(func(r *splom.Rect) {
			r.X0 += dx
			r.X1 += dx
			r.Y0 += dy
			r.Y1 += dy
		})

	case "H", "J", "K", "L":
		dx, dy := arrow(map[string]string{"H": "left", "J": "down", "K": "up", "L": "right"}[key])
		m.adjust(func(r *splom.Rect) {
			r.X1 = math.Max(r.X0, r.X1+dx)
			r.Y1 = math.Max(r.Y0, r.Y1+dy)
		})

	case "enter", "d":
		m.dispatch(splom.DoubleClick{})

	case "w":
		path, err := m.snapshot()
		if err != nil {
			m.err = err
			break
		}
		m.status = "wrote " + path
	}
	return m, nil
}

func arrow(key string) (dx, dy float64) {
	switch key {
	case "up":
		return 0, -Step
	case "down":
		return 0, Step
	case "left":
		return -Step, 0
	case "right":
		return Step, 0
	}
	return 0, 0
}

// adjust applies f to a copy of the live brush and dispatches the
// result, keeping it inside the canvas.
func (m *Model) adjust(f func(r *splom.Rect)) {
	b := m.c.State().Brush
	if b == nil {
		m.status = "no brush (press b)"
		return
	}
	r := *b
	f(&r)
	w, h := m.c.Canvas()
	if r.X0 < 0 {
		r.X1 -= r.X0
		r.X0 = 0
	}
	if r.Y0 < 0 {
		r.Y1 -= r.Y0
		r.Y0 = 0
	}
	if r.X1 > w {
		r.X0 = math.Max(0, r.X0-(r.X1-w))
		r.X1 = w
	}
	if r.Y1 > h {
		r.Y0 = math.Max(0, r.Y0-(r.Y1-h))
		r.Y1 = h
	}
	m.dispatch(splom.BrushChange{Phase: splom.BrushMove, Selection: &r})
}

func (m *Model) dispatch(ev splom.Event) {
	if r := m.c.Dispatch(ev); r.Kind == splom.RedrawNone {
		m.status = fmt.Sprintf("ignored in %s view", r.View)
	}
}

func (m Model) View() string {
	var b strings.Builder
	s := m.c.State()

	b.WriteString(title.Render("penguinplot scatter-plot matrix") + "  " + dim.Render(s.View.String()) + "\n\n")

	if s.View == splom.Overview {
		b.WriteString("legend:  ")
		for i, sp := range s.Species() {
			style := lipgloss.NewStyle().Foreground(lipgloss.Color(plotutil.Hex(plotutil.SpeciesColor(sp))))
			if !s.Active[sp] {
				style = dim.Strikethrough(true)
			}
			fmt.Fprintf(&b, "%d %s  ", i+1, style.Render(sp.String()))
		}
		b.WriteString("\n")

		if s.Brush == nil {
			b.WriteString("brush:   " + dim.Render("none") + "\n")
		} else {
			fmt.Fprintf(&b, "brush:   %s\n", s.Brush)
			fmt.Fprintf(&b, "selected:%s\n", counts(m.c.SelectedCounts()))
		}
	} else {
		for _, g := range m.c.Facets() {
			fmt.Fprintf(&b, "%-10s %d points\n", g.Title, len(g.Points))
		}
	}

	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(bad.Render(m.err.Error()) + "\n")
	} else if m.status != "" {
		b.WriteString(warn.Render(m.status) + "\n")
	}
	b.WriteString(dim.Render("1-3 legend · b brush · arrows move · HJKL resize · c clear · enter facets · w write · q quit") + "\n")
	return b.String()
}

func counts(m map[penguins.Species]int) string {
	var species []penguins.Species
	for sp := range m {
		species = append(species, sp)
	}
	sort.Slice(species, func(i, j int) bool { return species[i] < species[j] })
	if len(species) == 0 {
		return " " + dim.Render("nothing")
	}
	var b strings.Builder
	for _, sp := range species {
		fmt.Fprintf(&b, " %s %d", sp, m[sp])
	}
	return b.String()
}
