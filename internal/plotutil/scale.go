// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plotutil holds the chart plumbing shared by the penguin
// renderers: scales, axes, margins, colors and text measurement.
package plotutil

import (
	"math"

	"github.com/aclements/go-moremath/scale"
)

// Linear maps a continuous domain onto a pixel range.
type Linear struct {
	s      scale.Linear
	r0, r1 float64
}

// NewLinear returns a linear scale mapping [min, max] onto [r0, r1].
// r0 may be greater than r1 for an inverted (screen y) range.
//
// A NaN domain (no data) becomes [0, 1]. A degenerate domain where
// min == max is widened so every value still maps to the middle of
// the range.
func NewLinear(min, max, r0, r1 float64) *Linear {
	switch {
	case math.IsNaN(min) || math.IsNaN(max):
		min, max = 0, 1
	case min > max:
		min, max = max, min
	}
	if min == max {
		d := math.Abs(min) / 2
		if d == 0 {
			d = 1
		}
		min, max = min-d, max+d
	}
	return &Linear{s: scale.Linear{Min: min, Max: max}, r0: r0, r1: r1}
}

// Domain returns the input interval of l.
func (l *Linear) Domain() (min, max float64) {
	return l.s.Min, l.s.Max
}

// Range returns the output interval of l.
func (l *Linear) Range() (r0, r1 float64) {
	return l.r0, l.r1
}

// Map maps x from the domain to the range. Values outside the domain
// extrapolate.
func (l *Linear) Map(x float64) float64 {
	return l.r0 + l.s.Map(x)*(l.r1-l.r0)
}

// Ticks returns at most max major tick positions inside the domain.
func (l *Linear) Ticks(max int) []float64 {
	major, _ := l.s.Ticks(scale.TickOptions{Max: max})
	return major
}

// Nice extends the domain outward to the nearest multiples of the
// tick step that Ticks(max) would use.
func (l *Linear) Nice(max int) *Linear {
	major := l.Ticks(max)
	if len(major) < 2 {
		return l
	}
	step := major[1] - major[0]
	l.s.Min = math.Floor(l.s.Min/step) * step
	l.s.Max = math.Ceil(l.s.Max/step) * step
	return l
}

// Band divides a continuous range into equal bands, one per domain
// value, with padding between and around them expressed as a fraction
// of the band step.
type Band struct {
	Domain  []string
	R0, R1  float64
	Padding float64

	index map[string]int
}

// NewBand returns a band scale over domain.
func NewBand(domain []string, r0, r1, padding float64) *Band {
	b := &Band{Domain: domain, R0: r0, R1: r1, Padding: padding, index: make(map[string]int)}
	for i, d := range domain {
		b.index[d] = i
	}
	return b
}

// Step returns the distance between the starts of adjacent bands.
func (b *Band) Step() float64 {
	n := float64(len(b.Domain))
	if n == 0 {
		return 0
	}
	return (b.R1 - b.R0) / (n + b.Padding)
}

// Bandwidth returns the width of each band.
func (b *Band) Bandwidth() float64 {
	return b.Step() * (1 - b.Padding)
}

// Map returns the start of v's band. ok is false if v is not in the
// domain.
func (b *Band) Map(v string) (x float64, ok bool) {
	i, ok := b.index[v]
	if !ok {
		return 0, false
	}
	step := b.Step()
	return b.R0 + step*b.Padding + float64(i)*step, true
}

// Round converts a float pixel position to the integer grid used by
// the SVG writer.
func Round(x float64) int {
	return int(math.Round(x))
}
