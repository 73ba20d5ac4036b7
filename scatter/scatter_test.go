// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scatter

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aclements/penguinplot/internal/plotutil"
	"github.com/aclements/penguinplot/penguins"
)

func loadTestdata(t *testing.T) []penguins.Observation {
	t.Helper()
	obs, err := penguins.Load("../penguins/testdata/penguins.csv", penguins.Options{})
	require.NoError(t, err)
	return obs
}

func TestMarks(t *testing.T) {
	obs := loadTestdata(t)
	opts := DefaultOptions()
	l := Marks(obs, opts)
	require.Len(t, l.Marks, len(obs))

	iw, ih := opts.Margin.Inner(opts.Width, opts.Height)
	for _, m := range l.Marks {
		assert.True(t, m.X >= 0 && m.X <= float64(iw), "x %v out of range", m.X)
		assert.True(t, m.Y >= 0 && m.Y <= float64(ih), "y %v out of range", m.Y)
		assert.True(t, m.W >= opts.MarkerWidth[0] && m.W <= opts.MarkerWidth[1])
		assert.True(t, m.H >= opts.MarkerHeight[0] && m.H <= opts.MarkerHeight[1])
		assert.Equal(t, plotutil.SpeciesColor(m.Obs.Species), m.Fill)
		assert.Equal(t, Tilt(m.Obs.Sex), m.Tilt)
	}

	// Body mass 5700 is the heaviest, 3250 the lightest.
	var maxW, minW float64 = 0, math.Inf(1)
	for _, m := range l.Marks {
		maxW = math.Max(maxW, m.W)
		minW = math.Min(minW, m.W)
	}
	assert.InDelta(t, opts.MarkerWidth[1], maxW, 1e-9)
	assert.InDelta(t, opts.MarkerWidth[0], minW, 1e-9)
}

func TestMarksNiceDomain(t *testing.T) {
	l := Marks(loadTestdata(t), DefaultOptions())
	min, max := l.X.Domain()
	assert.LessOrEqual(t, min, 36.7)
	assert.GreaterOrEqual(t, max, 51.3)
	assert.Equal(t, math.Floor(min), min)
	assert.Equal(t, math.Ceil(max), max)

	// Screen y grows downward.
	r0, r1 := l.Y.Range()
	assert.Greater(t, r0, r1)
}

func TestMarksSkipsIncomplete(t *testing.T) {
	obs := loadTestdata(t)
	bad := obs[0]
	bad.BodyMass = math.NaN()
	l := Marks(append([]penguins.Observation{bad}, obs...), DefaultOptions())
	assert.Len(t, l.Marks, len(obs))
}

func TestMarkPoints(t *testing.T) {
	m := Mark{X: 10, Y: 20, W: 4, H: 6}
	xs, ys := m.Points()
	assert.Equal(t, [3]float64{10, 8, 12}, xs)
	assert.Equal(t, [3]float64{17, 23, 23}, ys)
	// Isosceles: both sides from the apex have the same length.
	left := math.Hypot(xs[1]-xs[0], ys[1]-ys[0])
	right := math.Hypot(xs[2]-xs[0], ys[2]-ys[0])
	assert.InDelta(t, left, right, 1e-9)
}

func TestTooltip(t *testing.T) {
	l := Marks(loadTestdata(t), DefaultOptions())
	tip := l.Marks[0].Tooltip()
	assert.Contains(t, tip, "species: Adelie")
	assert.Contains(t, tip, "bill length: 39.1 mm")
	assert.Contains(t, tip, "body mass: 3750 g")
	assert.Equal(t, 6, strings.Count(tip, "\n"))
}

func TestTilt(t *testing.T) {
	assert.NotEqual(t, Tilt(penguins.Female), Tilt(penguins.Male))
	assert.Panics(t, func() { Tilt(penguins.Sex(7)) })
}

func TestRender(t *testing.T) {
	obs := loadTestdata(t)
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, obs, DefaultOptions()))
	out := buf.String()
	assert.Contains(t, out, `id="scatter"`)
	assert.Equal(t, len(obs), strings.Count(out, `class="mark"`))
	assert.Contains(t, out, "rotate(-20 ")
	assert.Contains(t, out, "Chinstrap")
}

func TestFacets(t *testing.T) {
	p := Facets(loadTestdata(t))
	var buf bytes.Buffer
	require.NoError(t, p.WriteSVG(&buf, 900, 300))
	assert.Contains(t, buf.String(), "<svg")
}
