// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotutil

import (
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aclements/penguinplot/penguins"
)

func TestLinearMap(t *testing.T) {
	l := NewLinear(10, 20, 0, 100)
	assert.InDelta(t, 0, l.Map(10), 1e-9)
	assert.InDelta(t, 50, l.Map(15), 1e-9)
	assert.InDelta(t, 100, l.Map(20), 1e-9)

	inv := NewLinear(10, 20, 100, 0)
	assert.InDelta(t, 100, inv.Map(10), 1e-9)
	assert.InDelta(t, 0, inv.Map(20), 1e-9)
}

func TestLinearDegenerate(t *testing.T) {
	l := NewLinear(5, 5, 0, 100)
	assert.InDelta(t, 50, l.Map(5), 1e-9)

	l = NewLinear(0, 0, 0, 100)
	assert.InDelta(t, 50, l.Map(0), 1e-9)

	l = NewLinear(math.NaN(), math.NaN(), 0, 100)
	min, max := l.Domain()
	assert.Equal(t, 0.0, min)
	assert.Equal(t, 1.0, max)
}

func TestLinearNice(t *testing.T) {
	l := NewLinear(32.1, 59.6, 0, 100).Nice(10)
	min, max := l.Domain()
	assert.LessOrEqual(t, min, 32.1)
	assert.GreaterOrEqual(t, max, 59.6)
	assert.InDelta(t, 0, math.Remainder(min, 5), 1e-9)
	assert.InDelta(t, 0, math.Remainder(max, 5), 1e-9)

	ticks := l.Ticks(10)
	require.NotEmpty(t, ticks)
	for _, v := range ticks {
		assert.True(t, v >= min && v <= max, "tick %v outside [%v,%v]", v, min, max)
	}
}

func TestBand(t *testing.T) {
	b := NewBand([]string{"a", "b", "c"}, 0, 300, 0)
	assert.InDelta(t, 100, b.Step(), 1e-9)
	assert.InDelta(t, 100, b.Bandwidth(), 1e-9)
	x, ok := b.Map("b")
	require.True(t, ok)
	assert.InDelta(t, 100, x, 1e-9)
	_, ok = b.Map("z")
	assert.False(t, ok)

	p := NewBand([]string{"a", "b"}, 0, 100, 0.5)
	x0, _ := p.Map("a")
	x1, _ := p.Map("b")
	assert.InDelta(t, 40, p.Step(), 1e-9)
	assert.InDelta(t, 20, p.Bandwidth(), 1e-9)
	assert.InDelta(t, 20, x0, 1e-9)
	assert.InDelta(t, 60, x1, 1e-9)
	assert.InDelta(t, 100, x1+p.Bandwidth()+p.Step()*p.Padding, 1e-9)
}

func TestHex(t *testing.T) {
	assert.Equal(t, "#ff8c00", Hex(color.RGBA{0xff, 0x8c, 0x00, 0xff}))
	assert.Equal(t, "#000000", Hex(color.Black))
}

func TestSpeciesColorDistinct(t *testing.T) {
	seen := map[string]penguins.Species{}
	for _, s := range penguins.AllSpecies {
		h := Hex(SpeciesColor(s))
		_, dup := seen[h]
		assert.False(t, dup, "duplicate color %s", h)
		seen[h] = s
	}
	assert.Panics(t, func() { SpeciesColor(penguins.Species(99)) })
}

func TestTextWidth(t *testing.T) {
	assert.Equal(t, 0, TextWidth(""))
	assert.Equal(t, 7*len("Gentoo"), TextWidth("Gentoo"))
}

func TestMarginInner(t *testing.T) {
	w, h := DefaultMargin.Inner(600, 400)
	assert.Equal(t, 480, w)
	assert.Equal(t, 300, h)
}
