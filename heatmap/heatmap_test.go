// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heatmap

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aclements/penguinplot/penguins"
)

func loadTestdata(t *testing.T) []penguins.Observation {
	t.Helper()
	obs, err := penguins.Load("../penguins/testdata/penguins.csv", penguins.Options{})
	require.NoError(t, err)
	return obs
}

func TestCountsCrossProduct(t *testing.T) {
	cells := Counts(loadTestdata(t))
	want := []Cell{
		{"Biscoe", penguins.Adelie, 1},
		{"Biscoe", penguins.Chinstrap, 0},
		{"Biscoe", penguins.Gentoo, 3},
		{"Dream", penguins.Adelie, 1},
		{"Dream", penguins.Chinstrap, 3},
		{"Dream", penguins.Gentoo, 0},
		{"Torgersen", penguins.Adelie, 5},
		{"Torgersen", penguins.Chinstrap, 0},
		{"Torgersen", penguins.Gentoo, 0},
	}
	assert.Equal(t, want, cells)
}

func TestCountsSpeciesPresentOnly(t *testing.T) {
	obs := []penguins.Observation{
		{Species: penguins.Gentoo, Island: "Biscoe"},
		{Species: penguins.Gentoo, Island: "Biscoe"},
		{Species: penguins.Adelie, Island: "Dream"},
	}
	assert.Equal(t, []Cell{
		{"Biscoe", penguins.Adelie, 0},
		{"Biscoe", penguins.Gentoo, 2},
		{"Dream", penguins.Adelie, 1},
		{"Dream", penguins.Gentoo, 0},
	}, Counts(obs))
	assert.Nil(t, Counts(nil))
}

func TestQuantize(t *testing.T) {
	colors, err := Palette("Blues", 9)
	require.NoError(t, err)
	q := Quantize{Max: 5, Colors: colors}

	for _, test := range []struct{ count, level int }{
		{0, 0}, {1, 1}, {3, 5}, {5, 8}, {6, 8},
	} {
		assert.Equal(t, test.level, q.Level(test.count), "count %d", test.count)
	}
	assert.Equal(t, 0, Quantize{Max: 0, Colors: colors}.Level(0))

	th := q.Thresholds()
	require.Len(t, th, 9)
	assert.Equal(t, 0.0, th[0])
	assert.Less(t, th[8], 5.0)
}

func TestPalette(t *testing.T) {
	_, err := Palette("NoSuchPalette", 9)
	assert.Error(t, err)
	_, err = Palette("Blues", 100)
	assert.Error(t, err)
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, loadTestdata(t), DefaultOptions()))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "<?xml"))
	assert.Contains(t, out, `id="heatmap"`)
	assert.Equal(t, 9, strings.Count(out, `class="cell"`))
	assert.Contains(t, out, "<title>Torgersen / Adelie: 5</title>")
	assert.Contains(t, out, "<title>Torgersen / Gentoo: 0</title>")
	assert.Contains(t, out, "</svg>")
}

func TestRenderEmptyPalette(t *testing.T) {
	opts := DefaultOptions()
	opts.Colors = nil
	assert.Error(t, Render(new(bytes.Buffer), nil, opts))
}
