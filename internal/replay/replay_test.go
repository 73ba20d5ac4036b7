// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package replay

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aclements/penguinplot/penguins"
	"github.com/aclements/penguinplot/splom"
)

const script = `
# Hide the Gentoos, then select the top-left corner.
legend gentoo
brush 50 50 0 0
snapshot "brushed view.svg"   # quoted path

brush clear
dblclick
snapshot facets.svg
`

func TestParse(t *testing.T) {
	steps, err := Parse(strings.NewReader(script))
	require.NoError(t, err)

	want := []Step{
		{Line: 3, Event: splom.LegendClick{Species: penguins.Gentoo}},
		{Line: 4, Event: splom.BrushChange{Phase: splom.BrushEnd, Selection: &splom.Rect{X0: 50, Y0: 50, X1: 0, Y1: 0}}},
		{Line: 5, Snapshot: "brushed view.svg"},
		{Line: 7, Event: splom.BrushChange{Phase: splom.BrushEnd}},
		{Line: 8, Event: splom.DoubleClick{}},
		{Line: 9, Snapshot: "facets.svg"},
	}
	assert.Equal(t, want, steps)
}

func TestParseErrors(t *testing.T) {
	for _, test := range []struct {
		script, err string
	}{
		{"legend emperor", "line 1:"},
		{"\nlegend", "line 2: usage: legend"},
		{"brush 1 2 3", "usage: brush"},
		{"brush 1 2 3 x", `bad coordinate "x"`},
		{"dblclick now", "usage: dblclick"},
		{"snapshot", "usage: snapshot"},
		{"zoom 2", `unknown command "zoom"`},
		{`snapshot "unterminated`, "line 1:"},
	} {
		_, err := Parse(strings.NewReader(test.script))
		if assert.Error(t, err, test.script) {
			assert.Contains(t, err.Error(), test.err)
		}
	}
}

func TestRun(t *testing.T) {
	obs, err := penguins.Load("../../penguins/testdata/penguins.csv", penguins.Options{})
	require.NoError(t, err)
	c := splom.New(obs, splom.DefaultOptions())

	steps, err := Parse(strings.NewReader(script))
	require.NoError(t, err)

	var views []splom.State
	snap := func(path string) error {
		views = append(views, c.State())
		return nil
	}
	require.NoError(t, Run(c, steps, snap))
	require.Len(t, views, 2)

	assert.Equal(t, splom.Overview, views[0].View)
	assert.False(t, views[0].Active[penguins.Gentoo])
	require.NotNil(t, views[0].Brush)
	assert.Equal(t, splom.Rect{X0: 0, Y0: 0, X1: 50, Y1: 50}, *views[0].Brush)

	assert.Equal(t, splom.Faceted, views[1].View)
	assert.Nil(t, views[1].Brush)
}

func TestRunSnapshotError(t *testing.T) {
	c := splom.New(nil, splom.DefaultOptions())
	steps := []Step{{Line: 4, Snapshot: "x.svg"}}
	err := Run(c, steps, func(string) error { return errors.New("disk full") })
	assert.EqualError(t, err, "line 4: disk full")
}
