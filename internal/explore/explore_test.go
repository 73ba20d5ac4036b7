// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package explore

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aclements/penguinplot/penguins"
	"github.com/aclements/penguinplot/splom"
)

func newModel(t *testing.T) (Model, *splom.Controller) {
	t.Helper()
	obs, err := penguins.Load("../../penguins/testdata/penguins.csv", penguins.Options{})
	require.NoError(t, err)
	c := splom.New(obs, splom.DefaultOptions())
	return New(c, func() (string, error) { return "out.svg", nil }), c
}

func keys(t *testing.T, m Model, ks ...tea.KeyMsg) Model {
	t.Helper()
	for _, k := range ks {
		next, _ := m.Update(k)
		m = next.(Model)
	}
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestLegendKeys(t *testing.T) {
	m, c := newModel(t)
	keys(t, m, runes("3"))
	assert.False(t, c.State().Active[penguins.Gentoo])
	assert.True(t, c.State().Active[penguins.Adelie])

	keys(t, m, runes("3"))
	assert.True(t, c.State().Active[penguins.Gentoo])
}

func TestBrushKeys(t *testing.T) {
	m, c := newModel(t)

	m = keys(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Nil(t, c.State().Brush)
	assert.Contains(t, m.View(), "no brush")

	keys(t, m, runes("b"))
	w, h := c.Canvas()
	require.NotNil(t, c.State().Brush)
	start := *c.State().Brush
	assert.Equal(t, splom.Rect{X0: w/2 - 50, Y0: h/2 - 50, X1: w/2 + 50, Y1: h/2 + 50}, start)

	keys(t, m, tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyUp})
	moved := *c.State().Brush
	assert.Equal(t, splom.Rect{X0: start.X0 + Step, Y0: start.Y0 - Step, X1: start.X1 + Step, Y1: start.Y1 - Step}, moved)

	keys(t, m, runes("L"), runes("J"))
	grown := *c.State().Brush
	assert.Equal(t, moved.X1+Step, grown.X1)
	assert.Equal(t, moved.Y1+Step, grown.Y1)
	assert.Equal(t, moved.X0, grown.X0)

	// Shrinking stops at zero size.
	for i := 0; i < 20; i++ {
		keys(t, m, runes("H"))
	}
	assert.Equal(t, grown.X0, c.State().Brush.X1)

	keys(t, m, runes("c"))
	assert.Nil(t, c.State().Brush)
}

func TestBrushStaysOnCanvas(t *testing.T) {
	m, c := newModel(t)
	keys(t, m, runes("b"))
	for i := 0; i < 100; i++ {
		keys(t, m, tea.KeyMsg{Type: tea.KeyLeft}, tea.KeyMsg{Type: tea.KeyDown})
	}
	b := c.State().Brush
	_, h := c.Canvas()
	assert.Equal(t, 0.0, b.X0)
	assert.Equal(t, h, b.Y1)
	assert.Equal(t, 100.0, b.X1-b.X0)
	assert.Equal(t, 100.0, b.Y1-b.Y0)
}

func TestFacetKey(t *testing.T) {
	m, c := newModel(t)
	m = keys(t, m, runes("1"), runes("b"), tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, splom.Faceted, c.State().View)
	assert.Contains(t, m.View(), "Chinstrap")

	m = keys(t, m, runes("2"))
	assert.Contains(t, m.View(), "ignored in faceted view")

	keys(t, m, runes("d"))
	assert.Equal(t, splom.Overview, c.State().View)
	assert.Nil(t, c.State().Brush)
	assert.True(t, c.State().Active[penguins.Adelie])
}

func TestSnapshotKey(t *testing.T) {
	m, _ := newModel(t)
	m = keys(t, m, runes("w"))
	assert.Contains(t, m.View(), "wrote out.svg")

	m.snapshot = func() (string, error) { return "", errors.New("permission denied") }
	m = keys(t, m, runes("w"))
	assert.Contains(t, m.View(), "permission denied")
}

func TestQuit(t *testing.T) {
	m, _ := newModel(t)
	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
