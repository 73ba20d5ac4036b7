// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotutil

import (
	"fmt"

	svg "github.com/ajstarks/svgo"
)

const tickSize = 6

// Margin is the space around a chart's plotting area.
type Margin struct {
	Top    int `yaml:"top"`
	Right  int `yaml:"right"`
	Bottom int `yaml:"bottom"`
	Left   int `yaml:"left"`
}

// DefaultMargin is the margin shared by every penguin chart.
var DefaultMargin = Margin{Top: 40, Right: 40, Bottom: 60, Left: 80}

// Inner returns the size of the plotting area of a width×height
// surface.
func (m Margin) Inner(width, height int) (w, h int) {
	return width - m.Left - m.Right, height - m.Top - m.Bottom
}

// Translate returns an SVG transform attribute that moves the origin
// to the top-left corner of the plotting area.
func (m Margin) Translate() string {
	return fmt.Sprintf(`transform="translate(%d,%d)"`, m.Left, m.Top)
}

// FormatTick formats a tick label.
func FormatTick(v float64) string {
	return fmt.Sprintf("%.6g", v)
}

// BottomAxis draws a horizontal axis at y with ticks pointing down.
func BottomAxis(s *svg.SVG, l *Linear, y, ticks int) {
	r0, r1 := l.Range()
	s.Group(`class="axis axis-x"`, "stroke:#000;font-size:10px")
	s.Line(Round(r0), y, Round(r1), y)
	for _, v := range l.Ticks(ticks) {
		x := Round(l.Map(v))
		s.Line(x, y, x, y+tickSize)
		s.Text(x, y+tickSize+10, FormatTick(v), "stroke:none;text-anchor:middle")
	}
	s.Gend()
}

// LeftAxis draws a vertical axis at x with ticks pointing left.
func LeftAxis(s *svg.SVG, l *Linear, x, ticks int) {
	r0, r1 := l.Range()
	s.Group(`class="axis axis-y"`, "stroke:#000;font-size:10px")
	s.Line(x, Round(r0), x, Round(r1))
	for _, v := range l.Ticks(ticks) {
		y := Round(l.Map(v))
		s.Line(x-tickSize, y, x, y)
		s.Text(x-tickSize-3, y+3, FormatTick(v), "stroke:none;text-anchor:end")
	}
	s.Gend()
}

// BandBottomAxis draws a horizontal axis labelling each band of b.
func BandBottomAxis(s *svg.SVG, b *Band, y int) {
	s.Group(`class="axis axis-x"`, "stroke:#000;font-size:10px")
	s.Line(Round(b.R0), y, Round(b.R1), y)
	for _, d := range b.Domain {
		x0, _ := b.Map(d)
		x := Round(x0 + b.Bandwidth()/2)
		s.Line(x, y, x, y+tickSize)
		s.Text(x, y+tickSize+10, d, "stroke:none;text-anchor:middle")
	}
	s.Gend()
}

// BandLeftAxis draws a vertical axis labelling each band of b.
func BandLeftAxis(s *svg.SVG, b *Band, x int) {
	s.Group(`class="axis axis-y"`, "stroke:#000;font-size:10px")
	s.Line(x, Round(b.R0), x, Round(b.R1))
	for _, d := range b.Domain {
		y0, _ := b.Map(d)
		y := Round(y0 + b.Bandwidth()/2)
		s.Line(x-tickSize, y, x, y)
		s.Text(x-tickSize-3, y+3, d, "stroke:none;text-anchor:end")
	}
	s.Gend()
}

// AxisLabel draws a centered axis title at (x, y), optionally rotated
// to run bottom-to-top.
func AxisLabel(s *svg.SVG, x, y int, label string, vertical bool) {
	if vertical {
		s.Text(x, y, label, fmt.Sprintf(`transform="rotate(-90 %d %d)"`, x, y), "text-anchor:middle;font-size:12px")
		return
	}
	s.Text(x, y, label, "text-anchor:middle;font-size:12px")
}
