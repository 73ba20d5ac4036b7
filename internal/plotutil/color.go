// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotutil

import (
	"fmt"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/aclements/penguinplot/penguins"
)

// Hex formats c as a #rrggbb CSS color, ignoring alpha.
func Hex(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}

// SpeciesColor returns the fill color of species s.
func SpeciesColor(s penguins.Species) color.RGBA {
	switch s {
	case penguins.Adelie:
		return color.RGBA{0xff, 0x8c, 0x00, 0xff}
	case penguins.Chinstrap:
		return color.RGBA{0xa0, 0x34, 0xf0, 0xff}
	case penguins.Gentoo:
		return color.RGBA{0x05, 0x7f, 0x7f, 0xff}
	}
	panic(fmt.Sprintf("no color for %v", s))
}

// TextWidth estimates the rendered width in pixels of s at the ~11px
// font size the charts use for labels.
func TextWidth(s string) int {
	return font.MeasureString(basicfont.Face7x13, s).Ceil()
}
