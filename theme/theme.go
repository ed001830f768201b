// SPDX-License-Identifier: Unlicense OR MIT

// Package theme holds the style defaults consulted by layouts and the
// debug renderer.
package theme

import (
	"image/color"

	"flexlay.org/layout"
	"flexlay.org/unit"
)

// Theme holds the default gaps of flex layouts and the colors of debug
// renderings. It implements layout.Theme.
type Theme struct {
	// HorizontalGap is the default gap between the children of a
	// horizontal Flex.
	HorizontalGap unit.Dp
	// VerticalGap is the default gap between the children of a
	// vertical Flex.
	VerticalGap unit.Dp
	Color       struct {
		Background color.RGBA
		Baseline   color.RGBA
		Outline    color.RGBA
	}
}

var _ layout.Theme = (*Theme)(nil)

// New returns the default theme.
func New() *Theme {
	t := &Theme{
		HorizontalGap: 8,
		VerticalGap:   10,
	}
	t.Color.Background = rgb(0xffffff)
	t.Color.Baseline = rgb(0xe91e63)
	t.Color.Outline = rgb(0x3f51b5)
	return t
}

// DefaultGap returns the gap between flex children along a.
func (t *Theme) DefaultGap(a layout.Axis) unit.Dp {
	switch a {
	case layout.Horizontal:
		return t.HorizontalGap
	case layout.Vertical:
		return t.VerticalGap
	default:
		panic("unreachable")
	}
}

func rgb(c uint32) color.RGBA {
	return argb(0xff000000 | c)
}

func argb(c uint32) color.RGBA {
	return color.RGBA{A: uint8(c >> 24), R: uint8(c >> 16), G: uint8(c >> 8), B: uint8(c)}
}
