// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"math"

	"flexlay.org/f64"
	"flexlay.org/layout"
)

// Expander takes up all the space it is offered. Along an unbounded
// axis it takes its minimum.
type Expander struct{}

func (Expander) Layout(gtx *layout.Context, cs layout.Constraints) layout.Dimensions {
	return layout.Dimensions{
		Size: f64.Pt(expand(cs.Width), expand(cs.Height)),
	}
}

func expand(c layout.Constraint) float64 {
	if math.IsInf(c.Max, 1) {
		return c.Min
	}
	return c.Max
}
