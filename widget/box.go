// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"flexlay.org/f64"
	"flexlay.org/layout"
	"flexlay.org/unit"
)

// Box is a widget of a fixed size.
type Box struct {
	layout.Handle

	width, height unit.Dp
	baseline      unit.Dp
}

// NewBox returns a Box of the given size.
func NewBox(width, height unit.Dp) *Box {
	return &Box{width: width, height: height}
}

// Size returns the size of the box.
func (b *Box) Size() (width, height unit.Dp) {
	return b.width, b.height
}

// SetSize changes the size of the box.
func (b *Box) SetSize(width, height unit.Dp) {
	if b.width == width && b.height == height {
		return
	}
	b.width, b.height = width, height
	b.RequestLayout()
}

// SetBaseline sets the distance from the bottom of the box to its
// baseline.
func (b *Box) SetBaseline(baseline unit.Dp) {
	if b.baseline == baseline {
		return
	}
	b.baseline = baseline
	b.RequestLayout()
}

func (b *Box) Layout(gtx *layout.Context, cs layout.Constraints) layout.Dimensions {
	sz := cs.Constrain(f64.Pt(gtx.Metric.Dp(b.width), gtx.Metric.Dp(b.height)))
	return layout.Dimensions{
		Size:     sz,
		Baseline: gtx.Metric.Dp(b.baseline),
	}
}
