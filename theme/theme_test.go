// SPDX-License-Identifier: Unlicense OR MIT

package theme

import (
	"image/color"
	"testing"

	"flexlay.org/f64"
	"flexlay.org/layout"
	"flexlay.org/unit"
)

type square float64

func (s square) Layout(gtx *layout.Context, cs layout.Constraints) layout.Dimensions {
	return layout.Dimensions{Size: f64.Pt(float64(s), float64(s))}
}

func TestDefaultGap(t *testing.T) {
	th := New()
	if g := th.DefaultGap(layout.Horizontal); g != 8 {
		t.Errorf("horizontal gap %v, want 8", g)
	}
	if g := th.DefaultGap(layout.Vertical); g != 10 {
		t.Errorf("vertical gap %v, want 10", g)
	}
}

func TestThemeGapInFlex(t *testing.T) {
	gtx := &layout.Context{Theme: New(), Metric: unit.Metric{PxPerDp: 2}}
	fl := layout.Column(layout.Rigid(square(10)), layout.Rigid(square(10)))
	dims := gtx.Layout(layout.NewNode(fl), layout.Loose(f64.Pt(100, 100)))
	if dims.Size.Y != 40 {
		t.Errorf("height %v, want 40", dims.Size.Y)
	}
}

func TestColors(t *testing.T) {
	th := New()
	if got, want := th.Color.Outline, (color.RGBA{R: 0x3f, G: 0x51, B: 0xb5, A: 0xff}); got != want {
		t.Errorf("outline %v, want %v", got, want)
	}
	if th.Color.Baseline.A != 0xff || th.Color.Background != (color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}) {
		t.Errorf("baseline %v, background %v", th.Color.Baseline, th.Color.Background)
	}
}
