// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"flexlay.org/f64"
	"flexlay.org/layout"
	"flexlay.org/unit"
)

// Label is a widget for laying out text. Lines are separated by
// newlines and are never wrapped.
type Label struct {
	layout.Handle

	text        string
	face        font.Face
	lineSpacing unit.Sp
}

// NewLabel returns a Label showing txt in face. A nil face means the
// 7x13 bitmap face.
func NewLabel(txt string, face font.Face) *Label {
	if face == nil {
		face = basicfont.Face7x13
	}
	return &Label{text: txt, face: face}
}

// Text returns the text of the label.
func (l *Label) Text() string {
	return l.text
}

// SetText replaces the text of the label.
func (l *Label) SetText(txt string) {
	if l.text == txt {
		return
	}
	l.text = txt
	l.RequestLayout()
}

// LineSpacing returns the extra space between lines.
func (l *Label) LineSpacing() unit.Sp {
	return l.lineSpacing
}

// SetLineSpacing sets the extra space between lines.
func (l *Label) SetLineSpacing(s unit.Sp) {
	if l.lineSpacing == s {
		return
	}
	l.lineSpacing = s
	l.RequestLayout()
}

// Layout measures the text. The baseline is the descent of the last
// line.
func (l *Label) Layout(gtx *layout.Context, cs layout.Constraints) layout.Dimensions {
	lines := measureLines(l.face, l.text)
	spacing := fixed.I(int(gtx.Metric.Sp(l.lineSpacing)))
	dims := linesDimensions(lines, spacing)
	dims.Size = cs.Constrain(dims.Size)
	return dims
}

type line struct {
	// Width is the advance of the line.
	Width fixed.Int26_6
	// Ascent is the height above the baseline.
	Ascent fixed.Int26_6
	// Descent is the height below the baseline.
	Descent fixed.Int26_6
}

func measureLines(face font.Face, txt string) []line {
	m := face.Metrics()
	var lines []line
	for _, s := range strings.Split(txt, "\n") {
		lines = append(lines, line{
			Width:   font.MeasureString(face, s),
			Ascent:  m.Ascent,
			Descent: m.Descent,
		})
	}
	return lines
}

// linesDimensions stacks lines with spacing between them.
func linesDimensions(lines []line, spacing fixed.Int26_6) layout.Dimensions {
	var width fixed.Int26_6
	var h int
	var baseline int
	if len(lines) > 0 {
		var prevDesc fixed.Int26_6
		for i, l := range lines {
			if i > 0 {
				prevDesc += spacing
			}
			h += (prevDesc + l.Ascent).Ceil()
			prevDesc = l.Descent
			if l.Width > width {
				width = l.Width
			}
		}
		baseline = prevDesc.Ceil()
		h += baseline
	}
	return layout.Dimensions{
		Size:     f64.Pt(float64(width.Ceil()), float64(h)),
		Baseline: float64(baseline),
	}
}
