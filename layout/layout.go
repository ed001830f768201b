// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"math"

	"flexlay.org/f64"
	"flexlay.org/unit"
)

// Constraints represent a set of acceptable ranges for
// a widget's width and height.
type Constraints struct {
	Width  Constraint
	Height Constraint
}

// Constraint is a range of acceptable sizes in a single
// dimension. Max may be +Inf.
type Constraint struct {
	Min, Max float64
}

// Dimensions are the resolved size and baseline for a widget.
//
// Baseline is the distance from the bottom of a widget to the baseline of
// any text it contains (or 0). The purpose is to be able to align text
// that span multiple widgets.
type Dimensions struct {
	Size     f64.Point
	Baseline float64
}

// Widget is a user interface element that computes its dimensions
// within a set of constraints.
type Widget interface {
	Layout(gtx *Context, cs Constraints) Dimensions
}

// WidgetFunc adapts a function to the Widget interface.
type WidgetFunc func(gtx *Context, cs Constraints) Dimensions

// Axis is the Horizontal or Vertical direction.
type Axis uint8

// Alignment is the mutual alignment of a list of widgets in the
// cross axis.
type Alignment uint8

const (
	Start Alignment = iota
	End
	Middle
	Baseline
	// Fill stretches a widget to the cross axis size of its
	// container.
	Fill
)

const (
	Horizontal Axis = iota
	Vertical
)

// Inf is the unbounded constraint maximum.
var Inf = math.Inf(1)

func (f WidgetFunc) Layout(gtx *Context, cs Constraints) Dimensions {
	return f(gtx, cs)
}

// Constrain a value to the range [Min; Max].
func (c Constraint) Constrain(v float64) float64 {
	if v < c.Min {
		return c.Min
	} else if v > c.Max {
		return c.Max
	}
	return v
}

// Bounded reports whether c has a finite maximum.
func (c Constraint) Bounded() bool {
	return !math.IsInf(c.Max, 1)
}

// Constrain a size to the Width and Height ranges.
func (c Constraints) Constrain(size f64.Point) f64.Point {
	return f64.Point{X: c.Width.Constrain(size.X), Y: c.Height.Constrain(size.Y)}
}

// Min returns the minimum size.
func (c Constraints) Min() f64.Point {
	return f64.Pt(c.Width.Min, c.Height.Min)
}

// Max returns the maximum size.
func (c Constraints) Max() f64.Point {
	return f64.Pt(c.Width.Max, c.Height.Max)
}

// WidthBounded reports whether the maximum width is finite.
func (c Constraints) WidthBounded() bool {
	return c.Width.Bounded()
}

// HeightBounded reports whether the maximum height is finite.
func (c Constraints) HeightBounded() bool {
	return c.Height.Bounded()
}

// Loosen returns the constraints with the minimums dropped to zero.
func (c Constraints) Loosen() Constraints {
	c.Width.Min = 0
	c.Height.Min = 0
	return c
}

// Shrink returns the constraints reduced by dx horizontally and dy
// vertically. The maximums never go below zero and the minimums never
// exceed the maximums.
func (c Constraints) Shrink(dx, dy float64) Constraints {
	c.Width = c.Width.shrink(dx)
	c.Height = c.Height.shrink(dy)
	return c
}

func (c Constraint) shrink(d float64) Constraint {
	c.Min = math.Max(c.Min-d, 0)
	c.Max = math.Max(c.Max-d, 0)
	if c.Min > c.Max {
		c.Min = c.Max
	}
	return c
}

// WithMajorRange returns c with the range along axis a replaced by
// [min; max]. The cross axis range is unchanged.
func (c Constraints) WithMajorRange(a Axis, min, max float64) Constraints {
	return a.Constraints(c, min, max)
}

// Exact returns the constraints that can only be
// satisfied by the given dimensions.
func Exact(size f64.Point) Constraints {
	return Constraints{
		Width:  Constraint{Min: size.X, Max: size.X},
		Height: Constraint{Min: size.Y, Max: size.Y},
	}
}

// Loose returns constraints with no minimum and max as the maximum.
func Loose(max f64.Point) Constraints {
	return Constraints{
		Width:  Constraint{Max: max.X},
		Height: Constraint{Max: max.Y},
	}
}

// Inset adds space around a widget. It models both padding and the
// space taken by a border.
type Inset struct {
	Top, Right, Bottom, Left unit.Dp
}

// UniformInset returns an Inset with a single inset applied to all
// edges.
func UniformInset(v unit.Dp) Inset {
	return Inset{Top: v, Right: v, Bottom: v, Left: v}
}

// Border is the stroke around a container. Only its width affects
// layout.
type Border struct {
	Width unit.Dp
}

// Inset returns the space taken by the border on each edge.
func (b Border) Inset() Inset {
	return UniformInset(b.Width)
}

type pxInset struct {
	top, right, bottom, left float64
}

func (in Inset) px(m unit.Metric) pxInset {
	return pxInset{
		top:    m.Dp(in.Top),
		right:  m.Dp(in.Right),
		bottom: m.Dp(in.Bottom),
		left:   m.Dp(in.Left),
	}
}

// layoutDown shrinks the constraints offered to the inset content.
func (in pxInset) layoutDown(cs Constraints) Constraints {
	return cs.Shrink(in.left+in.right, in.top+in.bottom)
}

// placeDown translates a position in content space to the space of the
// inset box.
func (in pxInset) placeDown(p f64.Point) f64.Point {
	return p.Add(f64.Pt(in.left, in.top))
}

// layoutUp grows a content size and baseline to the inset box.
func (in pxInset) layoutUp(size f64.Point, baseline float64) (f64.Point, float64) {
	size = size.Add(f64.Pt(in.left+in.right, in.top+in.bottom))
	return size, baseline + in.bottom
}

func (a Alignment) String() string {
	switch a {
	case Start:
		return "Start"
	case End:
		return "End"
	case Middle:
		return "Middle"
	case Baseline:
		return "Baseline"
	case Fill:
		return "Fill"
	default:
		panic("unreachable")
	}
}

func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "Horizontal"
	case Vertical:
		return "Vertical"
	default:
		panic("unreachable")
	}
}
