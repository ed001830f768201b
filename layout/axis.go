// SPDX-License-Identifier: Unlicense OR MIT

package layout

import "flexlay.org/f64"

// Cross returns the perpendicular axis.
func (a Axis) Cross() Axis {
	switch a {
	case Horizontal:
		return Vertical
	case Vertical:
		return Horizontal
	default:
		panic("unreachable")
	}
}

// Major returns the extent of sz along a.
func (a Axis) Major(sz f64.Point) float64 {
	if a == Horizontal {
		return sz.X
	}
	return sz.Y
}

// Minor returns the extent of sz across a.
func (a Axis) Minor(sz f64.Point) float64 {
	return a.Cross().Major(sz)
}

// MajorSpan returns the low and high edges of r along a.
func (a Axis) MajorSpan(r f64.Rectangle) (float64, float64) {
	if a == Horizontal {
		return r.Min.X, r.Max.X
	}
	return r.Min.Y, r.Max.Y
}

// MinorSpan returns the low and high edges of r across a.
func (a Axis) MinorSpan(r f64.Rectangle) (float64, float64) {
	return a.Cross().MajorSpan(r)
}

// MajorPos returns the coordinate of p along a.
func (a Axis) MajorPos(p f64.Point) float64 {
	return a.Major(p)
}

// MinorPos returns the coordinate of p across a.
func (a Axis) MinorPos(p f64.Point) float64 {
	return a.Minor(p)
}

// MajorVec returns the component of the offset v along a.
func (a Axis) MajorVec(v f64.Point) float64 {
	return a.Major(v)
}

// MinorVec returns the component of the offset v across a.
func (a Axis) MinorVec(v f64.Point) float64 {
	return a.Minor(v)
}

// Pack converts a (major, minor) pair to a point.
func (a Axis) Pack(major, minor float64) f64.Point {
	if a == Horizontal {
		return f64.Point{X: major, Y: minor}
	}
	return f64.Point{X: minor, Y: major}
}

// Constraints returns cs with the range along a replaced by
// [minMajor; maxMajor].
func (a Axis) Constraints(cs Constraints, minMajor, maxMajor float64) Constraints {
	major := Constraint{Min: minMajor, Max: maxMajor}
	if a == Horizontal {
		cs.Width = major
	} else {
		cs.Height = major
	}
	return cs
}
