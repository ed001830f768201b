// SPDX-License-Identifier: Unlicense OR MIT

package layout

import "math"

// Spacing determine the spacing mode for a Flex: how space left
// after layout is distributed along the main axis.
type Spacing uint8

const (
	// SpaceEnd leaves space at the end.
	SpaceEnd Spacing = iota
	// SpaceStart leaves space at the start.
	SpaceStart
	// SpaceSides shares space between the start and end.
	SpaceSides
	// SpaceAround distributes space evenly between children,
	// with half as much space at the start and end.
	SpaceAround
	// SpaceBetween distributes space evenly between children,
	// leaving no space at the start and end.
	SpaceBetween
	// SpaceEvenly distributes space evenly between children and
	// at the start and end.
	SpaceEvenly
)

// Distribute returns the n+1 gaps that spread extra pixels around n
// children according to s: before the first child, between each
// pair, and after the last child. Every gap is a whole number and the
// gaps sum to the rounded extra. Non-finite extra is treated as zero.
func Distribute(s Spacing, extra float64, n int) []float64 {
	d := newSpaceDist(s, extra, n)
	gaps := make([]float64, 0, n+1)
	for i := 0; i <= n; i++ {
		gaps = append(gaps, d.next())
	}
	return gaps
}

// spaceDist emits the gaps of a Distribute run one at a time, carrying
// the rounding error of each gap into the next.
type spaceDist struct {
	spacing   Spacing
	extra     float64
	n         int
	index     int
	equal     float64
	remainder float64
}

func newSpaceDist(s Spacing, extra float64, n int) *spaceDist {
	if math.IsInf(extra, 0) || math.IsNaN(extra) {
		extra = 0
	}
	var equal float64
	if n > 0 {
		switch s {
		case SpaceSides:
			equal = extra / 2
		case SpaceBetween:
			equal = extra / float64(max(n-1, 1))
		case SpaceEvenly:
			equal = extra / float64(n+1)
		case SpaceAround:
			equal = extra / float64(2*n)
		case SpaceEnd, SpaceStart:
		default:
			panic("unreachable")
		}
	}
	return &spaceDist{spacing: s, extra: extra, n: n, equal: equal}
}

// next returns the next gap, or 0 once all n+1 gaps have been
// emitted.
func (d *spaceDist) next() float64 {
	if d.index > d.n {
		return 0
	}
	i := d.index
	d.index++
	if d.n == 0 {
		return d.extra
	}
	first, last := i == 0, i == d.n
	switch d.spacing {
	case SpaceEnd:
		if last {
			return d.extra
		}
		return 0
	case SpaceStart:
		if first {
			return d.extra
		}
		return 0
	case SpaceSides:
		if first || last {
			return d.share()
		}
		return 0
	case SpaceBetween:
		switch {
		case first:
			return 0
		case !last, d.n == 1:
			return d.share()
		default:
			return 0
		}
	case SpaceEvenly:
		return d.share()
	case SpaceAround:
		if first || last {
			return d.share()
		}
		// The half shares of the two adjacent children.
		return d.share() + d.share()
	default:
		panic("unreachable")
	}
}

func (d *spaceDist) share() float64 {
	desired := d.equal + d.remainder
	actual := math.Round(desired)
	d.remainder = desired - actual
	return actual
}

// flexAlloc divides the space left by rigid children between the
// flexible children in proportion to their weights. Allocations are
// whole numbers; the rounding error is carried to the next child.
type flexAlloc struct {
	perWeight float64
	remainder float64
}

func newFlexAlloc(remaining, weights float64) *flexAlloc {
	return &flexAlloc{perWeight: remaining / weights}
}

// next returns the major axis size of a flexible child of weight w.
// If the space is unbounded the allocation is +Inf.
func (a *flexAlloc) next(w float64) float64 {
	desired := w*a.perWeight + a.remainder
	if math.IsInf(desired, 1) {
		return desired
	}
	actual := math.Round(desired)
	a.remainder = desired - actual
	return actual
}

func (s Spacing) String() string {
	switch s {
	case SpaceEnd:
		return "SpaceEnd"
	case SpaceStart:
		return "SpaceStart"
	case SpaceSides:
		return "SpaceSides"
	case SpaceAround:
		return "SpaceAround"
	case SpaceBetween:
		return "SpaceBetween"
	case SpaceEvenly:
		return "SpaceEvenly"
	default:
		panic("unreachable")
	}
}
