// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"fmt"
	"math"

	"golang.org/x/exp/slices"
	"golang.org/x/exp/slog"

	"flexlay.org/f64"
	"flexlay.org/unit"
)

// Flex lays out child elements along an axis,
// according to alignment and weights.
//
// Rigid children are measured first with the loosened constraints of
// the Flex. The space left along the main axis is then divided between
// the flexed children and spacers in proportion to their weights. A Flex
// with any flexible child takes up all the space it is offered along
// the main axis.
//
// The zero value is an empty horizontal Flex with Start alignment. Use
// NewFlex for the default Middle alignment. Changes made through the
// setters request layout of the node the Flex is attached to.
type Flex struct {
	Handle

	axis      Axis
	spacing   Spacing
	alignment Alignment
	mustFill  bool
	gap       unit.Dp
	hasGap    bool
	padding   Inset
	border    Border
	children  []Child

	// oldCs are the content constraints of the previous layout.
	oldCs  Constraints
	hasOld bool
}

// minFlexSum is the initial weight sum. It avoids a division by zero
// when there are no flexible children.
const minFlexSum = 0.0001

// NewFlex returns a Flex along axis with children centered in the
// cross axis.
func NewFlex(axis Axis, children ...Child) *Flex {
	f := &Flex{axis: axis, alignment: Middle}
	for _, c := range children {
		f.Add(c)
	}
	return f
}

// Row returns a horizontal Flex.
func Row(children ...Child) *Flex {
	return NewFlex(Horizontal, children...)
}

// Column returns a vertical Flex.
func Column(children ...Child) *Flex {
	return NewFlex(Vertical, children...)
}

func (f *Flex) bind(n *Node) {
	f.Handle.bind(n)
	for _, c := range f.children {
		if c.node != nil {
			c.node.parent = n
		}
	}
}

// Axis returns the main axis.
func (f *Flex) Axis() Axis { return f.axis }

// Spacing returns the main axis spacing mode.
func (f *Flex) Spacing() Spacing { return f.spacing }

// Alignment returns the default cross axis alignment.
func (f *Flex) Alignment() Alignment { return f.alignment }

// MustFill reports whether extra main axis space is always
// distributed.
func (f *Flex) MustFill() bool { return f.mustFill }

// Gap returns the explicit gap and whether one is set.
func (f *Flex) Gap() (unit.Dp, bool) { return f.gap, f.hasGap }

// Len returns the number of children.
func (f *Flex) Len() int { return len(f.children) }

// Child returns the ith child.
func (f *Flex) Child(i int) Child { return f.children[i] }

// Nodes returns the nodes of the widget children in order.
func (f *Flex) Nodes() []*Node {
	var nodes []*Node
	for _, c := range f.children {
		if c.node != nil {
			nodes = append(nodes, c.node)
		}
	}
	return nodes
}

// SetAxis sets the main axis.
func (f *Flex) SetAxis(a Axis) {
	f.axis = a
	f.RequestLayout()
}

// SetSpacing sets the main axis spacing mode.
func (f *Flex) SetSpacing(s Spacing) {
	f.spacing = s
	f.RequestLayout()
}

// SetAlignment sets the default cross axis alignment.
func (f *Flex) SetAlignment(a Alignment) {
	f.alignment = a
	f.RequestLayout()
}

// SetMustFill controls whether extra main axis space is distributed
// even when the minimum constraint does not require it.
func (f *Flex) SetMustFill(fill bool) {
	f.mustFill = fill
	f.RequestLayout()
}

// SetGap sets the space between children, overriding the theme. It
// panics if gap is negative or not finite.
func (f *Flex) SetGap(gap unit.Dp) {
	if g := float64(gap); !(g >= 0) || math.IsInf(g, 1) {
		panic(fmt.Errorf("layout: invalid gap %v, expected a non-negative finite value", gap))
	}
	f.gap = gap
	f.hasGap = true
	f.RequestLayout()
}

// UseDefaultGap makes the Flex use the gap of the theme.
func (f *Flex) UseDefaultGap() {
	f.gap = 0
	f.hasGap = false
	f.RequestLayout()
}

// SetPadding sets the space between the border and the children.
func (f *Flex) SetPadding(in Inset) {
	f.padding = in
	f.RequestLayout()
}

// SetBorder sets the border around the Flex.
func (f *Flex) SetBorder(b Border) {
	f.border = b
	f.RequestLayout()
}

// Add appends a child.
func (f *Flex) Add(c Child) {
	f.Insert(len(f.children), c)
}

// Insert inserts a child at index i. It panics if i is out of range or
// if the child widget already belongs to a container.
func (f *Flex) Insert(i int, c Child) {
	if i < 0 || i > len(f.children) {
		panic(fmt.Errorf("layout: insert index %d out of range [0;%d]", i, len(f.children)))
	}
	if c.node != nil {
		c.node.attach(f.node)
	}
	f.children = slices.Insert(f.children, i, c)
	f.RequestLayout()
}

// Remove removes and returns the ith child. The child widget is
// detached and may be added to another container.
func (f *Flex) Remove(i int) Child {
	c := f.children[i]
	f.children = slices.Delete(f.children, i, i+1)
	if c.node != nil {
		c.node.detach()
	}
	c.size = 0
	f.RequestLayout()
	return c
}

// Clear removes all children.
func (f *Flex) Clear() {
	if len(f.children) == 0 {
		return
	}
	for _, c := range f.children {
		if c.node != nil {
			c.node.detach()
		}
	}
	f.children = nil
	f.RequestLayout()
}

// SetWeight replaces the weight of the ith child. A widget child
// becomes flexed and a spacer becomes a flexible spacer. Invalid
// weights are handled like in Flexed and FlexSpacer.
func (f *Flex) SetWeight(i int, weight float64) {
	c := f.children[i]
	switch c.kind {
	case rigidChild, flexedChild:
		nc := FlexedNode(weight, c.node)
		nc.align, nc.aligned = c.align, c.aligned
		f.replace(i, nc)
	case spacerChild, defaultSpacerChild, flexSpacerChild:
		f.replace(i, FlexSpacer(weight))
	default:
		panic("unreachable")
	}
}

// SetRigid makes the ith child rigid. It panics if the child is a
// spacer.
func (f *Flex) SetRigid(i int) {
	c := f.children[i]
	switch c.kind {
	case rigidChild, flexedChild:
		c.kind = rigidChild
		c.weight = 0
		f.replace(i, c)
	case spacerChild, defaultSpacerChild, flexSpacerChild:
		panic("layout: SetRigid of a spacer")
	default:
		panic("unreachable")
	}
}

// SetSpacerLength makes the ith child a fixed spacer of the given
// length. It panics if the child is not a spacer.
func (f *Flex) SetSpacerLength(i int, length float64) {
	switch f.children[i].kind {
	case spacerChild, defaultSpacerChild, flexSpacerChild:
		f.replace(i, Spacer(length))
	case rigidChild, flexedChild:
		panic("layout: SetSpacerLength of a widget child")
	default:
		panic("unreachable")
	}
}

// SetChildAlignment overrides the cross axis alignment of the ith
// child.
func (f *Flex) SetChildAlignment(i int, a Alignment) {
	f.replace(i, f.children[i].Align(a))
}

// ClearChildAlignment makes the ith child use the alignment of the
// Flex.
func (f *Flex) ClearChildAlignment(i int) {
	c := f.children[i]
	c.align, c.aligned = 0, false
	f.replace(i, c)
}

func (f *Flex) replace(i int, c Child) {
	f.children[i] = c
	if c.node != nil {
		c.node.RequestLayout()
	}
	f.RequestLayout()
}

func (f *Flex) childAlignment(c *Child) Alignment {
	if c.aligned {
		return c.align
	}
	return f.alignment
}

func (f *Flex) resolveGap(gtx *Context) float64 {
	if f.hasGap {
		return gtx.Metric.Dp(f.gap)
	}
	return gtx.defaultGap(f.axis)
}

// Layout a list of children. The position of the children are
// determined by the specified order, but Rigid children are laid out
// before Flexed children.
func (f *Flex) Layout(gtx *Context, cs Constraints) Dimensions {
	log := gtx.logger()
	axis := f.axis
	border := f.border.Inset().px(gtx.Metric)
	padding := f.padding.px(gtx.Metric)
	cs = padding.layoutDown(border.layoutDown(cs))

	// New content constraints invalidate every child.
	csChanged := !f.hasOld || f.oldCs != cs
	f.oldCs, f.hasOld = cs, true

	loose := cs.Loosen()
	minor := axis.Minor(cs.Min())
	// Only used for baseline alignment, but cheap to track.
	var maxAbove, maxBelow float64
	anyBaseline := false
	anyChanged := csChanged || gtx.NeedsLayout()

	gap := f.resolveGap(gtx)
	// Gaps are only between children.
	nonFlex := float64(max(len(f.children)-1, 0)) * gap
	flexSum := minFlexSum

	skipped := func(c *Child) {
		sz, bl := c.natural.Size, c.natural.Baseline
		minor = math.Max(minor, expand(axis.Minor(sz)))
		maxAbove = math.Max(maxAbove, sz.Y-bl)
		maxBelow = math.Max(maxBelow, bl)
		anyBaseline = anyBaseline || f.childAlignment(c) == Baseline
	}
	// measured records the natural dimensions of a child. Fill
	// stretching changes the node but not c.natural, so skipped
	// children report the size they would have in a full pass.
	measured := func(c *Child, sz f64.Point) {
		c.natural = Dimensions{Size: sz, Baseline: gtx.Baseline(c.node)}
		skipped(c)
	}

	// Rigid children and fixed spacers.
	for i := range f.children {
		c := &f.children[i]
		if c.warning != "" {
			log.Warn(c.warning, "value", c.rejected, "node", f.nodeID())
			c.warning = ""
		}
		switch c.kind {
		case rigidChild:
			if csChanged || c.node.NeedsLayout() {
				old := c.natural.Size
				sz := gtx.Measure(c.node, loose)
				// Infinite sizes are replaced by zero so the Flex
				// stays finite.
				if math.IsInf(sz.X, 0) {
					log.Warn("a rigid flex child has an infinite width", "node", c.node.id)
					sz.X = 0
				}
				if math.IsInf(sz.Y, 0) {
					log.Warn("a rigid flex child has an infinite height", "node", c.node.id)
					sz.Y = 0
				}
				c.node.dims.Size = sz
				if sz != old {
					anyChanged = true
				}
				measured(c, sz)
			} else {
				gtx.Skip(c.node)
				skipped(c)
			}
			nonFlex += expand(axis.Major(c.natural.Size))
		case spacerChild:
			c.size = c.length
			nonFlex += c.size
		case defaultSpacerChild:
			c.size = gtx.defaultGap(axis)
			nonFlex += c.size
		case flexedChild, flexSpacerChild:
			flexSum += c.weight
		default:
			panic("unreachable")
		}
	}

	totalMajor := axis.Major(cs.Max())
	remaining := math.Max(totalMajor-nonFlex, 0)
	alloc := newFlexAlloc(remaining, flexSum)

	// Flexed children and flexible spacers.
	var majorFlex float64
	for i := range f.children {
		c := &f.children[i]
		switch c.kind {
		case flexedChild:
			// Allocate even when skipping, so later siblings get the
			// same share as in a full pass.
			major := alloc.next(c.weight)
			if anyChanged || c.node.NeedsLayout() {
				old := c.natural.Size
				sz := gtx.Measure(c.node, axis.Constraints(loose, 0, major))
				if sz != old {
					anyChanged = true
				}
				measured(c, sz)
			} else {
				gtx.Skip(c.node)
				skipped(c)
			}
			majorFlex += expand(axis.Major(c.natural.Size))
		case flexSpacerChild:
			c.size = alloc.next(c.weight)
			if math.IsInf(c.size, 1) {
				c.size = 0
			}
			majorFlex += c.size
		case rigidChild, spacerChild, defaultSpacerChild:
		default:
			panic("unreachable")
		}
	}

	var extra float64
	if f.mustFill {
		extra = math.Max(remaining-majorFlex, 0)
	} else {
		// Without mustFill, extra space only appears if the minimum
		// constraint demands it.
		extra = math.Max(axis.Major(cs.Min())-(nonFlex+majorFlex), 0)
	}
	spaces := newSpaceDist(f.spacing, extra, len(f.children))

	// minorDim tightly fits the children, ignoring the incoming
	// minimum when aligning to baselines.
	minorDim := minor
	if axis == Horizontal && anyBaseline {
		minorDim = maxBelow + maxAbove
	}
	extraHeight := minor - math.Min(minorDim, minor)

	mainSize := spaces.next()
	var lastBottom float64
	for i := range f.children {
		c := &f.children[i]
		switch c.kind {
		case rigidChild, flexedChild:
			sz := c.natural.Size
			var cross float64
			switch align := f.childAlignment(c); {
			case align == Baseline && axis == Horizontal:
				above := sz.Y - c.natural.Baseline
				cross = extraHeight + (maxAbove - above)
			case align == Fill:
				fill := axis.Pack(axis.Major(sz), minorDim)
				if gtx.LastSize(c.node) != fill {
					sz = gtx.Measure(c.node, Exact(fill))
				} else {
					sz = fill
				}
			default:
				cross = align.align(minorDim - axis.Minor(sz))
			}
			pos := axis.Pack(mainSize, cross)
			lastBottom = pos.Y + sz.Y
			gtx.Place(c.node, padding.placeDown(border.placeDown(pos)))
			mainSize += expand(axis.Major(sz))
			mainSize += spaces.next()
			mainSize += gap
		case spacerChild, defaultSpacerChild, flexSpacerChild:
			mainSize += c.size
			mainSize += gap
		default:
			panic("unreachable")
		}
	}

	flexible := flexSum > minFlexSum
	if flexible && math.IsInf(totalMajor, 1) {
		log.Warn("a flex child is flexible, but the flex is unbounded", "node", f.nodeID())
	}
	if len(f.children) > 0 {
		// The last child added a trailing gap.
		mainSize -= gap
	}
	if flexible && !math.IsInf(totalMajor, 1) {
		mainSize = totalMajor
	}

	sz := axis.Pack(mainSize, minorDim)
	var baseline float64
	switch axis {
	case Horizontal:
		baseline = maxBelow
	case Vertical:
		if n := len(f.children); n > 0 && f.children[n-1].node != nil {
			last := f.children[n-1].node
			baseline = gtx.Baseline(last) + sz.Y - lastBottom
		}
	default:
		panic("unreachable")
	}

	sz, baseline = padding.layoutUp(sz, baseline)
	sz, baseline = border.layoutUp(sz, baseline)
	if gtx.DebugPaint() {
		log.Debug("flex layout",
			slog.Uint64("node", f.nodeID()),
			slog.String("axis", axis.String()),
			slog.Any("size", sz),
			slog.Float64("baseline", baseline),
			slog.Any("color", gtx.DebugColor()),
		)
	}
	return Dimensions{Size: sz, Baseline: baseline}
}

func (f *Flex) nodeID() uint64 {
	if n := f.Node(); n != nil {
		return n.id
	}
	return 0
}

// align returns the cross axis offset of a child given the space not
// used by the child.
func (a Alignment) align(space float64) float64 {
	switch a {
	case Start, Fill:
		return 0
	case Middle, Baseline:
		// Baseline is equivalent to Middle in vertical layouts.
		return math.Round(space / 2)
	case End:
		return space
	default:
		panic("unreachable")
	}
}

// expand rounds v away from zero to a whole number.
func expand(v float64) float64 {
	if v < 0 {
		return math.Floor(v)
	}
	return math.Ceil(v)
}
