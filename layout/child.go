// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"math"
)

// Child is the descriptor for a Flex child. It is one of five kinds:
// a rigid widget, a flexed widget, a fixed spacer, a default spacer or
// a flexible spacer.
//
// Invalid weights and lengths are reported to the logger of the
// Context by the first layout of the Flex holding the child.
type Child struct {
	kind   childKind
	node   *Node
	weight float64
	length float64

	align   Alignment
	aligned bool

	// warning describes a rejected weight or length, if any.
	warning  string
	rejected float64

	// Scratch space.
	size float64
	// natural is the result of the most recent measurement of node
	// before any Fill stretching.
	natural Dimensions
}

type childKind uint8

const (
	rigidChild childKind = iota
	flexedChild
	spacerChild
	flexSpacerChild
	defaultSpacerChild
)

// Rigid returns a Flex child that is laid out with the loosened
// constraints of the Flex, before any flexed child.
func Rigid(w Widget) Child {
	return RigidNode(NewNode(w))
}

// RigidNode is like Rigid for an existing node.
func RigidNode(n *Node) Child {
	return Child{kind: rigidChild, node: n}
}

// Flexed returns a Flex child forced to take up weight parts of the
// space left after the rigid children. A weight that is not a positive
// finite number makes the child rigid.
func Flexed(weight float64, w Widget) Child {
	return FlexedNode(weight, NewNode(w))
}

// FlexedNode is like Flexed for an existing node.
func FlexedNode(weight float64, n *Node) Child {
	if !validWeight(weight) {
		return Child{
			kind:     rigidChild,
			node:     n,
			warning:  "flex weight must be a positive finite number; using a rigid child",
			rejected: weight,
		}
	}
	return Child{kind: flexedChild, node: n, weight: weight}
}

// Spacer returns a Flex child that takes up length pixels along the
// main axis. Negative or infinite lengths are treated as zero.
func Spacer(length float64) Child {
	if !(length >= 0) || math.IsInf(length, 1) {
		return Child{
			kind:     spacerChild,
			warning:  "spacer length must be a non-negative finite number",
			rejected: length,
		}
	}
	return Child{kind: spacerChild, length: length}
}

// DefaultSpacer returns a Flex child that takes up the default gap of
// the theme along the main axis. The length is resolved during layout.
func DefaultSpacer() Child {
	return Child{kind: defaultSpacerChild}
}

// FlexSpacer returns an empty Flex child that takes weight parts of the
// space left after the rigid children. A weight that is not a positive
// finite number results in an empty spacer.
func FlexSpacer(weight float64) Child {
	if !validWeight(weight) {
		return Child{
			kind:     spacerChild,
			warning:  "flex spacer weight must be a positive finite number; using an empty spacer",
			rejected: weight,
		}
	}
	return Child{kind: flexSpacerChild, weight: weight}
}

// Align returns c with its cross axis alignment overriding the
// alignment of the Flex. Spacers ignore alignment.
func (c Child) Align(a Alignment) Child {
	c.align = a
	c.aligned = true
	return c
}

// Node returns the node of the child widget, or nil for spacers.
func (c Child) Node() *Node {
	return c.node
}

// Weight returns the flex weight of c, or 0 for rigid children and
// fixed spacers.
func (c Child) Weight() float64 {
	switch c.kind {
	case flexedChild, flexSpacerChild:
		return c.weight
	case rigidChild, spacerChild, defaultSpacerChild:
		return 0
	default:
		panic("unreachable")
	}
}

// Length returns the length of a fixed spacer, or 0. The length of a
// default spacer is only known during layout.
func (c Child) Length() float64 {
	return c.length
}

// Flexible reports whether c shares the space left by rigid children.
func (c Child) Flexible() bool {
	switch c.kind {
	case flexedChild, flexSpacerChild:
		return true
	case rigidChild, spacerChild, defaultSpacerChild:
		return false
	default:
		panic("unreachable")
	}
}

// IsSpacer reports whether c has no widget.
func (c Child) IsSpacer() bool {
	switch c.kind {
	case spacerChild, defaultSpacerChild, flexSpacerChild:
		return true
	case rigidChild, flexedChild:
		return false
	default:
		panic("unreachable")
	}
}

// Alignment returns the alignment override of c, if any.
func (c Child) Alignment() (Alignment, bool) {
	return c.align, c.aligned
}

// validWeight reports whether w is a usable flex weight: positive,
// finite and not subnormal.
func validWeight(w float64) bool {
	const smallestNormal = 0x1p-1022
	return w >= smallestNormal && !math.IsInf(w, 1)
}
