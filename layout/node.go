// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"sync/atomic"

	"flexlay.org/f64"
)

// Node is the retained handle of a Widget in a layout tree. It caches
// the result of the most recent layout and tracks whether the widget or
// one of its descendants requested a new one.
//
// A Node belongs to at most one container.
type Node struct {
	id     uint64
	widget Widget
	parent *Node
	owned  bool

	needsLayout bool
	laidOut     bool
	cs          Constraints
	dims        Dimensions
	origin      f64.Point
}

// Handle gives a widget access to the Node it is attached to. Embed a
// Handle in widgets that must request layout after they are mutated.
type Handle struct {
	node *Node
}

type binder interface {
	bind(n *Node)
}

var nodeIDs atomic.Uint64

// NewNode wraps w in a Node. The node needs layout until it is first
// measured.
func NewNode(w Widget) *Node {
	n := &Node{
		id:          nodeIDs.Add(1),
		widget:      w,
		needsLayout: true,
	}
	if b, ok := w.(binder); ok {
		b.bind(n)
	}
	return n
}

// ID returns the process-unique identifier of n.
func (n *Node) ID() uint64 {
	return n.id
}

// Widget returns the widget wrapped by n.
func (n *Node) Widget() Widget {
	return n.widget
}

// Parent returns the node of the container that owns n, or nil.
func (n *Node) Parent() *Node {
	return n.parent
}

// RequestLayout marks n and every ancestor as needing layout.
func (n *Node) RequestLayout() {
	for ; n != nil; n = n.parent {
		n.needsLayout = true
	}
}

// NeedsLayout reports whether n or one of its descendants requested
// layout since n was last measured.
func (n *Node) NeedsLayout() bool {
	return n.needsLayout
}

// Dimensions returns the result of the most recent layout of n.
func (n *Node) Dimensions() Dimensions {
	return n.dims
}

// Constraints returns the constraints n was last measured with.
func (n *Node) Constraints() Constraints {
	return n.cs
}

// Origin returns the position of n relative to its container.
func (n *Node) Origin() f64.Point {
	return n.origin
}

// Bounds returns the rectangle covered by n relative to its container.
func (n *Node) Bounds() f64.Rectangle {
	return f64.Rectangle{Min: n.origin, Max: n.origin.Add(n.dims.Size)}
}

// attach records p as the owner of n. Attaching a node that already
// belongs to a container is a programming error.
func (n *Node) attach(p *Node) {
	if n.owned {
		panic("layout: node is already attached to a container")
	}
	n.owned = true
	n.parent = p
	n.needsLayout = true
	p.RequestLayout()
}

func (n *Node) detach() {
	n.owned = false
	n.parent = nil
}

func (h *Handle) bind(n *Node) {
	h.node = n
}

// Node returns the node the widget is attached to, or nil.
func (h *Handle) Node() *Node {
	return h.node
}

// RequestLayout requests layout of the widget's node, if any.
func (h *Handle) RequestLayout() {
	if h.node != nil {
		h.node.RequestLayout()
	}
}
