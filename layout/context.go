// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"image/color"

	"golang.org/x/exp/slog"
	"golang.org/x/image/colornames"

	"flexlay.org/f64"
	"flexlay.org/unit"
)

// Context carries the state needed by almost all layouts and widgets.
// A Context must not be shared by concurrent layout passes.
type Context struct {
	// Metric converts dp values to pixels.
	Metric unit.Metric
	// Theme supplies style defaults. A nil Theme has zero default
	// gaps.
	Theme Theme
	// Logger receives layout diagnostics. If nil, slog.Default is
	// used.
	Logger *slog.Logger
	// Debug enables debug painting.
	Debug bool
	// Stats counts layout work since the last Reset.
	Stats Stats

	current *Node
}

// Stats records how much work the layout passes did.
type Stats struct {
	// Measured is the number of widget Layout calls.
	Measured int
	// Skipped is the number of children whose cached layout was
	// reused.
	Skipped int
	// Placed is the number of Place calls.
	Placed int
}

// Theme supplies the style defaults consulted during layout.
type Theme interface {
	// DefaultGap is the gap between flex children along a.
	DefaultGap(a Axis) unit.Dp
}

var debugPalette = []color.RGBA{
	colornames.Crimson,
	colornames.Dodgerblue,
	colornames.Forestgreen,
	colornames.Darkorange,
	colornames.Mediumorchid,
	colornames.Teal,
	colornames.Goldenrod,
	colornames.Slategray,
}

// Layout lays out the root node within cs and places it at the origin.
func (c *Context) Layout(root *Node, cs Constraints) Dimensions {
	c.Measure(root, cs)
	c.Place(root, f64.Point{})
	return root.dims
}

// Reset clears the statistics.
func (c *Context) Reset() {
	c.Stats = Stats{}
}

// Measure lays out n within cs and returns its size. The widget is not
// run if n is clean and was last measured with the same constraints.
// The resulting size is constrained to cs.
func (c *Context) Measure(n *Node, cs Constraints) f64.Point {
	if n.laidOut && !n.needsLayout && n.cs == cs {
		c.Stats.Skipped++
		return n.dims.Size
	}
	saved := c.current
	c.current = n
	dims := n.widget.Layout(c, cs)
	c.current = saved
	dims.Size = cs.Constrain(dims.Size)
	n.dims = dims
	n.cs = cs
	n.laidOut = true
	n.needsLayout = false
	c.Stats.Measured++
	return dims.Size
}

// Skip acknowledges that n keeps its previous layout.
func (c *Context) Skip(n *Node) {
	c.Stats.Skipped++
}

// LastSize returns the size of n from its most recent layout.
func (c *Context) LastSize(n *Node) f64.Point {
	return n.dims.Size
}

// Baseline returns the baseline offset of n from its most recent
// layout.
func (c *Context) Baseline(n *Node) float64 {
	return n.dims.Baseline
}

// Place sets the position of n relative to its container.
func (c *Context) Place(n *Node, p f64.Point) {
	n.origin = p
	c.Stats.Placed++
}

// NeedsLayout reports whether the widget being laid out requested
// layout, or one of its descendants did. Outside a node it is
// always true.
func (c *Context) NeedsLayout() bool {
	if c.current == nil {
		return true
	}
	return c.current.needsLayout
}

// DebugPaint reports whether debug painting is enabled.
func (c *Context) DebugPaint() bool {
	return c.Debug
}

// DebugColor returns the debug color of the widget being laid out.
func (c *Context) DebugColor() color.RGBA {
	if c.current == nil {
		return debugPalette[0]
	}
	return DebugColor(c.current)
}

// DebugColor returns the color used for n in debug paintings. The color
// is stable for the lifetime of n.
func DebugColor(n *Node) color.RGBA {
	return debugPalette[n.id%uint64(len(debugPalette))]
}

func (c *Context) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}

func (c *Context) defaultGap(a Axis) float64 {
	if c.Theme == nil {
		return 0
	}
	return c.Metric.Dp(c.Theme.DefaultGap(a))
}
