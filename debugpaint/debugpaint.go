// SPDX-License-Identifier: Unlicense OR MIT

/*
Package debugpaint rasterizes a laid out widget tree for debugging.

The root is outlined in the theme color and every other node in its
debug color. Containers that report their children through a Nodes
method are traversed, and their baselines are drawn as dashed lines
when enabled.
*/
package debugpaint

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"flexlay.org/f64"
	"flexlay.org/layout"
	"flexlay.org/theme"
)

// Options configures Draw.
type Options struct {
	// Scale multiplies the output size. Zero means 1.
	Scale float64
	// Baselines enables the container baseline guides.
	Baselines bool
}

// maxSide limits the unscaled canvas size.
const maxSide = 1 << 14

// dash is the length of the dashes and gaps of baseline guides.
const dash = 4

// container is implemented by layouts with child nodes, such as
// *layout.Flex.
type container interface {
	Nodes() []*layout.Node
}

type painter struct {
	img *image.RGBA
	vr  *vector.Rasterizer
	th  *theme.Theme
	opt Options
}

// Draw paints the tree rooted at root, which must have been laid out.
// A nil theme means theme.New.
func Draw(root *layout.Node, th *theme.Theme, opt Options) (*image.RGBA, error) {
	if th == nil {
		th = theme.New()
	}
	sz := root.Dimensions().Size
	if !sz.Finite() {
		return nil, fmt.Errorf("debugpaint: root size %v is not finite", sz)
	}
	w, h := int(math.Ceil(sz.X)), int(math.Ceil(sz.Y))
	if w > maxSide || h > maxSide {
		return nil, fmt.Errorf("debugpaint: root size %v is too large", sz)
	}
	w, h = max(w, 1), max(h, 1)
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(th.Color.Background), image.Point{}, draw.Src)
	p := &painter{
		img: img,
		vr:  vector.NewRasterizer(w, h),
		th:  th,
		opt: opt,
	}
	p.node(root, root.Origin().Mul(-1), th.Color.Outline)

	if s := opt.Scale; s > 0 && s != 1 {
		sw, sh := int(math.Ceil(float64(w)*s)), int(math.Ceil(float64(h)*s))
		if sw > maxSide || sh > maxSide {
			return nil, fmt.Errorf("debugpaint: scaled size %dx%d is too large", sw, sh)
		}
		scaled := image.NewRGBA(image.Rect(0, 0, max(sw, 1), max(sh, 1)))
		draw.NearestNeighbor.Scale(scaled, scaled.Bounds(), img, img.Bounds(), draw.Src, nil)
		img = scaled
	}
	return img, nil
}

// Encode writes img to w in PNG format.
func Encode(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("debugpaint: %w", err)
	}
	return nil
}

// node paints n and its descendants. off is the position of the
// container of n.
func (p *painter) node(n *layout.Node, off f64.Point, col color.RGBA) {
	r := n.Bounds().Add(off)
	p.outline(r, col)
	c, ok := n.Widget().(container)
	if !ok {
		return
	}
	if p.opt.Baselines {
		y := r.Max.Y - n.Dimensions().Baseline
		p.dashes(r.Min.X, r.Max.X, y, p.th.Color.Baseline)
	}
	for _, child := range c.Nodes() {
		p.node(child, r.Min, layout.DebugColor(child))
	}
}

// outline strokes the inside edge of r with a one pixel line.
func (p *painter) outline(r f64.Rectangle, col color.RGBA) {
	if !r.Size().Finite() || r.Empty() {
		return
	}
	p.begin()
	p.rect(r, false)
	if r.Dx() > 2 && r.Dy() > 2 {
		// The inner rectangle winds the other way and cancels
		// the outer.
		inner := f64.Rectangle{Min: r.Min.Add(f64.Pt(1, 1)), Max: r.Max.Sub(f64.Pt(1, 1))}
		p.rect(inner, true)
	}
	p.fill(col)
}

func (p *painter) dashes(x0, x1, y float64, col color.RGBA) {
	if math.IsNaN(y) || math.IsInf(y, 0) {
		return
	}
	p.begin()
	for x := x0; x < x1; x += 2 * dash {
		p.rect(f64.Rect(x, y, math.Min(x+dash, x1), y+1), false)
	}
	p.fill(col)
}

func (p *painter) begin() {
	b := p.img.Bounds()
	p.vr.Reset(b.Dx(), b.Dy())
	p.vr.DrawOp = draw.Over
}

func (p *painter) rect(r f64.Rectangle, reverse bool) {
	x0, y0 := float32(r.Min.X), float32(r.Min.Y)
	x1, y1 := float32(r.Max.X), float32(r.Max.Y)
	p.vr.MoveTo(x0, y0)
	if reverse {
		p.vr.LineTo(x0, y1)
		p.vr.LineTo(x1, y1)
		p.vr.LineTo(x1, y0)
	} else {
		p.vr.LineTo(x1, y0)
		p.vr.LineTo(x1, y1)
		p.vr.LineTo(x0, y1)
	}
	p.vr.ClosePath()
}

func (p *painter) fill(col color.RGBA) {
	p.vr.Draw(p.img, p.img.Bounds(), image.NewUniform(col), image.Point{})
}
