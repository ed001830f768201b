// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"flexlay.org/f64"
	"flexlay.org/layout"
	"flexlay.org/unit"
)

func TestBox(t *testing.T) {
	gtx := &layout.Context{Metric: unit.Metric{PxPerDp: 2}}
	b := NewBox(10, 20)
	b.SetBaseline(3)
	dims := gtx.Layout(layout.NewNode(b), layout.Loose(f64.Pt(100, 30)))
	if want := (layout.Dimensions{Size: f64.Pt(20, 30), Baseline: 6}); dims != want {
		t.Errorf("dimensions %v, want %v", dims, want)
	}
}

func TestBoxRequestsLayout(t *testing.T) {
	gtx := new(layout.Context)
	b := NewBox(10, 10)
	fl := layout.Row(layout.Rigid(b), layout.Flexed(1, Expander{}))
	fl.SetGap(0)
	root := layout.NewNode(fl)
	cs := layout.Loose(f64.Pt(100, 50))
	gtx.Layout(root, cs)

	b.SetSize(10, 10)
	if root.NeedsLayout() {
		t.Error("unchanged size requested layout")
	}
	b.SetSize(40, 10)
	if !b.Node().NeedsLayout() || !root.NeedsLayout() {
		t.Fatal("SetSize did not request layout")
	}
	gtx.Layout(root, cs)
	got := []f64.Rectangle{fl.Nodes()[0].Bounds(), fl.Nodes()[1].Bounds()}
	want := []f64.Rectangle{f64.Rect(0, 20, 40, 30), f64.Rect(40, 0, 100, 50)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("bounds mismatch (-want +got):\n%s", diff)
	}
}

func TestLabel(t *testing.T) {
	tests := []struct {
		text string
		want layout.Dimensions
	}{
		{"", layout.Dimensions{Size: f64.Pt(0, 13), Baseline: 2}},
		{"hello", layout.Dimensions{Size: f64.Pt(35, 13), Baseline: 2}},
		{"hello\nhi", layout.Dimensions{Size: f64.Pt(35, 26), Baseline: 2}},
	}
	gtx := new(layout.Context)
	for _, tt := range tests {
		l := NewLabel(tt.text, nil)
		dims := gtx.Layout(layout.NewNode(l), layout.Loose(f64.Pt(1000, 1000)))
		if dims != tt.want {
			t.Errorf("%q: dimensions %v, want %v", tt.text, dims, tt.want)
		}
	}
}

func TestLabelLineSpacing(t *testing.T) {
	gtx := &layout.Context{Metric: unit.Metric{PxPerSp: 3}}
	l := NewLabel("hello\nhi", nil)
	l.SetLineSpacing(2)
	n := layout.NewNode(l)
	cs := layout.Loose(f64.Pt(1000, 1000))
	if want := (layout.Dimensions{Size: f64.Pt(35, 32), Baseline: 2}); gtx.Layout(n, cs) != want {
		t.Errorf("dimensions %v, want %v", n.Dimensions(), want)
	}

	l.SetLineSpacing(0)
	if !n.NeedsLayout() {
		t.Fatal("SetLineSpacing did not request layout")
	}
	if got := gtx.Layout(n, cs).Size.Y; got != 26 {
		t.Errorf("height without spacing %v, want 26", got)
	}

	one := NewLabel("hello", nil)
	one.SetLineSpacing(10)
	if got := gtx.Layout(layout.NewNode(one), cs).Size.Y; got != 13 {
		t.Errorf("single line height %v, want 13", got)
	}
}

func TestLabelConstrained(t *testing.T) {
	gtx := new(layout.Context)
	dims := gtx.Layout(layout.NewNode(NewLabel("hello", nil)), layout.Loose(f64.Pt(20, 1000)))
	if dims.Size.X != 20 {
		t.Errorf("width %v, want 20", dims.Size.X)
	}
}

func TestLabelBaselineRow(t *testing.T) {
	gtx := new(layout.Context)
	l := NewLabel("hello", nil)
	b := NewBox(20, 30)
	b.SetBaseline(10)
	fl := layout.Row(layout.Rigid(l), layout.Rigid(b))
	fl.SetGap(0)
	fl.SetAlignment(layout.Baseline)
	dims := gtx.Layout(layout.NewNode(fl), layout.Loose(f64.Pt(100, 100)))
	if got, want := fl.Nodes()[0].Bounds(), f64.Rect(0, 9, 35, 22); got != want {
		t.Errorf("label bounds %v, want %v", got, want)
	}
	if want := (layout.Dimensions{Size: f64.Pt(55, 30), Baseline: 10}); dims != want {
		t.Errorf("dimensions %v, want %v", dims, want)
	}

	l.SetText("hello, world")
	gtx.Layout(fl.Node(), layout.Loose(f64.Pt(100, 100)))
	if got := fl.Nodes()[1].Origin().X; got != 84 {
		t.Errorf("box after longer text at %v, want 84", got)
	}
}

func TestExpander(t *testing.T) {
	gtx := new(layout.Context)
	cs := layout.Constraints{
		Width:  layout.Constraint{Min: 5, Max: 40},
		Height: layout.Constraint{Min: 7, Max: layout.Inf},
	}
	dims := gtx.Layout(layout.NewNode(Expander{}), cs)
	if dims.Size != f64.Pt(40, 7) {
		t.Errorf("size %v, want (40,7)", dims.Size)
	}
}
