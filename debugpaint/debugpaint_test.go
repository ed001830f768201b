// SPDX-License-Identifier: Unlicense OR MIT

package debugpaint

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"flexlay.org/f64"
	"flexlay.org/layout"
	"flexlay.org/theme"
	"flexlay.org/widget"
)

func laidOutRow(t *testing.T) (*layout.Flex, *layout.Node) {
	t.Helper()
	a, b := widget.NewBox(20, 20), widget.NewBox(20, 20)
	a.SetBaseline(5)
	b.SetBaseline(5)
	fl := layout.Row(layout.Rigid(a), layout.Rigid(b))
	fl.SetGap(0)
	fl.SetAlignment(layout.Baseline)
	root := layout.NewNode(fl)
	gtx := new(layout.Context)
	gtx.Layout(root, layout.Loose(f64.Pt(100, 100)))
	return fl, root
}

func TestDraw(t *testing.T) {
	fl, root := laidOutRow(t)
	th := theme.New()
	img, err := Draw(root, th, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if got := img.Bounds().Size(); got.X != 40 || got.Y != 20 {
		t.Fatalf("image size %v, want 40x20", got)
	}
	nodes := fl.Nodes()
	if got, want := img.RGBAAt(0, 0), layout.DebugColor(nodes[0]); got != want {
		t.Errorf("first child corner %v, want %v", got, want)
	}
	if got, want := img.RGBAAt(20, 10), layout.DebugColor(nodes[1]); got != want {
		t.Errorf("second child edge %v, want %v", got, want)
	}
	if got := img.RGBAAt(10, 10); got != th.Color.Background {
		t.Errorf("interior %v, want background %v", got, th.Color.Background)
	}
	// No guides without Baselines.
	if got := img.RGBAAt(2, 15); got != th.Color.Background {
		t.Errorf("baseline pixel %v, want background", got)
	}
}

func TestDrawBaselines(t *testing.T) {
	_, root := laidOutRow(t)
	th := theme.New()
	img, err := Draw(root, th, Options{Baselines: true})
	if err != nil {
		t.Fatal(err)
	}
	if got := img.RGBAAt(2, 15); got != th.Color.Baseline {
		t.Errorf("dash pixel %v, want %v", got, th.Color.Baseline)
	}
	if got := img.RGBAAt(6, 15); got != th.Color.Background {
		t.Errorf("pixel between dashes %v, want background", got)
	}
}

func TestDrawScale(t *testing.T) {
	_, root := laidOutRow(t)
	img, err := Draw(root, nil, Options{Scale: 2})
	if err != nil {
		t.Fatal(err)
	}
	if got := img.Bounds().Size(); got.X != 80 || got.Y != 40 {
		t.Errorf("scaled size %v, want 80x40", got)
	}
}

func TestDrawUnbounded(t *testing.T) {
	inf := layout.WidgetFunc(func(gtx *layout.Context, cs layout.Constraints) layout.Dimensions {
		return layout.Dimensions{Size: f64.Pt(layout.Inf, 10)}
	})
	root := layout.NewNode(inf)
	new(layout.Context).Layout(root, layout.Loose(f64.Pt(layout.Inf, layout.Inf)))
	_, err := Draw(root, nil, Options{})
	if err == nil || !strings.Contains(err.Error(), "not finite") {
		t.Errorf("Draw of an infinite tree: error %v", err)
	}
}

func TestEncode(t *testing.T) {
	_, root := laidOutRow(t)
	img, err := Draw(root, nil, Options{})
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	dec, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if dec.Bounds() != img.Bounds() {
		t.Errorf("decoded bounds %v, want %v", dec.Bounds(), img.Bounds())
	}
}
