// SPDX-License-Identifier: Unlicense OR MIT

package scenario

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"flexlay.org/f64"
	"flexlay.org/layout"
)

const form = `
layout = "hflex(baseline, r(_), f(1, _, fill), r(_))"

[constraints]
max_width = 200
min_height = 10

[theme]
horizontal_gap = 4

[[widgets]]
type = "label"
text = "Name"

[[widgets]]
type = "expander"

[[widgets]]
type = "box"
width = 20
height = 30
baseline = 10
`

func TestDecode(t *testing.T) {
	s, err := Decode(strings.NewReader(form))
	if err != nil {
		t.Fatal(err)
	}
	if s.Constraints.Width.Max != 200 || s.Constraints.Height.Min != 10 {
		t.Errorf("constraints %+v", s.Constraints)
	}
	if !math.IsInf(s.Constraints.Height.Max, 1) {
		t.Errorf("omitted max height %v, want unbounded", s.Constraints.Height.Max)
	}
	if s.Theme.HorizontalGap != 4 || s.Theme.VerticalGap != 10 {
		t.Errorf("theme gaps %v %v, want 4 10", s.Theme.HorizontalGap, s.Theme.VerticalGap)
	}
}

func TestBuildAndLayout(t *testing.T) {
	s, err := Decode(strings.NewReader(form))
	if err != nil {
		t.Fatal(err)
	}
	root, err := s.Build()
	if err != nil {
		t.Fatal(err)
	}
	gtx := s.Context()
	dims := gtx.Layout(root, s.Constraints)
	if want := (layout.Dimensions{Size: f64.Pt(200, 30), Baseline: 10}); dims != want {
		t.Errorf("dimensions %v, want %v", dims, want)
	}
	fl := root.Widget().(*layout.Flex)
	var got []f64.Rectangle
	for _, n := range fl.Nodes() {
		got = append(got, n.Bounds())
	}
	want := []f64.Rectangle{
		f64.Rect(0, 9, 28, 22),
		f64.Rect(32, 0, 176, 30),
		f64.Rect(180, 0, 200, 30),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("bounds mismatch (-want +got):\n%s", diff)
	}

	// Builds are independent.
	root2, err := s.Build()
	if err != nil {
		t.Fatal(err)
	}
	if root2 == root || root2.Widget() == root.Widget() {
		t.Error("Build reused the layout tree")
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name, src, msg string
	}{
		{"no layout", `[constraints]`, "missing layout"},
		{"unknown key", "layout = \"hflex()\"\ncolour = 1", "unknown key"},
		{"unknown widget", "layout = \"hflex(r(_))\"\n[[widgets]]\ntype = \"slider\"", "box, expander, label"},
		{"bad range", "layout = \"hflex()\"\n[constraints]\nmin_width = 5\nmax_width = 1", "invalid constraint"},
		{"syntax", "layout = ", "scenario:"},
		{"nan max", "layout = \"hflex()\"\n[constraints]\nmax_width = nan", "invalid constraint"},
		{"negative inf max", "layout = \"hflex()\"\n[constraints]\nmax_height = -inf", "invalid constraint"},
		{"inf min", "layout = \"hflex()\"\n[constraints]\nmin_width = inf", "invalid constraint"},
		{"negative gap", "layout = \"hflex()\"\n[theme]\nhorizontal_gap = -20", "invalid horizontal_gap"},
		{"nan gap", "layout = \"hflex()\"\n[theme]\nvertical_gap = nan", "invalid vertical_gap"},
		{"inf gap", "layout = \"hflex()\"\n[theme]\nvertical_gap = inf", "invalid vertical_gap"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.src))
			if err == nil || !strings.Contains(err.Error(), tt.msg) {
				t.Errorf("error %v, want mention of %q", err, tt.msg)
			}
		})
	}
}

func TestDecodeInfiniteMax(t *testing.T) {
	s, err := Decode(strings.NewReader("layout = \"hflex()\"\n[constraints]\nmax_width = inf\n"))
	if err != nil {
		t.Fatal(err)
	}
	if !math.IsInf(s.Constraints.Width.Max, 1) {
		t.Errorf("max width %v, want unbounded", s.Constraints.Width.Max)
	}
}

func TestLabelLineSpacing(t *testing.T) {
	const src = `
layout = "vflex(r(_))"

[metric]
px_per_sp = 2

[[widgets]]
type = "label"
text = "a\nb"
line_spacing = 3
`
	s, err := Decode(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	root, err := s.Build()
	if err != nil {
		t.Fatal(err)
	}
	// Two 13px lines with 6px between them.
	if got := s.Context().Layout(root, s.Constraints).Size.Y; got != 32 {
		t.Errorf("height %v, want 32", got)
	}
}

func TestBuildErrors(t *testing.T) {
	s, err := Decode(strings.NewReader("layout = \"hflex(r(_))\"\n"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.Build(); err == nil || !strings.Contains(err.Error(), "out of bounds") {
		t.Errorf("Build with a missing widget: %v", err)
	}
	s, err = Decode(strings.NewReader("layout = \"hflex(r(_))\"\n[[widgets]]\ntype = \"box\"\nwidth = -1\n"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.Build(); err == nil || !strings.Contains(err.Error(), "negative") {
		t.Errorf("Build with a negative box: %v", err)
	}
	for _, src := range []string{
		"layout = \"hflex(r(_))\"\n[[widgets]]\ntype = \"box\"\nheight = nan\n",
		"layout = \"hflex(r(_))\"\n[[widgets]]\ntype = \"label\"\nline_spacing = -1\n",
	} {
		s, err := Decode(strings.NewReader(src))
		if err != nil {
			t.Fatal(err)
		}
		if _, err := s.Build(); err == nil || !strings.Contains(err.Error(), "non-negative finite") {
			t.Errorf("Build of %q: %v", src, err)
		}
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "form.toml")
	if err := os.WriteFile(path, []byte(form), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if s.Name != "form" {
		t.Errorf("name %q, want form", s.Name)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("Load of a missing file succeeded")
	}
}

func TestWidgetTypes(t *testing.T) {
	if diff := cmp.Diff([]string{"box", "expander", "label"}, WidgetTypes()); diff != "" {
		t.Errorf("widget types (-want +got):\n%s", diff)
	}
}
