// SPDX-License-Identifier: Unlicense OR MIT

// Package scenario loads layout scenarios from TOML files.
//
// A scenario names a layout in the layout.Parse syntax, the widgets
// its underscores refer to, and the constraints to solve it with:
//
//	layout = "hflex(baseline, r(_), f(1, _))"
//
//	[constraints]
//	max_width = 320   # omitted maxima are unbounded
//
//	[metric]
//	px_per_dp = 2
//	px_per_sp = 3   # scales label line spacing
//
//	[[widgets]]
//	type = "label"
//	text = "Name\nAddress"
//	line_spacing = 2
//
//	[[widgets]]
//	type = "expander"
package scenario

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"flexlay.org/layout"
	"flexlay.org/theme"
	"flexlay.org/unit"
	"flexlay.org/widget"
)

// Scenario is a decoded scenario file.
type Scenario struct {
	Name        string
	Layout      string
	Constraints layout.Constraints
	Metric      unit.Metric
	Theme       *theme.Theme
	Debug       bool

	widgets []widgetConfig
}

type file struct {
	Layout      string          `toml:"layout"`
	Debug       bool            `toml:"debug"`
	Constraints constraintsFile `toml:"constraints"`
	Metric      metricFile      `toml:"metric"`
	Theme       themeFile       `toml:"theme"`
	Widgets     []widgetConfig  `toml:"widgets"`
}

type constraintsFile struct {
	MinWidth  float64 `toml:"min_width"`
	MaxWidth  float64 `toml:"max_width"`
	MinHeight float64 `toml:"min_height"`
	MaxHeight float64 `toml:"max_height"`
}

type metricFile struct {
	PxPerDp float64 `toml:"px_per_dp"`
	PxPerSp float64 `toml:"px_per_sp"`
}

type themeFile struct {
	HorizontalGap float64 `toml:"horizontal_gap"`
	VerticalGap   float64 `toml:"vertical_gap"`
}

// widgetConfig configures a widget. LineSpacing is the extra space
// between label lines, in sp.
type widgetConfig struct {
	Type        string  `toml:"type"`
	Width       float64 `toml:"width"`
	Height      float64 `toml:"height"`
	Baseline    float64 `toml:"baseline"`
	Text        string  `toml:"text"`
	LineSpacing float64 `toml:"line_spacing"`
}

// validLength reports whether v is a non-negative finite number.
func validLength(v float64) bool {
	return v >= 0 && !math.IsInf(v, 1)
}

type builder func(c widgetConfig) (layout.Widget, error)

var builders = map[string]builder{
	"box": func(c widgetConfig) (layout.Widget, error) {
		for _, v := range []float64{c.Width, c.Height, c.Baseline} {
			if !validLength(v) {
				return nil, fmt.Errorf("invalid box size %vx%v or baseline %v, expected non-negative finite values", c.Width, c.Height, c.Baseline)
			}
		}
		b := widget.NewBox(unit.Dp(c.Width), unit.Dp(c.Height))
		b.SetBaseline(unit.Dp(c.Baseline))
		return b, nil
	},
	"label": func(c widgetConfig) (layout.Widget, error) {
		if !validLength(c.LineSpacing) {
			return nil, fmt.Errorf("invalid line spacing %v, expected a non-negative finite value", c.LineSpacing)
		}
		l := widget.NewLabel(c.Text, nil)
		l.SetLineSpacing(unit.Sp(c.LineSpacing))
		return l, nil
	},
	"expander": func(c widgetConfig) (layout.Widget, error) {
		return widget.Expander{}, nil
	},
}

// Load reads the scenario file at path. The scenario is named after
// the file.
func Load(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	s, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return s, nil
}

// Decode reads a scenario in TOML format from r.
func Decode(r io.Reader) (*Scenario, error) {
	var f file
	md, err := toml.NewDecoder(r).Decode(&f)
	if err != nil {
		return nil, fmt.Errorf("scenario: %w", err)
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		return nil, fmt.Errorf("scenario: unknown key %q", undec[0].String())
	}
	if f.Layout == "" {
		return nil, fmt.Errorf("scenario: missing layout")
	}
	s := &Scenario{
		Layout: f.Layout,
		Debug:  f.Debug,
		Metric: unit.Metric{PxPerDp: f.Metric.PxPerDp, PxPerSp: f.Metric.PxPerSp},
		Theme:  theme.New(),
	}
	for _, g := range []struct {
		key string
		v   float64
		dst *unit.Dp
	}{
		{"horizontal_gap", f.Theme.HorizontalGap, &s.Theme.HorizontalGap},
		{"vertical_gap", f.Theme.VerticalGap, &s.Theme.VerticalGap},
	} {
		if !md.IsDefined("theme", g.key) {
			continue
		}
		if !validLength(g.v) {
			return nil, fmt.Errorf("scenario: invalid %s %v, expected a non-negative finite value", g.key, g.v)
		}
		*g.dst = unit.Dp(g.v)
	}
	c := f.Constraints
	s.Constraints = layout.Constraints{
		Width:  layout.Constraint{Min: c.MinWidth, Max: layout.Inf},
		Height: layout.Constraint{Min: c.MinHeight, Max: layout.Inf},
	}
	if md.IsDefined("constraints", "max_width") {
		s.Constraints.Width.Max = c.MaxWidth
	}
	if md.IsDefined("constraints", "max_height") {
		s.Constraints.Height.Max = c.MaxHeight
	}
	for _, cs := range []layout.Constraint{s.Constraints.Width, s.Constraints.Height} {
		// A NaN maximum fails the comparison.
		if !(cs.Min >= 0) || math.IsInf(cs.Min, 1) || !(cs.Min <= cs.Max) {
			return nil, fmt.Errorf("scenario: invalid constraint range [%v;%v]", cs.Min, cs.Max)
		}
	}
	for i, w := range f.Widgets {
		if _, ok := builders[w.Type]; !ok {
			return nil, fmt.Errorf("scenario: widget %d: unknown type %q, expected one of %s", i, w.Type, strings.Join(WidgetTypes(), ", "))
		}
	}
	s.widgets = f.Widgets
	return s, nil
}

// WidgetTypes returns the sorted names of the widget types a scenario
// may use.
func WidgetTypes() []string {
	types := maps.Keys(builders)
	slices.Sort(types)
	return types
}

// Build creates fresh widgets and the layout tree of s.
func (s *Scenario) Build() (*layout.Node, error) {
	widgets := make([]layout.Widget, 0, len(s.widgets))
	for i, c := range s.widgets {
		w, err := builders[c.Type](c)
		if err != nil {
			return nil, fmt.Errorf("scenario: widget %d: %w", i, err)
		}
		widgets = append(widgets, w)
	}
	root, err := layout.Parse(s.Layout, widgets...)
	if err != nil {
		return nil, fmt.Errorf("scenario: %w", err)
	}
	return layout.NewNode(root), nil
}

// Context returns a layout context configured for s.
func (s *Scenario) Context() *layout.Context {
	return &layout.Context{
		Metric: s.Metric,
		Theme:  s.Theme,
		Debug:  s.Debug,
	}
}
