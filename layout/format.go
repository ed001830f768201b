// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"fmt"
	"strconv"

	"flexlay.org/unit"
)

type formatState struct {
	current int
	orig    string
	expr    string
}

type formatError string

// Parse builds a widget tree from a format string, similar to how
// fmt.Printf interpolates a string.
//
// The format string is an expression where layouts are similar to
// function calls, and the underscore denotes a widget from the
// arguments. The ith _ refers to the ith widget from the arguments.
//
// If the format is invalid, Parse returns an error where a cross, ✗,
// marks the error position.
//
// For example,
//
//	layout.Parse("hflex(baseline, gap(4dp), r(_), f(1, _))", label, field)
//
// is equivalent to
//
//	fl := layout.Row(layout.Rigid(label), layout.Flexed(1, field))
//	fl.SetAlignment(layout.Baseline)
//	fl.SetGap(unit.Dp(4))
//
// Available layouts:
//
//	hflex/vflex(<options>, children...) lays out children with a
//	horizontal or vertical Flex. Options and children may be mixed
//	in any order. The children are:
//
//	  r(widget[, alignment]) is a rigid child.
//	  f(<weight>, widget[, alignment]) is a flexed child.
//	  s(<length>) is a fixed spacer of length pixels.
//	  ds is a spacer as long as the default gap of the theme.
//	  fs(<weight>) is a flexible spacer.
//
//	Options are a cross axis alignment (start, middle, end,
//	baseline, fill), a spacing mode (spaceend, spacestart,
//	spacesides, spacearound, spacebetween, spaceevenly), mustfill,
//	gap(<dp>), border(<dp>) and pad(<dp>...). pad takes one value for
//	uniform padding; two values for top/bottom and right/left; three
//	values for top, right/left and bottom; or four values for top,
//	right, bottom, left. Values may carry a "dp" suffix.
//
// The default alignment is middle.
func Parse(format string, widgets ...Widget) (w Widget, err error) {
	state := formatState{
		orig: format,
		expr: format,
	}
	defer func() {
		if e := recover(); e != nil {
			if _, ok := e.(formatError); !ok {
				panic(e)
			}
			pos := len(state.orig) - len(state.expr)
			msg := state.orig[:pos] + "✗" + state.orig[pos:]
			w, err = nil, fmt.Errorf("Parse: %s:%d: %s", msg, pos, e)
		}
	}()
	w = formatExpr(&state, widgets)
	skipWhitespace(&state)
	if state.expr != "" {
		errorf("unexpected %q after expression", state.expr)
	}
	if n := len(widgets); state.current != n {
		errorf("%d widgets given, %d used", n, state.current)
	}
	return w, nil
}

func formatExpr(state *formatState, widgets []Widget) Widget {
	switch peek(state) {
	case '_':
		return formatWidget(state, widgets)
	default:
		return formatLayout(state, widgets)
	}
}

func formatLayout(state *formatState, widgets []Widget) Widget {
	name := parseName(state)
	if name == "" {
		errorf("missing layout name")
	}
	expect(state, "(")
	var fl *Flex
	switch name {
	case "hflex":
		fl = formatFlex(Horizontal, state, widgets)
	case "vflex":
		fl = formatFlex(Vertical, state, widgets)
	default:
		errorf("invalid layout %q", name)
	}
	expect(state, ")")
	return fl
}

func formatWidget(state *formatState, widgets []Widget) Widget {
	expect(state, "_")
	if i, max := state.current, len(widgets)-1; i > max {
		errorf("widget index %d out of bounds [0;%d]", i, max)
	}
	w := widgets[state.current]
	state.current++
	return w
}

func formatFlex(axis Axis, state *formatState, widgets []Widget) *Flex {
	fl := NewFlex(axis)
	for {
		switch peek(state) {
		case ')':
			return fl
		case ',':
			expect(state, ",")
			continue
		}
		name := parseName(state)
		if a, ok := alignmentFor(name); ok {
			fl.SetAlignment(a)
			continue
		}
		if s, ok := spacingFor(name); ok {
			fl.SetSpacing(s)
			continue
		}
		switch name {
		case "mustfill":
			fl.SetMustFill(true)
		case "gap":
			expect(state, "(")
			g := parseValue(state)
			if g < 0 {
				errorf("negative gap %v", g)
			}
			fl.SetGap(g)
			expect(state, ")")
		case "border":
			expect(state, "(")
			fl.SetBorder(Border{Width: parseValue(state)})
			expect(state, ")")
		case "pad":
			expect(state, "(")
			fl.SetPadding(parsePadding(state))
			expect(state, ")")
		case "r":
			expect(state, "(")
			c := Rigid(formatExpr(state, widgets))
			fl.Add(parseChildAlignment(state, c))
			expect(state, ")")
		case "f":
			expect(state, "(")
			weight := parseFloat(state)
			expect(state, ",")
			c := Flexed(weight, formatExpr(state, widgets))
			fl.Add(parseChildAlignment(state, c))
			expect(state, ")")
		case "s":
			expect(state, "(")
			fl.Add(Spacer(parseFloat(state)))
			expect(state, ")")
		case "ds":
			fl.Add(DefaultSpacer())
		case "fs":
			expect(state, "(")
			fl.Add(FlexSpacer(parseFloat(state)))
			expect(state, ")")
		default:
			errorf("invalid flex option or child %q", name)
		}
	}
}

func parseChildAlignment(state *formatState, c Child) Child {
	if peek(state) != ',' {
		return c
	}
	expect(state, ",")
	name := parseName(state)
	a, ok := alignmentFor(name)
	if !ok {
		errorf("invalid child alignment: %q", name)
	}
	return c.Align(a)
}

func parsePadding(state *formatState) Inset {
	v1 := parseValue(state)
	if peek(state) == ')' {
		return UniformInset(v1)
	}
	expect(state, ",")
	v2 := parseValue(state)
	if peek(state) == ')' {
		return Inset{
			Top:    v1,
			Right:  v2,
			Bottom: v1,
			Left:   v2,
		}
	}
	expect(state, ",")
	v3 := parseValue(state)
	if peek(state) == ')' {
		return Inset{
			Top:    v1,
			Right:  v2,
			Bottom: v3,
			Left:   v2,
		}
	}
	expect(state, ",")
	v4 := parseValue(state)
	return Inset{
		Top:    v1,
		Right:  v2,
		Bottom: v3,
		Left:   v4,
	}
}

func parseValue(state *formatState) unit.Dp {
	v := unit.Dp(parseFloat(state))
	if len(state.expr) >= 2 && state.expr[:2] == "dp" {
		state.expr = state.expr[2:]
	}
	return v
}

func parseName(state *formatState) string {
	skipWhitespace(state)
	i := 0
	for ; i < len(state.expr); i++ {
		c := state.expr[i]
		switch {
		case c == '(' || c == ',' || c == ')' || isSpace(c):
			fname := state.expr[:i]
			state.expr = state.expr[i:]
			return fname
		case c < 'a' || 'z' < c:
			errorf("invalid character '%c' in name", c)
		}
	}
	state.expr = state.expr[i:]
	errorf("unexpected end after name")
	return ""
}

func parseFloat(state *formatState) float64 {
	skipWhitespace(state)
	i := 0
	for ; i < len(state.expr); i++ {
		c := state.expr[i]
		if (c < '0' || c > '9') && c != '.' && c != '-' {
			break
		}
	}
	expr := state.expr[:i]
	v, err := strconv.ParseFloat(expr, 64)
	if err != nil {
		errorf("invalid number %q", expr)
	}
	state.expr = state.expr[i:]
	return v
}

func peek(state *formatState) rune {
	skipWhitespace(state)
	if len(state.expr) == 0 {
		errorf("unexpected end")
	}
	return rune(state.expr[0])
}

func expect(state *formatState, str string) {
	skipWhitespace(state)
	n := len(str)
	if len(state.expr) < n || state.expr[:n] != str {
		errorf("expected %q", str)
	}
	state.expr = state.expr[n:]
}

func skipWhitespace(state *formatState) {
	for len(state.expr) > 0 && isSpace(state.expr[0]) {
		state.expr = state.expr[1:]
	}
}

func isSpace(c byte) bool {
	switch c {
	case '\t', '\n', '\v', '\f', '\r', ' ':
		return true
	default:
		return false
	}
}

func alignmentFor(name string) (Alignment, bool) {
	switch name {
	case "start":
		return Start, true
	case "middle":
		return Middle, true
	case "end":
		return End, true
	case "baseline":
		return Baseline, true
	case "fill":
		return Fill, true
	default:
		return 0, false
	}
}

func spacingFor(name string) (Spacing, bool) {
	switch name {
	case "spaceend":
		return SpaceEnd, true
	case "spacestart":
		return SpaceStart, true
	case "spacesides":
		return SpaceSides, true
	case "spacearound":
		return SpaceAround, true
	case "spacebetween":
		return SpaceBetween, true
	case "spaceevenly":
		return SpaceEvenly, true
	default:
		return 0, false
	}
}

func errorf(f string, args ...interface{}) {
	panic(formatError(fmt.Sprintf(f, args...)))
}

func (e formatError) Error() string {
	return string(e)
}
