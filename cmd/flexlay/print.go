// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"flexlay.org/f64"
	"flexlay.org/layout"
)

var (
	colorCyan = lipgloss.Color("36")
	colorGray = lipgloss.Color("245")
	colorDim  = lipgloss.Color("240")

	styleTitle  = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleKind   = lipgloss.NewStyle().Foreground(colorGray)
	styleNumber = lipgloss.NewStyle().Foreground(colorCyan)
	styleDim    = lipgloss.NewStyle().Foreground(colorDim)
)

// printSolution writes the geometry of s as an indented tree. Bounds
// are in the coordinates of the root.
func printSolution(w io.Writer, s *solution) {
	fmt.Fprintln(w, styleTitle.Render(s.name))
	printNode(w, s.root, f64.Point{}, 1)
	fmt.Fprintln(w, styleDim.Render(fmt.Sprintf("  size %v baseline %g; measured %d, skipped %d, placed %d",
		s.dims.Size, s.dims.Baseline, s.stats.Measured, s.stats.Skipped, s.stats.Placed)))
	if s.png != "" {
		fmt.Fprintln(w, styleDim.Render("  wrote "+s.png))
	}
}

func printNode(w io.Writer, n *layout.Node, off f64.Point, depth int) {
	r := n.Bounds().Add(off)
	fmt.Fprintf(w, "%s%s %s\n",
		strings.Repeat("  ", depth),
		styleKind.Render(kind(n.Widget())),
		styleNumber.Render(r.String()),
	)
	fl, ok := n.Widget().(*layout.Flex)
	if !ok {
		return
	}
	for _, c := range fl.Nodes() {
		printNode(w, c, r.Min, depth+1)
	}
}

func kind(w layout.Widget) string {
	switch w := w.(type) {
	case *layout.Flex:
		return "flex " + strings.ToLower(w.Axis().String())
	default:
		t := fmt.Sprintf("%T", w)
		t = strings.TrimPrefix(t, "*")
		if i := strings.LastIndexByte(t, '.'); i >= 0 {
			t = t[i+1:]
		}
		return strings.ToLower(t)
	}
}
