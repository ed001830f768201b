// SPDX-License-Identifier: Unlicense OR MIT

package layout_test

import (
	"fmt"

	"flexlay.org/f64"
	"flexlay.org/layout"
)

type fixed f64.Point

func (s fixed) Layout(gtx *layout.Context, cs layout.Constraints) layout.Dimensions {
	return layout.Dimensions{Size: f64.Point(s)}
}

func ExampleFlex() {
	gtx := new(layout.Context)

	fl := layout.Row(
		// Rigid children are laid out first.
		layout.Rigid(fixed{X: 50, Y: 20}),
		// Flexed children share the remaining space by weight.
		layout.Flexed(1, fixed{X: 1000, Y: 20}),
		layout.Rigid(fixed{X: 30, Y: 10}),
		layout.Flexed(2, fixed{X: 1000, Y: 20}),
	)
	fl.SetGap(0)
	root := layout.NewNode(fl)

	dims := gtx.Layout(root, layout.Loose(f64.Pt(200, 100)))
	fmt.Println("flex:", dims.Size)
	for _, n := range fl.Nodes() {
		fmt.Println(n.Bounds())
	}

	// Output:
	// flex: (200,20)
	// (0,0)-(50,20)
	// (50,0)-(90,20)
	// (90,5)-(120,15)
	// (120,0)-(200,20)
}

func ExampleDistribute() {
	fmt.Println(layout.Distribute(layout.SpaceSides, 17, 3))
	fmt.Println(layout.Distribute(layout.SpaceEvenly, 10, 2))
	fmt.Println(layout.Distribute(layout.SpaceAround, 10, 2))

	// Output:
	// [9 0 0 8]
	// [3 4 3]
	// [3 5 2]
}

func ExampleParse() {
	gtx := new(layout.Context)

	w, err := layout.Parse("vflex(start, gap(2), r(_), s(3), r(_))",
		fixed{X: 10, Y: 10}, fixed{X: 20, Y: 5})
	if err != nil {
		panic(err)
	}
	dims := gtx.Layout(layout.NewNode(w), layout.Loose(f64.Pt(100, 100)))
	fmt.Println(dims.Size)

	// Output:
	// (20,22)
}
