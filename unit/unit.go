// SPDX-License-Identifier: Unlicense OR MIT

/*

Package unit implements device independent units.

Device independent pixel, or dp, is the unit for sizes independent of
the underlying display device.

Scaled pixels, or sp, is the unit for text sizes. An sp is like dp with
text scaling applied.

Finally, pixels, or px, is the unit for display dependent pixels. Their
size vary between platforms and displays.

To maintain a constant visual size across platforms and displays, always
use dps or sps to define layouts. Only use pixels for derived values.

*/
package unit

import (
	"fmt"
	"math"
)

// Metric converts Values to device-dependent pixels. The zero
// value represents a 1-to-1 scale from dp, sp to pixels.
type Metric struct {
	// PxPerDp is the device-dependent pixels per dp.
	PxPerDp float64
	// PxPerSp is the device-dependent pixels per sp.
	PxPerSp float64
}

type (
	// Dp represents device independent pixels. 1 dp will
	// have the same apparent size across platforms and
	// display resolutions.
	Dp float64
	// Sp is like Dp but for font sizes.
	Sp float64
)

// Dp converts v to pixels, rounded to the nearest pixel.
func (c Metric) Dp(v Dp) float64 {
	return math.Round(nonZero(c.PxPerDp) * float64(v))
}

// Sp converts v to pixels, rounded to the nearest pixel.
func (c Metric) Sp(v Sp) float64 {
	return math.Round(nonZero(c.PxPerSp) * float64(v))
}

func (v Dp) String() string {
	return fmt.Sprintf("%gdp", float64(v))
}

func (v Sp) String() string {
	return fmt.Sprintf("%gsp", float64(v))
}

func nonZero(v float64) float64 {
	if v == 0. {
		return 1
	}
	return v
}
