// SPDX-License-Identifier: Unlicense OR MIT

// Package widget implements leaf widgets for flex layouts. Widgets embed
// a layout.Handle so that mutating them requests a new layout of the
// tree they belong to.
package widget
