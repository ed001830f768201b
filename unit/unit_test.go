// SPDX-License-Identifier: Unlicense OR MIT

package unit_test

import (
	"testing"

	"flexlay.org/unit"
)

func TestMetric(t *testing.T) {
	m := unit.Metric{
		PxPerDp: 2,
		PxPerSp: 3,
	}
	if got := m.Dp(5); got != 10 {
		t.Errorf("Dp(5) = %v, want 10", got)
	}
	if got := m.Sp(5); got != 15 {
		t.Errorf("Sp(5) = %v, want 15", got)
	}
	if got := m.Sp(0.5); got != 2 {
		t.Errorf("Sp(0.5) = %v, want 2 (rounded)", got)
	}
}

func TestMetric_ZeroValue(t *testing.T) {
	var m unit.Metric
	if got := m.Dp(8); got != 8 {
		t.Errorf("zero Metric: Dp(8) = %v, want 8", got)
	}
	if got := m.Sp(8); got != 8 {
		t.Errorf("zero Metric: Sp(8) = %v, want 8", got)
	}
	m.PxPerDp = 1.5
	if got := m.Dp(3); got != 5 {
		t.Errorf("Dp(3) at 1.5x = %v, want 5 (rounded)", got)
	}
}
