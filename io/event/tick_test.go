// SPDX-License-Identifier: Unlicense OR MIT

package event

import "testing"

func TestNewTickEvent(t *testing.T) {
	e := NewTickEvent(0.016, 1.234)
	if e.DeltaSeconds != 0.016 {
		t.Errorf("DeltaSeconds = %v, want 0.016", e.DeltaSeconds)
	}
	if e.TotalSeconds != 1.234 {
		t.Errorf("TotalSeconds = %v, want 1.234", e.TotalSeconds)
	}
	if e != NewTickEvent(0.016, 1.234) {
		t.Error("ticks with equal timings compare unequal")
	}
	if e == NewTickEvent(0.017, 1.234) {
		t.Error("ticks with different deltas compare equal")
	}
	if e == NewTickEvent(0.016, 1.235) {
		t.Error("ticks with different totals compare equal")
	}
}

func TestNewTickEventAcceptsAnyValue(t *testing.T) {
	e := NewTickEvent(-0.5, -3)
	if e.DeltaSeconds != -0.5 || e.TotalSeconds != -3 {
		t.Errorf("timings altered: %+v", e)
	}
}

func TestTickEventString(t *testing.T) {
	if got, want := NewTickEvent(0.016, 1.234).String(), "delta=0.016s total=1.234s"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
