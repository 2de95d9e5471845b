// SPDX-License-Identifier: Unlicense OR MIT

package event

import "strconv"

// TickEvent is the timing information of a Tick.
//
// NewTickEvent and the Tick variant accept any values. It is up
// to the producer to keep DeltaSeconds non-negative and
// TotalSeconds non-decreasing across ticks.
type TickEvent struct {
	// DeltaSeconds is the time elapsed since the previous tick.
	DeltaSeconds float32
	// TotalSeconds is the time elapsed since the application
	// started.
	TotalSeconds float32
}

// NewTickEvent returns a TickEvent with the given timings.
func NewTickEvent(deltaSeconds, totalSeconds float32) TickEvent {
	return TickEvent{DeltaSeconds: deltaSeconds, TotalSeconds: totalSeconds}
}

func (t TickEvent) String() string {
	return "delta=" + formatSeconds(t.DeltaSeconds) + " total=" + formatSeconds(t.TotalSeconds)
}

func formatSeconds(s float32) string {
	return strconv.FormatFloat(float64(s), 'f', -1, 32) + "s"
}
