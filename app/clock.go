// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"time"

	"github.com/widgetry/core/io/event"
)

// Clock converts frame times to TickEvents.
//
// Clock does not check that successive times are increasing;
// a time earlier than the previous tick yields a negative
// delta. A Clock must not be used concurrently.
type Clock struct {
	start time.Time
	last  time.Time
}

// NewClock returns a Clock for an application started at start.
func NewClock(start time.Time) *Clock {
	return &Clock{start: start, last: start}
}

// Tick returns the TickEvent for a frame at now and records now
// as the time of the latest tick.
func (c *Clock) Tick(now time.Time) event.TickEvent {
	delta := now.Sub(c.last)
	c.last = now
	return event.NewTickEvent(seconds(delta), seconds(now.Sub(c.start)))
}

// Start returns the start time of the clock.
func (c *Clock) Start() time.Time {
	return c.start
}

func seconds(d time.Duration) float32 {
	return float32(d.Seconds())
}
