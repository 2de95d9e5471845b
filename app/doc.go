// SPDX-License-Identifier: Unlicense OR MIT

/*
Package app contains the host side glue that turns platform
input and timing into events.

# Ticks

A Clock measures frame timing for Tick events. The host creates
one when the application starts and calls Tick once per frame:

	clock := app.NewClock(time.Now())
	for {
		...
		e := event.Tick{Event: clock.Tick(time.Now())}
		status := root.Update(e)
		...
	}
*/
package app
