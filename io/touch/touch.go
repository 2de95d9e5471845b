// SPDX-License-Identifier: Unlicense OR MIT

// Package touch implements touch screen events.
package touch

import (
	"fmt"

	"github.com/widgetry/core/f32"
)

// Event is a touch event for a single finger.
type Event struct {
	Kind Kind
	// Finger identifies the finger for the duration of a
	// touch, from Press to Lift or Lost.
	Finger Finger
	// Position is the coordinates of the touch in window
	// coordinates.
	Position f32.Point
}

// Finger is a unique identifier for a touch.
type Finger uint64

// Kind of an Event.
type Kind uint8

const (
	// Press is a finger touching the screen.
	Press Kind = iota
	// Move is a finger moving while touching the screen.
	Move
	// Lift is a finger leaving the screen.
	Lift
	// Lost is reported when the system cancels tracking of
	// a finger, for example when a gesture is taken over by
	// the operating system.
	Lost
)

func (k Kind) String() string {
	switch k {
	case Press:
		return "Press"
	case Move:
		return "Move"
	case Lift:
		return "Lift"
	case Lost:
		return "Lost"
	default:
		panic("unknown Kind")
	}
}

func (e Event) String() string {
	return fmt.Sprintf("%v finger %d at %v", e.Kind, e.Finger, e.Position)
}
