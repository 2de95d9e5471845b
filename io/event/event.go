// SPDX-License-Identifier: Unlicense OR MIT

/*
Package event defines the events offered to a user interface
and the status a handler reports for each of them.

An Event is exactly one of Keyboard, Mouse, Window, Touch,
PlatformSpecific or Tick. The set is closed: no type outside
this package implements Event. Handlers either use a type
switch,

	switch e := e.(type) {
	case event.Keyboard:
		...
	case event.Tick:
		...
	}

or implement Visitor, which the compiler checks for
completeness.

Events are comparable values. Two events are equal if they
are the same variant carrying equal payloads.

Handlers report a Status for every event they are offered.
Statuses from several handlers are combined with Merge; the
result is Captured if any handler captured the event,
regardless of the order in which they were merged.
*/
package event

import (
	"fmt"

	"github.com/widgetry/core/io/key"
	"github.com/widgetry/core/io/platform"
	"github.com/widgetry/core/io/pointer"
	"github.com/widgetry/core/io/touch"
	"github.com/widgetry/core/io/window"
)

// Event is a user interface event.
type Event interface {
	implementsEvent()
}

// Keyboard is a keyboard event.
type Keyboard struct {
	Event key.Event
}

// Mouse is a mouse event.
type Mouse struct {
	Event pointer.Event
}

// Window is a window event.
type Window struct {
	Event window.Event
}

// Touch is a touch event.
type Touch struct {
	Event touch.Event
}

// PlatformSpecific is an event delivered only on some
// operating systems.
type PlatformSpecific struct {
	Event platform.Event
}

// Tick is a timing event sent once per frame, regardless of
// input. It drives animations.
//
// Ticks are not generated by this package; the host decides
// when to send them and how to measure time. Ticks carry no
// information about which clock produced them.
type Tick struct {
	Event TickEvent
}

// Visitor handles every kind of Event. Adding an Event variant
// adds a method to Visitor, so implementations that do not
// handle it fail to compile.
type Visitor[T any] interface {
	Keyboard(e key.Event) T
	Mouse(e pointer.Event) T
	Window(e window.Event) T
	Touch(e touch.Event) T
	PlatformSpecific(e platform.Event) T
	Tick(e TickEvent) T
}

// Visit calls the method of v matching the variant of e and
// returns its result. It panics if e is nil.
func Visit[T any](e Event, v Visitor[T]) T {
	switch e := e.(type) {
	case Keyboard:
		return v.Keyboard(e.Event)
	case Mouse:
		return v.Mouse(e.Event)
	case Window:
		return v.Window(e.Event)
	case Touch:
		return v.Touch(e.Event)
	case PlatformSpecific:
		return v.PlatformSpecific(e.Event)
	case Tick:
		return v.Tick(e.Event)
	default:
		panic(fmt.Sprintf("event: invalid Event %#v", e))
	}
}

func (e Keyboard) String() string         { return fmt.Sprintf("Keyboard(%v)", e.Event) }
func (e Mouse) String() string            { return fmt.Sprintf("Mouse(%v)", e.Event) }
func (e Window) String() string           { return fmt.Sprintf("Window(%v)", e.Event) }
func (e Touch) String() string            { return fmt.Sprintf("Touch(%v)", e.Event) }
func (e PlatformSpecific) String() string { return fmt.Sprintf("PlatformSpecific(%v)", e.Event) }
func (e Tick) String() string             { return fmt.Sprintf("Tick(%v)", e.Event) }

func (Keyboard) implementsEvent()         {}
func (Mouse) implementsEvent()            {}
func (Window) implementsEvent()           {}
func (Touch) implementsEvent()            {}
func (PlatformSpecific) implementsEvent() {}
func (Tick) implementsEvent()             {}
