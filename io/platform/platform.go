// SPDX-License-Identifier: Unlicense OR MIT

// Package platform contains events that only some operating
// systems deliver.
//
// Events are grouped per operating system: an Event names the
// system, and the system's own event type names the occurrence.
// Both levels are closed sets.
package platform

import "fmt"

// Event is a platform specific event. Its only implementation
// is MacOS.
type Event interface {
	implementsPlatformEvent()
}

// MacOS wraps an event specific to macOS.
type MacOS struct {
	Event MacOSEvent
}

// MacOSEvent is an event delivered only on macOS. Its only
// implementation is ReceivedURL.
type MacOSEvent interface {
	implementsMacOSEvent()
}

// ReceivedURL is delivered when the system hands the
// application a URL, for example through a registered scheme.
//
// macOS only sends it to executables bundled as an application.
type ReceivedURL struct {
	URL string
}

// Visitor handles every kind of platform Event. Adding a
// platform adds a method, so implementations that miss it
// no longer compile.
type Visitor[T any] interface {
	MacOS(e MacOSEvent) T
}

// MacOSVisitor handles every kind of MacOSEvent.
type MacOSVisitor[T any] interface {
	ReceivedURL(url string) T
}

// Visit calls the method of v matching e. It panics if e is nil.
func Visit[T any](e Event, v Visitor[T]) T {
	switch e := e.(type) {
	case MacOS:
		return v.MacOS(e.Event)
	default:
		panic(fmt.Sprintf("platform: invalid Event %#v", e))
	}
}

// VisitMacOS calls the method of v matching e. It panics if e is nil.
func VisitMacOS[T any](e MacOSEvent, v MacOSVisitor[T]) T {
	switch e := e.(type) {
	case ReceivedURL:
		return v.ReceivedURL(e.URL)
	default:
		panic(fmt.Sprintf("platform: invalid MacOSEvent %#v", e))
	}
}

func (e MacOS) String() string       { return fmt.Sprintf("MacOS(%v)", e.Event) }
func (e ReceivedURL) String() string { return fmt.Sprintf("ReceivedURL(%q)", e.URL) }

func (MacOS) implementsPlatformEvent()    {}
func (ReceivedURL) implementsMacOSEvent() {}
