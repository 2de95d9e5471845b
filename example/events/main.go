// SPDX-License-Identifier: Unlicense OR MIT

package main

// Offers one event of every kind to a few handlers and logs the
// merged status of each offer.

import (
	"image"
	"log"
	"time"

	"golang.org/x/exp/slices"

	"github.com/widgetry/core/app"
	"github.com/widgetry/core/f32"
	"github.com/widgetry/core/io/event"
	"github.com/widgetry/core/io/key"
	"github.com/widgetry/core/io/platform"
	"github.com/widgetry/core/io/pointer"
	"github.com/widgetry/core/io/touch"
	"github.com/widgetry/core/io/window"
)

type handler interface {
	event.Visitor[event.Status]
	Name() string
}

func main() {
	clock := app.NewClock(time.Now())
	handlers := []handler{
		&button{bounds: image.Rect(0, 0, 100, 40)},
		&textField{focused: true},
		&linkOpener{},
		&spinner{},
	}
	events := []event.Event{
		event.Window{Event: window.ConfigEvent{Size: image.Pt(800, 600)}},
		event.Mouse{Event: pointer.Event{Kind: pointer.Press, Buttons: pointer.ButtonPrimary, Position: f32.Pt(20, 10)}},
		event.Mouse{Event: pointer.Event{Kind: pointer.Move, Position: f32.Pt(300, 300)}},
		event.Keyboard{Event: key.Event{Name: "H"}},
		event.Keyboard{Event: key.Event{Name: key.NameF5}},
		event.Touch{Event: touch.Event{Kind: touch.Press, Finger: 1, Position: f32.Pt(50, 20)}},
		event.PlatformSpecific{Event: platform.MacOS{Event: platform.ReceivedURL{URL: "widgetry://open?doc=1"}}},
		event.Tick{Event: clock.Tick(time.Now())},
		event.Window{Event: window.CloseRequestEvent{}},
	}
	for _, e := range events {
		statuses := make([]event.Status, len(handlers))
		for i, h := range handlers {
			statuses[i] = event.Visit[event.Status](e, h)
		}
		status := event.MergeAll(statuses...)
		var capturedBy []string
		for i, s := range statuses {
			if s == event.Captured {
				capturedBy = append(capturedBy, handlers[i].Name())
			}
		}
		slices.Sort(capturedBy)
		log.Printf("%v: %v %v", e, status, capturedBy)
	}
}

type button struct {
	bounds  image.Rectangle
	pressed bool
}

func (b *button) Name() string { return "button" }

func (b *button) hit(p f32.Point) bool {
	return image.Pt(int(p.X), int(p.Y)).In(b.bounds)
}

func (b *button) Mouse(e pointer.Event) event.Status {
	if e.Kind != pointer.Press || !b.hit(e.Position) {
		return event.Ignored
	}
	b.pressed = true
	return event.Captured
}

func (b *button) Touch(e touch.Event) event.Status {
	if e.Kind != touch.Press || !b.hit(e.Position) {
		return event.Ignored
	}
	b.pressed = true
	return event.Captured
}

func (b *button) Keyboard(key.Event) event.Status              { return event.Ignored }
func (b *button) Window(window.Event) event.Status             { return event.Ignored }
func (b *button) PlatformSpecific(platform.Event) event.Status { return event.Ignored }
func (b *button) Tick(event.TickEvent) event.Status            { return event.Ignored }

type textField struct {
	focused bool
	text    string
}

func (f *textField) Name() string { return "text field" }

func (f *textField) Keyboard(e key.Event) event.Status {
	if !f.focused || e.State != key.Press || len(e.Name) != 1 {
		return event.Ignored
	}
	f.text += string(e.Name)
	return event.Captured
}

func (f *textField) Window(e window.Event) event.Status {
	if fe, ok := e.(window.FocusEvent); ok {
		f.focused = fe.Focus
	}
	return event.Ignored
}

func (f *textField) Mouse(pointer.Event) event.Status             { return event.Ignored }
func (f *textField) Touch(touch.Event) event.Status               { return event.Ignored }
func (f *textField) PlatformSpecific(platform.Event) event.Status { return event.Ignored }
func (f *textField) Tick(event.TickEvent) event.Status            { return event.Ignored }

// linkOpener handles URLs handed to the application by macOS.
type linkOpener struct {
	opened []string
}

func (l *linkOpener) Name() string { return "link opener" }

func (l *linkOpener) PlatformSpecific(e platform.Event) event.Status {
	return platform.Visit[event.Status](e, l)
}

func (l *linkOpener) MacOS(e platform.MacOSEvent) event.Status {
	return platform.VisitMacOS[event.Status](e, l)
}

func (l *linkOpener) ReceivedURL(url string) event.Status {
	l.opened = append(l.opened, url)
	return event.Captured
}

func (l *linkOpener) Keyboard(key.Event) event.Status   { return event.Ignored }
func (l *linkOpener) Mouse(pointer.Event) event.Status  { return event.Ignored }
func (l *linkOpener) Window(window.Event) event.Status  { return event.Ignored }
func (l *linkOpener) Touch(touch.Event) event.Status    { return event.Ignored }
func (l *linkOpener) Tick(event.TickEvent) event.Status { return event.Ignored }

// spinner animates on ticks. It never captures events so that
// other handlers still see them.
type spinner struct {
	angle float32
}

func (s *spinner) Name() string { return "spinner" }

func (s *spinner) Tick(e event.TickEvent) event.Status {
	s.angle += 360 * e.DeltaSeconds
	return event.Ignored
}

func (s *spinner) Keyboard(key.Event) event.Status              { return event.Ignored }
func (s *spinner) Mouse(pointer.Event) event.Status             { return event.Ignored }
func (s *spinner) Window(window.Event) event.Status             { return event.Ignored }
func (s *spinner) Touch(touch.Event) event.Status               { return event.Ignored }
func (s *spinner) PlatformSpecific(platform.Event) event.Status { return event.Ignored }
