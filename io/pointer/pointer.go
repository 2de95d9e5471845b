// SPDX-License-Identifier: Unlicense OR MIT

// Package pointer implements mouse events.
//
// Touch input is reported separately by package touch.
package pointer

import (
	"fmt"
	"strings"
	"time"

	"github.com/widgetry/core/f32"
	"github.com/widgetry/core/io/key"
)

// Event is a mouse event.
type Event struct {
	Kind Kind
	// Time is when the event was received. The
	// timestamp is relative to an undefined base.
	Time time.Duration
	// Buttons are the set of pressed mouse buttons for this event.
	Buttons Buttons
	// Position is the coordinates of the event in window
	// coordinates.
	Position f32.Point
	// Scroll is the scroll amount, if any.
	Scroll f32.Point
	// Modifiers is the set of active modifiers when
	// the mouse button was pressed.
	Modifiers key.Modifiers
}

// Kind of an Event.
type Kind uint

// Buttons is a set of mouse buttons
type Buttons uint8

const (
	// A Cancel event is generated when the current gesture is
	// interrupted by the system.
	Cancel Kind = 1 << iota
	// Press of a mouse button.
	Press
	// Release of a mouse button.
	Release
	// Move of the cursor.
	Move
	// Drag of the cursor while a button is held.
	Drag
	// Cursor enters the window.
	Enter
	// Cursor leaves the window.
	Leave
	// Scroll of the wheel or trackpad.
	Scroll
)

const (
	// ButtonPrimary is the primary button, usually the left button for a
	// right-handed user.
	ButtonPrimary Buttons = 1 << iota
	// ButtonSecondary is the secondary button, usually the right button for a
	// right-handed user.
	ButtonSecondary
	// ButtonTertiary is the tertiary button, usually the middle button.
	ButtonTertiary
)

func (t Kind) String() string {
	if t == Cancel {
		return "Cancel"
	}
	var buf strings.Builder
	for tt := Kind(1); tt > 0; tt <<= 1 {
		if t&tt > 0 {
			if buf.Len() > 0 {
				buf.WriteByte('|')
			}
			buf.WriteString((t & tt).string())
		}
	}
	return buf.String()
}

func (t Kind) string() string {
	switch t {
	case Press:
		return "Press"
	case Release:
		return "Release"
	case Cancel:
		return "Cancel"
	case Move:
		return "Move"
	case Drag:
		return "Drag"
	case Enter:
		return "Enter"
	case Leave:
		return "Leave"
	case Scroll:
		return "Scroll"
	default:
		panic("unknown Kind")
	}
}

// Contain reports whether the set b contains
// all of the buttons.
func (b Buttons) Contain(buttons Buttons) bool {
	return b&buttons == buttons
}

func (b Buttons) String() string {
	var strs []string
	if b.Contain(ButtonPrimary) {
		strs = append(strs, "ButtonPrimary")
	}
	if b.Contain(ButtonSecondary) {
		strs = append(strs, "ButtonSecondary")
	}
	if b.Contain(ButtonTertiary) {
		strs = append(strs, "ButtonTertiary")
	}
	return strings.Join(strs, "|")
}

func (e Event) String() string {
	s := fmt.Sprintf("%v at %v", e.Kind, e.Position)
	if e.Buttons != 0 {
		s += " buttons " + e.Buttons.String()
	}
	if e.Kind == Scroll {
		s += " by " + e.Scroll.String()
	}
	return s
}
