// SPDX-License-Identifier: Unlicense OR MIT

package event

// Status is the outcome of offering an Event to a handler.
type Status uint8

const (
	// Ignored means the event was not handled.
	Ignored Status = iota
	// Captured means the event was handled and should not
	// propagate further.
	Captured
)

// Merge combines two statuses. The result is Captured if
// either a or b is Captured.
//
// Merge is associative and commutative, with Ignored as
// identity and Captured as absorbing element, so any number
// of statuses can be merged in any order.
func Merge(a, b Status) Status {
	if a == Captured {
		return Captured
	}
	return b
}

// Merge is shorthand for Merge(s, b).
func (s Status) Merge(b Status) Status {
	return Merge(s, b)
}

// MergeAll folds statuses with Merge, starting from Ignored.
func MergeAll(statuses ...Status) Status {
	s := Ignored
	for _, st := range statuses {
		s = Merge(s, st)
	}
	return s
}

func (s Status) String() string {
	switch s {
	case Ignored:
		return "Ignored"
	case Captured:
		return "Captured"
	default:
		panic("invalid Status")
	}
}
