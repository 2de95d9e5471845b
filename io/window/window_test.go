// SPDX-License-Identifier: Unlicense OR MIT

package window

import (
	"fmt"
	"image"
	"testing"
)

func TestEventString(t *testing.T) {
	for _, tc := range []struct {
		e   Event
		res string
	}{
		{ConfigEvent{Size: image.Pt(800, 600)}, "Config(size=(800,600))"},
		{MoveEvent{Position: image.Pt(-10, 5)}, "Move((-10,5))"},
		{StageEvent{Stage: StageRunning}, "StageRunning"},
		{FocusEvent{Focus: true}, "Focus(true)"},
		{CloseRequestEvent{}, "CloseRequest"},
		{DestroyEvent{}, "Destroy"},
		{FileEvent{Kind: FileDrop, Path: "/tmp/a.txt"}, `FileDrop("/tmp/a.txt")`},
		{FileEvent{Kind: FileHoverCancel}, "FileHoverCancel"},
	} {
		if got := fmt.Sprint(tc.e); got != tc.res {
			t.Errorf("got %q; want %q", got, tc.res)
		}
	}
}

func TestEventEquality(t *testing.T) {
	var a, b Event = CloseRequestEvent{}, CloseRequestEvent{}
	if a != b {
		t.Error("identical events compare unequal")
	}
	if Event(CloseRequestEvent{}) == Event(DestroyEvent{}) {
		t.Error("distinct event types compare equal")
	}
	if Event(FocusEvent{Focus: true}) == Event(FocusEvent{Focus: false}) {
		t.Error("focus events with different payload compare equal")
	}
}

func TestInvalidStagePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("String of an invalid Stage did not panic")
		}
	}()
	_ = Stage(9).String()
}
