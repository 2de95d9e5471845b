// SPDX-License-Identifier: Unlicense OR MIT

// Package window contains events describing the lifecycle
// of a top-level window.
package window

import (
	"fmt"
	"image"
)

// Event is the interface implemented by every window event.
// The set of window events is closed; only the types in this
// package implement it.
type Event interface {
	implementsWindowEvent()
}

// A ConfigEvent is generated when the window is first shown
// and whenever its size changes.
type ConfigEvent struct {
	// Size is the dimensions of the window content area, in pixels.
	Size image.Point
}

// A MoveEvent is generated when the window is moved.
type MoveEvent struct {
	// Position is the top left corner of the window in
	// screen coordinates.
	Position image.Point
}

// A StageEvent is generated whenever the stage of a
// window changes.
type StageEvent struct {
	Stage Stage
}

// A FocusEvent is generated when the window gains or loses
// keyboard focus.
type FocusEvent struct {
	Focus bool
}

// CloseRequestEvent is generated when the user asks to close
// the window, for example through its title bar. The window is
// still open.
type CloseRequestEvent struct{}

// DestroyEvent is the last event delivered for a window.
type DestroyEvent struct{}

// FileEvent reports a file dragged over or dropped on the
// window.
type FileEvent struct {
	Kind FileKind
	// Path of the file. Empty for FileHoverCancel.
	Path string
}

// Stage of a window.
type Stage uint8

// FileKind is the kind of a FileEvent.
type FileKind uint8

const (
	// StagePaused is the Stage for inactive windows.
	// Inactive windows are not redrawn.
	StagePaused Stage = iota
	// StageRunning is for active windows.
	StageRunning
)

const (
	// FileHover is a file dragged over the window.
	FileHover FileKind = iota
	// FileDrop is a file dropped on the window.
	FileDrop
	// FileHoverCancel is sent when hovered files leave the
	// window without being dropped.
	FileHoverCancel
)

func (l Stage) String() string {
	switch l {
	case StagePaused:
		return "StagePaused"
	case StageRunning:
		return "StageRunning"
	default:
		panic("unexpected Stage value")
	}
}

func (k FileKind) String() string {
	switch k {
	case FileHover:
		return "FileHover"
	case FileDrop:
		return "FileDrop"
	case FileHoverCancel:
		return "FileHoverCancel"
	default:
		panic("unexpected FileKind value")
	}
}

func (e ConfigEvent) String() string     { return fmt.Sprintf("Config(size=%v)", e.Size) }
func (e MoveEvent) String() string       { return fmt.Sprintf("Move(%v)", e.Position) }
func (e StageEvent) String() string      { return e.Stage.String() }
func (e FocusEvent) String() string      { return fmt.Sprintf("Focus(%t)", e.Focus) }
func (CloseRequestEvent) String() string { return "CloseRequest" }
func (DestroyEvent) String() string      { return "Destroy" }

func (e FileEvent) String() string {
	if e.Kind == FileHoverCancel {
		return e.Kind.String()
	}
	return fmt.Sprintf("%v(%q)", e.Kind, e.Path)
}

func (ConfigEvent) implementsWindowEvent()       {}
func (MoveEvent) implementsWindowEvent()         {}
func (StageEvent) implementsWindowEvent()        {}
func (FocusEvent) implementsWindowEvent()        {}
func (CloseRequestEvent) implementsWindowEvent() {}
func (DestroyEvent) implementsWindowEvent()      {}
func (FileEvent) implementsWindowEvent()         {}
