// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events defines the typed window events delivered by the
// native trampolines, and the [Channel] that buffers them between a
// poll and a later drain.
package events

import "fmt"

// Event is one typed window event. The concrete type is determined
// by [Event.Kind]; use a type switch to get at the payload.
type Event interface {
	Kind() Kinds
}

// Timed is an [Event] paired with the native clock reading, in seconds,
// taken when the event was received by the trampoline.
type Timed struct {
	Time  float64
	Event Event
}

func (t Timed) String() string {
	return fmt.Sprintf("%.4f %v %+v", t.Time, t.Event.Kind(), t.Event)
}

// PosEvent is the new position of the upper-left corner of the content area.
type PosEvent struct {
	X, Y int
}

// SizeEvent is the new size of the content area, in screen coordinates.
type SizeEvent struct {
	Width, Height int
}

// CloseEvent is a request to close the window.
type CloseEvent struct{}

// RefreshEvent is a request to redraw the content area.
type RefreshEvent struct{}

// FocusEvent reports a change of input focus.
type FocusEvent struct {
	Focused bool
}

// IconifyEvent reports the window being iconified or restored.
type IconifyEvent struct {
	Iconified bool
}

// FramebufferSizeEvent is the new size of the framebuffer, in pixels.
type FramebufferSizeEvent struct {
	Width, Height int
}

// MouseButtonEvent is a mouse button press or release.
type MouseButtonEvent struct {
	Button MouseButton
	Action Action
	Mods   Modifiers
}

// CursorPosEvent is the cursor position relative to the content area.
type CursorPosEvent struct {
	X, Y float64
}

// CursorEnterEvent reports the cursor entering or leaving the content area.
type CursorEnterEvent struct {
	Entered bool
}

// ScrollEvent is a scroll offset along each axis.
type ScrollEvent struct {
	X, Y float64
}

// KeyEvent is a physical key press, repeat or release.
type KeyEvent struct {
	Key      Key
	Scancode int
	Action   Action
	Mods     Modifiers
}

// CharEvent is a Unicode code point of text input.
type CharEvent struct {
	Char rune
}

// CharModsEvent is a Unicode code point of text input together with
// the modifier keys held when it was typed.
type CharModsEvent struct {
	Char rune
	Mods Modifiers
}

// FileDropEvent lists the paths of files dropped onto the window.
type FileDropEvent struct {
	Paths []string
}

// MaximizeEvent reports the window being maximized or restored.
type MaximizeEvent struct {
	Maximized bool
}

// ContentScaleEvent is the new content scale of the window.
type ContentScaleEvent struct {
	X, Y float32
}

func (PosEvent) Kind() Kinds             { return Pos }
func (SizeEvent) Kind() Kinds            { return Size }
func (CloseEvent) Kind() Kinds           { return Close }
func (RefreshEvent) Kind() Kinds         { return Refresh }
func (FocusEvent) Kind() Kinds           { return Focus }
func (IconifyEvent) Kind() Kinds         { return Iconify }
func (FramebufferSizeEvent) Kind() Kinds { return FramebufferSize }
func (MouseButtonEvent) Kind() Kinds     { return MouseButtonKind }
func (CursorPosEvent) Kind() Kinds       { return CursorPos }
func (CursorEnterEvent) Kind() Kinds     { return CursorEnter }
func (ScrollEvent) Kind() Kinds          { return Scroll }
func (KeyEvent) Kind() Kinds             { return KeyKind }
func (CharEvent) Kind() Kinds            { return Char }
func (CharModsEvent) Kind() Kinds        { return CharMods }
func (FileDropEvent) Kind() Kinds        { return FileDrop }
func (MaximizeEvent) Kind() Kinds        { return Maximize }
func (ContentScaleEvent) Kind() Kinds    { return ContentScale }
