// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

//go:generate enumgen

// Kinds is the kind of a native window event. There is exactly one
// native callback slot per kind per window, so it is also the unit at
// which callbacks and polling are registered.
type Kinds int32 //enums:enum

const (
	// Pos is sent when the window is moved; it carries the new
	// position of the upper-left corner of the content area.
	Pos Kinds = iota

	// Size is sent when the window is resized, in screen coordinates.
	Size

	// Close is sent when the user attempts to close the window.
	Close

	// Refresh is sent when the content area needs to be redrawn.
	Refresh

	// Focus is sent when the window gains or loses input focus.
	Focus

	// Iconify is sent when the window is iconified or restored.
	Iconify

	// FramebufferSize is sent when the framebuffer is resized, in pixels.
	FramebufferSize

	// MouseButtonKind is sent when a mouse button is pressed or released.
	MouseButtonKind

	// CursorPos is sent when the cursor moves over the content area.
	CursorPos

	// CursorEnter is sent when the cursor enters or leaves the content area.
	CursorEnter

	// Scroll is sent for mouse wheel and touchpad scrolling.
	Scroll

	// KeyKind is sent when a physical key is pressed, repeated or released.
	KeyKind

	// Char is sent for Unicode character input.
	Char

	// CharMods is sent for Unicode character input with modifier keys.
	CharMods

	// FileDrop is sent when files are dropped onto the window.
	FileDrop

	// Maximize is sent when the window is maximized or restored.
	Maximize

	// ContentScale is sent when the content scale of the window changes.
	ContentScale
)
