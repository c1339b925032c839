// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package native describes the native windowing library that the
// desktop package binds: window creation and destruction, one callback
// slot per event kind per window, an opaque user pointer per window,
// the event pump, and a process-wide error slot.
//
// Implementations live in the glfwlib (a real GLFW build) and
// offscreen (headless, for tests) subpackages.
package native

// Handle is an opaque native window pointer. The zero Handle is no window.
type Handle uintptr

// Callback function types, one per native callback slot. They receive
// the raw native argument values.
type (
	PosFunc             func(h Handle, x, y int)
	SizeFunc            func(h Handle, width, height int)
	CloseFunc           func(h Handle)
	RefreshFunc         func(h Handle)
	FocusFunc           func(h Handle, focused bool)
	IconifyFunc         func(h Handle, iconified bool)
	FramebufferSizeFunc func(h Handle, width, height int)
	MouseButtonFunc     func(h Handle, button, action, mods int)
	CursorPosFunc       func(h Handle, x, y float64)
	CursorEnterFunc     func(h Handle, entered bool)
	ScrollFunc          func(h Handle, xoff, yoff float64)
	KeyFunc             func(h Handle, key, scancode, action, mods int)
	CharFunc            func(h Handle, char rune)
	CharModsFunc        func(h Handle, char rune, mods int)
	DropFunc            func(h Handle, names []string)
	MaximizeFunc        func(h Handle, maximized bool)
	ContentScaleFunc    func(h Handle, x, y float32)

	// ErrorFunc receives native errors; it is process-wide rather
	// than per window.
	ErrorFunc func(code int, description string)
)

// Library is the native windowing library. Unless documented
// otherwise, methods must be called from the main thread, and
// callbacks are only ever invoked synchronously from inside
// PollEvents, WaitEvents or WaitEventsTimeout.
//
// Each Set*Callback method fills the single native slot for that
// event kind on the given window; passing nil clears it.
type Library interface {
	Init() error
	Terminate()

	// Time returns the native clock, in seconds. Safe from any thread.
	Time() float64

	SetErrorCallback(cb ErrorFunc)

	CreateWindow(width, height int, title string, share Handle) (Handle, error)
	DestroyWindow(h Handle)

	SetUserPointer(h Handle, p uintptr)
	UserPointer(h Handle) uintptr

	// MakeContextCurrent makes the context of h current on the calling
	// thread; a zero handle detaches the current context.
	MakeContextCurrent(h Handle)
	CurrentContext() Handle
	SwapBuffers(h Handle)
	ShouldClose(h Handle) bool
	SetShouldClose(h Handle, value bool)

	PollEvents()
	WaitEvents()
	WaitEventsTimeout(seconds float64)

	// PostEmptyEvent wakes a thread blocked in WaitEvents.
	// Safe from any thread.
	PostEmptyEvent()

	SetPosCallback(h Handle, cb PosFunc)
	SetSizeCallback(h Handle, cb SizeFunc)
	SetCloseCallback(h Handle, cb CloseFunc)
	SetRefreshCallback(h Handle, cb RefreshFunc)
	SetFocusCallback(h Handle, cb FocusFunc)
	SetIconifyCallback(h Handle, cb IconifyFunc)
	SetFramebufferSizeCallback(h Handle, cb FramebufferSizeFunc)
	SetMouseButtonCallback(h Handle, cb MouseButtonFunc)
	SetCursorPosCallback(h Handle, cb CursorPosFunc)
	SetCursorEnterCallback(h Handle, cb CursorEnterFunc)
	SetScrollCallback(h Handle, cb ScrollFunc)
	SetKeyCallback(h Handle, cb KeyFunc)
	SetCharCallback(h Handle, cb CharFunc)
	SetCharModsCallback(h Handle, cb CharModsFunc)
	SetDropCallback(h Handle, cb DropFunc)
	SetMaximizeCallback(h Handle, cb MaximizeFunc)
	SetContentScaleCallback(h Handle, cb ContentScaleFunc)
}
