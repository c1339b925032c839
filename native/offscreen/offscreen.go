// Copyright 2023 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package offscreen provides a headless [native.Library] that keeps
// all windows in memory. Native events are injected with the Send*
// methods and delivered, like a real native library would, from
// inside PollEvents and WaitEvents to whatever callback is registered
// in the slot at delivery time. It is used for tests and for running
// without a display.
package offscreen

import (
	"errors"
	"sync"
	"time"

	"cogentcore.org/glfwx/native"
)

// Library is the offscreen [native.Library].
type Library struct {
	// InitErr, if set, is returned from Init.
	InitErr error

	// CreateErr, if set, is returned from CreateWindow.
	CreateErr error

	mu          sync.Mutex
	start       time.Time
	next        native.Handle
	windows     map[native.Handle]*window
	current     native.Handle
	errorCB     native.ErrorFunc
	pending     []func()
	wake        chan struct{}
	initialized bool
	terminated  bool
	created     int
	destroyed   map[native.Handle]bool
}

var _ native.Library = (*Library)(nil)

// window is the native side of one window: the user pointer and the
// callback slots.
type window struct {
	user        uintptr
	share       native.Handle
	shouldClose bool

	pos             native.PosFunc
	size            native.SizeFunc
	close           native.CloseFunc
	refresh         native.RefreshFunc
	focus           native.FocusFunc
	iconify         native.IconifyFunc
	framebufferSize native.FramebufferSizeFunc
	mouseButton     native.MouseButtonFunc
	cursorPos       native.CursorPosFunc
	cursorEnter     native.CursorEnterFunc
	scroll          native.ScrollFunc
	key             native.KeyFunc
	char            native.CharFunc
	charMods        native.CharModsFunc
	drop            native.DropFunc
	maximize        native.MaximizeFunc
	contentScale    native.ContentScaleFunc
}

// New returns a new offscreen library.
func New() *Library {
	return &Library{
		start:     time.Now(),
		windows:   make(map[native.Handle]*window),
		wake:      make(chan struct{}, 1),
		destroyed: make(map[native.Handle]bool),
	}
}

func (l *Library) Init() error {
	if l.InitErr != nil {
		l.ReportError(native.CodePlatformError, l.InitErr.Error())
		return l.InitErr
	}
	l.mu.Lock()
	l.initialized = true
	l.terminated = false
	l.mu.Unlock()
	return nil
}

func (l *Library) Terminate() {
	l.mu.Lock()
	defer l.mu.Unlock()
	for h := range l.windows {
		l.destroyed[h] = true
	}
	clear(l.windows)
	l.pending = nil
	l.initialized = false
	l.terminated = true
}

// Terminated returns whether Terminate has been called since the last Init.
func (l *Library) Terminated() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.terminated
}

func (l *Library) Time() float64 {
	return time.Since(l.start).Seconds()
}

func (l *Library) SetErrorCallback(cb native.ErrorFunc) {
	l.mu.Lock()
	l.errorCB = cb
	l.mu.Unlock()
}

// ErrorCallbackRegistered returns whether the error slot is filled.
func (l *Library) ErrorCallbackRegistered() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.errorCB != nil
}

// ReportError calls the error callback synchronously, the way the
// native library reports an error from inside the failing call.
func (l *Library) ReportError(code int, description string) {
	l.mu.Lock()
	cb := l.errorCB
	l.mu.Unlock()
	if cb != nil {
		cb(code, description)
	}
}

func (l *Library) CreateWindow(width, height int, title string, share native.Handle) (native.Handle, error) {
	l.mu.Lock()
	initialized := l.initialized
	l.mu.Unlock()
	if !initialized {
		const desc = "the library is not initialized"
		l.ReportError(native.CodeNotInitialized, desc)
		return 0, errors.New(desc)
	}
	if l.CreateErr != nil {
		l.ReportError(native.CodePlatformError, l.CreateErr.Error())
		return 0, l.CreateErr
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.next++
	h := l.next
	l.windows[h] = &window{share: share}
	l.created++
	return h, nil
}

func (l *Library) DestroyWindow(h native.Handle) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.windows[h]; !ok {
		return
	}
	delete(l.windows, h)
	l.destroyed[h] = true
	if l.current == h {
		l.current = 0
	}
}

// Created returns the number of windows created.
func (l *Library) Created() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.created
}

// Destroyed returns the number of windows destroyed.
func (l *Library) Destroyed() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.destroyed)
}

// IsDestroyed returns whether the window has been destroyed.
func (l *Library) IsDestroyed(h native.Handle) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.destroyed[h]
}

// Live returns the number of windows that have not been destroyed.
func (l *Library) Live() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.windows)
}

// Shared returns the window whose context h was created sharing.
func (l *Library) Shared(h native.Handle) native.Handle {
	l.mu.Lock()
	defer l.mu.Unlock()
	if w := l.windows[h]; w != nil {
		return w.share
	}
	return 0
}

// with calls f with the window under the lock, if it exists.
func (l *Library) with(h native.Handle, f func(w *window)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if w := l.windows[h]; w != nil {
		f(w)
	}
}

// slots returns a copy of the callback slots of the window;
// the zero value if it does not exist.
func (l *Library) slots(h native.Handle) window {
	l.mu.Lock()
	defer l.mu.Unlock()
	if w := l.windows[h]; w != nil {
		return *w
	}
	return window{}
}

func (l *Library) SetUserPointer(h native.Handle, p uintptr) {
	l.with(h, func(w *window) { w.user = p })
}

func (l *Library) UserPointer(h native.Handle) uintptr {
	return l.slots(h).user
}

func (l *Library) MakeContextCurrent(h native.Handle) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if h == 0 || l.windows[h] != nil {
		l.current = h
	}
}

func (l *Library) CurrentContext() native.Handle {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.current
}

func (l *Library) SwapBuffers(h native.Handle) {}

func (l *Library) ShouldClose(h native.Handle) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if w := l.windows[h]; w != nil {
		return w.shouldClose
	}
	return true
}

func (l *Library) SetShouldClose(h native.Handle, value bool) {
	l.with(h, func(w *window) { w.shouldClose = value })
}
