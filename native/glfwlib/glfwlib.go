// Copyright (c) 2022, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !offscreen && ((darwin && !ios) || windows || (linux && !android) || dragonfly || openbsd)

// Package glfwlib implements [native.Library] on top of GLFW,
// through github.com/go-gl/glfw.
package glfwlib

import (
	"errors"
	"runtime"
	"sync"
	"unsafe"

	"cogentcore.org/glfwx/native"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	// glfw requires that Init, window management and the event pump
	// all happen on the main thread
	runtime.LockOSThread()
}

// Library is the GLFW [native.Library].
type Library struct {
	mu      sync.Mutex
	windows map[native.Handle]*glfw.Window
	errorCB native.ErrorFunc
}

var _ native.Library = (*Library)(nil)

// New returns a new GLFW library. Only one should be used per process.
func New() *Library {
	return &Library{windows: make(map[native.Handle]*glfw.Window)}
}

func (l *Library) Init() error {
	err := glfw.Init()
	l.report(err)
	return err
}

func (l *Library) Terminate() {
	glfw.Terminate()
}

func (l *Library) Time() float64 {
	return glfw.GetTime()
}

// SetErrorCallback sets the function that receives GLFW errors.
// go-gl/glfw reports GLFW errors as returned errors or panics rather
// than through a settable callback, so the Library forwards both.
func (l *Library) SetErrorCallback(cb native.ErrorFunc) {
	l.mu.Lock()
	l.errorCB = cb
	l.mu.Unlock()
}

// report forwards a GLFW error to the error callback, if any.
func (l *Library) report(err error) {
	if err == nil {
		return
	}
	l.mu.Lock()
	cb := l.errorCB
	l.mu.Unlock()
	if cb == nil {
		return
	}
	var gerr *glfw.Error
	if errors.As(err, &gerr) {
		cb(int(gerr.Code), gerr.Desc)
		return
	}
	cb(0, err.Error())
}

// guard runs f, turning a *glfw.Error panic into an error report.
func (l *Library) guard(f func()) {
	defer func() {
		if r := recover(); r != nil {
			if gerr, ok := r.(*glfw.Error); ok {
				l.report(gerr)
				return
			}
			panic(r)
		}
	}()
	f()
}

func (l *Library) CreateWindow(width, height int, title string, share native.Handle) (native.Handle, error) {
	glfw.WindowHint(glfw.Visible, glfw.True)
	glw, err := glfw.CreateWindow(width, height, title, nil, l.window(share))
	if err != nil {
		l.report(err)
		return 0, err
	}
	h := native.Handle(uintptr(glw.Handle()))
	l.mu.Lock()
	l.windows[h] = glw
	l.mu.Unlock()
	return h, nil
}

func (l *Library) DestroyWindow(h native.Handle) {
	glw := l.window(h)
	if glw == nil {
		return
	}
	l.mu.Lock()
	delete(l.windows, h)
	l.mu.Unlock()
	l.guard(glw.Destroy)
}

// window returns the glfw window for the handle, or nil.
func (l *Library) window(h native.Handle) *glfw.Window {
	if h == 0 {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.windows[h]
}

// handle returns the handle of the glfw window.
func (l *Library) handle(glw *glfw.Window) native.Handle {
	if glw == nil {
		return 0
	}
	return native.Handle(uintptr(glw.Handle()))
}

// SetUserPointer stores p in the GLFW window user pointer. p is an
// integer id, never the address of Go memory.
func (l *Library) SetUserPointer(h native.Handle, p uintptr) {
	if glw := l.window(h); glw != nil {
		glw.SetUserPointer(unsafe.Pointer(p))
	}
}

func (l *Library) UserPointer(h native.Handle) uintptr {
	if glw := l.window(h); glw != nil {
		return uintptr(glw.GetUserPointer())
	}
	return 0
}

func (l *Library) MakeContextCurrent(h native.Handle) {
	if glw := l.window(h); glw != nil {
		l.guard(glw.MakeContextCurrent)
		return
	}
	l.guard(glfw.DetachCurrentContext)
}

func (l *Library) CurrentContext() native.Handle {
	return l.handle(glfw.GetCurrentContext())
}

func (l *Library) SwapBuffers(h native.Handle) {
	if glw := l.window(h); glw != nil {
		l.guard(glw.SwapBuffers)
	}
}

func (l *Library) ShouldClose(h native.Handle) bool {
	if glw := l.window(h); glw != nil {
		return glw.ShouldClose()
	}
	return true
}

func (l *Library) SetShouldClose(h native.Handle, value bool) {
	if glw := l.window(h); glw != nil {
		glw.SetShouldClose(value)
	}
}

func (l *Library) PollEvents() {
	l.guard(glfw.PollEvents)
}

func (l *Library) WaitEvents() {
	l.guard(glfw.WaitEvents)
}

func (l *Library) WaitEventsTimeout(seconds float64) {
	l.guard(func() { glfw.WaitEventsTimeout(seconds) })
}

func (l *Library) PostEmptyEvent() {
	glfw.PostEmptyEvent()
}
