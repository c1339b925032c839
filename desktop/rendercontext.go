// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package desktop

import (
	"cogentcore.org/glfwx/base/dropsignal"
	"cogentcore.org/glfwx/native"
)

// Context is the rendering surface of a window.
type Context interface {
	ID() WindowID
	MakeCurrent()
	IsCurrent() bool
	SwapBuffers()
	ShouldClose() bool
	SetShouldClose(value bool)
}

var (
	_ Context = (*Window)(nil)
	_ Context = (*RenderContext)(nil)
)

// RenderContext is a handle to the context of a window that can be moved
// to a rendering goroutine. The window cannot finish being destroyed
// until every render context taken from it has been released.
type RenderContext struct {
	lib    native.Library
	handle native.Handle
	sender *dropsignal.Sender
}

// ID returns the identifier of the window of the context.
func (c *RenderContext) ID() WindowID {
	return WindowID(c.handle)
}

// MakeCurrent makes the context current on the calling thread.
func (c *RenderContext) MakeCurrent() {
	c.lib.MakeContextCurrent(c.handle)
}

// IsCurrent returns whether the context is current on the calling thread.
func (c *RenderContext) IsCurrent() bool {
	return c.lib.CurrentContext() == c.handle
}

// SwapBuffers swaps the front and back buffers of the window.
func (c *RenderContext) SwapBuffers() {
	c.lib.SwapBuffers(c.handle)
}

// ShouldClose returns the close flag of the window.
func (c *RenderContext) ShouldClose() bool {
	return c.lib.ShouldClose(c.handle)
}

// SetShouldClose sets the close flag of the window.
func (c *RenderContext) SetShouldClose(value bool) {
	c.lib.SetShouldClose(c.handle, value)
}

// Clone returns a new render context of the same window. Cloning a
// released context panics.
func (c *RenderContext) Clone() *RenderContext {
	return &RenderContext{lib: c.lib, handle: c.handle, sender: c.sender.Clone()}
}

// Release releases the context. It can be called more than once.
func (c *RenderContext) Release() {
	c.sender.Drop()
}
