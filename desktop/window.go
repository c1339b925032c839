// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package desktop

//go:generate enumgen

import (
	"context"
	"fmt"
	"iter"
	"log/slog"
	"sync"
	"sync/atomic"

	"cogentcore.org/glfwx/base/dropsignal"
	"cogentcore.org/glfwx/events"
	"cogentcore.org/glfwx/native"
)

// WindowID identifies a window in the events seen by an [Interceptor].
// It is the value of the native handle.
type WindowID uintptr

// States are the lifecycle states of a [Window].
type States int32 //enums:enum

const (
	// Created is the state while the window is being constructed.
	Created States = iota

	// Live is the state of a usable window.
	Live

	// Closing is the state after Destroy has been called and the
	// window has dropped its own signal sender.
	Closing

	// WaitingForContexts is the state while Destroy waits for the
	// render contexts of the window to be released.
	WaitingForContexts

	// Destroyed is the final state.
	Destroyed
)

// Window is a native window with its event channel. A window created by
// [App.NewWindow] or [Window.NewShared] owns the native window; a shared
// view returned by [App.CurrentContext] does not, and destroying it
// leaves the native window and its callbacks in place.
type Window struct {
	app    *App
	handle native.Handle
	shared bool

	// events is the receiving side of the event channel.
	events *events.Channel

	// sender is the drop signal sender of the owning window, cloned into
	// every render context. receiver is nil for shared views.
	sender   *dropsignal.Sender
	receiver *dropsignal.Receiver

	state atomic.Int32

	// destroyMu serializes Destroy and DestroyContext.
	destroyMu sync.Mutex
}

// NewWindow creates a window with a content area of the given size, in
// screen coordinates.
func (a *App) NewWindow(width, height int, title string) (*Window, error) {
	return a.newWindow(width, height, title, 0)
}

// NewShared creates a window whose context shares its objects with the
// context of w.
func (w *Window) NewShared(width, height int, title string) (*Window, error) {
	w.checkLive()
	return w.app.newWindow(width, height, title, w.handle)
}

func (a *App) newWindow(width, height int, title string, share native.Handle) (*Window, error) {
	h, err := a.lib.CreateWindow(width, height, title, share)
	if err != nil {
		return nil, fmt.Errorf("desktop: creating window %q: %w", title, err)
	}
	opts := a.Options()
	w := &Window{app: a, handle: h}
	w.state.Store(int32(Created))
	w.events = events.NewChannel(opts.RingCapacity, opts.RingMaxLen)
	w.sender, w.receiver = dropsignal.New()
	a.install(h, &callbackTable{window: w, events: w.events, sender: w.sender})
	w.state.Store(int32(Live))
	slog.Debug("desktop: created window", "id", WindowID(h), "title", title, "width", width, "height", height)
	return w, nil
}

// view returns a shared view of the window with the given handle, which
// must have a callback table. Render contexts taken from the view hold
// back the destruction of the owning window.
func (a *App) view(h native.Handle) *Window {
	t := a.table(h)
	w := &Window{app: a, handle: h, shared: true, events: t.events, sender: t.sender}
	w.state.Store(int32(Live))
	return w
}

// ID returns the identifier of the window.
func (w *Window) ID() WindowID {
	return WindowID(w.handle)
}

// Handle returns the native handle of the window.
func (w *Window) Handle() native.Handle {
	return w.handle
}

// IsShared returns whether w is a shared view that does not own the
// native window.
func (w *Window) IsShared() bool {
	return w.shared
}

// State returns the lifecycle state of the window.
func (w *Window) State() States {
	return States(w.state.Load())
}

// checkLive panics unless the window is live.
func (w *Window) checkLive() {
	if s := w.State(); s != Live {
		panic(fmt.Sprintf("desktop: use of window %#x in state %v", uintptr(w.handle), s))
	}
}

// table returns the callback table of the window, which must be live.
func (w *Window) table() *callbackTable {
	w.checkLive()
	return w.app.table(w.handle)
}

// NextEvent removes and returns the oldest buffered event of the window.
func (w *Window) NextEvent() (events.Timed, bool) {
	return w.events.Receive()
}

// Events returns an iterator that removes and yields the buffered events
// of the window in the order they were received, stopping when none are
// left.
func (w *Window) Events() iter.Seq[events.Timed] {
	return w.events.Drain()
}

// PendingEvents returns the number of buffered events of the window.
func (w *Window) PendingEvents() int {
	return w.events.Len()
}

// MakeCurrent makes the context of the window current on the calling
// thread.
func (w *Window) MakeCurrent() {
	w.checkLive()
	w.app.lib.MakeContextCurrent(w.handle)
}

// IsCurrent returns whether the context of the window is current on the
// calling thread.
func (w *Window) IsCurrent() bool {
	return w.app.lib.CurrentContext() == w.handle
}

// SwapBuffers swaps the front and back buffers of the window.
func (w *Window) SwapBuffers() {
	w.checkLive()
	w.app.lib.SwapBuffers(w.handle)
}

// ShouldClose returns the close flag of the window, which is set when
// the user attempts to close it.
func (w *Window) ShouldClose() bool {
	w.checkLive()
	return w.app.lib.ShouldClose(w.handle)
}

// SetShouldClose sets the close flag of the window.
func (w *Window) SetShouldClose(value bool) {
	w.checkLive()
	w.app.lib.SetShouldClose(w.handle, value)
}

// RenderContext returns a new render context of the window, which keeps
// the window from being destroyed until it is released.
func (w *Window) RenderContext() *RenderContext {
	w.checkLive()
	if w.shared {
		if s := w.app.table(w.handle).window.State(); s != Live {
			panic(fmt.Sprintf("desktop: RenderContext of window %#x whose owner is in state %v", uintptr(w.handle), s))
		}
	}
	return &RenderContext{lib: w.app.lib, handle: w.handle, sender: w.sender.Clone()}
}

// Destroy destroys the window. It blocks until every render context of
// the window has been released. Destroying a window twice panics.
// Destroying a shared view only ends the use of the view: it neither
// waits nor releases anything of the owning window.
func (w *Window) Destroy() {
	w.destroy(nil)
}

// DestroyContext is [Window.Destroy] with the wait for render contexts
// bounded by ctx. If ctx is done first, it returns ctx.Err() and the
// window stays in the WaitingForContexts state; a later Destroy or
// DestroyContext resumes the wait.
func (w *Window) DestroyContext(ctx context.Context) error {
	return w.destroy(ctx)
}

func (w *Window) destroy(ctx context.Context) error {
	w.destroyMu.Lock()
	defer w.destroyMu.Unlock()
	if w.shared {
		if s := w.State(); s != Live {
			panic(fmt.Sprintf("desktop: Destroy of shared view %#x in state %v", uintptr(w.handle), s))
		}
		w.state.Store(int32(Destroyed))
		slog.Debug("desktop: destroyed shared view", "id", w.ID())
		return nil
	}
	switch s := w.State(); s {
	case Live:
		w.state.Store(int32(Closing))
		w.sender.Drop()
		w.state.Store(int32(WaitingForContexts))
	case WaitingForContexts:
	default:
		panic(fmt.Sprintf("desktop: Destroy of window %#x in state %v", uintptr(w.handle), s))
	}
	if w.receiver.Outstanding() {
		slog.Debug("desktop: waiting for render contexts", "id", w.ID(), "contexts", w.receiver.Senders())
		if ctx == nil {
			w.receiver.Wait()
		} else if err := w.receiver.WaitContext(ctx); err != nil {
			return err
		}
	}
	w.app.uninstall(w.handle)
	w.app.lib.DestroyWindow(w.handle)
	w.state.Store(int32(Destroyed))
	slog.Debug("desktop: destroyed window", "id", w.ID())
	return nil
}
