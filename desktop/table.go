// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package desktop

import (
	"fmt"

	"cogentcore.org/glfwx/base/dropsignal"
	"cogentcore.org/glfwx/events"
	"cogentcore.org/glfwx/native"
)

// registration is the state of one event kind of a window.
type registration struct {
	hasCallback bool
	polling     bool
}

// registered returns whether the native slot must hold the trampoline.
func (r registration) registered() bool {
	return r.hasCallback || r.polling
}

// callbackTable is the per-window state reached by the trampolines
// through the native user pointer.
type callbackTable struct {
	// window is the owning window passed to the closures.
	window *Window

	// events is the sending side of the window's event channel.
	events *events.Channel

	// sender is the drop signal sender of the owning window.
	sender *dropsignal.Sender

	regs [events.KindsN]registration

	callbacks
}

// table recovers the callback table of the window with the given handle.
// A window without one is a lifecycle violation and panics.
func (a *App) table(h native.Handle) *callbackTable {
	id := a.lib.UserPointer(h)
	if id == 0 {
		panic(fmt.Sprintf("desktop: window %#x has no callback table", uintptr(h)))
	}
	t := a.tables.lookup(id)
	if t == nil {
		panic(fmt.Sprintf("desktop: window %#x refers to unknown callback table %d", uintptr(h), id))
	}
	return t
}

// install allocates the callback table of the window in the arena and
// stores its id in the native user pointer.
func (a *App) install(h native.Handle, t *callbackTable) {
	if a.lib.UserPointer(h) != 0 {
		panic(fmt.Sprintf("desktop: window %#x already has a callback table", uintptr(h)))
	}
	a.lib.SetUserPointer(h, a.tables.install(t))
}

// uninstall clears every registered native slot of the window, detaches
// the callback table from it and frees the table.
func (a *App) uninstall(h native.Handle) {
	id := a.lib.UserPointer(h)
	t := a.table(h)
	for kind := range events.KindsN {
		if t.regs[kind].registered() {
			a.register(h, kind, false)
		}
		t.regs[kind] = registration{}
	}
	t.callbacks = callbacks{}
	a.lib.SetUserPointer(h, 0)
	a.tables.free(id)
	a.teardowns.Add(1)
}

// enqueue stamps the event with the native clock, passes it through the
// active interceptor and sends it to the channel of the table.
func (a *App) enqueue(h native.Handle, t *callbackTable, ev events.Event) {
	te := events.Timed{Time: a.lib.Time(), Event: ev}
	if f := a.interceptor(); f != nil {
		var ok bool
		if te, ok = f(WindowID(h), te); !ok {
			return
		}
	}
	t.events.Send(te)
}

// update records the registration of the kind, and fills or clears the
// native slot when its registered state flips.
func (w *Window) update(t *callbackTable, kind events.Kinds, hasCallback, polling bool) {
	was := t.regs[kind].registered()
	t.regs[kind] = registration{hasCallback: hasCallback, polling: polling}
	if now := t.regs[kind].registered(); now != was {
		w.app.register(w.handle, kind, now)
	}
}

// SetPolling sets whether events of the given kind are sent to the
// event channel of the window.
func (w *Window) SetPolling(kind events.Kinds, on bool) {
	t := w.table()
	w.update(t, kind, t.regs[kind].hasCallback, on)
}

// IsPolling returns whether events of the given kind are sent to the
// event channel of the window.
func (w *Window) IsPolling(kind events.Kinds) bool {
	return w.table().regs[kind].polling
}

// SetAllPolling sets polling for every event kind.
func (w *Window) SetAllPolling(on bool) {
	for kind := range events.KindsN {
		w.SetPolling(kind, on)
	}
}

// Registered returns whether the native slot for the given kind
// currently holds the trampoline, which is the case when a callback
// is set or polling is on.
func (w *Window) Registered(kind events.Kinds) bool {
	return w.table().regs[kind].registered()
}
