// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package desktop

import (
	"time"

	"cogentcore.org/glfwx/events"
)

// Interceptor sees every event before it is sent to the event channel
// of its window, during one of the unbuffered event pump calls such as
// [App.PollEventsUnbuffered]. It returns the event to send, which may
// be modified, and false to drop it.
type Interceptor func(id WindowID, ev events.Timed) (events.Timed, bool)

// intercept installs the interceptor for the duration of one pump call
// and returns the function that removes it. Nesting pump calls with an
// interceptor panics.
func (a *App) intercept(f Interceptor) (release func()) {
	if f == nil {
		panic("desktop: nil interceptor")
	}
	if !a.active.CompareAndSwap(nil, &f) {
		panic("desktop: unbuffered event processing is already active")
	}
	return func() {
		a.active.Store(nil)
	}
}

// interceptor returns the active interceptor, or nil.
func (a *App) interceptor() Interceptor {
	if p := a.active.Load(); p != nil {
		return *p
	}
	return nil
}

// PollEventsUnbuffered is [App.PollEvents] with every event passed
// through f before it is sent to its window.
func (a *App) PollEventsUnbuffered(f Interceptor) {
	defer a.intercept(f)()
	a.lib.PollEvents()
}

// WaitEventsUnbuffered is [App.WaitEvents] with every event passed
// through f before it is sent to its window.
func (a *App) WaitEventsUnbuffered(f Interceptor) {
	defer a.intercept(f)()
	a.lib.WaitEvents()
}

// WaitEventsTimeoutUnbuffered is [App.WaitEventsTimeout] with every
// event passed through f before it is sent to its window.
func (a *App) WaitEventsTimeoutUnbuffered(timeout time.Duration, f Interceptor) {
	defer a.intercept(f)()
	a.lib.WaitEventsTimeout(timeout.Seconds())
}
