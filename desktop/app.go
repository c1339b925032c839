// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package desktop binds a native windowing library to Go: it owns the
// process-wide initialization and error handling, routes native window
// callbacks to Go closures and per-window event channels, and makes
// sure that a window outlives every render context taken from it.
//
// Native callbacks are delivered synchronously on the goroutine that
// runs the event pump ([App.PollEvents] and friends), which must be
// the goroutine locked to the main thread for real native libraries.
package desktop

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"cogentcore.org/glfwx/base/config"
	"cogentcore.org/glfwx/base/errors"
	"cogentcore.org/glfwx/base/logx"
	"cogentcore.org/glfwx/native"
)

// failedInits records the libraries that failed to initialize,
// mapped to their *InitError.
var failedInits sync.Map

// App is an initialized native library. There is normally one per
// process.
type App struct {
	lib native.Library

	// mu guards the fields below it up to tables.
	mu           sync.Mutex
	opts         config.Options
	errorHandler ErrorHandler

	// errorSlotMu serializes changes of the native error slot.
	errorSlotMu sync.Mutex

	tables arena

	// teardowns counts the callback tables freed by destroyed windows.
	teardowns atomic.Int64

	// active is the interceptor of the running unbuffered pump call.
	active atomic.Pointer[Interceptor]

	mainMu      sync.Mutex
	mainRunning bool
	mainQueue   []funcRun
}

// Init initializes the native library with the given options, which
// are [config.Defaults] if nil. The error handler is selected by the
// error policy of the options and is installed before the library is
// initialized, so that initialization errors are reported to it.
//
// Failure is returned as an [*InitError] and is final: later calls
// with the same library return the same error without retrying.
func Init(lib native.Library, opts *config.Options) (*App, error) {
	if err, ok := failedInits.Load(lib); ok {
		return nil, err.(*InitError)
	}
	if opts == nil {
		opts = config.Defaults()
	}
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("desktop: invalid options: %w", err)
	}
	logx.SetLevel(errors.Ignore1(logx.LevelFromString(opts.LogLevel)))
	a := &App{lib: lib, opts: *opts}
	a.SetErrorHandler(handlerForPolicy(opts.ErrorPolicy))
	if err := lib.Init(); err != nil {
		a.SetErrorHandler(nil)
		ie := &InitError{Err: err}
		actual, _ := failedInits.LoadOrStore(lib, ie)
		return nil, actual.(*InitError)
	}
	slog.Debug("desktop: initialized native library")
	return a, nil
}

// Terminate destroys the native library. Every window must have been
// destroyed before.
func (a *App) Terminate() {
	if n := a.tables.live(); n > 0 {
		panic(fmt.Sprintf("desktop: Terminate with %d live windows", n))
	}
	a.SetErrorHandler(nil)
	a.lib.Terminate()
	slog.Debug("desktop: terminated native library")
}

// Library returns the native library of the app.
func (a *App) Library() native.Library {
	return a.lib
}

// Options returns a copy of the options of the app.
func (a *App) Options() config.Options {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.opts
}

// ApplyOptions validates and applies the options: the error handler and
// log level change immediately, and the channel sizes apply to windows
// created afterwards.
func (a *App) ApplyOptions(opts *config.Options) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	a.mu.Lock()
	a.opts = *opts
	a.mu.Unlock()
	a.SetErrorHandler(handlerForPolicy(opts.ErrorPolicy))
	logx.SetLevel(errors.Ignore1(logx.LevelFromString(opts.LogLevel)))
	return nil
}

// WatchOptions applies the options in the given TOML or YAML file every
// time it is written, until ctx is done. Options are applied on the main
// loop when one is running. Files that fail to read or validate are
// logged and skipped.
func (a *App) WatchOptions(ctx context.Context, filename string) error {
	return config.Watch(ctx, filename, func(opts *config.Options) {
		a.GoRunOnMain(func() {
			if errors.Log(a.ApplyOptions(opts)) == nil {
				slog.Debug("desktop: applied options", "file", filename)
			}
		})
	})
}

// Time returns the native clock, in seconds.
func (a *App) Time() float64 {
	return a.lib.Time()
}

// PostEmptyEvent wakes up a blocked [App.WaitEvents]. It can be called
// from any goroutine.
func (a *App) PostEmptyEvent() {
	a.lib.PostEmptyEvent()
}

// PollEvents processes the pending native events and returns.
func (a *App) PollEvents() {
	a.lib.PollEvents()
}

// WaitEvents blocks until at least one native event is available and
// processes the pending native events.
func (a *App) WaitEvents() {
	a.lib.WaitEvents()
}

// WaitEventsTimeout is [App.WaitEvents] returning after at most the
// given timeout.
func (a *App) WaitEventsTimeout(timeout time.Duration) {
	a.lib.WaitEventsTimeout(timeout.Seconds())
}

// CurrentContext returns a shared view of the window whose context is
// current on the calling thread, or nil if there is none.
func (a *App) CurrentContext() *Window {
	h := a.lib.CurrentContext()
	if h == 0 {
		return nil
	}
	return a.view(h)
}
