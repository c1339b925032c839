// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package desktop

import (
	"context"
)

// funcRun is a function to run on the main loop and a channel to
// signal on when it is finished running.
type funcRun struct {
	f    func()
	done chan struct{}
}

// MainLoop runs the event pump on the calling goroutine, which must be
// the main thread for real native libraries, until ctx is done. Between
// pump calls it runs the functions queued by [App.RunOnMain].
func (a *App) MainLoop(ctx context.Context) {
	a.mainMu.Lock()
	if a.mainRunning {
		a.mainMu.Unlock()
		panic("desktop: MainLoop is already running")
	}
	a.mainRunning = true
	a.mainMu.Unlock()

	stop := context.AfterFunc(ctx, a.lib.PostEmptyEvent)
	defer stop()
	defer func() {
		a.mainMu.Lock()
		a.mainRunning = false
		a.mainMu.Unlock()
		a.runMainQueue()
	}()

	for {
		a.runMainQueue()
		if ctx.Err() != nil {
			return
		}
		a.lib.WaitEvents()
	}
}

// RunOnMain runs f on the main loop and waits for it to finish.
// If no main loop is running, f runs on the calling goroutine.
// It must not be called from the main loop itself, which includes
// the callbacks of windows.
func (a *App) RunOnMain(f func()) {
	done := make(chan struct{})
	if !a.queueMain(funcRun{f: f, done: done}) {
		f()
		return
	}
	<-done
}

// GoRunOnMain runs f on the main loop without waiting for it.
// If no main loop is running, f runs on the calling goroutine.
func (a *App) GoRunOnMain(f func()) {
	if !a.queueMain(funcRun{f: f}) {
		f()
	}
}

// queueMain adds the function to the main queue and wakes up the event
// pump. It returns false if no main loop is running.
func (a *App) queueMain(fr funcRun) bool {
	a.mainMu.Lock()
	if !a.mainRunning {
		a.mainMu.Unlock()
		return false
	}
	a.mainQueue = append(a.mainQueue, fr)
	a.mainMu.Unlock()
	a.lib.PostEmptyEvent()
	return true
}

func (a *App) runMainQueue() {
	a.mainMu.Lock()
	queue := a.mainQueue
	a.mainQueue = nil
	a.mainMu.Unlock()
	for _, fr := range queue {
		fr.f()
		if fr.done != nil {
			close(fr.done)
		}
	}
}
