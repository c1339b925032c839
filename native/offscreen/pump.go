// Copyright 2023 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package offscreen

import "time"

// queue adds a native invocation to be delivered by the next poll or
// wait, and wakes a waiting thread.
func (l *Library) queue(f func()) {
	l.mu.Lock()
	l.pending = append(l.pending, f)
	l.mu.Unlock()
	l.signal()
}

func (l *Library) signal() {
	select {
	case l.wake <- struct{}{}:
	default:
	}
}

// deliver runs everything queued so far; invocations queued while
// delivering wait for the next poll. It returns the number run.
func (l *Library) deliver() int {
	l.mu.Lock()
	fs := l.pending
	l.pending = nil
	l.mu.Unlock()
	for _, f := range fs {
		f()
	}
	return len(fs)
}

// Pending returns the number of native invocations waiting for a poll.
func (l *Library) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.pending)
}

func (l *Library) PollEvents() {
	// a wake token left by a send has been consumed by this poll
	select {
	case <-l.wake:
	default:
	}
	l.deliver()
}

func (l *Library) WaitEvents() {
	if l.Pending() == 0 {
		<-l.wake
	}
	l.PollEvents()
}

func (l *Library) WaitEventsTimeout(seconds float64) {
	if l.Pending() == 0 {
		tm := time.NewTimer(time.Duration(seconds * float64(time.Second)))
		defer tm.Stop()
		select {
		case <-l.wake:
		case <-tm.C:
		}
	}
	l.PollEvents()
}

func (l *Library) PostEmptyEvent() {
	l.signal()
}
