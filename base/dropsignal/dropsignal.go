// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dropsignal provides a one-shot signal that fires when the
// last of a set of clonable [Sender]s has been dropped. The owner of
// a resource keeps the [Receiver] and hands out sender clones to
// everything that borrows the resource; it can then wait until all
// borrowers are gone before freeing it.
package dropsignal

import (
	"context"
	"sync"
)

// state is shared by a [Receiver] and all of its senders.
type state struct {
	mu      sync.Mutex
	senders int
	done    chan struct{}
}

// Sender is one handle on the signal. Every Sender, including every
// clone, must be dropped for the signal to fire.
type Sender struct {
	st *state

	// dropped is guarded by st.mu
	dropped bool
}

// Receiver observes the signal.
type Receiver struct {
	st *state
}

// New returns a new signal with one live [Sender].
func New() (*Sender, *Receiver) {
	st := &state{senders: 1, done: make(chan struct{})}
	return &Sender{st: st}, &Receiver{st: st}
}

// Clone returns a new live [Sender] on the same signal.
// It panics if s has already been dropped.
func (s *Sender) Clone() *Sender {
	s.st.mu.Lock()
	defer s.st.mu.Unlock()
	if s.dropped {
		panic("dropsignal: Clone of a dropped Sender")
	}
	s.st.senders++
	return &Sender{st: s.st}
}

// Drop releases the sender. Only the first call on each sender has
// an effect; the signal fires when the last live sender is dropped.
func (s *Sender) Drop() {
	s.st.mu.Lock()
	defer s.st.mu.Unlock()
	if s.dropped {
		return
	}
	s.dropped = true
	s.st.senders--
	if s.st.senders == 0 {
		close(s.st.done)
	}
}

// Outstanding returns whether any sender is still live, without blocking.
func (r *Receiver) Outstanding() bool {
	select {
	case <-r.st.done:
		return false
	default:
		return true
	}
}

// Senders returns the number of live senders.
func (r *Receiver) Senders() int {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	return r.st.senders
}

// Done returns a channel that is closed when the last sender is dropped.
func (r *Receiver) Done() <-chan struct{} {
	return r.st.done
}

// Wait blocks until the last sender is dropped.
func (r *Receiver) Wait() {
	<-r.st.done
}

// WaitContext blocks until the last sender is dropped or ctx is done,
// in which case it returns the context error.
func (r *Receiver) WaitContext(ctx context.Context) error {
	select {
	case <-r.st.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
