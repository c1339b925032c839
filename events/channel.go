// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"iter"
	"sync"
)

const (
	// DefaultRingCapacity is the initial number of ring buffer slots
	// used when [NewChannel] is given a non-positive capacity.
	DefaultRingCapacity = 16

	// DefaultRingMaxLen is the default hard maximum length of the
	// ring buffer, beyond which events go to the overflow queue.
	DefaultRingMaxLen = 1024
)

// Channel hands [Timed] events from the trampolines, which run inside
// a native poll, to a later drain, possibly on another goroutine.
// It is a mutex-guarded ring buffer that grows up to a hard maximum
// length, backed by an unbounded overflow [Queue]. Sending never blocks
// and never fails, so a trampoline never has to wait on the consumer.
//
// Events are received in exactly the order they were sent, including
// when a producer and a consumer run concurrently across the overflow
// boundary: while the overflow queue holds anything, new events are
// sent to it as well, so every buffered event is older than every
// overflowed one, and the buffer is always drained first.
type Channel struct {
	mu     sync.Mutex
	buf    []Timed
	head   int
	n      int
	maxLen int

	overflow Queue[Timed]
}

// NewChannel returns a new [Channel] with the given initial ring
// capacity and hard maximum ring length.
func NewChannel(capacity, maxLen int) *Channel {
	if capacity <= 0 {
		capacity = DefaultRingCapacity
	}
	if maxLen < capacity {
		maxLen = capacity
	}
	ch := &Channel{buf: make([]Timed, capacity), maxLen: maxLen}
	ch.overflow.Init()
	return ch
}

// Send adds the event to the end of the channel.
func (ch *Channel) Send(ev Timed) {
	ch.mu.Lock()
	defer ch.mu.Unlock()
	if ch.n >= ch.maxLen || ch.overflow.Len() > 0 {
		ch.overflow.Send(ev)
		return
	}
	if ch.n == len(ch.buf) {
		ch.grow()
	}
	ch.buf[(ch.head+ch.n)%len(ch.buf)] = ev
	ch.n++
}

// grow doubles the ring, capped at maxLen, unwrapping it in the process.
// Must be called with mu held and with n < maxLen.
func (ch *Channel) grow() {
	sz := min(2*len(ch.buf), ch.maxLen)
	nb := make([]Timed, sz)
	k := copy(nb, ch.buf[ch.head:])
	copy(nb[k:], ch.buf[:ch.head])
	ch.buf = nb
	ch.head = 0
}

// Receive removes and returns the oldest event, returning false
// if there is none.
func (ch *Channel) Receive() (Timed, bool) {
	ch.mu.Lock()
	defer ch.mu.Unlock()
	if ch.n > 0 {
		ev := ch.buf[ch.head]
		ch.buf[ch.head] = Timed{}
		ch.head = (ch.head + 1) % len(ch.buf)
		ch.n--
		return ev, true
	}
	return ch.overflow.Next()
}

// Drain returns an iterator that receives events until the channel
// is empty.
func (ch *Channel) Drain() iter.Seq[Timed] {
	return func(yield func(Timed) bool) {
		for {
			ev, ok := ch.Receive()
			if !ok || !yield(ev) {
				return
			}
		}
	}
}

// Len returns the total number of events waiting in the channel.
func (ch *Channel) Len() int {
	ch.mu.Lock()
	defer ch.mu.Unlock()
	return ch.n + int(ch.overflow.Len())
}

// Cap returns the current number of ring buffer slots.
func (ch *Channel) Cap() int {
	ch.mu.Lock()
	defer ch.mu.Unlock()
	return len(ch.buf)
}

// MaxLen returns the hard maximum length of the ring buffer.
func (ch *Channel) MaxLen() int {
	return ch.maxLen
}

// Overflowed returns the number of events currently held in the
// overflow queue.
func (ch *Channel) Overflowed() uint64 {
	return ch.overflow.Len()
}
