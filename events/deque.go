// Copyright 2018 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"sync"
	"sync/atomic"
)

// Queue is an unbounded lock-free FIFO freelist-based queue.
// It must be initialized using [Queue.Init] before use.
// It is based on https://github.com/fyne-io/fyne/blob/master/internal/async/queue_canvasobject.go
type Queue[T any] struct {
	head atomic.Pointer[queueNode[T]]
	tail atomic.Pointer[queueNode[T]]
	len  atomic.Uint64
	pool sync.Pool
}

type queueNode[T any] struct {
	next atomic.Pointer[queueNode[T]]
	v    T
}

// Init initializes the queue.
func (q *Queue[T]) Init() {
	q.pool.New = func() any { return &queueNode[T]{} }
	head := &queueNode[T]{}
	q.head.Store(head)
	q.tail.Store(head)
}

// Next removes and returns the next value in the queue.
// It returns false if the queue is empty.
func (q *Queue[T]) Next() (T, bool) {
	var first, last, firstnext *queueNode[T]
	for {
		first = q.head.Load()
		last = q.tail.Load()
		firstnext = first.next.Load()
		if first == q.head.Load() {
			if first == last {
				if firstnext == nil {
					var zero T
					return zero, false
				}

				q.tail.CompareAndSwap(last, firstnext)
			} else {
				v := firstnext.v
				if q.head.CompareAndSwap(first, firstnext) {
					q.len.Add(^uint64(0))
					// firstnext is the new sentinel; clear its value so
					// the pool does not pin it
					var zero T
					firstnext.v = zero
					q.pool.Put(first)
					return v, true
				}
			}
		}
	}
}

// Send adds a value to the end of the queue.
func (q *Queue[T]) Send(v T) {
	n := q.pool.Get().(*queueNode[T])
	n.next.Store(nil)
	n.v = v

	var last, lastnext *queueNode[T]
	for {
		last = q.tail.Load()
		lastnext = last.next.Load()
		if q.tail.Load() == last {
			if lastnext == nil {
				if last.next.CompareAndSwap(lastnext, n) {
					q.tail.CompareAndSwap(last, n)
					q.len.Add(1)
					return
				}
			} else {
				q.tail.CompareAndSwap(last, lastnext)
			}
		}
	}
}

// Len returns the length of the queue.
func (q *Queue[T]) Len() uint64 {
	return q.len.Load()
}
