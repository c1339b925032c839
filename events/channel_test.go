// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func posAt(i int) Timed {
	return Timed{Time: float64(i), Event: PosEvent{X: i, Y: -i}}
}

func drainAll(ch *Channel) []Timed {
	var res []Timed
	for ev := range ch.Drain() {
		res = append(res, ev)
	}
	return res
}

func assertInOrder(t *testing.T, evs []Timed, n int) {
	t.Helper()
	require.Len(t, evs, n)
	for i, ev := range evs {
		assert.Equal(t, posAt(i), ev)
	}
}

func TestChannelBelowCapacity(t *testing.T) {
	ch := NewChannel(16, 16)
	for i := range 10 {
		ch.Send(posAt(i))
	}
	assert.Equal(t, 10, ch.Len())
	assert.Equal(t, uint64(0), ch.Overflowed())
	assertInOrder(t, drainAll(ch), 10)

	_, ok := ch.Receive()
	assert.False(t, ok)
	assert.Equal(t, 0, ch.Len())
}

func TestChannelOverflow(t *testing.T) {
	ch := NewChannel(16, 16)
	for i := range 300 {
		ch.Send(posAt(i))
	}
	assert.Equal(t, 300, ch.Len())
	assert.Equal(t, uint64(284), ch.Overflowed())
	assert.Equal(t, 16, ch.Cap())
	assertInOrder(t, drainAll(ch), 300)
	assert.Equal(t, uint64(0), ch.Overflowed())
}

func TestChannelGrowsToMaxLen(t *testing.T) {
	ch := NewChannel(4, 20)
	for i := range 50 {
		ch.Send(posAt(i))
	}
	assert.Equal(t, 20, ch.Cap())
	assert.Equal(t, uint64(30), ch.Overflowed())
	assertInOrder(t, drainAll(ch), 50)
}

func TestChannelGrowWrapped(t *testing.T) {
	ch := NewChannel(4, 64)
	// wrap the ring before it has to grow
	for i := range 3 {
		ch.Send(posAt(100 + i))
	}
	for range 3 {
		_, ok := ch.Receive()
		require.True(t, ok)
	}
	for i := range 10 {
		ch.Send(posAt(i))
	}
	assertInOrder(t, drainAll(ch), 10)
}

func TestChannelSendAfterOverflowKeepsOrder(t *testing.T) {
	ch := NewChannel(2, 2)
	for i := range 4 {
		ch.Send(posAt(i))
	}
	// frees a ring slot while the overflow still holds events
	ev, ok := ch.Receive()
	require.True(t, ok)
	assert.Equal(t, posAt(0), ev)
	for i := 4; i < 8; i++ {
		ch.Send(posAt(i))
	}
	evs := drainAll(ch)
	require.Len(t, evs, 7)
	for i, ev := range evs {
		assert.Equal(t, posAt(i+1), ev)
	}
}

func TestChannelDefaults(t *testing.T) {
	ch := NewChannel(0, 0)
	assert.Equal(t, DefaultRingCapacity, ch.Cap())
	assert.Equal(t, DefaultRingCapacity, ch.MaxLen())
}

func TestChannelDrainStopsEarly(t *testing.T) {
	ch := NewChannel(8, 8)
	for i := range 5 {
		ch.Send(posAt(i))
	}
	for ev := range ch.Drain() {
		assert.Equal(t, posAt(0), ev)
		break
	}
	assert.Equal(t, 4, ch.Len())
}

func TestChannelConcurrentFIFO(t *testing.T) {
	const n = 20000
	ch := NewChannel(4, 8)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := range n {
			ch.Send(posAt(i))
		}
	}()

	got := make([]Timed, 0, n)
	for len(got) < n {
		if ev, ok := ch.Receive(); ok {
			got = append(got, ev)
		}
	}
	wg.Wait()
	assertInOrder(t, got, n)
	assert.Equal(t, 0, ch.Len())
}
