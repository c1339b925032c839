// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dropsignal

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSingleSender(t *testing.T) {
	s, r := New()
	assert.True(t, r.Outstanding())
	assert.Equal(t, 1, r.Senders())
	s.Drop()
	assert.False(t, r.Outstanding())
	r.Wait()
	s.Drop() // idempotent
	assert.Equal(t, 0, r.Senders())
}

func TestClones(t *testing.T) {
	s, r := New()
	c1 := s.Clone()
	c2 := c1.Clone()
	assert.Equal(t, 3, r.Senders())

	s.Drop()
	c1.Drop()
	c1.Drop()
	assert.True(t, r.Outstanding())
	assert.Equal(t, 1, r.Senders())

	c2.Drop()
	assert.False(t, r.Outstanding())
	assert.Panics(t, func() { c2.Clone() })
}

func TestWaitBlocksUntilLastDrop(t *testing.T) {
	s, r := New()
	c := s.Clone()
	s.Drop()

	done := make(chan struct{})
	go func() {
		r.Wait()
		close(done)
	}()
	select {
	case <-done:
		t.Fatal("Wait returned with a live sender")
	case <-time.After(30 * time.Millisecond):
	}
	go c.Drop()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Wait did not return after the last drop")
	}
}

func TestWaitContext(t *testing.T) {
	s, r := New()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, r.WaitContext(ctx), context.DeadlineExceeded)

	s.Drop()
	assert.NoError(t, r.WaitContext(context.Background()))
	select {
	case <-r.Done():
	default:
		t.Fatal("Done not closed")
	}
}
