// Copyright 2023 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package offscreen

import (
	"errors"
	"testing"
	"time"

	"cogentcore.org/glfwx/events"
	"cogentcore.org/glfwx/native"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newInit(t *testing.T) *Library {
	l := New()
	require.NoError(t, l.Init())
	return l
}

func TestCreateBeforeInit(t *testing.T) {
	l := New()
	var codes []int
	l.SetErrorCallback(func(code int, desc string) { codes = append(codes, code) })
	_, err := l.CreateWindow(10, 10, "w", 0)
	assert.Error(t, err)
	assert.Equal(t, []int{native.CodeNotInitialized}, codes)
	assert.Equal(t, 0, l.Created())
}

func TestInitErr(t *testing.T) {
	l := New()
	l.InitErr = errors.New("no display")
	assert.ErrorIs(t, l.Init(), l.InitErr)
}

func TestDeliveryOnPoll(t *testing.T) {
	l := newInit(t)
	h, err := l.CreateWindow(10, 10, "w", 0)
	require.NoError(t, err)

	var got [][2]int
	l.SetPosCallback(h, func(h native.Handle, x, y int) { got = append(got, [2]int{x, y}) })
	assert.True(t, l.Registered(h, events.Pos))
	assert.Equal(t, 1, l.RegisteredCount(h))

	l.SendPos(h, 1, 2)
	l.SendPos(h, 3, 4)
	assert.Empty(t, got)
	assert.Equal(t, 2, l.Pending())
	l.PollEvents()
	assert.Equal(t, [][2]int{{1, 2}, {3, 4}}, got)

	// slot looked up at delivery time
	l.SendPos(h, 5, 6)
	l.SetPosCallback(h, nil)
	assert.False(t, l.Registered(h, events.Pos))
	l.PollEvents()
	assert.Len(t, got, 2)
}

func TestCloseSetsShouldClose(t *testing.T) {
	l := newInit(t)
	h, err := l.CreateWindow(10, 10, "w", 0)
	require.NoError(t, err)
	assert.False(t, l.ShouldClose(h))
	l.SendClose(h)
	l.PollEvents()
	assert.True(t, l.ShouldClose(h))
}

func TestWaitEventsWakes(t *testing.T) {
	l := newInit(t)
	done := make(chan struct{})
	go func() {
		l.WaitEvents()
		close(done)
	}()
	assert.Never(t, func() bool {
		select {
		case <-done:
			return true
		default:
			return false
		}
	}, 50*time.Millisecond, 5*time.Millisecond)
	l.PostEmptyEvent()
	assert.Eventually(t, func() bool {
		select {
		case <-done:
			return true
		default:
			return false
		}
	}, time.Second, 5*time.Millisecond)
}

func TestWaitEventsTimeout(t *testing.T) {
	l := newInit(t)
	start := time.Now()
	l.WaitEventsTimeout(0.02)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestDestroyAndTerminate(t *testing.T) {
	l := newInit(t)
	h1, _ := l.CreateWindow(10, 10, "a", 0)
	h2, _ := l.CreateWindow(10, 10, "b", h1)
	assert.Equal(t, h1, l.Shared(h2))
	l.SetUserPointer(h1, 7)
	assert.Equal(t, uintptr(7), l.UserPointer(h1))

	l.MakeContextCurrent(h1)
	assert.Equal(t, h1, l.CurrentContext())
	l.DestroyWindow(h1)
	assert.True(t, l.IsDestroyed(h1))
	assert.Equal(t, native.Handle(0), l.CurrentContext())
	assert.Equal(t, uintptr(0), l.UserPointer(h1))

	l.Terminate()
	assert.True(t, l.Terminated())
	assert.True(t, l.IsDestroyed(h2))
	assert.Equal(t, 2, l.Destroyed())
	assert.Equal(t, 0, l.Live())
}
