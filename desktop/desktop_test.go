// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package desktop

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"cogentcore.org/glfwx/base/config"
	"cogentcore.org/glfwx/base/logx"
	"cogentcore.org/glfwx/events"
	"cogentcore.org/glfwx/native"
	"cogentcore.org/glfwx/native/offscreen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp(t *testing.T, opts *config.Options) (*App, *offscreen.Library) {
	t.Helper()
	lib := offscreen.New()
	a, err := Init(lib, opts)
	require.NoError(t, err)
	return a, lib
}

func newWindow(t *testing.T, a *App) *Window {
	t.Helper()
	w, err := a.NewWindow(640, 480, t.Name())
	require.NoError(t, err)
	return w
}

func drain(w *Window) []events.Timed {
	var evs []events.Timed
	for ev := range w.Events() {
		evs = append(evs, ev)
	}
	return evs
}

func TestCloseCallbackAndPolling(t *testing.T) {
	a, lib := newApp(t, nil)
	w := newWindow(t, a)

	calls := 0
	w.SetCloseCallback(func(cw *Window) {
		assert.Same(t, w, cw)
		calls++
	})
	w.SetClosePolling(true)
	assert.True(t, lib.Registered(w.Handle(), events.Close))

	lib.SendClose(w.Handle())
	a.PollEvents()

	assert.Equal(t, 1, calls)
	assert.True(t, w.ShouldClose())
	evs := drain(w)
	require.Len(t, evs, 1)
	assert.Equal(t, events.CloseEvent{}, evs[0].Event)
	assert.Greater(t, evs[0].Time, 0.0)

	w.Destroy()
	a.Terminate()
	assert.True(t, lib.Terminated())
}

func TestRegisterUnregisterNoDispatch(t *testing.T) {
	a, lib := newApp(t, nil)
	w := newWindow(t, a)
	defer w.Destroy()

	calls := 0
	w.SetPosCallback(func(*Window, int, int) { calls++ })
	w.UnsetPosCallback()
	assert.False(t, lib.Registered(w.Handle(), events.Pos))
	assert.False(t, w.Registered(events.Pos))

	lib.SendPos(w.Handle(), 1, 2)
	a.PollEvents()
	assert.Zero(t, calls)
	assert.Zero(t, w.PendingEvents())
}

func TestPollingOnly(t *testing.T) {
	a, lib := newApp(t, nil)
	w := newWindow(t, a)
	defer w.Destroy()

	w.SetPosPolling(true)
	assert.True(t, w.IsPosPolling())
	lib.SendPos(w.Handle(), 10, 20)
	a.PollEvents()

	ev, ok := w.NextEvent()
	require.True(t, ok)
	assert.Equal(t, events.PosEvent{X: 10, Y: 20}, ev.Event)
	_, ok = w.NextEvent()
	assert.False(t, ok)

	w.SetPosPolling(false)
	assert.False(t, lib.Registered(w.Handle(), events.Pos))
	lib.SendPos(w.Handle(), 10, 20)
	a.PollEvents()
	assert.Zero(t, w.PendingEvents())
}

func TestRegistrationTable(t *testing.T) {
	a, lib := newApp(t, nil)
	w := newWindow(t, a)
	defer w.Destroy()

	f := func(*Window, bool) {}
	tests := []struct {
		callback, polling, registered bool
	}{
		{false, false, false},
		{true, false, true},
		{false, true, true},
		{true, true, true},
		{false, false, false},
	}
	for _, tt := range tests {
		if tt.callback {
			w.SetFocusCallback(f)
		} else {
			w.UnsetFocusCallback()
		}
		w.SetFocusPolling(tt.polling)
		assert.Equal(t, tt.registered, w.Registered(events.Focus), "%+v", tt)
		assert.Equal(t, tt.registered, lib.Registered(w.Handle(), events.Focus), "%+v", tt)
	}

	w.SetAllPolling(true)
	assert.Equal(t, int(events.KindsN), lib.RegisteredCount(w.Handle()))
	w.SetAllPolling(false)
	assert.Zero(t, lib.RegisteredCount(w.Handle()))
}

func TestAllKinds(t *testing.T) {
	a, lib := newApp(t, nil)
	w := newWindow(t, a)
	defer w.Destroy()
	h := w.Handle()

	var keys []events.Key
	w.SetKeyCallback(func(_ *Window, key events.Key, scancode int, action events.Action, mods events.Modifiers) {
		keys = append(keys, key)
		assert.Equal(t, events.Press, action)
		assert.True(t, mods.Has(events.Shift))
	})
	var dropped []string
	w.SetDropCallback(func(_ *Window, paths []string) { dropped = paths })
	w.SetAllPolling(true)

	names := []string{"a.txt", "b.txt"}
	lib.SendPos(h, 1, 2)
	lib.SendSize(h, 3, 4)
	lib.SendClose(h)
	lib.SendRefresh(h)
	lib.SendFocus(h, true)
	lib.SendIconify(h, true)
	lib.SendFramebufferSize(h, 6, 8)
	lib.SendMouseButton(h, 1, 1, 0x0002)
	lib.SendCursorPos(h, 1.5, 2.5)
	lib.SendCursorEnter(h, true)
	lib.SendScroll(h, 0, -1)
	lib.SendKey(h, 65, 38, 1, 0x0001)
	lib.SendChar(h, 'é')
	lib.SendCharMods(h, 'x', 0x0004)
	lib.SendDrop(h, names)
	lib.SendMaximize(h, true)
	lib.SendContentScale(h, 2, 2)
	a.PollEvents()

	names[0] = "changed"
	assert.Equal(t, []events.Key{events.KeyA}, keys)
	assert.Equal(t, []string{"a.txt", "b.txt"}, dropped)

	want := []events.Event{
		events.PosEvent{X: 1, Y: 2},
		events.SizeEvent{Width: 3, Height: 4},
		events.CloseEvent{},
		events.RefreshEvent{},
		events.FocusEvent{Focused: true},
		events.IconifyEvent{Iconified: true},
		events.FramebufferSizeEvent{Width: 6, Height: 8},
		events.MouseButtonEvent{Button: events.ButtonRight, Action: events.Press, Mods: events.Control},
		events.CursorPosEvent{X: 1.5, Y: 2.5},
		events.CursorEnterEvent{Entered: true},
		events.ScrollEvent{X: 0, Y: -1},
		events.KeyEvent{Key: events.KeyA, Scancode: 38, Action: events.Press, Mods: events.Shift},
		events.CharEvent{Char: 'é'},
		events.CharModsEvent{Char: 'x', Mods: events.Alt},
		events.FileDropEvent{Paths: []string{"a.txt", "b.txt"}},
		events.MaximizeEvent{Maximized: true},
		events.ContentScaleEvent{X: 2, Y: 2},
	}
	evs := drain(w)
	require.Len(t, evs, len(want))
	last := 0.0
	for i, ev := range evs {
		assert.Equal(t, want[i], ev.Event)
		assert.Equal(t, events.Kinds(i), ev.Event.Kind())
		assert.GreaterOrEqual(t, ev.Time, last)
		last = ev.Time
	}
}

func TestOverflow(t *testing.T) {
	opts := config.Defaults()
	opts.RingCapacity = 16
	opts.RingMaxLen = 16
	a, lib := newApp(t, opts)
	w := newWindow(t, a)
	defer w.Destroy()

	w.SetPosPolling(true)
	for i := range 300 {
		lib.SendPos(w.Handle(), i, 0)
	}
	a.PollEvents()
	assert.Equal(t, 300, w.PendingEvents())

	evs := drain(w)
	require.Len(t, evs, 300)
	for i, ev := range evs {
		assert.Equal(t, events.PosEvent{X: i}, ev.Event)
	}
}

func TestUnbuffered(t *testing.T) {
	a, lib := newApp(t, nil)
	w := newWindow(t, a)
	defer w.Destroy()
	w.SetPosPolling(true)

	var seen []WindowID
	lib.SendPos(w.Handle(), 1, 1)
	a.PollEventsUnbuffered(func(id WindowID, ev events.Timed) (events.Timed, bool) {
		seen = append(seen, id)
		return ev, false
	})
	assert.Equal(t, []WindowID{w.ID()}, seen)
	assert.Zero(t, w.PendingEvents())

	lib.SendPos(w.Handle(), 1, 1)
	a.PollEventsUnbuffered(func(id WindowID, ev events.Timed) (events.Timed, bool) {
		ev.Event = events.PosEvent{X: 7, Y: 7}
		return ev, true
	})
	ev, ok := w.NextEvent()
	require.True(t, ok)
	assert.Equal(t, events.PosEvent{X: 7, Y: 7}, ev.Event)

	// the interceptor is gone once the call returns
	lib.SendPos(w.Handle(), 2, 2)
	a.PollEvents()
	ev, ok = w.NextEvent()
	require.True(t, ok)
	assert.Equal(t, events.PosEvent{X: 2, Y: 2}, ev.Event)
}

func TestUnbufferedReleasedOnPanic(t *testing.T) {
	a, lib := newApp(t, nil)
	w := newWindow(t, a)
	defer w.Destroy()
	w.SetPosPolling(true)

	lib.SendPos(w.Handle(), 1, 1)
	assert.Panics(t, func() {
		a.PollEventsUnbuffered(func(WindowID, events.Timed) (events.Timed, bool) {
			panic("boom")
		})
	})
	assert.Nil(t, a.interceptor())

	lib.SendPos(w.Handle(), 3, 3)
	a.PollEvents()
	assert.Equal(t, 1, w.PendingEvents())
}

func TestUnbufferedNested(t *testing.T) {
	a, lib := newApp(t, nil)
	w := newWindow(t, a)
	defer w.Destroy()
	pass := func(_ WindowID, ev events.Timed) (events.Timed, bool) { return ev, true }

	w.SetRefreshCallback(func(*Window) {
		assert.Panics(t, func() { a.PollEventsUnbuffered(pass) })
	})
	lib.SendRefresh(w.Handle())
	a.PollEventsUnbuffered(pass)
	assert.Nil(t, a.interceptor())
}

func TestWaitEventsTimeoutUnbuffered(t *testing.T) {
	a, _ := newApp(t, nil)
	calls := 0
	a.WaitEventsTimeoutUnbuffered(10*time.Millisecond, func(_ WindowID, ev events.Timed) (events.Timed, bool) {
		calls++
		return ev, true
	})
	assert.Zero(t, calls)
	assert.Nil(t, a.interceptor())
}

func TestDestroyWaitsForRenderContext(t *testing.T) {
	a, lib := newApp(t, nil)
	w := newWindow(t, a)
	rc := w.RenderContext()
	rc2 := rc.Clone()
	rc.Release()

	done := make(chan struct{})
	go func() {
		w.Destroy()
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
	assert.False(t, lib.IsDestroyed(w.Handle()))
	assert.Equal(t, WaitingForContexts, w.State())

	rc.Release()
	rc2.Release()
	assert.Eventually(t, func() bool {
		select {
		case <-done:
			return true
		default:
			return false
		}
	}, time.Second, 5*time.Millisecond)
	assert.True(t, lib.IsDestroyed(w.Handle()))
	assert.Equal(t, Destroyed, w.State())
	assert.Panics(t, func() { rc2.Clone() })
}

func TestDestroyContext(t *testing.T) {
	a, lib := newApp(t, nil)
	w := newWindow(t, a)
	rc := w.RenderContext()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	err := w.DestroyContext(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, WaitingForContexts, w.State())
	assert.False(t, lib.IsDestroyed(w.Handle()))
	assert.Panics(t, func() { w.RenderContext() })

	rc.Release()
	assert.NoError(t, w.DestroyContext(context.Background()))
	assert.Equal(t, Destroyed, w.State())
	assert.True(t, lib.IsDestroyed(w.Handle()))
}

func TestTeardownOnce(t *testing.T) {
	a, lib := newApp(t, nil)
	w := newWindow(t, a)
	w.SetAllPolling(true)
	h := w.Handle()
	assert.Equal(t, 1, a.tables.live())

	w.Destroy()
	assert.Equal(t, int64(1), a.teardowns.Load())
	assert.Zero(t, a.tables.live())
	assert.Equal(t, 1, lib.Destroyed())

	assert.Panics(t, func() { w.Destroy() })
	assert.Panics(t, func() { w.SetPosPolling(true) })
	assert.Panics(t, func() { w.SetCloseCallback(nil) })
	assert.Equal(t, int64(1), a.teardowns.Load())

	assert.Panics(t, func() { a.posTrampoline(h, 0, 0) })
}

func TestMissingTable(t *testing.T) {
	a, lib := newApp(t, nil)
	h, err := lib.CreateWindow(1, 1, "raw", 0)
	require.NoError(t, err)
	assert.PanicsWithValue(t, "desktop: window 0x1 has no callback table", func() {
		a.closeTrampoline(h)
	})
	lib.SetUserPointer(h, 99)
	assert.Panics(t, func() { a.closeTrampoline(h) })
}

func TestCurrentContextView(t *testing.T) {
	a, lib := newApp(t, nil)
	assert.Nil(t, a.CurrentContext())

	w := newWindow(t, a)
	w.MakeCurrent()
	assert.True(t, w.IsCurrent())

	view := a.CurrentContext()
	require.NotNil(t, view)
	assert.True(t, view.IsShared())
	assert.False(t, w.IsShared())
	assert.Equal(t, w.ID(), view.ID())

	view.SetPosPolling(true)
	assert.True(t, w.IsPosPolling())
	lib.SendPos(w.Handle(), 5, 5)
	a.PollEvents()
	ev, ok := view.NextEvent()
	require.True(t, ok)
	assert.Equal(t, events.PosEvent{X: 5, Y: 5}, ev.Event)

	view.Destroy()
	assert.False(t, lib.IsDestroyed(w.Handle()))
	assert.Zero(t, a.teardowns.Load())
	assert.True(t, w.Registered(events.Pos))

	w.Destroy()
	assert.Equal(t, int64(1), a.teardowns.Load())
	assert.True(t, lib.IsDestroyed(w.Handle()))
}

func TestNewShared(t *testing.T) {
	a, lib := newApp(t, nil)
	w := newWindow(t, a)
	w2, err := w.NewShared(100, 100, "shared")
	require.NoError(t, err)
	assert.Equal(t, w.Handle(), lib.Shared(w2.Handle()))
	assert.False(t, w2.IsShared())
	w2.Destroy()
	w.Destroy()
	assert.Equal(t, int64(2), a.teardowns.Load())
}

func TestCreateError(t *testing.T) {
	a, lib := newApp(t, nil)
	lib.CreateErr = errors.New("no display")
	_, err := a.NewWindow(1, 1, "x")
	assert.ErrorIs(t, err, lib.CreateErr)
	assert.Zero(t, a.tables.live())
}

func TestInitErrorSticky(t *testing.T) {
	lib := offscreen.New()
	lib.InitErr = errors.New("no display")
	opts := config.Defaults()
	opts.ErrorPolicy = config.ErrorPolicyIgnore

	_, err := Init(lib, opts)
	var ie *InitError
	require.ErrorAs(t, err, &ie)
	assert.ErrorIs(t, err, lib.InitErr)
	assert.False(t, lib.ErrorCallbackRegistered())

	lib.InitErr = nil
	_, err2 := Init(lib, opts)
	assert.Same(t, err, err2)
}

func TestErrorHandler(t *testing.T) {
	opts := config.Defaults()
	opts.ErrorPolicy = config.ErrorPolicyIgnore
	a, lib := newApp(t, opts)
	assert.False(t, lib.ErrorCallbackRegistered())

	var got []*NativeError
	a.SetErrorHandler(func(err *NativeError) { got = append(got, err) })
	assert.True(t, lib.ErrorCallbackRegistered())
	lib.ReportError(native.CodeInvalidValue, "bad value")
	require.Len(t, got, 1)
	assert.Equal(t, InvalidValue, got[0].Code)
	assert.Equal(t, "bad value", got[0].Description)
	assert.Equal(t, "desktop: native error InvalidValue: bad value", got[0].Error())

	a.SetErrorHandler(nil)
	assert.False(t, lib.ErrorCallbackRegistered())
	lib.ReportError(native.CodeInvalidValue, "dropped")
	assert.Len(t, got, 1)

	a.SetErrorHandler(FailOnErrors)
	assert.Panics(t, func() { lib.ReportError(native.CodePlatformError, "fatal") })

	a.SetErrorHandler(LogErrors)
	assert.NotPanics(t, func() { lib.ReportError(native.CodePlatformError, "logged") })
}

func TestErrorCodeString(t *testing.T) {
	assert.Equal(t, "NotInitialized", NotInitialized.String())
	assert.Equal(t, "NoWindowContext", NoWindowContext.String())
	assert.Equal(t, "1", ErrorCode(1).String())
	assert.Len(t, ErrorCodeValues(), 10)
}

func TestApplyOptions(t *testing.T) {
	a, lib := newApp(t, nil)
	assert.True(t, lib.ErrorCallbackRegistered())

	opts := config.Defaults()
	opts.ErrorPolicy = config.ErrorPolicyIgnore
	opts.RingCapacity = 4
	opts.RingMaxLen = 8
	require.NoError(t, a.ApplyOptions(opts))
	assert.False(t, lib.ErrorCallbackRegistered())

	w := newWindow(t, a)
	defer w.Destroy()
	assert.Equal(t, 4, w.events.Cap())
	assert.Equal(t, 8, w.events.MaxLen())

	opts.RingMaxLen = 1
	assert.Error(t, a.ApplyOptions(opts))
	assert.Equal(t, 8, a.Options().RingMaxLen)
}

func TestTerminateWithLiveWindow(t *testing.T) {
	a, _ := newApp(t, nil)
	w := newWindow(t, a)
	assert.Panics(t, func() { a.Terminate() })
	w.Destroy()
	assert.NotPanics(t, func() { a.Terminate() })
}

func TestMainLoop(t *testing.T) {
	a, lib := newApp(t, nil)
	w := newWindow(t, a)
	w.SetPosPolling(true)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		a.MainLoop(ctx)
		close(done)
	}()

	ran := false
	assert.Eventually(t, func() bool {
		a.mainMu.Lock()
		defer a.mainMu.Unlock()
		return a.mainRunning
	}, time.Second, time.Millisecond)
	a.RunOnMain(func() { ran = true })
	assert.True(t, ran)

	lib.SendPos(w.Handle(), 4, 4)
	assert.Eventually(t, func() bool { return w.PendingEvents() == 1 }, time.Second, time.Millisecond)

	cancel()
	assert.Eventually(t, func() bool {
		select {
		case <-done:
			return true
		default:
			return false
		}
	}, time.Second, time.Millisecond)

	ran = false
	a.RunOnMain(func() { ran = true })
	assert.True(t, ran)
	w.Destroy()
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "WaitingForContexts", WaitingForContexts.String())
	assert.Equal(t, "9", States(9).String())
	assert.Equal(t, StatesN-1, Destroyed)
}

func TestViewRenderContextHoldsOwner(t *testing.T) {
	a, lib := newApp(t, nil)
	w := newWindow(t, a)
	w.MakeCurrent()
	rc := a.CurrentContext().RenderContext()

	done := make(chan struct{})
	go func() {
		w.Destroy()
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
	assert.False(t, lib.IsDestroyed(w.Handle()))

	rc.Release()
	assert.Eventually(t, func() bool {
		select {
		case <-done:
			return true
		default:
			return false
		}
	}, time.Second, 5*time.Millisecond)
	assert.True(t, lib.IsDestroyed(w.Handle()))
}

func TestViewRenderContextOfClosingOwner(t *testing.T) {
	a, _ := newApp(t, nil)
	w := newWindow(t, a)
	w.MakeCurrent()
	view := a.CurrentContext()
	rc := w.RenderContext()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	assert.Error(t, w.DestroyContext(ctx))
	assert.Panics(t, func() { view.RenderContext() })

	rc.Release()
	w.Destroy()
}

func TestInitInvalidOptions(t *testing.T) {
	lib := offscreen.New()
	opts := config.Defaults()
	opts.RingCapacity = 0
	_, err := Init(lib, opts)
	assert.Error(t, err)
	var ie *InitError
	assert.False(t, errors.As(err, &ie))
	assert.False(t, lib.ErrorCallbackRegistered())

	// not sticky: fixed options initialize
	a, err := Init(lib, config.Defaults())
	require.NoError(t, err)
	a.Terminate()
}

func TestInitLogLevel(t *testing.T) {
	prev := logx.UserLevel
	defer logx.SetLevel(prev)

	opts := config.Defaults()
	opts.LogLevel = "warn"
	a, _ := newApp(t, opts)
	assert.Equal(t, slog.LevelWarn, logx.UserLevel)
	a.Terminate()
}

func TestDropPathsPerConsumer(t *testing.T) {
	a, lib := newApp(t, nil)
	w := newWindow(t, a)
	defer w.Destroy()

	w.SetDropCallback(func(_ *Window, paths []string) { paths[0] = "changed" })
	w.SetDropPolling(true)
	lib.SendDrop(w.Handle(), []string{"a.txt"})
	a.PollEvents()

	ev, ok := w.NextEvent()
	require.True(t, ok)
	assert.Equal(t, events.FileDropEvent{Paths: []string{"a.txt"}}, ev.Event)
}

func TestSetErrorHandlerConcurrent(t *testing.T) {
	a, lib := newApp(t, nil)
	var wg sync.WaitGroup
	for g := range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 200 {
				if (i+g)%2 == 0 {
					a.SetErrorHandler(nil)
				} else {
					a.SetErrorHandler(LogErrors)
				}
			}
		}()
	}
	wg.Wait()
	a.mu.Lock()
	has := a.errorHandler != nil
	a.mu.Unlock()
	assert.Equal(t, has, lib.ErrorCallbackRegistered())
}

func TestWatchOptions(t *testing.T) {
	a, lib := newApp(t, nil)
	fn := filepath.Join(t.TempDir(), "glfwx.toml")
	require.NoError(t, config.Save(fn, config.Defaults()))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, a.WatchOptions(ctx, fn))

	data := "ring_capacity = 4\nring_max_len = 8\nerror_policy = \"ignore\"\n"
	require.NoError(t, os.WriteFile(fn, []byte(data), 0666))
	assert.Eventually(t, func() bool {
		return a.Options().RingCapacity == 4 && !lib.ErrorCallbackRegistered()
	}, 5*time.Second, 10*time.Millisecond)
	assert.Equal(t, 8, a.Options().RingMaxLen)
}
