// Copyright 2023 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package offscreen

import (
	"cogentcore.org/glfwx/events"
	"cogentcore.org/glfwx/native"
)

func (l *Library) SetPosCallback(h native.Handle, cb native.PosFunc) {
	l.with(h, func(w *window) { w.pos = cb })
}

func (l *Library) SetSizeCallback(h native.Handle, cb native.SizeFunc) {
	l.with(h, func(w *window) { w.size = cb })
}

func (l *Library) SetCloseCallback(h native.Handle, cb native.CloseFunc) {
	l.with(h, func(w *window) { w.close = cb })
}

func (l *Library) SetRefreshCallback(h native.Handle, cb native.RefreshFunc) {
	l.with(h, func(w *window) { w.refresh = cb })
}

func (l *Library) SetFocusCallback(h native.Handle, cb native.FocusFunc) {
	l.with(h, func(w *window) { w.focus = cb })
}

func (l *Library) SetIconifyCallback(h native.Handle, cb native.IconifyFunc) {
	l.with(h, func(w *window) { w.iconify = cb })
}

func (l *Library) SetFramebufferSizeCallback(h native.Handle, cb native.FramebufferSizeFunc) {
	l.with(h, func(w *window) { w.framebufferSize = cb })
}

func (l *Library) SetMouseButtonCallback(h native.Handle, cb native.MouseButtonFunc) {
	l.with(h, func(w *window) { w.mouseButton = cb })
}

func (l *Library) SetCursorPosCallback(h native.Handle, cb native.CursorPosFunc) {
	l.with(h, func(w *window) { w.cursorPos = cb })
}

func (l *Library) SetCursorEnterCallback(h native.Handle, cb native.CursorEnterFunc) {
	l.with(h, func(w *window) { w.cursorEnter = cb })
}

func (l *Library) SetScrollCallback(h native.Handle, cb native.ScrollFunc) {
	l.with(h, func(w *window) { w.scroll = cb })
}

func (l *Library) SetKeyCallback(h native.Handle, cb native.KeyFunc) {
	l.with(h, func(w *window) { w.key = cb })
}

func (l *Library) SetCharCallback(h native.Handle, cb native.CharFunc) {
	l.with(h, func(w *window) { w.char = cb })
}

func (l *Library) SetCharModsCallback(h native.Handle, cb native.CharModsFunc) {
	l.with(h, func(w *window) { w.charMods = cb })
}

func (l *Library) SetDropCallback(h native.Handle, cb native.DropFunc) {
	l.with(h, func(w *window) { w.drop = cb })
}

func (l *Library) SetMaximizeCallback(h native.Handle, cb native.MaximizeFunc) {
	l.with(h, func(w *window) { w.maximize = cb })
}

func (l *Library) SetContentScaleCallback(h native.Handle, cb native.ContentScaleFunc) {
	l.with(h, func(w *window) { w.contentScale = cb })
}

// Registered returns whether the callback slot for the given event
// kind is filled on the window.
func (l *Library) Registered(h native.Handle, kind events.Kinds) bool {
	w := l.slots(h)
	switch kind {
	case events.Pos:
		return w.pos != nil
	case events.Size:
		return w.size != nil
	case events.Close:
		return w.close != nil
	case events.Refresh:
		return w.refresh != nil
	case events.Focus:
		return w.focus != nil
	case events.Iconify:
		return w.iconify != nil
	case events.FramebufferSize:
		return w.framebufferSize != nil
	case events.MouseButtonKind:
		return w.mouseButton != nil
	case events.CursorPos:
		return w.cursorPos != nil
	case events.CursorEnter:
		return w.cursorEnter != nil
	case events.Scroll:
		return w.scroll != nil
	case events.KeyKind:
		return w.key != nil
	case events.Char:
		return w.char != nil
	case events.CharMods:
		return w.charMods != nil
	case events.FileDrop:
		return w.drop != nil
	case events.Maximize:
		return w.maximize != nil
	case events.ContentScale:
		return w.contentScale != nil
	}
	return false
}

// RegisteredCount returns the number of filled callback slots on the window.
func (l *Library) RegisteredCount(h native.Handle) int {
	n := 0
	for _, k := range events.KindsValues() {
		if l.Registered(h, k) {
			n++
		}
	}
	return n
}

// SendPos queues a native Pos invocation for the window.
func (l *Library) SendPos(h native.Handle, x, y int) {
	l.queue(func() {
		if cb := l.slots(h).pos; cb != nil {
			cb(h, x, y)
		}
	})
}

// SendSize queues a native Size invocation for the window.
func (l *Library) SendSize(h native.Handle, width, height int) {
	l.queue(func() {
		if cb := l.slots(h).size; cb != nil {
			cb(h, width, height)
		}
	})
}

// SendClose queues a native Close invocation for the window.
func (l *Library) SendClose(h native.Handle) {
	l.queue(func() {
		l.SetShouldClose(h, true)
		if cb := l.slots(h).close; cb != nil {
			cb(h)
		}
	})
}

// SendRefresh queues a native Refresh invocation for the window.
func (l *Library) SendRefresh(h native.Handle) {
	l.queue(func() {
		if cb := l.slots(h).refresh; cb != nil {
			cb(h)
		}
	})
}

// SendFocus queues a native Focus invocation for the window.
func (l *Library) SendFocus(h native.Handle, focused bool) {
	l.queue(func() {
		if cb := l.slots(h).focus; cb != nil {
			cb(h, focused)
		}
	})
}

// SendIconify queues a native Iconify invocation for the window.
func (l *Library) SendIconify(h native.Handle, iconified bool) {
	l.queue(func() {
		if cb := l.slots(h).iconify; cb != nil {
			cb(h, iconified)
		}
	})
}

// SendFramebufferSize queues a native FramebufferSize invocation for the window.
func (l *Library) SendFramebufferSize(h native.Handle, width, height int) {
	l.queue(func() {
		if cb := l.slots(h).framebufferSize; cb != nil {
			cb(h, width, height)
		}
	})
}

// SendMouseButton queues a native mouse button invocation for the window.
func (l *Library) SendMouseButton(h native.Handle, button, action, mods int) {
	l.queue(func() {
		if cb := l.slots(h).mouseButton; cb != nil {
			cb(h, button, action, mods)
		}
	})
}

// SendCursorPos queues a native CursorPos invocation for the window.
func (l *Library) SendCursorPos(h native.Handle, x, y float64) {
	l.queue(func() {
		if cb := l.slots(h).cursorPos; cb != nil {
			cb(h, x, y)
		}
	})
}

// SendCursorEnter queues a native CursorEnter invocation for the window.
func (l *Library) SendCursorEnter(h native.Handle, entered bool) {
	l.queue(func() {
		if cb := l.slots(h).cursorEnter; cb != nil {
			cb(h, entered)
		}
	})
}

// SendScroll queues a native Scroll invocation for the window.
func (l *Library) SendScroll(h native.Handle, xoff, yoff float64) {
	l.queue(func() {
		if cb := l.slots(h).scroll; cb != nil {
			cb(h, xoff, yoff)
		}
	})
}

// SendKey queues a native key invocation for the window.
func (l *Library) SendKey(h native.Handle, key, scancode, action, mods int) {
	l.queue(func() {
		if cb := l.slots(h).key; cb != nil {
			cb(h, key, scancode, action, mods)
		}
	})
}

// SendChar queues a native Char invocation for the window.
func (l *Library) SendChar(h native.Handle, char rune) {
	l.queue(func() {
		if cb := l.slots(h).char; cb != nil {
			cb(h, char)
		}
	})
}

// SendCharMods queues a native CharMods invocation for the window.
func (l *Library) SendCharMods(h native.Handle, char rune, mods int) {
	l.queue(func() {
		if cb := l.slots(h).charMods; cb != nil {
			cb(h, char, mods)
		}
	})
}

// SendDrop queues a native file drop invocation for the window.
// The names slice is owned by the library until delivered.
func (l *Library) SendDrop(h native.Handle, names []string) {
	l.queue(func() {
		if cb := l.slots(h).drop; cb != nil {
			cb(h, names)
		}
	})
}

// SendMaximize queues a native Maximize invocation for the window.
func (l *Library) SendMaximize(h native.Handle, maximized bool) {
	l.queue(func() {
		if cb := l.slots(h).maximize; cb != nil {
			cb(h, maximized)
		}
	})
}

// SendContentScale queues a native ContentScale invocation for the window.
func (l *Library) SendContentScale(h native.Handle, x, y float32) {
	l.queue(func() {
		if cb := l.slots(h).contentScale; cb != nil {
			cb(h, x, y)
		}
	})
}
