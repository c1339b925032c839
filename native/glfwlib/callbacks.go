// Copyright (c) 2022, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !offscreen && ((darwin && !ios) || windows || (linux && !android) || dragonfly || openbsd)

package glfwlib

import (
	"cogentcore.org/glfwx/native"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Each setter installs a glfw callback that forwards to cb with the
// raw argument values, or clears the glfw slot when cb is nil.

func (l *Library) SetPosCallback(h native.Handle, cb native.PosFunc) {
	glw := l.window(h)
	if glw == nil {
		return
	}
	if cb == nil {
		glw.SetPosCallback(nil)
		return
	}
	glw.SetPosCallback(func(w *glfw.Window, x, y int) {
		cb(l.handle(w), x, y)
	})
}

func (l *Library) SetSizeCallback(h native.Handle, cb native.SizeFunc) {
	glw := l.window(h)
	if glw == nil {
		return
	}
	if cb == nil {
		glw.SetSizeCallback(nil)
		return
	}
	glw.SetSizeCallback(func(w *glfw.Window, width, height int) {
		cb(l.handle(w), width, height)
	})
}

func (l *Library) SetCloseCallback(h native.Handle, cb native.CloseFunc) {
	glw := l.window(h)
	if glw == nil {
		return
	}
	if cb == nil {
		glw.SetCloseCallback(nil)
		return
	}
	glw.SetCloseCallback(func(w *glfw.Window) {
		cb(l.handle(w))
	})
}

func (l *Library) SetRefreshCallback(h native.Handle, cb native.RefreshFunc) {
	glw := l.window(h)
	if glw == nil {
		return
	}
	if cb == nil {
		glw.SetRefreshCallback(nil)
		return
	}
	glw.SetRefreshCallback(func(w *glfw.Window) {
		cb(l.handle(w))
	})
}

func (l *Library) SetFocusCallback(h native.Handle, cb native.FocusFunc) {
	glw := l.window(h)
	if glw == nil {
		return
	}
	if cb == nil {
		glw.SetFocusCallback(nil)
		return
	}
	glw.SetFocusCallback(func(w *glfw.Window, focused bool) {
		cb(l.handle(w), focused)
	})
}

func (l *Library) SetIconifyCallback(h native.Handle, cb native.IconifyFunc) {
	glw := l.window(h)
	if glw == nil {
		return
	}
	if cb == nil {
		glw.SetIconifyCallback(nil)
		return
	}
	glw.SetIconifyCallback(func(w *glfw.Window, iconified bool) {
		cb(l.handle(w), iconified)
	})
}

func (l *Library) SetFramebufferSizeCallback(h native.Handle, cb native.FramebufferSizeFunc) {
	glw := l.window(h)
	if glw == nil {
		return
	}
	if cb == nil {
		glw.SetFramebufferSizeCallback(nil)
		return
	}
	glw.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		cb(l.handle(w), width, height)
	})
}

func (l *Library) SetMouseButtonCallback(h native.Handle, cb native.MouseButtonFunc) {
	glw := l.window(h)
	if glw == nil {
		return
	}
	if cb == nil {
		glw.SetMouseButtonCallback(nil)
		return
	}
	glw.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		cb(l.handle(w), int(button), int(action), int(mods))
	})
}

func (l *Library) SetCursorPosCallback(h native.Handle, cb native.CursorPosFunc) {
	glw := l.window(h)
	if glw == nil {
		return
	}
	if cb == nil {
		glw.SetCursorPosCallback(nil)
		return
	}
	glw.SetCursorPosCallback(func(w *glfw.Window, x, y float64) {
		cb(l.handle(w), x, y)
	})
}

func (l *Library) SetCursorEnterCallback(h native.Handle, cb native.CursorEnterFunc) {
	glw := l.window(h)
	if glw == nil {
		return
	}
	if cb == nil {
		glw.SetCursorEnterCallback(nil)
		return
	}
	glw.SetCursorEnterCallback(func(w *glfw.Window, entered bool) {
		cb(l.handle(w), entered)
	})
}

func (l *Library) SetScrollCallback(h native.Handle, cb native.ScrollFunc) {
	glw := l.window(h)
	if glw == nil {
		return
	}
	if cb == nil {
		glw.SetScrollCallback(nil)
		return
	}
	glw.SetScrollCallback(func(w *glfw.Window, xoff, yoff float64) {
		cb(l.handle(w), xoff, yoff)
	})
}

func (l *Library) SetKeyCallback(h native.Handle, cb native.KeyFunc) {
	glw := l.window(h)
	if glw == nil {
		return
	}
	if cb == nil {
		glw.SetKeyCallback(nil)
		return
	}
	glw.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		cb(l.handle(w), int(key), scancode, int(action), int(mods))
	})
}

func (l *Library) SetCharCallback(h native.Handle, cb native.CharFunc) {
	glw := l.window(h)
	if glw == nil {
		return
	}
	if cb == nil {
		glw.SetCharCallback(nil)
		return
	}
	glw.SetCharCallback(func(w *glfw.Window, char rune) {
		cb(l.handle(w), char)
	})
}

func (l *Library) SetCharModsCallback(h native.Handle, cb native.CharModsFunc) {
	glw := l.window(h)
	if glw == nil {
		return
	}
	if cb == nil {
		glw.SetCharModsCallback(nil)
		return
	}
	glw.SetCharModsCallback(func(w *glfw.Window, char rune, mods glfw.ModifierKey) {
		cb(l.handle(w), char, int(mods))
	})
}

func (l *Library) SetDropCallback(h native.Handle, cb native.DropFunc) {
	glw := l.window(h)
	if glw == nil {
		return
	}
	if cb == nil {
		glw.SetDropCallback(nil)
		return
	}
	glw.SetDropCallback(func(w *glfw.Window, names []string) {
		cb(l.handle(w), names)
	})
}

func (l *Library) SetMaximizeCallback(h native.Handle, cb native.MaximizeFunc) {
	glw := l.window(h)
	if glw == nil {
		return
	}
	if cb == nil {
		glw.SetMaximizeCallback(nil)
		return
	}
	glw.SetMaximizeCallback(func(w *glfw.Window, maximized bool) {
		cb(l.handle(w), maximized)
	})
}

func (l *Library) SetContentScaleCallback(h native.Handle, cb native.ContentScaleFunc) {
	glw := l.window(h)
	if glw == nil {
		return
	}
	if cb == nil {
		glw.SetContentScaleCallback(nil)
		return
	}
	glw.SetContentScaleCallback(func(w *glfw.Window, x, y float32) {
		cb(l.handle(w), x, y)
	})
}
