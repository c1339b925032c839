// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package desktop

import (
	"slices"

	"cogentcore.org/glfwx/events"
	"cogentcore.org/glfwx/native"
)

// register fills the native slot for the event kind with its
// trampoline, or clears it.
func (a *App) register(h native.Handle, kind events.Kinds, on bool) {
	switch kind {
	case events.Pos:
		if on {
			a.lib.SetPosCallback(h, a.posTrampoline)
		} else {
			a.lib.SetPosCallback(h, nil)
		}
	case events.Size:
		if on {
			a.lib.SetSizeCallback(h, a.sizeTrampoline)
		} else {
			a.lib.SetSizeCallback(h, nil)
		}
	case events.Close:
		if on {
			a.lib.SetCloseCallback(h, a.closeTrampoline)
		} else {
			a.lib.SetCloseCallback(h, nil)
		}
	case events.Refresh:
		if on {
			a.lib.SetRefreshCallback(h, a.refreshTrampoline)
		} else {
			a.lib.SetRefreshCallback(h, nil)
		}
	case events.Focus:
		if on {
			a.lib.SetFocusCallback(h, a.focusTrampoline)
		} else {
			a.lib.SetFocusCallback(h, nil)
		}
	case events.Iconify:
		if on {
			a.lib.SetIconifyCallback(h, a.iconifyTrampoline)
		} else {
			a.lib.SetIconifyCallback(h, nil)
		}
	case events.FramebufferSize:
		if on {
			a.lib.SetFramebufferSizeCallback(h, a.framebufferSizeTrampoline)
		} else {
			a.lib.SetFramebufferSizeCallback(h, nil)
		}
	case events.MouseButtonKind:
		if on {
			a.lib.SetMouseButtonCallback(h, a.mouseButtonTrampoline)
		} else {
			a.lib.SetMouseButtonCallback(h, nil)
		}
	case events.CursorPos:
		if on {
			a.lib.SetCursorPosCallback(h, a.cursorPosTrampoline)
		} else {
			a.lib.SetCursorPosCallback(h, nil)
		}
	case events.CursorEnter:
		if on {
			a.lib.SetCursorEnterCallback(h, a.cursorEnterTrampoline)
		} else {
			a.lib.SetCursorEnterCallback(h, nil)
		}
	case events.Scroll:
		if on {
			a.lib.SetScrollCallback(h, a.scrollTrampoline)
		} else {
			a.lib.SetScrollCallback(h, nil)
		}
	case events.KeyKind:
		if on {
			a.lib.SetKeyCallback(h, a.keyTrampoline)
		} else {
			a.lib.SetKeyCallback(h, nil)
		}
	case events.Char:
		if on {
			a.lib.SetCharCallback(h, a.charTrampoline)
		} else {
			a.lib.SetCharCallback(h, nil)
		}
	case events.CharMods:
		if on {
			a.lib.SetCharModsCallback(h, a.charModsTrampoline)
		} else {
			a.lib.SetCharModsCallback(h, nil)
		}
	case events.FileDrop:
		if on {
			a.lib.SetDropCallback(h, a.dropTrampoline)
		} else {
			a.lib.SetDropCallback(h, nil)
		}
	case events.Maximize:
		if on {
			a.lib.SetMaximizeCallback(h, a.maximizeTrampoline)
		} else {
			a.lib.SetMaximizeCallback(h, nil)
		}
	case events.ContentScale:
		if on {
			a.lib.SetContentScaleCallback(h, a.contentScaleTrampoline)
		} else {
			a.lib.SetContentScaleCallback(h, nil)
		}
	default:
		panic("desktop: register of unknown event kind " + kind.String())
	}
}

func (a *App) posTrampoline(h native.Handle, x, y int) {
	t := a.table(h)
	if f := t.callbacks.pos; f != nil {
		f(t.window, x, y)
	}
	if t.regs[events.Pos].polling {
		a.enqueue(h, t, events.PosEvent{X: x, Y: y})
	}
}

func (a *App) sizeTrampoline(h native.Handle, width, height int) {
	t := a.table(h)
	if f := t.callbacks.size; f != nil {
		f(t.window, width, height)
	}
	if t.regs[events.Size].polling {
		a.enqueue(h, t, events.SizeEvent{Width: width, Height: height})
	}
}

func (a *App) closeTrampoline(h native.Handle) {
	t := a.table(h)
	if f := t.callbacks.close; f != nil {
		f(t.window)
	}
	if t.regs[events.Close].polling {
		a.enqueue(h, t, events.CloseEvent{})
	}
}

func (a *App) refreshTrampoline(h native.Handle) {
	t := a.table(h)
	if f := t.callbacks.refresh; f != nil {
		f(t.window)
	}
	if t.regs[events.Refresh].polling {
		a.enqueue(h, t, events.RefreshEvent{})
	}
}

func (a *App) focusTrampoline(h native.Handle, focused bool) {
	t := a.table(h)
	if f := t.callbacks.focus; f != nil {
		f(t.window, focused)
	}
	if t.regs[events.Focus].polling {
		a.enqueue(h, t, events.FocusEvent{Focused: focused})
	}
}

func (a *App) iconifyTrampoline(h native.Handle, iconified bool) {
	t := a.table(h)
	if f := t.callbacks.iconify; f != nil {
		f(t.window, iconified)
	}
	if t.regs[events.Iconify].polling {
		a.enqueue(h, t, events.IconifyEvent{Iconified: iconified})
	}
}

func (a *App) framebufferSizeTrampoline(h native.Handle, width, height int) {
	t := a.table(h)
	if f := t.callbacks.framebufferSize; f != nil {
		f(t.window, width, height)
	}
	if t.regs[events.FramebufferSize].polling {
		a.enqueue(h, t, events.FramebufferSizeEvent{Width: width, Height: height})
	}
}

func (a *App) mouseButtonTrampoline(h native.Handle, button, action, mods int) {
	t := a.table(h)
	if f := t.callbacks.mouseButton; f != nil {
		f(t.window, events.MouseButtonFromNative(button), events.ActionFromNative(action), events.ModifiersFromNative(mods))
	}
	if t.regs[events.MouseButtonKind].polling {
		a.enqueue(h, t, events.MouseButtonEvent{Button: events.MouseButtonFromNative(button), Action: events.ActionFromNative(action), Mods: events.ModifiersFromNative(mods)})
	}
}

func (a *App) cursorPosTrampoline(h native.Handle, x, y float64) {
	t := a.table(h)
	if f := t.callbacks.cursorPos; f != nil {
		f(t.window, x, y)
	}
	if t.regs[events.CursorPos].polling {
		a.enqueue(h, t, events.CursorPosEvent{X: x, Y: y})
	}
}

func (a *App) cursorEnterTrampoline(h native.Handle, entered bool) {
	t := a.table(h)
	if f := t.callbacks.cursorEnter; f != nil {
		f(t.window, entered)
	}
	if t.regs[events.CursorEnter].polling {
		a.enqueue(h, t, events.CursorEnterEvent{Entered: entered})
	}
}

func (a *App) scrollTrampoline(h native.Handle, xoff, yoff float64) {
	t := a.table(h)
	if f := t.callbacks.scroll; f != nil {
		f(t.window, xoff, yoff)
	}
	if t.regs[events.Scroll].polling {
		a.enqueue(h, t, events.ScrollEvent{X: xoff, Y: yoff})
	}
}

func (a *App) keyTrampoline(h native.Handle, key, scancode, action, mods int) {
	t := a.table(h)
	if f := t.callbacks.key; f != nil {
		f(t.window, events.KeyFromNative(key), scancode, events.ActionFromNative(action), events.ModifiersFromNative(mods))
	}
	if t.regs[events.KeyKind].polling {
		a.enqueue(h, t, events.KeyEvent{Key: events.KeyFromNative(key), Scancode: scancode, Action: events.ActionFromNative(action), Mods: events.ModifiersFromNative(mods)})
	}
}

func (a *App) charTrampoline(h native.Handle, char rune) {
	t := a.table(h)
	if f := t.callbacks.char; f != nil {
		f(t.window, char)
	}
	if t.regs[events.Char].polling {
		a.enqueue(h, t, events.CharEvent{Char: char})
	}
}

func (a *App) charModsTrampoline(h native.Handle, char rune, mods int) {
	t := a.table(h)
	if f := t.callbacks.charMods; f != nil {
		f(t.window, char, events.ModifiersFromNative(mods))
	}
	if t.regs[events.CharMods].polling {
		a.enqueue(h, t, events.CharModsEvent{Char: char, Mods: events.ModifiersFromNative(mods)})
	}
}

func (a *App) dropTrampoline(h native.Handle, names []string) {
	t := a.table(h)
	if f := t.callbacks.drop; f != nil {
		f(t.window, slices.Clone(names))
	}
	if t.regs[events.FileDrop].polling {
		a.enqueue(h, t, events.FileDropEvent{Paths: slices.Clone(names)})
	}
}

func (a *App) maximizeTrampoline(h native.Handle, maximized bool) {
	t := a.table(h)
	if f := t.callbacks.maximize; f != nil {
		f(t.window, maximized)
	}
	if t.regs[events.Maximize].polling {
		a.enqueue(h, t, events.MaximizeEvent{Maximized: maximized})
	}
}

func (a *App) contentScaleTrampoline(h native.Handle, x, y float32) {
	t := a.table(h)
	if f := t.callbacks.contentScale; f != nil {
		f(t.window, x, y)
	}
	if t.regs[events.ContentScale].polling {
		a.enqueue(h, t, events.ContentScaleEvent{X: x, Y: y})
	}
}
