// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package desktop

import "cogentcore.org/glfwx/events"

// callbacks holds the optional closure for every event kind.
type callbacks struct {
	pos             func(w *Window, x, y int)
	size            func(w *Window, width, height int)
	close           func(w *Window)
	refresh         func(w *Window)
	focus           func(w *Window, focused bool)
	iconify         func(w *Window, iconified bool)
	framebufferSize func(w *Window, width, height int)
	mouseButton     func(w *Window, button events.MouseButton, action events.Action, mods events.Modifiers)
	cursorPos       func(w *Window, x, y float64)
	cursorEnter     func(w *Window, entered bool)
	scroll          func(w *Window, xoff, yoff float64)
	key             func(w *Window, key events.Key, scancode int, action events.Action, mods events.Modifiers)
	char            func(w *Window, char rune)
	charMods        func(w *Window, char rune, mods events.Modifiers)
	drop            func(w *Window, paths []string)
	maximize        func(w *Window, maximized bool)
	contentScale    func(w *Window, x, y float32)
}

// SetPosCallback sets the function called when the window is moved.
// A nil function unsets it.
func (w *Window) SetPosCallback(f func(w *Window, x, y int)) {
	t := w.table()
	t.callbacks.pos = f
	w.update(t, events.Pos, f != nil, t.regs[events.Pos].polling)
}

// UnsetPosCallback unsets the function set with [Window.SetPosCallback].
func (w *Window) UnsetPosCallback() {
	w.SetPosCallback(nil)
}

// SetPosPolling sets whether Pos events are sent to the event channel.
func (w *Window) SetPosPolling(on bool) {
	w.SetPolling(events.Pos, on)
}

// IsPosPolling returns whether Pos events are sent to the event channel.
func (w *Window) IsPosPolling() bool {
	return w.IsPolling(events.Pos)
}

// SetSizeCallback sets the function called when the window is resized.
// A nil function unsets it.
func (w *Window) SetSizeCallback(f func(w *Window, width, height int)) {
	t := w.table()
	t.callbacks.size = f
	w.update(t, events.Size, f != nil, t.regs[events.Size].polling)
}

// UnsetSizeCallback unsets the function set with [Window.SetSizeCallback].
func (w *Window) UnsetSizeCallback() {
	w.SetSizeCallback(nil)
}

// SetSizePolling sets whether Size events are sent to the event channel.
func (w *Window) SetSizePolling(on bool) {
	w.SetPolling(events.Size, on)
}

// IsSizePolling returns whether Size events are sent to the event channel.
func (w *Window) IsSizePolling() bool {
	return w.IsPolling(events.Size)
}

// SetCloseCallback sets the function called when the user attempts to close the window.
// A nil function unsets it.
func (w *Window) SetCloseCallback(f func(w *Window)) {
	t := w.table()
	t.callbacks.close = f
	w.update(t, events.Close, f != nil, t.regs[events.Close].polling)
}

// UnsetCloseCallback unsets the function set with [Window.SetCloseCallback].
func (w *Window) UnsetCloseCallback() {
	w.SetCloseCallback(nil)
}

// SetClosePolling sets whether Close events are sent to the event channel.
func (w *Window) SetClosePolling(on bool) {
	w.SetPolling(events.Close, on)
}

// IsClosePolling returns whether Close events are sent to the event channel.
func (w *Window) IsClosePolling() bool {
	return w.IsPolling(events.Close)
}

// SetRefreshCallback sets the function called when the content area needs to be redrawn.
// A nil function unsets it.
func (w *Window) SetRefreshCallback(f func(w *Window)) {
	t := w.table()
	t.callbacks.refresh = f
	w.update(t, events.Refresh, f != nil, t.regs[events.Refresh].polling)
}

// UnsetRefreshCallback unsets the function set with [Window.SetRefreshCallback].
func (w *Window) UnsetRefreshCallback() {
	w.SetRefreshCallback(nil)
}

// SetRefreshPolling sets whether Refresh events are sent to the event channel.
func (w *Window) SetRefreshPolling(on bool) {
	w.SetPolling(events.Refresh, on)
}

// IsRefreshPolling returns whether Refresh events are sent to the event channel.
func (w *Window) IsRefreshPolling() bool {
	return w.IsPolling(events.Refresh)
}

// SetFocusCallback sets the function called when the window gains or loses input focus.
// A nil function unsets it.
func (w *Window) SetFocusCallback(f func(w *Window, focused bool)) {
	t := w.table()
	t.callbacks.focus = f
	w.update(t, events.Focus, f != nil, t.regs[events.Focus].polling)
}

// UnsetFocusCallback unsets the function set with [Window.SetFocusCallback].
func (w *Window) UnsetFocusCallback() {
	w.SetFocusCallback(nil)
}

// SetFocusPolling sets whether Focus events are sent to the event channel.
func (w *Window) SetFocusPolling(on bool) {
	w.SetPolling(events.Focus, on)
}

// IsFocusPolling returns whether Focus events are sent to the event channel.
func (w *Window) IsFocusPolling() bool {
	return w.IsPolling(events.Focus)
}

// SetIconifyCallback sets the function called when the window is iconified or restored.
// A nil function unsets it.
func (w *Window) SetIconifyCallback(f func(w *Window, iconified bool)) {
	t := w.table()
	t.callbacks.iconify = f
	w.update(t, events.Iconify, f != nil, t.regs[events.Iconify].polling)
}

// UnsetIconifyCallback unsets the function set with [Window.SetIconifyCallback].
func (w *Window) UnsetIconifyCallback() {
	w.SetIconifyCallback(nil)
}

// SetIconifyPolling sets whether Iconify events are sent to the event channel.
func (w *Window) SetIconifyPolling(on bool) {
	w.SetPolling(events.Iconify, on)
}

// IsIconifyPolling returns whether Iconify events are sent to the event channel.
func (w *Window) IsIconifyPolling() bool {
	return w.IsPolling(events.Iconify)
}

// SetFramebufferSizeCallback sets the function called when the framebuffer is resized.
// A nil function unsets it.
func (w *Window) SetFramebufferSizeCallback(f func(w *Window, width, height int)) {
	t := w.table()
	t.callbacks.framebufferSize = f
	w.update(t, events.FramebufferSize, f != nil, t.regs[events.FramebufferSize].polling)
}

// UnsetFramebufferSizeCallback unsets the function set with [Window.SetFramebufferSizeCallback].
func (w *Window) UnsetFramebufferSizeCallback() {
	w.SetFramebufferSizeCallback(nil)
}

// SetFramebufferSizePolling sets whether FramebufferSize events are sent to the event channel.
func (w *Window) SetFramebufferSizePolling(on bool) {
	w.SetPolling(events.FramebufferSize, on)
}

// IsFramebufferSizePolling returns whether FramebufferSize events are sent to the event channel.
func (w *Window) IsFramebufferSizePolling() bool {
	return w.IsPolling(events.FramebufferSize)
}

// SetMouseButtonCallback sets the function called when a mouse button is pressed or released.
// A nil function unsets it.
func (w *Window) SetMouseButtonCallback(f func(w *Window, button events.MouseButton, action events.Action, mods events.Modifiers)) {
	t := w.table()
	t.callbacks.mouseButton = f
	w.update(t, events.MouseButtonKind, f != nil, t.regs[events.MouseButtonKind].polling)
}

// UnsetMouseButtonCallback unsets the function set with [Window.SetMouseButtonCallback].
func (w *Window) UnsetMouseButtonCallback() {
	w.SetMouseButtonCallback(nil)
}

// SetMouseButtonPolling sets whether MouseButton events are sent to the event channel.
func (w *Window) SetMouseButtonPolling(on bool) {
	w.SetPolling(events.MouseButtonKind, on)
}

// IsMouseButtonPolling returns whether MouseButton events are sent to the event channel.
func (w *Window) IsMouseButtonPolling() bool {
	return w.IsPolling(events.MouseButtonKind)
}

// SetCursorPosCallback sets the function called when the cursor moves over the content area.
// A nil function unsets it.
func (w *Window) SetCursorPosCallback(f func(w *Window, x, y float64)) {
	t := w.table()
	t.callbacks.cursorPos = f
	w.update(t, events.CursorPos, f != nil, t.regs[events.CursorPos].polling)
}

// UnsetCursorPosCallback unsets the function set with [Window.SetCursorPosCallback].
func (w *Window) UnsetCursorPosCallback() {
	w.SetCursorPosCallback(nil)
}

// SetCursorPosPolling sets whether CursorPos events are sent to the event channel.
func (w *Window) SetCursorPosPolling(on bool) {
	w.SetPolling(events.CursorPos, on)
}

// IsCursorPosPolling returns whether CursorPos events are sent to the event channel.
func (w *Window) IsCursorPosPolling() bool {
	return w.IsPolling(events.CursorPos)
}

// SetCursorEnterCallback sets the function called when the cursor enters or leaves the content area.
// A nil function unsets it.
func (w *Window) SetCursorEnterCallback(f func(w *Window, entered bool)) {
	t := w.table()
	t.callbacks.cursorEnter = f
	w.update(t, events.CursorEnter, f != nil, t.regs[events.CursorEnter].polling)
}

// UnsetCursorEnterCallback unsets the function set with [Window.SetCursorEnterCallback].
func (w *Window) UnsetCursorEnterCallback() {
	w.SetCursorEnterCallback(nil)
}

// SetCursorEnterPolling sets whether CursorEnter events are sent to the event channel.
func (w *Window) SetCursorEnterPolling(on bool) {
	w.SetPolling(events.CursorEnter, on)
}

// IsCursorEnterPolling returns whether CursorEnter events are sent to the event channel.
func (w *Window) IsCursorEnterPolling() bool {
	return w.IsPolling(events.CursorEnter)
}

// SetScrollCallback sets the function called when the user scrolls.
// A nil function unsets it.
func (w *Window) SetScrollCallback(f func(w *Window, xoff, yoff float64)) {
	t := w.table()
	t.callbacks.scroll = f
	w.update(t, events.Scroll, f != nil, t.regs[events.Scroll].polling)
}

// UnsetScrollCallback unsets the function set with [Window.SetScrollCallback].
func (w *Window) UnsetScrollCallback() {
	w.SetScrollCallback(nil)
}

// SetScrollPolling sets whether Scroll events are sent to the event channel.
func (w *Window) SetScrollPolling(on bool) {
	w.SetPolling(events.Scroll, on)
}

// IsScrollPolling returns whether Scroll events are sent to the event channel.
func (w *Window) IsScrollPolling() bool {
	return w.IsPolling(events.Scroll)
}

// SetKeyCallback sets the function called when a key is pressed, repeated or released.
// A nil function unsets it.
func (w *Window) SetKeyCallback(f func(w *Window, key events.Key, scancode int, action events.Action, mods events.Modifiers)) {
	t := w.table()
	t.callbacks.key = f
	w.update(t, events.KeyKind, f != nil, t.regs[events.KeyKind].polling)
}

// UnsetKeyCallback unsets the function set with [Window.SetKeyCallback].
func (w *Window) UnsetKeyCallback() {
	w.SetKeyCallback(nil)
}

// SetKeyPolling sets whether Key events are sent to the event channel.
func (w *Window) SetKeyPolling(on bool) {
	w.SetPolling(events.KeyKind, on)
}

// IsKeyPolling returns whether Key events are sent to the event channel.
func (w *Window) IsKeyPolling() bool {
	return w.IsPolling(events.KeyKind)
}

// SetCharCallback sets the function called when a Unicode character is input.
// A nil function unsets it.
func (w *Window) SetCharCallback(f func(w *Window, char rune)) {
	t := w.table()
	t.callbacks.char = f
	w.update(t, events.Char, f != nil, t.regs[events.Char].polling)
}

// UnsetCharCallback unsets the function set with [Window.SetCharCallback].
func (w *Window) UnsetCharCallback() {
	w.SetCharCallback(nil)
}

// SetCharPolling sets whether Char events are sent to the event channel.
func (w *Window) SetCharPolling(on bool) {
	w.SetPolling(events.Char, on)
}

// IsCharPolling returns whether Char events are sent to the event channel.
func (w *Window) IsCharPolling() bool {
	return w.IsPolling(events.Char)
}

// SetCharModsCallback sets the function called when a Unicode character is input, with the modifier keys held.
// A nil function unsets it.
func (w *Window) SetCharModsCallback(f func(w *Window, char rune, mods events.Modifiers)) {
	t := w.table()
	t.callbacks.charMods = f
	w.update(t, events.CharMods, f != nil, t.regs[events.CharMods].polling)
}

// UnsetCharModsCallback unsets the function set with [Window.SetCharModsCallback].
func (w *Window) UnsetCharModsCallback() {
	w.SetCharModsCallback(nil)
}

// SetCharModsPolling sets whether CharMods events are sent to the event channel.
func (w *Window) SetCharModsPolling(on bool) {
	w.SetPolling(events.CharMods, on)
}

// IsCharModsPolling returns whether CharMods events are sent to the event channel.
func (w *Window) IsCharModsPolling() bool {
	return w.IsPolling(events.CharMods)
}

// SetDropCallback sets the function called when files are dropped onto the window.
// A nil function unsets it.
func (w *Window) SetDropCallback(f func(w *Window, paths []string)) {
	t := w.table()
	t.callbacks.drop = f
	w.update(t, events.FileDrop, f != nil, t.regs[events.FileDrop].polling)
}

// UnsetDropCallback unsets the function set with [Window.SetDropCallback].
func (w *Window) UnsetDropCallback() {
	w.SetDropCallback(nil)
}

// SetDropPolling sets whether Drop events are sent to the event channel.
func (w *Window) SetDropPolling(on bool) {
	w.SetPolling(events.FileDrop, on)
}

// IsDropPolling returns whether Drop events are sent to the event channel.
func (w *Window) IsDropPolling() bool {
	return w.IsPolling(events.FileDrop)
}

// SetMaximizeCallback sets the function called when the window is maximized or restored.
// A nil function unsets it.
func (w *Window) SetMaximizeCallback(f func(w *Window, maximized bool)) {
	t := w.table()
	t.callbacks.maximize = f
	w.update(t, events.Maximize, f != nil, t.regs[events.Maximize].polling)
}

// UnsetMaximizeCallback unsets the function set with [Window.SetMaximizeCallback].
func (w *Window) UnsetMaximizeCallback() {
	w.SetMaximizeCallback(nil)
}

// SetMaximizePolling sets whether Maximize events are sent to the event channel.
func (w *Window) SetMaximizePolling(on bool) {
	w.SetPolling(events.Maximize, on)
}

// IsMaximizePolling returns whether Maximize events are sent to the event channel.
func (w *Window) IsMaximizePolling() bool {
	return w.IsPolling(events.Maximize)
}

// SetContentScaleCallback sets the function called when the content scale of the window changes.
// A nil function unsets it.
func (w *Window) SetContentScaleCallback(f func(w *Window, x, y float32)) {
	t := w.table()
	t.callbacks.contentScale = f
	w.update(t, events.ContentScale, f != nil, t.regs[events.ContentScale].polling)
}

// UnsetContentScaleCallback unsets the function set with [Window.SetContentScaleCallback].
func (w *Window) UnsetContentScaleCallback() {
	w.SetContentScaleCallback(nil)
}

// SetContentScalePolling sets whether ContentScale events are sent to the event channel.
func (w *Window) SetContentScalePolling(on bool) {
	w.SetPolling(events.ContentScale, on)
}

// IsContentScalePolling returns whether ContentScale events are sent to the event channel.
func (w *Window) IsContentScalePolling() bool {
	return w.IsPolling(events.ContentScale)
}
