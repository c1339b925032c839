// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import "strings"

// Action is the state transition reported by key and mouse button events.
type Action int32 //enums:enum

const (
	// Release is a key or button being released.
	Release Action = iota

	// Press is a key or button being pressed.
	Press

	// Repeat is a key held down until it repeated.
	Repeat
)

// ActionFromNative converts a raw native action. Unknown values are
// reported as [Release].
func ActionFromNative(a int) Action {
	switch Action(a) {
	case Press, Repeat:
		return Action(a)
	}
	return Release
}

// Modifiers is a bit set of the modifier keys held during an event.
// The bit values match the native library.
type Modifiers int32

const (
	Shift Modifiers = 1 << iota
	Control
	Alt
	Super
	CapsLock
	NumLock

	modifiersMask = Shift | Control | Alt | Super | CapsLock | NumLock
)

var modifierNames = []string{"Shift", "Control", "Alt", "Super", "CapsLock", "NumLock"}

// Has returns whether all of the given modifiers are set.
func (m Modifiers) Has(mods Modifiers) bool {
	return m&mods == mods
}

// String returns the set modifiers joined with "|", in bit order.
func (m Modifiers) String() string {
	if m == 0 {
		return "None"
	}
	var parts []string
	for i, nm := range modifierNames {
		if m&(1<<i) != 0 {
			parts = append(parts, nm)
		}
	}
	return strings.Join(parts, "|")
}

// ModifiersFromNative converts raw native modifier bits, dropping any
// bits this package does not know about.
func ModifiersFromNative(mods int) Modifiers {
	return Modifiers(mods) & modifiersMask
}

// Key is a physical keyboard key, numbered the way the native library
// numbers them. Only the keys needed by the binding itself are named;
// every other native key code passes through unchanged.
type Key int32

const (
	KeyUnknown   Key = -1
	KeySpace     Key = 32
	KeyA         Key = 65
	KeyZ         Key = 90
	KeyEscape    Key = 256
	KeyEnter     Key = 257
	KeyTab       Key = 258
	KeyBackspace Key = 259
	KeyRight     Key = 262
	KeyLeft      Key = 263
	KeyDown      Key = 264
	KeyUp        Key = 265
	KeyF1        Key = 290
	KeyLast      Key = 348
)

// KeyFromNative converts a raw native key code. Values outside the
// native range are reported as [KeyUnknown].
func KeyFromNative(k int) Key {
	if k < int(KeySpace) || k > int(KeyLast) {
		return KeyUnknown
	}
	return Key(k)
}
