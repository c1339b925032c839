// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

// MouseButton is a mouse button, numbered the way the native library
// numbers them.
type MouseButton int32 //enums:enum

const (
	// ButtonLeft is the primary button.
	ButtonLeft MouseButton = iota

	// ButtonRight is the secondary button.
	ButtonRight

	// ButtonMiddle is the middle button or wheel click.
	ButtonMiddle

	Button4
	Button5
	Button6
	Button7
	Button8
)

// MouseButtonFromNative converts a raw native button number. Out of
// range values are clamped to [Button8].
func MouseButtonFromNative(b int) MouseButton {
	if b < 0 || b >= int(MouseButtonN) {
		return MouseButtonN - 1
	}
	return MouseButton(b)
}
