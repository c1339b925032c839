// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package native

// Native error codes, as passed to an [ErrorFunc].
const (
	CodeNotInitialized     = 0x00010001
	CodeNoCurrentContext   = 0x00010002
	CodeInvalidEnum        = 0x00010003
	CodeInvalidValue       = 0x00010004
	CodeOutOfMemory        = 0x00010005
	CodeAPIUnavailable     = 0x00010006
	CodeVersionUnavailable = 0x00010007
	CodePlatformError      = 0x00010008
	CodeFormatUnavailable  = 0x00010009
	CodeNoWindowContext    = 0x0001000A
)
