// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package desktop

import (
	"fmt"
	"log/slog"

	"cogentcore.org/glfwx/base/config"
	"cogentcore.org/glfwx/native"
)

// ErrorCode is the code of a [NativeError].
type ErrorCode int32 //enums:enum

const (
	// NotInitialized is reported when a function is called before the library is initialized.
	NotInitialized ErrorCode = native.CodeNotInitialized

	// NoCurrentContext is reported when a context function is called without a current context.
	NoCurrentContext ErrorCode = native.CodeNoCurrentContext

	// InvalidEnum is reported when an argument is not a valid enum value.
	InvalidEnum ErrorCode = native.CodeInvalidEnum

	// InvalidValue is reported when an argument value is out of range.
	InvalidValue ErrorCode = native.CodeInvalidValue

	// OutOfMemory is reported when a memory allocation failed.
	OutOfMemory ErrorCode = native.CodeOutOfMemory

	// APIUnavailable is reported when the requested client API is not supported.
	APIUnavailable ErrorCode = native.CodeAPIUnavailable

	// VersionUnavailable is reported when the requested context version is not available.
	VersionUnavailable ErrorCode = native.CodeVersionUnavailable

	// PlatformError is reported for platform-specific failures.
	PlatformError ErrorCode = native.CodePlatformError

	// FormatUnavailable is reported when a pixel or clipboard format is not available.
	FormatUnavailable ErrorCode = native.CodeFormatUnavailable

	// NoWindowContext is reported when the window has no context.
	NoWindowContext ErrorCode = native.CodeNoWindowContext
)

// NativeError is an error reported asynchronously by the native library.
type NativeError struct {
	Code        ErrorCode
	Description string
}

func (e *NativeError) Error() string {
	return fmt.Sprintf("desktop: native error %v: %s", e.Code, e.Description)
}

// ErrorHandler is called with every native error, on the goroutine
// that made the failing native call.
type ErrorHandler func(err *NativeError)

// FailOnErrors is an [ErrorHandler] that panics with the error.
func FailOnErrors(err *NativeError) {
	panic(err)
}

// LogErrors is an [ErrorHandler] that logs the error and continues.
func LogErrors(err *NativeError) {
	slog.Error("native error", "code", err.Code, "description", err.Description)
}

// InitError is returned by [Init] when the native library fails to
// initialize. It is not retryable.
type InitError struct {
	Err error
}

func (e *InitError) Error() string {
	return "desktop: failed to initialize the native library: " + e.Err.Error()
}

func (e *InitError) Unwrap() error {
	return e.Err
}

// handlerForPolicy returns the error handler selected by the policy.
func handlerForPolicy(policy string) ErrorHandler {
	switch policy {
	case config.ErrorPolicyFail:
		return FailOnErrors
	case config.ErrorPolicyIgnore:
		return nil
	}
	return LogErrors
}

// SetErrorHandler sets the function called with native errors.
// The native error slot is registered only while a handler is set,
// so a nil handler drops native errors.
func (a *App) SetErrorHandler(h ErrorHandler) {
	a.errorSlotMu.Lock()
	defer a.errorSlotMu.Unlock()
	a.mu.Lock()
	had := a.errorHandler != nil
	a.errorHandler = h
	a.mu.Unlock()
	switch has := h != nil; {
	case has && !had:
		a.lib.SetErrorCallback(a.errorTrampoline)
	case !has && had:
		a.lib.SetErrorCallback(nil)
	}
}

func (a *App) errorTrampoline(code int, description string) {
	a.mu.Lock()
	h := a.errorHandler
	a.mu.Unlock()
	if h != nil {
		h(&NativeError{Code: ErrorCode(code), Description: description})
	}
}
