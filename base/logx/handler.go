// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides the default slog logger setup, with
// a user-selected verbosity level and colored level names.
package logx

import (
	"io"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
)

// levelVar is the level used by the handler installed through
// [SetDefaultLogger], so that [SetLevel] takes effect immediately.
var levelVar slog.LevelVar

// SetDefaultLogger sets the default logger to a text handler on
// [os.Stderr] at [UserLevel], with colored level names when the
// terminal supports them.
func SetDefaultLogger() {
	levelVar.Set(UserLevel)
	slog.SetDefault(slog.New(NewHandler(os.Stderr, &levelVar)))
}

// SetLevel sets [UserLevel] and the level of the default logger
// installed through [SetDefaultLogger].
func SetLevel(level slog.Level) {
	UserLevel = level
	levelVar.Set(level)
}

// NewHandler returns a [slog.TextHandler] writing to w at the given
// level, with the level names colored through termenv according to
// the color profile of w.
func NewHandler(w io.Writer, level slog.Leveler) slog.Handler {
	out := termenv.NewOutput(w)
	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key != slog.LevelKey || len(groups) != 0 {
				return a
			}
			lvl, ok := a.Value.Any().(slog.Level)
			if !ok {
				return a
			}
			a.Value = slog.StringValue(LevelString(out, lvl))
			return a
		},
	})
}

// LevelString returns the name of the level styled for the output.
func LevelString(out *termenv.Output, lvl slog.Level) string {
	s := out.String(lvl.String())
	switch {
	case lvl >= slog.LevelError:
		s = s.Foreground(out.Color("1")).Bold()
	case lvl >= slog.LevelWarn:
		s = s.Foreground(out.Color("3"))
	case lvl >= slog.LevelInfo:
		s = s.Foreground(out.Color("4"))
	default:
		s = s.Foreground(out.Color("8"))
	}
	return s.String()
}
