// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelFromFlags(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, LevelFromFlags(true, false, true))
	assert.Equal(t, slog.LevelInfo, LevelFromFlags(false, true, false))
	assert.Equal(t, slog.LevelError, LevelFromFlags(false, false, true))
	assert.Equal(t, slog.LevelWarn, LevelFromFlags(false, false, false))
}

func TestLevelFromString(t *testing.T) {
	lvl, err := LevelFromString("DEBUG")
	assert.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)

	lvl, err = LevelFromString("warning")
	assert.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, lvl)

	lvl, err = LevelFromString("")
	assert.NoError(t, err)
	assert.Equal(t, UserLevel, lvl)

	_, err = LevelFromString("loud")
	assert.Error(t, err)
}

func TestHandler(t *testing.T) {
	var buf bytes.Buffer
	lg := slog.New(NewHandler(&buf, slog.LevelInfo))
	lg.Debug("hidden")
	lg.Info("shown", "n", 1)
	lg.Error("failed")

	// a bytes.Buffer is not a terminal, so no escape codes
	s := buf.String()
	assert.NotContains(t, s, "hidden")
	assert.Contains(t, s, "level=INFO msg=shown n=1")
	assert.Contains(t, s, "level=ERROR msg=failed")
}

func TestSetLevel(t *testing.T) {
	prev := UserLevel
	defer SetLevel(prev)
	SetLevel(slog.LevelError)
	assert.Equal(t, slog.LevelError, UserLevel)
	assert.Equal(t, slog.LevelError, levelVar.Level())
}
