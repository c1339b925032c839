// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureLog(t *testing.T) *bytes.Buffer {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func TestLog(t *testing.T) {
	buf := captureLog(t)
	assert.NoError(t, Log(nil))
	assert.Empty(t, buf.String())

	err := New("boom")
	assert.Equal(t, err, Log(err))
	assert.Contains(t, buf.String(), "boom")
	assert.Contains(t, buf.String(), "TestLog")
}

func TestIgnore1(t *testing.T) {
	assert.Equal(t, 2, Ignore1(2, New("ignored")))
	assert.Equal(t, "a", Ignore1("a", nil))
}
