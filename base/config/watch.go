// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"context"
	"path/filepath"

	"cogentcore.org/glfwx/base/errors"
	"github.com/fsnotify/fsnotify"
)

// Watch calls fun with freshly read options every time the given
// file is written or created, until ctx is done. Each reload starts
// from [Defaults]; files that fail to read or validate are logged and
// skipped. The directory is watched rather than the file so that
// editors that replace the file on save are handled.
func Watch(ctx context.Context, filename string, fun func(opts *Options)) error {
	if _, err := format(filename); err != nil {
		return err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	abs, err := filepath.Abs(filename)
	if err != nil {
		w.Close()
		return err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return err
	}
	go func() {
		defer w.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != abs || !ev.Has(fsnotify.Write|fsnotify.Create) {
					continue
				}
				opts := Defaults()
				if errors.Log(Open(abs, opts)) != nil {
					continue
				}
				fun(opts)
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				errors.Log(err)
			}
		}
	}()
	return nil
}
