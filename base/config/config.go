// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the options that control the event
// buffering, native error policy and logging of the binding,
// and the functions to read and write them as TOML or YAML.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/glfwx/base/errors"
	"cogentcore.org/glfwx/base/logx"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrorPolicies are the values of [Options.ErrorPolicy].
const (
	// ErrorPolicyLog logs native errors and continues.
	ErrorPolicyLog = "log"

	// ErrorPolicyFail panics on the first native error.
	ErrorPolicyFail = "fail"

	// ErrorPolicyIgnore drops native errors.
	ErrorPolicyIgnore = "ignore"
)

// Options are the options of the binding.
type Options struct {

	// RingCapacity is the initial number of slots in the ring buffer
	// of each window's event channel.
	RingCapacity int `toml:"ring_capacity" yaml:"ring_capacity"`

	// RingMaxLen is the hard maximum length of the ring buffer of each
	// window's event channel; events beyond it go to the overflow queue.
	RingMaxLen int `toml:"ring_max_len" yaml:"ring_max_len"`

	// ErrorPolicy selects how native errors are handled: log, fail or ignore.
	ErrorPolicy string `toml:"error_policy" yaml:"error_policy"`

	// LogLevel is the name of the minimum level that is logged:
	// debug, info, warn or error. Empty is [logx.UserLevel].
	LogLevel string `toml:"log_level" yaml:"log_level"`
}

// Defaults returns the default options.
func Defaults() *Options {
	return &Options{
		RingCapacity: 16,
		RingMaxLen:   1024,
		ErrorPolicy:  ErrorPolicyLog,
		LogLevel:     "info",
	}
}

// Validate returns an error describing every invalid option.
func (o *Options) Validate() error {
	var errs []error
	if o.RingCapacity <= 0 {
		errs = append(errs, fmt.Errorf("ring_capacity must be positive, got %d", o.RingCapacity))
	}
	if o.RingMaxLen < o.RingCapacity {
		errs = append(errs, fmt.Errorf("ring_max_len (%d) must be at least ring_capacity (%d)", o.RingMaxLen, o.RingCapacity))
	}
	switch o.ErrorPolicy {
	case ErrorPolicyLog, ErrorPolicyFail, ErrorPolicyIgnore:
	default:
		errs = append(errs, fmt.Errorf("unknown error_policy %q", o.ErrorPolicy))
	}
	if _, err := logx.LevelFromString(o.LogLevel); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// format is the file format for the extension of the filename.
func format(filename string) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".toml":
		return "toml", nil
	case ".yaml", ".yml":
		return "yaml", nil
	default:
		return "", fmt.Errorf("config: unsupported file extension %q for %q", ext, filename)
	}
}

// Open reads the options from the given TOML or YAML file, chosen by
// the extension, into opts. Options missing from the file keep
// their current value. The result is validated.
func Open(filename string, opts *Options) error {
	fm, err := format(filename)
	if err != nil {
		return err
	}
	b, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	return Read(b, fm, opts)
}

// Read decodes the options from b in the given format ("toml" or "yaml").
func Read(b []byte, fm string, opts *Options) error {
	var err error
	switch fm {
	case "toml":
		err = toml.Unmarshal(b, opts)
	case "yaml":
		err = yaml.Unmarshal(b, opts)
	default:
		return fmt.Errorf("config: unsupported format %q", fm)
	}
	if err != nil {
		return fmt.Errorf("config: decoding %s: %w", fm, err)
	}
	return opts.Validate()
}

// Save writes the options to the given TOML or YAML file, chosen by
// the extension.
func Save(filename string, opts *Options) error {
	fm, err := format(filename)
	if err != nil {
		return err
	}
	var b []byte
	if fm == "toml" {
		b, err = toml.Marshal(opts)
	} else {
		b, err = yaml.Marshal(opts)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0666)
}
