/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package config

import (
	"log/slog"

	"dirpx.dev/skinx/apis"
)

const (
	// DefaultIncludeBuiltins represents the default for IncludeBuiltins.
	// When true, built-in types get type ids too.
	DefaultIncludeBuiltins = true
	// DefaultMaxUnwrap represents the default for MaxUnwrap.
	// A value of 8 should be sufficient for all practical purposes.
	DefaultMaxUnwrap = 8
	// DefaultMapPreferElem represents the default for MapPreferElem.
	// When true, map value types are preferred when searching for named inner types.
	DefaultMapPreferElem = true
	// DefaultOutputType is the encoding read by libGDX skin loaders.
	DefaultOutputType = apis.Minimal
	// DefaultSingleLineColumns is the width under which flat objects are
	// printed on one line.
	DefaultSingleLineColumns = 100
	// DefaultFieldPolicy keeps exporting when a field cannot be serialized.
	DefaultFieldPolicy = apis.Drop
)

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	// Ensure MaxUnwrap is valid.
	if cfg.MaxUnwrap < 0 {
		cfg.MaxUnwrap = DefaultMaxUnwrap
	}
	if cfg.SingleLineColumns < 0 {
		cfg.SingleLineColumns = DefaultSingleLineColumns
	}
	return cfg
}

// DefaultConfig is the default configuration used when none is provided.
func DefaultConfig() apis.Config {
	return apis.Config{
		IncludeBuiltins:   DefaultIncludeBuiltins,
		MaxUnwrap:         DefaultMaxUnwrap,
		MapPreferElem:     DefaultMapPreferElem,
		OutputType:        DefaultOutputType,
		SingleLineColumns: DefaultSingleLineColumns,
		FieldPolicy:       DefaultFieldPolicy,
	}
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithIncludeBuiltins sets the IncludeBuiltins option.
func WithIncludeBuiltins(include bool) Option {
	return func(c *apis.Config) {
		c.IncludeBuiltins = include
	}
}

// WithMaxUnwrap sets the MaxUnwrap option.
// A negative value resets to the default.
func WithMaxUnwrap(max int) Option {
	return func(c *apis.Config) {
		if max < 0 {
			c.MaxUnwrap = DefaultMaxUnwrap
			return
		}
		c.MaxUnwrap = max
	}
}

// WithMapPreferElem sets the MapPreferElem option.
func WithMapPreferElem(prefer bool) Option {
	return func(c *apis.Config) {
		c.MapPreferElem = prefer
	}
}

// WithOutputType sets the document encoding.
func WithOutputType(o apis.OutputType) Option {
	return func(c *apis.Config) {
		c.OutputType = o
	}
}

// WithSingleLineColumns sets the single-line collapse width.
// Zero disables collapsing; a negative value resets to the default.
func WithSingleLineColumns(columns int) Option {
	return func(c *apis.Config) {
		if columns < 0 {
			c.SingleLineColumns = DefaultSingleLineColumns
			return
		}
		c.SingleLineColumns = columns
	}
}

// WithFieldPolicy sets the unsupported field policy.
func WithFieldPolicy(p apis.FieldPolicy) Option {
	return func(c *apis.Config) {
		c.FieldPolicy = p
	}
}

// WithRejectDuplicateValues makes registries refuse value-equal resources
// registered under different names.
func WithRejectDuplicateValues(reject bool) Option {
	return func(c *apis.Config) {
		c.RejectDuplicateValues = reject
	}
}

// WithLogger sets the diagnostics logger. Nil restores slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *apis.Config) {
		c.Logger = logger
	}
}
