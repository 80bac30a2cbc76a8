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

package apis

import "log/slog"

// Config carries read-only export knobs that influence naming, flattening
// and encoding. It is passed by value and should be treated as immutable by
// implementations.
type Config struct {
	// IncludeBuiltins controls whether builtin/no-package named types
	// (e.g., "int", "string") are returned as type identifiers. If false,
	// such cases yield "".
	IncludeBuiltins bool

	// MaxUnwrap limits container unwrapping depth (ptr/slice/array/chan/map).
	// Acts as a safety guard against pathological nesting.
	MaxUnwrap int

	// MapPreferElem controls which side of map[K]V is considered “primary”
	// when searching for a nearest named inner type. If true, prefer V; otherwise K.
	MapPreferElem bool

	// OutputType selects the document encoding.
	OutputType OutputType

	// SingleLineColumns is the width under which flat objects are collapsed
	// onto a single line by the pretty printer.
	SingleLineColumns int

	// FieldPolicy decides what happens to fields with no serialization rule.
	FieldPolicy FieldPolicy

	// RejectDuplicateValues makes registries refuse a resource that is
	// value-equal to one already registered under another name.
	RejectDuplicateValues bool

	// Logger receives export diagnostics. Nil means slog.Default().
	Logger *slog.Logger
}

// Log returns the configured logger or the process default.
func (c Config) Log() *slog.Logger {
	if c.Logger == nil {
		return slog.Default()
	}
	return c.Logger
}
