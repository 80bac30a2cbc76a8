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

import (
	"fmt"
	"strings"
)

// OutputType selects how an exported document is encoded.
//
// # Values
//
//   - Minimal: relaxed JSON as read by libGDX skin loaders. Names and
//     values are left unquoted wherever that is unambiguous.
//   - JSON: strict, pretty printed JSON.
//   - Compact: strict JSON on a single line, no pretty printing.
//   - YAML: a YAML mapping with the same structure and ordering.
//
// # Contract
//
//   - OutputType is a stable, public API: adding new values is allowed,
//     but existing values MUST NOT change their semantics.
//   - Minimal, JSON and YAML honor Config.SingleLineColumns only where the
//     encoding has a single-line form (flow objects); Compact ignores it.
type OutputType int

const (
	// Minimal is the default encoding, compatible with libGDX JsonReader.
	Minimal OutputType = iota

	// JSON is strict JSON with quoted names and string values.
	JSON

	// Compact is strict JSON without any whitespace.
	Compact

	// YAML is a block-style YAML document.
	YAML
)

// String returns the canonical token for known values and a diagnostic
// form for unknown ones.
func (o OutputType) String() string {
	switch o {
	case Minimal:
		return "minimal"
	case JSON:
		return "json"
	case Compact:
		return "compact"
	case YAML:
		return "yaml"
	default:
		return fmt.Sprintf("Unknown(%d)", o)
	}
}

// Extension returns the conventional file extension for the encoding.
func (o OutputType) Extension() string {
	if o == YAML {
		return ".yaml"
	}
	return ".json"
}

// ParseOutputType parses a textual representation of an OutputType.
//
// Matching is case-insensitive and ignores surrounding whitespace. Any
// unknown input results in Minimal and a non-nil error.
func ParseOutputType(s string) (OutputType, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Minimal, fmt.Errorf("skinx: empty output type")
	}

	switch strings.ToLower(trimmed) {
	case "minimal":
		return Minimal, nil
	case "json":
		return JSON, nil
	case "compact":
		return Compact, nil
	case "yaml", "yml":
		return YAML, nil
	default:
		return Minimal, fmt.Errorf("skinx: unknown output type %q", s)
	}
}

// MustParseOutputType is like ParseOutputType but panics on invalid input.
//
// Intended for hard-coded values and tests only.
func MustParseOutputType(s string) OutputType {
	o, err := ParseOutputType(s)
	if err != nil {
		panic(err)
	}
	return o
}

// MarshalText implements encoding.TextMarshaler.
//
// Unknown values are rejected rather than persisted in their diagnostic form.
func (o OutputType) MarshalText() ([]byte, error) {
	switch o {
	case Minimal, JSON, Compact, YAML:
		return []byte(o.String()), nil
	default:
		return nil, fmt.Errorf("skinx: cannot marshal unknown output type %d", o)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
// On failure *o is left unchanged.
func (o *OutputType) UnmarshalText(text []byte) error {
	value, err := ParseOutputType(string(text))
	if err != nil {
		return err
	}
	*o = value
	return nil
}
