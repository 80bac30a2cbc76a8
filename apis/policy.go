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

// FieldPolicy decides what happens when a resource field holds a value
// with no serialization rule.
//
//   - Drop: the field is left out of the document, the failure is
//     recorded in the export report and the export continues.
//   - Fail: the whole export stops and returns the failure.
//
// Drop produces a possibly lossy document that is always written; callers
// distinguish clean from lossy exports through the report. Fail guarantees
// that a written document carries every field of every exported resource.
type FieldPolicy int

const (
	// Drop records the failure and continues.
	Drop FieldPolicy = iota
	// Fail aborts the export on the first unsupported field.
	Fail
)

// String returns the canonical token for known values.
func (p FieldPolicy) String() string {
	switch p {
	case Drop:
		return "drop"
	case Fail:
		return "fail"
	default:
		return fmt.Sprintf("Unknown(%d)", p)
	}
}

// ParseFieldPolicy parses a case-insensitive policy token.
func ParseFieldPolicy(s string) (FieldPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return Drop, fmt.Errorf("skinx: empty field policy")
	case "drop":
		return Drop, nil
	case "fail":
		return Fail, nil
	default:
		return Drop, fmt.Errorf("skinx: unknown field policy %q", s)
	}
}

// MustParseFieldPolicy is like ParseFieldPolicy but panics on invalid input.
func MustParseFieldPolicy(s string) FieldPolicy {
	p, err := ParseFieldPolicy(s)
	if err != nil {
		panic(err)
	}
	return p
}

// MarshalText implements encoding.TextMarshaler.
func (p FieldPolicy) MarshalText() ([]byte, error) {
	switch p {
	case Drop, Fail:
		return []byte(p.String()), nil
	default:
		return nil, fmt.Errorf("skinx: cannot marshal unknown field policy %d", p)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *FieldPolicy) UnmarshalText(text []byte) error {
	value, err := ParseFieldPolicy(string(text))
	if err != nil {
		return err
	}
	*p = value
	return nil
}
