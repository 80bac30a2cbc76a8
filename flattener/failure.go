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

package flattener

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrUnsupportedField marks fields whose type has no serialization rule.
	ErrUnsupportedField = errors.New("skinx(flattener): unsupported resource field type")
	// ErrUnresolvedReference marks references to unregistered instances.
	ErrUnresolvedReference = errors.New("skinx(flattener): unresolved reference")
	// ErrDuplicateField marks a field whose key was already written for the
	// same object.
	ErrDuplicateField = errors.New("skinx(flattener): duplicate field key")
)

// FailureKind classifies a per-item failure.
type FailureKind uint8

const (
	// UnresolvedReference: the field was dropped, or written inline for colors.
	UnresolvedReference FailureKind = iota
	// MalformedTintedName: the tinted drawable was skipped.
	MalformedTintedName
	// UnsupportedField: the field was dropped.
	UnsupportedField
	// DuplicateField: the field was dropped; an earlier value kept its key.
	DuplicateField
)

// String returns the kebab-case kind name used in logs.
func (k FailureKind) String() string {
	switch k {
	case UnresolvedReference:
		return "unresolved-reference"
	case MalformedTintedName:
		return "malformed-tinted-name"
	case UnsupportedField:
		return "unsupported-field"
	case DuplicateField:
		return "duplicate-field"
	}
	return fmt.Sprintf("FailureKind(%d)", k)
}

// Failure is one item lost or degraded during an export pass.
type Failure struct {
	Category string
	Resource string
	// Field is empty for failures of a whole resource.
	Field string
	Kind  FailureKind
	Err   error
}

// String renders "<kind> <category>/<resource>[.<field>]: <err>".
func (f Failure) String() string {
	at := f.Category + "/" + f.Resource
	if f.Field != "" {
		at += "." + f.Field
	}
	return fmt.Sprintf("%s %s: %v", f.Kind, at, f.Err)
}

// Failures is an ordered failure list.
type Failures []Failure

// Of returns the failures of kind k.
func (fs Failures) Of(k FailureKind) Failures {
	var out Failures
	for _, f := range fs {
		if f.Kind == k {
			out = append(out, f)
		}
	}
	return out
}

// UnsupportedFieldError reports a field with no serialization rule.
type UnsupportedFieldError struct {
	Resource string
	Field    string
	Type     reflect.Type
}

// Error implements error.
func (e *UnsupportedFieldError) Error() string {
	return fmt.Sprintf("%v: %s.%s is %v", ErrUnsupportedField, e.Resource, e.Field, e.Type)
}

// Unwrap returns ErrUnsupportedField.
func (e *UnsupportedFieldError) Unwrap() error { return ErrUnsupportedField }
