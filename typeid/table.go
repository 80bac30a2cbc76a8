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

package typeid

import (
	"errors"
	"reflect"
	"sync"

	"dirpx.dev/skinx/apis"
	"dirpx.dev/skinx/config"
	uref "dirpx.dev/skinx/utils/reflect"
)

var (
	// ErrNilType is returned when a nil reflect.Type is provided.
	ErrNilType = errors.New("skinx(typeid): nil reflect.Type provided")
	// ErrEmptyID is returned when an empty identifier is provided.
	ErrEmptyID = errors.New("skinx(typeid): empty type id provided")
	// ErrConflictingID indicates an attempt to re-register
	// a type with a different identifier.
	ErrConflictingID = errors.New("skinx(typeid): conflicting type id registration")
	// ErrNoTable is returned when pinning ids on a chain built without a table.
	ErrNoTable = errors.New("skinx(typeid): no type id table")
)

// NewTable constructs a Table that normalizes types according to cfg.
func NewTable(cfg apis.Config) *Table {
	if cfg.MaxUnwrap <= 0 {
		cfg.MaxUnwrap = config.DefaultMaxUnwrap
	}
	return &Table{cfg: cfg}
}

// Table pins explicit type ids, overriding whatever a type would be named
// otherwise. It is backed by sync.Map and safe for concurrent use.
type Table struct {
	// cfg is the configuration used for type normalization.
	cfg apis.Config
	// mu guards write-side consistency and counter
	mu sync.Mutex
	// m maps reflect.Type to its pinned id.
	m sync.Map // map[reflect.Type]string
	// count tracks the number of registered entries.
	count int
}

// Register associates the nearest named type of t with id.
// It is idempotent for the same (type, id) pair.
func (tb *Table) Register(t reflect.Type, id string) error {
	if t == nil {
		return ErrNilType
	}
	if id == "" {
		return ErrEmptyID
	}

	b, err := uref.Normalize(t, tb.cfg)
	if err != nil {
		return err
	}

	// Fast read path: idempotency / conflict check without locking.
	if old, ok := tb.m.Load(b); ok {
		if old.(string) == id {
			return nil
		}
		return ErrConflictingID
	}

	tb.mu.Lock()
	defer tb.mu.Unlock()

	// Re-check under lock in case another goroutine stored meanwhile.
	if old, ok := tb.m.Load(b); ok {
		if old.(string) == id {
			return nil
		}
		return ErrConflictingID
	}

	tb.m.Store(b, id)
	tb.count++
	return nil
}

// Lookup returns the pinned id of t if present.
func (tb *Table) Lookup(t reflect.Type) (string, bool) {
	if t == nil {
		return "", false
	}
	nt, err := uref.Normalize(t, tb.cfg)
	if err != nil {
		return "", false
	}
	if v, ok := tb.m.Load(nt); ok {
		return v.(string), true
	}
	return "", false
}

// Entries returns a snapshot of pinned ids (order is unspecified).
func (tb *Table) Entries() []apis.TypeEntry {
	entries := make([]apis.TypeEntry, 0, tb.Count())
	tb.m.Range(func(key, value any) bool {
		entries = append(entries, apis.TypeEntry{Type: key.(reflect.Type), ID: value.(string)})
		return true
	})
	return entries
}

// Count returns the number of pinned ids.
func (tb *Table) Count() int {
	tb.mu.Lock()
	defer tb.mu.Unlock()
	return tb.count
}
