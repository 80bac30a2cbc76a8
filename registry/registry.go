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

package registry

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"dirpx.dev/skinx/apis"
	"dirpx.dev/skinx/config"
	uref "dirpx.dev/skinx/utils/reflect"
)

var (
	// ErrNilType is returned when a nil reflect.Type is provided.
	ErrNilType = errors.New("skinx(registry): nil reflect.Type provided")
	// ErrEmptyName is returned when an empty name is provided.
	ErrEmptyName = errors.New("skinx(registry): empty name provided")
	// ErrNilValue is returned when a nil resource is provided.
	ErrNilValue = errors.New("skinx(registry): nil resource provided")
	// ErrTypeMismatch is returned when a resource does not belong to the bucket type.
	ErrTypeMismatch = errors.New("skinx(registry): resource does not match bucket type")
	// ErrConflictingRegistration indicates an attempt to bind a name that
	// already holds a different resource.
	ErrConflictingRegistration = errors.New("skinx(registry): conflicting resource registration")
	// ErrDuplicateValue indicates that an equal resource is already registered
	// under another name (only with Config.RejectDuplicateValues).
	ErrDuplicateValue = errors.New("skinx(registry): equal resource already registered")
)

// New constructs a Registry that files resources under the nearest named
// type of their category according to cfg.
// Only MaxUnwrap, MapPreferElem and RejectDuplicateValues are used here.
func New(cfg apis.Config) apis.Registry {
	if cfg.MaxUnwrap <= 0 {
		cfg.MaxUnwrap = config.DefaultMaxUnwrap
	}
	return &registry{cfg: cfg, buckets: map[reflect.Type]*bucket{}}
}

// registry is an in-memory Registry guarded by a RWMutex.
type registry struct {
	// cfg is the configuration used for type normalization.
	cfg apis.Config
	// mu guards buckets and order.
	mu sync.RWMutex
	// buckets maps a normalized type to its resources.
	buckets map[reflect.Type]*bucket
	// order lists bucket types in first-use order.
	order []reflect.Type
}

// bucket is an insertion-ordered name -> resource map.
type bucket struct {
	index   map[string]int
	entries []apis.Entry
}

// Add registers v under name in the bucket of t.
// It is idempotent for the same (name, instance) pair.
func (r *registry) Add(t reflect.Type, name string, v any) error {
	// Validate inputs early.
	if t == nil {
		return ErrNilType
	}
	if name == "" {
		return ErrEmptyName
	}
	if uref.IsNil(v) {
		return ErrNilValue
	}

	b, err := uref.Normalize(t, r.cfg)
	if err != nil {
		return err
	}
	if !belongs(b, v) {
		return fmt.Errorf("%w: %T is not a %v", ErrTypeMismatch, v, b)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	bk, ok := r.buckets[b]
	if !ok {
		bk = &bucket{index: map[string]int{}}
		r.buckets[b] = bk
		r.order = append(r.order, b)
	}

	if i, ok := bk.index[name]; ok {
		if uref.Same(bk.entries[i].Value, v) {
			return nil // idempotent re-registration
		}
		return fmt.Errorf("%w: %v %q", ErrConflictingRegistration, b, name)
	}

	if r.cfg.RejectDuplicateValues {
		for _, e := range bk.entries {
			if uref.Equal(e.Value, v) {
				return fmt.Errorf("%w: %q equals %q", ErrDuplicateValue, name, e.Name)
			}
		}
	}

	bk.index[name] = len(bk.entries)
	bk.entries = append(bk.entries, apis.Entry{Name: name, Value: v})
	return nil
}

// Lookup returns the resource registered under name in the bucket of t.
func (r *registry) Lookup(t reflect.Type, name string) (any, bool) {
	bk := r.bucket(t)
	if bk == nil {
		return nil, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	i, ok := bk.index[name]
	if !ok {
		return nil, false
	}
	return bk.entries[i].Value, true
}

// Entries returns a snapshot of the bucket of t in registration order.
func (r *registry) Entries(t reflect.Type) ([]apis.Entry, bool) {
	bk := r.bucket(t)
	if bk == nil {
		return nil, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]apis.Entry, len(bk.entries))
	copy(out, bk.entries)
	return out, true
}

// Types returns the bucket types in first-use order.
func (r *registry) Types() []reflect.Type {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]reflect.Type, len(r.order))
	copy(out, r.order)
	return out
}

// Count returns the number of resources in the bucket of t.
func (r *registry) Count(t reflect.Type) int {
	bk := r.bucket(t)
	if bk == nil {
		return 0
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(bk.entries)
}

// Reset clears all buckets.
func (r *registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.buckets = map[reflect.Type]*bucket{}
	r.order = nil
}

// bucket returns the bucket of t, or nil.
func (r *registry) bucket(t reflect.Type) *bucket {
	if t == nil {
		return nil
	}
	b, err := uref.Normalize(t, r.cfg)
	if err != nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.buckets[b]
}

// belongs reports whether v can be filed under the bucket type b.
func belongs(b reflect.Type, v any) bool {
	vt := reflect.TypeOf(v)
	if b.Kind() == reflect.Interface {
		return vt.Implements(b)
	}
	return vt == b || vt == reflect.PointerTo(b)
}
