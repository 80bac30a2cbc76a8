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

import "reflect"

// Registry owns typed collections of named resources.
//
// Resources are grouped into buckets keyed by the nearest named type of the
// registered category type. Within a bucket names are unique and iteration
// follows registration order.
type Registry interface {
	// Add registers v under name in the bucket of t.
	// Re-adding the same (name, instance) pair is a no-op.
	Add(t reflect.Type, name string, v any) error
	// Lookup returns the resource registered under name in the bucket of t.
	Lookup(t reflect.Type, name string) (v any, ok bool)
	// Entries returns a snapshot of the bucket of t in registration order.
	// ok is false when no bucket exists for t.
	Entries(t reflect.Type) (entries []Entry, ok bool)
	// Types returns the bucket types in the order they were first used.
	Types() []reflect.Type
	// Count returns the number of resources in the bucket of t.
	Count(t reflect.Type) int
	// Reset clears all buckets.
	Reset()
}

// Entry is a single (name, resource) association in a Registry snapshot.
type Entry struct {
	// Name is the registered name, unique within its bucket.
	Name string
	// Value is the registered resource instance.
	Value any
}
