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

package resolver

import (
	"dirpx.dev/skinx/apis"
	uref "dirpx.dev/skinx/utils/reflect"
)

// index is the instance -> name side of a bucket snapshot.
type index struct {
	entries  []apis.Entry
	identity map[any]string
}

var _ apis.Index = (*index)(nil)

// newIndex builds an index; the first name bound to an instance wins.
func newIndex(entries []apis.Entry) *index {
	idx := &index{entries: entries, identity: make(map[any]string, len(entries))}
	for _, e := range entries {
		if !uref.Identifiable(e.Value) {
			continue
		}
		if _, taken := idx.identity[e.Value]; !taken {
			idx.identity[e.Value] = e.Name
		}
	}
	return idx
}

// Entries returns the bucket snapshot in registration order.
func (x *index) Entries() []apis.Entry {
	return x.entries
}

// Identity returns the first name bound to the very same instance.
func (x *index) Identity(v any) (string, bool) {
	if uref.Identifiable(v) {
		name, ok := x.identity[v]
		return name, ok
	}
	for _, e := range x.entries {
		if uref.Same(e.Value, v) {
			return e.Name, true
		}
	}
	return "", false
}
