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
	"reflect"
	"sync"

	"dirpx.dev/skinx/apis"
)

// New constructs an apis.Resolver over reg that tries the given strategies
// in order. Nil strategies are ignored.
//
// Per-bucket indices are built on first use and kept for the resolver's
// lifetime, so a resolver must not outlive the export pass it was built for
// if the registry may change afterwards. The returned resolver is safe for
// concurrent use provided strategies are.
func New(reg apis.Registry, strategies ...apis.Strategy) apis.Resolver {
	// Filter out nils to avoid nil-interface panics on call sites.
	out := make([]apis.Strategy, 0, len(strategies))
	for _, s := range strategies {
		if s != nil {
			out = append(out, s)
		}
	}
	return &chain{reg: reg, strats: out, indices: map[reflect.Type]*index{}}
}

// chain is an order-preserving resolver over a set of strategies.
type chain struct {
	reg    apis.Registry
	strats []apis.Strategy

	mu      sync.Mutex
	indices map[reflect.Type]*index
}

// Resolve runs strategies in order until one handles the value.
// An absent bucket yields ("", false).
func (r *chain) Resolve(t reflect.Type, v any) (string, bool) {
	idx := r.index(t)
	if idx == nil {
		return "", false
	}
	for _, s := range r.strats {
		if name, ok := s.TryResolve(idx, v); ok {
			return name, true
		}
	}
	return "", false
}

// index returns the cached index of the bucket of t, building it once.
func (r *chain) index(t reflect.Type) *index {
	if r.reg == nil || t == nil {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if idx, ok := r.indices[t]; ok {
		return idx
	}
	entries, ok := r.reg.Entries(t)
	var idx *index
	if ok {
		idx = newIndex(entries)
	}
	r.indices[t] = idx
	return idx
}
