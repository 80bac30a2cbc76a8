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

package strategy

import (
	"dirpx.dev/skinx/apis"
	uref "dirpx.dev/skinx/utils/reflect"
)

// NewEqualityStrategy creates an apis.Strategy that matches by value.
//
// Entries are scanned in registration order and the first equal one wins,
// so when several names hold equal values the earliest registration is
// returned. Registries built with RejectDuplicateValues rule that case out.
func NewEqualityStrategy() apis.Strategy {
	return equalityStrategy{}
}

// equalityStrategy is the O(n) fallback over a bucket snapshot.
type equalityStrategy struct{}

// Ensure equalityStrategy implements apis.Strategy.
var _ apis.Strategy = equalityStrategy{}

// TryResolve returns the first name whose resource equals v.
func (equalityStrategy) TryResolve(idx apis.Index, v any) (string, bool) {
	if idx == nil || uref.IsNil(v) {
		return "", false
	}
	for _, e := range idx.Entries() {
		if uref.Equal(e.Value, v) {
			return e.Name, true
		}
	}
	return "", false
}
