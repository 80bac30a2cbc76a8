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

// NewIdentityStrategy creates an apis.Strategy that matches the very same
// instance. It is the exact, unambiguous fast path of name resolution.
func NewIdentityStrategy() apis.Strategy {
	return identityStrategy{}
}

// identityStrategy asks the index for a name bound to v itself.
type identityStrategy struct{}

// Ensure identityStrategy implements apis.Strategy.
var _ apis.Strategy = identityStrategy{}

// TryResolve returns the first name bound to the instance v.
func (identityStrategy) TryResolve(idx apis.Index, v any) (string, bool) {
	if idx == nil || uref.IsNil(v) {
		return "", false
	}
	return idx.Identity(v)
}
