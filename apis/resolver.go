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

// Resolver answers "under which name is this exact instance registered?".
//
// A Resolver is built for one export pass and assumes the underlying
// registry does not change while it is in use.
type Resolver interface {
	// Resolve returns the name bound to v in the bucket of t.
	// It returns ("", false) when the bucket is absent or holds no match.
	Resolve(t reflect.Type, v any) (name string, ok bool)
}

// Index is a per-bucket lookup structure built once per Resolver.
type Index interface {
	// Entries returns the bucket snapshot in registration order.
	Entries() []Entry
	// Identity returns the first name bound to the very same instance.
	Identity(v any) (name string, ok bool)
}
