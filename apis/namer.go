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

// Namer identifies resource types by a stable, canonical name.
//
// When a resource type implements Namer, its EntityName is used as the
// category key in exported documents and no other naming strategy is tried.
// EntityName describes the kind of resource, never a particular instance,
// so it must not depend on instance state.
type Namer interface {
	// EntityName returns the canonical, type-level name for this resource.
	EntityName() string
}

// Equaler lets a resource define value equality for name resolution.
// Resources that do not implement it are compared with reflect.DeepEqual.
type Equaler interface {
	// Equal reports whether other holds the same value as the receiver.
	Equal(other any) bool
}
