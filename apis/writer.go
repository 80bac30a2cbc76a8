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

// Writer consumes a stream of structured document events.
//
// Objects nest: every ObjectStart must be matched by an ObjectEnd. The root
// object is started with an empty name. Values are strings, floats, or
// nested objects started with ObjectStart.
type Writer interface {
	// ObjectStart opens an object stored under name in the enclosing object.
	ObjectStart(name string) error
	// ObjectEnd closes the innermost open object.
	ObjectEnd() error
	// Value stores a scalar value under name in the innermost open object.
	Value(name string, value any) error
}
