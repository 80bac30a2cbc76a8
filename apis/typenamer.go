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

// TypeNamer turns a value or a type into its canonical type identifier.
// Identifiers key the category sections of an exported document.
type TypeNamer interface {
	// Name returns a stable type id for v, or "" if none can be determined.
	Name(v any, cfg Config) string
	// NameType returns a stable type id for t, or "" if none can be determined.
	NameType(t reflect.Type, cfg Config) string
	// Register pins an explicit type id for t.
	Register(t reflect.Type, id string) error
	// Entries returns the explicitly registered identifiers.
	Entries() []TypeEntry
}

// TypeStrategy is one step of a TypeNamer chain
// (e.g., Namer -> Table -> Reflect).
type TypeStrategy interface {
	// TryName attempts to name value v according to cfg.
	TryName(v any, cfg Config) (id string, handled bool)
	// TryNameType attempts to name the reflect.Type t.
	TryNameType(t reflect.Type, cfg Config) (id string, handled bool)
}

// TypeEntry is a single (type, id) association pinned in a TypeNamer.
type TypeEntry struct {
	// Type is the registered reflect.Type.
	Type reflect.Type
	// ID is the associated identifier.
	ID string
}
