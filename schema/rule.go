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

package schema

import "reflect"

// Rule binds field types to a reference kind and the category used to
// resolve them.
//
// Type may be an interface (matched by implementation) or a concrete
// named type (matched as T or *T). Category defaults to Type.
type Rule struct {
	Kind     Kind
	Type     reflect.Type
	Category reflect.Type
}

func (r Rule) matches(t reflect.Type) bool {
	if r.Type == nil || t == nil {
		return false
	}
	if r.Type.Kind() == reflect.Interface {
		return t.Implements(r.Type)
	}
	return t == r.Type || (t.Kind() == reflect.Ptr && t.Elem() == r.Type)
}

func (r Rule) category() reflect.Type {
	if r.Category != nil {
		return r.Category
	}
	return r.Type
}

// classify picks the kind of t: reference rules first, in order, then the
// builtin scalar kinds.
func classify(rules []Rule, t reflect.Type) (Kind, reflect.Type) {
	for _, r := range rules {
		if r.matches(t) {
			return r.Kind, r.category()
		}
	}
	switch t.Kind() {
	case reflect.Float32, reflect.Float64:
		return Float, nil
	case reflect.String:
		return String, nil
	case reflect.Slice:
		// []byte and []rune buffers.
		if k := t.Elem().Kind(); k == reflect.Uint8 || k == reflect.Int32 {
			return Bytes, nil
		}
	}
	return Unsupported, nil
}
