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

package reflect

import (
	"reflect"

	"dirpx.dev/skinx/apis"
)

// Same reports whether a and b are the very same instance.
//
// Pointers, maps, funcs and chans are compared by address. Other values
// have no identity of their own, so they are the same when they hold the
// same dynamic type and comparable, equal contents.
func Same(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false
	}
	switch ta.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if !va.Comparable() || !vb.Comparable() {
		return false
	}
	return va.Equal(vb)
}

// Equal reports whether a and b hold the same value. It uses apis.Equaler
// when a implements it and reflect.DeepEqual otherwise.
func Equal(a, b any) bool {
	if Same(a, b) {
		return true
	}
	if e, ok := a.(apis.Equaler); ok {
		return e.Equal(b)
	}
	return reflect.DeepEqual(a, b)
}

// Identifiable reports whether v can be indexed by identity, i.e. it is a
// non-nil pointer.
func Identifiable(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Ptr && !rv.IsNil()
}
