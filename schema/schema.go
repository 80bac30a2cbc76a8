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

// Package schema introspects resource record types into an ordered list of
// serializable fields, each tagged with the rule used to export it.
package schema

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"unsafe"

	"github.com/viant/tagly/format/text"
	"github.com/viant/xunsafe"
)

// TagName is the struct tag read for field keys. `skin:"-"` excludes a field.
const TagName = "skin"

var (
	// ErrNilType is returned when Of is called with a nil type.
	ErrNilType = errors.New("skinx(schema): nil type")
	// ErrNotStruct is returned for types that are not (pointers to) structs.
	ErrNotStruct = errors.New("skinx(schema): not a struct type")
)

// Field is one exported field of a record.
type Field struct {
	// Name is the Go field name.
	Name string
	// Key is the document key.
	Key  string
	Kind Kind
	// Category is the registry category used to resolve reference kinds.
	Category reflect.Type
	Type     reflect.Type

	path []step
	leaf *xunsafe.Field
}

// step walks from a record to an embedded struct.
type step struct {
	field *xunsafe.Field
	deref bool
}

// Value returns the field value of the record at ptr, or nil when the
// field (or an embedded pointer on its path) is nil.
func (f *Field) Value(ptr unsafe.Pointer) any {
	for _, s := range f.path {
		if ptr == nil {
			return nil
		}
		ptr = s.field.Pointer(ptr)
		if s.deref {
			ptr = *(*unsafe.Pointer)(ptr)
		}
	}
	if ptr == nil {
		return nil
	}
	switch f.Kind {
	case String, Float:
		return f.leaf.Value(ptr)
	}
	v := reflect.NewAt(f.Type, f.leaf.Pointer(ptr)).Elem()
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		if v.IsNil() {
			return nil
		}
	}
	return v.Interface()
}

// Struct is the field list of one record type.
type Struct struct {
	Type   reflect.Type
	Fields []*Field
}

// Pointer returns the address of the record held by v. Struct values are
// copied so their fields can be addressed.
func (s *Struct) Pointer(v any) (unsafe.Pointer, bool) {
	if v == nil {
		return nil, false
	}
	rv := reflect.ValueOf(v)
	switch {
	case rv.Type() == s.Type:
		cp := reflect.New(s.Type)
		cp.Elem().Set(rv)
		return unsafe.Pointer(cp.Pointer()), true
	case rv.Kind() == reflect.Ptr && rv.Type().Elem() == s.Type:
		if rv.IsNil() {
			return nil, false
		}
		return xunsafe.AsPointer(v), true
	}
	return nil, false
}

// Cache memoizes Struct descriptions per type.
type Cache struct {
	rules   []Rule
	structs sync.Map // key: reflect.Type, val: *Struct
}

// New creates a Cache classifying reference fields with rules, in order.
func New(rules ...Rule) *Cache {
	return &Cache{rules: append([]Rule(nil), rules...)}
}

// Of describes t (a struct or pointer to struct).
func (c *Cache) Of(t reflect.Type) (*Struct, error) {
	if t == nil {
		return nil, ErrNilType
	}
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %s", ErrNotStruct, t)
	}
	if v, ok := c.structs.Load(t); ok {
		return v.(*Struct), nil
	}
	s := &Struct{Type: t}
	s.Fields = c.fields(t, nil, s.Fields)
	actual, _ := c.structs.LoadOrStore(t, s)
	return actual.(*Struct), nil
}

func (c *Cache) fields(t reflect.Type, path []step, out []*Field) []*Field {
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		tag, hasTag := sf.Tag.Lookup(TagName)
		if tag == "-" {
			continue
		}
		if sf.Anonymous && !hasTag {
			if et, deref, ok := embedded(sf.Type); ok {
				next := append(append([]step(nil), path...), step{field: xunsafe.NewField(sf), deref: deref})
				out = c.fields(et, next, out)
				continue
			}
		}
		if !sf.IsExported() {
			continue
		}
		key := strings.Split(tag, ",")[0]
		if key == "" {
			key = text.CaseFormatUpperCamel.Format(sf.Name, text.CaseFormatLowerCamel)
		}
		kind, category := classify(c.rules, sf.Type)
		out = append(out, &Field{
			Name:     sf.Name,
			Key:      key,
			Kind:     kind,
			Category: category,
			Type:     sf.Type,
			path:     path,
			leaf:     xunsafe.NewField(sf),
		})
	}
	return out
}

func embedded(t reflect.Type) (reflect.Type, bool, bool) {
	if t.Kind() == reflect.Struct {
		return t, false, true
	}
	if t.Kind() == reflect.Ptr && t.Elem().Kind() == reflect.Struct {
		return t.Elem(), true, true
	}
	return nil, false, false
}
