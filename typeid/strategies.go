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

package typeid

import (
	"path"
	"reflect"
	"strings"
	"sync"

	"dirpx.dev/skinx/apis"
	uref "dirpx.dev/skinx/utils/reflect"
)

// NewNamerStrategy creates an apis.TypeStrategy that uses apis.Namer.
func NewNamerStrategy() apis.TypeStrategy {
	return namerStrategy{}
}

// namerStrategy is the zero-cost fast path: if the value (or a zero value
// of the type) implements apis.Namer, its EntityName wins.
type namerStrategy struct{}

var _ apis.TypeStrategy = namerStrategy{}

// TryName checks if v implements apis.Namer and returns its EntityName().
func (namerStrategy) TryName(v any, _ apis.Config) (string, bool) {
	if n, ok := v.(apis.Namer); ok && !uref.IsNil(v) {
		return n.EntityName(), true
	}
	return "", false
}

// TryNameType checks whether the type's method set (value or pointer
// receiver) includes apis.Namer. EntityName is type-level, so a zero value
// answers for the whole type.
func (namerStrategy) TryNameType(t reflect.Type, _ apis.Config) (string, bool) {
	if n, ok := uref.Zero(t).(apis.Namer); ok {
		return n.EntityName(), true
	}
	return "", false
}

// NewTableStrategy creates an apis.TypeStrategy backed by explicit ids.
func NewTableStrategy(tb *Table) apis.TypeStrategy {
	return &tableStrategy{tb: tb}
}

// tableStrategy consults a Table (reflection-free lookup).
type tableStrategy struct {
	tb *Table
}

var _ apis.TypeStrategy = (*tableStrategy)(nil)

// TryName looks up v's type in the table.
func (s *tableStrategy) TryName(v any, _ apis.Config) (string, bool) {
	if v == nil || s.tb == nil {
		return "", false
	}
	return s.tb.Lookup(reflect.TypeOf(v))
}

// TryNameType looks up t in the table.
func (s *tableStrategy) TryNameType(t reflect.Type, _ apis.Config) (string, bool) {
	if t == nil || s.tb == nil {
		return "", false
	}
	return s.tb.Lookup(t)
}

// NewReflectStrategy creates the universal fallback that computes a stable
// "pkg.Type" from the Go type.
func NewReflectStrategy() apis.TypeStrategy {
	return reflectStrategy{}
}

// reflectStrategy unwraps containers via Normalize, strips generic
// instantiation parameters, and can hide builtin/no-package names.
type reflectStrategy struct{}

var _ apis.TypeStrategy = reflectStrategy{}

// cacheKey ensures memoization respects all config knobs that affect naming.
type cacheKey struct {
	t              reflect.Type
	includeBuiltin bool
	maxUnwrap      int16
	mapPreferElem  bool
}

// typeIDCache caches computed ids by (type, config knobs).
var typeIDCache sync.Map // key: cacheKey, val: string

// TryName computes the id of v's type.
func (reflectStrategy) TryName(v any, cfg apis.Config) (string, bool) {
	if v == nil {
		return "", false
	}
	return byType(reflect.TypeOf(v), cfg), true
}

// TryNameType computes the id of t.
func (reflectStrategy) TryNameType(t reflect.Type, cfg apis.Config) (string, bool) {
	if t == nil {
		return "", false
	}
	return byType(t, cfg), true
}

// byType computes the id for t with memoization.
func byType(t reflect.Type, cfg apis.Config) string {
	key := cacheKey{
		t:              t,
		includeBuiltin: cfg.IncludeBuiltins,
		maxUnwrap:      int16(cfg.MaxUnwrap),
		mapPreferElem:  cfg.MapPreferElem,
	}
	if v, ok := typeIDCache.Load(key); ok {
		return v.(string)
	}

	base, err := uref.Normalize(t, cfg)
	if err != nil || base == nil {
		typeIDCache.Store(key, "")
		return ""
	}

	id := stripTypeParams(base.Name())
	if p := base.PkgPath(); p != "" {
		id = path.Base(p) + "." + id
	} else if !cfg.IncludeBuiltins {
		id = ""
	}

	typeIDCache.Store(key, id)
	return id
}

// stripTypeParams removes generic type instantiation suffix: "T[int,string]" -> "T".
func stripTypeParams(s string) string {
	if i := strings.IndexByte(s, '['); i >= 0 {
		return s[:i]
	}
	return s
}
