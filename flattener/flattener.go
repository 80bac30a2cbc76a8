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

// Package flattener turns registered resources into writer events,
// replacing references to other resources with their registered names.
package flattener

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"reflect"

	"dirpx.dev/skinx/apis"
	"dirpx.dev/skinx/schema"
	"dirpx.dev/skinx/skin"
)

// Flattener writes categories of resources. It is meant for one export
// pass: the resolver indexes the registry as it stood when first used.
type Flattener struct {
	cfg      apis.Config
	log      *slog.Logger
	resolver apis.Resolver
	namer    apis.TypeNamer
	schemas  *schema.Cache
}

// New creates a Flattener. A nil schemas cache uses the skin rules.
func New(cfg apis.Config, resolver apis.Resolver, namer apis.TypeNamer, schemas *schema.Cache) *Flattener {
	if schemas == nil {
		schemas = schema.New(skin.Rules()...)
	}
	return &Flattener{cfg: cfg, log: cfg.Log(), resolver: resolver, namer: namer, schemas: schemas}
}

// CategoryKey returns the document key of a category.
func (f *Flattener) CategoryKey(c apis.Category) string {
	if f.namer != nil {
		if id := f.namer.NameType(c.Type, f.cfg); id != "" {
			return id
		}
	}
	return c.Type.String()
}

// Flatten writes the category as one object holding one object per entry
// accepted by the category, in entry order.
//
// Per-item problems are returned as failures and never stop the pass,
// except unsupported fields under apis.Fail, which abort with an
// *UnsupportedFieldError. Writer errors and ctx cancellation abort as well.
func (f *Flattener) Flatten(ctx context.Context, c apis.Category, entries []apis.Entry, w apis.Writer) (Failures, error) {
	p := &pass{Flattener: f, ctx: ctx, category: f.CategoryKey(c), view: c.IsView(), w: w}
	if err := w.ObjectStart(p.category); err != nil {
		return nil, err
	}
	for _, e := range c.Filter(entries) {
		if err := ctx.Err(); err != nil {
			return p.failures, err
		}
		if err := p.resource(e); err != nil {
			return p.failures, err
		}
	}
	return p.failures, w.ObjectEnd()
}

// pass carries the state of flattening one category.
type pass struct {
	*Flattener
	ctx      context.Context
	category string
	view     bool
	w        apis.Writer
	failures Failures
}

func (p *pass) fail(resource, field string, kind FailureKind, err error) {
	p.failures = append(p.failures, Failure{Category: p.category, Resource: resource, Field: field, Kind: kind, Err: err})
}

func (p *pass) resource(e apis.Entry) error {
	if d, ok := e.Value.(skin.Drawable); ok && (p.view || skin.IsTinted(e.Value)) {
		return p.tinted(e.Name, d)
	}
	if err := p.w.ObjectStart(e.Name); err != nil {
		return err
	}
	keys := keySet{}
	if ff, ok := fontFile(e.Value); ok {
		if name := ff.FileName(); name != "" {
			keys[fileKey] = struct{}{}
			if err := p.w.Value(fileKey, name); err != nil {
				return err
			}
		}
	}
	if err := p.fields(e.Name, e.Value, keys); err != nil {
		return err
	}
	return p.w.ObjectEnd()
}

// fileKey holds the data file name of font resources.
const fileKey = "file"

// fontFile returns v as a skin.FontFile. Struct values are copied so that
// pointer receivers apply.
func fontFile(v any) (skin.FontFile, bool) {
	if ff, ok := v.(skin.FontFile); ok {
		return ff, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Struct {
		return nil, false
	}
	pv := reflect.New(rv.Type())
	pv.Elem().Set(rv)
	ff, ok := pv.Interface().(skin.FontFile)
	return ff, ok
}

// keySet tracks the keys written into one object.
type keySet map[string]struct{}

// claim reserves key for field, or records a duplicate and reports false.
func (p *pass) claim(keys keySet, resource string, field *schema.Field) bool {
	if _, dup := keys[field.Key]; dup {
		p.log.WarnContext(p.ctx, "field dropped", "category", p.category, "resource", resource, "field", field.Key, "go_field", field.Name)
		p.fail(resource, field.Key, DuplicateField, fmt.Errorf("%w: %q from %s", ErrDuplicateField, field.Key, field.Name))
		return false
	}
	keys[field.Key] = struct{}{}
	return true
}

// tinted writes {name: base, color: tint}. Typed tinted drawables carry
// both; otherwise they are decoded from the display name.
func (p *pass) tinted(name string, d skin.Drawable) error {
	var base string
	var tint *skin.Color
	if t, ok := d.(skin.Tinted); ok {
		base, tint = t.Tinting()
	}
	if base == "" || tint == nil {
		display := d.DrawableName()
		if display == "" {
			display = name
		}
		var err error
		if _, base, tint, err = skin.DecodeTintedName(display); err != nil {
			level := slog.LevelDebug
			if !errors.Is(err, skin.ErrMalformedTintedName) {
				level = slog.LevelWarn
			}
			p.log.Log(p.ctx, level, "tinted drawable skipped", "category", p.category, "resource", name, "error", err)
			p.fail(name, "", MalformedTintedName, err)
			return nil
		}
	}
	if err := p.w.ObjectStart(name); err != nil {
		return err
	}
	if err := p.w.Value("name", base); err != nil {
		return err
	}
	if err := p.inline(name, "color", tint); err != nil {
		return err
	}
	return p.w.ObjectEnd()
}

// inline writes v's own fields as a nested object under key.
func (p *pass) inline(resource, key string, v any) error {
	if err := p.w.ObjectStart(key); err != nil {
		return err
	}
	if err := p.fields(resource, v, keySet{}); err != nil {
		return err
	}
	return p.w.ObjectEnd()
}

func (p *pass) fields(resource string, v any, keys keySet) error {
	s, err := p.schemas.Of(reflect.TypeOf(v))
	if err != nil {
		return p.unsupported(resource, "", reflect.TypeOf(v))
	}
	ptr, ok := s.Pointer(v)
	if !ok {
		return nil
	}
	for _, field := range s.Fields {
		val := field.Value(ptr)
		if val == nil {
			continue
		}
		if err := p.field(resource, v, field, val, keys); err != nil {
			return err
		}
	}
	return nil
}

func (p *pass) field(resource string, container any, field *schema.Field, val any, keys keySet) error {
	switch field.Kind {
	case schema.Float:
		if reflect.ValueOf(val).Float() != 0 && p.claim(keys, resource, field) {
			return p.w.Value(field.Key, val)
		}
	case schema.String:
		if s := reflect.ValueOf(val).String(); s != "" && p.claim(keys, resource, field) {
			return p.w.Value(field.Key, s)
		}
	case schema.Bytes:
	case schema.Color:
		if instanceOf(container, field.Category) || !p.claim(keys, resource, field) {
			return nil
		}
		if name, ok := p.resolver.Resolve(field.Category, val); ok {
			return p.w.Value(field.Key, name)
		}
		p.unresolved(resource, field)
		return p.inline(resource, field.Key, val)
	case schema.Drawable:
		if p.view || skin.IsTinted(container) {
			return nil
		}
		return p.reference(resource, field, val, keys)
	case schema.Font, schema.Style:
		return p.reference(resource, field, val, keys)
	default:
		return p.unsupported(resource, field.Key, field.Type)
	}
	return nil
}

func (p *pass) reference(resource string, field *schema.Field, val any, keys keySet) error {
	if name, ok := p.resolver.Resolve(field.Category, val); ok {
		if !p.claim(keys, resource, field) {
			return nil
		}
		return p.w.Value(field.Key, name)
	}
	p.unresolved(resource, field)
	return nil
}

func (p *pass) unresolved(resource string, field *schema.Field) {
	p.log.DebugContext(p.ctx, "unresolved reference", "category", p.category, "resource", resource, "field", field.Key, "kind", field.Kind.String())
	p.fail(resource, field.Key, UnresolvedReference, fmt.Errorf("%w: %s", ErrUnresolvedReference, field.Category))
}

func (p *pass) unsupported(resource, field string, t reflect.Type) error {
	err := &UnsupportedFieldError{Resource: resource, Field: field, Type: t}
	p.fail(resource, field, UnsupportedField, err)
	if p.cfg.FieldPolicy == apis.Fail {
		return err
	}
	p.log.WarnContext(p.ctx, "field dropped", "category", p.category, "resource", resource, "field", field, "error", err)
	return nil
}

// instanceOf reports whether v is a t (or *t), or implements interface t.
func instanceOf(v any, t reflect.Type) bool {
	rt := reflect.TypeOf(v)
	if rt == nil || t == nil {
		return false
	}
	if t.Kind() == reflect.Interface {
		return rt.Implements(t)
	}
	return rt == t || (rt.Kind() == reflect.Ptr && rt.Elem() == t)
}
