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

package document

import (
	"errors"
	"fmt"
	"math"
	"reflect"

	"dirpx.dev/skinx/apis"
)

var (
	// ErrUnbalanced is returned for events that do not nest properly.
	ErrUnbalanced = errors.New("skinx(document): unbalanced object events")
	// ErrUnsupportedValue is returned for values other than strings and
	// finite numbers.
	ErrUnsupportedValue = errors.New("skinx(document): unsupported value")
	// ErrDuplicateKey is returned when a key is written twice in one object.
	ErrDuplicateKey = errors.New("skinx(document): duplicate key")
)

// Builder is an apis.Writer that assembles a Node tree.
type Builder struct {
	root  *Node
	stack []*Node
}

var _ apis.Writer = (*Builder)(nil)

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// ObjectStart opens the root object (name ignored) or a nested object.
func (b *Builder) ObjectStart(name string) error {
	obj := NewObject()
	if len(b.stack) == 0 {
		if b.root != nil {
			return fmt.Errorf("%w: second root object %q", ErrUnbalanced, name)
		}
		b.root = obj
	} else if err := b.put(name, obj); err != nil {
		return err
	}
	b.stack = append(b.stack, obj)
	return nil
}

// ObjectEnd closes the innermost open object.
func (b *Builder) ObjectEnd() error {
	if len(b.stack) == 0 {
		return fmt.Errorf("%w: no open object", ErrUnbalanced)
	}
	b.stack = b.stack[:len(b.stack)-1]
	return nil
}

// Value stores a string or number under name.
func (b *Builder) Value(name string, value any) error {
	if len(b.stack) == 0 {
		return fmt.Errorf("%w: value %q outside an object", ErrUnbalanced, name)
	}
	n, err := scalar(value)
	if err != nil {
		return fmt.Errorf("%w: key %q", err, name)
	}
	return b.put(name, n)
}

// Root returns the finished tree.
func (b *Builder) Root() (*Node, error) {
	if b.root == nil || len(b.stack) != 0 {
		return nil, fmt.Errorf("%w: %d open object(s)", ErrUnbalanced, len(b.stack))
	}
	return b.root, nil
}

func (b *Builder) put(key string, n *Node) error {
	top := b.stack[len(b.stack)-1]
	if top.Get(key) != nil {
		return fmt.Errorf("%w: %q", ErrDuplicateKey, key)
	}
	top.Members = append(top.Members, Member{Key: key, Value: n})
	return nil
}

func scalar(value any) (*Node, error) {
	if s, ok := value.(string); ok {
		return NewString(s), nil
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Float32:
		return finite(rv.Float(), 32)
	case reflect.Float64:
		return finite(rv.Float(), 64)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return NewNumber(float64(rv.Int()), 64), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return NewNumber(float64(rv.Uint()), 64), nil
	case reflect.String:
		return NewString(rv.String()), nil
	}
	return nil, fmt.Errorf("%w: %T", ErrUnsupportedValue, value)
}

func finite(f float64, bits int) (*Node, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedValue, f)
	}
	return NewNumber(f, bits), nil
}
