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
	"reflect"

	"dirpx.dev/skinx/apis"
)

// New constructs the default TypeNamer over tb:
// Namer -> Table -> Reflect. A nil table gets a fresh one.
func New(cfg apis.Config, tb *Table) apis.TypeNamer {
	if tb == nil {
		tb = NewTable(cfg)
	}
	return NewChain(tb,
		NewNamerStrategy(),
		NewTableStrategy(tb),
		NewReflectStrategy(),
	)
}

// NewChain constructs a TypeNamer that tries the given strategies in order
// and pins explicit ids into tb. Nil strategies are ignored.
func NewChain(tb *Table, strategies ...apis.TypeStrategy) apis.TypeNamer {
	out := make([]apis.TypeStrategy, 0, len(strategies))
	for _, s := range strategies {
		if s != nil {
			out = append(out, s)
		}
	}
	return &chain{tb: tb, strats: out}
}

// TableOf returns the table behind a TypeNamer built by this package.
func TableOf(n apis.TypeNamer) (*Table, bool) {
	c, ok := n.(*chain)
	if !ok || c.tb == nil {
		return nil, false
	}
	return c.tb, true
}

// chain is an immutable, order-preserving TypeNamer over a set of strategies.
type chain struct {
	tb     *Table
	strats []apis.TypeStrategy
}

// Name runs strategies in order until one handles the value.
func (c *chain) Name(v any, cfg apis.Config) string {
	for _, s := range c.strats {
		if id, ok := s.TryName(v, cfg); ok {
			return id
		}
	}
	return ""
}

// NameType runs strategies in order until one handles the type.
func (c *chain) NameType(t reflect.Type, cfg apis.Config) string {
	for _, s := range c.strats {
		if id, ok := s.TryNameType(t, cfg); ok {
			return id
		}
	}
	return ""
}

// Register pins id for t in the chain's table.
func (c *chain) Register(t reflect.Type, id string) error {
	if c.tb == nil {
		return ErrNoTable
	}
	return c.tb.Register(t, id)
}

// Entries returns the pinned ids.
func (c *chain) Entries() []apis.TypeEntry {
	if c.tb == nil {
		return nil
	}
	return c.tb.Entries()
}
