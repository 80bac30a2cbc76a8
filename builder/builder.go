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

package builder

import (
	"fmt"

	"dirpx.dev/skinx/apis"
	"dirpx.dev/skinx/resolver"
	"dirpx.dev/skinx/strategy"
	"dirpx.dev/skinx/typeid"
)

// New creates and returns a new instance of an apis.Builder.
func New() apis.Builder {
	return &builder{}
}

// builder is an empty struct to be used as a receiver for builder methods.
type builder struct{}

// BuildTypeNamer builds the default type id chain for cfg. Ids pinned in
// prev are copied into the new chain's table; ids the table refuses are
// logged and left out.
func (b *builder) BuildTypeNamer(cfg apis.Config, prev apis.TypeNamer) apis.TypeNamer {
	tb := typeid.NewTable(cfg)
	if prev != nil {
		for _, e := range prev.Entries() {
			if err := tb.Register(e.Type, e.ID); err != nil {
				cfg.Log().Warn("type id not carried over", "type", fmt.Sprint(e.Type), "id", e.ID, "error", err)
			}
		}
	}
	return typeid.New(cfg, tb)
}

// BuildResolver builds a name resolver over reg for one export pass:
// identity first, then value equality.
func (b *builder) BuildResolver(_ apis.Config, reg apis.Registry) apis.Resolver {
	return resolver.New(
		reg,
		strategy.NewIdentityStrategy(),
		strategy.NewEqualityStrategy(),
	)
}
