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

package skinx

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"reflect"
	"sync"
	"sync/atomic"

	"dirpx.dev/skinx/apis"
	"dirpx.dev/skinx/builder"
	"dirpx.dev/skinx/config"
	"dirpx.dev/skinx/logging"
	"dirpx.dev/skinx/skin"
)

// init publishes the default snapshot: default config logging warnings to
// stderr, default builder and a type namer seeded with the skin type ids.
func init() {
	cfg := config.NewConfig(config.WithLogger(logging.New(logging.WARN, os.Stderr)))
	s := &state{cfg: cfg, bld: builder.New()}
	s.names = s.bld.BuildTypeNamer(s.cfg, nil)
	seedTypeIDs(s.names, cfg.Log(), skin.TypeIDs())
	st.Store(s)
}

// seedTypeIDs registers ids into names, logging the ones it refuses.
func seedTypeIDs(names apis.TypeNamer, log *slog.Logger, ids []apis.TypeEntry) {
	for _, e := range ids {
		if err := names.Register(e.Type, e.ID); err != nil {
			log.Warn("type id not registered", "type", fmt.Sprint(e.Type), "id", e.ID, "error", err)
		}
	}
}

// ErrNilTypeNamer is raised when a builder returns a nil type namer.
var ErrNilTypeNamer = errors.New("skinx: builder returned nil type namer")

// state is an immutable snapshot of the process-wide defaults.
type state struct {
	cfg   apis.Config
	bld   apis.Builder
	names apis.TypeNamer
	// pnames marks a type namer set explicitly; it survives rebuilds.
	pnames bool
}

var (
	st      atomic.Pointer[state]
	buildMu sync.Mutex
)

// rebuild derives the type namer for cfg and bld from the old snapshot,
// carrying registered ids over.
func rebuild(old *state, cfg apis.Config, bld apis.Builder) apis.TypeNamer {
	if old.pnames {
		return old.names
	}
	n := bld.BuildTypeNamer(cfg, old.names)
	if n == nil {
		panic(ErrNilTypeNamer)
	}
	return n
}

// Config returns the process-wide export configuration.
func Config() apis.Config {
	return st.Load().cfg
}

// SetConfig replaces the process-wide configuration and rebuilds the type
// namer unless it is pinned.
func SetConfig(cfg apis.Config) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	st.Store(&state{cfg: cfg, bld: old.bld, names: rebuild(old, cfg, old.bld), pnames: old.pnames})
}

// Builder returns the process-wide builder.
func Builder() apis.Builder {
	return st.Load().bld
}

// SetBuilder replaces the builder used for type namers and per-pass
// resolvers. Nil is ignored.
func SetBuilder(b apis.Builder) {
	if b == nil {
		return
	}
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	st.Store(&state{cfg: old.cfg, bld: b, names: rebuild(old, old.cfg, b), pnames: old.pnames})
}

// TypeNamer returns the process-wide type namer used for category keys.
func TypeNamer() apis.TypeNamer {
	return st.Load().names
}

// SetTypeNamer installs n and pins it: config and builder changes no longer
// rebuild it until UnpinTypeNamer. Nil is ignored.
func SetTypeNamer(n apis.TypeNamer) {
	if n == nil {
		return
	}
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	st.Store(&state{cfg: old.cfg, bld: old.bld, names: n, pnames: true})
}

// IsTypeNamerPinned reports whether the type namer was set explicitly.
func IsTypeNamerPinned() bool {
	return st.Load().pnames
}

// UnpinTypeNamer lets later config and builder changes rebuild the type namer.
func UnpinTypeNamer() {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	st.Store(&state{cfg: old.cfg, bld: old.bld, names: old.names})
}

// TypeID returns the canonical id of t used as its category key.
func TypeID(t reflect.Type) string {
	s := st.Load()
	return s.names.NameType(t, s.cfg)
}

// RegisterTypeID pins the category key of t.
func RegisterTypeID(t reflect.Type, id string) error {
	return st.Load().names.Register(t, id)
}

// SetAll replaces every process-wide component in one step; tests use it to
// start from a known snapshot. A nil cfg or bld keeps the current one; a
// nil namer is rebuilt and unpinned.
func SetAll(cfg *apis.Config, names apis.TypeNamer, bld apis.Builder) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	ncfg := old.cfg
	if cfg != nil {
		ncfg = *cfg
	}
	nbld := old.bld
	if bld != nil {
		nbld = bld
	}
	pinned := names != nil
	if !pinned {
		names = rebuild(&state{names: old.names}, ncfg, nbld)
	}
	st.Store(&state{cfg: ncfg, bld: nbld, names: names, pnames: pinned})
}
