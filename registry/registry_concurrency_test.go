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

package registry_test

import (
	"fmt"
	"reflect"
	"runtime"
	"sync"
	"testing"

	"dirpx.dev/skinx/config"
	"dirpx.dev/skinx/registry"
)

// TestConcurrentAddAndLookup verifies that Add/Lookup/Entries/Count are
// race-free and consistent under concurrent use.
func TestConcurrentAddAndLookup(t *testing.T) {
	reg := registry.New(config.DefaultConfig())

	colors := make([]*Color, 16)
	for i := range colors {
		colors[i] = &Color{R: float32(i) / 16, A: 1}
		if err := reg.Add(colorType, fmt.Sprintf("c%d", i), colors[i]); err != nil {
			t.Fatalf("add c%d: %v", i, err)
		}
	}

	wg := sync.WaitGroup{}
	workers := runtime.GOMAXPROCS(0) * 4

	// Readers
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := 0; i < 5000; i++ {
				idx := i % len(colors)
				got, ok := reg.Lookup(colorType, fmt.Sprintf("c%d", idx))
				if !ok || got != colors[idx] {
					t.Errorf("lookup c%d: ok=%v got=%v", idx, ok, got)
					return
				}
				_ = reg.Count(colorType)
				_, _ = reg.Entries(colorType)
			}
		}()
	}

	// Writers (idempotent re-adds plus a second bucket)
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(id int) {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				idx := (i + id) % len(colors)
				if err := reg.Add(reflect.TypeOf(&Color{}), fmt.Sprintf("c%d", idx), colors[idx]); err != nil {
					t.Errorf("idempotent add c%d: %v", idx, err)
					return
				}
			}
			_ = reg.Add(fontType, fmt.Sprintf("f%d", id), &Font{File: "f.fnt"})
		}(w)
	}

	wg.Wait()

	if got := reg.Count(colorType); got != len(colors) {
		t.Fatalf("Count(colors) = %d, want %d", got, len(colors))
	}
	if got := reg.Count(fontType); got != workers {
		t.Fatalf("Count(fonts) = %d, want %d", got, workers)
	}
}
