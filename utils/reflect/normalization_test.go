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

package reflect_test

import (
	"reflect"
	"runtime"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/skinx/apis"
	uref "dirpx.dev/skinx/utils/reflect"
)

// Local test types.
type Color struct{ R, G, B, A float32 }
type G[T any] struct{}

// cfg returns a convenient baseline Config for tests.
func cfg(opts ...func(*apis.Config)) apis.Config {
	c := apis.Config{
		MaxUnwrap:     8,
		MapPreferElem: true,
	}
	for _, o := range opts {
		o(&c)
	}
	return c
}

func TestNormalize_Containers(t *testing.T) {
	want := reflect.TypeOf(Color{})
	cases := []struct {
		name string
		typ  reflect.Type
	}{
		{"plain", reflect.TypeOf(Color{})},
		{"ptr", reflect.TypeOf(&Color{})},
		{"slice", reflect.TypeOf([]*Color{})},
		{"array", reflect.TypeOf([2]Color{})},
		{"chan", reflect.TypeOf((chan Color)(nil))},
		{"map elem", reflect.TypeOf(map[int]Color{})},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := uref.Normalize(tc.typ, cfg())
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestNormalize_MapPreference(t *testing.T) {
	tMap := reflect.TypeOf(map[string]Color{})

	got, err := uref.Normalize(tMap, cfg())
	require.NoError(t, err)
	assert.Equal(t, reflect.TypeOf(Color{}), got)

	got, err = uref.Normalize(tMap, cfg(func(c *apis.Config) { c.MapPreferElem = false }))
	require.NoError(t, err)
	assert.Equal(t, reflect.TypeOf(""), got)

	// Anonymous element falls back to the named key.
	type Anon = struct{ X int }
	got, err = uref.Normalize(reflect.TypeOf(map[string]Anon{}), cfg())
	require.NoError(t, err)
	assert.Equal(t, reflect.TypeOf(""), got)
}

func TestNormalize_GenericInstantiation(t *testing.T) {
	gt, err := uref.Normalize(reflect.TypeOf(&G[int]{}), cfg())
	require.NoError(t, err)
	assert.NotEmpty(t, gt.Name())
}

func TestNormalize_MaxUnwrap(t *testing.T) {
	type PP = **Color
	tPP := reflect.TypeOf((*PP)(nil)).Elem()

	_, err := uref.Normalize(tPP, cfg(func(c *apis.Config) { c.MaxUnwrap = 1 }))
	assert.ErrorIs(t, err, uref.ErrReflectTypeNotNamed)

	got, err := uref.Normalize(tPP, cfg(func(c *apis.Config) { c.MaxUnwrap = 0 }))
	require.NoError(t, err, "MaxUnwrap=0 must use the default depth")
	assert.Equal(t, reflect.TypeOf(Color{}), got)
}

func TestNormalize_Errors(t *testing.T) {
	_, err := uref.Normalize(nil, cfg())
	assert.ErrorIs(t, err, uref.ErrReflectNilType)

	_, err = uref.Normalize(reflect.TypeOf(struct{ X int }{}), cfg())
	assert.ErrorIs(t, err, uref.ErrReflectTypeNotNamed)
}

func TestIsNil(t *testing.T) {
	var c *Color
	var s []byte
	var iface any = c

	assert.True(t, uref.IsNil(nil))
	assert.True(t, uref.IsNil(c))
	assert.True(t, uref.IsNil(s))
	assert.True(t, uref.IsNil(iface))
	assert.False(t, uref.IsNil(&Color{}))
	assert.False(t, uref.IsNil(float32(0)))
	assert.False(t, uref.IsNil(""))
}

func TestZero(t *testing.T) {
	assert.IsType(t, &Color{}, uref.Zero(reflect.TypeOf(Color{})))
	assert.IsType(t, &Color{}, uref.Zero(reflect.TypeOf(&Color{})))
	assert.Nil(t, uref.Zero(reflect.TypeOf((*error)(nil)).Elem()))
	assert.Nil(t, uref.Zero(nil))
}

// Normalize is pure; hammer it to catch accidental shared state.
func TestNormalize_Concurrent(t *testing.T) {
	types := []reflect.Type{
		reflect.TypeOf(Color{}),
		reflect.TypeOf(&Color{}),
		reflect.TypeOf([]Color{}),
		reflect.TypeOf(map[string]Color{}),
		reflect.TypeOf(G[int]{}),
	}
	conf := cfg()

	workers := runtime.GOMAXPROCS(0) * 4
	var wg sync.WaitGroup
	wg.Add(workers)
	errCh := make(chan error, workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := 0; i < 2000; i++ {
				if _, err := uref.Normalize(types[i%len(types)], conf); err != nil {
					errCh <- err
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errCh)
	for e := range errCh {
		t.Fatal(e)
	}
}

func BenchmarkNormalize(b *testing.B) {
	types := []reflect.Type{
		reflect.TypeOf(Color{}),
		reflect.TypeOf(&Color{}),
		reflect.TypeOf(map[string]Color{}),
	}
	conf := cfg()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = uref.Normalize(types[i%len(types)], conf)
	}
}
