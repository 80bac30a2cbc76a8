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
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/skinx/config"
	"dirpx.dev/skinx/registry"
)

type Color struct{ R, G, B, A float32 }

type Font struct{ File string }

type Drawable interface{ DrawableName() string }

type Region struct{ Name string }

func (r *Region) DrawableName() string { return r.Name }

var (
	colorType    = reflect.TypeOf(Color{})
	fontType     = reflect.TypeOf(Font{})
	drawableType = reflect.TypeOf((*Drawable)(nil)).Elem()
)

func TestAdd_IdempotentAndLookup(t *testing.T) {
	reg := registry.New(config.DefaultConfig())
	red := &Color{R: 1, A: 1}

	require.NoError(t, reg.Add(colorType, "red", red))
	require.NoError(t, reg.Add(colorType, "red", red), "same instance again is a no-op")

	got, ok := reg.Lookup(colorType, "red")
	require.True(t, ok)
	assert.Same(t, red, got)

	// Pointer and slice types file under the same bucket.
	got, ok = reg.Lookup(reflect.TypeOf(&Color{}), "red")
	require.True(t, ok)
	assert.Same(t, red, got)
	assert.Equal(t, 1, reg.Count(reflect.TypeOf([]*Color{})))
}

func TestAdd_Conflict(t *testing.T) {
	reg := registry.New(config.DefaultConfig())
	require.NoError(t, reg.Add(colorType, "red", &Color{R: 1}))

	err := reg.Add(colorType, "red", &Color{R: 1})
	assert.ErrorIs(t, err, registry.ErrConflictingRegistration, "a distinct instance under a taken name conflicts")
}

func TestAdd_Errors(t *testing.T) {
	reg := registry.New(config.DefaultConfig())
	var nilColor *Color

	assert.ErrorIs(t, reg.Add(nil, "x", &Color{}), registry.ErrNilType)
	assert.ErrorIs(t, reg.Add(colorType, "", &Color{}), registry.ErrEmptyName)
	assert.ErrorIs(t, reg.Add(colorType, "x", nil), registry.ErrNilValue)
	assert.ErrorIs(t, reg.Add(colorType, "x", nilColor), registry.ErrNilValue)
	assert.ErrorIs(t, reg.Add(colorType, "x", &Font{}), registry.ErrTypeMismatch)
	assert.Error(t, reg.Add(reflect.TypeOf(struct{}{}), "x", struct{}{}), "anonymous types have no bucket")
}

func TestAdd_InterfaceBucket(t *testing.T) {
	reg := registry.New(config.DefaultConfig())
	require.NoError(t, reg.Add(drawableType, "button", &Region{Name: "button"}))
	assert.ErrorIs(t, reg.Add(drawableType, "font", &Font{}), registry.ErrTypeMismatch)
	assert.Equal(t, 1, reg.Count(drawableType))
}

func TestAdd_DuplicateValues(t *testing.T) {
	lenient := registry.New(config.DefaultConfig())
	require.NoError(t, lenient.Add(colorType, "red", &Color{R: 1, A: 1}))
	require.NoError(t, lenient.Add(colorType, "crimson", &Color{R: 1, A: 1}))

	strict := registry.New(config.NewConfig(config.WithRejectDuplicateValues(true)))
	require.NoError(t, strict.Add(colorType, "red", &Color{R: 1, A: 1}))
	assert.ErrorIs(t, strict.Add(colorType, "crimson", &Color{R: 1, A: 1}), registry.ErrDuplicateValue)
	require.NoError(t, strict.Add(colorType, "blue", &Color{B: 1, A: 1}))
}

func TestEntries_RegistrationOrder(t *testing.T) {
	reg := registry.New(config.DefaultConfig())
	names := []string{"white", "black", "red", "green", "blue", "alpha"}
	for i, n := range names {
		require.NoError(t, reg.Add(colorType, n, &Color{R: float32(i)}))
	}
	require.NoError(t, reg.Add(fontType, "default", &Font{File: "default.fnt"}))

	entries, ok := reg.Entries(colorType)
	require.True(t, ok)
	got := make([]string, 0, len(entries))
	for _, e := range entries {
		got = append(got, e.Name)
	}
	assert.Equal(t, names, got)
	assert.Equal(t, []reflect.Type{colorType, fontType}, reg.Types())

	// Snapshots are detached from the registry.
	entries[0].Name = "mutated"
	again, _ := reg.Entries(colorType)
	assert.Equal(t, "white", again[0].Name)
}

func TestEntries_AbsentBucket(t *testing.T) {
	reg := registry.New(config.DefaultConfig())
	entries, ok := reg.Entries(colorType)
	assert.False(t, ok)
	assert.Nil(t, entries)
	_, ok = reg.Lookup(colorType, "red")
	assert.False(t, ok)
	assert.Zero(t, reg.Count(nil))
}

func TestReset(t *testing.T) {
	reg := registry.New(config.DefaultConfig())
	require.NoError(t, reg.Add(colorType, "red", &Color{R: 1}))
	reg.Reset()
	assert.Zero(t, reg.Count(colorType))
	assert.Empty(t, reg.Types())
}
