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

package flattener_test

import (
	"context"
	"errors"
	"path"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/skinx/apis"
	"dirpx.dev/skinx/builder"
	"dirpx.dev/skinx/config"
	"dirpx.dev/skinx/document"
	"dirpx.dev/skinx/flattener"
	"dirpx.dev/skinx/registry"
	"dirpx.dev/skinx/skin"
)

type fixture struct {
	reg  apis.Registry
	red  *skin.Color
	blue *skin.Color
	font *skin.Font
	knob *skin.TextureRegionDrawable
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		reg:  registry.New(config.DefaultConfig()),
		red:  skin.MustParseColor("ff0000ff"),
		blue: skin.MustParseColor("0000ffff"),
		font: &skin.Font{File: "fonts/default.fnt", ScaledSize: 12, Glyphs: []byte{1, 2}},
		knob: &skin.TextureRegionDrawable{BaseDrawable: skin.BaseDrawable{Name: "knob"}, Region: "knob"},
	}
	f.add(t, skin.ColorType, "red", f.red)
	f.add(t, skin.ColorType, "blue", f.blue)
	f.add(t, skin.FontType, "default-font", f.font)
	f.add(t, skin.DrawableType, "knob", f.knob)
	return f
}

func (f *fixture) add(t *testing.T, typ reflect.Type, name string, v any) {
	t.Helper()
	require.NoError(t, f.reg.Add(typ, name, v))
}

func flatten(t *testing.T, reg apis.Registry, cfg apis.Config, c apis.Category) (*document.Node, flattener.Failures, error) {
	t.Helper()
	b := builder.New()
	fl := flattener.New(cfg, b.BuildResolver(cfg, reg), b.BuildTypeNamer(cfg, nil), nil)

	entries, _ := reg.Entries(c.Bucket())
	w := document.NewBuilder()
	require.NoError(t, w.ObjectStart(""))
	failures, err := fl.Flatten(context.Background(), c, entries, w)
	if err != nil {
		return nil, failures, err
	}
	require.NoError(t, w.ObjectEnd())
	root, err := w.Root()
	require.NoError(t, err)
	require.Equal(t, 1, root.Len())
	return root.Members[0].Value, failures, nil
}

func category(t reflect.Type) apis.Category {
	for _, c := range skin.Categories() {
		if c.Type == t {
			return c
		}
	}
	return apis.Category{Type: t}
}

func TestFlatten_ColorReferences(t *testing.T) {
	f := newFixture(t)
	f.add(t, skin.LabelStyleType, "exact", &skin.LabelStyle{Font: f.font, FontColor: f.red})
	f.add(t, skin.LabelStyleType, "equal", &skin.LabelStyle{FontColor: skin.MustParseColor("0000ffff")})
	f.add(t, skin.LabelStyleType, "inline", &skin.LabelStyle{FontColor: &skin.Color{G: 0.5, A: 1}})

	cat, failures, err := flatten(t, f.reg, config.DefaultConfig(), category(skin.LabelStyleType))
	require.NoError(t, err)

	exact := cat.Get("exact")
	assert.Equal(t, []string{"font", "fontColor"}, exact.Keys())
	assert.Equal(t, "red", exact.Get("fontColor").Str)
	assert.Equal(t, "default-font", exact.Get("font").Str)

	assert.Equal(t, "blue", cat.Get("equal").Get("fontColor").Str)

	inline := cat.Get("inline").Get("fontColor")
	require.Equal(t, document.Object, inline.Kind)
	assert.Equal(t, []string{"g", "a"}, inline.Keys())
	assert.Equal(t, "0.5", inline.Get("g").NumberText())

	require.Len(t, failures, 1)
	assert.Equal(t, flattener.UnresolvedReference, failures[0].Kind)
	assert.Equal(t, "inline", failures[0].Resource)
	assert.Equal(t, "fontColor", failures[0].Field)
	assert.True(t, errors.Is(failures[0].Err, flattener.ErrUnresolvedReference))
}

func TestFlatten_AmbiguousEqualValues(t *testing.T) {
	f := newFixture(t)
	f.add(t, skin.ColorType, "crimson", skin.MustParseColor("ff0000ff"))
	f.add(t, skin.LabelStyleType, "l", &skin.LabelStyle{FontColor: skin.MustParseColor("ff0000ff")})

	cat, _, err := flatten(t, f.reg, config.DefaultConfig(), category(skin.LabelStyleType))
	require.NoError(t, err)
	assert.Contains(t, []string{"red", "crimson"}, cat.Get("l").Get("fontColor").Str)
}

func TestFlatten_Colors(t *testing.T) {
	f := newFixture(t)
	cat, failures, err := flatten(t, f.reg, config.DefaultConfig(), category(skin.ColorType))
	require.NoError(t, err)
	assert.Empty(t, failures)
	assert.Equal(t, []string{"red", "blue"}, cat.Keys())
	assert.Equal(t, []string{"r", "a"}, cat.Get("red").Keys(), "zero components are omitted")
	assert.Equal(t, []string{"b", "a"}, cat.Get("blue").Keys())
}

func TestFlatten_Font(t *testing.T) {
	f := newFixture(t)
	cat, failures, err := flatten(t, f.reg, config.DefaultConfig(), category(skin.FontType))
	require.NoError(t, err)
	assert.Empty(t, failures)

	font := cat.Get("default-font")
	assert.Equal(t, []string{"file", "scaledSize"}, font.Keys(), "glyph data is never written")
	assert.Equal(t, "default.fnt", font.Get("file").Str)
	assert.Equal(t, "12", font.Get("scaledSize").NumberText())
}

func TestFlatten_FontByValue(t *testing.T) {
	f := newFixture(t)
	f.add(t, skin.FontType, "small", skin.Font{File: "fonts/small.fnt", ScaledSize: 2})

	cat, failures, err := flatten(t, f.reg, config.DefaultConfig(), category(skin.FontType))
	require.NoError(t, err)
	assert.Empty(t, failures)

	small := cat.Get("small")
	assert.Equal(t, []string{"file", "scaledSize"}, small.Keys())
	assert.Equal(t, "small.fnt", small.Get("file").Str)
}

// sizedFont has its own File field next to the file name it reports.
type sizedFont struct {
	File string
	Size float32
}

func (f *sizedFont) FileName() string { return path.Base(f.File) }

func TestFlatten_DuplicateFieldKey(t *testing.T) {
	f := newFixture(t)
	typ := reflect.TypeOf(sizedFont{})
	f.add(t, typ, "ptr", &sizedFont{File: "fonts/a.fnt", Size: 2})
	f.add(t, typ, "val", sizedFont{File: "fonts/b.fnt"})

	cat, failures, err := flatten(t, f.reg, config.DefaultConfig(), apis.Category{Type: typ})
	require.NoError(t, err)

	assert.Equal(t, []string{"file", "size"}, cat.Get("ptr").Keys())
	assert.Equal(t, "a.fnt", cat.Get("ptr").Get("file").Str)
	assert.Equal(t, []string{"file"}, cat.Get("val").Keys())
	assert.Equal(t, "b.fnt", cat.Get("val").Get("file").Str)

	require.Len(t, failures, 2)
	for i, name := range []string{"ptr", "val"} {
		assert.Equal(t, flattener.DuplicateField, failures[i].Kind)
		assert.Equal(t, name, failures[i].Resource)
		assert.Equal(t, "file", failures[i].Field)
		assert.True(t, errors.Is(failures[i].Err, flattener.ErrDuplicateField))
	}
}

func TestFlatten_SparseFloatsAndDrawables(t *testing.T) {
	f := newFixture(t)
	orphan := &skin.TextureRegionDrawable{Region: "orphan"}
	f.add(t, skin.ButtonStyleType, "b", &skin.ButtonStyle{
		Up:             f.knob,
		Down:           orphan,
		PressedOffsetX: 1.5,
		PressedOffsetY: 0,
	})

	cat, failures, err := flatten(t, f.reg, config.DefaultConfig(), category(skin.ButtonStyleType))
	require.NoError(t, err)

	b := cat.Get("b")
	assert.Equal(t, []string{"up", "pressedOffsetX"}, b.Keys())
	assert.Equal(t, "knob", b.Get("up").Str)
	assert.Equal(t, "1.5", b.Get("pressedOffsetX").NumberText())

	require.Len(t, failures, 1)
	assert.Equal(t, "down", failures[0].Field)
}

func TestFlatten_StyleReferences(t *testing.T) {
	f := newFixture(t)
	list := &skin.ListStyle{Font: f.font, Selection: f.knob}
	scroll := &skin.ScrollPaneStyle{VScrollKnob: f.knob}
	f.add(t, skin.ListStyleType, "default", list)
	f.add(t, skin.ScrollPaneStyleType, "default", scroll)
	f.add(t, skin.SelectBoxStyleType, "default", &skin.SelectBoxStyle{
		Font:        f.font,
		FontColor:   f.blue,
		ScrollStyle: scroll,
		ListStyle:   list,
	})
	f.add(t, skin.SelectBoxStyleType, "dangling", &skin.SelectBoxStyle{ListStyle: &skin.ListStyle{}})

	cat, failures, err := flatten(t, f.reg, config.DefaultConfig(), category(skin.SelectBoxStyleType))
	require.NoError(t, err)

	sb := cat.Get("default")
	assert.Equal(t, []string{"font", "fontColor", "scrollStyle", "listStyle"}, sb.Keys())
	assert.Equal(t, "default", sb.Get("listStyle").Str)
	assert.Equal(t, "default", sb.Get("scrollStyle").Str)

	assert.Equal(t, 0, cat.Get("dangling").Len())
	require.Len(t, failures, 1)
	assert.Equal(t, "listStyle", failures[0].Field)
}

func TestFlatten_TintedDrawables(t *testing.T) {
	f := newFixture(t)
	knobRed, err := skin.NewTintedDrawable("knob-red", "knob", f.red)
	require.NoError(t, err)
	f.add(t, skin.DrawableType, "knob-red", knobRed)
	f.add(t, skin.DrawableType, "legacy", &skin.TintedDrawable{BaseDrawable: skin.BaseDrawable{Name: "base (sub, #FF000080)"}})
	f.add(t, skin.DrawableType, "by-entry-name", &skin.TintedDrawable{})
	f.add(t, skin.DrawableType, "broken", &skin.TintedDrawable{BaseDrawable: skin.BaseDrawable{Name: "justAName"}})
	f.add(t, skin.DrawableType, "bad-color", &skin.TintedDrawable{BaseDrawable: skin.BaseDrawable{Name: "x (knob, nope)"}})

	cat, failures, err := flatten(t, f.reg, config.DefaultConfig(), category(skin.TintedDrawableType))
	require.NoError(t, err)

	assert.Equal(t, []string{"knob-red", "legacy"}, cat.Keys(), "plain and malformed drawables are not exported")

	typed := cat.Get("knob-red")
	assert.Equal(t, []string{"name", "color"}, typed.Keys())
	assert.Equal(t, "knob", typed.Get("name").Str)
	assert.Equal(t, []string{"r", "a"}, typed.Get("color").Keys())

	legacy := cat.Get("legacy")
	assert.Equal(t, "sub", legacy.Get("name").Str)
	assert.Equal(t, "1", legacy.Get("color").Get("r").NumberText())
	assert.Equal(t, float64(float32(128)/255), legacy.Get("color").Get("a").Num)

	require.Len(t, failures, 3)
	for _, fl := range failures {
		assert.Equal(t, flattener.MalformedTintedName, fl.Kind)
	}
	assert.Equal(t, []string{"by-entry-name", "broken", "bad-color"},
		[]string{failures[0].Resource, failures[1].Resource, failures[2].Resource})
	assert.True(t, errors.Is(failures[1].Err, skin.ErrMalformedTintedName))
	assert.True(t, errors.Is(failures[2].Err, skin.ErrInvalidColor))
}

func TestFlatten_TintedByEntryName(t *testing.T) {
	reg := registry.New(config.DefaultConfig())
	require.NoError(t, reg.Add(skin.DrawableType, "x (base, 00ff00ff)", &skin.TintedDrawable{}))

	cat, failures, err := flatten(t, reg, config.DefaultConfig(), category(skin.TintedDrawableType))
	require.NoError(t, err)
	assert.Empty(t, failures)
	assert.Equal(t, "base", cat.Get("x (base, 00ff00ff)").Get("name").Str)
}

type gadgetStyle struct {
	Font    *skin.Font
	Enabled bool
	Label   string
}

func TestFlatten_UnsupportedFieldPolicy(t *testing.T) {
	f := newFixture(t)
	gadget := reflect.TypeOf(gadgetStyle{})
	f.add(t, gadget, "g", &gadgetStyle{Font: f.font, Enabled: true, Label: "Go"})

	cat, failures, err := flatten(t, f.reg, config.DefaultConfig(), apis.Category{Type: gadget})
	require.NoError(t, err)
	assert.Equal(t, []string{"font", "label"}, cat.Get("g").Keys())
	require.Len(t, failures, 1)
	assert.Equal(t, flattener.UnsupportedField, failures[0].Kind)
	assert.Equal(t, "enabled", failures[0].Field)

	_, failures, err = flatten(t, f.reg, config.NewConfig(config.WithFieldPolicy(apis.Fail)), apis.Category{Type: gadget})
	require.Error(t, err)
	var ufe *flattener.UnsupportedFieldError
	require.True(t, errors.As(err, &ufe))
	assert.Equal(t, "g", ufe.Resource)
	assert.Equal(t, "enabled", ufe.Field)
	assert.Equal(t, reflect.TypeOf(true), ufe.Type)
	assert.True(t, errors.Is(err, flattener.ErrUnsupportedField))
	assert.Len(t, failures, 1)
}

func TestFlatten_CategoryKey(t *testing.T) {
	b := builder.New()
	cfg := config.DefaultConfig()
	fl := flattener.New(cfg, nil, b.BuildTypeNamer(cfg, nil), nil)
	assert.Equal(t, "com.badlogic.gdx.scenes.scene2d.ui.Skin$TintedDrawable", fl.CategoryKey(category(skin.TintedDrawableType)))
	assert.Equal(t, "com.badlogic.gdx.graphics.Color", fl.CategoryKey(category(skin.ColorType)))
	assert.Equal(t, "flattener_test.gadgetStyle", fl.CategoryKey(apis.Category{Type: reflect.TypeOf(gadgetStyle{})}))
}

func TestFlatten_Canceled(t *testing.T) {
	f := newFixture(t)
	cfg := config.DefaultConfig()
	b := builder.New()
	fl := flattener.New(cfg, b.BuildResolver(cfg, f.reg), b.BuildTypeNamer(cfg, nil), nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	entries, _ := f.reg.Entries(skin.ColorType)
	w := document.NewBuilder()
	require.NoError(t, w.ObjectStart(""))
	_, err := fl.Flatten(ctx, category(skin.ColorType), entries, w)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestFailures_Of(t *testing.T) {
	fs := flattener.Failures{
		{Kind: flattener.UnresolvedReference, Category: "c", Resource: "r", Field: "f", Err: flattener.ErrUnresolvedReference},
		{Kind: flattener.UnsupportedField},
	}
	assert.Len(t, fs.Of(flattener.UnresolvedReference), 1)
	assert.Empty(t, fs.Of(flattener.MalformedTintedName))
	assert.Equal(t, "duplicate-field", flattener.DuplicateField.String())
	assert.Equal(t, "unresolved-reference c/r.f: "+flattener.ErrUnresolvedReference.Error(), fs[0].String())
}
