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

package skin

import (
	"reflect"

	"dirpx.dev/skinx/apis"
	"dirpx.dev/skinx/schema"
)

// DrawableEntityName is the type id of the Drawable bucket, which has no
// zero value to ask.
const DrawableEntityName = "com.badlogic.gdx.scenes.scene2d.utils.Drawable"

// Category and field types.
var (
	ColorType          = reflect.TypeOf(Color{})
	FontType           = reflect.TypeOf(Font{})
	DrawableType       = reflect.TypeOf((*Drawable)(nil)).Elem()
	TintedDrawableType = reflect.TypeOf(TintedDrawable{})

	ButtonStyleType      = reflect.TypeOf(ButtonStyle{})
	TextButtonStyleType  = reflect.TypeOf(TextButtonStyle{})
	ImageButtonStyleType = reflect.TypeOf(ImageButtonStyle{})
	CheckBoxStyleType    = reflect.TypeOf(CheckBoxStyle{})
	ProgressBarStyleType = reflect.TypeOf(ProgressBarStyle{})
	SliderStyleType      = reflect.TypeOf(SliderStyle{})
	SplitPaneStyleType   = reflect.TypeOf(SplitPaneStyle{})
	TouchpadStyleType    = reflect.TypeOf(TouchpadStyle{})
	WindowStyleType      = reflect.TypeOf(WindowStyle{})
	TextFieldStyleType   = reflect.TypeOf(TextFieldStyle{})
	ScrollPaneStyleType  = reflect.TypeOf(ScrollPaneStyle{})
	LabelStyleType       = reflect.TypeOf(LabelStyle{})
	ListStyleType        = reflect.TypeOf(ListStyle{})
	TreeStyleType        = reflect.TypeOf(TreeStyle{})
	SelectBoxStyleType   = reflect.TypeOf(SelectBoxStyle{})
)

// Categories returns the exported categories in document order. The order
// is stable so repeated exports diff cleanly.
//
// Tinted drawables have no bucket of their own: they are the tinted subset
// of the Drawable bucket. Plain drawables are not exported.
func Categories() []apis.Category {
	return []apis.Category{
		{Type: ColorType},
		{Type: FontType},
		{Type: TintedDrawableType, Source: DrawableType, Accept: IsTinted},
		{Type: ProgressBarStyleType},
		{Type: TextButtonStyleType},
		{Type: ImageButtonStyleType},
		{Type: SplitPaneStyleType},
		{Type: TouchpadStyleType},
		{Type: ButtonStyleType},
		{Type: WindowStyleType},
		{Type: TextFieldStyleType},
		{Type: ScrollPaneStyleType},
		{Type: LabelStyleType},
		{Type: ListStyleType},
		{Type: CheckBoxStyleType},
		{Type: TreeStyleType},
		{Type: SliderStyleType},
		{Type: SelectBoxStyleType},
	}
}

// Rules returns the reference rules for skin field types.
func Rules() []schema.Rule {
	rules := []schema.Rule{
		{Kind: schema.Font, Type: FontType},
		{Kind: schema.Color, Type: ColorType},
		{Kind: schema.Drawable, Type: DrawableType},
	}
	for _, t := range []reflect.Type{
		ListStyleType, ScrollPaneStyleType,
		ButtonStyleType, TextButtonStyleType, ImageButtonStyleType, CheckBoxStyleType,
		ProgressBarStyleType, SliderStyleType, SplitPaneStyleType, TouchpadStyleType,
		WindowStyleType, TextFieldStyleType, LabelStyleType, TreeStyleType, SelectBoxStyleType,
	} {
		rules = append(rules, schema.Rule{Kind: schema.Style, Type: t})
	}
	return rules
}

// TypeIDs returns ids for skin types that cannot name themselves.
func TypeIDs() []apis.TypeEntry {
	return []apis.TypeEntry{{Type: DrawableType, ID: DrawableEntityName}}
}
