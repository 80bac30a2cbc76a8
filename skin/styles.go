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

const ui = "com.badlogic.gdx.scenes.scene2d.ui."

// ButtonStyle is the style of a plain button.
type ButtonStyle struct {
	Up, Down, Over, Focused, Disabled                 Drawable
	Checked, CheckedOver, CheckedDown, CheckedFocused Drawable
	PressedOffsetX, PressedOffsetY                    float32
	UnpressedOffsetX, UnpressedOffsetY                float32
	CheckedOffsetX, CheckedOffsetY                    float32
}

// EntityName implements apis.Namer.
func (ButtonStyle) EntityName() string { return ui + "Button$ButtonStyle" }

// TextButtonStyle adds a font and its colors to ButtonStyle.
type TextButtonStyle struct {
	ButtonStyle
	Font                                                      *Font
	FontColor, DownFontColor, OverFontColor                   *Color
	CheckedFontColor, CheckedOverFontColor, DisabledFontColor *Color
}

// EntityName implements apis.Namer.
func (TextButtonStyle) EntityName() string { return ui + "TextButton$TextButtonStyle" }

// ImageButtonStyle adds images drawn on top of the button.
type ImageButtonStyle struct {
	ButtonStyle
	ImageUp, ImageDown, ImageOver                 Drawable
	ImageChecked, ImageCheckedOver, ImageDisabled Drawable
}

// EntityName implements apis.Namer.
func (ImageButtonStyle) EntityName() string { return ui + "ImageButton$ImageButtonStyle" }

// CheckBoxStyle adds the check box images to TextButtonStyle.
type CheckBoxStyle struct {
	TextButtonStyle
	CheckboxOn, CheckboxOff, CheckboxOver   Drawable
	CheckboxOnDisabled, CheckboxOffDisabled Drawable
}

// EntityName implements apis.Namer.
func (CheckBoxStyle) EntityName() string { return ui + "CheckBox$CheckBoxStyle" }

// ProgressBarStyle is the style of a progress bar: a background, a knob
// and the parts drawn before and after the knob.
type ProgressBarStyle struct {
	Background, DisabledBackground                               Drawable
	Knob, DisabledKnob                                           Drawable
	KnobBefore, KnobAfter, DisabledKnobBefore, DisabledKnobAfter Drawable
}

// EntityName implements apis.Namer.
func (ProgressBarStyle) EntityName() string { return ui + "ProgressBar$ProgressBarStyle" }

// SliderStyle adds the hover and pressed knobs to ProgressBarStyle.
type SliderStyle struct {
	ProgressBarStyle
	KnobOver, KnobDown Drawable
}

// EntityName implements apis.Namer.
func (SliderStyle) EntityName() string { return ui + "Slider$SliderStyle" }

// SplitPaneStyle is the style of a split pane handle.
type SplitPaneStyle struct {
	Handle Drawable
}

// EntityName implements apis.Namer.
func (SplitPaneStyle) EntityName() string { return ui + "SplitPane$SplitPaneStyle" }

// TouchpadStyle is the style of an on-screen touchpad.
type TouchpadStyle struct {
	Background, Knob Drawable
}

// EntityName implements apis.Namer.
func (TouchpadStyle) EntityName() string { return ui + "Touchpad$TouchpadStyle" }

// WindowStyle is the style of a window and its title.
type WindowStyle struct {
	Background      Drawable
	TitleFont       *Font
	TitleFontColor  *Color
	StageBackground Drawable
}

// EntityName implements apis.Namer.
func (WindowStyle) EntityName() string { return ui + "Window$WindowStyle" }

// TextFieldStyle is the style of a text field, including the hint text
// shown while it is empty.
type TextFieldStyle struct {
	Font                                              *Font
	FontColor, FocusedFontColor, DisabledFontColor    *Color
	Background, FocusedBackground, DisabledBackground Drawable
	Cursor, Selection                                 Drawable
	MessageFont                                       *Font
	MessageFontColor                                  *Color
}

// EntityName implements apis.Namer.
func (TextFieldStyle) EntityName() string { return ui + "TextField$TextFieldStyle" }

// ScrollPaneStyle is the style of a scroll pane and its scroll bars.
type ScrollPaneStyle struct {
	Background, Corner Drawable
	HScroll            Drawable `skin:"hScroll"`
	HScrollKnob        Drawable `skin:"hScrollKnob"`
	VScroll            Drawable `skin:"vScroll"`
	VScrollKnob        Drawable `skin:"vScrollKnob"`
}

// EntityName implements apis.Namer.
func (ScrollPaneStyle) EntityName() string { return ui + "ScrollPane$ScrollPaneStyle" }

// LabelStyle is the style of a text label.
type LabelStyle struct {
	Font       *Font
	FontColor  *Color
	Background Drawable
}

// EntityName implements apis.Namer.
func (LabelStyle) EntityName() string { return ui + "Label$LabelStyle" }

// ListStyle is the style of a list of selectable items.
type ListStyle struct {
	Font                                   *Font
	FontColorSelected, FontColorUnselected *Color
	Selection, Background                  Drawable
}

// EntityName implements apis.Namer.
func (ListStyle) EntityName() string { return ui + "List$ListStyle" }

// TreeStyle is the style of a tree and its expand icons.
type TreeStyle struct {
	Plus, Minus, PlusOver, MinusOver Drawable
	Over, Selection, Background      Drawable
}

// EntityName implements apis.Namer.
func (TreeStyle) EntityName() string { return ui + "Tree$TreeStyle" }

// SelectBoxStyle references the ScrollPaneStyle and ListStyle of its
// drop-down.
type SelectBoxStyle struct {
	Font                         *Font
	FontColor, DisabledFontColor *Color
	Background                   Drawable
	ScrollStyle                  *ScrollPaneStyle
	ListStyle                    *ListStyle
	BackgroundOver               Drawable
	BackgroundOpen               Drawable
	BackgroundDisabled           Drawable
}

// EntityName implements apis.Namer.
func (SelectBoxStyle) EntityName() string { return ui + "SelectBox$SelectBoxStyle" }
