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

// Drawable is anything that can be drawn as part of a widget.
type Drawable interface {
	DrawableName() string
	MinSize() (width, height float32)
}

// BaseDrawable carries the padding and minimum size shared by drawables.
type BaseDrawable struct {
	Name         string
	LeftWidth    float32
	RightWidth   float32
	TopHeight    float32
	BottomHeight float32
	MinWidth     float32
	MinHeight    float32
}

// EntityName implements apis.Namer.
func (BaseDrawable) EntityName() string {
	return "com.badlogic.gdx.scenes.scene2d.utils.BaseDrawable"
}

// DrawableName returns the name the drawable was created with.
func (d *BaseDrawable) DrawableName() string { return d.Name }

// MinSize returns the minimum width and height.
func (d *BaseDrawable) MinSize() (float32, float32) { return d.MinWidth, d.MinHeight }

// TextureRegionDrawable draws a region of a texture atlas.
type TextureRegionDrawable struct {
	BaseDrawable
	Region string
}

// EntityName implements apis.Namer.
func (TextureRegionDrawable) EntityName() string {
	return "com.badlogic.gdx.scenes.scene2d.utils.TextureRegionDrawable"
}

// NinePatchDrawable draws a stretchable nine-patch.
type NinePatchDrawable struct {
	BaseDrawable
	Patch string
}

// EntityName implements apis.Namer.
func (NinePatchDrawable) EntityName() string {
	return "com.badlogic.gdx.scenes.scene2d.utils.NinePatchDrawable"
}

var (
	_ Drawable = (*BaseDrawable)(nil)
	_ Drawable = (*TextureRegionDrawable)(nil)
	_ Drawable = (*NinePatchDrawable)(nil)
)
