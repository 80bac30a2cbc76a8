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

import "path"

// Font is a bitmap font resource.
type Font struct {
	// File is the path of the font data file. It is exported through
	// FileName rather than as a field.
	File       string `skin:"-"`
	ScaledSize float32
	// Glyphs holds raw glyph data and is never exported.
	Glyphs []byte
}

// EntityName implements apis.Namer.
func (Font) EntityName() string { return "com.badlogic.gdx.graphics.g2d.BitmapFont" }

// FileName returns the base name of the font data file.
func (f *Font) FileName() string {
	if f == nil || f.File == "" {
		return ""
	}
	return path.Base(f.File)
}

// FontFile is implemented by font resources backed by a data file.
type FontFile interface {
	FileName() string
}
