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

package schema

import "fmt"

// Kind is the serialization rule selected for a field.
type Kind uint8

const (
	// Unsupported fields have no serialization rule.
	Unsupported Kind = iota
	// Font fields reference a registered font.
	Font
	// Color fields reference a registered color or are written inline.
	Color
	// Drawable fields reference a registered drawable.
	Drawable
	// Style fields reference another registered style record.
	Style
	// String fields are written verbatim.
	String
	// Float fields are written when non-zero.
	Float
	// Bytes fields are never written.
	Bytes
)

var kindNames = [...]string{
	Unsupported: "unsupported",
	Font:        "font",
	Color:       "color",
	Drawable:    "drawable",
	Style:       "style",
	String:      "string",
	Float:       "float",
	Bytes:       "bytes",
}

// String returns the lowercase kind name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// IsReference reports whether values of this kind are written as registered names.
func (k Kind) IsReference() bool {
	switch k {
	case Font, Color, Drawable, Style:
		return true
	}
	return false
}
