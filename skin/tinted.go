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
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrMalformedTintedName is returned when a name does not follow the
// "<label> (<base>, <color>)" convention.
var ErrMalformedTintedName = errors.New("skinx(skin): malformed tinted drawable name")

// ErrUnencodableTintedName is returned when a label or base name would not
// decode back from the encoded display name.
var ErrUnencodableTintedName = errors.New("skinx(skin): label or base cannot be encoded in a tinted name")

// tintedName matches the whole display name; the base group is greedy so
// base names may contain ", ".
var tintedName = regexp.MustCompile(`^(.+)\s\((.+), (.+)\)$`)

// openParen in a base name would be taken as the start of the base.
var openParen = regexp.MustCompile(`\s\(`)

// Tinted is implemented by drawables derived from a base drawable and a
// tint color.
type Tinted interface {
	Drawable
	// Tinting returns the typed base name and tint. Empty results mean the
	// drawable only carries them encoded in its display name.
	Tinting() (base string, tint *Color)
}

// TintedDrawable is a base drawable recolored with a tint.
type TintedDrawable struct {
	BaseDrawable
	Base string `skin:"-"`
	Tint *Color `skin:"-"`
}

// NewTintedDrawable creates a tinted drawable whose display name encodes
// label, base and tint. It fails when EncodeTintedName does.
func NewTintedDrawable(label, base string, tint *Color) (*TintedDrawable, error) {
	name, err := EncodeTintedName(label, base, tint)
	if err != nil {
		return nil, err
	}
	return &TintedDrawable{
		BaseDrawable: BaseDrawable{Name: name},
		Base:         base,
		Tint:         tint,
	}, nil
}

// EntityName implements apis.Namer.
func (TintedDrawable) EntityName() string {
	return "com.badlogic.gdx.scenes.scene2d.ui.Skin$TintedDrawable"
}

// Tinting implements Tinted.
func (d *TintedDrawable) Tinting() (string, *Color) { return d.Base, d.Tint }

var _ Tinted = (*TintedDrawable)(nil)

// IsTinted reports whether v is a tinted drawable.
func IsTinted(v any) bool {
	_, ok := v.(Tinted)
	return ok
}

// EncodeTintedName renders "<label> (<base>, <rrggbbaa>)". Label and base
// must be non-empty single lines, and base must not contain a whitespace
// followed by "("; otherwise ErrUnencodableTintedName is returned.
func EncodeTintedName(label, base string, tint *Color) (string, error) {
	switch {
	case label == "" || base == "":
		return "", fmt.Errorf("%w: empty label or base", ErrUnencodableTintedName)
	case strings.Contains(label, "\n") || strings.Contains(base, "\n"):
		return "", fmt.Errorf("%w: line break in %q (%q)", ErrUnencodableTintedName, label, base)
	case openParen.MatchString(base):
		return "", fmt.Errorf("%w: base %q", ErrUnencodableTintedName, base)
	}
	c := Color{}
	if tint != nil {
		c = *tint
	}
	return fmt.Sprintf("%s (%s, %s)", label, base, c), nil
}

// TintedNameError reports a display name that could not be decoded.
type TintedNameError struct {
	Name string
	Err  error
}

// Error implements error.
func (e *TintedNameError) Error() string {
	return fmt.Sprintf("skinx(skin): tinted drawable %q: %v", e.Name, e.Err)
}

// Unwrap returns the decoding cause.
func (e *TintedNameError) Unwrap() error { return e.Err }

// DecodeTintedName splits a display name produced by EncodeTintedName.
func DecodeTintedName(name string) (label, base string, tint *Color, err error) {
	m := tintedName.FindStringSubmatch(name)
	if m == nil {
		return "", "", nil, &TintedNameError{Name: name, Err: ErrMalformedTintedName}
	}
	tint, err = ParseColor(m[3])
	if err != nil {
		return "", "", nil, &TintedNameError{Name: name, Err: err}
	}
	return m[1], m[2], tint, nil
}
