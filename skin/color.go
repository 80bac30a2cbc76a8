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
	"math"
	"strconv"
	"strings"
)

// ErrInvalidColor is returned by ParseColor for malformed hex strings.
var ErrInvalidColor = errors.New("skinx(skin): invalid color")

// Color is an RGBA color with components in [0, 1].
type Color struct {
	R, G, B, A float32
}

// EntityName implements apis.Namer.
func (Color) EntityName() string { return "com.badlogic.gdx.graphics.Color" }

// ParseColor parses "RRGGBB" or "RRGGBBAA", with an optional leading '#'.
// Alpha defaults to 1.
func ParseColor(hex string) (*Color, error) {
	s := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(s) != 6 && len(s) != 8 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidColor, hex)
	}
	var comps [4]float32
	comps[3] = 1
	for i := 0; i < len(s)/2; i++ {
		n, err := strconv.ParseUint(s[2*i:2*i+2], 16, 8)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidColor, hex)
		}
		comps[i] = float32(n) / 255
	}
	return &Color{R: comps[0], G: comps[1], B: comps[2], A: comps[3]}, nil
}

// MustParseColor is ParseColor that panics on error.
func MustParseColor(hex string) *Color {
	c, err := ParseColor(hex)
	if err != nil {
		panic(err)
	}
	return c
}

// String returns the lowercase "rrggbbaa" form.
func (c Color) String() string {
	return fmt.Sprintf("%02x%02x%02x%02x", channel(c.R), channel(c.G), channel(c.B), channel(c.A))
}

// Equal implements apis.Equaler; it accepts Color and *Color.
func (c Color) Equal(other any) bool {
	switch o := other.(type) {
	case Color:
		return c == o
	case *Color:
		return o != nil && c == *o
	}
	return false
}

func channel(f float32) uint8 {
	switch {
	case f <= 0:
		return 0
	case f >= 1:
		return 255
	}
	return uint8(math.Round(float64(f) * 255))
}
