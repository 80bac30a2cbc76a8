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

// Package skinx exports a registry of named UI skin resources as a skin
// document: one top-level object per resource category, each holding one
// object per named resource.
//
// # Model
//
// Resources live in an apis.Registry, grouped into buckets keyed by Go
// type and kept in registration order. An export walks a fixed list of
// categories (see skin.Categories):
//
//	Color, BitmapFont, Skin$TintedDrawable, ProgressBarStyle, ...
//
// A category is either a plain bucket or a view over a broader bucket. The
// tinted drawable category is a view over the Drawable bucket that accepts
// only tinted drawables; plain drawables are never written as a category
// of their own.
//
// Each resource is flattened field by field:
//
//   - non-zero floats and non-empty strings are written as literals;
//   - colors, fonts, drawables and styles are written as the name under
//     which the referenced value is registered in its category;
//   - a color that is not registered anywhere is written inline;
//   - other references that cannot be resolved are dropped;
//   - unsupported fields are dropped or abort the export, depending on
//     apis.FieldPolicy.
//
// Per-item problems never fail an export. They are collected in the
// returned Report.
//
// # Name resolution
//
// Reference names are found by an apis.Resolver built per export. The
// default resolver tries the exact registered instance first, then any
// registered value equal to the target (skin.Color implements Equal).
// Indices are built lazily from a snapshot of the registry, so one export
// sees a consistent view even while other goroutines keep registering.
//
// # Global state
//
// Category keys come from a process-wide apis.TypeNamer held in an
// atomically swapped snapshot together with the Config and the Builder.
// Reads are lock-free:
//
//	key := skinx.TypeID(skin.LabelStyleType)
//
// Writers (SetConfig, SetBuilder, SetTypeNamer, SetAll) take a short build
// lock, rebuild the type namer unless it was pinned with SetTypeNamer, and
// publish a new snapshot. Explicit ids registered with RegisterTypeID are
// carried across rebuilds.
//
// # Usage
//
//	reg := registry.New(skinx.Config())
//	red := skin.MustParseColor("ff0000ff")
//	_ = reg.Add(skin.ColorType, "red", red)
//	_ = reg.Add(skin.LabelStyleType, "default", &skin.LabelStyle{FontColor: red})
//
//	report, err := skinx.Export(ctx, reg, "file:///tmp/uiskin.json")
//
// The destination is any afs URL; ExportTo and Marshal write to an
// io.Writer or return the bytes.
package skinx
