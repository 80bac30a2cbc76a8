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

package apis

import "reflect"

// Category is a resource type tag exported as one named section of the
// document.
//
// Most categories map one-to-one onto a registry bucket. A category may
// instead be a filtered view of a broader bucket: Source names the bucket
// and Accept selects the instances that belong to the category.
type Category struct {
	// Type identifies the category; its canonical type id keys the section.
	Type reflect.Type
	// Source is the registry bucket to read; nil means Type.
	Source reflect.Type
	// Accept filters instances of Source; nil accepts everything.
	Accept func(v any) bool
}

// Bucket returns the registry bucket type the category reads from.
func (c Category) Bucket() reflect.Type {
	if c.Source != nil {
		return c.Source
	}
	return c.Type
}

// IsView reports whether the category filters a broader bucket.
func (c Category) IsView() bool {
	return c.Accept != nil
}

// Filter returns the entries that belong to the category, preserving order.
func (c Category) Filter(entries []Entry) []Entry {
	if c.Accept == nil {
		return entries
	}
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if c.Accept(e.Value) {
			out = append(out, e)
		}
	}
	return out
}
