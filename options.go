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

package skinx

import (
	"dirpx.dev/skinx/apis"
	"dirpx.dev/skinx/config"
	"dirpx.dev/skinx/skin"
)

// Option adjusts a single export call.
type Option func(*options)

type options struct {
	cfg        apis.Config
	categories []apis.Category
}

func newOptions(opts []Option) *options {
	o := &options{cfg: Config(), categories: skin.Categories()}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	return o
}

// WithCategories exports exactly cats, in this order, instead of the skin
// categories.
func WithCategories(cats ...apis.Category) Option {
	return func(o *options) {
		o.categories = append([]apis.Category(nil), cats...)
	}
}

// WithConfig replaces the process-wide configuration for this call.
func WithConfig(cfg apis.Config) Option {
	return func(o *options) {
		o.cfg = cfg
	}
}

// With applies config options on top of the configuration for this call.
func With(opts ...config.Option) Option {
	return func(o *options) {
		for _, opt := range opts {
			if opt != nil {
				opt(&o.cfg)
			}
		}
	}
}
