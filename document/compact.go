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

package document

import (
	"github.com/francoispqt/gojay"
)

// MarshalJSONObject implements gojay.MarshalerJSONObject.
func (n *Node) MarshalJSONObject(enc *gojay.Encoder) {
	for _, m := range n.Members {
		v := m.Value
		switch v.Kind {
		case Object:
			enc.ObjectKey(m.Key, v)
		case String:
			enc.StringKey(m.Key, v.Str)
		case Number:
			if v.Bits == 32 {
				enc.Float32Key(m.Key, float32(v.Num))
			} else {
				enc.Float64Key(m.Key, v.Num)
			}
		}
	}
}

// IsNil implements gojay.MarshalerJSONObject.
func (n *Node) IsNil() bool {
	return n == nil
}

var _ gojay.MarshalerJSONObject = (*Node)(nil)

func encodeCompact(root *Node) ([]byte, error) {
	return gojay.MarshalJSONObject(root)
}
