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

// Package document assembles writer events into an ordered tree and encodes
// it as minimal JSON, strict JSON, compact JSON or YAML.
package document

import "strconv"

// NodeKind is the type of a document node.
type NodeKind uint8

const (
	Object NodeKind = iota
	String
	Number
)

// Member is a keyed child of an object node.
type Member struct {
	Key   string
	Value *Node
}

// Node is a document value. Objects keep their members in insertion order.
type Node struct {
	Kind    NodeKind
	Str     string
	Num     float64
	Bits    int // 32 or 64, the precision Num is printed with
	Members []Member
}

// NewObject returns an empty object node.
func NewObject() *Node { return &Node{Kind: Object} }

// NewString returns a string node.
func NewString(s string) *Node { return &Node{Kind: String, Str: s} }

// NewNumber returns a number printed with the given float precision.
func NewNumber(f float64, bits int) *Node {
	if bits != 32 {
		bits = 64
	}
	return &Node{Kind: Number, Num: f, Bits: bits}
}

// Get returns the member stored under key, or nil.
func (n *Node) Get(key string) *Node {
	if n == nil {
		return nil
	}
	for _, m := range n.Members {
		if m.Key == key {
			return m.Value
		}
	}
	return nil
}

// Len returns the number of members of an object node.
func (n *Node) Len() int {
	if n == nil {
		return 0
	}
	return len(n.Members)
}

// Keys returns member keys in order.
func (n *Node) Keys() []string {
	if n == nil {
		return nil
	}
	keys := make([]string, len(n.Members))
	for i, m := range n.Members {
		keys[i] = m.Key
	}
	return keys
}

// NumberText is the shortest decimal text of a number node, without an
// exponent: 1 rather than 1.0.
func (n *Node) NumberText() string {
	return strconv.FormatFloat(n.Num, 'f', -1, n.Bits)
}

// flat reports whether an object has no object members.
func (n *Node) flat() bool {
	for _, m := range n.Members {
		if m.Value.Kind == Object {
			return false
		}
	}
	return true
}
