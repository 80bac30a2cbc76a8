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
	"bytes"
	"errors"
	"fmt"

	"dirpx.dev/skinx/apis"
	"dirpx.dev/skinx/config"
)

// ErrNilRoot is returned when Encode is given no tree.
var ErrNilRoot = errors.New("skinx(document): nil root")

// Settings is the formatting policy.
type Settings struct {
	OutputType apis.OutputType
	// SingleLineColumns is the width under which objects without nested
	// objects are printed on one line.
	SingleLineColumns int
}

// SettingsOf extracts the formatting policy from cfg.
func SettingsOf(cfg apis.Config) Settings {
	return Settings{OutputType: cfg.OutputType, SingleLineColumns: cfg.SingleLineColumns}
}

// Encode renders root (an object node) according to s.
func Encode(root *Node, s Settings) ([]byte, error) {
	if root == nil {
		return nil, ErrNilRoot
	}
	if root.Kind != Object {
		return nil, fmt.Errorf("%w: root is not an object", ErrUnsupportedValue)
	}
	if s.SingleLineColumns <= 0 {
		s.SingleLineColumns = config.DefaultSingleLineColumns
	}
	switch s.OutputType {
	case apis.Minimal, apis.JSON:
		p := &printer{quote: quoterFor(s.OutputType), columns: s.SingleLineColumns, minimal: s.OutputType == apis.Minimal}
		if err := p.print(root, 0); err != nil {
			return nil, err
		}
		p.buf.WriteByte('\n')
		return p.buf.Bytes(), nil
	case apis.Compact:
		return encodeCompact(root)
	case apis.YAML:
		return encodeYAML(root)
	}
	return nil, fmt.Errorf("skinx(document): unknown output type %v", s.OutputType)
}

// printer pretty prints with tabs. Objects without nested objects are
// collapsed to "{ k: v, ... }" when they fit in the column budget. The root
// members are not indented and minimal output drops the commas between
// multi-line members.
type printer struct {
	buf     bytes.Buffer
	quote   quoter
	columns int
	minimal bool
}

func (p *printer) print(n *Node, indent int) error {
	switch n.Kind {
	case String:
		v, err := p.quote.value(n.Str)
		if err != nil {
			return err
		}
		p.buf.WriteString(v)
		return nil
	case Number:
		p.buf.WriteString(n.NumberText())
		return nil
	case Object:
		return p.object(n, indent)
	}
	return fmt.Errorf("%w: node kind %d", ErrUnsupportedValue, n.Kind)
}

func (p *printer) object(n *Node, indent int) error {
	if len(n.Members) == 0 {
		p.buf.WriteString("{}")
		return nil
	}
	newLines := !n.flat()
	start := p.buf.Len()
	for {
		if newLines {
			p.buf.WriteString("{\n")
		} else {
			p.buf.WriteString("{ ")
		}
		overflow := false
		for i, m := range n.Members {
			if newLines {
				p.indent(indent)
			}
			key, err := p.quote.name(m.Key)
			if err != nil {
				return err
			}
			p.buf.WriteString(key)
			p.buf.WriteString(": ")
			if err := p.print(m.Value, indent+1); err != nil {
				return err
			}
			last := i == len(n.Members)-1
			if (!newLines || !p.minimal) && !last {
				p.buf.WriteByte(',')
			}
			if newLines {
				p.buf.WriteByte('\n')
			} else {
				p.buf.WriteByte(' ')
			}
			if !newLines && p.buf.Len()-start > p.columns {
				overflow = true
				break
			}
		}
		if !overflow {
			break
		}
		p.buf.Truncate(start)
		newLines = true
	}
	if newLines {
		p.indent(indent - 1)
	}
	p.buf.WriteByte('}')
	return nil
}

func (p *printer) indent(n int) {
	for i := 0; i < n; i++ {
		p.buf.WriteByte('\t')
	}
}
