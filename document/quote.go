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
	"regexp"
	"strconv"
	"strings"

	"github.com/francoispqt/gojay"

	"dirpx.dev/skinx/apis"
)

var (
	minimalName  = regexp.MustCompile(`^[^":,}/ ][^:]*$`)
	minimalValue = regexp.MustCompile(`^[^":,{\[\]/ ][^}\],]*$`)

	escaper = strings.NewReplacer(`\`, `\\`, "\r", `\r`, "\n", `\n`, "\t", `\t`)
)

type quoter interface {
	name(s string) (string, error)
	value(s string) (string, error)
}

func quoterFor(t apis.OutputType) quoter {
	if t == apis.Minimal {
		return minimalQuoter{}
	}
	return jsonQuoter{}
}

// minimalQuoter leaves names and values bare when a minimal JSON reader
// would read them back unchanged.
type minimalQuoter struct{}

func (minimalQuoter) name(s string) (string, error) {
	e := escaper.Replace(s)
	if !hasComment(s) && minimalName.MatchString(e) {
		return e, nil
	}
	return quoted(e), nil
}

func (minimalQuoter) value(s string) (string, error) {
	e := escaper.Replace(s)
	switch s {
	case "true", "false", "null":
		return quoted(e), nil
	}
	if hasComment(s) || e == "" || e[len(e)-1] == ' ' || looksNumeric(s) || !minimalValue.MatchString(e) {
		return quoted(e), nil
	}
	return e, nil
}

func hasComment(s string) bool {
	return strings.Contains(s, "//") || strings.Contains(s, "/*")
}

// looksNumeric keeps names like "1" or "2.5" strings on reload.
func looksNumeric(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

func quoted(escaped string) string {
	return `"` + strings.ReplaceAll(escaped, `"`, `\"`) + `"`
}

// jsonQuoter always quotes, with strict JSON escaping.
type jsonQuoter struct{}

func (jsonQuoter) name(s string) (string, error) { return jsonString(s) }

func (jsonQuoter) value(s string) (string, error) { return jsonString(s) }

func jsonString(s string) (string, error) {
	b, err := gojay.Marshal(s)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
