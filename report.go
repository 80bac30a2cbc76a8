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
	"github.com/google/uuid"

	"dirpx.dev/skinx/flattener"
)

// Failure is one item lost or degraded during an export pass.
type Failure = flattener.Failure

// Report summarizes one export pass.
type Report struct {
	// ID identifies the pass in log records.
	ID uuid.UUID
	// Categories is the number of category sections written.
	Categories int
	// Resources is the number of resource records written.
	Resources int
	// Failures lists every item dropped, skipped or written inline, in
	// document order.
	Failures flattener.Failures
}

// Clean reports whether every resource was exported without loss.
func (r *Report) Clean() bool {
	return r != nil && len(r.Failures) == 0
}
