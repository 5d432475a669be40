// Copyright 2026 Teradata
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cellref

import "fmt"

// InvalidReferenceError reports input that is not a valid cell,
// column, or range reference, or coordinates outside the worksheet
// bounds.
type InvalidReferenceError struct {
	// Input is the rejected text or reference, verbatim.
	Input string

	// Reason describes what was wrong with it.
	Reason string
}

func (e *InvalidReferenceError) Error() string {
	return fmt.Sprintf("cellref: invalid reference %q: %s", e.Input, e.Reason)
}
