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

// Package cellref provides A1-notation cell and range references for
// the weft styling model: single cells ("B2", "$A$1"), rectangular
// ranges ("A1:D10"), whole-column ranges ("A:C"), and whole-row
// ranges ("1:5"). References are plain value types; they address
// cells but do not touch any worksheet.
package cellref

import "strings"

// Column is a 1-based worksheet column index. Column 1 is "A",
// column 26 is "Z", column 27 is "AA", and so on up to MaxColumn
// ("XFD").
type Column uint32

const (
	// MinColumn is the first valid column, "A".
	MinColumn Column = 1

	// MaxColumn is the last valid column, "XFD".
	MaxColumn Column = 16384

	// MinRow is the first valid row.
	MinRow uint32 = 1

	// MaxRow is the last valid row.
	MaxRow uint32 = 1048576
)

// ColumnFromString converts a column letter name to its index.
// Letters may be either case. Empty input, non-letter characters, or
// a name past MaxColumn are rejected with an *InvalidReferenceError.
func ColumnFromString(s string) (Column, error) {
	if s == "" {
		return 0, &InvalidReferenceError{Input: s, Reason: "empty column name"}
	}
	var index uint32
	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch {
		case ch >= 'A' && ch <= 'Z':
			index = index*26 + uint32(ch-'A'+1)
		case ch >= 'a' && ch <= 'z':
			index = index*26 + uint32(ch-'a'+1)
		default:
			return 0, &InvalidReferenceError{Input: s, Reason: "column name must be letters only"}
		}
		if Column(index) > MaxColumn {
			return 0, &InvalidReferenceError{Input: s, Reason: "column is past XFD"}
		}
	}
	return Column(index), nil
}

// String returns the letter name of the column, e.g. "A" for 1 and
// "AA" for 27. The zero Column has no letter form and yields "".
func (c Column) String() string {
	if c < MinColumn {
		return ""
	}
	var letters [3]byte
	i := len(letters)
	n := uint32(c)
	for n > 0 {
		n--
		i--
		letters[i] = byte('A' + n%26)
		n /= 26
	}
	return string(letters[i:])
}

// isColumnOnly reports whether s is a bare column name, optionally
// preceded by '$'. Used to recognize whole-column ranges like "A:C".
func isColumnOnly(s string) bool {
	s = strings.TrimPrefix(s, "$")
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if (ch < 'A' || ch > 'Z') && (ch < 'a' || ch > 'z') {
			return false
		}
	}
	return true
}

// isRowOnly reports whether s is a bare row number, optionally
// preceded by '$'. Used to recognize whole-row ranges like "1:5".
func isRowOnly(s string) bool {
	s = strings.TrimPrefix(s, "$")
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
