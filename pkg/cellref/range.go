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

import "strings"

// RangeReference addresses a rectangular block of cells by its
// top-left and bottom-right corners: "A1:D10". A single cell is the
// degenerate range whose corners coincide.
//
// The zero value is not valid; construct with NewRange, NewRangeCoords,
// or ParseRange.
type RangeReference struct {
	topLeft     CellReference
	bottomRight CellReference
}

// NewRange constructs a range from its top-left and bottom-right
// corners.
func NewRange(topLeft, bottomRight CellReference) RangeReference {
	return RangeReference{topLeft: topLeft, bottomRight: bottomRight}
}

// NewRangeCoords constructs a range from raw corner coordinates, all
// validated against the worksheet bounds.
func NewRangeCoords(startColumn Column, startRow uint32, endColumn Column, endRow uint32) (RangeReference, error) {
	topLeft, err := NewCell(startColumn, startRow)
	if err != nil {
		return RangeReference{}, err
	}
	bottomRight, err := NewCell(endColumn, endRow)
	if err != nil {
		return RangeReference{}, err
	}
	return NewRange(topLeft, bottomRight), nil
}

// ParseRange parses an A1-notation range. Accepted forms:
//
//   - "B2" — a single cell
//   - "A1:D10" — a rectangle between two cell references
//   - "A:C", "$A:$C" — whole columns, expanded to rows 1..MaxRow
//   - "1:5" — whole rows, expanded to columns A..XFD
//   - "#REF!" on either or both sides — degrades to the A1:A1
//     placeholder so damaged workbooks still load
func ParseRange(s string) (RangeReference, error) {
	if s == "#REF!" {
		return refErrorRange(), nil
	}

	colon := strings.IndexByte(s, ':')
	if colon < 0 {
		cell, err := ParseCell(s)
		if err != nil {
			return RangeReference{}, err
		}
		return NewRange(cell, cell), nil
	}

	start := s[:colon]
	end := s[colon+1:]

	if start == "#REF!" || end == "#REF!" {
		return refErrorRange(), nil
	}

	switch {
	case isColumnOnly(start) && isColumnOnly(end):
		startColumn, err := ColumnFromString(strings.TrimPrefix(start, "$"))
		if err != nil {
			return RangeReference{}, err
		}
		endColumn, err := ColumnFromString(strings.TrimPrefix(end, "$"))
		if err != nil {
			return RangeReference{}, err
		}
		return NewRangeCoords(startColumn, MinRow, endColumn, MaxRow)

	case isRowOnly(start) && isRowOnly(end):
		startCell, err := ParseCell("A" + strings.TrimPrefix(start, "$"))
		if err != nil {
			return RangeReference{}, &InvalidReferenceError{Input: s, Reason: "malformed start row"}
		}
		endCell, err := ParseCell(MaxColumn.String() + strings.TrimPrefix(end, "$"))
		if err != nil {
			return RangeReference{}, &InvalidReferenceError{Input: s, Reason: "malformed end row"}
		}
		return NewRange(startCell, endCell), nil

	default:
		topLeft, err := ParseCell(start)
		if err != nil {
			return RangeReference{}, err
		}
		bottomRight, err := ParseCell(end)
		if err != nil {
			return RangeReference{}, err
		}
		return NewRange(topLeft, bottomRight), nil
	}
}

// MustParseRange is like ParseRange but panics on malformed input.
// Intended for string literals.
func MustParseRange(s string) RangeReference {
	ref, err := ParseRange(s)
	if err != nil {
		panic(err)
	}
	return ref
}

// refErrorRange is the placeholder a "#REF!" range parses to.
func refErrorRange() RangeReference {
	cell := CellReference{column: MinColumn, row: MinRow}
	return NewRange(cell, cell)
}

// TopLeft returns the top-left corner.
func (r RangeReference) TopLeft() CellReference { return r.topLeft }

// TopRight returns the top-right corner.
func (r RangeReference) TopRight() CellReference {
	return CellReference{column: r.bottomRight.column, row: r.topLeft.row}
}

// BottomLeft returns the bottom-left corner.
func (r RangeReference) BottomLeft() CellReference {
	return CellReference{column: r.topLeft.column, row: r.bottomRight.row}
}

// BottomRight returns the bottom-right corner.
func (r RangeReference) BottomRight() CellReference { return r.bottomRight }

// Width returns the number of columns the range spans.
func (r RangeReference) Width() int {
	return 1 + int(r.bottomRight.column) - int(r.topLeft.column)
}

// Height returns the number of rows the range spans.
func (r RangeReference) Height() int {
	return 1 + int(r.bottomRight.row) - int(r.topLeft.row)
}

// IsSingleCell reports whether the range covers exactly one cell.
func (r RangeReference) IsSingleCell() bool {
	return r.Width() == 1 && r.Height() == 1
}

// Contains reports whether the given cell lies inside the range.
func (r RangeReference) Contains(cell CellReference) bool {
	return r.topLeft.column <= cell.column &&
		cell.column <= r.bottomRight.column &&
		r.topLeft.row <= cell.row &&
		cell.row <= r.bottomRight.row
}

// Offset returns the range shifted by the given column and row
// deltas, validated against the worksheet bounds.
func (r RangeReference) Offset(columns, rows int) (RangeReference, error) {
	topLeft, err := r.topLeft.Offset(columns, rows)
	if err != nil {
		return RangeReference{}, err
	}
	bottomRight, err := r.bottomRight.Offset(columns, rows)
	if err != nil {
		return RangeReference{}, err
	}
	return NewRange(topLeft, bottomRight), nil
}

// WithAbsolute returns a copy with both corners fully absolute, e.g.
// "$A$1:$D$10".
func (r RangeReference) WithAbsolute() RangeReference {
	return NewRange(r.topLeft.WithAbsolute(true, true), r.bottomRight.WithAbsolute(true, true))
}

// String returns the canonical A1-notation form. Single-cell ranges
// collapse to the cell reference alone.
func (r RangeReference) String() string {
	if r.IsSingleCell() {
		return r.topLeft.String()
	}
	return r.topLeft.String() + ":" + r.bottomRight.String()
}

// Equal reports whether both corners are equal.
func (r RangeReference) Equal(other RangeReference) bool {
	return r.topLeft.Equal(other.topLeft) && r.bottomRight.Equal(other.bottomRight)
}
