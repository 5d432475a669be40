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

import (
	"strconv"
	"strings"

	"github.com/teradata-labs/weft/internal/hashutil"
)

// excelErrors are the literal error values a workbook can hold where a
// reference is expected. They parse into an error-reference state
// instead of failing, so documents containing them can still be read.
var excelErrors = map[string]bool{
	"#REF!":   true,
	"#NAME?":  true,
	"#VALUE!": true,
	"#DIV/0!": true,
	"#NUM!":   true,
	"#N/A":    true,
	"#NULL!":  true,
}

// IsExcelError reports whether s is one of the workbook error
// literals such as "#REF!".
func IsExcelError(s string) bool {
	return excelErrors[s]
}

// CellReference addresses a single cell by column and row, each with
// an independent absolute marker: "A1", "$A1", "A$1", "$A$1".
//
// A CellReference may instead hold a workbook error literal (see
// IsExcelError); such a reference keeps its original text, compares
// equal only to an identical error reference, and reports IsError.
//
// The zero value is not valid; construct with NewCell or ParseCell.
type CellReference struct {
	column         Column
	row            uint32
	absoluteColumn bool
	absoluteRow    bool

	// errorText holds the original literal when this reference is a
	// workbook error value, e.g. "#REF!". Empty for normal references.
	errorText string
}

// NewCell constructs a relative reference to the given column and row.
// Both are validated against the worksheet bounds.
func NewCell(column Column, row uint32) (CellReference, error) {
	if column < MinColumn || column > MaxColumn || row < MinRow || row > MaxRow {
		return CellReference{}, &InvalidReferenceError{
			Input:  column.String() + strconv.FormatUint(uint64(row), 10),
			Reason: "cell is outside the worksheet bounds",
		}
	}
	return CellReference{column: column, row: row}, nil
}

// ParseCell parses an A1-notation cell reference. '$' before the
// column or row marks that part absolute; column letters may be
// either case. Workbook error literals like "#REF!" parse into an
// error reference. Anything else is an *InvalidReferenceError.
func ParseCell(s string) (CellReference, error) {
	if IsExcelError(s) {
		// Keep the literal; column/row get a safe placeholder that is
		// never read through the normal accessors' contract.
		return CellReference{column: MinColumn, row: MinRow, errorText: s}, nil
	}

	rest := s
	var ref CellReference

	if strings.HasPrefix(rest, "$") {
		ref.absoluteColumn = true
		rest = rest[1:]
	}

	letters := 0
	for letters < len(rest) {
		ch := rest[letters]
		if (ch < 'A' || ch > 'Z') && (ch < 'a' || ch > 'z') {
			break
		}
		letters++
	}
	if letters == 0 {
		return CellReference{}, &InvalidReferenceError{Input: s, Reason: "missing column letters"}
	}
	column, err := ColumnFromString(rest[:letters])
	if err != nil {
		return CellReference{}, err
	}
	ref.column = column
	rest = rest[letters:]

	if strings.HasPrefix(rest, "$") {
		ref.absoluteRow = true
		rest = rest[1:]
	}

	if rest == "" {
		return CellReference{}, &InvalidReferenceError{Input: s, Reason: "missing row number"}
	}
	row, err := strconv.ParseUint(rest, 10, 32)
	if err != nil {
		return CellReference{}, &InvalidReferenceError{Input: s, Reason: "malformed row number"}
	}
	if uint32(row) < MinRow || uint32(row) > MaxRow {
		return CellReference{}, &InvalidReferenceError{Input: s, Reason: "row is outside the worksheet bounds"}
	}
	ref.row = uint32(row)

	return ref, nil
}

// MustParseCell is like ParseCell but panics on malformed input.
// Intended for string literals.
func MustParseCell(s string) CellReference {
	ref, err := ParseCell(s)
	if err != nil {
		panic(err)
	}
	return ref
}

// Column returns the column.
func (r CellReference) Column() Column { return r.column }

// SetColumn sets the column.
func (r *CellReference) SetColumn(column Column) { r.column = column }

// Row returns the 1-based row.
func (r CellReference) Row() uint32 { return r.row }

// SetRow sets the row.
func (r *CellReference) SetRow(row uint32) { r.row = row }

// ColumnAbsolute reports whether the column part is absolute ("$A1").
func (r CellReference) ColumnAbsolute() bool { return r.absoluteColumn }

// SetColumnAbsolute marks the column part absolute or relative.
func (r *CellReference) SetColumnAbsolute(absolute bool) { r.absoluteColumn = absolute }

// RowAbsolute reports whether the row part is absolute ("A$1").
func (r CellReference) RowAbsolute() bool { return r.absoluteRow }

// SetRowAbsolute marks the row part absolute or relative.
func (r *CellReference) SetRowAbsolute(absolute bool) { r.absoluteRow = absolute }

// IsError reports whether this reference holds a workbook error
// literal instead of a cell address.
func (r CellReference) IsError() bool { return r.errorText != "" }

// WithAbsolute returns a copy with the column and row absolute
// markers set as given.
func (r CellReference) WithAbsolute(column, row bool) CellReference {
	r.absoluteColumn = column
	r.absoluteRow = row
	return r
}

// Offset returns the reference shifted by the given column and row
// deltas. The result is relative (absolute markers are dropped) and
// is validated against the worksheet bounds.
func (r CellReference) Offset(columns, rows int) (CellReference, error) {
	newColumn := int64(r.column) + int64(columns)
	newRow := int64(r.row) + int64(rows)
	if newColumn < int64(MinColumn) || newColumn > int64(MaxColumn) ||
		newRow < int64(MinRow) || newRow > int64(MaxRow) {
		return CellReference{}, &InvalidReferenceError{Input: r.String(), Reason: "offset leaves the worksheet bounds"}
	}
	return NewCell(Column(newColumn), uint32(newRow))
}

// ToRange returns the single-cell range covering this reference.
func (r CellReference) ToRange() RangeReference {
	return NewRange(r, r)
}

// String returns the canonical A1-notation form, with '$' markers for
// absolute parts. Error references return their original literal.
func (r CellReference) String() string {
	if r.errorText != "" {
		return r.errorText
	}
	var b strings.Builder
	if r.absoluteColumn {
		b.WriteByte('$')
	}
	b.WriteString(r.column.String())
	if r.absoluteRow {
		b.WriteByte('$')
	}
	b.WriteString(strconv.FormatUint(uint64(r.row), 10))
	return b.String()
}

// Equal reports whether two references address the same cell with the
// same absolute markers. An error reference is equal only to an error
// reference with the identical literal.
func (r CellReference) Equal(other CellReference) bool {
	if r.errorText != "" || other.errorText != "" {
		return r.errorText != "" && r.errorText == other.errorText
	}
	return r.column == other.column &&
		r.row == other.row &&
		r.absoluteColumn == other.absoluteColumn &&
		r.absoluteRow == other.absoluteRow
}

// Hash returns a deterministic hash over the same fields Equal
// compares, so equal references hash equal.
func (r CellReference) Hash() uint64 {
	if r.errorText != "" {
		return hashutil.CombineString(0, r.errorText)
	}
	seed := hashutil.Combine(0, uint64(r.column))
	seed = hashutil.Combine(seed, uint64(r.row))
	seed = hashutil.CombineBool(seed, r.absoluteColumn)
	seed = hashutil.CombineBool(seed, r.absoluteRow)
	return seed
}
