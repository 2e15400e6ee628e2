package plate

import (
	"cmp"
	"strconv"
)

// WellIndex is a bare (row, column) plate coordinate without measurement data.
//
// Rows are zero-based and rendered as letters; columns are one-based. The zero
// value is not a valid coordinate. WellIndex is comparable and can be used as a
// map key; two indices are equal exactly when row and column match.
type WellIndex struct {
	row    int
	column int
}

// NewWellIndex stores row and column without validation.
func NewWellIndex(row, column int) WellIndex {
	return WellIndex{row: row, column: column}
}

// ParseWellIndex parses a combined ID such as "A1" or "AB12".
func ParseWellIndex(id string) (WellIndex, error) {
	row, column, err := splitWellID(id)
	if err != nil {
		return WellIndex{}, err
	}

	return WellIndex{row: row, column: column}, nil
}

// Row returns the zero-based row.
func (i WellIndex) Row() int {
	return i.row
}

// Column returns the one-based column.
func (i WellIndex) Column() int {
	return i.column
}

// RowString returns the row letters.
func (i WellIndex) RowString() string {
	return EncodeRow(i.row)
}

// Compare orders indices by row, then column.
func (i WellIndex) Compare(other WellIndex) int {
	if c := cmp.Compare(i.row, other.row); c != 0 {
		return c
	}

	return cmp.Compare(i.column, other.column)
}

// Equal reports whether both coordinates match.
func (i WellIndex) Equal(other WellIndex) bool {
	return i == other
}

// String returns the well ID, for example "C7".
func (i WellIndex) String() string {
	return EncodeRow(i.row) + strconv.Itoa(i.column)
}

func compareWellIndex(a, b WellIndex) int {
	return a.Compare(b)
}
