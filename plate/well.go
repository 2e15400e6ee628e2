package plate

import (
	"fmt"
	"math"
	"slices"

	"github.com/arloliu/microplate/errs"
	"github.com/arloliu/microplate/format"
	"github.com/arloliu/microplate/internal/hash"
)

// Well is a single plate position holding an ordered sequence of measurements.
//
// The identity of a well is its position only: Equal, Compare and Hash ignore
// the data. Containers rely on this to find the well stored at a position and
// replace or mutate its data in place.
type Well struct {
	index WellIndex
	data  []float64
}

// NewWell creates a well at the given zero-based row and one-based column.
// The values are copied.
func NewWell(row, column int, values ...float64) (*Well, error) {
	if err := validatePosition(row, column); err != nil {
		return nil, err
	}

	return newWell(NewWellIndex(row, column), values), nil
}

// NewWellAt creates a well at index.
func NewWellAt(index WellIndex, values ...float64) (*Well, error) {
	return NewWell(index.row, index.column, values...)
}

// NewWellRowID creates a well from a row given as letters or an integer
// literal and a numeric column.
func NewWellRowID(row string, column int, values ...float64) (*Well, error) {
	r, err := ParseRow(row)
	if err != nil {
		return nil, err
	}

	return NewWell(r, column, values...)
}

// NewWellColumnID creates a well from a numeric row and a column given as an
// integer literal.
func NewWellColumnID(row int, column string, values ...float64) (*Well, error) {
	c, err := ParseColumn(column)
	if err != nil {
		return nil, err
	}

	return NewWell(row, c, values...)
}

// NewWellFromStrings creates a well from a row (letters or literal) and a
// column literal.
func NewWellFromStrings(row, column string, values ...float64) (*Well, error) {
	r, err := ParseRow(row)
	if err != nil {
		return nil, err
	}
	c, err := ParseColumn(column)
	if err != nil {
		return nil, err
	}

	return NewWell(r, c, values...)
}

// ParseWell creates a well from a combined ID such as "A1" or "ab12". The ID
// is trimmed and upper-cased before validation.
func ParseWell(id string, values ...float64) (*Well, error) {
	row, column, err := splitWellID(id)
	if err != nil {
		return nil, err
	}

	return newWell(NewWellIndex(row, column), values), nil
}

// MustParseWell is like ParseWell but panics on a malformed ID.
func MustParseWell(id string, values ...float64) *Well {
	w, err := ParseWell(id, values...)
	if err != nil {
		panic(err)
	}

	return w
}

func newWell(index WellIndex, values []float64) *Well {
	return &Well{index: index, data: slices.Clone(values)}
}

// Row returns the zero-based row.
func (w *Well) Row() int {
	return w.index.row
}

// Column returns the one-based column.
func (w *Well) Column() int {
	return w.index.column
}

// RowString returns the row letters.
func (w *Well) RowString() string {
	return w.index.RowString()
}

// ID returns the combined well ID, for example "H12".
func (w *Well) ID() string {
	return w.index.String()
}

// Index returns the position of the well.
func (w *Well) Index() WellIndex {
	return w.index
}

// DataType returns the numeric backing of the well.
func (w *Well) DataType() format.DataType {
	return format.DataTypeDouble
}

// Data returns the measurements. The slice aliases the well's storage.
func (w *Well) Data() []float64 {
	return w.data
}

// Len returns the number of measurements.
func (w *Well) Len() int {
	return len(w.data)
}

// IsEmpty reports whether the well holds no measurements.
func (w *Well) IsEmpty() bool {
	return len(w.data) == 0
}

// Value returns the measurement at position i.
func (w *Well) Value(i int) (float64, bool) {
	if i < 0 || i >= len(w.data) {
		return 0, false
	}

	return w.data[i], true
}

// Contains reports whether v is one of the measurements.
func (w *Well) Contains(v float64) bool {
	return w.IndexOf(v) >= 0
}

// IndexOf returns the first position of v, or -1.
func (w *Well) IndexOf(v float64) int {
	return slices.IndexFunc(w.data, func(x float64) bool { return sameValue(x, v) })
}

// LastIndexOf returns the last position of v, or -1.
func (w *Well) LastIndexOf(v float64) int {
	for i := len(w.data) - 1; i >= 0; i-- {
		if sameValue(w.data[i], v) {
			return i
		}
	}

	return -1
}

// Add appends values in order.
func (w *Well) Add(values ...float64) {
	w.data = append(w.data, values...)
}

// AddWell appends the measurements of other.
func (w *Well) AddWell(other *Well) {
	w.data = append(w.data, other.data...)
}

// AddSet appends the measurements of every well in set, in set order.
func (w *Well) AddSet(set *WellSet) {
	// snapshot first: set may contain w itself
	var values []float64
	for src := range set.All() {
		values = append(values, src.data...)
	}
	w.data = append(w.data, values...)
}

// ReplaceData discards the measurements and stores a copy of values.
func (w *Well) ReplaceData(values ...float64) {
	w.data = append(w.data[:0:0], values...)
}

// ReplaceWithWell replaces the measurements with a copy of other's.
func (w *Well) ReplaceWithWell(other *Well) {
	w.ReplaceData(other.data...)
}

// ReplaceWithSet replaces the measurements with those of every well in set.
func (w *Well) ReplaceWithSet(set *WellSet) {
	var values []float64
	for src := range set.All() {
		values = append(values, src.data...)
	}
	w.data = values
}

// Remove deletes every occurrence of each value. All values are processed;
// the result is false if any of them was not present.
func (w *Well) Remove(values ...float64) bool {
	ok := true
	for _, v := range values {
		n := len(w.data)
		w.data = slices.DeleteFunc(w.data, func(x float64) bool { return sameValue(x, v) })
		if len(w.data) == n {
			ok = false
		}
	}

	return ok
}

// Retain keeps only the measurements equal to one of values. The result is
// false if any of the values was not present.
func (w *Well) Retain(values ...float64) bool {
	ok := true
	for _, v := range values {
		if !w.Contains(v) {
			ok = false
		}
	}
	w.data = slices.DeleteFunc(w.data, func(x float64) bool {
		return !slices.ContainsFunc(values, func(v float64) bool { return sameValue(x, v) })
	})

	return ok
}

// RemoveRange deletes the measurements in [begin, end).
func (w *Well) RemoveRange(begin, end int) error {
	if err := w.checkRange(begin, end); err != nil {
		return err
	}
	w.data = slices.Delete(w.data, begin, end)

	return nil
}

// RetainRange keeps only the measurements in [begin, end).
func (w *Well) RetainRange(begin, end int) error {
	if err := w.checkRange(begin, end); err != nil {
		return err
	}
	w.data = slices.Clone(w.data[begin:end])

	return nil
}

// SubList returns a new well at the same position holding length
// measurements starting at begin. The receiver is not modified.
func (w *Well) SubList(begin, length int) (*Well, error) {
	if length < 0 {
		return nil, errs.IndexOutOfRange(begin, begin+length, len(w.data))
	}
	if err := w.checkRange(begin, begin+length); err != nil {
		return nil, err
	}

	return newWell(w.index, w.data[begin:begin+length]), nil
}

// Clear removes all measurements.
func (w *Well) Clear() {
	w.data = w.data[:0]
}

// Clone returns a deep copy.
func (w *Well) Clone() *Well {
	return newWell(w.index, w.data)
}

// Equal reports whether both wells occupy the same position.
// Measurements are not compared; use DataEqual for that.
func (w *Well) Equal(other *Well) bool {
	if w == nil || other == nil {
		return w == other
	}

	return w.index == other.index
}

// DataEqual reports whether both wells share position and measurements.
func (w *Well) DataEqual(other *Well) bool {
	return w.Equal(other) && slices.EqualFunc(w.data, other.data, sameValue)
}

// Compare orders wells by row, then column.
func (w *Well) Compare(other *Well) int {
	return w.index.Compare(other.index)
}

// Hash returns a hash of the position, consistent with Equal.
func (w *Well) Hash() uint64 {
	return hash.Position(w.index.row, w.index.column)
}

// String returns the well ID followed by its measurements.
func (w *Well) String() string {
	return fmt.Sprintf("%s%v", w.index, w.data)
}

func (w *Well) checkRange(begin, end int) error {
	if begin < 0 || begin > end || end > len(w.data) {
		return errs.IndexOutOfRange(begin, end, len(w.data))
	}

	return nil
}

func compareWell(a, b *Well) int {
	return a.index.Compare(b.index)
}

// compareWellData orders wells by position, then lexicographically by data.
func compareWellData(a, b *Well) int {
	if c := a.index.Compare(b.index); c != 0 {
		return c
	}

	return slices.CompareFunc(a.data, b.data, compareValue)
}

func sameValue(a, b float64) bool {
	return a == b || (math.IsNaN(a) && math.IsNaN(b))
}

// compareValue is a total order over float64 that places NaN first.
func compareValue(a, b float64) int {
	switch {
	case sameValue(a, b):
		return 0
	case math.IsNaN(a) || a < b:
		return -1
	default:
		return 1
	}
}
