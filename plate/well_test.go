package plate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/microplate/errs"
	"github.com/arloliu/microplate/format"
)

func TestNewWell(t *testing.T) {
	w, err := NewWell(2, 7, 1, 2, 3)
	require.NoError(t, err)
	require.Equal(t, "C7", w.ID())
	require.Equal(t, "C", w.RowString())
	require.Equal(t, 2, w.Row())
	require.Equal(t, 7, w.Column())
	require.Equal(t, []float64{1, 2, 3}, w.Data())
	require.Equal(t, format.DataTypeDouble, w.DataType())

	_, err = NewWell(-1, 1)
	require.ErrorIs(t, err, errs.ErrInvalidRow)

	_, err = NewWell(0, 0)
	require.ErrorIs(t, err, errs.ErrInvalidColumn)
}

func TestNewWell_CopiesValues(t *testing.T) {
	values := []float64{1, 2}
	w, err := NewWell(0, 1, values...)
	require.NoError(t, err)

	values[0] = 99
	require.Equal(t, []float64{1, 2}, w.Data())
}

func TestNewWell_Variants(t *testing.T) {
	w, err := NewWellRowID("b", 3)
	require.NoError(t, err)
	require.Equal(t, "B3", w.ID())

	w, err = NewWellRowID("1", 3)
	require.NoError(t, err)
	require.Equal(t, "B3", w.ID())

	w, err = NewWellColumnID(1, "4")
	require.NoError(t, err)
	require.Equal(t, "B4", w.ID())

	w, err = NewWellFromStrings("AA", "10", 5)
	require.NoError(t, err)
	require.Equal(t, "AA10", w.ID())
	require.Equal(t, []float64{5}, w.Data())

	w, err = NewWellAt(NewWellIndex(3, 3))
	require.NoError(t, err)
	require.Equal(t, "D3", w.ID())

	_, err = NewWellColumnID(1, "x")
	require.ErrorIs(t, err, errs.ErrInvalidColumn)

	_, err = NewWellRowID("?", 1)
	require.ErrorIs(t, err, errs.ErrInvalidRow)

	_, err = ParseWell("A0")
	require.ErrorIs(t, err, errs.ErrInvalidWellID)

	require.Panics(t, func() { MustParseWell("nope") })
}

func TestWell_Lookups(t *testing.T) {
	w := MustParseWell("A1", 1, 2, 3, 2)

	v, ok := w.Value(2)
	require.True(t, ok)
	require.Equal(t, 3.0, v)

	_, ok = w.Value(4)
	require.False(t, ok)

	require.True(t, w.Contains(2))
	require.False(t, w.Contains(9))
	require.Equal(t, 1, w.IndexOf(2))
	require.Equal(t, 3, w.LastIndexOf(2))
	require.Equal(t, -1, w.IndexOf(9))
	require.Equal(t, 4, w.Len())
	require.False(t, w.IsEmpty())

	nan := MustParseWell("A1", 1, math.NaN())
	require.Equal(t, 1, nan.IndexOf(math.NaN()))
}

func TestWell_AddAndReplace(t *testing.T) {
	w := MustParseWell("A1", 1)
	w.Add(2, 3)
	w.AddWell(MustParseWell("B1", 4))
	require.Equal(t, []float64{1, 2, 3, 4}, w.Data())

	w.ReplaceData(9)
	require.Equal(t, []float64{9}, w.Data())

	w.ReplaceWithWell(MustParseWell("C1", 7, 8))
	require.Equal(t, []float64{7, 8}, w.Data())
	require.Equal(t, "A1", w.ID())
}

func TestWell_AddSetContainingItself(t *testing.T) {
	s := NewWellSet()
	require.True(t, s.Add(MustParseWell("A1", 1), MustParseWell("A2", 2)))

	stored, ok := s.GetID("A1")
	require.True(t, ok)

	stored.AddSet(s)
	require.Equal(t, []float64{1, 1, 2}, stored.Data())

	stored.ReplaceWithSet(s)
	require.Equal(t, []float64{1, 1, 2, 2}, stored.Data())
}

func TestWell_Remove(t *testing.T) {
	w := MustParseWell("A1", 1, 2, 1, 3)

	require.True(t, w.Remove(1))
	require.Equal(t, []float64{2, 3}, w.Data())

	require.False(t, w.Remove(9, 3))
	require.Equal(t, []float64{2}, w.Data())
}

func TestWell_Retain(t *testing.T) {
	w := MustParseWell("A1", 1, 2, 1, 3)

	require.True(t, w.Retain(1, 3))
	require.Equal(t, []float64{1, 1, 3}, w.Data())

	require.False(t, w.Retain(3, 42))
	require.Equal(t, []float64{3}, w.Data())
}

func TestWell_Ranges(t *testing.T) {
	w := MustParseWell("A1", 0, 1, 2, 3, 4)

	sub, err := w.SubList(1, 3)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2, 3}, sub.Data())
	require.Equal(t, "A1", sub.ID())
	require.Equal(t, 5, w.Len())

	_, err = w.SubList(3, 5)
	require.ErrorIs(t, err, errs.ErrIndexOutOfRange)

	_, err = w.SubList(0, -1)
	require.ErrorIs(t, err, errs.ErrIndexOutOfRange)

	require.NoError(t, w.RemoveRange(1, 3))
	require.Equal(t, []float64{0, 3, 4}, w.Data())

	require.NoError(t, w.RetainRange(1, 2))
	require.Equal(t, []float64{3}, w.Data())

	require.ErrorIs(t, w.RemoveRange(1, 0), errs.ErrIndexOutOfRange)
	require.ErrorIs(t, w.RetainRange(0, 2), errs.ErrIndexOutOfRange)
	require.Equal(t, []float64{3}, w.Data())
}

func TestWell_Identity(t *testing.T) {
	a := MustParseWell("B2", 1, 2)
	b := MustParseWell("b2", 3)

	require.True(t, a.Equal(b))
	require.Zero(t, a.Compare(b))
	require.Equal(t, a.Hash(), b.Hash())
	require.False(t, a.DataEqual(b))

	b.ReplaceData(1, 2)
	require.True(t, a.DataEqual(b))

	require.Negative(t, MustParseWell("A12").Compare(MustParseWell("B1")))
	require.Negative(t, MustParseWell("A2").Compare(MustParseWell("A10")))
	require.False(t, a.Equal(nil))
	require.True(t, (*Well)(nil).Equal(nil))
}

func TestWell_CloneAndClear(t *testing.T) {
	w := MustParseWell("A1", 1, 2)
	c := w.Clone()

	c.Data()[0] = 5
	require.Equal(t, 1.0, w.Data()[0])

	w.Clear()
	require.True(t, w.IsEmpty())
	require.Equal(t, []float64{5, 2}, c.Data())
}

func TestWell_String(t *testing.T) {
	require.Equal(t, "A1[5 6]", MustParseWell("A1", 5, 6).String())
	require.Equal(t, "H12[]", MustParseWell("H12").String())
}

func TestCompareValue(t *testing.T) {
	nan := math.NaN()

	require.Zero(t, compareValue(nan, nan))
	require.Negative(t, compareValue(nan, -1))
	require.Positive(t, compareValue(1, nan))
	require.Negative(t, compareValue(1, 2))
	require.Zero(t, compareValue(2, 2))
}
