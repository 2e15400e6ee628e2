package plate

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWellSet_AddRejectsDuplicates(t *testing.T) {
	logger, buf := captureLogger(t)
	s := NewWellSet(WithSetLogger(logger))

	require.True(t, s.Add(MustParseWell("B1", 1), MustParseWell("A1", 2)))
	require.False(t, s.Add(MustParseWell("A1", 99), MustParseWell("C1", 3)))

	require.Equal(t, []string{"A1", "B1", "C1"}, setIDs(s))
	a1, ok := s.GetID("A1")
	require.True(t, ok)
	require.Equal(t, []float64{2}, a1.Data())

	require.Equal(t, 1, countRejections(buf))
	require.Contains(t, buf.String(), "op=add")
	require.Contains(t, buf.String(), "well=A1")
}

func TestWellSet_AddStoresCopies(t *testing.T) {
	w := MustParseWell("A1", 1)
	s := WellSetOf(w)

	w.Add(2)
	got, ok := s.Get(w)
	require.True(t, ok)
	require.Equal(t, []float64{1}, got.Data())
}

func TestWellSet_LookupsAlias(t *testing.T) {
	s := newTestSet(t, "A1,A2")

	got, ok := s.GetID("a1")
	require.True(t, ok)
	got.Add(5)

	again, ok := s.GetIndex(idx(t, "A1"))
	require.True(t, ok)
	require.Same(t, got, again)
	require.Equal(t, []float64{5}, again.Data())
}

func TestWellSet_NilArguments(t *testing.T) {
	logger, buf := captureLogger(t)
	s := NewWellSet(WithSetLogger(logger))

	require.False(t, s.Add(nil, MustParseWell("A1")))
	require.Equal(t, 1, s.Len())
	require.False(t, s.AddSet(nil))
	require.False(t, s.RemoveSet(nil))
	require.False(t, s.ReplaceSet(nil))
	require.False(t, s.RetainSet(nil))
	require.Equal(t, 5, countRejections(buf))
	require.False(t, s.Contains(nil))
}

func TestWellSet_AddIDs(t *testing.T) {
	logger, buf := captureLogger(t)
	s := NewWellSet(WithSetLogger(logger))

	require.False(t, s.AddIDs("A1,bad,B2", ","))
	require.Equal(t, []string{"A1", "B2"}, setIDs(s))
	require.Contains(t, buf.String(), "well=bad")

	require.False(t, s.AddIDs("A3", ""))
	require.True(t, s.AddIDs("C1|C2", "|"))
	require.Equal(t, 4, s.Len())
}

func TestWellSet_Remove(t *testing.T) {
	s := newTestSet(t, "A1,A2,A3")

	require.False(t, s.Remove(MustParseWell("A2"), MustParseWell("H1")))
	require.Equal(t, []string{"A1", "A3"}, setIDs(s))

	require.True(t, s.RemoveIDs("A1", ","))
	require.True(t, s.RemoveSet(newTestSet(t, "A3")))
	require.True(t, s.IsEmpty())
}

func TestWellSet_ReplaceIsUpsert(t *testing.T) {
	s := NewWellSet()
	s.Add(MustParseWell("A1", 1))

	require.True(t, s.Replace(MustParseWell("A1", 7), MustParseWell("B1", 8)))
	a1, _ := s.GetID("A1")
	require.Equal(t, []float64{7}, a1.Data())
	require.Equal(t, 2, s.Len())

	require.True(t, s.ReplaceIDs("A1", ","))
	a1, _ = s.GetID("A1")
	require.True(t, a1.IsEmpty())

	other := WellSetOf(MustParseWell("B1", 1, 2))
	require.True(t, s.ReplaceSet(other))
	b1, _ := s.GetID("B1")
	require.Equal(t, []float64{1, 2}, b1.Data())
}

func TestWellSet_Retain(t *testing.T) {
	s := newTestSet(t, "A1,A2,A3,B1")

	require.True(t, s.Retain(MustParseWell("A1"), MustParseWell("B1")))
	require.Equal(t, []string{"A1", "B1"}, setIDs(s))

	require.False(t, s.RetainIDs("B1,H12", ","))
	require.Equal(t, []string{"B1"}, setIDs(s))

	require.False(t, s.RetainSet(newTestSet(t, "B1,C1")))
	require.Equal(t, []string{"B1"}, setIDs(s))
}

func TestWellSet_Contains(t *testing.T) {
	s := newTestSet(t, "A1,A2")

	require.True(t, s.Contains(MustParseWell("A1", 42)))
	require.True(t, s.ContainsIndex(idx(t, "A2")))
	require.True(t, s.ContainsID("a2"))
	require.False(t, s.ContainsID("zz"))
	require.True(t, s.ContainsAll(wells(t, "A1", "A2")...))
	require.False(t, s.ContainsAll(wells(t, "A1", "A3")...))
}

func TestWellSet_WellsSkipsAbsent(t *testing.T) {
	s := newTestSet(t, "A1,A2")

	require.Equal(t, []string{"A2"}, wellIDs(s.Wells(wells(t, "A2", "A9")...)))
	require.Equal(t, []string{"A1"}, wellIDs(s.WellsIDs("A1,x,A5", ",")))
	require.Nil(t, s.WellsIDs("A1", ""))
}

func TestWellSet_Label(t *testing.T) {
	s := WellSetOf(wells(t, "A2", "A1")...)
	require.Equal(t, "WellSet A1, A2", s.Label())
	require.Equal(t, "WellSet", NewWellSet().Label())

	s.SetLabel("")
	require.Equal(t, "", s.Label())

	l := newTestSet(t, "B1").ToWellList()
	require.Equal(t, "test", l.Label())
	require.Equal(t, []WellIndex{idx(t, "B1")}, l.Indices())
}

func TestWellSet_CloneIsDeep(t *testing.T) {
	s := NewWellSet(WithSetLabel("x"))
	s.Add(MustParseWell("A1", 1))

	c := s.Clone()
	require.True(t, c.DataEqual(s))

	got, _ := c.GetID("A1")
	got.Add(2)
	require.False(t, c.DataEqual(s))
	require.True(t, c.Equal(s))

	c.Add(MustParseWell("A2"))
	require.Equal(t, 1, s.Len())
}

func TestWellSet_EqualityAndOrder(t *testing.T) {
	a := newTestSet(t, "A1,A2")
	b := newTestSet(t, "A2,A1")
	require.True(t, a.Equal(b))
	require.Equal(t, a.Hash(), b.Hash())

	b.SetLabel("zzz")
	require.False(t, a.Equal(b))
	require.Negative(t, a.Compare(b))

	c := newTestSet(t, "A1")
	require.Positive(t, a.Compare(c))

	d := newTestSet(t, "A1,A3")
	require.Negative(t, a.Compare(d))

	require.False(t, a.Equal(nil))
}

func TestWellSet_String(t *testing.T) {
	require.Equal(t, "test [A1,B2]", newTestSet(t, "B2,A1").String())
}

func TestWellSet_Iteration(t *testing.T) {
	s := newTestSet(t, "B1,A1,A2")

	var forward, backward []string
	for w := range s.All() {
		forward = append(forward, w.ID())
	}
	for w := range s.Backward() {
		backward = append(backward, w.ID())
	}

	require.Equal(t, []string{"A1", "A2", "B1"}, forward)
	require.Equal(t, []string{"B1", "A2", "A1"}, backward)
	require.Equal(t, []WellIndex{idx(t, "A1"), idx(t, "A2"), idx(t, "B1")}, s.Indices())

	s.Clear()
	require.True(t, s.IsEmpty())
}

func BenchmarkWellSet_Add96(b *testing.B) {
	ws := make([]*Well, 0, 96)
	for r := range 8 {
		for c := 1; c <= 12; c++ {
			w, _ := NewWell(r, c, float64(r*c))
			ws = append(ws, w)
		}
	}

	for b.Loop() {
		s := NewWellSet()
		s.Add(ws...)
	}
}
