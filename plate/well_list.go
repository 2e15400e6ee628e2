package plate

import (
	"cmp"
	"iter"
	"strings"

	"github.com/arloliu/microplate/internal/orderedset"
)

// WellList is a labeled, ordered set of well positions without data. Plates
// store WellLists as named groups for later re-selection of analysis subsets.
//
// Equality and ordering ignore the label.
type WellList struct {
	label   string
	indices *orderedset.Set[WellIndex]
}

// NewWellList creates a list holding indices. Duplicates collapse.
func NewWellList(label string, indices ...WellIndex) *WellList {
	l := &WellList{
		label:   label,
		indices: orderedset.NewWithCapacity(compareWellIndex, len(indices)),
	}
	l.Add(indices...)

	return l
}

// ParseWellList creates a list from a delimited string of well IDs such as
// "A1,A2,B1".
func ParseWellList(label, ids, delimiter string) (*WellList, error) {
	parts, err := splitList(ids, delimiter)
	if err != nil {
		return nil, err
	}

	l := NewWellList(label)
	for _, id := range parts {
		idx, err := ParseWellIndex(id)
		if err != nil {
			return nil, err
		}
		l.indices.Insert(idx)
	}

	return l, nil
}

// Label returns the list label.
func (l *WellList) Label() string {
	return l.label
}

// SetLabel changes the list label.
func (l *WellList) SetLabel(label string) {
	l.label = label
}

// Add inserts indices. The result is false if any index was already present.
func (l *WellList) Add(indices ...WellIndex) bool {
	ok := true
	for _, idx := range indices {
		if !l.indices.Insert(idx) {
			ok = false
		}
	}

	return ok
}

// Remove deletes indices. The result is false if any index was absent.
func (l *WellList) Remove(indices ...WellIndex) bool {
	ok := true
	for _, idx := range indices {
		if _, found := l.indices.Delete(idx); !found {
			ok = false
		}
	}

	return ok
}

// Contains reports whether idx is in the list.
func (l *WellList) Contains(idx WellIndex) bool {
	return l.indices.Contains(idx)
}

// Len returns the number of indices.
func (l *WellList) Len() int {
	return l.indices.Len()
}

// All iterates the indices in ascending order.
func (l *WellList) All() iter.Seq[WellIndex] {
	return l.indices.All()
}

// Indices returns the indices in ascending order.
func (l *WellList) Indices() []WellIndex {
	return l.indices.Values()
}

// Clone returns an independent copy.
func (l *WellList) Clone() *WellList {
	return &WellList{label: l.label, indices: l.indices.Clone()}
}

// Equal reports whether both lists hold the same indices.
func (l *WellList) Equal(other *WellList) bool {
	if l == nil || other == nil {
		return l == other
	}

	return l.indices.Len() == other.indices.Len() && l.indices.Compare(other.indices) == 0
}

// EqualsSet reports whether set has the same label as l and occupies exactly
// the positions in l.
func (l *WellList) EqualsSet(set *WellSet) bool {
	if set == nil || l.label != set.Label() || l.Len() != set.Len() {
		return false
	}
	for w := range set.All() {
		if !l.indices.Contains(w.index) {
			return false
		}
	}

	return true
}

// Compare orders lists by size first. Lists of equal size are compared pair
// by pair walking both from their highest index downwards; the first pair
// that differs decides by row, then column.
func (l *WellList) Compare(other *WellList) int {
	if l.Equal(other) {
		return 0
	}
	if c := cmp.Compare(l.Len(), other.Len()); c != 0 {
		return c
	}

	next, stop := iter.Pull(other.indices.Backward())
	defer stop()
	for a := range l.indices.Backward() {
		b, _ := next()
		if c := a.Compare(b); c != 0 {
			return c
		}
	}

	return 0
}

// String returns the label followed by the well IDs.
func (l *WellList) String() string {
	var sb strings.Builder
	sb.WriteString(l.label)
	sb.WriteString(" [")
	i := 0
	for idx := range l.indices.All() {
		if i > 0 {
			sb.WriteString(DefaultListDelimiter)
		}
		sb.WriteString(idx.String())
		i++
	}
	sb.WriteByte(']')

	return sb.String()
}

func compareWellList(a, b *WellList) int {
	return a.Compare(b)
}
