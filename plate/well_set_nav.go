package plate

import (
	"fmt"

	"github.com/arloliu/microplate/errs"
)

// First returns the lowest well.
func (s *WellSet) First() (*Well, bool) {
	return s.wells.First()
}

// Last returns the highest well.
func (s *WellSet) Last() (*Well, bool) {
	return s.wells.Last()
}

// Higher returns the lowest well strictly after the position of w.
func (s *WellSet) Higher(w *Well) (*Well, bool) {
	if w == nil {
		return nil, false
	}

	return s.wells.Higher(w)
}

// Lower returns the highest well strictly before the position of w.
func (s *WellSet) Lower(w *Well) (*Well, bool) {
	if w == nil {
		return nil, false
	}

	return s.wells.Lower(w)
}

// Ceiling returns the lowest well at or after the position of w.
func (s *WellSet) Ceiling(w *Well) (*Well, bool) {
	if w == nil {
		return nil, false
	}

	return s.wells.Ceiling(w)
}

// Floor returns the highest well at or before the position of w.
func (s *WellSet) Floor(w *Well) (*Well, bool) {
	if w == nil {
		return nil, false
	}

	return s.wells.Floor(w)
}

// PollFirst removes and returns the lowest well.
func (s *WellSet) PollFirst() (*Well, bool) {
	return s.wells.PollFirst()
}

// PollLast removes and returns the highest well.
func (s *WellSet) PollLast() (*Well, bool) {
	return s.wells.PollLast()
}

// HeadSet returns the wells before the position of to, including to when
// inclusive is set. A nil to yields an empty set.
func (s *WellSet) HeadSet(to *Well, inclusive bool) *WellSet {
	if to == nil {
		return s.derive(nil)
	}

	return s.derive(s.wells.Head(to, inclusive))
}

// TailSet returns the wells after the position of from, including from when
// inclusive is set. A nil from yields an empty set.
func (s *WellSet) TailSet(from *Well, inclusive bool) *WellSet {
	if from == nil {
		return s.derive(nil)
	}

	return s.derive(s.wells.Tail(from, inclusive))
}

// SubSet returns the wells between from and to. It fails when either bound is
// nil or from sorts after to.
func (s *WellSet) SubSet(from *Well, fromInclusive bool, to *Well, toInclusive bool) (*WellSet, error) {
	if from == nil || to == nil {
		return nil, fmt.Errorf("%w: nil range bound", errs.ErrInvalidArgument)
	}
	if from.Compare(to) > 0 {
		return nil, fmt.Errorf("%w: %s sorts after %s", errs.ErrInvalidRange, from.index, to.index)
	}

	return s.derive(s.wells.Range(from, fromInclusive, to, toInclusive)), nil
}

// HeadSetAt returns the wells before ordinal position index, including the
// well at index when inclusive is set.
func (s *WellSet) HeadSetAt(index int, inclusive bool) (*WellSet, error) {
	if err := s.checkOrdinals(index, index); err != nil {
		return nil, err
	}
	end := index
	if inclusive {
		end++
	}

	return s.derive(s.wells.Slice(0, end)), nil
}

// TailSetAt returns the wells after ordinal position index, including the
// well at index when inclusive is set.
func (s *WellSet) TailSetAt(index int, inclusive bool) (*WellSet, error) {
	if err := s.checkOrdinals(index, index); err != nil {
		return nil, err
	}
	start := index
	if !inclusive {
		start++
	}

	return s.derive(s.wells.Slice(start, s.wells.Len())), nil
}

// SubSetAt returns the wells between ordinal positions index1 and index2.
// Both positions must satisfy 0 <= index1 <= index2 <= Len()-1.
func (s *WellSet) SubSetAt(index1 int, inclusive1 bool, index2 int, inclusive2 bool) (*WellSet, error) {
	if err := s.checkOrdinals(index1, index2); err != nil {
		return nil, err
	}
	lo, hi := index1, index2
	if !inclusive1 {
		lo++
	}
	if inclusive2 {
		hi++
	}
	if lo > hi {
		lo = hi
	}

	return s.derive(s.wells.Slice(lo, hi)), nil
}

func (s *WellSet) checkOrdinals(index1, index2 int) error {
	if index1 < 0 || index1 > index2 || index2 > s.wells.Len()-1 {
		return fmt.Errorf("%w: indices %d and %d for size %d", errs.ErrIndexOutOfRange, index1, index2, s.wells.Len())
	}

	return nil
}
