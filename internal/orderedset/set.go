// Package orderedset implements a sorted, duplicate-free collection ordered by a
// caller supplied comparator.
//
// The set keeps its elements in a sorted slice and locates them by binary
// search, so lookups are O(log n) and insertions/removals are O(n). Plates and
// stacks hold at most a few thousand elements, where the contiguous layout beats
// a pointer-chasing tree.
//
// Elements that compare equal (cmp returns 0) are the same element for the set.
// A Set is not safe for concurrent use.
package orderedset

import (
	"iter"
	"slices"
)

// Set is an ordered set of T.
type Set[T any] struct {
	items []T
	cmp   func(a, b T) int
}

// New creates an empty set ordered by cmp.
func New[T any](cmp func(a, b T) int) *Set[T] {
	return &Set[T]{cmp: cmp}
}

// NewWithCapacity creates an empty set with room for n elements.
func NewWithCapacity[T any](cmp func(a, b T) int, n int) *Set[T] {
	return &Set[T]{items: make([]T, 0, n), cmp: cmp}
}

func (s *Set[T]) search(v T) (int, bool) {
	return slices.BinarySearchFunc(s.items, v, s.cmp)
}

// Len returns the number of elements.
func (s *Set[T]) Len() int {
	return len(s.items)
}

// Insert adds v. It returns false and leaves the set unchanged when an equal
// element is already present.
func (s *Set[T]) Insert(v T) bool {
	i, found := s.search(v)
	if found {
		return false
	}
	s.items = slices.Insert(s.items, i, v)

	return true
}

// Upsert adds v, overwriting an equal element if present. It returns the
// replaced element and true when an overwrite happened.
func (s *Set[T]) Upsert(v T) (T, bool) {
	i, found := s.search(v)
	if found {
		old := s.items[i]
		s.items[i] = v

		return old, true
	}
	s.items = slices.Insert(s.items, i, v)

	var zero T

	return zero, false
}

// Delete removes the element equal to v and returns it.
func (s *Set[T]) Delete(v T) (T, bool) {
	i, found := s.search(v)
	if !found {
		var zero T
		return zero, false
	}
	old := s.items[i]
	s.items = slices.Delete(s.items, i, i+1)

	return old, true
}

// DeleteFunc removes every element for which del returns true and reports how
// many were removed.
func (s *Set[T]) DeleteFunc(del func(T) bool) int {
	n := len(s.items)
	s.items = slices.DeleteFunc(s.items, del)

	return n - len(s.items)
}

// Get returns the stored element equal to v.
func (s *Set[T]) Get(v T) (T, bool) {
	i, found := s.search(v)
	if !found {
		var zero T
		return zero, false
	}

	return s.items[i], true
}

// Contains reports whether an element equal to v is present.
func (s *Set[T]) Contains(v T) bool {
	_, found := s.search(v)
	return found
}

// Position returns the ordinal position of v, or -1.
func (s *Set[T]) Position(v T) int {
	i, found := s.search(v)
	if !found {
		return -1
	}

	return i
}

// At returns the element at ordinal position i. It panics if i is out of range.
func (s *Set[T]) At(i int) T {
	return s.items[i]
}

// First returns the lowest element.
func (s *Set[T]) First() (T, bool) {
	if len(s.items) == 0 {
		var zero T
		return zero, false
	}

	return s.items[0], true
}

// Last returns the highest element.
func (s *Set[T]) Last() (T, bool) {
	if len(s.items) == 0 {
		var zero T
		return zero, false
	}

	return s.items[len(s.items)-1], true
}

// Higher returns the lowest element strictly greater than v.
func (s *Set[T]) Higher(v T) (T, bool) {
	i, found := s.search(v)
	if found {
		i++
	}

	return s.at(i)
}

// Lower returns the highest element strictly less than v.
func (s *Set[T]) Lower(v T) (T, bool) {
	i, _ := s.search(v)
	return s.at(i - 1)
}

// Ceiling returns the lowest element greater than or equal to v.
func (s *Set[T]) Ceiling(v T) (T, bool) {
	i, _ := s.search(v)
	return s.at(i)
}

// Floor returns the highest element less than or equal to v.
func (s *Set[T]) Floor(v T) (T, bool) {
	i, found := s.search(v)
	if found {
		return s.items[i], true
	}

	return s.at(i - 1)
}

// PollFirst removes and returns the lowest element.
func (s *Set[T]) PollFirst() (T, bool) {
	v, ok := s.First()
	if ok {
		s.items = slices.Delete(s.items, 0, 1)
	}

	return v, ok
}

// PollLast removes and returns the highest element.
func (s *Set[T]) PollLast() (T, bool) {
	v, ok := s.Last()
	if ok {
		s.items = s.items[:len(s.items)-1]
	}

	return v, ok
}

// Head returns the elements less than to (or equal, when inclusive) in order.
// The result is a fresh slice.
func (s *Set[T]) Head(to T, inclusive bool) []T {
	return slices.Clone(s.items[:s.upper(to, inclusive)])
}

// Tail returns the elements greater than from (or equal, when inclusive) in
// order. The result is a fresh slice.
func (s *Set[T]) Tail(from T, inclusive bool) []T {
	return slices.Clone(s.items[s.lower(from, inclusive):])
}

// Range returns the elements between from and to with the given inclusivity.
// The result is empty when the bounds cross.
func (s *Set[T]) Range(from T, fromInclusive bool, to T, toInclusive bool) []T {
	lo := s.lower(from, fromInclusive)
	hi := s.upper(to, toInclusive)
	if lo >= hi {
		return nil
	}

	return slices.Clone(s.items[lo:hi])
}

// Slice returns a copy of the elements in ordinal positions [i, j).
// It panics if the positions are out of range.
func (s *Set[T]) Slice(i, j int) []T {
	return slices.Clone(s.items[i:j])
}

// Values returns a copy of all elements in order.
func (s *Set[T]) Values() []T {
	return slices.Clone(s.items)
}

// All iterates the elements in ascending order.
func (s *Set[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range s.items {
			if !yield(v) {
				return
			}
		}
	}
}

// Backward iterates the elements in descending order.
func (s *Set[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := len(s.items) - 1; i >= 0; i-- {
			if !yield(s.items[i]) {
				return
			}
		}
	}
}

// Clear removes all elements, keeping the allocated storage.
func (s *Set[T]) Clear() {
	clear(s.items)
	s.items = s.items[:0]
}

// Reorder restores the ordering after stored elements were changed in place
// in a way that moves them under the comparator. Elements that became equal
// collapse to the one sorting first; the discarded ones are returned.
func (s *Set[T]) Reorder() []T {
	if s.ordered() {
		return nil
	}

	slices.SortStableFunc(s.items, s.cmp)

	var dropped []T
	kept := s.items[:1]
	for _, v := range s.items[1:] {
		if s.cmp(kept[len(kept)-1], v) == 0 {
			dropped = append(dropped, v)
			continue
		}
		kept = append(kept, v)
	}
	clear(s.items[len(kept):])
	s.items = kept

	return dropped
}

func (s *Set[T]) ordered() bool {
	for i := 1; i < len(s.items); i++ {
		if s.cmp(s.items[i-1], s.items[i]) >= 0 {
			return false
		}
	}

	return true
}

// Clone returns a shallow copy of the set sharing the comparator.
func (s *Set[T]) Clone() *Set[T] {
	return &Set[T]{items: slices.Clone(s.items), cmp: s.cmp}
}

// Compare compares two sets element by element in ascending order. A set that
// is a proper prefix of the other sorts first.
func (s *Set[T]) Compare(other *Set[T]) int {
	return slices.CompareFunc(s.items, other.items, s.cmp)
}

func (s *Set[T]) at(i int) (T, bool) {
	if i < 0 || i >= len(s.items) {
		var zero T
		return zero, false
	}

	return s.items[i], true
}

// lower returns the first position of the tail starting at from.
func (s *Set[T]) lower(from T, inclusive bool) int {
	i, found := s.search(from)
	if found && !inclusive {
		i++
	}

	return i
}

// upper returns the end position of the head ending at to.
func (s *Set[T]) upper(to T, inclusive bool) int {
	i, found := s.search(to)
	if found && inclusive {
		i++
	}

	return i
}
