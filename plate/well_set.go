package plate

import (
	"cmp"
	"fmt"
	"iter"
	"log/slog"
	"strings"

	"github.com/arloliu/microplate/errs"
	"github.com/arloliu/microplate/internal/hash"
	"github.com/arloliu/microplate/internal/options"
	"github.com/arloliu/microplate/internal/orderedset"
)

// WellSet is an ordered collection of wells with unique positions.
//
// Wells are ordered by row, then column. Batch mutations (Add, Remove, Replace,
// Retain and their Set/IDs variants) try every element independently: a failed
// element is logged to the set's logger and processing continues with the
// next one. The boolean result is true only if every element succeeded; there
// is no rollback of the elements that did succeed.
//
// Add and Replace store copies of the given wells. Lookups (Get, GetID,
// Wells, First, ...) return the stored wells themselves, so mutating their data
// mutates the set. Range queries (HeadSet, SubSetAt, ...) return new sets that
// share the stored wells with the receiver. Clone produces a fully independent
// copy.
type WellSet struct {
	label    string
	labelSet bool
	wells    *orderedset.Set[*Well]
	logger   *slog.Logger
}

// NewWellSet creates an empty well set.
func NewWellSet(opts ...WellSetOption) *WellSet {
	s := &WellSet{
		wells:  orderedset.New(compareWell),
		logger: defaultLogger(),
	}
	// WellSet options cannot fail
	_ = options.Apply(s, opts...)

	return s
}

// WellSetOf creates an unlabeled set holding copies of wells. Duplicate
// positions keep the first occurrence.
func WellSetOf(wells ...*Well) *WellSet {
	s := NewWellSet()
	s.Add(wells...)

	return s
}

// derive builds a set over already sorted wells that shares them with the
// receiver.
func (s *WellSet) derive(wells []*Well) *WellSet {
	d := &WellSet{
		label:    s.label,
		labelSet: s.labelSet,
		wells:    orderedset.NewWithCapacity(compareWell, len(wells)),
		logger:   s.logger,
	}
	for _, w := range wells {
		d.wells.Insert(w)
	}

	return d
}

// Label returns the set label. An unset label is synthesized from the well
// IDs, for example "WellSet A1, A2".
func (s *WellSet) Label() string {
	if s.labelSet {
		return s.label
	}

	var sb strings.Builder
	sb.WriteString("WellSet")
	i := 0
	for w := range s.wells.All() {
		if i == 0 {
			sb.WriteByte(' ')
		} else {
			sb.WriteString(", ")
		}
		sb.WriteString(w.ID())
		i++
	}

	return sb.String()
}

// SetLabel sets an explicit label.
func (s *WellSet) SetLabel(label string) {
	s.label = label
	s.labelSet = true
}

// Logger returns the logger receiving batch failures.
func (s *WellSet) Logger() *slog.Logger {
	return s.logger
}

// Len returns the number of wells.
func (s *WellSet) Len() int {
	return s.wells.Len()
}

// IsEmpty reports whether the set holds no wells.
func (s *WellSet) IsEmpty() bool {
	return s.wells.Len() == 0
}

// All iterates the stored wells in ascending order.
func (s *WellSet) All() iter.Seq[*Well] {
	return s.wells.All()
}

// Backward iterates the stored wells in descending order.
func (s *WellSet) Backward() iter.Seq[*Well] {
	return s.wells.Backward()
}

// Slice returns the stored wells in ascending order.
func (s *WellSet) Slice() []*Well {
	return s.wells.Values()
}

// Indices returns the positions of the stored wells in ascending order.
func (s *WellSet) Indices() []WellIndex {
	out := make([]WellIndex, 0, s.wells.Len())
	for w := range s.wells.All() {
		out = append(out, w.index)
	}

	return out
}

// ToWellList returns the positions of the set as a WellList carrying the set
// label.
func (s *WellSet) ToWellList() *WellList {
	return NewWellList(s.Label(), s.Indices()...)
}

// Clear removes every well.
func (s *WellSet) Clear() {
	s.wells.Clear()
}

// Add stores copies of wells. A well whose position is already present is
// rejected and the stored data stays untouched.
func (s *WellSet) Add(wells ...*Well) bool {
	return s.fold("add", wells, nil, s.addOne)
}

// AddSet stores copies of every well in other.
func (s *WellSet) AddSet(other *WellSet) bool {
	if other == nil {
		return s.nilSet("add")
	}

	return s.Add(other.Slice()...)
}

// AddIDs stores empty wells for a delimited list of IDs.
func (s *WellSet) AddIDs(ids, delimiter string) bool {
	wells, ok := s.parseIDs("add", ids, delimiter)
	return s.Add(wells...) && ok
}

// Remove deletes the wells at the positions of wells.
func (s *WellSet) Remove(wells ...*Well) bool {
	return s.fold("remove", wells, nil, s.removeOne)
}

// RemoveSet deletes the positions of every well in other.
func (s *WellSet) RemoveSet(other *WellSet) bool {
	if other == nil {
		return s.nilSet("remove")
	}

	return s.Remove(other.Slice()...)
}

// RemoveIDs deletes a delimited list of positions.
func (s *WellSet) RemoveIDs(ids, delimiter string) bool {
	wells, ok := s.parseIDs("remove", ids, delimiter)
	return s.Remove(wells...) && ok
}

// Replace stores copies of wells, overwriting wells at the same positions.
func (s *WellSet) Replace(wells ...*Well) bool {
	return s.fold("replace", wells, nil, s.replaceOne)
}

// ReplaceSet stores copies of every well in other, overwriting existing ones.
func (s *WellSet) ReplaceSet(other *WellSet) bool {
	if other == nil {
		return s.nilSet("replace")
	}

	return s.Replace(other.Slice()...)
}

// ReplaceIDs stores empty wells at a delimited list of positions, discarding
// any data held there.
func (s *WellSet) ReplaceIDs(ids, delimiter string) bool {
	wells, ok := s.parseIDs("replace", ids, delimiter)
	return s.Replace(wells...) && ok
}

// Retain keeps only the wells at the positions of wells. The result is false
// if any of the given positions was not present.
func (s *WellSet) Retain(wells ...*Well) bool {
	return s.retain("retain", wells, nil)
}

// RetainSet keeps only the positions held by other.
func (s *WellSet) RetainSet(other *WellSet) bool {
	if other == nil {
		return s.nilSet("retain")
	}

	return s.Retain(other.Slice()...)
}

// RetainIDs keeps only a delimited list of positions.
func (s *WellSet) RetainIDs(ids, delimiter string) bool {
	wells, ok := s.parseIDs("retain", ids, delimiter)
	return s.Retain(wells...) && ok
}

// Contains reports whether the position of w is present.
func (s *WellSet) Contains(w *Well) bool {
	return w != nil && s.wells.Contains(w)
}

// ContainsIndex reports whether idx is present.
func (s *WellSet) ContainsIndex(idx WellIndex) bool {
	return s.wells.Contains(&Well{index: idx})
}

// ContainsID reports whether the well with the given ID is present.
func (s *WellSet) ContainsID(id string) bool {
	idx, err := ParseWellIndex(id)
	return err == nil && s.ContainsIndex(idx)
}

// ContainsAll reports whether every position of wells is present.
func (s *WellSet) ContainsAll(wells ...*Well) bool {
	for _, w := range wells {
		if !s.Contains(w) {
			return false
		}
	}

	return true
}

// Get returns the stored well at the position of w.
func (s *WellSet) Get(w *Well) (*Well, bool) {
	if w == nil {
		return nil, false
	}

	return s.wells.Get(w)
}

// GetIndex returns the stored well at idx.
func (s *WellSet) GetIndex(idx WellIndex) (*Well, bool) {
	return s.wells.Get(&Well{index: idx})
}

// GetID returns the stored well with the given ID.
func (s *WellSet) GetID(id string) (*Well, bool) {
	idx, err := ParseWellIndex(id)
	if err != nil {
		return nil, false
	}

	return s.GetIndex(idx)
}

// Wells returns the stored wells at the positions of wells, skipping absent
// positions.
func (s *WellSet) Wells(wells ...*Well) []*Well {
	out := make([]*Well, 0, len(wells))
	for _, w := range wells {
		if found, ok := s.Get(w); ok {
			out = append(out, found)
		}
	}

	return out
}

// WellsIDs returns the stored wells for a delimited list of IDs, skipping
// absent or malformed IDs.
func (s *WellSet) WellsIDs(ids, delimiter string) []*Well {
	parts, err := splitList(ids, delimiter)
	if err != nil {
		return nil
	}

	out := make([]*Well, 0, len(parts))
	for _, id := range parts {
		if w, ok := s.GetID(id); ok {
			out = append(out, w)
		}
	}

	return out
}

// Clone returns a deep copy; the copy shares no wells with the receiver.
func (s *WellSet) Clone() *WellSet {
	c := &WellSet{
		label:    s.label,
		labelSet: s.labelSet,
		wells:    orderedset.NewWithCapacity(compareWell, s.wells.Len()),
		logger:   s.logger,
	}
	for w := range s.wells.All() {
		c.wells.Insert(w.Clone())
	}

	return c
}

// Equal reports whether both sets carry the same label and the same
// positions. Measurements are not compared; use DataEqual for that.
func (s *WellSet) Equal(other *WellSet) bool {
	if s == nil || other == nil {
		return s == other
	}

	return s.Compare(other) == 0
}

// DataEqual reports whether both sets carry the same label, positions and
// measurements.
func (s *WellSet) DataEqual(other *WellSet) bool {
	if s == nil || other == nil {
		return s == other
	}

	return s.Label() == other.Label() && s.compareData(other) == 0
}

// Compare orders sets by label, then size, then well by well.
func (s *WellSet) Compare(other *WellSet) int {
	if c := strings.Compare(s.Label(), other.Label()); c != 0 {
		return c
	}
	if c := cmp.Compare(s.Len(), other.Len()); c != 0 {
		return c
	}

	return s.wells.Compare(other.wells)
}

// Hash returns a hash consistent with Equal.
func (s *WellSet) Hash() uint64 {
	d := hash.NewDigest().String(s.Label()).Int(s.Len())
	for w := range s.wells.All() {
		d.Uint64(w.Hash())
	}

	return d.Sum64()
}

// String returns the label and the well IDs.
func (s *WellSet) String() string {
	ids := make([]string, 0, s.Len())
	for w := range s.wells.All() {
		ids = append(ids, w.ID())
	}

	return fmt.Sprintf("%s [%s]", s.Label(), strings.Join(ids, DefaultListDelimiter))
}

// compareData orders sets by size, then well by well including data.
func (s *WellSet) compareData(other *WellSet) int {
	if c := cmp.Compare(s.Len(), other.Len()); c != 0 {
		return c
	}

	next, stop := iter.Pull(other.wells.All())
	defer stop()
	for a := range s.wells.All() {
		b, _ := next()
		if c := compareWellData(a, b); c != 0 {
			return c
		}
	}

	return 0
}

// fold applies op to every well, logging failures. check, when set, runs
// first and rejects a well before op sees it.
func (s *WellSet) fold(name string, wells []*Well, check func(*Well) error, op func(*Well) error) bool {
	ok := true
	for _, w := range wells {
		err := checkWell(w, check)
		if err == nil {
			err = op(w)
		}
		if err != nil {
			reject(s.logger, name, "well", wellName(w), err)
			ok = false
		}
	}

	return ok
}

// retain keeps the positions of the accepted wells in targets.
func (s *WellSet) retain(name string, targets []*Well, check func(*Well) error) bool {
	ok := true
	keep := make(map[WellIndex]struct{}, len(targets))
	for _, w := range targets {
		if err := checkWell(w, check); err != nil {
			reject(s.logger, name, "well", wellName(w), err)
			ok = false

			continue
		}
		if !s.wells.Contains(w) {
			reject(s.logger, name, "well", w.ID(), fmt.Errorf("%w: %s", errs.ErrWellNotFound, w.index))
			ok = false
		}
		keep[w.index] = struct{}{}
	}

	s.wells.DeleteFunc(func(w *Well) bool {
		_, found := keep[w.index]
		return !found
	})

	return ok
}

func (s *WellSet) addOne(w *Well) error {
	if s.wells.Contains(w) {
		return fmt.Errorf("%w: well %s already present", errs.ErrDuplicate, w.index)
	}
	s.wells.Insert(w.Clone())

	return nil
}

func (s *WellSet) removeOne(w *Well) error {
	if _, found := s.wells.Delete(w); !found {
		return fmt.Errorf("%w: %s", errs.ErrWellNotFound, w.index)
	}

	return nil
}

func (s *WellSet) replaceOne(w *Well) error {
	s.wells.Upsert(w.Clone())
	return nil
}

// parseIDs turns a delimited ID list into empty wells, logging malformed IDs.
func (s *WellSet) parseIDs(op, ids, delimiter string) ([]*Well, bool) {
	parts, err := splitList(ids, delimiter)
	if err != nil {
		reject(s.logger, op, "ids", ids, err)
		return nil, false
	}

	ok := true
	wells := make([]*Well, 0, len(parts))
	for _, id := range parts {
		w, err := ParseWell(id)
		if err != nil {
			reject(s.logger, op, "well", id, err)
			ok = false

			continue
		}
		wells = append(wells, w)
	}

	return wells, ok
}

func (s *WellSet) nilSet(op string) bool {
	reject(s.logger, op, "set", "<nil>", fmt.Errorf("%w: nil well set", errs.ErrInvalidArgument))
	return false
}

func checkWell(w *Well, check func(*Well) error) error {
	if w == nil {
		return fmt.Errorf("%w: nil well", errs.ErrInvalidArgument)
	}
	if check != nil {
		return check(w)
	}

	return nil
}

func wellName(w *Well) string {
	if w == nil {
		return "<nil>"
	}

	return w.ID()
}
