package plate

import (
	"cmp"
	"fmt"
	"iter"
	"log/slog"
	"strings"

	"github.com/arloliu/microplate/errs"
	"github.com/arloliu/microplate/format"
	"github.com/arloliu/microplate/internal/hash"
	"github.com/arloliu/microplate/internal/options"
	"github.com/arloliu/microplate/internal/orderedset"
)

// Stack is an ordered collection of plates that share the same dimensions.
//
// Plates are ordered by Plate.Compare. Add and Replace store copies, so later
// changes to the caller's plate do not reach the stack. Get and the iteration
// methods return the stored plates, and any change to one of them (label,
// wells, well data or groups) can move it under Plate.Compare. The stack
// restores its order before the next operation that depends on it; a changed
// plate that became equal to another one is dropped and logged.
type Stack struct {
	rows       int
	columns    int
	label      string
	plateType  format.PlateType
	descriptor string
	plates     *orderedset.Set[*Plate]
	logger     *slog.Logger
}

// NewStack creates an empty stack for plates of the given dimensions. Without
// WithStackLabel the stack gets a generated "Stack<n>" label.
func NewStack(rows, columns int, opts ...StackOption) (*Stack, error) {
	if rows <= 0 || columns <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", errs.ErrInvalidDimensions, rows, columns)
	}

	s := &Stack{
		rows:       rows,
		columns:    columns,
		plateType:  format.PlateTypeOf(rows, columns),
		descriptor: format.Descriptor(rows, columns),
		plates:     orderedset.New(comparePlate),
		logger:     defaultLogger(),
	}
	if err := options.Apply(s, opts...); err != nil {
		return nil, err
	}
	if s.label == "" {
		s.label = defaultLabel("Stack")
	}

	return s, nil
}

// NewStackType creates an empty stack for a predefined plate size.
func NewStackType(t format.PlateType, opts ...StackOption) (*Stack, error) {
	rows, columns, ok := t.Dimensions()
	if !ok {
		return nil, fmt.Errorf("%w: %d", errs.ErrInvalidPlateType, t)
	}

	return NewStack(rows, columns, opts...)
}

// Rows returns the row count every plate must have.
func (s *Stack) Rows() int {
	return s.rows
}

// Columns returns the column count every plate must have.
func (s *Stack) Columns() int {
	return s.columns
}

// Label returns the stack label.
func (s *Stack) Label() string {
	return s.label
}

// SetLabel changes the stack label.
func (s *Stack) SetLabel(label string) {
	s.label = label
}

// Type returns the plate type derived from the dimensions.
func (s *Stack) Type() format.PlateType {
	return s.plateType
}

// Descriptor returns the human readable plate size.
func (s *Stack) Descriptor() string {
	return s.descriptor
}

// DataType returns the numeric backing of the wells.
func (s *Stack) DataType() format.DataType {
	return format.DataTypeDouble
}

// Logger returns the logger receiving batch failures.
func (s *Stack) Logger() *slog.Logger {
	return s.logger
}

// Len returns the number of plates.
func (s *Stack) Len() int {
	s.settle()
	return s.plates.Len()
}

// IsEmpty reports whether the stack holds no plates.
func (s *Stack) IsEmpty() bool {
	return s.plates.Len() == 0
}

// All iterates the stored plates in ascending order.
func (s *Stack) All() iter.Seq[*Plate] {
	s.settle()
	return s.plates.All()
}

// Slice returns the stored plates in ascending order.
func (s *Stack) Slice() []*Plate {
	s.settle()
	return s.plates.Values()
}

// First returns the lowest plate.
func (s *Stack) First() (*Plate, bool) {
	s.settle()
	return s.plates.First()
}

// Last returns the highest plate.
func (s *Stack) Last() (*Plate, bool) {
	s.settle()
	return s.plates.Last()
}

// Clear removes every plate.
func (s *Stack) Clear() {
	s.plates.Clear()
}

// Add stores copies of plates. A plate is rejected when its dimensions differ
// from the stack's or when an equal plate is already present.
func (s *Stack) Add(plates ...*Plate) bool {
	return s.fold("add", plates, s.addOne)
}

// AddStack stores copies of every plate in other.
func (s *Stack) AddStack(other *Stack) bool {
	if other == nil {
		return s.nilStack("add")
	}

	return s.Add(other.Slice()...)
}

// Remove deletes the plates equal to plates.
func (s *Stack) Remove(plates ...*Plate) bool {
	return s.fold("remove", plates, s.removeOne)
}

// RemoveStack deletes every plate of other.
func (s *Stack) RemoveStack(other *Stack) bool {
	if other == nil {
		return s.nilStack("remove")
	}

	return s.Remove(other.Slice()...)
}

// RemoveLabels deletes every plate carrying one of labels. The result is false
// if some label matched no plate.
func (s *Stack) RemoveLabels(labels ...string) bool {
	ok := true
	for _, label := range labels {
		if s.plates.DeleteFunc(func(p *Plate) bool { return p.label == label }) == 0 {
			reject(s.logger, "remove", "plate", label, fmt.Errorf("%w: %q", errs.ErrPlateNotFound, label))
			ok = false
		}
	}

	return ok
}

// Replace stores copies of plates. Plates carrying the same label are
// discarded first; a plate without a namesake is simply added.
func (s *Stack) Replace(plates ...*Plate) bool {
	return s.fold("replace", plates, s.replaceOne)
}

// ReplaceStack replaces with every plate of other.
func (s *Stack) ReplaceStack(other *Stack) bool {
	if other == nil {
		return s.nilStack("replace")
	}

	return s.Replace(other.Slice()...)
}

// Retain keeps only the plates equal to plates. The result is false if any of
// them was not present.
func (s *Stack) Retain(plates ...*Plate) bool {
	s.settle()
	ok := true
	keep := make([]*Plate, 0, len(plates))
	for _, p := range plates {
		err := s.checkPlate(p)
		if err == nil && !s.plates.Contains(p) {
			err = fmt.Errorf("%w: %q", errs.ErrPlateNotFound, p.label)
		}
		if err != nil {
			reject(s.logger, "retain", "plate", plateName(p), err)
			ok = false

			continue
		}
		keep = append(keep, p)
	}

	s.plates.DeleteFunc(func(p *Plate) bool {
		for _, k := range keep {
			if comparePlate(p, k) == 0 {
				return false
			}
		}

		return true
	})

	return ok
}

// RetainStack keeps only the plates that other also holds.
func (s *Stack) RetainStack(other *Stack) bool {
	if other == nil {
		return s.nilStack("retain")
	}

	return s.Retain(other.Slice()...)
}

// RetainLabels keeps only the plates carrying one of labels. The result is
// false if some label matched no plate.
func (s *Stack) RetainLabels(labels ...string) bool {
	ok := true
	keep := make(map[string]struct{}, len(labels))
	for _, label := range labels {
		keep[label] = struct{}{}
		if !s.ContainsLabel(label) {
			reject(s.logger, "retain", "plate", label, fmt.Errorf("%w: %q", errs.ErrPlateNotFound, label))
			ok = false
		}
	}

	s.plates.DeleteFunc(func(p *Plate) bool {
		_, found := keep[p.label]
		return !found
	})

	return ok
}

// Contains reports whether a plate equal to p is stored.
func (s *Stack) Contains(p *Plate) bool {
	s.settle()
	return p != nil && s.plates.Contains(p)
}

// ContainsLabel reports whether a plate carrying label is stored.
func (s *Stack) ContainsLabel(label string) bool {
	_, ok := s.Get(label)
	return ok
}

// Get returns the first stored plate carrying label.
func (s *Stack) Get(label string) (*Plate, bool) {
	s.settle()
	for p := range s.plates.All() {
		if p.label == label {
			return p, true
		}
	}

	return nil, false
}

// GetLabels returns every stored plate carrying one of labels, in stack order.
func (s *Stack) GetLabels(labels ...string) []*Plate {
	s.settle()
	want := make(map[string]struct{}, len(labels))
	for _, label := range labels {
		want[label] = struct{}{}
	}

	var out []*Plate
	for p := range s.plates.All() {
		if _, ok := want[p.label]; ok {
			out = append(out, p)
		}
	}

	return out
}

// Labels returns the plate labels in stack order.
func (s *Stack) Labels() []string {
	s.settle()
	out := make([]string, 0, s.plates.Len())
	for p := range s.plates.All() {
		out = append(out, p.label)
	}

	return out
}

// Clone returns a deep copy.
func (s *Stack) Clone() *Stack {
	s.settle()
	c := *s
	c.plates = orderedset.NewWithCapacity(comparePlate, s.plates.Len())
	for p := range s.plates.All() {
		c.plates.Insert(p.Clone())
	}

	return &c
}

// Equal reports whether both stacks match in dimensions, label and plates.
func (s *Stack) Equal(other *Stack) bool {
	if s == nil || other == nil {
		return s == other
	}

	return s.Compare(other) == 0
}

// Compare orders stacks by plate count, rows, columns, label, then plate by
// plate.
func (s *Stack) Compare(other *Stack) int {
	s.settle()
	other.settle()
	if c := cmp.Compare(s.Len(), other.Len()); c != 0 {
		return c
	}
	if c := cmp.Compare(s.rows, other.rows); c != 0 {
		return c
	}
	if c := cmp.Compare(s.columns, other.columns); c != 0 {
		return c
	}
	if c := strings.Compare(s.label, other.label); c != 0 {
		return c
	}

	return s.plates.Compare(other.plates)
}

// Hash returns a hash consistent with Equal.
func (s *Stack) Hash() uint64 {
	s.settle()
	d := hash.NewDigest().Int(s.rows).Int(s.columns).String(s.label).Int(s.Len())
	for p := range s.plates.All() {
		d.Uint64(p.Hash())
	}

	return d.Sum64()
}

// String returns the label, descriptor and plate labels.
func (s *Stack) String() string {
	return fmt.Sprintf("%s (%s) [%s]", s.label, s.descriptor, strings.Join(s.Labels(), DefaultListDelimiter))
}

func (s *Stack) fold(name string, plates []*Plate, op func(*Plate) error) bool {
	s.settle()
	ok := true
	for _, p := range plates {
		err := s.checkPlate(p)
		if err == nil {
			err = op(p)
		}
		if err != nil {
			reject(s.logger, name, "plate", plateName(p), err)
			ok = false
		}
	}

	return ok
}

func (s *Stack) checkPlate(p *Plate) error {
	if p == nil {
		return fmt.Errorf("%w: nil plate", errs.ErrInvalidArgument)
	}
	if p.rows != s.rows || p.columns != s.columns {
		return fmt.Errorf("%w: plate %q is %dx%d, stack holds %dx%d",
			errs.ErrDimensionMismatch, p.label, p.rows, p.columns, s.rows, s.columns)
	}

	return nil
}

func (s *Stack) addOne(p *Plate) error {
	if !s.plates.Insert(p.Clone()) {
		return fmt.Errorf("%w: plate %q already present", errs.ErrDuplicate, p.label)
	}

	return nil
}

func (s *Stack) removeOne(p *Plate) error {
	if _, found := s.plates.Delete(p); !found {
		return fmt.Errorf("%w: %q", errs.ErrPlateNotFound, p.label)
	}

	return nil
}

func (s *Stack) replaceOne(p *Plate) error {
	s.plates.DeleteFunc(func(old *Plate) bool { return old.label == p.label })
	s.plates.Insert(p.Clone())

	return nil
}

// settle reorders the plates after a stored plate was changed in place.
func (s *Stack) settle() {
	for _, p := range s.plates.Reorder() {
		reject(s.logger, "reorder", "plate", p.label,
			fmt.Errorf("%w: plate %q now equals another stored plate", errs.ErrDuplicate, p.label))
	}
}

func (s *Stack) nilStack(op string) bool {
	reject(s.logger, op, "stack", "<nil>", fmt.Errorf("%w: nil stack", errs.ErrInvalidArgument))
	return false
}

func plateName(p *Plate) string {
	if p == nil {
		return "<nil>"
	}

	return p.label
}
