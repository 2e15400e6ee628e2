package plate

import (
	"cmp"
	"fmt"
	"iter"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/arloliu/microplate/errs"
	"github.com/arloliu/microplate/format"
	"github.com/arloliu/microplate/internal/hash"
	"github.com/arloliu/microplate/internal/options"
	"github.com/arloliu/microplate/internal/orderedset"
)

// Plate is a WellSet bounded to rows x columns, plus named groups of
// positions.
//
// Every well must satisfy 0 <= row < Rows() and 1 <= column <= Columns();
// wells outside the bounds are rejected before they reach the data set.
// Batch operations follow the WellSet rules: each element is attempted,
// failures are logged and the result is true only if all succeeded.
type Plate struct {
	rows       int
	columns    int
	label      string
	plateType  format.PlateType
	descriptor string
	groups     *orderedset.Set[*WellList]
	data       *WellSet
	logger     *slog.Logger
}

var labelSeq atomic.Uint64

// defaultLabel returns prefix followed by a process-unique number.
func defaultLabel(prefix string) string {
	id := hash.NewDigest().String(prefix).Uint64(labelSeq.Add(1)).Sum64()
	return prefix + strconv.FormatUint(id&math.MaxUint32, 10)
}

// NewPlate creates an empty plate with the given dimensions. Without
// WithPlateLabel the plate gets a generated "Plate<n>" label.
func NewPlate(rows, columns int, opts ...PlateOption) (*Plate, error) {
	if rows <= 0 || columns <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", errs.ErrInvalidDimensions, rows, columns)
	}

	p := &Plate{
		rows:       rows,
		columns:    columns,
		plateType:  format.PlateTypeOf(rows, columns),
		descriptor: format.Descriptor(rows, columns),
		groups:     orderedset.New(compareWellList),
		data:       NewWellSet(),
		logger:     defaultLogger(),
	}
	if err := options.Apply(p, opts...); err != nil {
		return nil, err
	}
	if p.label == "" {
		p.label = defaultLabel("Plate")
	}
	p.data.SetLabel(p.label)

	return p, nil
}

// NewPlateType creates an empty plate of a predefined size.
func NewPlateType(t format.PlateType, opts ...PlateOption) (*Plate, error) {
	rows, columns, ok := t.Dimensions()
	if !ok {
		return nil, fmt.Errorf("%w: %d", errs.ErrInvalidPlateType, t)
	}

	return NewPlate(rows, columns, opts...)
}

// Rows returns the number of rows.
func (p *Plate) Rows() int {
	return p.rows
}

// Columns returns the number of columns.
func (p *Plate) Columns() int {
	return p.columns
}

// Capacity returns rows x columns.
func (p *Plate) Capacity() int {
	return p.rows * p.columns
}

// Size returns the number of stored wells.
func (p *Plate) Size() int {
	return p.data.Len()
}

// Label returns the plate label.
func (p *Plate) Label() string {
	return p.label
}

// SetLabel changes the plate label. Like any other change to a plate held by
// a Stack, it moves the plate under Plate.Compare; the stack reorders itself
// on its next operation.
func (p *Plate) SetLabel(label string) {
	p.label = label
	p.data.SetLabel(label)
}

// Type returns the plate type derived from the dimensions.
func (p *Plate) Type() format.PlateType {
	return p.plateType
}

// Descriptor returns the human readable size, for example "96-Well".
func (p *Plate) Descriptor() string {
	return p.descriptor
}

// DataType returns the numeric backing of the wells.
func (p *Plate) DataType() format.DataType {
	return format.DataTypeDouble
}

// Logger returns the logger receiving batch failures.
func (p *Plate) Logger() *slog.Logger {
	return p.logger
}

// InBounds reports whether idx lies on the plate.
func (p *Plate) InBounds(idx WellIndex) bool {
	return p.checkIndex(idx) == nil
}

// AddWells stores copies of wells that lie on the plate and whose positions
// are free.
func (p *Plate) AddWells(wells ...*Well) bool {
	return p.data.fold("add", wells, p.checkBounds, p.data.addOne)
}

// AddWellSet stores copies of every well in set.
func (p *Plate) AddWellSet(set *WellSet) bool {
	if set == nil {
		return p.data.nilSet("add")
	}

	return p.AddWells(set.Slice()...)
}

// AddWellIDs stores empty wells for a delimited list of IDs.
func (p *Plate) AddWellIDs(ids, delimiter string) bool {
	wells, ok := p.data.parseIDs("add", ids, delimiter)
	return p.AddWells(wells...) && ok
}

// RemoveWells deletes the wells at the positions of wells.
func (p *Plate) RemoveWells(wells ...*Well) bool {
	return p.data.fold("remove", wells, p.checkBounds, p.data.removeOne)
}

// RemoveWellSet deletes the positions of every well in set.
func (p *Plate) RemoveWellSet(set *WellSet) bool {
	if set == nil {
		return p.data.nilSet("remove")
	}

	return p.RemoveWells(set.Slice()...)
}

// RemoveWellIDs deletes a delimited list of positions.
func (p *Plate) RemoveWellIDs(ids, delimiter string) bool {
	wells, ok := p.data.parseIDs("remove", ids, delimiter)
	return p.RemoveWells(wells...) && ok
}

// ReplaceWells stores copies of wells, overwriting wells at the same positions.
func (p *Plate) ReplaceWells(wells ...*Well) bool {
	return p.data.fold("replace", wells, p.checkBounds, p.data.replaceOne)
}

// ReplaceWellSet stores copies of every well in set, overwriting existing ones.
func (p *Plate) ReplaceWellSet(set *WellSet) bool {
	if set == nil {
		return p.data.nilSet("replace")
	}

	return p.ReplaceWells(set.Slice()...)
}

// ReplaceWellIDs stores empty wells at a delimited list of positions.
func (p *Plate) ReplaceWellIDs(ids, delimiter string) bool {
	wells, ok := p.data.parseIDs("replace", ids, delimiter)
	return p.ReplaceWells(wells...) && ok
}

// RetainWells keeps only the wells at the positions of wells.
func (p *Plate) RetainWells(wells ...*Well) bool {
	return p.data.retain("retain", wells, p.checkBounds)
}

// RetainWellSet keeps only the positions held by set.
func (p *Plate) RetainWellSet(set *WellSet) bool {
	if set == nil {
		return p.data.nilSet("retain")
	}

	return p.RetainWells(set.Slice()...)
}

// RetainWellIDs keeps only a delimited list of positions.
func (p *Plate) RetainWellIDs(ids, delimiter string) bool {
	wells, ok := p.data.parseIDs("retain", ids, delimiter)
	return p.RetainWells(wells...) && ok
}

// Clear removes every well. Groups are kept.
func (p *Plate) Clear() {
	p.data.Clear()
}

// Contains reports whether the position of w holds a well.
func (p *Plate) Contains(w *Well) bool {
	return p.data.Contains(w)
}

// ContainsID reports whether the well with the given ID is stored.
func (p *Plate) ContainsID(id string) bool {
	return p.data.ContainsID(id)
}

// Get returns the stored well at the position of w.
func (p *Plate) Get(w *Well) (*Well, bool) {
	return p.data.Get(w)
}

// GetIndex returns the stored well at idx.
func (p *Plate) GetIndex(idx WellIndex) (*Well, bool) {
	return p.data.GetIndex(idx)
}

// GetID returns the stored well with the given ID.
func (p *Plate) GetID(id string) (*Well, bool) {
	return p.data.GetID(id)
}

// Wells returns the stored wells at the positions of wells.
func (p *Plate) Wells(wells ...*Well) []*Well {
	return p.data.Wells(wells...)
}

// All iterates the stored wells in ascending order.
func (p *Plate) All() iter.Seq[*Well] {
	return p.data.All()
}

// DataSet returns an independent copy of the plate's wells, labeled with the
// plate label.
func (p *Plate) DataSet() *WellSet {
	return p.data.Clone()
}

// First returns the lowest well.
func (p *Plate) First() (*Well, bool) { return p.data.First() }

// Last returns the highest well.
func (p *Plate) Last() (*Well, bool) { return p.data.Last() }

// Higher returns the lowest well strictly after w.
func (p *Plate) Higher(w *Well) (*Well, bool) { return p.data.Higher(w) }

// Lower returns the highest well strictly before w.
func (p *Plate) Lower(w *Well) (*Well, bool) { return p.data.Lower(w) }

// Ceiling returns the lowest well at or after w.
func (p *Plate) Ceiling(w *Well) (*Well, bool) { return p.data.Ceiling(w) }

// Floor returns the highest well at or before w.
func (p *Plate) Floor(w *Well) (*Well, bool) { return p.data.Floor(w) }

// PollFirst removes and returns the lowest well.
func (p *Plate) PollFirst() (*Well, bool) { return p.data.PollFirst() }

// PollLast removes and returns the highest well.
func (p *Plate) PollLast() (*Well, bool) { return p.data.PollLast() }

// HeadSet returns the wells before to.
func (p *Plate) HeadSet(to *Well, inclusive bool) *WellSet {
	return p.data.HeadSet(to, inclusive)
}

// TailSet returns the wells after from.
func (p *Plate) TailSet(from *Well, inclusive bool) *WellSet {
	return p.data.TailSet(from, inclusive)
}

// SubSet returns the wells between from and to.
func (p *Plate) SubSet(from *Well, fromInclusive bool, to *Well, toInclusive bool) (*WellSet, error) {
	return p.data.SubSet(from, fromInclusive, to, toInclusive)
}

// HeadSetAt returns the wells before ordinal position index.
func (p *Plate) HeadSetAt(index int, inclusive bool) (*WellSet, error) {
	return p.data.HeadSetAt(index, inclusive)
}

// TailSetAt returns the wells after ordinal position index.
func (p *Plate) TailSetAt(index int, inclusive bool) (*WellSet, error) {
	return p.data.TailSetAt(index, inclusive)
}

// SubSetAt returns the wells between two ordinal positions.
func (p *Plate) SubSetAt(index1 int, inclusive1 bool, index2 int, inclusive2 bool) (*WellSet, error) {
	return p.data.SubSetAt(index1, inclusive1, index2, inclusive2)
}

// Clone returns a deep copy including groups.
func (p *Plate) Clone() *Plate {
	c := *p
	c.data = p.data.Clone()
	c.groups = orderedset.NewWithCapacity(compareWellList, p.groups.Len())
	for g := range p.groups.All() {
		c.groups.Insert(g.Clone())
	}

	return &c
}

// Equal reports whether both plates match in dimensions, label, type,
// descriptor, groups and wells including their measurements.
func (p *Plate) Equal(other *Plate) bool {
	if p == nil || other == nil {
		return p == other
	}

	return p.rows == other.rows &&
		p.columns == other.columns &&
		p.label == other.label &&
		p.plateType == other.plateType &&
		p.descriptor == other.descriptor &&
		p.DataType() == other.DataType() &&
		p.Size() == other.Size() &&
		p.groups.Len() == other.groups.Len() &&
		p.groups.Compare(other.groups) == 0 &&
		p.data.compareData(other.data) == 0
}

// Compare orders plates by well count, rows, columns, label, data type, then
// well by well (position first, then measurements) and finally by groups.
func (p *Plate) Compare(other *Plate) int {
	if c := cmp.Compare(p.Size(), other.Size()); c != 0 {
		return c
	}
	if c := cmp.Compare(p.rows, other.rows); c != 0 {
		return c
	}
	if c := cmp.Compare(p.columns, other.columns); c != 0 {
		return c
	}
	if c := strings.Compare(p.label, other.label); c != 0 {
		return c
	}
	if c := cmp.Compare(p.DataType(), other.DataType()); c != 0 {
		return c
	}
	if c := p.data.compareData(other.data); c != 0 {
		return c
	}
	if c := cmp.Compare(p.groups.Len(), other.groups.Len()); c != 0 {
		return c
	}

	return p.groups.Compare(other.groups)
}

// Hash returns a hash consistent with Equal.
func (p *Plate) Hash() uint64 {
	d := hash.NewDigest().Int(p.rows).Int(p.columns).String(p.label).Int(p.Size())
	for w := range p.data.All() {
		d.Uint64(w.Hash()).Int(w.Len())
		for _, v := range w.data {
			d.Uint64(valueBits(v))
		}
	}
	for g := range p.groups.All() {
		d.Int(g.Len())
		for idx := range g.All() {
			d.Uint64(hash.Position(idx.row, idx.column))
		}
	}

	return d.Sum64()
}

// String returns the label, descriptor and well count.
func (p *Plate) String() string {
	return fmt.Sprintf("%s (%s, %d wells, %d groups)", p.label, p.descriptor, p.Size(), p.groups.Len())
}

func (p *Plate) checkBounds(w *Well) error {
	return p.checkIndex(w.index)
}

func (p *Plate) checkIndex(idx WellIndex) error {
	if idx.row < 0 || idx.row >= p.rows || idx.column < 1 || idx.column > p.columns {
		return fmt.Errorf("%w: %s outside %d rows x %d columns", errs.ErrOutOfBounds, idx, p.rows, p.columns)
	}

	return nil
}

func comparePlate(a, b *Plate) int {
	return a.Compare(b)
}

// valueBits maps every NaN to one bit pattern so hashing agrees with
// DataEqual.
func valueBits(v float64) uint64 {
	if math.IsNaN(v) {
		return math.Float64bits(math.NaN())
	}

	return math.Float64bits(v)
}
