package blob

import (
	"fmt"
	"math"

	"github.com/arloliu/microplate/encoding"
	"github.com/arloliu/microplate/endian"
	"github.com/arloliu/microplate/errs"
	"github.com/arloliu/microplate/internal/pool"
	"github.com/arloliu/microplate/plate"
)

// A plate record holds, in order:
//
//	label       uint16 length + UTF-8
//	groups      uvarint count, then per group:
//	              label, uvarint size, uvarint-prefixed position block
//	wells       uvarint count
//	positions   uvarint-prefixed position block
//	counts      one uvarint value count per well
//	values      uvarint-prefixed raw float64 block
//
// Positions are linear, row*columns + column-1, delta encoded in ascending
// well order.

func linearPosition(idx plate.WellIndex, columns int) int64 {
	return int64(idx.Row())*int64(columns) + int64(idx.Column()-1)
}

func writePositions(w *encoding.VarStringEncoder, indices []plate.WellIndex, columns int) {
	enc := encoding.NewPositionDeltaEncoder()
	defer enc.Finish()

	for _, idx := range indices {
		enc.Write(linearPosition(idx, columns))
	}
	w.WriteBlock(enc.Bytes())
}

func writePlate(w *encoding.VarStringEncoder, p *plate.Plate, engine endian.EndianEngine) error {
	if err := w.Write(p.Label()); err != nil {
		return fmt.Errorf("plate label: %w", err)
	}

	groups := p.Groups()
	w.WriteUvarint(uint64(len(groups)))
	for _, g := range groups {
		if err := w.Write(g.Label()); err != nil {
			return fmt.Errorf("group label on plate %q: %w", p.Label(), err)
		}
		w.WriteUvarint(uint64(g.Len()))
		writePositions(w, g.Indices(), p.Columns())
	}

	wells := p.DataSet().Slice()
	w.WriteUvarint(uint64(len(wells)))

	indices := make([]plate.WellIndex, len(wells))
	for i, well := range wells {
		indices[i] = well.Index()
	}
	writePositions(w, indices, p.Columns())

	values := encoding.NewNumericRawEncoder(engine)
	defer values.Finish()
	for _, well := range wells {
		w.WriteUvarint(uint64(well.Len()))
		values.WriteSlice(well.Data())
	}
	w.WriteBlock(values.Bytes())

	return nil
}

// plateReader rebuilds plates of a fixed size from their records.
type plateReader struct {
	rows    int
	columns int
	engine  endian.EndianEngine
	opts    []plate.PlateOption
}

func (r plateReader) capacity() int {
	return int(min(uint64(r.rows)*uint64(r.columns), math.MaxInt32)) //nolint:gosec
}

func (r plateReader) readPositions(d *encoding.VarStringDecoder, count int) ([]plate.WellIndex, error) {
	block, err := d.ReadBlock()
	if err != nil {
		return nil, err
	}

	positions, cleanup := pool.GetInt64Slice(count)
	defer cleanup()
	if encoding.NewPositionDeltaDecoder().DecodeInto(positions, block) != len(block) {
		return nil, fmt.Errorf("%w: malformed position block", errs.ErrInvalidPayload)
	}

	limit := int64(r.capacity())
	out := make([]plate.WellIndex, count)
	for i, pos := range positions {
		if pos < 0 || pos >= limit {
			return nil, fmt.Errorf("%w: position %d outside %dx%d plate", errs.ErrInvalidPayload, pos, r.rows, r.columns)
		}
		out[i] = plate.NewWellIndex(int(pos)/r.columns, int(pos)%r.columns+1)
	}

	return out, nil
}

// labelOf reads only the label at the start of a record.
func (r plateReader) labelOf(record []byte) (string, error) {
	return encoding.NewVarStringDecoder(record, r.engine).Read()
}

func (r plateReader) readPlate(record []byte) (*plate.Plate, error) {
	d := encoding.NewVarStringDecoder(record, r.engine)

	label, err := d.Read()
	if err != nil {
		return nil, err
	}
	p, err := plate.NewPlate(r.rows, r.columns, r.opts...)
	if err != nil {
		return nil, err
	}
	p.SetLabel(label)

	groupCount, err := d.ReadCount(d.Remaining())
	if err != nil {
		return nil, err
	}
	for range groupCount {
		if err := r.readGroup(d, p); err != nil {
			return nil, fmt.Errorf("plate %q: %w", label, err)
		}
	}

	if err := r.readWells(d, p); err != nil {
		return nil, fmt.Errorf("plate %q: %w", label, err)
	}
	if d.Remaining() != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes in plate %q", errs.ErrInvalidPayload, d.Remaining(), label)
	}

	return p, nil
}

func (r plateReader) readGroup(d *encoding.VarStringDecoder, p *plate.Plate) error {
	label, err := d.Read()
	if err != nil {
		return err
	}
	size, err := d.ReadCount(r.capacity())
	if err != nil {
		return err
	}
	indices, err := r.readPositions(d, size)
	if err != nil {
		return err
	}
	if !p.AddGroups(plate.NewWellList(label, indices...)) {
		return fmt.Errorf("%w: group %q rejected", errs.ErrInvalidPayload, label)
	}

	return nil
}

func (r plateReader) readWells(d *encoding.VarStringDecoder, p *plate.Plate) error {
	count, err := d.ReadCount(r.capacity())
	if err != nil {
		return err
	}
	indices, err := r.readPositions(d, count)
	if err != nil {
		return err
	}

	counts := make([]int, count)
	total := 0
	for i := range counts {
		// every value takes 8 bytes of what is left
		if counts[i], err = d.ReadCount(d.Remaining() / 8); err != nil {
			return err
		}
		total += counts[i]
	}

	block, err := d.ReadBlock()
	if err != nil {
		return err
	}
	if len(block) != total*8 {
		return fmt.Errorf("%w: value block holds %d bytes, want %d", errs.ErrInvalidPayload, len(block), total*8)
	}

	values, cleanup := pool.GetFloat64Slice(total)
	defer cleanup()
	encoding.NewNumericRawDecoder(r.engine).DecodeInto(values, block)

	wells := make([]*plate.Well, count)
	offset := 0
	for i, idx := range indices {
		w, err := plate.NewWellAt(idx, values[offset:offset+counts[i]]...)
		if err != nil {
			return fmt.Errorf("%w: %w", errs.ErrInvalidPayload, err)
		}
		wells[i] = w
		offset += counts[i]
	}
	if !p.AddWells(wells...) {
		return fmt.Errorf("%w: wells rejected", errs.ErrInvalidPayload)
	}

	return nil
}
