package encoding

import (
	"encoding/binary"
	"iter"

	"github.com/arloliu/microplate/internal/pool"
)

// PositionDeltaEncoder stores linear well positions (row*columns + column-1)
// as zigzag varint deltas. Wells of a plate are written in ascending order,
// so most deltas fit in a single byte.
//
// The first value of a sequence is stored as-is; Reset starts a new sequence
// whose first value is again stored as-is.
type PositionDeltaEncoder struct {
	buf   *pool.ByteBuffer
	prev  int64
	first bool
	count int
}

var _ ColumnarEncoder[int64] = (*PositionDeltaEncoder)(nil)

// NewPositionDeltaEncoder creates a delta encoder backed by a pooled buffer.
func NewPositionDeltaEncoder() *PositionDeltaEncoder {
	return &PositionDeltaEncoder{
		buf:   pool.GetPlateBuffer(),
		first: true,
	}
}

// Write appends one position.
//
// Panics if Finish has been called.
func (e *PositionDeltaEncoder) Write(pos int64) {
	if e.buf == nil {
		panic("encoder already finished - cannot write after Finish()")
	}

	delta := pos
	if !e.first {
		delta = pos - e.prev
	}
	e.first = false
	e.prev = pos
	e.count++
	e.buf.B = binary.AppendVarint(e.buf.B, delta)
}

// WriteSlice appends positions in order.
func (e *PositionDeltaEncoder) WriteSlice(positions []int64) {
	if e.buf == nil {
		panic("encoder already finished - cannot write after Finish()")
	}

	e.buf.Reserve(len(positions))
	for _, pos := range positions {
		e.Write(pos)
	}
}

// Bytes returns the encoded positions.
//
// Panics if Finish has been called.
func (e *PositionDeltaEncoder) Bytes() []byte {
	if e.buf == nil {
		panic("encoder already finished - cannot access bytes after Finish()")
	}

	return e.buf.Bytes()
}

// Len returns the number of encoded positions.
func (e *PositionDeltaEncoder) Len() int {
	return e.count
}

// Size returns the encoded size in bytes.
func (e *PositionDeltaEncoder) Size() int {
	if e.buf == nil {
		panic("encoder already finished - cannot access size after Finish()")
	}

	return e.buf.Len()
}

// Reset starts a new delta sequence, keeping the bytes written so far.
func (e *PositionDeltaEncoder) Reset() {
	e.first = true
	e.prev = 0
}

// Finish returns the buffer to the pool.
func (e *PositionDeltaEncoder) Finish() {
	if e.buf != nil {
		pool.PutPlateBuffer(e.buf)
		e.buf = nil
	}
	e.count = 0
}

// PositionDeltaDecoder reads positions written by PositionDeltaEncoder.
type PositionDeltaDecoder struct{}

var _ ColumnarDecoder[int64] = PositionDeltaDecoder{}

// NewPositionDeltaDecoder creates a position decoder.
func NewPositionDeltaDecoder() PositionDeltaDecoder {
	return PositionDeltaDecoder{}
}

// All yields up to count positions; it stops early at malformed data.
func (d PositionDeltaDecoder) All(data []byte, count int) iter.Seq[int64] {
	return func(yield func(int64) bool) {
		var pos int64
		offset := 0
		for i := range count {
			delta, n := binary.Varint(data[offset:])
			if n <= 0 {
				return
			}
			offset += n
			if i == 0 {
				pos = delta
			} else {
				pos += delta
			}
			if !yield(pos) {
				return
			}
		}
	}
}

// At returns the position at index. Deltas require a scan from the start.
func (d PositionDeltaDecoder) At(data []byte, index int, count int) (int64, bool) {
	if index < 0 || index >= count {
		return 0, false
	}

	i := 0
	for pos := range d.All(data, index+1) {
		if i == index {
			return pos, true
		}
		i++
	}

	return 0, false
}

// DecodeInto fills dst with the first len(dst) positions and returns the
// number of bytes consumed, or -1 when data is malformed or short.
func (d PositionDeltaDecoder) DecodeInto(dst []int64, data []byte) int {
	var pos int64
	offset := 0
	for i := range dst {
		delta, n := binary.Varint(data[offset:])
		if n <= 0 {
			return -1
		}
		offset += n
		if i == 0 {
			pos = delta
		} else {
			pos += delta
		}
		dst[i] = pos
	}

	return offset
}
