package encoding

import (
	"iter"
	"math"

	"github.com/arloliu/microplate/endian"
	"github.com/arloliu/microplate/internal/pool"
)

// NumericRawEncoder stores well values as 8-byte IEEE 754 words in the byte
// order of its engine.
type NumericRawEncoder struct {
	buf    *pool.ByteBuffer
	engine endian.EndianEngine
	count  int
}

var _ ColumnarEncoder[float64] = (*NumericRawEncoder)(nil)

// NewNumericRawEncoder creates a raw value encoder backed by a pooled buffer.
func NewNumericRawEncoder(engine endian.EndianEngine) *NumericRawEncoder {
	return &NumericRawEncoder{
		engine: engine,
		buf:    pool.GetPlateBuffer(),
	}
}

// Write appends a single value.
//
// Panics if Finish has been called.
func (e *NumericRawEncoder) Write(val float64) {
	if e.buf == nil {
		panic("encoder already finished - cannot write after Finish()")
	}

	e.count++
	e.engine.PutUint64(e.buf.Extend(8), math.Float64bits(val))
}

// WriteSlice appends values with a single buffer growth.
//
// Panics if Finish has been called.
func (e *NumericRawEncoder) WriteSlice(values []float64) {
	if e.buf == nil {
		panic("encoder already finished - cannot write after Finish()")
	}

	valLen := len(values)
	e.count += valLen
	if valLen == 0 {
		return
	}

	dst := e.buf.Extend(valLen * 8)
	for i, v := range values {
		e.engine.PutUint64(dst[i*8:], math.Float64bits(v))
	}
}

// Bytes returns the encoded values.
//
// Panics if Finish has been called.
func (e *NumericRawEncoder) Bytes() []byte {
	if e.buf == nil {
		panic("encoder already finished - cannot access bytes after Finish()")
	}

	return e.buf.Bytes()
}

// Len returns the number of encoded values.
func (e *NumericRawEncoder) Len() int {
	return e.count
}

// Size returns the encoded size in bytes.
//
// Panics if Finish has been called.
func (e *NumericRawEncoder) Size() int {
	if e.buf == nil {
		panic("encoder already finished - cannot access size after Finish()")
	}

	return e.buf.Len()
}

// Reset is a no-op; raw values carry no sequence state.
func (e *NumericRawEncoder) Reset() {}

// Finish returns the buffer to the pool.
func (e *NumericRawEncoder) Finish() {
	if e.buf != nil {
		pool.PutPlateBuffer(e.buf)
		e.buf = nil
	}
	e.count = 0
}

// NumericRawDecoder reads values written by NumericRawEncoder. It is
// stateless and returned by value.
type NumericRawDecoder struct {
	engine endian.EndianEngine
}

var _ ColumnarDecoder[float64] = NumericRawDecoder{}

// NewNumericRawDecoder creates a decoder for the given byte order.
func NewNumericRawDecoder(engine endian.EndianEngine) NumericRawDecoder {
	return NumericRawDecoder{engine: engine}
}

// All yields count values, or nothing when data is shorter than count words.
func (d NumericRawDecoder) All(data []byte, count int) iter.Seq[float64] {
	return func(yield func(float64) bool) {
		if count <= 0 || len(data) < count*8 {
			return
		}

		for i := range count {
			start := i * 8
			if !yield(math.Float64frombits(d.engine.Uint64(data[start : start+8]))) {
				return
			}
		}
	}
}

// DecodeInto fills dst with the first len(dst) values of data. It reports
// false when data is too short.
func (d NumericRawDecoder) DecodeInto(dst []float64, data []byte) bool {
	if len(data) < len(dst)*8 {
		return false
	}
	for i := range dst {
		start := i * 8
		dst[i] = math.Float64frombits(d.engine.Uint64(data[start : start+8]))
	}

	return true
}

// At returns the value at index.
func (d NumericRawDecoder) At(data []byte, index int, count int) (float64, bool) {
	if index < 0 || index >= count {
		return 0, false
	}

	start := index * 8
	if start+8 > len(data) {
		return 0, false
	}

	return math.Float64frombits(d.engine.Uint64(data[start : start+8])), true
}
