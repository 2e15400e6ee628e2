package encoding

import "iter"

// ColumnarEncoder appends values of one column of a plate record, such as the
// well positions or the measurement values.
type ColumnarEncoder[T comparable] interface {
	// Bytes returns the encoded bytes. The slice is valid until the next write
	// and must not be modified.
	Bytes() []byte

	// Len returns the number of encoded values.
	Len() int

	// Size returns the encoded size in bytes.
	Size() int

	// Reset starts a new sequence but keeps the accumulated bytes, so Len,
	// Size and Bytes still report everything written so far.
	Reset()

	// Finish returns the buffer to the pool. The encoder is unusable after
	// Finish; read Bytes first:
	//
	//	enc := NewPositionDeltaEncoder()
	//	defer enc.Finish()
	//
	//	enc.WriteSlice(positions)
	//	out = append(out, enc.Bytes()...)
	Finish()

	// Write appends a single value.
	Write(data T)

	// WriteSlice appends values in order.
	WriteSlice(values []T)
}

// ColumnarDecoder reads a column produced by the matching ColumnarEncoder.
type ColumnarDecoder[T comparable] interface {
	// All yields up to count values decoded from data. Malformed or short
	// data yields fewer values.
	All(data []byte, count int) iter.Seq[T]

	// At returns the value at the zero-based index, or false when index is
	// outside [0, count) or data is too short.
	At(data []byte, index int, count int) (T, bool)
}
