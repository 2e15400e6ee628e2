// Package encoding provides the column encoders behind the binary stack blob.
//
// A plate record is made of a few columns, each with its own encoder:
//
//   - PositionDeltaEncoder: linear well positions as zigzag varint deltas
//   - NumericRawEncoder: well values as 8-byte IEEE 754 words
//   - VarStringEncoder: labels, counts and the framing around the columns
//
// ColumnarEncoder and ColumnarDecoder describe the column contract; the
// decoders are stateless values that read the bytes an encoder produced.
//
// Encoders draw their buffers from a pool. Call Finish (Reset for
// VarStringEncoder) once the bytes have been copied out:
//
//	enc := encoding.NewNumericRawEncoder(endian.GetLittleEndianEngine())
//	defer enc.Finish()
//
//	enc.WriteSlice(well.Values())
//	record = append(record, enc.Bytes()...)
//
// Most callers should use the blob package, which assembles complete stack
// blobs from these encoders.
package encoding
