package encoding

import (
	"encoding/binary"
	"fmt"

	"github.com/arloliu/microplate/endian"
	"github.com/arloliu/microplate/errs"
	"github.com/arloliu/microplate/internal/pool"
)

// MaxTextLength is the longest label a uint16 length prefix can describe.
const MaxTextLength = 65535

// VarStringEncoder writes the variable-length fields of a plate record:
// labels with a uint16 length prefix, varint counts, and raw column bytes.
//
// Each label is encoded as:
//   - 2 bytes: length, in the engine's byte order
//   - N bytes: UTF-8 data
//
// VarStringEncoder is not a ColumnarEncoder.
type VarStringEncoder struct {
	buf    *pool.ByteBuffer
	engine endian.EndianEngine
	count  int
}

// NewVarStringEncoder creates an encoder backed by a pooled buffer.
func NewVarStringEncoder(engine endian.EndianEngine) *VarStringEncoder {
	return &VarStringEncoder{
		engine: engine,
		buf:    pool.GetPlateBuffer(),
	}
}

// Write appends a length-prefixed string.
func (e *VarStringEncoder) Write(text string) error {
	if len(text) > MaxTextLength {
		return fmt.Errorf("%w: %d bytes, maximum %d", errs.ErrTextTooLong, len(text), MaxTextLength)
	}

	e.count++
	e.buf.Reserve(2 + len(text))
	e.buf.B = e.engine.AppendUint16(e.buf.B, uint16(len(text))) //nolint:gosec
	e.buf.B = append(e.buf.B, text...)

	return nil
}

// WriteSlice appends every string of texts. Nothing is written when one of
// them is too long.
func (e *VarStringEncoder) WriteSlice(texts []string) error {
	totalSize := 0
	for _, text := range texts {
		if len(text) > MaxTextLength {
			return fmt.Errorf("%w: %d bytes, maximum %d", errs.ErrTextTooLong, len(text), MaxTextLength)
		}
		totalSize += 2 + len(text)
	}

	e.buf.Reserve(totalSize)
	for _, text := range texts {
		e.buf.B = e.engine.AppendUint16(e.buf.B, uint16(len(text))) //nolint:gosec
		e.buf.B = append(e.buf.B, text...)
		e.count++
	}

	return nil
}

// WriteVarint appends a zigzag varint.
func (e *VarStringEncoder) WriteVarint(val int64) {
	e.buf.B = binary.AppendVarint(e.buf.B, val)
}

// WriteUvarint appends an unsigned varint.
func (e *VarStringEncoder) WriteUvarint(val uint64) {
	e.buf.B = binary.AppendUvarint(e.buf.B, val)
}

// WriteBlock appends a uvarint length followed by data.
func (e *VarStringEncoder) WriteBlock(data []byte) {
	e.WriteUvarint(uint64(len(data)))
	e.buf.MustWrite(data)
}

// WriteRaw appends data without a length prefix.
func (e *VarStringEncoder) WriteRaw(data []byte) {
	e.buf.MustWrite(data)
}

// Bytes returns the encoded data. Do not modify the returned slice.
func (e *VarStringEncoder) Bytes() []byte {
	return e.buf.Bytes()
}

// Len returns the number of strings written.
func (e *VarStringEncoder) Len() int {
	return e.count
}

// Size returns the total encoded size in bytes.
func (e *VarStringEncoder) Size() int {
	return e.buf.Len()
}

// Reset returns the buffer to the pool. The encoder must not be used again.
func (e *VarStringEncoder) Reset() {
	if e.buf != nil {
		pool.PutPlateBuffer(e.buf)
		e.buf = nil
	}
	e.count = 0
}

// VarStringDecoder reads the fields written by VarStringEncoder from a byte
// slice, advancing an internal offset.
type VarStringDecoder struct {
	data   []byte
	engine endian.EndianEngine
	offset int
}

// NewVarStringDecoder creates a decoder positioned at the start of data.
func NewVarStringDecoder(data []byte, engine endian.EndianEngine) *VarStringDecoder {
	return &VarStringDecoder{data: data, engine: engine}
}

// Read returns the next length-prefixed string.
func (d *VarStringDecoder) Read() (string, error) {
	if d.Remaining() < 2 {
		return "", d.truncated("string length", 2)
	}
	n := int(d.engine.Uint16(d.data[d.offset:]))
	d.offset += 2
	if d.Remaining() < n {
		return "", d.truncated("string", n)
	}
	s := string(d.data[d.offset : d.offset+n])
	d.offset += n

	return s, nil
}

// ReadVarint returns the next zigzag varint.
func (d *VarStringDecoder) ReadVarint() (int64, error) {
	v, n := binary.Varint(d.data[d.offset:])
	if n <= 0 {
		return 0, fmt.Errorf("%w: malformed varint at offset %d", errs.ErrInvalidPayload, d.offset)
	}
	d.offset += n

	return v, nil
}

// ReadUvarint returns the next unsigned varint.
func (d *VarStringDecoder) ReadUvarint() (uint64, error) {
	v, n := binary.Uvarint(d.data[d.offset:])
	if n <= 0 {
		return 0, fmt.Errorf("%w: malformed uvarint at offset %d", errs.ErrInvalidPayload, d.offset)
	}
	d.offset += n

	return v, nil
}

// ReadCount returns the next uvarint as a count no larger than limit.
func (d *VarStringDecoder) ReadCount(limit int) (int, error) {
	v, err := d.ReadUvarint()
	if err != nil {
		return 0, err
	}
	if v > uint64(limit) { //nolint:gosec
		return 0, fmt.Errorf("%w: count %d exceeds %d", errs.ErrInvalidPayload, v, limit)
	}

	return int(v), nil //nolint:gosec
}

// ReadBlock returns the next uvarint-prefixed block. The result aliases the
// decoder's data.
func (d *VarStringDecoder) ReadBlock() ([]byte, error) {
	n, err := d.ReadCount(d.Remaining())
	if err != nil {
		return nil, err
	}

	return d.ReadRaw(n)
}

// ReadRaw returns the next n bytes. The result aliases the decoder's data.
func (d *VarStringDecoder) ReadRaw(n int) ([]byte, error) {
	if n < 0 || d.Remaining() < n {
		return nil, d.truncated("block", n)
	}
	b := d.data[d.offset : d.offset+n]
	d.offset += n

	return b, nil
}

// Offset returns the number of bytes consumed.
func (d *VarStringDecoder) Offset() int {
	return d.offset
}

// Remaining returns the number of unread bytes.
func (d *VarStringDecoder) Remaining() int {
	return len(d.data) - d.offset
}

func (d *VarStringDecoder) truncated(what string, need int) error {
	return fmt.Errorf("%w: %s needs %d bytes at offset %d, have %d",
		errs.ErrTruncatedPayload, what, need, d.offset, d.Remaining())
}
