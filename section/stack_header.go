package section

import (
	"fmt"

	"github.com/arloliu/microplate/errs"
)

// StackHeader is the fixed 32-byte header at the start of a stack blob.
//
// Layout:
//
//	0-1   Flag.Options (always little-endian)
//	2     Flag.DataType
//	3     Flag.CompressionType
//	4-7   Rows
//	8-11  Columns
//	12-15 PlateCount
//	16-19 IndexOffset
//	20-23 PayloadOffset
//	24-27 PayloadLength
//	28-31 Checksum
type StackHeader struct {
	// Rows and Columns are the dimensions shared by every plate.
	Rows    uint32
	Columns uint32
	// PlateCount is the number of index entries.
	PlateCount uint32
	// IndexOffset is the byte offset of the plate index section.
	IndexOffset uint32
	// PayloadOffset is the byte offset of the compressed payload section.
	// It follows the index and the optional label directory.
	PayloadOffset uint32
	// PayloadLength is the size of the payload before compression.
	PayloadLength uint32
	// Checksum is the CRC-32 (IEEE) of the uncompressed payload.
	Checksum uint32

	Flag StackFlag
}

// NewStackHeader creates a header for plates of the given dimensions. Counts
// and offsets are filled in when the encoder finishes.
func NewStackHeader(rows, columns int) *StackHeader {
	return &StackHeader{
		Rows:        uint32(rows),    //nolint: gosec
		Columns:     uint32(columns), //nolint: gosec
		IndexOffset: IndexOffsetOffset,
		Flag:        NewStackFlag(),
	}
}

// IndexSize returns the byte size of the index section.
func (h *StackHeader) IndexSize() int {
	return int(h.PlateCount) * IndexEntrySize
}

// Parse parses the header from exactly HeaderSize bytes.
func (h *StackHeader) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	h.Flag.Options = uint16(data[0]) | (uint16(data[1]) << 8)
	h.Flag.DataType = data[2]
	h.Flag.CompressionType = data[3]
	if err := h.Flag.Validate(); err != nil {
		return err
	}

	engine := h.Flag.GetEndianEngine()
	h.Rows = engine.Uint32(data[4:8])
	h.Columns = engine.Uint32(data[8:12])
	h.PlateCount = engine.Uint32(data[12:16])
	h.IndexOffset = engine.Uint32(data[16:20])
	h.PayloadOffset = engine.Uint32(data[20:24])
	h.PayloadLength = engine.Uint32(data[24:28])
	h.Checksum = engine.Uint32(data[28:32])

	if h.Rows == 0 || h.Columns == 0 {
		return fmt.Errorf("%w: %dx%d", errs.ErrInvalidDimensions, h.Rows, h.Columns)
	}
	if h.IndexOffset != IndexOffsetOffset {
		return fmt.Errorf("%w: index offset %d", errs.ErrInvalidHeaderFlags, h.IndexOffset)
	}
	if uint64(h.PayloadOffset) < uint64(h.IndexOffset)+uint64(h.IndexSize()) {
		return fmt.Errorf("%w: payload offset %d overlaps index", errs.ErrInvalidHeaderFlags, h.PayloadOffset)
	}

	return nil
}

// Bytes serializes the header.
func (h *StackHeader) Bytes() []byte {
	b := make([]byte, HeaderSize)
	engine := h.Flag.GetEndianEngine()

	b[0] = byte(h.Flag.Options)
	b[1] = byte(h.Flag.Options >> 8)
	b[2] = h.Flag.DataType
	b[3] = h.Flag.CompressionType
	engine.PutUint32(b[4:8], h.Rows)
	engine.PutUint32(b[8:12], h.Columns)
	engine.PutUint32(b[12:16], h.PlateCount)
	engine.PutUint32(b[16:20], h.IndexOffset)
	engine.PutUint32(b[20:24], h.PayloadOffset)
	engine.PutUint32(b[24:28], h.PayloadLength)
	engine.PutUint32(b[28:32], h.Checksum)

	return b
}

// ParseStackHeader parses a StackHeader from the start of data.
func ParseStackHeader(data []byte) (StackHeader, error) {
	if len(data) < HeaderSize {
		return StackHeader{}, errs.ErrInvalidHeaderSize
	}

	h := StackHeader{}
	if err := h.Parse(data[:HeaderSize]); err != nil {
		return StackHeader{}, err
	}

	return h, nil
}
