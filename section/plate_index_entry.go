package section

import (
	"github.com/arloliu/microplate/endian"
	"github.com/arloliu/microplate/errs"
)

// PlateIndexEntry locates one plate inside the uncompressed payload.
//
// Layout:
//
//	0-7   LabelHash (xxHash64 of the plate label)
//	8-11  Offset
//	12-15 Length
type PlateIndexEntry struct {
	// LabelHash is the xxHash64 digest of the plate label.
	LabelHash uint64
	// Offset is the byte offset of the plate record from the payload start.
	Offset uint32
	// Length is the byte length of the plate record.
	Length uint32
}

// NewPlateIndexEntry creates an entry for a plate record.
func NewPlateIndexEntry(labelHash uint64, offset, length int) PlateIndexEntry {
	return PlateIndexEntry{
		LabelHash: labelHash,
		Offset:    uint32(offset), //nolint: gosec
		Length:    uint32(length), //nolint: gosec
	}
}

// End returns the offset just past the plate record.
func (e PlateIndexEntry) End() int {
	return int(e.Offset) + int(e.Length)
}

// Bytes returns the 16-byte encoding of the entry.
func (e PlateIndexEntry) Bytes(engine endian.EndianEngine) []byte {
	var b [IndexEntrySize]byte
	e.WriteToSlice(b[:], 0, engine)

	return b[:]
}

// WriteToSlice writes the entry at offset in data and returns the next write
// position. data must have room for IndexEntrySize bytes at offset.
func (e PlateIndexEntry) WriteToSlice(data []byte, offset int, engine endian.EndianEngine) int {
	engine.PutUint64(data[offset:offset+8], e.LabelHash)
	engine.PutUint32(data[offset+8:offset+12], e.Offset)
	engine.PutUint32(data[offset+12:offset+16], e.Length)

	return offset + IndexEntrySize
}

// ParsePlateIndexEntry parses an entry from the start of data.
func ParsePlateIndexEntry(data []byte, engine endian.EndianEngine) (PlateIndexEntry, error) {
	if len(data) < IndexEntrySize {
		return PlateIndexEntry{}, errs.ErrInvalidIndexEntry
	}

	return PlateIndexEntry{
		LabelHash: engine.Uint64(data[0:8]),
		Offset:    engine.Uint32(data[8:12]),
		Length:    engine.Uint32(data[12:16]),
	}, nil
}
