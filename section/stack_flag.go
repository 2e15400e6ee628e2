package section

import (
	"github.com/arloliu/microplate/endian"
	"github.com/arloliu/microplate/errs"
	"github.com/arloliu/microplate/format"
)

// StackFlag is the packed flag block at the start of the stack header.
type StackFlag struct {
	// Options packs the layout flags and magic number.
	// Bit 0 is the endianness flag, 0 means little-endian, 1 means big-endian.
	// Bit 1 is set when a plate label directory follows the index.
	// Bit 2 is set when any plate of the stack carries groups.
	// Bit 3 is reserved and must be 0.
	// Bits 4-15 hold the magic number 0xEC1 (0xEC10 with the low bits cleared).
	Options uint16

	// DataType is the numeric backing of the well values.
	DataType uint8

	// CompressionType is the codec applied to the payload section.
	CompressionType uint8
}

// NewStackFlag returns a little-endian flag using S2 compression.
func NewStackFlag() StackFlag {
	return StackFlag{
		Options:         MagicStackV1Opt,
		DataType:        DataTypeDouble,
		CompressionType: uint8(format.CompressionS2),
	}
}

// IsLittleEndian reports whether multi-byte fields are little-endian.
func (f StackFlag) IsLittleEndian() bool {
	return (f.Options & EndiannessMask) == 0
}

// IsBigEndian reports whether multi-byte fields are big-endian.
func (f StackFlag) IsBigEndian() bool {
	return (f.Options & EndiannessMask) != 0
}

// WithLittleEndian sets little-endian byte order.
func (f *StackFlag) WithLittleEndian() {
	f.Options &^= EndiannessMask
}

// WithBigEndian sets big-endian byte order.
func (f *StackFlag) WithBigEndian() {
	f.Options |= EndiannessMask
}

// HasLabelDirectory reports whether the plate labels are stored after the
// index section.
func (f StackFlag) HasLabelDirectory() bool {
	return (f.Options & LabelDirectoryMask) != 0
}

// SetLabelDirectory toggles the label directory bit.
func (f *StackFlag) SetLabelDirectory(enabled bool) {
	if enabled {
		f.Options |= LabelDirectoryMask
	} else {
		f.Options &^= LabelDirectoryMask
	}
}

// HasGroups reports whether any plate carries well groups.
func (f StackFlag) HasGroups() bool {
	return (f.Options & GroupsMask) != 0
}

// SetGroups toggles the groups bit.
func (f *StackFlag) SetGroups(enabled bool) {
	if enabled {
		f.Options |= GroupsMask
	} else {
		f.Options &^= GroupsMask
	}
}

// GetMagicNumber returns the magic number bits of Options.
func (f StackFlag) GetMagicNumber() uint16 {
	return f.Options & MagicNumberMask
}

// Compression returns the payload compression type.
func (f StackFlag) Compression() format.CompressionType {
	return format.CompressionType(f.CompressionType)
}

// SetCompression sets the payload compression type.
func (f *StackFlag) SetCompression(c format.CompressionType) {
	f.CompressionType = uint8(c)
}

// Validate checks the magic number, reserved bit, data type and compression.
func (f StackFlag) Validate() error {
	if f.GetMagicNumber() != MagicStackV1Opt {
		return errs.ErrInvalidMagic
	}
	if f.Options&ReservedBitsMask != 0 {
		return errs.ErrInvalidHeaderFlags
	}
	if f.DataType != DataTypeDouble {
		return errs.ErrInvalidHeaderFlags
	}
	switch f.Compression() {
	case format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4:
		return nil
	default:
		return errs.ErrUnsupportedCompress
	}
}

// GetEndianEngine returns the byte order engine selected by the flag.
func (f StackFlag) GetEndianEngine() endian.EndianEngine {
	return endian.EngineFor(f.IsBigEndian())
}
