package section

import (
	"math"

	"github.com/arloliu/microplate/format"
)

const (
	// Bit masks of StackFlag.Options.
	EndiannessMask     = 0x0001 // bit 0: 0=little, 1=big
	LabelDirectoryMask = 0x0002 // bit 1: plate labels stored after the index
	GroupsMask         = 0x0004 // bit 2: at least one plate carries groups
	ReservedBitsMask   = 0x0008 // bit 3: reserved, must be 0
	MagicNumberMask    = 0xFFF0 // bits 4-15: magic number

	// MagicStackV1Opt identifies version 1 of the stack blob format.
	MagicStackV1Opt = 0xEC10

	// DataTypeDouble is the only data type a stack blob carries.
	DataTypeDouble = uint8(format.DataTypeDouble)
)

// Offsets and section sizes in the stack blob.
const (
	HeaderSize        = 32             // fixed header size in bytes
	IndexEntrySize    = 16             // fixed plate index entry size in bytes
	IndexOffsetOffset = HeaderSize     // byte offset where the index section starts
	MaxSectionOffset  = math.MaxUint32 // largest offset or length a header field can hold
)
