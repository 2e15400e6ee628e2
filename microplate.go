// Package microplate models laboratory microplates: wells addressed by row
// letters and column numbers, plates holding wells and named groups, and
// stacks of equally sized plates.
//
// The data model lives in the plate package. This package adds constructors
// for the standard plate sizes and one-call helpers around the binary stack
// format in the blob package.
//
// # Basic Usage
//
//	p, _ := microplate.NewPlate96(plate.WithPlateLabel("Assay1"))
//	p.AddWells(plate.MustParseWell("A1", 0.12, 0.15), plate.MustParseWell("H12", 1.8))
//
//	s, _ := microplate.NewStack96(plate.WithStackLabel("Screen"))
//	s.Add(p)
//
//	data, _ := microplate.EncodeStack(s)
//	restored, _ := microplate.DecodeStack(data)
//
// Text formats (JSON, XML, delimited tables) are in the codec package and
// per-well statistics in the stats package.
package microplate

import (
	"github.com/arloliu/microplate/blob"
	"github.com/arloliu/microplate/format"
	"github.com/arloliu/microplate/internal/hash"
	"github.com/arloliu/microplate/plate"
)

var defaultEncoderOptions = []blob.EncoderOption{
	blob.WithLittleEndian(),
	blob.WithCompression(format.CompressionZstd),
}

// NewPlate6 creates an empty 2x3 plate.
func NewPlate6(opts ...plate.PlateOption) (*plate.Plate, error) {
	return plate.NewPlateType(format.Plate6Well, opts...)
}

// NewPlate12 creates an empty 3x4 plate.
func NewPlate12(opts ...plate.PlateOption) (*plate.Plate, error) {
	return plate.NewPlateType(format.Plate12Well, opts...)
}

// NewPlate24 creates an empty 4x6 plate.
func NewPlate24(opts ...plate.PlateOption) (*plate.Plate, error) {
	return plate.NewPlateType(format.Plate24Well, opts...)
}

// NewPlate48 creates an empty 6x8 plate.
func NewPlate48(opts ...plate.PlateOption) (*plate.Plate, error) {
	return plate.NewPlateType(format.Plate48Well, opts...)
}

// NewPlate96 creates an empty 8x12 plate.
func NewPlate96(opts ...plate.PlateOption) (*plate.Plate, error) {
	return plate.NewPlateType(format.Plate96Well, opts...)
}

// NewPlate384 creates an empty 16x24 plate.
func NewPlate384(opts ...plate.PlateOption) (*plate.Plate, error) {
	return plate.NewPlateType(format.Plate384Well, opts...)
}

// NewPlate1536 creates an empty 32x48 plate.
func NewPlate1536(opts ...plate.PlateOption) (*plate.Plate, error) {
	return plate.NewPlateType(format.Plate1536Well, opts...)
}

// NewStack6 creates an empty stack of 2x3 plates.
func NewStack6(opts ...plate.StackOption) (*plate.Stack, error) {
	return plate.NewStackType(format.Plate6Well, opts...)
}

// NewStack12 creates an empty stack of 3x4 plates.
func NewStack12(opts ...plate.StackOption) (*plate.Stack, error) {
	return plate.NewStackType(format.Plate12Well, opts...)
}

// NewStack24 creates an empty stack of 4x6 plates.
func NewStack24(opts ...plate.StackOption) (*plate.Stack, error) {
	return plate.NewStackType(format.Plate24Well, opts...)
}

// NewStack48 creates an empty stack of 6x8 plates.
func NewStack48(opts ...plate.StackOption) (*plate.Stack, error) {
	return plate.NewStackType(format.Plate48Well, opts...)
}

// NewStack96 creates an empty stack of 8x12 plates.
func NewStack96(opts ...plate.StackOption) (*plate.Stack, error) {
	return plate.NewStackType(format.Plate96Well, opts...)
}

// NewStack384 creates an empty stack of 16x24 plates.
func NewStack384(opts ...plate.StackOption) (*plate.Stack, error) {
	return plate.NewStackType(format.Plate384Well, opts...)
}

// NewStack1536 creates an empty stack of 32x48 plates.
func NewStack1536(opts ...plate.StackOption) (*plate.Stack, error) {
	return plate.NewStackType(format.Plate1536Well, opts...)
}

// NewStackEncoder creates a binary stack encoder.
//
// Without options the encoder writes little-endian blobs with S2
// compression. Available options:
//   - blob.WithLittleEndian() / blob.WithBigEndian()
//   - blob.WithCompression(format.CompressionNone|Zstd|S2|LZ4)
//   - blob.WithEncoderLogger(logger)
func NewStackEncoder(opts ...blob.EncoderOption) (*blob.StackEncoder, error) {
	return blob.NewStackEncoder(opts...)
}

// NewStackDecoder parses the header and plate index of a binary stack blob.
// The payload is decompressed lazily by the first call needing it.
func NewStackDecoder(data []byte, opts ...blob.DecoderOption) (*blob.StackDecoder, error) {
	return blob.NewStackDecoder(data, opts...)
}

// EncodeStack encodes s as a little-endian, Zstd compressed blob. Options
// given here override the defaults.
func EncodeStack(s *plate.Stack, opts ...blob.EncoderOption) ([]byte, error) {
	enc, err := blob.NewStackEncoder(append(defaultEncoderOptions[:len(defaultEncoderOptions):len(defaultEncoderOptions)], opts...)...)
	if err != nil {
		return nil, err
	}

	return enc.Encode(s)
}

// DecodeStack restores the stack encoded in data.
func DecodeStack(data []byte, opts ...blob.DecoderOption) (*plate.Stack, error) {
	dec, err := blob.NewStackDecoder(data, opts...)
	if err != nil {
		return nil, err
	}

	return dec.Decode()
}

// LabelID returns the 64-bit hash under which a plate label is indexed in
// binary stack blobs.
func LabelID(label string) uint64 {
	return hash.ID(label)
}
