package compress

import (
	"fmt"

	"github.com/arloliu/microplate/errs"
	"github.com/arloliu/microplate/format"
)

// Compressor compresses the encoded plate payload of a stack blob.
//
// The payload is a run of well records: positions followed by float64
// measurements, so neighboring records share most of their bytes and
// compress well.
//
// Memory management:
//   - Returned slice is owned by the caller, except for NoOpCompressor
//   - Input slice is not modified
type Compressor interface {
	// Compress compresses data and returns the compressed result.
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a payload produced by the matching Compressor.
//
// Example:
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//	payload, err := codec.Decompress(compressed)
//
// Implementations are safe for concurrent use.
type Decompressor interface {
	// Decompress decompresses data. Corrupted input or input produced by a
	// different algorithm returns an error.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

// CompressionStats describes one compression run of a stack payload.
type CompressionStats struct {
	// Algorithm identifies the compression algorithm used
	Algorithm format.CompressionType

	// OriginalSize is the payload size before compression
	OriginalSize int64

	// CompressedSize is the payload size after compression
	CompressedSize int64
}

// CompressionRatio returns compressed size / original size, or 0 for an empty
// payload.
func (s CompressionStats) CompressionRatio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the space saved as a percentage.
func (s CompressionStats) SpaceSavings() float64 {
	return (1.0 - s.CompressionRatio()) * 100.0
}

// CreateCodec creates a fresh Codec for compressionType.
//
// Parameters:
//   - compressionType: Type of compression (None, Zstd, S2, or LZ4)
//   - target: Description of target usage (for error messages)
//
// Returns:
//   - Codec: Codec instance for the specified type
//   - error: errs.ErrUnsupportedCompress for an unknown type
func CreateCodec(compressionType format.CompressionType, target string) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("%w: %s compression %s", errs.ErrUnsupportedCompress, target, compressionType)
	}
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec returns the shared built-in Codec for compressionType.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s", errs.ErrUnsupportedCompress, compressionType)
}

// Measure compresses data with codec and reports the sizes.
func Measure(codec Codec, algorithm format.CompressionType, data []byte) ([]byte, CompressionStats, error) {
	compressed, err := codec.Compress(data)
	if err != nil {
		return nil, CompressionStats{}, err
	}

	return compressed, CompressionStats{
		Algorithm:      algorithm,
		OriginalSize:   int64(len(data)),
		CompressedSize: int64(len(compressed)),
	}, nil
}
