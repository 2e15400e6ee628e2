package compress

// ZstdCompressor provides Zstandard compression. It gives the best ratio of
// the built-in codecs and suits stacks that are archived or shipped over slow
// links.
//
// The default build uses the pure Go klauspost/compress implementation; the
// zstd_cgo build tag switches to the cgo based valyala/gozstd.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
//
// Example:
//
//	compressor := NewZstdCompressor()
//	compressed, err := compressor.Compress(payload)
//	if err != nil {
//		return err
//	}
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
