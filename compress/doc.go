// Package compress provides the payload codecs of the binary stack format.
//
// A stack blob stores its well records in one payload section. The payload is
// encoded first (positions and float64 measurements, see package encoding) and
// then compressed with one of the codecs here. The header records which codec
// was used, so decoders pick the matching one through GetCodec.
//
// # Supported Algorithms
//
//   - None (format.CompressionNone): payload stored as is
//   - Zstd (format.CompressionZstd): best ratio, moderate speed
//   - S2 (format.CompressionS2): fast, the default of blob.StackEncoder
//   - LZ4 (format.CompressionLZ4): fastest decompression
//
// Plate readers tend to produce repeated measurement values and long runs of
// identical positions across plates, which every algorithm above exploits.
//
// # Zstd build variants
//
// The pure Go klauspost/compress implementation is used by default. Building
// with -tags zstd_cgo switches to valyala/gozstd, which links libzstd; both
// produce standard Zstd frames and interoperate.
//
// # Usage
//
//	codec, err := compress.GetCodec(format.CompressionS2)
//	if err != nil {
//	    return err
//	}
//	compressed, err := codec.Compress(payload)
package compress
