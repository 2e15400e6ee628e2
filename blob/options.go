package blob

import (
	"log/slog"

	"github.com/arloliu/microplate/compress"
	"github.com/arloliu/microplate/format"
	"github.com/arloliu/microplate/internal/options"
)

// EncoderOption configures a StackEncoder.
type EncoderOption = options.Option[*StackEncoder]

// DecoderOption configures a StackDecoder.
type DecoderOption = options.Option[*StackDecoder]

// WithCompression selects the payload codec. The default is S2.
func WithCompression(ct format.CompressionType) EncoderOption {
	return options.New(func(e *StackEncoder) error {
		codec, err := compress.GetCodec(ct)
		if err != nil {
			return err
		}
		e.codec = codec
		e.flag.SetCompression(ct)

		return nil
	})
}

// WithLittleEndian writes multi-byte fields little-endian. This is the
// default.
func WithLittleEndian() EncoderOption {
	return options.NoError(func(e *StackEncoder) {
		e.flag.WithLittleEndian()
	})
}

// WithBigEndian writes multi-byte fields big-endian.
func WithBigEndian() EncoderOption {
	return options.NoError(func(e *StackEncoder) {
		e.flag.WithBigEndian()
	})
}

// WithEncoderLogger sets the logger receiving encode summaries at debug
// level. A nil logger keeps slog.Default().
func WithEncoderLogger(logger *slog.Logger) EncoderOption {
	return options.NoError(func(e *StackEncoder) {
		if logger != nil {
			e.logger = logger
		}
	})
}

// WithDecoderLogger sets the logger handed to decoded stacks and plates.
// A nil logger keeps slog.Default().
func WithDecoderLogger(logger *slog.Logger) DecoderOption {
	return options.NoError(func(d *StackDecoder) {
		if logger != nil {
			d.logger = logger
		}
	})
}
