package blob

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/microplate/errs"
	"github.com/arloliu/microplate/format"
	"github.com/arloliu/microplate/plate"
	"github.com/arloliu/microplate/section"
)

func TestStack_RoundTrip(t *testing.T) {
	s := newSampleStack(t)

	for _, ct := range []format.CompressionType{
		format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4,
	} {
		for _, big := range []bool{false, true} {
			t.Run(ct.String(), func(t *testing.T) {
				opts := []EncoderOption{WithCompression(ct)}
				if big {
					opts = append(opts, WithBigEndian())
				}
				data := encodeStack(t, s, opts...)

				dec, err := NewStackDecoder(data, WithDecoderLogger(quietLogger))
				require.NoError(t, err)
				info := dec.Info()
				require.Equal(t, ct, info.Compression)
				require.Equal(t, big, info.BigEndian)

				decoded, err := dec.Decode()
				require.NoError(t, err)
				require.True(t, s.Equal(decoded), "decoded %s, want %s", decoded, s)
				require.Equal(t, s.Hash(), decoded.Hash())

				p1, ok := decoded.Get("P1")
				require.True(t, ok)
				require.Equal(t, 2, p1.GroupCount())
			})
		}
	}
}

func TestStack_RoundTripEmpty(t *testing.T) {
	s, err := plate.NewStack(3, 5)
	require.NoError(t, err)
	s.SetLabel("")

	data := encodeStack(t, s)
	dec, err := NewStackDecoder(data)
	require.NoError(t, err)
	require.Equal(t, 0, dec.PlateCount())

	decoded, err := dec.Decode()
	require.NoError(t, err)
	require.Equal(t, "", decoded.Label())
	require.Equal(t, 3, decoded.Rows())
	require.Equal(t, 5, decoded.Columns())
	require.True(t, s.Equal(decoded))
}

func TestStackDecoder_Info(t *testing.T) {
	data := encodeStack(t, newSampleStack(t))

	dec, err := NewStackDecoder(data)
	require.NoError(t, err)

	info := dec.Info()
	require.Equal(t, 8, info.Rows)
	require.Equal(t, 12, info.Columns)
	require.Equal(t, 3, info.PlateCount)
	require.Equal(t, format.CompressionS2, info.Compression)
	require.False(t, info.BigEndian)
	require.True(t, info.HasGroups)
	require.False(t, info.HasLabelDirectory)
	require.Positive(t, info.PayloadLength)
	require.Positive(t, info.CompressedLength)
}

func TestStackDecoder_Labels(t *testing.T) {
	dec, err := NewStackDecoder(encodeStack(t, newSampleStack(t)))
	require.NoError(t, err)

	labels, err := dec.Labels()
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"P1", "P2", "P3"}, labels)
}

func TestStackDecoder_RepeatedLabels(t *testing.T) {
	s := newSampleStack(t)
	p2, ok := s.Get("P2")
	require.True(t, ok)
	twin := p2.Clone()
	twin.SetLabel("P1")
	require.True(t, s.Add(twin))

	dec, err := NewStackDecoder(encodeStack(t, s))
	require.NoError(t, err)
	require.True(t, dec.Info().HasLabelDirectory)

	labels, err := dec.Labels()
	require.NoError(t, err)
	require.Len(t, labels, 4)
	require.Equal(t, s.Labels(), labels)

	first, err := dec.Plate("P1")
	require.NoError(t, err)
	want, _ := s.Get("P1")
	require.True(t, want.Equal(first))

	decoded, err := dec.Decode()
	require.NoError(t, err)
	require.True(t, s.Equal(decoded))
}

func TestStackDecoder_Plate(t *testing.T) {
	s := newSampleStack(t)
	dec, err := NewStackDecoder(encodeStack(t, s))
	require.NoError(t, err)

	p, err := dec.Plate("P2")
	require.NoError(t, err)
	want, _ := s.Get("P2")
	require.True(t, want.Equal(p))

	_, err = dec.Plate("missing")
	require.ErrorIs(t, err, errs.ErrPlateNotFound)
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestStackEncoder_Errors(t *testing.T) {
	_, err := NewStackEncoder(WithCompression(format.CompressionType(9)))
	require.ErrorIs(t, err, errs.ErrUnsupportedCompress)

	enc, err := NewStackEncoder()
	require.NoError(t, err)
	require.Equal(t, format.CompressionS2, enc.Compression())

	_, err = enc.Encode(nil)
	require.ErrorIs(t, err, errs.ErrInvalidArgument)
}

func TestStackEncoder_LogsSummary(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	encodeStack(t, newSampleStack(t), WithEncoderLogger(logger), WithCompression(format.CompressionZstd))

	out := buf.String()
	require.Contains(t, out, "stack encoded")
	require.Contains(t, out, "stack=Screen")
	require.Contains(t, out, "plates=3")
	require.Contains(t, out, "compression=Zstd")
}

func TestStackDecoder_Corrupt(t *testing.T) {
	data := encodeStack(t, newSampleStack(t), WithCompression(format.CompressionNone))

	t.Run("short header", func(t *testing.T) {
		_, err := NewStackDecoder(data[:section.HeaderSize-1])
		require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)
	})

	t.Run("bad magic", func(t *testing.T) {
		bad := bytes.Clone(data)
		bad[1] = 0x00
		_, err := NewStackDecoder(bad)
		require.ErrorIs(t, err, errs.ErrInvalidMagic)
	})

	t.Run("missing payload", func(t *testing.T) {
		_, err := NewStackDecoder(data[:section.HeaderSize+8])
		require.ErrorIs(t, err, errs.ErrTruncatedPayload)
	})

	t.Run("flipped value", func(t *testing.T) {
		bad := bytes.Clone(data)
		bad[len(bad)-1] ^= 0xFF
		dec, err := NewStackDecoder(bad)
		require.NoError(t, err)
		_, err = dec.Decode()
		require.ErrorIs(t, err, errs.ErrChecksumMismatch)
	})

	t.Run("cut payload", func(t *testing.T) {
		dec, err := NewStackDecoder(data[:len(data)-4])
		require.NoError(t, err)
		_, err = dec.Labels()
		require.ErrorIs(t, err, errs.ErrTruncatedPayload)
	})

	t.Run("index past payload", func(t *testing.T) {
		bad := bytes.Clone(data)
		// length field of the first index entry
		bad[section.HeaderSize+12] = 0xFF
		bad[section.HeaderSize+13] = 0xFF
		_, err := NewStackDecoder(bad)
		require.ErrorIs(t, err, errs.ErrInvalidIndexEntry)
	})
}

func BenchmarkStackEncoder_Encode(b *testing.B) {
	s := newSampleStack(b)
	enc, err := NewStackEncoder()
	require.NoError(b, err)

	for b.Loop() {
		if _, err := enc.Encode(s); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkStackDecoder_Decode(b *testing.B) {
	data := encodeStack(b, newSampleStack(b))

	for b.Loop() {
		dec, err := NewStackDecoder(data)
		if err != nil {
			b.Fatal(err)
		}
		if _, err := dec.Decode(); err != nil {
			b.Fatal(err)
		}
	}
}
