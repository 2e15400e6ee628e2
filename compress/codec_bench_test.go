package compress

import (
	"testing"

	"github.com/arloliu/microplate/format"
)

func benchmarkCompress(b *testing.B, ct format.CompressionType) {
	b.Helper()

	codec, err := GetCodec(ct)
	if err != nil {
		b.Fatal(err)
	}
	data := plateRecords(16, 24, 8)
	b.SetBytes(int64(len(data)))
	b.ReportAllocs()

	for b.Loop() {
		if _, err := codec.Compress(data); err != nil {
			b.Fatal(err)
		}
	}
}

func benchmarkDecompress(b *testing.B, ct format.CompressionType) {
	b.Helper()

	codec, err := GetCodec(ct)
	if err != nil {
		b.Fatal(err)
	}
	data := plateRecords(16, 24, 8)
	compressed, err := codec.Compress(data)
	if err != nil {
		b.Fatal(err)
	}
	b.SetBytes(int64(len(data)))
	b.ReportAllocs()

	for b.Loop() {
		if _, err := codec.Decompress(compressed); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCompress_Zstd(b *testing.B)   { benchmarkCompress(b, format.CompressionZstd) }
func BenchmarkCompress_S2(b *testing.B)     { benchmarkCompress(b, format.CompressionS2) }
func BenchmarkCompress_LZ4(b *testing.B)    { benchmarkCompress(b, format.CompressionLZ4) }
func BenchmarkDecompress_Zstd(b *testing.B) { benchmarkDecompress(b, format.CompressionZstd) }
func BenchmarkDecompress_S2(b *testing.B)   { benchmarkDecompress(b, format.CompressionS2) }
func BenchmarkDecompress_LZ4(b *testing.B)  { benchmarkDecompress(b, format.CompressionLZ4) }
