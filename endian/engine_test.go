package endian

import (
	"encoding/binary"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestCheckEndianness(t *testing.T) {
	var probe uint16 = 0x0102
	first := (*[2]byte)(unsafe.Pointer(&probe))[0]

	switch first {
	case 0x01:
		require.Equal(t, binary.BigEndian, CheckEndianness())
		require.False(t, IsNativeLittleEndian())
	case 0x02:
		require.Equal(t, binary.LittleEndian, CheckEndianness())
		require.True(t, IsNativeLittleEndian())
	default:
		require.Failf(t, "unexpected byte value", "got: %v", first)
	}
}

func TestCompareNativeEndian(t *testing.T) {
	native := GetLittleEndianEngine()
	if !IsNativeLittleEndian() {
		native = GetBigEndianEngine()
	}

	require.True(t, CompareNativeEndian(native))
}

func TestEngineFor(t *testing.T) {
	require.Equal(t, binary.BigEndian, EngineFor(true))
	require.Equal(t, binary.LittleEndian, EngineFor(false))
	require.True(t, IsBigEndian(EngineFor(true)))
	require.False(t, IsBigEndian(EngineFor(false)))
}

func TestEngines_WellRecordLayout(t *testing.T) {
	tests := []struct {
		name   string
		engine EndianEngine
		want   []byte
	}{
		{"little", GetLittleEndianEngine(), []byte{0x07, 0x00, 0x00, 0x00}},
		{"big", GetBigEndianEngine(), []byte{0x00, 0x00, 0x00, 0x07}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := tt.engine.AppendUint32(nil, 7)
			require.Equal(t, tt.want, buf)
			require.Equal(t, uint32(7), tt.engine.Uint32(buf))
		})
	}
}
