package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPlateTypeOf(t *testing.T) {
	tests := []struct {
		rows, columns int
		want          PlateType
		descriptor    string
	}{
		{2, 3, Plate6Well, "6-Well"},
		{3, 4, Plate12Well, "12-Well"},
		{4, 6, Plate24Well, "24-Well"},
		{6, 8, Plate48Well, "48-Well"},
		{8, 12, Plate96Well, "96-Well"},
		{16, 24, Plate384Well, "384-Well"},
		{32, 48, Plate1536Well, "1536-Well"},
		{12, 8, PlateCustom, "Custom Plate: 12x8"},
		{5, 7, PlateCustom, "Custom Plate: 5x7"},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, PlateTypeOf(tt.rows, tt.columns))
		require.Equal(t, tt.descriptor, Descriptor(tt.rows, tt.columns))
	}
}

func TestPlateType_Dimensions(t *testing.T) {
	for _, pt := range PlateTypes() {
		rows, columns, ok := pt.Dimensions()
		require.True(t, ok)
		require.Equal(t, pt, PlateTypeOf(rows, columns))
		require.Equal(t, rows*columns, pt.Wells())
		require.True(t, pt.IsValid())
	}

	_, _, ok := PlateCustom.Dimensions()
	require.False(t, ok)
	require.True(t, PlateCustom.IsValid())
	require.False(t, PlateType(0x42).IsValid())
	require.Equal(t, "Unknown", PlateType(0x42).String())
}

func TestDataType(t *testing.T) {
	require.Equal(t, "Double", DataTypeDouble.String())

	dt, ok := ParseDataType("Double")
	require.True(t, ok)
	require.Equal(t, DataTypeDouble, dt)

	_, ok = ParseDataType("Integer")
	require.False(t, ok)
}

func TestCompressionType_String(t *testing.T) {
	require.Equal(t, "None", CompressionNone.String())
	require.Equal(t, "Zstd", CompressionZstd.String())
	require.Equal(t, "S2", CompressionS2.String())
	require.Equal(t, "LZ4", CompressionLZ4.String())
	require.Equal(t, "Unknown", CompressionType(0).String())
}
