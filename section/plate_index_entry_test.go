package section

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/microplate/endian"
	"github.com/arloliu/microplate/errs"
)

func TestPlateIndexEntry_RoundTrip(t *testing.T) {
	e := NewPlateIndexEntry(0x0102030405060708, 128, 512)
	require.Equal(t, 640, e.End())

	for _, engine := range []endian.EndianEngine{endian.GetLittleEndianEngine(), endian.GetBigEndianEngine()} {
		b := e.Bytes(engine)
		require.Len(t, b, IndexEntrySize)

		parsed, err := ParsePlateIndexEntry(b, engine)
		require.NoError(t, err)
		require.Equal(t, e, parsed)
	}
}

func TestPlateIndexEntry_WriteToSlice(t *testing.T) {
	engine := endian.GetLittleEndianEngine()
	entries := []PlateIndexEntry{
		NewPlateIndexEntry(1, 0, 10),
		NewPlateIndexEntry(2, 10, 30),
	}

	buf := make([]byte, len(entries)*IndexEntrySize)
	pos := 0
	for _, e := range entries {
		pos = e.WriteToSlice(buf, pos, engine)
	}
	require.Equal(t, len(buf), pos)

	second, err := ParsePlateIndexEntry(buf[IndexEntrySize:], engine)
	require.NoError(t, err)
	require.Equal(t, entries[1], second)
}

func TestParsePlateIndexEntry_Short(t *testing.T) {
	_, err := ParsePlateIndexEntry(make([]byte, IndexEntrySize-1), endian.GetLittleEndianEngine())
	require.ErrorIs(t, err, errs.ErrInvalidIndexEntry)
}
