package blob

import (
	"bytes"
	"log/slog"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/microplate/format"
	"github.com/arloliu/microplate/plate"
)

var quietLogger = slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

// newRandomPlate fills count random wells of a 96-well plate with 1-3 values.
func newRandomPlate(t testing.TB, rng *rand.Rand, label string, count int) *plate.Plate {
	t.Helper()

	p, err := plate.NewPlateType(format.Plate96Well, plate.WithPlateLabel(label), plate.WithPlateLogger(quietLogger))
	require.NoError(t, err)

	for p.Size() < count {
		w, err := plate.NewWell(rng.IntN(8), rng.IntN(12)+1)
		require.NoError(t, err)
		for range rng.IntN(3) + 1 {
			w.Add(rng.Float64() * 1000)
		}
		p.AddWells(w)
	}

	return p
}

func newSampleStack(t testing.TB) *plate.Stack {
	t.Helper()

	rng := rand.New(rand.NewPCG(42, 7))
	s, err := plate.NewStackType(format.Plate96Well, plate.WithStackLabel("Screen"), plate.WithStackLogger(quietLogger))
	require.NoError(t, err)

	p1 := newRandomPlate(t, rng, "P1", 24)
	controls, err := plate.ParseWellList("Controls", "A1,B1,H12", ",")
	require.NoError(t, err)
	blanks, err := plate.ParseWellList("Blanks", "D6,E6", ",")
	require.NoError(t, err)
	require.True(t, p1.AddGroups(controls, blanks))

	p2 := newRandomPlate(t, rng, "P2", 24)
	nan, err := plate.NewWell(3, 3, math.NaN(), math.Inf(1))
	require.NoError(t, err)
	p2.ReplaceWells(nan)

	p3 := newRandomPlate(t, rng, "P3", 0)

	require.True(t, s.Add(p1, p2, p3))

	return s
}

func encodeStack(t testing.TB, s *plate.Stack, opts ...EncoderOption) []byte {
	t.Helper()

	enc, err := NewStackEncoder(opts...)
	require.NoError(t, err)
	data, err := enc.Encode(s)
	require.NoError(t, err)

	return data
}
