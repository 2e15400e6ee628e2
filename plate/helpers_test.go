package plate

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// captureLogger returns a logger writing text records into the returned buffer.
func captureLogger(t *testing.T) (*slog.Logger, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return logger, &buf
}

func wells(t *testing.T, ids ...string) []*Well {
	t.Helper()

	out := make([]*Well, len(ids))
	for i, id := range ids {
		w, err := ParseWell(id)
		require.NoError(t, err)
		out[i] = w
	}

	return out
}

func wellIDs(seq []*Well) []string {
	out := make([]string, len(seq))
	for i, w := range seq {
		out[i] = w.ID()
	}

	return out
}

func setIDs(s *WellSet) []string {
	return wellIDs(s.Slice())
}

func newTestSet(t *testing.T, ids string) *WellSet {
	t.Helper()

	logger, _ := captureLogger(t)
	s := NewWellSet(WithSetLabel("test"), WithSetLogger(logger))
	require.True(t, s.AddIDs(ids, DefaultListDelimiter))

	return s
}

func newTestPlate(t *testing.T, rows, columns int) (*Plate, *bytes.Buffer) {
	t.Helper()

	logger, buf := captureLogger(t)
	p, err := NewPlate(rows, columns, WithPlateLabel("P1"), WithPlateLogger(logger))
	require.NoError(t, err)

	return p, buf
}

func countRejections(buf *bytes.Buffer) int {
	return strings.Count(buf.String(), "element rejected")
}
