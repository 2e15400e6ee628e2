package collision

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/microplate/internal/hash"
)

func TestTracker_Track(t *testing.T) {
	tr := NewTracker()
	tr.Track("P1", hash.ID("P1"))
	tr.Track("P2", hash.ID("P2"))

	require.Equal(t, 2, tr.Count())
	require.Equal(t, []string{"P1", "P2"}, tr.Labels())
	require.False(t, tr.HasCollision())
	require.False(t, tr.HasRepeat())
}

func TestTracker_Repeat(t *testing.T) {
	tr := NewTracker()
	tr.Track("P1", hash.ID("P1"))
	tr.Track("P1", hash.ID("P1"))

	require.Equal(t, 2, tr.Count())
	require.True(t, tr.HasRepeat())
	require.False(t, tr.HasCollision(), "a repeated label is not a collision")
}

func TestTracker_Collision(t *testing.T) {
	tr := NewTracker()
	tr.Track("P1", 42)
	tr.Track("P2", 42)

	require.True(t, tr.HasCollision())
	require.Equal(t, []string{"P1", "P2"}, tr.Labels())
}

func TestTracker_Reset(t *testing.T) {
	tr := NewTracker()
	tr.Track("P1", 1)
	tr.Track("P2", 1)
	tr.Track("P2", 1)
	tr.Reset()

	require.Equal(t, 0, tr.Count())
	require.Empty(t, tr.Labels())
	require.False(t, tr.HasCollision())
	require.False(t, tr.HasRepeat())

	tr.Track("P2", 1)
	require.False(t, tr.HasCollision(), "reset forgets previous hashes")
}
