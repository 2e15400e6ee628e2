package pool

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetInt64Slice(t *testing.T) {
	s, cleanup := GetInt64Slice(96)
	require.Len(t, s, 96)
	s[95] = 7
	cleanup()

	again, cleanup := GetInt64Slice(8)
	defer cleanup()
	require.Len(t, again, 8)
}

func TestGetFloat64Slice(t *testing.T) {
	s, cleanup := GetFloat64Slice(384)
	require.Len(t, s, 384)
	cleanup()

	empty, cleanup := GetFloat64Slice(0)
	defer cleanup()
	require.Empty(t, empty)
}

func TestSlicePools_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s, cleanup := GetFloat64Slice(i + 1)
			defer cleanup()
			require.Len(t, s, i+1)
		}()
	}
	wg.Wait()
}
