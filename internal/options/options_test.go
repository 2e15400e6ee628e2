package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type target struct {
	label string
	size  int
}

func withLabel(label string) Option[*target] {
	return NoError(func(t *target) { t.label = label })
}

func withSize(size int) Option[*target] {
	return New(func(t *target) error {
		if size <= 0 {
			return errors.New("size must be positive")
		}
		t.size = size

		return nil
	})
}

func TestApply(t *testing.T) {
	tg := &target{}
	require.NoError(t, Apply(tg, withLabel("plate"), nil, withSize(96)))
	require.Equal(t, "plate", tg.label)
	require.Equal(t, 96, tg.size)
}

func TestApply_StopsAtFirstError(t *testing.T) {
	tg := &target{}
	err := Apply(tg, withSize(-1), withLabel("never"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "option 0")
	require.Contains(t, err.Error(), "size must be positive")
	require.Empty(t, tg.label)
}

func TestApply_NoOptions(t *testing.T) {
	tg := &target{label: "kept"}
	require.NoError(t, Apply[*target](tg))
	require.Equal(t, "kept", tg.label)
}
