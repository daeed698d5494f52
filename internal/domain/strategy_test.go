package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStrategy(t *testing.T) {
	for _, st := range Strategies() {
		got, err := ParseStrategy(string(st))
		require.NoError(t, err)
		assert.Equal(t, st, got)
	}

	got, err := ParseStrategy("")
	require.NoError(t, err)
	assert.Equal(t, StrategyPriorityOptimal, got)

	got, err = ParseStrategy("  Smart-Wait ")
	require.NoError(t, err)
	assert.Equal(t, StrategySmartWait, got)

	_, err = ParseStrategy("random")
	assert.ErrorIs(t, err, ErrInvalidStrategy)
}
