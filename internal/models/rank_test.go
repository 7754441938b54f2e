package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidRankLevel(t *testing.T) {
	for _, level := range []string{"F1", "F9", "E1", "E3", " F2 "} {
		require.True(t, ValidRankLevel(level), level)
	}

	for _, level := range []string{"", "F", "F0", "G1", "f1", "F10", "EX"} {
		require.False(t, ValidRankLevel(level), level)
	}
}
