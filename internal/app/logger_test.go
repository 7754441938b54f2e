package app

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfigureLoggingAcceptsEmptyLevel(t *testing.T) {
	require.NoError(t, ConfigureLogging(""))
}

func TestConfigureLoggingAcceptsKnownLevels(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		require.NoError(t, ConfigureLogging(level))
	}
}
