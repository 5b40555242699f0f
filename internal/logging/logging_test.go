package logging

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestSetup_Level(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.GlobalLevel())

	Setup("PROD", "debug")
	require.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())

	Setup("DEV", "warn")
	require.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())

	Setup("PROD", "chatty")
	require.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}
