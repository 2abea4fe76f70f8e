package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/require"
)

func TestSetupWritesToFile(t *testing.T) {
	prevLogger, prevLevel := log.Logger, zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = prevLogger
		zerolog.SetGlobalLevel(prevLevel)
	})

	path := filepath.Join(t.TempDir(), "state", "backstack.log")
	closer, err := Setup("info", path)
	require.NoError(t, err)

	logger := GetLogger("backbutton")
	logger.Info().Msg("hello")
	logger.Debug().Msg("hidden")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), `"component":"backbutton"`)
	require.Contains(t, string(data), `"message":"hello"`)
	require.NotContains(t, string(data), "hidden")
}

func TestSetupRejectsBadLevel(t *testing.T) {
	_, err := Setup("loud", filepath.Join(t.TempDir(), "x.log"))
	require.Error(t, err)
}
