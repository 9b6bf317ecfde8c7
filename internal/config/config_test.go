package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luhtaf/seqcompact/internal/config"
)

func TestDefault(t *testing.T) {
	c := config.Default()
	require.Equal(t, config.DefaultValues, c.Input.Values)
	require.True(t, c.Input.ShowPrefix)
	require.Equal(t, "info", c.Logging.Level)
	require.Equal(t, "console", c.Logging.Format)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
input:
  values: "1,1,2"
  show_prefix: false
logging:
  level: debug
  format: json
`), 0o600))

	c, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "1,1,2", c.Input.Values)
	require.False(t, c.Input.ShowPrefix)
	require.Equal(t, "debug", c.Logging.Level)
	require.Equal(t, "json", c.Logging.Format)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoadKeepsDefaultsForOmittedKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: warn\n"), 0o600))

	c, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "warn", c.Logging.Level)
	require.Equal(t, config.DefaultValues, c.Input.Values)
}
