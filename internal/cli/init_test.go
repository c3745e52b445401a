package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/pidplot/pidplot/internal/config"
	"github.com/pidplot/pidplot/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitCommand_WritesScaffold(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.ConfigFileName)
	var out bytes.Buffer

	err := initCommand(path, false, &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Created "+path)

	// The scaffold round-trips through the loader with default values intact.
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.Defaults(), cfg)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "# pidplot configuration")
}

func TestInitCommand_RefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("interval: 9\n"), 0o644))

	var out bytes.Buffer
	err := initCommand(path, false, &out)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))

	// The existing file is untouched.
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "interval: 9\n", string(content))
}

func TestInitCommand_ForceOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("interval: 9\n"), 0o644))

	var out bytes.Buffer
	err := initCommand(path, true, &out)
	require.NoError(t, err)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultInterval, cfg.Interval)
}
