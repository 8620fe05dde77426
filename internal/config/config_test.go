package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromCreatesDefaultsOnFirstRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasklight", "config.toml")

	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)

	// First load writes the file so later edits have something to edit.
	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestLoadFromParsesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	contents := `
[logging]
level = "debug"
json = true

[backend]
enabled = true
connection_string = "UseDevelopmentStorage=true"
table = "sessiontodos"

[window]
width = 800.0
height = 600.0
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Logging.JSON)
	assert.True(t, cfg.Backend.Enabled)
	assert.Equal(t, "sessiontodos", cfg.Backend.Table)
	assert.Equal(t, float32(800), cfg.Window.Width)
}

func TestLoadFromMergesMissingValuesWithDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[backend]\nenabled = true\n"), 0644))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	assert.True(t, cfg.Backend.Enabled)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "todos", cfg.Backend.Table)
	assert.Equal(t, Default().Window, cfg.Window)
}

func TestLoadFromRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("not = [valid"), 0644))

	_, err := LoadFrom(path)
	assert.Error(t, err)
}

func TestSaveToRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg := Default()
	cfg.Backend.Enabled = true
	cfg.Backend.ConnectionString = "UseDevelopmentStorage=true"
	require.NoError(t, cfg.SaveTo(path))

	loaded, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
