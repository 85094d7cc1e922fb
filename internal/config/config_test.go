package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	c := Load()
	assert.Equal(t, 8, c.PreviewCellSize)
	assert.NotEmpty(t, c.DataDir)
	assert.Empty(t, c.RemoteBaseURL)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	c := Load()
	c.RemoteBaseURL = "https://sync.example.net"
	c.PreviewCellSize = 12
	require.NoError(t, c.Save())

	got := Load()
	assert.Equal(t, "https://sync.example.net", got.RemoteBaseURL)
	assert.Equal(t, 12, got.PreviewCellSize)
}

func TestLoadIgnoresBadFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	appDir := filepath.Join(dir, "stitch-tracker")
	require.NoError(t, os.MkdirAll(appDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(appDir, "config.json"), []byte("{broken"), 0o644))

	c := Load()
	assert.Equal(t, 8, c.PreviewCellSize)
}

func TestLoadClampsCellSize(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	appDir := filepath.Join(dir, "stitch-tracker")
	require.NoError(t, os.MkdirAll(appDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(appDir, "config.json"),
		[]byte(`{"preview_cell_size": -3}`), 0o644))

	c := Load()
	assert.Equal(t, 8, c.PreviewCellSize)
}
