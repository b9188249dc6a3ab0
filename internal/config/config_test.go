package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.NotEmpty(t, cfg.Database.Path)
	assert.Equal(t, "player", cfg.Player.Username)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 5*time.Second, cfg.RemoteTimeout())
	assert.False(t, cfg.Remote.Enabled)
}

func TestLoadParsesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
database:
  path: /tmp/test.db
remote:
  enabled: true
  base_url: https://api.example.com/v1
  timeout_seconds: 10
player:
  id: abc123
  username: jenn
log:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/test.db", cfg.Database.Path)
	assert.True(t, cfg.Remote.Enabled)
	assert.Equal(t, "https://api.example.com/v1", cfg.Remote.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.RemoteTimeout())
	assert.Equal(t, "abc123", cfg.Player.ID)
	assert.Equal(t, "jenn", cfg.Player.Username)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadBackfillsEmptyFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
remote:
  enabled: true
  timeout_seconds: -1
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.NotEmpty(t, cfg.Database.Path)
	assert.Equal(t, "player", cfg.Player.Username)
	assert.Equal(t, 5*time.Second, cfg.RemoteTimeout(), "invalid timeout falls back to default")
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{not valid yaml: ["), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
