package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWithoutConfigFile(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "wta.db"), cfg.DBPath)
	assert.Equal(t, 60, cfg.DefaultBreakMinutes)
	assert.Equal(t, 10, cfg.WebhookTimeoutSeconds)
}

func TestLoad_ReadsConfigFile(t *testing.T) {
	dir := t.TempDir()
	content := "db_path: /tmp/custom.db\ndefault_break_minutes: 45\nwebhook_timeout_seconds: 3\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom.db", cfg.DBPath)
	assert.Equal(t, 45, cfg.DefaultBreakMinutes)
	assert.Equal(t, 3, cfg.WebhookTimeoutSeconds)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"),
		[]byte("default_break_minutes: 45\n"), 0644))
	t.Setenv("WTA_DEFAULT_BREAK_MINUTES", "15")

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 15, cfg.DefaultBreakMinutes)
}

func TestLoad_RejectsNegativeBreak(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"),
		[]byte("default_break_minutes: -5\n"), 0644))

	_, err := Load(dir)
	assert.Error(t, err)
}

func TestLoad_MalformedYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"),
		[]byte("db_path: [unclosed\n"), 0644))

	_, err := Load(dir)
	assert.Error(t, err)
}
