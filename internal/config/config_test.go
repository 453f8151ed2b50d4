package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir is a stand-in for t.Chdir, which requires Go 1.24+.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, "default", cfg.ProfileID)
	assert.Equal(t, 0.7, cfg.RetentionTarget)
	assert.Equal(t, 15, cfg.EstimatedMinutes)
	assert.Empty(t, cfg.DBPath)
}

func TestLoadEnvOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("REPRISE_ENV", "production")
	t.Setenv("REPRISE_DB", "/tmp/reprise-test.db")
	t.Setenv("REPRISE_PROFILE", "hartmut")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "/tmp/reprise-test.db", cfg.DBPath)
	assert.Equal(t, "hartmut", cfg.ProfileID)
}

func TestLoadRejectsBadRetention(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("REPRISE_RETENTION_TARGET", "1.5")

	_, err := Load()
	assert.Error(t, err)
}
