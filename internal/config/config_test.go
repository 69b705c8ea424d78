package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLoadDefaults(t *testing.T) {
	// Change to temp dir so no config.yaml is found
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) })

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "https://www.yellowpages.com", cfg.Discover.DirectoryBaseURL)
	assert.Equal(t, "https://www.google.com", cfg.Discover.SearchBaseURL)
	assert.Equal(t, 30, cfg.Discover.SourceTimeoutSecs)
	assert.Equal(t, 1000, cfg.Discover.DelayMinMs)
	assert.Equal(t, 3000, cfg.Discover.DelayMaxMs)
	assert.Equal(t, 10, cfg.Extract.FetchTimeoutSecs)
	assert.True(t, cfg.Email.ProbeEnabled)
	assert.Equal(t, 10, cfg.Email.ProbeTimeoutSecs)
	assert.InDelta(t, 2.0, cfg.Email.DomainRatePerSec, 0.001)
	assert.Equal(t, "prospect-cli.local", cfg.Email.HeloDomain)
	assert.Equal(t, 5, cfg.Email.MaxAttempts)
	assert.Empty(t, cfg.Patterns.SnapshotPath)
	assert.Equal(t, 5, cfg.Pipeline.MaxConcurrentCompanies)
	assert.Zero(t, cfg.Pipeline.DeadlineSecs)
	assert.Zero(t, cfg.Pipeline.Deadline())
}

func TestLoadFromYAML(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) })

	yaml := `
log:
  level: debug
  format: console
email:
  probe_enabled: false
patterns:
  snapshot_path: /tmp/patterns.db
pipeline:
  max_concurrent_companies: 2
  deadline_secs: 120
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.False(t, cfg.Email.ProbeEnabled)
	assert.Equal(t, "/tmp/patterns.db", cfg.Patterns.SnapshotPath)
	assert.Equal(t, 2, cfg.Pipeline.MaxConcurrentCompanies)
	assert.Equal(t, 120, cfg.Pipeline.DeadlineSecs)
	// Defaults still apply for unset values
	assert.Equal(t, 30, cfg.Discover.SourceTimeoutSecs)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) })

	yaml := `
log:
  level: debug
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0644))

	t.Setenv("PROSPECT_LOG_LEVEL", "warn")
	t.Setenv("PROSPECT_DISCOVER_SEARCH_BASE_URL", "https://search.example")

	cfg, err := Load()
	require.NoError(t, err)

	// Env overrides file
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "https://search.example", cfg.Discover.SearchBaseURL)
}

func TestInitLoggerConsole(t *testing.T) {
	err := InitLogger(LogConfig{Level: "debug", Format: "console"})
	require.NoError(t, err)
	assert.NotNil(t, zap.L())
}

func TestInitLoggerJSON(t *testing.T) {
	err := InitLogger(LogConfig{Level: "info", Format: "json"})
	require.NoError(t, err)
	assert.NotNil(t, zap.L())
}

func TestInitLoggerInvalidLevel(t *testing.T) {
	err := InitLogger(LogConfig{Level: "invalid", Format: "json"})
	assert.Error(t, err)
}
