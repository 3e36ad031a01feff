package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv(DataDirEnv, "")
	t.Setenv(ServiceEnv, "")
	t.Setenv(DebugEnv, "")
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "https://bsky.social", cfg.Service)
	assert.Equal(t, 15, cfg.TimelineLimit)
	assert.Equal(t, 40, cfg.NotificationLimit)
	assert.Equal(t, 250*time.Millisecond, cfg.FrameInterval.Duration)
	assert.Equal(t, filepath.Join(dir, "debug.log"), cfg.LogFile)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(`{
		"service": "https://pds.example.com",
		"timeline_limit": 30,
		"frame_interval": "100ms"
	}`), 0o600))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "https://pds.example.com", cfg.Service)
	assert.Equal(t, 30, cfg.TimelineLimit)
	assert.Equal(t, 40, cfg.NotificationLimit, "unset fields keep their default")
	assert.Equal(t, 100*time.Millisecond, cfg.FrameInterval.Duration)
}

func TestLoadEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(DataDirEnv, dir)
	t.Setenv(ServiceEnv, "http://localhost:2583")
	t.Setenv(DebugEnv, "true")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, dir, cfg.DataDir)
	assert.Equal(t, "http://localhost:2583", cfg.Service)
	assert.True(t, cfg.Debug)
}

func TestLoadBadDebugEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv(DebugEnv, "maybe")
	_, err := Load(t.TempDir())
	assert.Error(t, err)
}

func TestLoadInvalidFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(`{"frame_interval": 5}`), 0o600))
	_, err := Load(dir)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"not a url", func(c *Config) { c.Service = "bsky.social" }, true},
		{"ftp", func(c *Config) { c.Service = "ftp://bsky.social" }, true},
		{"zero timeline limit", func(c *Config) { c.TimelineLimit = 0 }, true},
		{"huge notification limit", func(c *Config) { c.NotificationLimit = 1000 }, true},
		{"zero frame interval", func(c *Config) { c.FrameInterval.Duration = 0 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default(t.TempDir())
			tt.mutate(cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestEnsureDataDir(t *testing.T) {
	cfg := Default(filepath.Join(t.TempDir(), "nested", "skyfeed"))
	require.NoError(t, cfg.EnsureDataDir())
	info, err := os.Stat(cfg.DataDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
