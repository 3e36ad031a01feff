// Package config loads the client configuration from <data dir>/config.json
// with environment overrides.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"skyfeed/internal/bsky"
	"skyfeed/internal/jsonutil"
)

// Environment overrides.
const (
	DataDirEnv = "SKYFEED_DATA_DIR"
	ServiceEnv = "SKYFEED_SERVICE"
	DebugEnv   = "SKYFEED_DEBUG"
)

// FileName is the config file inside the data directory.
const FileName = "config.json"

// DefaultFrameInterval is how often the UI polls pending work and redraws.
const DefaultFrameInterval = 250 * time.Millisecond

// Duration is a time.Duration written as a string like "250ms" in JSON.
type Duration struct {
	time.Duration
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Duration) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("duration must be a string: %w", err)
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// Config holds the application configuration.
type Config struct {
	Service           string   `json:"service,omitempty"`
	LogFile           string   `json:"log_file,omitempty"`
	Debug             bool     `json:"debug,omitempty"`
	TimelineLimit     int      `json:"timeline_limit,omitempty"`
	NotificationLimit int      `json:"notification_limit,omitempty"`
	FrameInterval     Duration `json:"frame_interval,omitempty"`

	// DataDir holds config.json, session.json and the default log file.
	DataDir string `json:"-"`
}

// Default returns the configuration used when nothing is set.
func Default(dataDir string) *Config {
	return &Config{
		Service:           bsky.DefaultService,
		LogFile:           filepath.Join(dataDir, "debug.log"),
		TimelineLimit:     bsky.DefaultTimelineLimit,
		NotificationLimit: bsky.DefaultNotificationLimit,
		FrameInterval:     Duration{DefaultFrameInterval},
		DataDir:           dataDir,
	}
}

// DefaultDataDir is $XDG_DATA_HOME/skyfeed, falling back to
// ~/.local/share/skyfeed.
func DefaultDataDir() (string, error) {
	if base := os.Getenv("XDG_DATA_HOME"); base != "" {
		return filepath.Join(base, "skyfeed"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "share", "skyfeed"), nil
}

// Load resolves the data directory (dataDir if set, then SKYFEED_DATA_DIR,
// then DefaultDataDir), reads config.json from it if present and applies
// environment overrides. A missing file yields the defaults.
func Load(dataDir string) (*Config, error) {
	if dataDir == "" {
		dataDir = os.Getenv(DataDirEnv)
	}
	if dataDir == "" {
		var err error
		if dataDir, err = DefaultDataDir(); err != nil {
			return nil, fmt.Errorf("resolve data dir: %w", err)
		}
	}

	cfg := Default(dataDir)
	data, err := os.ReadFile(cfg.Path())
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	default:
		if err := jsonutil.UnmarshalWithContext(data, cfg, "parse "+cfg.Path()); err != nil {
			return nil, err
		}
	}

	if v := os.Getenv(ServiceEnv); v != "" {
		cfg.Service = v
	}
	if v := os.Getenv(DebugEnv); v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", DebugEnv, err)
		}
		cfg.Debug = debug
	}
	return cfg, nil
}

// Path returns the config file location.
func (c *Config) Path() string {
	return filepath.Join(c.DataDir, FileName)
}

// Validate rejects settings the client cannot run with.
func (c *Config) Validate() error {
	u, err := url.Parse(c.Service)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("service %q must be an http(s) URL", c.Service)
	}
	if c.TimelineLimit < 1 || c.TimelineLimit > 100 {
		return fmt.Errorf("timeline_limit must be between 1 and 100, got %d", c.TimelineLimit)
	}
	if c.NotificationLimit < 1 || c.NotificationLimit > 100 {
		return fmt.Errorf("notification_limit must be between 1 and 100, got %d", c.NotificationLimit)
	}
	if c.FrameInterval.Duration <= 0 {
		return fmt.Errorf("frame_interval must be positive, got %s", c.FrameInterval)
	}
	if c.DataDir == "" {
		return errors.New("data dir is not set")
	}
	return nil
}

// EnsureDataDir creates the data directory.
func (c *Config) EnsureDataDir() error {
	if err := os.MkdirAll(c.DataDir, 0o700); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	return nil
}
