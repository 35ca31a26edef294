// Copyright 2026 The Apify CLI Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"gopkg.in/yaml.v3"
)

// Environment variables read by [Load].
const (
	ConfigEnv           = "APIFY_CLI_CONFIG"
	HomeEnv             = "APIFY_CLI_HOME"
	DebugEnv            = "APIFY_CLI_DEBUG"
	DisableTelemetryEnv = "APIFY_CLI_DISABLE_TELEMETRY"
)

// Config is the CLI configuration.
type Config struct {
	// Home holds CLI state (telemetry.json and similar). Defaults to
	// ~/.apify.
	Home string `yaml:"home"`

	// Debug enables debug logging.
	Debug bool `yaml:"debug"`

	Telemetry TelemetryConfig `yaml:"telemetry"`
	Runtimes  RuntimesConfig  `yaml:"runtimes"`
	Storage   StorageConfig   `yaml:"storage"`
	Platform  PlatformConfig  `yaml:"platform"`
}

// TelemetryConfig configures usage telemetry.
type TelemetryConfig struct {
	// Disabled turns telemetry off regardless of the stored state.
	Disabled bool `yaml:"disabled"`
}

// RuntimesConfig configures runtime detection.
type RuntimesConfig struct {
	// ProbeTimeout bounds each interpreter version probe, as a Go
	// duration string ("10s").
	ProbeTimeout string `yaml:"probe_timeout"`
}

// StorageConfig configures local run storage.
type StorageConfig struct {
	// Directory is the local storage directory, relative to the
	// project root unless absolute.
	Directory string `yaml:"directory"`
}

// PlatformConfig configures the platform API client.
type PlatformConfig struct {
	APIBaseURL string `yaml:"api_base_url"`
}

// Default returns the default configuration.
func Default() *Config {
	homeDir, _ := os.UserHomeDir()
	return &Config{
		Home: filepath.Join(homeDir, ".apify"),
		Runtimes: RuntimesConfig{
			ProbeTimeout: "10s",
		},
		Storage: StorageConfig{
			Directory: "storage",
		},
		Platform: PlatformConfig{
			APIBaseURL: "https://api.apify.com",
		},
	}
}

// Load builds the configuration from defaults, the file named by
// APIFY_CLI_CONFIG (when set) and environment overrides.
func Load() (*Config, error) {
	cfg := Default()
	if path := os.Getenv(ConfigEnv); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, fmt.Errorf("loading %s (from %s): %w", path, ConfigEnv, err)
		}
	}
	cfg.applyEnvironment(os.Getenv)
	cfg.expandVariables()
	return cfg, nil
}

// LoadFile loads configuration from a specific file path, without
// environment overrides.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	if err := cfg.loadFile(path); err != nil {
		return nil, err
	}
	cfg.expandVariables()
	return cfg, nil
}

// loadFile loads a single configuration file, merging into the current config.
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, c)
}

// applyEnvironment applies APIFY_CLI_* overrides.
func (c *Config) applyEnvironment(getenv func(string) string) {
	if home := getenv(HomeEnv); home != "" {
		c.Home = home
	}
	if getenv(DebugEnv) != "" {
		c.Debug = true
	}
	if TelemetryDisabledByEnv(getenv) {
		c.Telemetry.Disabled = true
	}
}

// TelemetryDisabledByEnv reports whether APIFY_CLI_DISABLE_TELEMETRY
// disables telemetry: any non-empty value other than "false" or "0".
func TelemetryDisabledByEnv(getenv func(string) string) bool {
	value := getenv(DisableTelemetryEnv)
	return value != "" && value != "false" && value != "0"
}

// ProbeTimeoutDuration parses Runtimes.ProbeTimeout. Empty means zero,
// which callers treat as their default.
func (c *Config) ProbeTimeoutDuration() (time.Duration, error) {
	if c.Runtimes.ProbeTimeout == "" {
		return 0, nil
	}
	return time.ParseDuration(c.Runtimes.ProbeTimeout)
}

// expandVariables expands ${VAR} and ${VAR:-default} patterns in paths.
func (c *Config) expandVariables() {
	vars := map[string]string{
		"HOME": os.Getenv("HOME"),
	}
	c.Home = expandVars(c.Home, vars)
	c.Storage.Directory = expandVars(c.Storage.Directory, vars)
}

var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

func expandVars(s string, vars map[string]string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}

		name := parts[1]
		defaultValue := ""
		if len(parts) >= 3 {
			defaultValue = parts[2]
		}

		// Check provided vars first, then environment.
		if value, ok := vars[name]; ok && value != "" {
			return value
		}
		if value := os.Getenv(name); value != "" {
			return value
		}
		return defaultValue
	})
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error

	if c.Home == "" {
		errs = append(errs, fmt.Errorf("home is required"))
	}
	if c.Storage.Directory == "" {
		errs = append(errs, fmt.Errorf("storage.directory is required"))
	}
	if timeout, err := c.ProbeTimeoutDuration(); err != nil {
		errs = append(errs, fmt.Errorf("runtimes.probe_timeout: %w", err))
	} else if timeout < 0 {
		errs = append(errs, fmt.Errorf("runtimes.probe_timeout must not be negative"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// TelemetryStatePath is the file holding the telemetry state.
func (c *Config) TelemetryStatePath() string {
	return filepath.Join(c.Home, "telemetry.json")
}
