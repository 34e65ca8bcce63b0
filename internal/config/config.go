package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Config is the root configuration for reflectd.
type Config struct {
	Logging     LoggingConfig     `koanf:"logging" json:"logging"`
	History     HistoryConfig     `koanf:"history" json:"history"`
	Session     SessionConfig     `koanf:"session" json:"session"`
	Permissions PermissionsConfig `koanf:"permissions" json:"permissions"`
}

// LoggingConfig controls diagnostic output. Logs go to stderr so stdout
// stays pure report data.
type LoggingConfig struct {
	Level  string `koanf:"level" json:"level"`   // debug, info, warn, error
	Format string `koanf:"format" json:"format"` // console, json
}

// HistoryConfig locates the reflection documents to analyze.
type HistoryConfig struct {
	Dir string `koanf:"dir" json:"dir"`
}

// SessionConfig controls the session data collectors.
type SessionConfig struct {
	Commits     int      `koanf:"commits" json:"commits"`
	Timeout     Duration `koanf:"timeout" json:"timeout"`
	GitHubToken Secret   `koanf:"github_token" json:"github_token"`
}

// PermissionsConfig locates the Claude Code settings files to inspect.
type PermissionsConfig struct {
	ProjectSettings string `koanf:"project_settings" json:"project_settings"`
	HomeSettings    string `koanf:"home_settings" json:"home_settings"`
}

// applyDefaults sets default values for missing configuration fields.
func applyDefaults(cfg *Config) {
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "console"
	}

	if cfg.History.Dir == "" {
		cfg.History.Dir = filepath.Join("history", "reflections")
	}

	if cfg.Session.Commits == 0 {
		cfg.Session.Commits = 20
	}
	if cfg.Session.Timeout == 0 {
		cfg.Session.Timeout = Duration(30 * time.Second)
	}
	if !cfg.Session.GitHubToken.IsSet() {
		cfg.Session.GitHubToken = Secret(os.Getenv("GITHUB_TOKEN"))
	}

	if cfg.Permissions.ProjectSettings == "" {
		cfg.Permissions.ProjectSettings = filepath.Join(".claude", "settings.json")
	}
	if cfg.Permissions.HomeSettings == "" {
		if home, err := os.UserHomeDir(); err == nil {
			cfg.Permissions.HomeSettings = filepath.Join(home, ".claude", "settings.json")
		}
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid logging level %q (want debug, info, warn, or error)", c.Logging.Level)
	}

	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("invalid logging format %q (want console or json)", c.Logging.Format)
	}

	if c.Session.Commits < 1 {
		return fmt.Errorf("session commits must be positive, got %d", c.Session.Commits)
	}
	if c.Session.Timeout.Duration() < time.Second {
		return fmt.Errorf("session timeout too short: %s", c.Session.Timeout.Duration())
	}

	return nil
}

// Default returns the configuration used when no file or environment
// overrides are present.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}
