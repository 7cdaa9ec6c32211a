// Package config loads the application configuration from a YAML file and
// fills in defaults. Everything here is optional: a missing file simply
// yields the default configuration, since the pipeline itself needs no
// configuration at all.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the application settings.
type Config struct {
	// ListenAddr is the HTTP reporting server bind address.
	ListenAddr string `yaml:"listen_addr"`

	// PlazaNamesFile optionally points at a YAML file of exit-code →
	// display-name pairs merged over the built-in plaza table.
	PlazaNamesFile string `yaml:"plaza_names_file"`

	// TopLocationsLimit is the default size of the location ranking.
	TopLocationsLimit int `yaml:"top_locations_limit"`

	// MaxUploadBytes caps statement uploads on the server.
	MaxUploadBytes int64 `yaml:"max_upload_bytes"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		ListenAddr:        ":8085",
		TopLocationsLimit: 10,
		MaxUploadBytes:    32 << 20,
		LogLevel:          "info",
	}
}

// Load reads the configuration file at path. A nonexistent file is not an
// error — the defaults apply.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}
	applyDefaults(cfg)
	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration in %s: %w", path, err)
	}
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	def := Default()
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = def.ListenAddr
	}
	if cfg.TopLocationsLimit == 0 {
		cfg.TopLocationsLimit = def.TopLocationsLimit
	}
	if cfg.MaxUploadBytes == 0 {
		cfg.MaxUploadBytes = def.MaxUploadBytes
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = def.LogLevel
	}
}

func validate(cfg *Config) error {
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level %q is not one of debug, info, warn, error", cfg.LogLevel)
	}
	if cfg.TopLocationsLimit < 0 {
		return fmt.Errorf("top_locations_limit must not be negative")
	}
	if cfg.MaxUploadBytes < 0 {
		return fmt.Errorf("max_upload_bytes must not be negative")
	}
	return nil
}
