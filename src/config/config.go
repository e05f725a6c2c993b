// Package config loads client configuration for the AutoViz desktop app.
// Values come from autoviz.toml with environment overrides; everything has a
// usable default so the app runs with no configuration at all.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config is the client configuration.
type Config struct {
	Server ServerConfig `toml:"server"`
	Log    LogConfig    `toml:"log"`
	Export ExportConfig `toml:"export"`
}

// ServerConfig points the client at one AutoViz service instance.
type ServerConfig struct {
	URL string `toml:"url"`
}

// LogConfig controls client logging.
type LogConfig struct {
	Level string `toml:"level"`
}

// ExportConfig controls where headless exports land.
type ExportConfig struct {
	Dir string `toml:"dir"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{URL: "http://localhost:5000"},
		Log:    LogConfig{Level: "info"},
		Export: ExportConfig{Dir: "exports"},
	}
}

// candidatePaths lists where a config file is looked up, in order.
func candidatePaths() []string {
	paths := []string{"autoviz.toml"}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "autoviz", "autoviz.toml"))
	}
	return paths
}

// Load reads the first config file found, applies environment overrides and
// returns the result. A missing file is not an error; a malformed one is.
func Load() (*Config, error) {
	cfg := Default()
	for _, p := range candidatePaths() {
		data, err := os.ReadFile(p)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("read %s: %w", p, err)
		}
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", p, err)
		}
		break
	}
	applyEnv(cfg)
	return cfg, nil
}

// applyEnv overlays AUTOVIZ_* environment variables. Used both by Load and
// directly by tests.
func applyEnv(cfg *Config) {
	if v := os.Getenv("AUTOVIZ_SERVER_URL"); v != "" {
		cfg.Server.URL = v
	}
	if v := os.Getenv("AUTOVIZ_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("AUTOVIZ_EXPORT_DIR"); v != "" {
		cfg.Export.Dir = v
	}
}

// Parse decodes a TOML document over the defaults, without touching the
// filesystem or environment.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
