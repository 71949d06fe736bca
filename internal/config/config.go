package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Color modes for terminal output.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds the tortest preferences.
type Config struct {
	Settings  string   `toml:"settings"`  // base settings file
	Overrides []string `toml:"overrides"` // merged on top of the base, in order
	Color     string   `toml:"color"`     // "auto", "always" or "never"
}

// Default returns the default configuration.
func Default() Config {
	return Config{Color: ColorAuto}
}

// Load reads config from ~/.config/tortest/config.toml.
// Returns Default() if the file doesn't exist (no error).
// Returns an error only if the file exists but is invalid.
func Load() (Config, error) {
	path, err := configPath()
	if err != nil {
		return Default(), nil
	}
	return LoadFrom(path)
}

// LoadFrom reads config from an explicit path, with Load's semantics.
func LoadFrom(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.Color != ColorAuto && cfg.Color != ColorAlways && cfg.Color != ColorNever {
		return Default(), fmt.Errorf("invalid color %q: must be %q, %q or %q",
			cfg.Color, ColorAuto, ColorAlways, ColorNever)
	}

	// Expand ~ (shell doesn't expand inside config files).
	if cfg.Settings, err = expandPath(cfg.Settings); err != nil {
		return Default(), fmt.Errorf("expand settings: %w", err)
	}
	for i, p := range cfg.Overrides {
		if cfg.Overrides[i], err = expandPath(p); err != nil {
			return Default(), fmt.Errorf("expand overrides[%d]: %w", i, err)
		}
	}

	return cfg, nil
}

// SettingsPaths returns the base settings file followed by the overrides.
// Empty when no settings file is configured.
func (c Config) SettingsPaths() []string {
	if c.Settings == "" {
		return nil
	}
	return append([]string{c.Settings}, c.Overrides...)
}

// configPath returns the path to the config file.
func configPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "tortest", "config.toml"), nil
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	if len(path) >= 2 && path[:2] == "~/" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expand ~: %w", err)
		}
		return filepath.Join(home, path[2:]), nil
	}
	if path == "~" {
		return os.UserHomeDir()
	}
	return path, nil
}
