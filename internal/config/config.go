// Package config reads and writes minijava.toml, the optional per-project settings file.
// Command-line flags override anything set here.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

const FileName = "minijava.toml"

// Config mirrors minijava.toml
type Config struct {
	Debug               bool `toml:"debug"`                 // print phase progress and tokens
	Dump                bool `toml:"dump"`                  // print the symbol tables as JSON
	ResolveForwardBases bool `toml:"resolve_forward_bases"` // link bases declared later in the file
	Color               bool `toml:"color"`                 // ANSI colors in output
}

// Default is the configuration used when no file exists
func Default() *Config {
	return &Config{Color: true}
}

// Load reads path. A missing file is not an error and yields Default().
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return cfg, nil
}

// LoadDir loads minijava.toml from dir
func LoadDir(dir string) (*Config, error) {
	return Load(filepath.Join(dir, FileName))
}

// Save writes cfg to path
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
