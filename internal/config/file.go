// Package config provides configuration management for ringtail.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/dustin/go-humanize"
)

// FileConfig represents the configuration loaded from .ringtail/config.toml.
type FileConfig struct {
	// Capacity is the output window size as a human readable size, e.g. "64KiB" or "1MB".
	Capacity string `toml:"capacity"`

	// MaxLines is the number of lines kept by the TUI output view.
	MaxLines int `toml:"max_lines"`

	// Until is the default stop pattern.
	Until string `toml:"until"`

	// Theme is the TUI colour theme: "auto", "dark", or "light".
	Theme string `toml:"theme"`
}

// ConfigDir is the directory, relative to the working directory, holding config.toml.
const ConfigDir = ".ringtail"

// LoadFileConfig reads configuration from .ringtail/config.toml in the working directory.
// Returns nil if the file doesn't exist (not an error).
func LoadFileConfig(workingDir string) (*FileConfig, error) {
	configPath := filepath.Join(workingDir, ConfigDir, "config.toml")
	return LoadFileConfigFrom(configPath)
}

// LoadFileConfigFrom reads configuration from a specific file path.
// Returns nil if the file doesn't exist (not an error).
func LoadFileConfigFrom(configPath string) (*FileConfig, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var cfg FileConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Apply copies the values set in the file onto cfg.
func (fc *FileConfig) Apply(cfg *Config) error {
	if fc.Capacity != "" {
		n, err := ParseCapacity(fc.Capacity)
		if err != nil {
			return fmt.Errorf("capacity: %w", err)
		}
		cfg.Capacity = n
	}
	if fc.MaxLines != 0 {
		cfg.MaxLines = fc.MaxLines
	}
	if fc.Until != "" {
		cfg.Until = fc.Until
	}
	if fc.Theme != "" {
		cfg.Theme = fc.Theme
	}
	return nil
}

// ParseCapacity parses a size such as "4096", "64KiB" or "1MB" into bytes.
func ParseCapacity(s string) (int, error) {
	n, err := humanize.ParseBytes(s)
	if err != nil {
		return 0, err
	}
	if n > MaxCapacity {
		return 0, fmt.Errorf("%s exceeds the 1GiB limit", s)
	}
	return int(n), nil
}
