package config

import (
	"fmt"
	"os"
	"strconv"
)

// Environment variables read by ApplyEnv.
const (
	EnvCapacity = "RINGTAIL_CAPACITY"
	EnvMaxLines = "RINGTAIL_MAX_LINES"
	EnvTheme    = "RINGTAIL_THEME"
	EnvUntil    = "RINGTAIL_UNTIL"
)

// ApplyEnv overrides cfg with any RINGTAIL_* environment variables that are set.
func ApplyEnv(cfg *Config) error {
	if v := os.Getenv(EnvCapacity); v != "" {
		n, err := ParseCapacity(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvCapacity, err)
		}
		cfg.Capacity = n
	}

	if v := os.Getenv(EnvMaxLines); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return fmt.Errorf("%s: invalid line count %q", EnvMaxLines, v)
		}
		cfg.MaxLines = n
	}

	if v := os.Getenv(EnvTheme); v != "" {
		cfg.Theme = v
	}

	if v := os.Getenv(EnvUntil); v != "" {
		cfg.Until = v
	}

	return nil
}
