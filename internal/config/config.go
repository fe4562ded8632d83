// Package config provides configuration management for ringtail.
package config

import (
	"errors"
	"time"
)

// Config holds the configuration for a ringtail session.
type Config struct {
	// Command is the program and arguments to run (required for run).
	Command []string

	// Capacity is the size of the output window in bytes (default: 64KiB).
	// Only the most recent Capacity bytes of output are retained.
	Capacity int

	// MaxLines is the maximum number of lines retained by the TUI output view (default: 10000).
	MaxLines int

	// Until stops the command once its output window contains this string.
	Until string

	// Timeout is the maximum duration of the command (default: 0 = no limit).
	Timeout time.Duration

	// WorkingDir is the directory the command runs in (default: ".").
	WorkingDir string

	// Minimal disables the TUI even when stdout is a terminal.
	Minimal bool

	// Follow streams output lines as they arrive in minimal mode.
	Follow bool

	// Quiet suppresses the spinner and status lines on stderr.
	Quiet bool

	// Theme is the colour theme for the TUI: "auto", "dark", or "light".
	// "auto" detects the terminal background colour automatically.
	// Default: "auto".
	Theme string
}

// DefaultCapacity is the default output window size in bytes (64KiB).
const DefaultCapacity = 64 * 1024

// MaxCapacity is the largest output window ringtail will allocate (1GiB).
const MaxCapacity = 1 << 30

// DefaultMaxLines is the default number of lines kept by the TUI.
const DefaultMaxLines = 10000

// NewConfig returns a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Capacity:   DefaultCapacity,
		MaxLines:   DefaultMaxLines,
		WorkingDir: ".",
		Theme:      "auto",
	}
}

// ValidTheme checks if the given string is a valid theme name.
func ValidTheme(s string) bool {
	switch s {
	case "auto", "dark", "light":
		return true
	default:
		return false
	}
}

// Validate checks the settings shared by every command.
// Returns an error if validation fails.
func (c *Config) Validate() error {
	if c.Capacity <= 0 {
		return errors.New("capacity must be positive")
	}
	if c.Capacity > MaxCapacity {
		return errors.New("capacity must not exceed 1GiB")
	}
	if c.MaxLines <= 0 {
		return errors.New("max lines must be positive")
	}
	if c.Timeout < 0 {
		return errors.New("timeout cannot be negative")
	}
	if !ValidTheme(c.Theme) {
		return errors.New("theme must be one of auto, dark, light")
	}
	return nil
}

// ValidateRun checks that the configuration can run a command.
func (c *Config) ValidateRun() error {
	if len(c.Command) == 0 || c.Command[0] == "" {
		return errors.New("command is required")
	}
	return c.Validate()
}
