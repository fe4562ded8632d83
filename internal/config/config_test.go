package config

import (
	"testing"
	"time"
)

func TestNewConfig_ReturnsConfigWithDefaults(t *testing.T) {
	cfg := NewConfig()

	if cfg == nil {
		t.Fatal("NewConfig() returned nil")
	}

	if cfg.Capacity != 64*1024 {
		t.Errorf("Capacity = %d; want %d", cfg.Capacity, 64*1024)
	}

	if cfg.MaxLines != 10000 {
		t.Errorf("MaxLines = %d; want 10000", cfg.MaxLines)
	}

	if cfg.WorkingDir != "." {
		t.Errorf("WorkingDir = %q; want %q", cfg.WorkingDir, ".")
	}

	if cfg.Theme != "auto" {
		t.Errorf("Theme = %q; want %q", cfg.Theme, "auto")
	}

	// Check zero values for non-defaulted fields
	if cfg.Timeout != 0 {
		t.Errorf("Timeout = %v; want 0", cfg.Timeout)
	}

	if cfg.Until != "" {
		t.Errorf("Until = %q; want empty string", cfg.Until)
	}

	if cfg.Minimal || cfg.Follow || cfg.Quiet {
		t.Errorf("Minimal, Follow, Quiet = %t, %t, %t; want all false", cfg.Minimal, cfg.Follow, cfg.Quiet)
	}

	if len(cfg.Command) != 0 {
		t.Errorf("Command = %v; want empty", cfg.Command)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr string
	}{
		{
			name:   "defaults are valid",
			modify: func(*Config) {},
		},
		{
			name:    "zero capacity",
			modify:  func(c *Config) { c.Capacity = 0 },
			wantErr: "capacity must be positive",
		},
		{
			name:    "negative capacity",
			modify:  func(c *Config) { c.Capacity = -1 },
			wantErr: "capacity must be positive",
		},
		{
			name:    "capacity over limit",
			modify:  func(c *Config) { c.Capacity = MaxCapacity + 1 },
			wantErr: "capacity must not exceed 1GiB",
		},
		{
			name:    "zero max lines",
			modify:  func(c *Config) { c.MaxLines = 0 },
			wantErr: "max lines must be positive",
		},
		{
			name:    "negative timeout",
			modify:  func(c *Config) { c.Timeout = -time.Second },
			wantErr: "timeout cannot be negative",
		},
		{
			name:    "unknown theme",
			modify:  func(c *Config) { c.Theme = "neon" },
			wantErr: "theme must be one of auto, dark, light",
		},
		{
			name:   "light theme",
			modify: func(c *Config) { c.Theme = "light" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.modify(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v; want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() returned nil; want %q", tt.wantErr)
			}
			if err.Error() != tt.wantErr {
				t.Errorf("error message = %q; want %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestConfig_ValidateRun_ReturnsErrorWhenCommandEmpty(t *testing.T) {
	cfg := NewConfig()

	err := cfg.ValidateRun()

	if err == nil {
		t.Fatal("ValidateRun() returned nil; want error for empty Command")
	}

	expectedMsg := "command is required"
	if err.Error() != expectedMsg {
		t.Errorf("error message = %q; want %q", err.Error(), expectedMsg)
	}
}

func TestConfig_ValidateRun_ChecksSharedSettings(t *testing.T) {
	cfg := NewConfig()
	cfg.Command = []string{"echo", "hi"}
	cfg.Capacity = 0

	if err := cfg.ValidateRun(); err == nil {
		t.Error("ValidateRun() returned nil; want capacity error")
	}

	cfg.Capacity = 16
	if err := cfg.ValidateRun(); err != nil {
		t.Errorf("ValidateRun() error = %v; want nil", err)
	}
}

func TestValidTheme(t *testing.T) {
	tests := []struct {
		theme string
		want  bool
	}{
		{"auto", true},
		{"dark", true},
		{"light", true},
		{"", false},
		{"Dark", false},
	}

	for _, tt := range tests {
		if got := ValidTheme(tt.theme); got != tt.want {
			t.Errorf("ValidTheme(%q) = %t; want %t", tt.theme, got, tt.want)
		}
	}
}
