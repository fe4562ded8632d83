package config

import "testing"

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvCapacity, "8KiB")
	t.Setenv(EnvMaxLines, "250")
	t.Setenv(EnvTheme, "light")
	t.Setenv(EnvUntil, "listening on")

	cfg := NewConfig()
	if err := ApplyEnv(cfg); err != nil {
		t.Fatalf("ApplyEnv() error = %v", err)
	}

	if cfg.Capacity != 8192 {
		t.Errorf("Capacity = %d, want 8192", cfg.Capacity)
	}
	if cfg.MaxLines != 250 {
		t.Errorf("MaxLines = %d, want 250", cfg.MaxLines)
	}
	if cfg.Theme != "light" {
		t.Errorf("Theme = %q, want %q", cfg.Theme, "light")
	}
	if cfg.Until != "listening on" {
		t.Errorf("Until = %q, want %q", cfg.Until, "listening on")
	}
}

func TestApplyEnv_UnsetLeavesConfig(t *testing.T) {
	t.Setenv(EnvCapacity, "")
	t.Setenv(EnvMaxLines, "")
	t.Setenv(EnvTheme, "")
	t.Setenv(EnvUntil, "")

	cfg := NewConfig()
	if err := ApplyEnv(cfg); err != nil {
		t.Fatalf("ApplyEnv() error = %v", err)
	}
	if cfg.Capacity != DefaultCapacity || cfg.MaxLines != DefaultMaxLines {
		t.Errorf("ApplyEnv() changed defaults: %+v", cfg)
	}
}

func TestApplyEnv_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"bad capacity", EnvCapacity, "huge"},
		{"bad max lines", EnvMaxLines, "many"},
		{"zero max lines", EnvMaxLines, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			if err := ApplyEnv(NewConfig()); err == nil {
				t.Errorf("ApplyEnv() with %s=%q error = nil, want error", tt.key, tt.value)
			}
		})
	}
}
