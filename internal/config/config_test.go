package config

import (
	"testing"
	"time"

	apperrors "github.com/wayfarer-cli/wayfarer/internal/errors"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg == nil {
		t.Fatal("Default() returned nil")
	}
	if cfg.API.BaseURL != "http://localhost:8000" {
		t.Errorf("API.BaseURL = %q, want %q", cfg.API.BaseURL, "http://localhost:8000")
	}
	if cfg.API.TimeoutSeconds != 0 {
		t.Errorf("API.TimeoutSeconds = %d, want 0 (no client timeout)", cfg.API.TimeoutSeconds)
	}
	if !cfg.TUI.AltScreen {
		t.Error("TUI.AltScreen should be true by default")
	}
	if cfg.TUI.MaxWidth != 100 {
		t.Errorf("TUI.MaxWidth = %d, want 100", cfg.TUI.MaxWidth)
	}
	if cfg.Logging.Level != "INFO" {
		t.Errorf("Logging.Level = %q, want INFO", cfg.Logging.Level)
	}
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("default configuration must validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		wantOK bool
	}{
		{"https base URL", func(c *Config) { c.API.BaseURL = "https://planner.example.com" }, true},
		{"missing scheme", func(c *Config) { c.API.BaseURL = "planner.example.com" }, false},
		{"bad scheme", func(c *Config) { c.API.BaseURL = "ftp://planner.example.com" }, false},
		{"empty base URL", func(c *Config) { c.API.BaseURL = "" }, false},
		{"negative timeout", func(c *Config) { c.API.TimeoutSeconds = -5 }, false},
		{"narrow width", func(c *Config) { c.TUI.MaxWidth = 10 }, false},
		{"generous timeout", func(c *Config) { c.API.TimeoutSeconds = 300 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantOK && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
			if !tt.wantOK {
				if err == nil {
					t.Fatal("Validate() = nil, want error")
				}
				var vErr *apperrors.ValidationError
				if !apperrors.As(err, &vErr) {
					t.Errorf("Validate() error type = %T, want *ValidationError", err)
				}
			}
		})
	}
}

func TestTimeout(t *testing.T) {
	cfg := Default()
	if cfg.Timeout() != 0 {
		t.Errorf("Timeout() = %v, want 0", cfg.Timeout())
	}
	cfg.API.TimeoutSeconds = 90
	if cfg.Timeout() != 90*time.Second {
		t.Errorf("Timeout() = %v, want 90s", cfg.Timeout())
	}
}
