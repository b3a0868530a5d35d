// Package config defines the wayfarer configuration, loaded through viper
// from a config file, environment variables (WAYFARER_ prefix), and flags.
package config

import (
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	apperrors "github.com/wayfarer-cli/wayfarer/internal/errors"
)

// Config represents the complete wayfarer configuration
type Config struct {
	API     APIConfig     `mapstructure:"api"`
	TUI     TUIConfig     `mapstructure:"tui"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// APIConfig controls how the planning service is reached
type APIConfig struct {
	// BaseURL is the planning service root, e.g. "http://localhost:8000"
	BaseURL string `mapstructure:"base_url"`
	// TimeoutSeconds bounds a single plan request. 0 disables the client
	// timeout; planning calls routinely run for more than a minute.
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

// TUIConfig controls the terminal UI behavior
type TUIConfig struct {
	// AltScreen runs the TUI in the terminal's alternate screen buffer
	AltScreen bool `mapstructure:"alt_screen"`
	// MaxWidth caps the rendered content width in columns
	MaxWidth int `mapstructure:"max_width"`
}

// LoggingConfig controls diagnostic logging
type LoggingConfig struct {
	// Level is one of DEBUG, INFO, WARN, ERROR
	Level string `mapstructure:"level"`
	// Dir is where wayfarer.log is written; empty logs to stderr
	Dir string `mapstructure:"dir"`
}

// Default returns a Config populated with default values
func Default() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:        "http://localhost:8000",
			TimeoutSeconds: 0,
		},
		TUI: TUIConfig{
			AltScreen: true,
			MaxWidth:  100,
		},
		Logging: LoggingConfig{
			Level: "INFO",
			Dir:   defaultLogDir(),
		},
	}
}

// SetDefaults registers all default values with viper so they apply even
// when no config file exists
func SetDefaults() {
	d := Default()
	viper.SetDefault("api.base_url", d.API.BaseURL)
	viper.SetDefault("api.timeout_seconds", d.API.TimeoutSeconds)
	viper.SetDefault("tui.alt_screen", d.TUI.AltScreen)
	viper.SetDefault("tui.max_width", d.TUI.MaxWidth)
	viper.SetDefault("logging.level", d.Logging.Level)
	viper.SetDefault("logging.dir", d.Logging.Dir)
}

// Load unmarshals the current viper state into a validated Config
func Load() (*Config, error) {
	cfg := Default()
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, apperrors.Wrap(err, "failed to parse configuration")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for values that cannot work
func (c *Config) Validate() error {
	u, err := url.Parse(c.API.BaseURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return apperrors.NewValidationError("base URL must be an absolute http(s) URL").
			WithField("api.base_url").
			WithValue(c.API.BaseURL)
	}
	if c.API.TimeoutSeconds < 0 {
		return apperrors.NewValidationError("timeout cannot be negative").
			WithField("api.timeout_seconds").
			WithValue(c.API.TimeoutSeconds)
	}
	if c.TUI.MaxWidth < 40 {
		return apperrors.NewValidationError("max width below 40 columns is unusable").
			WithField("tui.max_width").
			WithValue(c.TUI.MaxWidth)
	}
	return nil
}

// Timeout returns the API timeout as a duration; zero means no timeout
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.API.TimeoutSeconds) * time.Second
}

// ConfigDir returns the directory where the config file is expected
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "wayfarer")
}

func defaultLogDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".local", "state", "wayfarer")
}
