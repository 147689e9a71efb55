package app

import (
	"fmt"

	"github.com/vk/amazingnumbers/internal/config"
)

const (
	defaultPrompt    = "Enter a request: "
	defaultLogLevel  = "warn"
	defaultLogFormat = "text"
)

// Config holds all the necessary configuration for an App instance to run.
// Empty fields are filled from the settings file, then from defaults.
type Config struct {
	ConfigPath string // .hcl file or directory, optional

	LogFormat string
	LogLevel  string
	Prompt    string
	Banner    *bool
}

// NewConfig validates the values given on the command line.
func NewConfig(cfg Config) (*Config, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks every field that is already set.
func (c *Config) Validate() error {
	switch c.LogFormat {
	case "", "text", "json":
	default:
		return fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", c.LogFormat)
	}
	switch c.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", c.LogLevel)
	}
	return nil
}

// ApplySettings fills the fields the command line left empty.
func (c *Config) ApplySettings(s *config.Settings) {
	if s == nil {
		return
	}
	if c.LogFormat == "" && s.LogFormat != nil {
		c.LogFormat = *s.LogFormat
	}
	if c.LogLevel == "" && s.LogLevel != nil {
		c.LogLevel = *s.LogLevel
	}
	if c.Prompt == "" && s.Prompt != nil {
		c.Prompt = *s.Prompt
	}
	if c.Banner == nil && s.Banner != nil {
		banner := *s.Banner
		c.Banner = &banner
	}
}

func (c *Config) applyDefaults() {
	if c.LogFormat == "" {
		c.LogFormat = defaultLogFormat
	}
	if c.LogLevel == "" {
		c.LogLevel = defaultLogLevel
	}
	if c.Prompt == "" {
		c.Prompt = defaultPrompt
	}
	if c.Banner == nil {
		banner := true
		c.Banner = &banner
	}
}
