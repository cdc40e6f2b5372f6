// Package config loads application settings from defaults, an optional YAML
// file and KITCHENTIMER_* environment variables, in that order of precedence.
//
// Environment variables: KITCHENTIMER_CONFIG, KITCHENTIMER_FRONTEND,
// KITCHENTIMER_UI_LANG, KITCHENTIMER_LOG_LEVEL, KITCHENTIMER_LOG_DEV,
// KITCHENTIMER_LOG_FILE, KITCHENTIMER_WINDOW_WIDTH, KITCHENTIMER_WINDOW_HEIGHT.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "KITCHENTIMER"

// Frontends.
const (
	FrontendGUI = "gui"
	FrontendTUI = "tui"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("invalid config")

// Config holds all application configuration.
type Config struct {
	Frontend string       `yaml:"frontend" envconfig:"FRONTEND"`
	Lang     string       `yaml:"lang" envconfig:"UI_LANG"`
	Logging  LogConfig    `yaml:"logging" envconfig:"LOG"`
	Window   WindowConfig `yaml:"window" envconfig:"WINDOW"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `yaml:"level" envconfig:"LEVEL"`
	Development bool   `yaml:"development" envconfig:"DEV"`
	// File receives log output instead of stderr when set. The terminal
	// frontend discards logs without it.
	File string `yaml:"file" envconfig:"FILE"`
}

// WindowConfig holds the GUI window size.
type WindowConfig struct {
	Width  int `yaml:"width" envconfig:"WIDTH"`
	Height int `yaml:"height" envconfig:"HEIGHT"`
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Frontend: FrontendGUI,
		Lang:     "",
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
		Window: WindowConfig{
			Width:  360,
			Height: 420,
		},
	}
}

// Load builds the configuration. The YAML file named by KITCHENTIMER_CONFIG,
// if set, overrides defaults; environment variables override both.
func Load() (*Config, error) {
	cfg := Default()

	if path := os.Getenv(EnvPrefix + "_CONFIG"); path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return nil, err
		}
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOrDefault loads configuration or returns the defaults on any error.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

// Validate checks the values Load cannot coerce.
func (c *Config) Validate() error {
	switch c.Frontend {
	case FrontendGUI, FrontendTUI:
	default:
		return fmt.Errorf("%w: frontend %q (want %q or %q)", ErrInvalid, c.Frontend, FrontendGUI, FrontendTUI)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	return nil
}
