// Package config loads the YAML configuration of the memory game.
package config

import (
	"fmt"

	"github.com/charmbracelet/log"
)

type Config struct {
	Window   WindowConfig      `yaml:"window"`
	Seed     uint64            `yaml:"seed"`
	LogLevel string            `yaml:"log_level"`
	Colors   map[string]string `yaml:"colors"`
}

type WindowConfig struct {
	// logical screen size, cards are laid out for this
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Scale  int    `yaml:"scale"`
	Title  string `yaml:"title"`
	VSync  bool   `yaml:"vsync"`
}

// Default returns the configuration used when nothing else can be loaded.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Width:  256,
			Height: 240,
			Scale:  4,
			Title:  "Memory",
			VSync:  true,
		},
		Seed:     0,
		LogLevel: "info",
	}
}

// Validate reports the first problem with cfg.
func (cfg *Config) Validate() error {
	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Window.Scale <= 0 {
		return fmt.Errorf("window scale must be positive, got %d", cfg.Window.Scale)
	}
	if _, err := log.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("log_level %q: %w", cfg.LogLevel, err)
	}
	return nil
}
