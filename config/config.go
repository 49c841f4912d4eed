// Package config loads runtime settings from the environment and command line.
package config

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/lixenwraith/vi-pong/parameter"
	"github.com/lixenwraith/vi-pong/render"
)

var (
	ErrInvalidFPS     = errors.New("invalid fps")
	ErrInvalidKeyHold = errors.New("invalid key hold")
)

// Colors holds theme colors as "#rrggbb" strings
type Colors struct {
	Foreground  string `env:"COLOR_FG"`
	Background  string `env:"COLOR_BG"`
	PressedFill string `env:"COLOR_PRESSED"`
	PressedText string `env:"COLOR_PRESSED_TEXT"`
}

// Config is the game's runtime configuration
type Config struct {
	FPS      int           `env:"FPS"`
	Seed     uint64        `env:"SEED"` // 0 picks a time-based seed
	Keymap   string        `env:"KEYMAP"`
	KeyHold  time.Duration `env:"KEY_HOLD"`
	KeyDelay time.Duration `env:"KEY_DELAY"` // hold after a first press, before auto-repeat
	Debug    bool          `env:"DEBUG"`
	Colors   Colors
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		FPS:      parameter.DefaultFPS,
		KeyHold:  parameter.DefaultKeyHold,
		KeyDelay: parameter.DefaultKeyDelay,
		Colors: Colors{
			Foreground:  parameter.DefaultForeground,
			Background:  parameter.DefaultBackground,
			PressedFill: parameter.DefaultPressedFill,
			PressedText: parameter.DefaultPressedText,
		},
	}
}

// Load reads PONG_* environment variables over the defaults
func Load() (*Config, error) {
	cfg := Default()
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: parameter.EnvPrefix}); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// BindFlags registers command line overrides using the current values as defaults
func (c *Config) BindFlags(fs *flag.FlagSet) {
	fs.IntVar(&c.FPS, "fps", c.FPS, "frames (and simulation ticks) per second")
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "random seed, 0 for time based")
	fs.StringVar(&c.Keymap, "keymap", c.Keymap, "path to a TOML keymap override")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "write debug logs to "+parameter.LogDir+"/"+parameter.LogFileName)
}

// Validate checks value ranges
func (c *Config) Validate() error {
	if c.FPS < 1 || c.FPS > parameter.MaxFPS {
		return fmt.Errorf("%w: %d (want 1..%d)", ErrInvalidFPS, c.FPS, parameter.MaxFPS)
	}
	if c.KeyHold <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidKeyHold, c.KeyHold)
	}
	if c.KeyDelay <= 0 {
		return fmt.Errorf("%w: delay %v", ErrInvalidKeyHold, c.KeyDelay)
	}
	return nil
}

// ResolvedSeed returns Seed, or a time-based seed when it is zero
func (c *Config) ResolvedSeed(now time.Time) uint64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return uint64(now.UnixNano())
}

// Theme parses the configured colors
func (c *Config) Theme() (render.Theme, error) {
	t, err := render.ParseTheme(c.Colors.Foreground, c.Colors.Background, c.Colors.PressedFill, c.Colors.PressedText)
	if err != nil {
		return render.Theme{}, fmt.Errorf("theme: %w", err)
	}
	return t, nil
}
