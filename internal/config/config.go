// Package config loads turtlepreter settings from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds every setting the command line can also override.
type Config struct {
	Program string `env:"TURTLE_PROGRAM" envDefault:"turtle"`

	Title  string `env:"TURTLE_TITLE" envDefault:"Turtlepreter"`
	Width  int    `env:"TURTLE_WIDTH" envDefault:"1024"`
	Height int    `env:"TURTLE_HEIGHT" envDefault:"720"`

	// StartX and StartY override the program's starting position when set.
	StartX *float64 `env:"TURTLE_START_X"`
	StartY *float64 `env:"TURTLE_START_Y"`

	// Stamina and Oxygen override the capacity of resource actors.
	Stamina int `env:"TURTLE_STAMINA"`
	Oxygen  int `env:"TURTLE_OXYGEN"`

	Image         string        `env:"TURTLE_IMAGE"`
	Script        string        `env:"TURTLE_SCRIPT"`
	ScreenshotDir string        `env:"TURTLE_SCREENSHOT_DIR" envDefault:"screenshots"`
	Tween         float32       `env:"TURTLE_TWEEN" envDefault:"0.25"`
	RunBudget     time.Duration `env:"TURTLE_RUN_BUDGET" envDefault:"2s"`
	Debug         bool          `env:"TURTLE_DEBUG"`

	MetricsAddr string `env:"TURTLE_METRICS_ADDR"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
}

// Load reads the configuration from the process environment.
func Load() (Config, error) {
	return parse(env.Options{})
}

// LoadFrom reads the configuration from vars instead of the process
// environment.
func LoadFrom(vars map[string]string) (Config, error) {
	return parse(env.Options{Environment: vars})
}

func parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings no component could honor.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Width, c.Height)
	}
	if c.Stamina < 0 || c.Oxygen < 0 {
		return fmt.Errorf("resource capacity must not be negative")
	}
	if c.Tween < 0 {
		return fmt.Errorf("tween duration must not be negative")
	}
	return nil
}
