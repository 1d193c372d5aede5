// Package config provides YAML/TOML match configuration loading, presets
// and validation for pingpong.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/vovakirdan/pingpong/internal/core"
	"github.com/vovakirdan/pingpong/internal/games/pong"
)

// MatchConfig contains all configuration for a match and its display.
type MatchConfig struct {
	Screen  ScreenConfig  `yaml:"screen" toml:"screen"`
	Ball    BallConfig    `yaml:"ball" toml:"ball"`
	Paddles PaddlesConfig `yaml:"paddles" toml:"paddles"`
	Rules   RulesConfig   `yaml:"rules" toml:"rules"`
	Display DisplayConfig `yaml:"display" toml:"display"`
}

// ScreenConfig defines the world size in pixels.
type ScreenConfig struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// BallConfig defines the ball.
type BallConfig struct {
	Speed  float64 `yaml:"speed" toml:"speed"` // Initial speed on each axis, px/s
	Radius float64 `yaml:"radius" toml:"radius"`
}

// PaddlesConfig defines both paddles.
type PaddlesConfig struct {
	Speed      float64 `yaml:"speed" toml:"speed"`
	Width      float64 `yaml:"width" toml:"width"`
	Height     float64 `yaml:"height" toml:"height"`
	Inset      float64 `yaml:"inset" toml:"inset"` // Distance of paddle centers from the side edges
	LeftColor  string  `yaml:"left_color" toml:"left_color"`
	RightColor string  `yaml:"right_color" toml:"right_color"`
	Bounds     string  `yaml:"bounds" toml:"bounds"` // "fixed" or "entity"
}

// RulesConfig defines collision response.
type RulesConfig struct {
	BounceFactor float64 `yaml:"bounce_factor" toml:"bounce_factor"`
}

// DisplayConfig defines terminal presentation parameters.
// None of these affect the simulation.
type DisplayConfig struct {
	TickRate      int  `yaml:"tick_rate" toml:"tick_rate"`
	ShowFPS       bool `yaml:"show_fps" toml:"show_fps"`
	HoldMillis    int  `yaml:"hold_ms" toml:"hold_ms"`         // How long a key counts as held after its last repeat
	MaxStepMillis int  `yaml:"max_step_ms" toml:"max_step_ms"` // Upper bound on a single frame delta
}

// Hold returns the key hold window.
func (d DisplayConfig) Hold() time.Duration {
	return time.Duration(d.HoldMillis) * time.Millisecond
}

// MaxStep returns the longest frame delta fed to the simulation.
func (d DisplayConfig) MaxStep() time.Duration {
	return time.Duration(d.MaxStepMillis) * time.Millisecond
}

// Validate checks every invariant and returns all violations joined.
func (c MatchConfig) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("config: %s must be positive, got %v", name, v))
		}
	}

	positive("screen.width", c.Screen.Width)
	positive("screen.height", c.Screen.Height)
	positive("ball.speed", c.Ball.Speed)
	positive("ball.radius", c.Ball.Radius)
	positive("paddles.speed", c.Paddles.Speed)
	positive("paddles.width", c.Paddles.Width)
	positive("paddles.height", c.Paddles.Height)
	positive("paddles.inset", c.Paddles.Inset)

	if c.Paddles.Height > c.Screen.Height {
		errs = append(errs, fmt.Errorf("config: paddles.height %v exceeds screen.height %v", c.Paddles.Height, c.Screen.Height))
	}
	if c.Paddles.Inset >= c.Screen.Width/2 {
		errs = append(errs, fmt.Errorf("config: paddles.inset %v must be less than half of screen.width", c.Paddles.Inset))
	}
	if _, ok := core.ParseColor(c.Paddles.LeftColor); !ok {
		errs = append(errs, fmt.Errorf("config: unknown paddles.left_color %q", c.Paddles.LeftColor))
	}
	if _, ok := core.ParseColor(c.Paddles.RightColor); !ok {
		errs = append(errs, fmt.Errorf("config: unknown paddles.right_color %q", c.Paddles.RightColor))
	}
	if _, err := parseBounds(c.Paddles.Bounds); err != nil {
		errs = append(errs, err)
	}
	if c.Rules.BounceFactor < 1 {
		errs = append(errs, fmt.Errorf("config: rules.bounce_factor must be at least 1, got %v", c.Rules.BounceFactor))
	}
	if c.Display.TickRate < 1 || c.Display.TickRate > 240 {
		errs = append(errs, fmt.Errorf("config: display.tick_rate must be in [1, 240], got %d", c.Display.TickRate))
	}
	if c.Display.HoldMillis < 0 {
		errs = append(errs, fmt.Errorf("config: display.hold_ms must not be negative, got %d", c.Display.HoldMillis))
	}
	if c.Display.MaxStepMillis <= 0 {
		errs = append(errs, fmt.Errorf("config: display.max_step_ms must be positive, got %d", c.Display.MaxStepMillis))
	}

	return errors.Join(errs...)
}

// Settings converts the configuration into match settings.
// Invalid colors and bounds fall back to defaults; call Validate first.
func (c MatchConfig) Settings() pong.Settings {
	s := pong.DefaultSettings()
	s.ScreenW = c.Screen.Width
	s.ScreenH = c.Screen.Height
	s.BallSpeed = c.Ball.Speed
	s.BallRadius = c.Ball.Radius
	s.PaddleSpeed = c.Paddles.Speed
	s.PaddleWidth = c.Paddles.Width
	s.PaddleHeight = c.Paddles.Height
	s.PaddleInset = c.Paddles.Inset
	s.BounceFactor = c.Rules.BounceFactor

	if col, ok := core.ParseColor(c.Paddles.LeftColor); ok {
		s.LeftColor = col
	}
	if col, ok := core.ParseColor(c.Paddles.RightColor); ok {
		s.RightColor = col
	}
	if b, err := parseBounds(c.Paddles.Bounds); err == nil {
		s.Bounds = b
	}
	return s
}

func parseBounds(v string) (pong.BoundsMode, error) {
	switch pong.BoundsMode(strings.ToLower(strings.TrimSpace(v))) {
	case "", pong.BoundsFixed:
		return pong.BoundsFixed, nil
	case pong.BoundsEntity:
		return pong.BoundsEntity, nil
	default:
		return pong.BoundsFixed, fmt.Errorf("config: unknown paddles.bounds %q (want fixed or entity)", v)
	}
}
