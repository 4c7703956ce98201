// Package config provides YAML-based configuration loading for the game.
package config

import (
	"errors"
	"fmt"
)

// Config is the complete game configuration.
type Config struct {
	Animation AnimationConfig `yaml:"animation"`
	Input     InputConfig     `yaml:"input"`
	Display   DisplayConfig   `yaml:"display"`
}

// AnimationConfig controls per-tick animation increments.
type AnimationConfig struct {
	SlideStep      float64 `yaml:"slide_step"`       // Slide progress added per tick
	SpawnScaleStep float64 `yaml:"spawn_scale_step"` // Spawn scale added per tick
}

// InputConfig controls swipe classification.
type InputConfig struct {
	SwipeMinDistance float64 `yaml:"swipe_min_distance"` // Shorter gestures are ignored
	UnitsPerColumn   float64 `yaml:"units_per_column"`   // Gesture units per terminal column
	UnitsPerRow      float64 `yaml:"units_per_row"`      // Gesture units per terminal row
}

// DisplayConfig controls the frame loop.
type DisplayConfig struct {
	TickRate int `yaml:"tick_rate"`
}

// Validate checks the configuration and clamps animation steps to 1.
func (c *Config) Validate() error {
	var errs []error

	if c.Animation.SlideStep <= 0 {
		errs = append(errs, fmt.Errorf("animation.slide_step must be positive, got %v", c.Animation.SlideStep))
	}
	if c.Animation.SpawnScaleStep <= 0 {
		errs = append(errs, fmt.Errorf("animation.spawn_scale_step must be positive, got %v", c.Animation.SpawnScaleStep))
	}
	if c.Input.SwipeMinDistance <= 0 {
		errs = append(errs, fmt.Errorf("input.swipe_min_distance must be positive, got %v", c.Input.SwipeMinDistance))
	}
	if c.Input.UnitsPerColumn <= 0 || c.Input.UnitsPerRow <= 0 {
		errs = append(errs, errors.New("input.units_per_column and input.units_per_row must be positive"))
	}
	if c.Display.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("display.tick_rate must be positive, got %d", c.Display.TickRate))
	}

	if c.Animation.SlideStep > 1 {
		c.Animation.SlideStep = 1
	}
	if c.Animation.SpawnScaleStep > 1 {
		c.Animation.SpawnScaleStep = 1
	}

	return errors.Join(errs...)
}
