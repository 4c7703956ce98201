package config

import (
	_ "embed"
)

//go:embed defaults/t2048.yaml
var defaultYAML []byte

// Default returns the hardcoded default configuration.
func Default() Config {
	return Config{
		Animation: AnimationConfig{
			SlideStep:      0.2,
			SpawnScaleStep: 0.15,
		},
		Input: InputConfig{
			SwipeMinDistance: 30,
			UnitsPerColumn:   10,
			UnitsPerRow:      20,
		},
		Display: DisplayConfig{
			TickRate: 60,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultYAML
}
