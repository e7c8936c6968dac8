package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the default configuration.
// It matches defaults/flappy.yaml and is used if the embedded file cannot be parsed.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Screen: Screen{
			Width:  422,
			Height: 750,
		},
		TickRate: 120,
		Physics: Physics{
			Gravity:      0.2,
			FlapVelocity: -7,
			MaxFallSpeed: 5,
			ScrollSpeed:  2,
		},
		Player: Player{
			StartX:        70,
			StartY:        375,
			TicksPerFrame: 10,
			TiltThreshold: 3,
			TiltStep:      2,
			FlapTilt:      30,
			MaxDive:       -80,
			DiveAngle:     -45,
			DiveFrame:     1,
		},
		Obstacles: Obstacles{
			SpawnInterval:   1300 * time.Millisecond,
			MinGap:          190,
			MaxGap:          200,
			MinAnchor:       300,
			GroundClearance: 70,
		},
		Layers: Layers{
			GroundOffset:    50,
			BackgroundDepth: 0.2,
			GroundDepth:     1,
		},
		Audio: Audio{
			Volume: 0.3,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
