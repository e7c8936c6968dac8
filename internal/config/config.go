// Package config provides YAML-based configuration loading for the game.
package config

import (
	"errors"
	"fmt"
	"time"
)

// FlappyConfig contains all tunable constants of the game.
// Distances are world units of the logical surface, speeds are per tick.
type FlappyConfig struct {
	Screen    Screen    `yaml:"screen"`
	TickRate  int       `yaml:"tick_rate"`
	Physics   Physics   `yaml:"physics"`
	Player    Player    `yaml:"player"`
	Obstacles Obstacles `yaml:"obstacles"`
	Layers    Layers    `yaml:"layers"`
	Audio     Audio     `yaml:"audio"`
}

// Screen is the size of the logical render surface.
type Screen struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Physics defines the bird physics and the scroll speed.
type Physics struct {
	Gravity      float64 `yaml:"gravity"`
	FlapVelocity float64 `yaml:"flap_velocity"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
	ScrollSpeed  int     `yaml:"scroll_speed"`
}

// Player defines the bird start position, tilt and animation.
type Player struct {
	StartX        int     `yaml:"start_x"`
	StartY        int     `yaml:"start_y"`
	TicksPerFrame int     `yaml:"ticks_per_frame"`
	TiltThreshold float64 `yaml:"tilt_threshold"` // Fall speed at which the nose starts to drop
	TiltStep      float64 `yaml:"tilt_step"`      // Degrees per tick
	FlapTilt      float64 `yaml:"flap_tilt"`      // Rotation after a flap (upper clamp)
	MaxDive       float64 `yaml:"max_dive"`       // Lowest rotation (lower clamp)
	DiveAngle     float64 `yaml:"dive_angle"`     // Below this rotation the wings stop
	DiveFrame     int     `yaml:"dive_frame"`     // Frame shown while diving
}

// Obstacles defines pipe spawning.
type Obstacles struct {
	SpawnInterval   time.Duration `yaml:"spawn_interval"`
	MinGap          int           `yaml:"min_gap"`
	MaxGap          int           `yaml:"max_gap"`
	MinAnchor       int           `yaml:"min_anchor"`       // Highest top edge of a bottom pipe
	GroundClearance int           `yaml:"ground_clearance"` // Lowest top edge of a bottom pipe above the ground
}

// Layers defines the scrolling background and ground.
type Layers struct {
	GroundOffset    int     `yaml:"ground_offset"` // Ground top distance from the bottom edge
	BackgroundDepth float64 `yaml:"background_depth"`
	GroundDepth     float64 `yaml:"ground_depth"`
}

// Audio defines sound playback.
type Audio struct {
	Volume float64 `yaml:"volume"`
}

// GroundTop returns the y-coordinate of the ground line.
func (c FlappyConfig) GroundTop() int {
	return c.Screen.Height - c.Layers.GroundOffset
}

// MaxAnchor returns the lowest allowed top edge of a bottom pipe.
func (c FlappyConfig) MaxAnchor() int {
	return c.GroundTop() - c.Obstacles.GroundClearance
}

// SpawnTicks returns the spawn interval expressed in ticks.
func (c FlappyConfig) SpawnTicks() int {
	ticks := int(c.Obstacles.SpawnInterval * time.Duration(c.TickRate) / time.Second)
	if ticks < 1 {
		ticks = 1
	}
	return ticks
}

// Validate reports every inconsistent setting.
func (c FlappyConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Screen.Width > 0 && c.Screen.Height > 0, "screen size must be positive, got %dx%d", c.Screen.Width, c.Screen.Height)
	check(c.TickRate > 0, "tick_rate must be positive, got %d", c.TickRate)
	check(c.Physics.Gravity > 0, "physics.gravity must be positive, got %v", c.Physics.Gravity)
	check(c.Physics.FlapVelocity < 0, "physics.flap_velocity must be negative (upwards), got %v", c.Physics.FlapVelocity)
	check(c.Physics.MaxFallSpeed > 0, "physics.max_fall_speed must be positive, got %v", c.Physics.MaxFallSpeed)
	check(c.Physics.ScrollSpeed > 0, "physics.scroll_speed must be positive, got %d", c.Physics.ScrollSpeed)
	check(c.Player.TicksPerFrame > 0, "player.ticks_per_frame must be positive, got %d", c.Player.TicksPerFrame)
	check(c.Player.MaxDive <= c.Player.FlapTilt, "player.max_dive (%v) must not exceed player.flap_tilt (%v)", c.Player.MaxDive, c.Player.FlapTilt)
	check(c.Player.DiveFrame >= 0, "player.dive_frame must not be negative, got %d", c.Player.DiveFrame)
	check(c.Obstacles.SpawnInterval > 0, "obstacles.spawn_interval must be positive, got %v", c.Obstacles.SpawnInterval)
	check(c.Obstacles.MinGap > 0 && c.Obstacles.MinGap <= c.Obstacles.MaxGap,
		"obstacles gap range [%d, %d] is invalid", c.Obstacles.MinGap, c.Obstacles.MaxGap)
	check(c.Obstacles.MinAnchor <= c.MaxAnchor(),
		"obstacles anchor range [%d, %d] is empty", c.Obstacles.MinAnchor, c.MaxAnchor())
	check(c.Obstacles.MinAnchor-c.Obstacles.MaxGap >= 0,
		"obstacles.min_anchor (%d) leaves no headroom for a gap of %d", c.Obstacles.MinAnchor, c.Obstacles.MaxGap)
	check(c.Layers.GroundOffset > 0 && c.Layers.GroundOffset < c.Screen.Height,
		"layers.ground_offset must be inside the screen, got %d", c.Layers.GroundOffset)
	check(c.Audio.Volume >= 0 && c.Audio.Volume <= 1, "audio.volume must be in [0, 1], got %v", c.Audio.Volume)

	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}
