package game

import (
	"math"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Bird is the player entity.
type Bird struct {
	player  config.Player
	physics config.Physics

	frames []*core.Image
	x      int
	y      float64 // top edge; the rect is derived from it
	w, h   int

	Velocity float64 // positive is down
	Rotation float64 // degrees, counter-clockwise, positive is nose up
	counter  int     // animation ticks

	wing Sound
}

// NewBird creates a bird centred on the configured start position.
func NewBird(cfg config.FlappyConfig, frames []*core.Image, wing Sound) *Bird {
	if wing == nil {
		wing = silentSound{}
	}
	b := &Bird{
		player:  cfg.Player,
		physics: cfg.Physics,
		frames:  frames,
		wing:    wing,
	}
	if len(frames) > 0 {
		b.w, b.h = worldSize(frames[0])
	}
	b.center()
	return b
}

func (b *Bird) center() {
	r := core.RectCentered(b.player.StartX, b.player.StartY, b.w, b.h)
	b.x = r.X
	b.y = float64(r.Y)
}

// Rect returns the collision rectangle in world units.
func (b *Bird) Rect() core.Rect {
	return core.NewRect(b.x, int(math.Floor(b.y)), b.w, b.h)
}

// Frame returns the index of the animation frame to draw.
func (b *Bird) Frame() int {
	return b.counter / b.player.TicksPerFrame
}

// Update advances the bird one tick: it falls, tilts its nose down once
// falling fast, and flaps its wings unless diving.
func (b *Bird) Update() {
	b.y += b.Velocity
	b.Velocity = math.Min(b.physics.MaxFallSpeed, b.Velocity+b.physics.Gravity)

	if b.Velocity >= b.player.TiltThreshold {
		b.Rotation = math.Max(b.player.MaxDive, b.Rotation-b.player.TiltStep)
	}

	period := len(b.frames) * b.player.TicksPerFrame
	if b.Rotation >= b.player.DiveAngle && period > 0 {
		b.counter = (b.counter + 1) % period
	} else {
		b.counter = b.diveFrame() * b.player.TicksPerFrame
	}
}

func (b *Bird) diveFrame() int {
	return core.Clamp(b.player.DiveFrame, 0, max(len(b.frames)-1, 0))
}

// Flap gives the bird an upward impulse and tilts its nose up.
func (b *Bird) Flap() {
	b.wing.Play()
	b.Velocity = b.physics.FlapVelocity
	b.Rotation = b.player.FlapTilt
}

// Reset moves the bird back to the start position at rest.
// The rotation is kept; the next flap sets it.
func (b *Bird) Reset() {
	b.center()
	b.Velocity = 0
	b.counter = 0
}

// Draw blits the current frame, rotated, centred on the bird.
func (b *Bird) Draw(canvas *core.Image) {
	if len(b.frames) == 0 {
		return
	}
	img := b.frames[b.Frame()].Rotozoom(b.Rotation, 1)
	cx, cy := b.Rect().Center()
	canvas.BlitCentered(img, toPixel(cx), toPixel(cy))
}
