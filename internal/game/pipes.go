package game

import (
	"math/rand"
	"slices"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Pipe is an obstacle pair: a bottom pipe and a top pipe separated by a gap.
type Pipe struct {
	Bottom    core.Rect
	Top       core.Rect
	NotPassed bool // cleared once the bird has flown past, so a pair scores once
}

// Gap returns the vertical extent of the opening between the two pipes.
func (p Pipe) Gap() (top, bottom int) {
	return p.Top.Bottom(), p.Bottom.Y
}

// PipeManager spawns, scrolls and removes pipes and checks the bird
// against them.
type PipeManager struct {
	pipes []*Pipe // spawn order
	rng   *rand.Rand

	spawnX    int
	obstacles config.Obstacles
	maxAnchor int
	w, h      int // size of one pipe in world units

	point Sound
}

// NewPipeManager creates a pipe manager. Pipes are w by h world units and
// spawn with their left edge at the right edge of the screen.
func NewPipeManager(cfg config.FlappyConfig, w, h int, seed int64, point Sound) *PipeManager {
	if point == nil {
		point = silentSound{}
	}
	return &PipeManager{
		pipes:     make([]*Pipe, 0, 4),
		rng:       rand.New(rand.NewSource(seed)),
		spawnX:    cfg.Screen.Width,
		obstacles: cfg.Obstacles,
		maxAnchor: cfg.MaxAnchor(),
		w:         w,
		h:         h,
		point:     point,
	}
}

// Spawn appends a new pair at the right edge of the screen. The top edge
// of the bottom pipe is drawn from [min_anchor, ground_top - clearance] and
// the gap height from [min_gap, max_gap], both inclusive.
func (pm *PipeManager) Spawn() Pipe {
	anchor := pm.between(pm.obstacles.MinAnchor, pm.maxAnchor)
	gapTop := anchor - pm.between(pm.obstacles.MinGap, pm.obstacles.MaxGap)

	p := &Pipe{
		Bottom:    core.NewRect(pm.spawnX, anchor, pm.w, pm.h),
		Top:       core.NewRect(pm.spawnX, gapTop-pm.h, pm.w, pm.h),
		NotPassed: true,
	}
	pm.pipes = append(pm.pipes, p)
	return *p
}

func (pm *PipeManager) between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + pm.rng.Intn(hi-lo+1)
}

// Tick scrolls every pair left by velocity and checks it against bird.
// A pair collides when it overlaps the bird, or when the bird is above the
// top of the screen and the pair has reached it. A pair scores once the
// bird's left edge is past its right edge, and is removed once fully off
// the left edge. Every pair is processed even after a collision.
func (pm *PipeManager) Tick(velocity int, bird core.Rect) (hit bool, scored int) {
	for _, p := range slices.Clone(pm.pipes) {
		p.Bottom = p.Bottom.Translate(-velocity, 0)
		p.Top = p.Top.Translate(-velocity, 0)

		if bird.Intersects(p.Bottom) || bird.Intersects(p.Top) ||
			(bird.Right() >= p.Bottom.X && bird.Bottom() <= 0) {
			hit = true
		}

		if p.NotPassed && bird.X > p.Bottom.Right() {
			pm.point.Play()
			p.NotPassed = false
			scored++
		}

		if p.Bottom.Right() < 0 {
			pm.remove(p)
		}
	}
	return hit, scored
}

func (pm *PipeManager) remove(p *Pipe) {
	if i := slices.Index(pm.pipes, p); i >= 0 {
		pm.pipes = slices.Delete(pm.pipes, i, i+1)
	}
}

// Clear removes every pair.
func (pm *PipeManager) Clear() {
	clear(pm.pipes)
	pm.pipes = pm.pipes[:0]
}

// Len returns the number of live pairs.
func (pm *PipeManager) Len() int {
	return len(pm.pipes)
}

// Pipes returns a copy of the live pairs in spawn order.
func (pm *PipeManager) Pipes() []Pipe {
	out := make([]Pipe, len(pm.pipes))
	for i, p := range pm.pipes {
		out[i] = *p
	}
	return out
}

// Draw blits every pair onto canvas.
func (pm *PipeManager) Draw(canvas, bottom, top *core.Image) {
	for _, p := range pm.pipes {
		canvas.Blit(bottom, toPixel(p.Bottom.X), toPixel(p.Bottom.Y))
		canvas.Blit(top, toPixel(p.Top.X), toPixel(p.Top.Y))
	}
}
