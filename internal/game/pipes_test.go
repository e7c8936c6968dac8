package game

import (
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

func newTestPipes(seed int64) (*PipeManager, *countingSound) {
	point := &countingSound{}
	return NewPipeManager(config.DefaultFlappyConfig(), 80, 472, seed, point), point
}

// pipeAt returns a pair with its left edge at x and the gap at [200, 390).
func pipeAt(x int) *Pipe {
	return &Pipe{
		Bottom:    core.NewRect(x, 390, 80, 472),
		Top:       core.NewRect(x, 200-472, 80, 472),
		NotPassed: true,
	}
}

func TestSpawnWithinRanges(t *testing.T) {
	pm, _ := newTestPipes(42)

	for i := 0; i < 1000; i++ {
		p := pm.Spawn()
		top, bottom := p.Gap()
		gap := bottom - top

		if p.Bottom.Y < 300 || p.Bottom.Y > 630 {
			t.Fatalf("anchor %d outside [300, 630]", p.Bottom.Y)
		}
		if gap < 190 || gap > 200 {
			t.Fatalf("gap %d outside [190, 200]", gap)
		}
		if p.Bottom.X != 422 || p.Top.X != 422 {
			t.Fatalf("pair spawned at x=%d/%d, expected 422", p.Bottom.X, p.Top.X)
		}
		if !p.NotPassed {
			t.Fatal("new pair should not be passed")
		}
	}
}

func TestSpawnDeterministic(t *testing.T) {
	a, _ := newTestPipes(7)
	b, _ := newTestPipes(7)
	for i := 0; i < 20; i++ {
		if pa, pb := a.Spawn(), b.Spawn(); pa != pb {
			t.Fatalf("spawn %d differs with equal seeds: %+v vs %+v", i, pa, pb)
		}
	}
}

func TestSpawnAppendsAtTail(t *testing.T) {
	pm, _ := newTestPipes(1)
	first := pm.Spawn()
	pm.Tick(2, core.NewRect(0, 0, 1, 1))
	second := pm.Spawn()

	pipes := pm.Pipes()
	if len(pipes) != 2 {
		t.Fatalf("Len() = %d, expected 2", len(pipes))
	}
	if pipes[0].Bottom.X != first.Bottom.X-2 || pipes[1] != second {
		t.Errorf("Pipes() = %+v, expected spawn order", pipes)
	}
}

func TestTickScrollsInLockstep(t *testing.T) {
	pm, _ := newTestPipes(1)
	pm.pipes = []*Pipe{pipeAt(300)}

	pm.Tick(2, core.NewRect(0, 0, 1, 1))

	p := pm.Pipes()[0]
	if p.Bottom.X != 298 || p.Top.X != 298 {
		t.Errorf("pair at %d/%d, expected 298", p.Bottom.X, p.Top.X)
	}
}

func TestTickCollision(t *testing.T) {
	tests := []struct {
		name string
		bird core.Rect
		hit  bool
	}{
		{"in gap", core.NewRect(300, 250, 56, 40), false},
		{"bottom pipe", core.NewRect(300, 380, 56, 40), true},
		{"top pipe", core.NewRect(300, 170, 56, 40), true},
		{"before pair", core.NewRect(100, 500, 56, 40), false},
		{"touching edge", core.NewRect(298-56, 500, 56, 40), false},
		{"above screen", core.NewRect(600, -40, 56, 40), true},
		{"above screen before pair", core.NewRect(100, -40, 56, 40), false},
		{"partly above screen", core.NewRect(600, -39, 56, 40), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pm, _ := newTestPipes(1)
			pm.pipes = []*Pipe{pipeAt(300)}

			hit, _ := pm.Tick(2, tc.bird)
			if hit != tc.hit {
				t.Errorf("Tick() hit = %v, expected %v", hit, tc.hit)
			}
		})
	}
}

func TestPairScoresOnce(t *testing.T) {
	pm, point := newTestPipes(1)
	bird := core.NewRect(42, 270, 56, 40)
	pm.pipes = []*Pipe{pipeAt(422)}

	total := 0
	for pm.Len() > 0 {
		hit, scored := pm.Tick(2, bird)
		if hit {
			t.Fatal("stationary bird in the gap should not collide")
		}
		total += scored
	}

	if total != 1 {
		t.Errorf("pair scored %d times, expected 1", total)
	}
	if point.plays != 1 {
		t.Errorf("point sound played %d times, expected 1", point.plays)
	}
}

func TestPassageNeedsStrictlyPast(t *testing.T) {
	pm, _ := newTestPipes(1)
	pm.pipes = []*Pipe{pipeAt(2)} // right edge 80 after one tick
	bird := core.NewRect(80, 270, 56, 40)

	if _, scored := pm.Tick(2, bird); scored != 0 {
		t.Error("bird level with the right edge should not score")
	}
	if _, scored := pm.Tick(2, bird); scored != 1 {
		t.Error("bird past the right edge should score")
	}
}

func TestRemovalOffScreen(t *testing.T) {
	pm, _ := newTestPipes(1)
	bird := core.NewRect(42, 270, 56, 40)
	pm.pipes = []*Pipe{pipeAt(-78)}

	// Right edge at 0 is still on screen.
	pm.Tick(2, bird)
	if pm.Len() != 1 {
		t.Fatal("pair with right edge 0 removed too early")
	}
	pm.Tick(2, bird)
	if pm.Len() != 0 {
		t.Error("pair with right edge -2 should be removed")
	}
}

func TestTickProcessesEveryPair(t *testing.T) {
	pm, point := newTestPipes(1)
	gone1, gone2 := pipeAt(-85), pipeAt(-84)
	hitter := pipeAt(200)
	last := pipeAt(-200)
	last.NotPassed = true
	pm.pipes = []*Pipe{gone1, gone2, hitter, last}

	// The bird sits in the bottom pipe of hitter
	hit, scored := pm.Tick(2, core.NewRect(190, 400, 56, 40))
	if !hit {
		t.Error("expected a collision")
	}

	// Both adjacent removals and the pair after the collision are processed
	if pm.Len() != 1 || pm.Pipes()[0].Bottom.X != 198 {
		t.Errorf("Pipes() = %+v, expected only the colliding pair", pm.Pipes())
	}
	if scored != 3 || point.plays != 3 {
		t.Errorf("scored %d (%d sounds), expected the three passed pairs", scored, point.plays)
	}
}

func TestClear(t *testing.T) {
	pm, _ := newTestPipes(1)
	pm.Spawn()
	pm.Spawn()
	pm.Clear()

	if pm.Len() != 0 || len(pm.Pipes()) != 0 {
		t.Errorf("Len() = %d after Clear()", pm.Len())
	}
}
