package game

import (
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/assets"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// countingSound records how often it was played.
type countingSound struct {
	plays int
}

func (s *countingSound) Play() { s.plays++ }

type testSounds struct {
	wing, hit, point *countingSound
}

func (s testSounds) Sounds() Sounds {
	return Sounds{Wing: s.wing, Hit: s.hit, Point: s.point}
}

func newTestSounds() testSounds {
	return testSounds{wing: &countingSound{}, hit: &countingSound{}, point: &countingSound{}}
}

func testSprites(t *testing.T) Sprites {
	t.Helper()
	sprites, err := LoadSprites(assets.NewLoader(""))
	if err != nil {
		t.Fatalf("LoadSprites() failed: %v", err)
	}
	return sprites
}

func newTestWorld(t *testing.T, high int) (*World, testSounds) {
	t.Helper()
	sounds := newTestSounds()
	w := NewWorld(config.DefaultFlappyConfig(), testSprites(t), sounds.Sounds(),
		storage.Record{HighScore: high, Path: "/test"}, 1)
	return w, sounds
}

// holdInGap parks the bird at rest in the middle of p's gap.
func holdInGap(b *Bird, p Pipe) {
	top, bottom := p.Gap()
	b.y = float64((top+bottom)/2 - b.h/2)
	b.Velocity = 0
}
