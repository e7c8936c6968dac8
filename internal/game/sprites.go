package game

import (
	"fmt"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// PixelScale is the number of world units covered by one sprite pixel
// along each axis.
const PixelScale = 8

// ImageSource provides sprites by name.
type ImageSource interface {
	Image(name string) (*core.Image, error)
}

// Sprites holds every image the game draws.
type Sprites struct {
	Background *core.Image
	Ground     *core.Image
	Bird       []*core.Image // upflap, midflap, downflap
	PipeBottom *core.Image
	PipeTop    *core.Image // PipeBottom flipped vertically
	Message    *core.Image
}

// LoadSprites loads the game sprites from src.
func LoadSprites(src ImageSource) (Sprites, error) {
	var s Sprites
	load := func(name string) (*core.Image, error) {
		img, err := src.Image(name)
		if err != nil {
			return nil, fmt.Errorf("game: load sprite %s: %w", name, err)
		}
		return img, nil
	}

	var err error
	if s.Background, err = load("background-day"); err != nil {
		return Sprites{}, err
	}
	if s.Ground, err = load("base"); err != nil {
		return Sprites{}, err
	}
	for _, tag := range []string{"upflap", "midflap", "downflap"} {
		frame, err := load("yellowbird-" + tag)
		if err != nil {
			return Sprites{}, err
		}
		s.Bird = append(s.Bird, frame)
	}
	if s.PipeBottom, err = load("pipe-green"); err != nil {
		return Sprites{}, err
	}
	s.PipeTop = s.PipeBottom.FlipV()
	if s.Message, err = load("message"); err != nil {
		return Sprites{}, err
	}
	return s, nil
}

// worldSize returns the size of img in world units.
func worldSize(img *core.Image) (int, int) {
	return img.Width() * PixelScale, img.Height() * PixelScale
}

// toPixel converts a world coordinate to a canvas pixel coordinate.
func toPixel(v int) int {
	return core.FloorDiv(v, PixelScale)
}
