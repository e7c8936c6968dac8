package game

import (
	"math"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// ScrollLayer is a horizontally wrapping image scrolled at a fraction of
// the world speed. X is the exact position in [0, Width); Offset is X
// rounded down to whole world units and is where the layer is drawn. Both
// are only written together by Update.
type ScrollLayer struct {
	X      float64
	Offset int
	Y      int
	Width  int
	Depth  float64 // 1 moves with the pipes, smaller values lag behind

	image *core.Image
}

// NewScrollLayer creates a layer for img with its top edge at y.
func NewScrollLayer(img *core.Image, y int, depth float64) *ScrollLayer {
	w, _ := worldSize(img)
	return &ScrollLayer{
		Y:     y,
		Width: w,
		Depth: depth,
		image: img,
	}
}

// Update scrolls the layer left by velocity scaled by the layer depth.
func (l *ScrollLayer) Update(velocity int) {
	if l.Width <= 0 {
		return
	}
	w := float64(l.Width)
	x := math.Mod(l.X-float64(velocity)*l.Depth, w)
	if x < 0 {
		x += w
	}
	if x >= w {
		x = 0
	}
	l.X = x
	l.Offset = int(math.Floor(x))
}

// Draw blits the layer twice, at Offset and one width to the left, so the
// wrap seam is never visible.
func (l *ScrollLayer) Draw(canvas *core.Image) {
	y := toPixel(l.Y)
	canvas.Blit(l.image, toPixel(l.Offset), y)
	canvas.Blit(l.image, toPixel(l.Offset-l.Width), y)
}
