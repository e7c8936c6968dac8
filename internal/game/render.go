package game

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// HUD text sizes and positions, in world units.
const (
	scoreSizeActive   = 48
	scoreSizeInactive = 64
	highScoreSize     = 40
	scoreY            = 100
	highScoreMargin   = 100 // from the bottom edge
)

// Renderer composes frames of a world. It owns the logical canvas and the
// font cache.
type Renderer struct {
	canvas *core.Image
	width  int // world units
	height int
	fonts  map[int]*Font
}

// NewRenderer creates a renderer for a world of width by height world units.
func NewRenderer(width, height int) *Renderer {
	return &Renderer{
		canvas: core.NewImage(ceilDiv(width, PixelScale), ceilDiv(height, PixelScale)),
		width:  width,
		height: height,
		fonts:  make(map[int]*Font),
	}
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

// Canvas returns the logical surface of the last composed frame.
func (r *Renderer) Canvas() *core.Image {
	return r.canvas
}

// Font returns the font of the given size, creating it on first use.
func (r *Renderer) Font(size int) *Font {
	f, ok := r.fonts[size]
	if !ok {
		f = newFont(size)
		r.fonts[size] = f
	}
	return f
}

// Compose draws the world and presents it on screen. Draw order: the
// background, the pipes and the bird while Active, the ground over the
// pipes, the start message while Inactive, then the HUD text.
func (r *Renderer) Compose(w *World, screen *core.Screen) {
	r.canvas.Fill(core.ColorBlack)

	w.Background.Draw(r.canvas)
	if w.state == Active {
		w.Pipes.Draw(r.canvas, w.sprites.PipeBottom, w.sprites.PipeTop)
		w.Bird.Draw(r.canvas)
	}
	w.Ground.Draw(r.canvas)
	if w.state == Inactive && w.sprites.Message != nil {
		r.canvas.BlitCentered(w.sprites.Message, toPixel(r.width/2), toPixel(r.height/2))
	}

	vp := screen.Present(r.canvas)

	score := strconv.Itoa(w.score)
	if w.state == Active {
		r.drawText(screen, vp, score, scoreSizeActive, r.width/2, scoreY)
		return
	}
	r.drawText(screen, vp, score, scoreSizeInactive, r.width/2, scoreY)
	r.drawText(screen, vp, fmt.Sprintf("High score: %d", w.record.HighScore),
		highScoreSize, r.width/2, r.height-highScoreMargin)
}

// drawText draws white text centred on the world position (x, y).
func (r *Renderer) drawText(screen *core.Screen, vp core.Viewport, text string, size, x, y int) {
	cx, cy := vp.Cell(float64(x)/PixelScale, float64(y)/PixelScale)

	f := r.Font(size)
	if !f.Block() {
		screen.DrawTextCentered(cx, cy, text, core.ColorWhite)
		return
	}
	img := f.Render(text)
	rows := (img.Height() + 1) / 2
	screen.Overlay(img, cx-img.Width()/2, cy-rows/2, core.ColorWhite)
}
