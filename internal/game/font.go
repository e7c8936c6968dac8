package game

import "github.com/vovakirdan/tui-flappy/internal/core"

// blockFontMin is the smallest size rendered with block glyphs; smaller
// text is plain terminal characters.
const blockFontMin = 48

// glyphs are 3x5 block digits.
var glyphs = map[rune][5]string{
	'0': {"###", "#.#", "#.#", "#.#", "###"},
	'1': {".#.", "##.", ".#.", ".#.", "###"},
	'2': {"###", "..#", "###", "#..", "###"},
	'3': {"###", "..#", "###", "..#", "###"},
	'4': {"#.#", "#.#", "###", "..#", "..#"},
	'5': {"###", "#..", "###", "..#", "###"},
	'6': {"###", "#..", "###", "#.#", "###"},
	'7': {"###", "..#", ".#.", ".#.", ".#."},
	'8': {"###", "#.#", "###", "#.#", "###"},
	'9': {"###", "#.#", "###", "..#", "###"},
	'-': {"...", "...", "###", "...", "..."},
}

const (
	glyphW = 3
	glyphH = 5
)

// Font renders text at one size.
type Font struct {
	Size  int
	scale int // block pixels per glyph pixel, 0 for plain text
}

func newFont(size int) *Font {
	f := &Font{Size: size}
	if size >= blockFontMin {
		f.scale = size / 32
	}
	return f
}

// Block reports whether the font draws block glyphs.
func (f *Font) Block() bool {
	return f.scale > 0
}

// Render rasterizes text into an image with one glyph pixel per scale by
// scale block. Unknown runes render as blanks. Plain fonts return nil.
func (f *Font) Render(text string) *core.Image {
	if !f.Block() {
		return nil
	}
	runes := []rune(text)
	if len(runes) == 0 {
		return core.NewImage(0, 0)
	}

	advance := (glyphW + 1) * f.scale
	img := core.NewImage(len(runes)*advance-f.scale, glyphH*f.scale)
	for i, r := range runes {
		g, ok := glyphs[r]
		if !ok {
			continue
		}
		for gy, row := range g {
			for gx, c := range row {
				if c != '#' {
					continue
				}
				img.FillRect(core.NewRect(i*advance+gx*f.scale, gy*f.scale, f.scale, f.scale), core.ColorWhite)
			}
		}
	}
	return img
}
