package core

import (
	"math"
	"strings"
)

// Cell is one terminal character with its colors.
type Cell struct {
	Rune rune
	Fg   Color
	Bg   Color
}

// blank is the cell used for cleared areas.
var blank = Cell{Rune: ' '}

// Screen is a 2D cell buffer the size of the terminal.
// It decouples game rendering from the terminal: games draw images and text
// into it while the platform handles actual display.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
	}
	s.allocate()
	s.Clear()
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the screen dimensions. Content is discarded since every
// frame is composed from scratch.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}

	s.width = width
	s.height = height
	s.allocate()
	s.Clear()
}

// Clear fills the entire screen with blank cells.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = blank
		}
	}
}

// SetCell places a cell at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) SetCell(x, y int, c Cell) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = c
}

// GetCell returns the cell at the given position.
// Returns a blank cell for out-of-bounds coordinates.
func (s *Screen) GetCell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return blank
	}
	return s.cells[y][x]
}

// DrawText writes a string horizontally starting at (x, y) in color fg.
// The background of the covered cells is kept. Characters that extend
// beyond screen bounds are clipped.
func (s *Screen) DrawText(x, y int, text string, fg Color) {
	i := 0
	for _, r := range text {
		cx := x + i
		i++
		if cx < 0 || cx >= s.width || y < 0 || y >= s.height {
			continue
		}
		cell := &s.cells[y][cx]
		if cell.Rune == '▀' && cell.Bg == ColorNone {
			// Keep the upper pixel's color behind the text.
			cell.Bg = cell.Fg
		}
		cell.Rune = r
		cell.Fg = fg
	}
}

// DrawTextCentered draws text centered horizontally on column cx.
func (s *Screen) DrawTextCentered(cx, y int, text string, fg Color) {
	s.DrawText(cx-len([]rune(text))/2, y, text, fg)
}

// Viewport describes where a presented image landed on the screen.
// Image pixels are scaled by Scale; each cell row holds two pixel rows.
type Viewport struct {
	OffsetX int     // Left edge in cells
	OffsetY int     // Top edge in pixel rows (always even)
	Width   int     // Presented width in cells
	Height  int     // Presented height in pixel rows
	Scale   float64 // Display pixels per image pixel
}

// Cell maps an image pixel coordinate to the screen cell covering it.
func (v Viewport) Cell(px, py float64) (int, int) {
	x := v.OffsetX + int(math.Floor(px*v.Scale))
	y := (v.OffsetY + int(math.Floor(py*v.Scale))) / 2
	return x, y
}

// Present scales img uniformly to fit the screen using nearest-neighbour
// sampling and draws it centered with half-block cells: the foreground of
// '▀' is the upper pixel and the background the lower one.
func (s *Screen) Present(img *Image) Viewport {
	s.Clear()
	if img.Width() == 0 || img.Height() == 0 || s.width == 0 || s.height == 0 {
		return Viewport{}
	}

	pxH := s.height * 2
	scale := math.Min(float64(s.width)/float64(img.Width()), float64(pxH)/float64(img.Height()))
	outW := int(float64(img.Width()) * scale)
	outH := int(float64(img.Height()) * scale)
	if outW < 1 {
		outW = 1
	}
	if outH < 1 {
		outH = 1
	}

	v := Viewport{
		OffsetX: (s.width - outW) / 2,
		OffsetY: ((pxH - outH) / 2) &^ 1,
		Width:   outW,
		Height:  outH,
		Scale:   scale,
	}

	sample := func(dx, dy int) Color {
		if dy < 0 || dy >= outH {
			return ColorNone
		}
		return img.At(int(float64(dx)/scale), int(float64(dy)/scale))
	}

	for row := v.OffsetY / 2; row < s.height; row++ {
		top := row*2 - v.OffsetY
		if top >= outH {
			break
		}
		for dx := 0; dx < outW; dx++ {
			s.SetCell(v.OffsetX+dx, row, Cell{
				Rune: '▀',
				Fg:   sample(dx, top),
				Bg:   sample(dx, top+1),
			})
		}
	}
	return v
}

// Overlay draws the opaque pixels of img as half-block glyphs in color fg
// with the image's top-left pixel at cell (x, y). Pixels pair up two per
// cell vertically; cells with no opaque pixel are left untouched.
func (s *Screen) Overlay(img *Image, x, y int, fg Color) {
	for row := 0; row*2 < img.Height(); row++ {
		for col := 0; col < img.Width(); col++ {
			top := img.At(col, row*2) != ColorNone
			bottom := img.At(col, row*2+1) != ColorNone
			cx, cy := x+col, y+row
			if cx < 0 || cx >= s.width || cy < 0 || cy >= s.height {
				continue
			}
			cell := &s.cells[cy][cx]
			switch {
			case top && bottom:
				cell.Rune, cell.Fg = '█', fg
			case top:
				cell.Rune, cell.Fg = '▀', fg
			case bottom:
				if cell.Rune == '▀' {
					cell.Bg = cell.Fg
				}
				cell.Rune, cell.Fg = '▄', fg
			}
		}
	}
}

// String converts the screen buffer to plain text without colors.
// Each row is joined with newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height) // Pre-allocate for efficiency

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		sb.WriteString(s.Row(y))
	}
	return sb.String()
}

// Row returns the runes of the specified row as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[y] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}
