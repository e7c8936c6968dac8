package core

import "math"

// Image is a grid of palette pixels. ColorNone pixels are transparent when
// the image is blitted onto another.
type Image struct {
	width  int
	height int
	pix    []Color
}

// NewImage creates a transparent image with the given dimensions.
func NewImage(width, height int) *Image {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Image{
		width:  width,
		height: height,
		pix:    make([]Color, width*height),
	}
}

// Width returns the image width in pixels.
func (m *Image) Width() int {
	return m.width
}

// Height returns the image height in pixels.
func (m *Image) Height() int {
	return m.height
}

// At returns the pixel at (x, y), or ColorNone outside the image.
func (m *Image) At(x, y int) Color {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return ColorNone
	}
	return m.pix[y*m.width+x]
}

// Set writes a pixel. Out-of-bounds coordinates are silently ignored.
func (m *Image) Set(x, y int, c Color) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return
	}
	m.pix[y*m.width+x] = c
}

// Fill sets every pixel to c.
func (m *Image) Fill(c Color) {
	for i := range m.pix {
		m.pix[i] = c
	}
}

// FillRect sets every pixel inside r to c, clipped to the image.
func (m *Image) FillRect(r Rect, c Color) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			m.Set(x, y, c)
		}
	}
}

// Blit draws src with its top-left corner at (x, y), skipping transparent pixels.
func (m *Image) Blit(src *Image, x, y int) {
	for sy := 0; sy < src.height; sy++ {
		dy := y + sy
		if dy < 0 || dy >= m.height {
			continue
		}
		for sx := 0; sx < src.width; sx++ {
			c := src.pix[sy*src.width+sx]
			if c == ColorNone {
				continue
			}
			m.Set(x+sx, dy, c)
		}
	}
}

// BlitCentered draws src centered on (cx, cy).
func (m *Image) BlitCentered(src *Image, cx, cy int) {
	m.Blit(src, cx-src.width/2, cy-src.height/2)
}

// Clone returns a copy of the image.
func (m *Image) Clone() *Image {
	out := NewImage(m.width, m.height)
	copy(out.pix, m.pix)
	return out
}

// FlipV returns the image mirrored top to bottom.
func (m *Image) FlipV() *Image {
	out := NewImage(m.width, m.height)
	for y := 0; y < m.height; y++ {
		copy(out.pix[(m.height-1-y)*m.width:(m.height-y)*m.width], m.pix[y*m.width:(y+1)*m.width])
	}
	return out
}

// Rotozoom returns the image rotated counter-clockwise by angle degrees and
// scaled by scale, using nearest-neighbour sampling. The result is sized to
// the rotated bounding box, so it should be positioned by its center.
func (m *Image) Rotozoom(angle, scale float64) *Image {
	if scale <= 0 {
		return NewImage(0, 0)
	}
	if angle == 0 && scale == 1 {
		return m.Clone()
	}

	rad := angle * math.Pi / 180
	sin, cos := math.Sincos(rad)
	sw := float64(m.width) * scale
	sh := float64(m.height) * scale
	ow := int(math.Ceil(math.Abs(sw*cos) + math.Abs(sh*sin) - 1e-9))
	oh := int(math.Ceil(math.Abs(sw*sin) + math.Abs(sh*cos) - 1e-9))

	out := NewImage(ow, oh)
	halfW, halfH := float64(m.width)/2, float64(m.height)/2
	for dy := 0; dy < oh; dy++ {
		py := float64(dy) + 0.5 - float64(oh)/2
		for dx := 0; dx < ow; dx++ {
			px := float64(dx) + 0.5 - float64(ow)/2
			// Inverse mapping from destination to source.
			sx := (px*cos - py*sin) / scale
			sy := (px*sin + py*cos) / scale
			out.Set(dx, dy, m.At(int(math.Floor(sx+halfW)), int(math.Floor(sy+halfH))))
		}
	}
	return out
}
