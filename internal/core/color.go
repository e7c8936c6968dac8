package core

import "fmt"

// Color is a palette index used by images and screen cells.
// ColorNone is transparent in images and the terminal default in cells.
type Color uint8

// Palette colors. The platform maps each to an ANSI 256-color code.
const (
	ColorNone Color = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorSky
	ColorSand
	ColorDarkGreen
)

var colorNames = map[string]Color{
	"none":           ColorNone,
	"black":          ColorBlack,
	"red":            ColorRed,
	"green":          ColorGreen,
	"yellow":         ColorYellow,
	"blue":           ColorBlue,
	"magenta":        ColorMagenta,
	"cyan":           ColorCyan,
	"white":          ColorWhite,
	"bright_red":     ColorBrightRed,
	"bright_green":   ColorBrightGreen,
	"bright_yellow":  ColorBrightYellow,
	"bright_blue":    ColorBrightBlue,
	"bright_magenta": ColorBrightMagenta,
	"bright_cyan":    ColorBrightCyan,
	"bright_white":   ColorBrightWhite,
	"orange":         ColorOrange,
	"gray":           ColorGray,
	"sky":            ColorSky,
	"sand":           ColorSand,
	"dark_green":     ColorDarkGreen,
}

// ParseColor resolves a palette color by its lower-case name.
func ParseColor(name string) (Color, error) {
	c, ok := colorNames[name]
	if !ok {
		return ColorNone, fmt.Errorf("core: unknown color %q", name)
	}
	return c, nil
}
