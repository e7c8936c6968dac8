package assets

import (
	"fmt"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// spriteFile is the YAML form of a sprite:
//
//	width: 7
//	height: 5
//	fill: sky        # color behind rows that are not listed (default: none)
//	anchor: bottom   # place the rows at the top (default) or bottom
//	extend: 3        # repeat the last row this many more times
//	palette:
//	  k: black
//	rows:
//	  - "..kk.."
//
// The characters '.' and ' ' are transparent unless the palette maps them.
type spriteFile struct {
	Width   int               `yaml:"width"`
	Height  int               `yaml:"height"`
	Fill    string            `yaml:"fill"`
	Anchor  string            `yaml:"anchor"`
	Extend  int               `yaml:"extend"`
	Palette map[string]string `yaml:"palette"`
	Rows    []string          `yaml:"rows"`
}

// DecodeSprite parses a YAML sprite into an image.
func DecodeSprite(data []byte) (*core.Image, error) {
	var sf spriteFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("parse sprite: %w", err)
	}
	return sf.image()
}

func (sf spriteFile) image() (*core.Image, error) {
	palette := map[rune]core.Color{'.': core.ColorNone, ' ': core.ColorNone}
	for key, name := range sf.Palette {
		if utf8.RuneCountInString(key) != 1 {
			return nil, fmt.Errorf("palette key %q must be a single character", key)
		}
		c, err := core.ParseColor(name)
		if err != nil {
			return nil, err
		}
		r, _ := utf8.DecodeRuneInString(key)
		palette[r] = c
	}

	fill := core.ColorNone
	if sf.Fill != "" {
		c, err := core.ParseColor(sf.Fill)
		if err != nil {
			return nil, err
		}
		fill = c
	}

	if sf.Extend < 0 {
		return nil, fmt.Errorf("negative extend %d", sf.Extend)
	}
	rows := sf.Rows
	if sf.Extend > 0 && len(rows) > 0 {
		rows = append([]string(nil), sf.Rows...)
		last := rows[len(rows)-1]
		for i := 0; i < sf.Extend; i++ {
			rows = append(rows, last)
		}
	}

	width, height := sf.Width, sf.Height
	for _, row := range rows {
		width = max(width, utf8.RuneCountInString(row))
	}
	if height == 0 {
		height = len(rows)
	}
	if sf.Width > 0 && width > sf.Width {
		return nil, fmt.Errorf("row wider than declared width %d", sf.Width)
	}
	if len(rows) > height {
		return nil, fmt.Errorf("%d rows exceed declared height %d", len(rows), height)
	}
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("empty sprite")
	}

	top := 0
	switch sf.Anchor {
	case "", "top":
	case "bottom":
		top = height - len(rows)
	default:
		return nil, fmt.Errorf("unknown anchor %q", sf.Anchor)
	}

	img := core.NewImage(width, height)
	img.Fill(fill)
	for y, row := range rows {
		x := 0
		for _, r := range row {
			c, ok := palette[r]
			if !ok {
				return nil, fmt.Errorf("row %d: character %q not in palette", y, r)
			}
			if c != core.ColorNone {
				img.Set(x, top+y, c)
			}
			x++
		}
	}
	return img, nil
}
