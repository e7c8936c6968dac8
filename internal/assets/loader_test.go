package assets

import (
	"errors"
	"io/fs"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

func TestEmbeddedSprites(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
	}{
		{"background-day", 53, 94},
		{"base", 62, 20},
		{"yellowbird-upflap", 7, 5},
		{"yellowbird-midflap", 7, 5},
		{"yellowbird-downflap", 7, 5},
		{"pipe-green", 10, 59},
		{"message", 21, 15},
	}

	l := NewLoader("")
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			img, err := l.Image(tc.name)
			if err != nil {
				t.Fatalf("Image(%s) failed: %v", tc.name, err)
			}
			if img.Width() != tc.width || img.Height() != tc.height {
				t.Errorf("size = %dx%d, expected %dx%d", img.Width(), img.Height(), tc.width, tc.height)
			}
		})
	}
}

func TestBackgroundHasNoTransparentPixels(t *testing.T) {
	img, err := NewLoader("").Image("background-day")
	if err != nil {
		t.Fatal(err)
	}
	for y := 0; y < img.Height(); y++ {
		for x := 0; x < img.Width(); x++ {
			if img.At(x, y) == core.ColorNone {
				t.Fatalf("pixel (%d, %d) is transparent", x, y)
			}
		}
	}
	if img.At(0, 0) != core.ColorSky {
		t.Errorf("top-left = %v, expected sky fill", img.At(0, 0))
	}
}

func TestImageCached(t *testing.T) {
	l := NewLoader("")
	a, err := l.Image("base")
	if err != nil {
		t.Fatal(err)
	}
	b, _ := l.Image("base")
	if a != b {
		t.Error("second Image() call should return the cached image")
	}
}

func TestUserDirectoryShadowsEmbedded(t *testing.T) {
	user := fstest.MapFS{
		"images/base.yaml": {Data: []byte("palette:\n  r: red\nrows:\n  - \"rr\"\n")},
	}
	l := NewLoaderFS(layered{user, embedded})

	base, err := l.Image("base")
	if err != nil {
		t.Fatal(err)
	}
	if base.Width() != 2 || base.Height() != 1 {
		t.Errorf("base = %dx%d, expected the user sprite", base.Width(), base.Height())
	}

	// Names missing from the user layer fall through
	if _, err := l.Image("pipe-green"); err != nil {
		t.Errorf("Image(pipe-green) failed: %v", err)
	}
}

func TestMissingAsset(t *testing.T) {
	l := NewLoaderFS(fstest.MapFS{})
	_, err := l.Image("nothing")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Image(nothing) error = %v, expected fs.ErrNotExist", err)
	}
}

func TestReadFile(t *testing.T) {
	l := NewLoaderFS(fstest.MapFS{"audio/sfx_hit.wav": {Data: []byte("RIFF")}})
	data, err := l.ReadFile(CategoryAudio, "sfx_hit.wav")
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "RIFF" {
		t.Errorf("ReadFile() = %q", data)
	}
}

func TestDecodeSprite(t *testing.T) {
	src := `
width: 3
height: 4
fill: blue
anchor: bottom
extend: 1
palette:
  r: red
rows:
  - "r.r"
  - ".r"
`
	img, err := DecodeSprite([]byte(src))
	if err != nil {
		t.Fatalf("DecodeSprite() failed: %v", err)
	}

	expected := [][]core.Color{
		{core.ColorBlue, core.ColorBlue, core.ColorBlue},
		{core.ColorRed, core.ColorBlue, core.ColorRed},
		{core.ColorBlue, core.ColorRed, core.ColorBlue},
		{core.ColorBlue, core.ColorRed, core.ColorBlue},
	}
	for y, row := range expected {
		for x, c := range row {
			if got := img.At(x, y); got != c {
				t.Errorf("At(%d, %d) = %v, expected %v", x, y, got, c)
			}
		}
	}
}

func TestDecodeSpriteErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"unknown char", "rows:\n  - \"x\"\n", "not in palette"},
		{"unknown color", "palette:\n  x: mauve\nrows:\n  - \"x\"\n", "unknown color"},
		{"too wide", "width: 1\nrows:\n  - \"..\"\n", "wider"},
		{"too tall", "height: 1\nrows:\n  - \".\"\n  - \".\"\n", "exceed"},
		{"bad anchor", "anchor: middle\nrows:\n  - \".\"\n", "anchor"},
		{"empty", "width: 0\n", "empty"},
		{"long key", "palette:\n  xy: red\nrows:\n  - \".\"\n", "single character"},
		{"not yaml", "rows: [", "parse"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeSprite([]byte(tc.src))
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Errorf("DecodeSprite() error = %v, expected it to mention %q", err, tc.want)
			}
		})
	}
}
