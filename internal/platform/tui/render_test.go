package tui

import (
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

func TestRowRuns(t *testing.T) {
	s := core.NewScreen(5, 1)
	s.SetCell(0, 0, core.Cell{Rune: '▀', Fg: core.ColorSky, Bg: core.ColorSky})
	s.SetCell(1, 0, core.Cell{Rune: '▀', Fg: core.ColorSky, Bg: core.ColorSky})
	s.SetCell(2, 0, core.Cell{Rune: '▀', Fg: core.ColorSky, Bg: core.ColorGreen})
	s.SetCell(3, 0, core.Cell{Rune: 'x', Fg: core.ColorSky, Bg: core.ColorGreen})

	runs := rowRuns(s, 0)
	expected := []cellRun{
		{cellColors{core.ColorSky, core.ColorSky}, "▀▀"},
		{cellColors{core.ColorSky, core.ColorGreen}, "▀x"},
		{cellColors{core.ColorNone, core.ColorNone}, " "},
	}
	if len(runs) != len(expected) {
		t.Fatalf("rowRuns() = %+v, expected %+v", runs, expected)
	}
	for i := range expected {
		if runs[i] != expected[i] {
			t.Errorf("run %d = %+v, expected %+v", i, runs[i], expected[i])
		}
	}
}

func TestRenderScreenText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "score", core.ColorWhite)
	s.SetCell(0, 1, core.Cell{Rune: '▀', Fg: core.ColorOrange, Bg: core.ColorSand})

	if got := stripANSI(renderScreen(s, newCellStyles())); got != s.String() {
		t.Errorf("renderScreen() text = %q, expected %q", got, s.String())
	}
}

func TestCellStylesCached(t *testing.T) {
	styles := newCellStyles()
	key := cellColors{core.ColorSky, core.ColorSand}

	styles.style(key)
	styles.style(key)
	styles.style(cellColors{core.ColorNone, core.ColorNone})
	if len(styles.cache) != 2 {
		t.Errorf("cache holds %d styles, expected 2", len(styles.cache))
	}
}

func TestPaletteCoversColors(t *testing.T) {
	for c := core.ColorBlack; c <= core.ColorDarkGreen; c++ {
		if _, ok := palette[c]; !ok {
			t.Errorf("color %d has no terminal color", c)
		}
	}
}
