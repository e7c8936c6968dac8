package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// palette maps core.Color to ANSI 256-color codes. ColorNone keeps the
// terminal default.
var palette = map[core.Color]lipgloss.Color{
	core.ColorBlack:         lipgloss.Color("0"),
	core.ColorRed:           lipgloss.Color("1"),
	core.ColorGreen:         lipgloss.Color("2"),
	core.ColorYellow:        lipgloss.Color("3"),
	core.ColorBlue:          lipgloss.Color("4"),
	core.ColorMagenta:       lipgloss.Color("5"),
	core.ColorCyan:          lipgloss.Color("6"),
	core.ColorWhite:         lipgloss.Color("7"),
	core.ColorBrightRed:     lipgloss.Color("9"),
	core.ColorBrightGreen:   lipgloss.Color("10"),
	core.ColorBrightYellow:  lipgloss.Color("11"),
	core.ColorBrightBlue:    lipgloss.Color("12"),
	core.ColorBrightMagenta: lipgloss.Color("13"),
	core.ColorBrightCyan:    lipgloss.Color("14"),
	core.ColorBrightWhite:   lipgloss.Color("15"),
	core.ColorOrange:        lipgloss.Color("208"),
	core.ColorGray:          lipgloss.Color("245"),
	core.ColorSky:           lipgloss.Color("117"),
	core.ColorSand:          lipgloss.Color("222"),
	core.ColorDarkGreen:     lipgloss.Color("22"),
}

// cellColors is the style key of a cell.
type cellColors struct {
	fg, bg core.Color
}

// cellStyles caches one lipgloss style per color pair.
type cellStyles struct {
	cache map[cellColors]lipgloss.Style
}

func newCellStyles() *cellStyles {
	return &cellStyles{cache: make(map[cellColors]lipgloss.Style)}
}

func (c *cellStyles) style(colors cellColors) lipgloss.Style {
	if st, ok := c.cache[colors]; ok {
		return st
	}
	st := lipgloss.NewStyle()
	if fg, ok := palette[colors.fg]; ok {
		st = st.Foreground(fg)
	}
	if bg, ok := palette[colors.bg]; ok {
		st = st.Background(bg)
	}
	c.cache[colors] = st
	return st
}

// cellRun is a horizontal stretch of cells sharing colors.
type cellRun struct {
	colors cellColors
	text   string
}

// rowRuns groups the cells of row y into runs of equal colors.
func rowRuns(s *core.Screen, y int) []cellRun {
	var runs []cellRun
	x := 0
	for x < s.Width() {
		cell := s.GetCell(x, y)
		colors := cellColors{cell.Fg, cell.Bg}

		var sb strings.Builder
		for x < s.Width() {
			cell = s.GetCell(x, y)
			if (cellColors{cell.Fg, cell.Bg}) != colors {
				break
			}
			sb.WriteRune(cell.Rune)
			x++
		}
		runs = append(runs, cellRun{colors: colors, text: sb.String()})
	}
	return runs
}

// renderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func renderScreen(s *core.Screen, styles *cellStyles) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*4 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for _, r := range rowRuns(s, y) {
			sb.WriteString(styles.style(r.colors).Render(r.text))
		}
	}
	return sb.String()
}
