package tui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/game"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// footerRows is the height of the help line below the game.
const footerRows = 1

// Options configures a Model.
type Options struct {
	World    *game.World
	Renderer *game.Renderer
	Store    storage.Store // the record is saved here on quit
	Logger   *log.Logger
	TickRate int
	Width    int // initial terminal size
	Height   int
}

// Model is the Bubble Tea model running one game session.
type Model struct {
	world    *game.World
	renderer *game.Renderer
	store    storage.Store
	logger   *log.Logger
	tickRate int

	screen *core.Screen
	styles *cellStyles
	keys   KeyMap
	help   help.Model

	events   []game.Event // collected since the last tick
	quitting bool
	saved    bool // a save was attempted, successful or not
	saveErr  error
}

// NewModel creates a model for opts.
func NewModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(os.Stderr)
	}
	return Model{
		world:    opts.World,
		renderer: opts.Renderer,
		store:    opts.Store,
		logger:   logger,
		tickRate: opts.TickRate,
		screen:   core.NewScreen(opts.Width, max(opts.Height-footerRows, 0)),
		styles:   newCellStyles(),
		keys:     DefaultKeyMap(),
		help:     help.New(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if ev, ok := translateMouse(msg); ok {
			m.events = append(m.events, ev)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, max(msg.Height-footerRows, 0))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. Game keys are queued for the next
// tick; the screenshot key acts immediately.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}
	if ev, ok := m.keys.translateKey(msg); ok {
		m.events = append(m.events, ev)
	}
	return m, nil
}

// handleTick advances the world one tick with the queued events.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}

	prevScore := m.world.Score()
	res := m.world.Advance(m.events)
	m.events = m.events[:0]

	if res.Quit {
		return m.quit()
	}

	switch res.Transition {
	case game.Started:
		m.logger.Info("game started", "previous_score", prevScore)
	case game.Ended:
		m.logger.Info("game over", "score", m.world.Score(), "high_score", m.world.Record().HighScore)
	}

	return m, tickCmd(m.tickRate)
}

// quit saves the record and stops the program. A failed save is kept for
// Err and does not prevent exiting.
func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m = m.save()
	return m, tea.Quit
}

// save writes the record to the store once.
func (m Model) save() Model {
	if m.saved {
		return m
	}
	m.saved = true
	rec := m.world.Record()

	if m.store == nil {
		m.saveErr = errors.New("tui: no record store")
	} else if err := m.store.Save(rec); err != nil {
		m.saveErr = fmt.Errorf("tui: save high score: %w", err)
	}

	if m.saveErr != nil {
		m.logger.Error("could not save high score", "error", m.saveErr)
	} else {
		m.logger.Info("high score saved", "high_score", rec.HighScore, "path", rec.Path)
	}
	return m
}

// Err returns the error of the save made on quit, if any.
func (m Model) Err() error {
	return m.saveErr
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.renderer.Compose(m.world, m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".flappy", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("flappy_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.renderer.Compose(m.world, m.screen)
	return renderScreen(m.screen, m.styles) + "\n" + m.help.View(m.keys)
}

// Run plays the game until the player quits. The error is the program
// error or, failing that, the error of saving the record.
func Run(opts Options) error {
	m := NewModel(opts)
	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithFPS(opts.TickRate),
	)
	return run(p, m)
}

// run runs p and saves the record if the program stopped without passing
// through quit, as on SIGTERM or SIGINT. initial is the model p started
// with; it shares the world with every later model.
func run(p *tea.Program, initial Model) error {
	final, err := p.Run()

	m, ok := final.(Model)
	if !ok {
		m = initial
	}
	m = m.save()

	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return m.Err()
}
