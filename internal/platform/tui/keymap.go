package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/game"
)

// KeyMap defines the key bindings of the game.
type KeyMap struct {
	Flap       key.Binding
	Escape     key.Binding
	Quit       key.Binding
	Screenshot key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Flap, k.Escape, k.Screenshot}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Flap},
		{k.Escape, k.Quit, k.Screenshot},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Flap: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space/click", "flap"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "quit"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
}

// translateKey turns a key press into a game event. ok is false for keys
// the game does not know.
func (k KeyMap) translateKey(msg tea.KeyMsg) (ev game.Event, ok bool) {
	switch {
	case key.Matches(msg, k.Flap):
		return game.KeyDown(game.KeySpace), true
	case key.Matches(msg, k.Escape):
		return game.KeyDown(game.KeyEscape), true
	case key.Matches(msg, k.Quit):
		return game.Event{Kind: game.EventQuit}, true
	}
	return game.Event{}, false
}

// translateMouse turns a button press into a game event. Releases and
// motion are not events.
func translateMouse(msg tea.MouseMsg) (ev game.Event, ok bool) {
	if msg.Action != tea.MouseActionPress {
		return game.Event{}, false
	}
	switch msg.Button {
	case tea.MouseButtonLeft:
		return game.MouseDown(game.MouseLeft), true
	case tea.MouseButtonMiddle:
		return game.MouseDown(game.MouseMiddle), true
	case tea.MouseButtonRight:
		return game.MouseDown(game.MouseRight), true
	}
	return game.Event{}, false
}
