package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pong-clone/internal/kbd"
)

// KeyMap holds the terminal key bindings. It implements help.KeyMap.
type KeyMap struct {
	LeftUp     key.Binding
	LeftDown   key.Binding
	RightUp    key.Binding
	RightDown  key.Binding
	Restart    key.Binding
	Quit       key.Binding
	Help       key.Binding
	Screenshot key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		LeftUp: key.NewBinding(
			key.WithKeys("w", "W"),
			key.WithHelp("w", "left up"),
		),
		LeftDown: key.NewBinding(
			key.WithKeys("s", "S"),
			key.WithHelp("s", "left down"),
		),
		RightUp: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "right up"),
		),
		RightDown: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "right down"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r", "R"),
			key.WithHelp("r", "restart"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "help"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Restart, km.Quit, km.Help}
}

// FullHelp implements help.KeyMap.
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.LeftUp, km.LeftDown},
		{km.RightUp, km.RightDown},
		{km.Restart, km.Screenshot},
		{km.Quit, km.Help},
	}
}

// MapKey translates a key message to the scancode the game polls.
// Returns kbd.ScancodeUnknown for keys the game does not use, and whether
// the key is a quit request.
func (km KeyMap) MapKey(msg tea.KeyMsg) (code kbd.Scancode, isQuit bool) {
	switch {
	case key.Matches(msg, km.Quit):
		if msg.Type == tea.KeyEsc {
			return kbd.ScancodeEscape, true
		}
		if msg.String() == "q" {
			return kbd.ScancodeQ, true
		}
		return kbd.ScancodeUnknown, true
	case key.Matches(msg, km.LeftUp):
		return kbd.ScancodeW, false
	case key.Matches(msg, km.LeftDown):
		return kbd.ScancodeS, false
	case key.Matches(msg, km.RightUp):
		return kbd.ScancodeUp, false
	case key.Matches(msg, km.RightDown):
		return kbd.ScancodeDown, false
	case key.Matches(msg, km.Restart):
		return kbd.ScancodeR, false
	case key.Matches(msg, km.Help):
		return kbd.ScancodeF1, false
	}
	return kbd.ScancodeUnknown, false
}
