package input

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"pickbox/internal/domain"
)

// KeyMap defines the combobox key bindings. It doubles as the help.KeyMap
// for the footer.
type KeyMap struct {
	Down   key.Binding
	Up     key.Binding
	First  key.Binding
	Last   key.Binding
	Select key.Binding
	Close  key.Binding
	Help   key.Binding
	Quit   key.Binding
}

// DefaultKeyMap returns the standard bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Down: key.NewBinding(
			key.WithKeys("down", "ctrl+n"),
			key.WithHelp("↓", "open/next"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("↑", "open/previous"),
		),
		First: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("home", "first"),
		),
		Last: key.NewBinding(
			key.WithKeys("end"),
			key.WithHelp("end", "last"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select/accept"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close/cancel"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Down, k.Up, k.Select, k.Close, k.Help}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Down, k.Up, k.First, k.Last},
		{k.Select, k.Close, k.Help, k.Quit},
	}
}

// KeyFromMsg translates a Bubble Tea key into a domain key
func (k KeyMap) KeyFromMsg(msg tea.KeyMsg) domain.Key {
	switch {
	case key.Matches(msg, k.Down):
		return domain.KeyArrowDown
	case key.Matches(msg, k.Up):
		return domain.KeyArrowUp
	case key.Matches(msg, k.First):
		return domain.KeyHome
	case key.Matches(msg, k.Last):
		return domain.KeyEnd
	case key.Matches(msg, k.Select):
		return domain.KeyEnter
	case key.Matches(msg, k.Close):
		return domain.KeyEscape
	}

	switch msg.Type {
	case tea.KeyTab:
		return domain.KeyTab
	case tea.KeyRunes, tea.KeySpace:
		return domain.KeyPrintable
	default:
		return domain.KeyOther
	}
}
