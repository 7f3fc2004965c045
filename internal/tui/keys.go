package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Handle key.Binding
	Left   key.Binding
	Right  key.Binding
	Less   key.Binding
	More   key.Binding
	Reset  key.Binding
	Quit   key.Binding
}

var keys = keyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Handle: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "handle")),
	Left:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "slot -1")),
	Right:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "slot +1")),
	Less:   key.NewBinding(key.WithKeys("["), key.WithHelp("[", "less")),
	More:   key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "more")),
	Reset:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
	Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Handle, k.Left, k.Right, k.Less, k.More, k.Reset, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Handle},
		{k.Left, k.Right},
		{k.Less, k.More, k.Reset, k.Quit},
	}
}

var _ help.KeyMap = keyMap{}
