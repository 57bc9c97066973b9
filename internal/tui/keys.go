package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up      key.Binding
	down    key.Binding
	enter   key.Binding
	esc     key.Binding
	tab     key.Binding
	backtab key.Binding
	quit    key.Binding
	logout  key.Binding
	refresh key.Binding
	more    key.Binding
	accept  key.Binding
	edit    key.Binding
	profile key.Binding
	home    key.Binding
	rating  key.Binding
	yes     key.Binding
	no      key.Binding
}

var keys = keyMap{
	up:      key.NewBinding(key.WithKeys("up", "k")),
	down:    key.NewBinding(key.WithKeys("down", "j")),
	enter:   key.NewBinding(key.WithKeys("enter")),
	esc:     key.NewBinding(key.WithKeys("esc")),
	tab:     key.NewBinding(key.WithKeys("tab")),
	backtab: key.NewBinding(key.WithKeys("shift+tab")),
	quit:    key.NewBinding(key.WithKeys("q", "ctrl+c")),
	logout:  key.NewBinding(key.WithKeys("L")),
	refresh: key.NewBinding(key.WithKeys("r")),
	more:    key.NewBinding(key.WithKeys("m", "pgdown")),
	accept:  key.NewBinding(key.WithKeys("a")),
	edit:    key.NewBinding(key.WithKeys("e")),
	profile: key.NewBinding(key.WithKeys("1")),
	home:    key.NewBinding(key.WithKeys("2")),
	rating:  key.NewBinding(key.WithKeys("3")),
	yes:     key.NewBinding(key.WithKeys("y")),
	no:      key.NewBinding(key.WithKeys("n")),
}
