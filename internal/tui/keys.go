package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up      key.Binding
	down    key.Binding
	tab     key.Binding
	enter   key.Binding
	esc     key.Binding
	quit    key.Binding
	newNote key.Binding
	delete  key.Binding
	restore key.Binding
	undo    key.Binding
	copy    key.Binding
	theme   key.Binding
	refresh key.Binding
	submit  key.Binding
}

var keys = keyMap{
	up:      key.NewBinding(key.WithKeys("up", "k")),
	down:    key.NewBinding(key.WithKeys("down", "j")),
	tab:     key.NewBinding(key.WithKeys("tab")),
	enter:   key.NewBinding(key.WithKeys("enter")),
	esc:     key.NewBinding(key.WithKeys("esc")),
	quit:    key.NewBinding(key.WithKeys("q", "ctrl+c")),
	newNote: key.NewBinding(key.WithKeys("n")),
	delete:  key.NewBinding(key.WithKeys("d")),
	restore: key.NewBinding(key.WithKeys("r")),
	undo:    key.NewBinding(key.WithKeys("u")),
	copy:    key.NewBinding(key.WithKeys("c")),
	theme:   key.NewBinding(key.WithKeys("t")),
	refresh: key.NewBinding(key.WithKeys("s")),
	submit:  key.NewBinding(key.WithKeys("ctrl+s")),
}
