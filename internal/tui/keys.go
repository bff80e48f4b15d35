package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Toggle      key.Binding
	Reset       key.Binding
	Longer      key.Binding
	Shorter     key.Binding
	SetDuration key.Binding
	Add         key.Binding
	Up          key.Binding
	Down        key.Binding
	Complete    key.Binding
	Edit        key.Binding
	Remove      key.Binding
	Quit        key.Binding

	Submit    key.Binding
	Cancel    key.Binding
	NextField key.Binding
	ForceQuit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Toggle:      key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "start/pause")),
		Reset:       key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Longer:      key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "longer")),
		Shorter:     key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "shorter")),
		SetDuration: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "length")),
		Add:         key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Complete:    key.NewBinding(key.WithKeys("x", "enter"), key.WithHelp("x", "done")),
		Edit:        key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		Remove:      key.NewBinding(key.WithKeys("delete", "backspace"), key.WithHelp("del", "remove")),
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),

		Submit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		NextField: key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "next field")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

func (k keyMap) normalHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Reset, k.Longer, k.Shorter, k.SetDuration, k.Add, k.Complete, k.Edit, k.Remove, k.Quit}
}

func (k keyMap) formHelp() []key.Binding {
	return []key.Binding{k.Submit, k.NextField, k.Cancel}
}
