package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type action int

const (
	actionNone action = iota
	actionQuit
	actionAdvance
	actionRetreat
	actionTop
	actionBottom
	actionRefresh
)

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Top     key.Binding
	Bottom  key.Binding
	Refresh key.Binding
	Quit    key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Top:     key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "top")),
		Bottom:  key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "bottom")),
		Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Refresh, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Top, k.Bottom},
		{k.Refresh, k.Quit},
	}
}

// route maps one key press to one action. Unbound keys map to actionNone.
func (k keyMap) route(msg tea.KeyMsg) action {
	switch {
	case key.Matches(msg, k.Quit):
		return actionQuit
	case key.Matches(msg, k.Down):
		return actionAdvance
	case key.Matches(msg, k.Up):
		return actionRetreat
	case key.Matches(msg, k.Top):
		return actionTop
	case key.Matches(msg, k.Bottom):
		return actionBottom
	case key.Matches(msg, k.Refresh):
		return actionRefresh
	}
	return actionNone
}
