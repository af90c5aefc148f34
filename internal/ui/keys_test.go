package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func runeKey(r rune) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}} }

func TestRoute(t *testing.T) {
	keys := defaultKeys()
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want action
	}{
		{name: "q", msg: runeKey('q'), want: actionQuit},
		{name: "ctrl+c", msg: tea.KeyMsg{Type: tea.KeyCtrlC}, want: actionQuit},
		{name: "down", msg: tea.KeyMsg{Type: tea.KeyDown}, want: actionAdvance},
		{name: "j", msg: runeKey('j'), want: actionAdvance},
		{name: "up", msg: tea.KeyMsg{Type: tea.KeyUp}, want: actionRetreat},
		{name: "k", msg: runeKey('k'), want: actionRetreat},
		{name: "home", msg: tea.KeyMsg{Type: tea.KeyHome}, want: actionTop},
		{name: "end", msg: tea.KeyMsg{Type: tea.KeyEnd}, want: actionBottom},
		{name: "r", msg: runeKey('r'), want: actionRefresh},
		{name: "x ignored", msg: runeKey('x'), want: actionNone},
		{name: "enter ignored", msg: tea.KeyMsg{Type: tea.KeyEnter}, want: actionNone},
		{name: "left ignored", msg: tea.KeyMsg{Type: tea.KeyLeft}, want: actionNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keys.route(tt.msg); got != tt.want {
				t.Fatalf("route(%q) = %d, want %d", tt.msg.String(), got, tt.want)
			}
		})
	}
}
