package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/monkey-arcade/internal/core"
)

func TestKeyMapMapKey(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"up jumps", tea.KeyMsg{Type: tea.KeyUp}, core.ActionJump},
		{"w jumps", keyRune('w'), core.ActionJump},
		{"r restarts", keyRune('r'), core.ActionRestart},
		{"enter restarts", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionRestart},
		{"q quits", keyRune('q'), core.ActionQuit},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"ctrl+s is not an action", tea.KeyMsg{Type: tea.KeyCtrlS}, core.ActionNone},
		{"x ignored", keyRune('x'), core.ActionNone},
	}
	for _, tt := range tests {
		if got := keys.MapKey(tt.msg); got != tt.want {
			t.Errorf("%s: MapKey = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestMapMouse(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.MouseMsg
		want core.Action
	}{
		{"left press", tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, core.ActionPointer},
		{"left release", tea.MouseMsg{Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}, core.ActionNone},
		{"right press", tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonRight}, core.ActionNone},
		{"motion", tea.MouseMsg{Action: tea.MouseActionMotion}, core.ActionNone},
	}
	for _, tt := range tests {
		if got := MapMouse(tt.msg); got != tt.want {
			t.Errorf("%s: MapMouse = %v, want %v", tt.name, got, tt.want)
		}
	}
}
