package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pingpong/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapMapKey(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name           string
		msg            tea.KeyMsg
		expectedAction core.Action
		expectedQuit   bool
	}{
		{"w", runeKey('w'), core.ActionLeftUp, false},
		{"W", runeKey('W'), core.ActionLeftUp, false},
		{"s", runeKey('s'), core.ActionLeftDown, false},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionRightUp, false},
		{"down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionRightDown, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionServe, false},
		{"p", runeKey('p'), core.ActionPause, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause, false},
		{"q", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('x'), core.ActionNone, false},
		{"help is not an action", runeKey('?'), core.ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			action, isQuit := keys.MapKey(tc.msg)
			if action != tc.expectedAction {
				t.Errorf("MapKey(%q) action = %v, expected %v", tc.msg.String(), action, tc.expectedAction)
			}
			if isQuit != tc.expectedQuit {
				t.Errorf("MapKey(%q) isQuit = %v, expected %v", tc.msg.String(), isQuit, tc.expectedQuit)
			}
		})
	}
}

func TestKeyMapHelpListsEveryBinding(t *testing.T) {
	keys := DefaultKeyMap()

	n := 0
	for _, col := range keys.FullHelp() {
		n += len(col)
	}
	if n != 8 {
		t.Errorf("FullHelp() lists %d bindings, expected 8", n)
	}
}
