package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestGameKeyMapAction(t *testing.T) {
	keys := DefaultGameKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"w", runeKey('w'), core.ActionUp},
		{"a", runeKey('a'), core.ActionLeft},
		{"s", runeKey('s'), core.ActionDown},
		{"d", runeKey('d'), core.ActionRight},
		{"k", runeKey('k'), core.ActionUp},
		{"h", runeKey('h'), core.ActionLeft},
		{"j", runeKey('j'), core.ActionDown},
		{"l", runeKey('l'), core.ActionRight},
		{"r", runeKey('r'), core.ActionRestart},
		{"q", runeKey('q'), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runeKey('x'), core.ActionNone},
		{"screenshot", tea.KeyMsg{Type: tea.KeyCtrlS}, core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keys.Action(tt.msg); got != tt.want {
				t.Errorf("Action(%q) = %s, want %s", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestSwipeTracker(t *testing.T) {
	st := NewSwipeTracker(config.Default().Input)

	if _, ok := st.Track(tea.MouseMsg{X: 10, Y: 5, Action: tea.MouseActionRelease}); ok {
		t.Error("release without press produced a gesture")
	}

	st.Track(tea.MouseMsg{X: 10, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	st.Track(tea.MouseMsg{X: 12, Y: 5, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	g, ok := st.Track(tea.MouseMsg{X: 14, Y: 6, Action: tea.MouseActionRelease})
	if !ok {
		t.Fatal("press and release should produce a gesture")
	}

	dx, dy := g.Delta()
	if dx != 40 || dy != 20 {
		t.Errorf("gesture delta = (%v, %v), want (40, 20)", dx, dy)
	}

	if _, ok := st.Track(tea.MouseMsg{X: 20, Y: 6, Action: tea.MouseActionRelease}); ok {
		t.Error("second release produced a gesture")
	}
}

func TestSwipeTrackerIgnoresOtherButtons(t *testing.T) {
	st := NewSwipeTracker(config.Default().Input)

	st.Track(tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonRight})
	if _, ok := st.Track(tea.MouseMsg{X: 9, Y: 1, Action: tea.MouseActionRelease}); ok {
		t.Error("right button drag produced a gesture")
	}

	st.Track(tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	st.Cancel()
	if _, ok := st.Track(tea.MouseMsg{X: 9, Y: 1, Action: tea.MouseActionRelease}); ok {
		t.Error("cancelled press produced a gesture")
	}
}
