package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

func newTestModel(t *testing.T, store *storage.Store) Model {
	t.Helper()

	m := NewModel(Options{
		Config:  config.Default(),
		Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: 60, Seed: 42},
		Store:   store,
		Player:  "tester",
	})
	m.Init()
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()

	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return nm
}

func tick(t *testing.T, m Model, n int) Model {
	t.Helper()

	for range n {
		m = update(t, m, TickMsg{})
	}
	return m
}

// playUntilScore cycles through the directions until some points are scored.
func playUntilScore(t *testing.T, m Model) Model {
	t.Helper()

	moves := []tea.KeyMsg{
		{Type: tea.KeyLeft}, {Type: tea.KeyDown}, {Type: tea.KeyRight}, {Type: tea.KeyUp},
	}
	for i := 0; i < 400 && m.Score() == 0; i++ {
		m = update(t, m, moves[i%len(moves)])
		m = tick(t, m, 6)
	}
	if m.Score() == 0 {
		t.Fatal("no points scored")
	}
	return m
}

func TestModelViewShowsBoard(t *testing.T) {
	m := newTestModel(t, nil)
	m = tick(t, m, 1)

	view := m.View()
	for _, want := range []string{"Score: 0", "Best: 0", "new game"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, nil)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit should return tea.Quit")
	}
	if view := next.View(); view != "" {
		t.Errorf("view after quit = %q, want empty", view)
	}
}

func TestModelResizeKeepsScore(t *testing.T) {
	m := newTestModel(t, nil)
	m = playUntilScore(t, m)
	score := m.Score()

	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	m = tick(t, m, 1)
	if m.Score() != score {
		t.Errorf("score after resize = %d, want %d", m.Score(), score)
	}
}

func TestModelSwipeMoves(t *testing.T) {
	m := newTestModel(t, nil)
	m = tick(t, m, 10)

	// Swipe in every direction; at least one must move the opening board
	swipes := [][2]int{{10, 0}, {-10, 0}, {0, 5}, {0, -5}}
	moved := false
	for _, s := range swipes {
		m = update(t, m, tea.MouseMsg{X: 40, Y: 12, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
		m = update(t, m, tea.MouseMsg{X: 40 + s[0], Y: 12 + s[1], Action: tea.MouseActionRelease})
		m = update(t, m, TickMsg{})
		if m.gameState.Busy {
			moved = true
			break
		}
	}
	if !moved {
		t.Error("no swipe produced a move")
	}
}

func TestModelRestartRecordsScore(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()

	m := newTestModel(t, store)
	m = playUntilScore(t, m)
	m = tick(t, m, 10)
	score := m.Score()

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	m = tick(t, m, 1)

	if m.Score() != 0 {
		t.Errorf("score after restart = %d, want 0", m.Score())
	}
	if m.HighScore() != score {
		t.Errorf("high score = %d, want %d", m.HighScore(), score)
	}

	scores, err := store.TopScores("2048", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 || scores[0].Score != score || scores[0].Player != "tester" {
		t.Errorf("stored scores = %+v, want one entry of %d by tester", scores, score)
	}
	if scores[0].MaxTile < 4 {
		t.Errorf("stored max tile = %d, want at least 4", scores[0].MaxTile)
	}

	// A fresh game with no points is not recorded
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	tick(t, m, 1)
	scores, _ = store.TopScores("2048", 10)
	if len(scores) != 1 {
		t.Errorf("stored scores = %d, want 1", len(scores))
	}
}
