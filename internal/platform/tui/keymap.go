package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
)

// GameKeyMap defines the key bindings for the game screen.
type GameKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Restart    key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Restart, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Restart, k.Screenshot, k.Quit},
	}
}

// DefaultGameKeyMap returns arrows, WASD and hjkl for movement.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d/l", "right"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "new game"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Action translates a key message to a game action.
// Screenshot is handled by the model and maps to ActionNone.
func (k GameKeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Up):
		return core.ActionUp
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	}
	return core.ActionNone
}

// SwipeTracker turns a left-button press and its release into a gesture.
// Terminal cells are scaled into gesture units so that swipe thresholds do
// not depend on the cell aspect ratio.
type SwipeTracker struct {
	unitsPerColumn float64
	unitsPerRow    float64
	pressed        bool
	startX         int
	startY         int
}

// NewSwipeTracker creates a tracker using the configured cell scale.
func NewSwipeTracker(cfg config.InputConfig) SwipeTracker {
	return SwipeTracker{
		unitsPerColumn: cfg.UnitsPerColumn,
		unitsPerRow:    cfg.UnitsPerRow,
	}
}

// Track feeds one mouse message. It returns a gesture when a press is
// released; motion and other buttons are ignored.
func (st *SwipeTracker) Track(msg tea.MouseMsg) (core.Gesture, bool) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return core.Gesture{}, false
		}
		st.pressed = true
		st.startX, st.startY = msg.X, msg.Y
		return core.Gesture{}, false

	case tea.MouseActionRelease:
		if !st.pressed {
			return core.Gesture{}, false
		}
		st.pressed = false
		return core.Gesture{
			StartX: float64(st.startX) * st.unitsPerColumn,
			StartY: float64(st.startY) * st.unitsPerRow,
			EndX:   float64(msg.X) * st.unitsPerColumn,
			EndY:   float64(msg.Y) * st.unitsPerRow,
		}, true
	}
	return core.Gesture{}, false
}

// Cancel forgets a pending press.
func (st *SwipeTracker) Cancel() {
	st.pressed = false
}
