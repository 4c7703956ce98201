package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // Up arrow, W, K
	ActionDown           // Down arrow, S, J
	ActionLeft           // Left arrow, A, H
	ActionRight          // Right arrow, D, L
	ActionRestart        // R - start a new game
	ActionQuit           // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Gesture is a pointer drag from a start point to an end point, in
// abstract units. Positive Y points down.
type Gesture struct {
	StartX, StartY float64
	EndX, EndY     float64
}

// Delta returns the gesture displacement.
func (g Gesture) Delta() (dx, dy float64) {
	return g.EndX - g.StartX, g.EndY - g.StartY
}

// InputFrame collects the input delivered during one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Gestures holds completed swipes in arrival order.
	Gestures []Gesture
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// AddGesture records a completed swipe for this frame.
func (f *InputFrame) AddGesture(g Gesture) {
	f.Gestures = append(f.Gestures, g)
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Empty reports whether nothing was delivered this frame.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0 && len(f.Gestures) == 0
}

// Clear resets all input for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Gestures = f.Gestures[:0]
}
