package t2048

import (
	"math"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// DirectionForAction maps a directional action to a Direction.
func DirectionForAction(a core.Action) (Direction, bool) {
	switch a {
	case core.ActionUp:
		return DirUp, true
	case core.ActionDown:
		return DirDown, true
	case core.ActionLeft:
		return DirLeft, true
	case core.ActionRight:
		return DirRight, true
	default:
		return 0, false
	}
}

// ClassifySwipe turns a gesture into a direction. The dominant axis wins,
// ties go vertical, and gestures shorter than minDistance are taps.
func ClassifySwipe(g core.Gesture, minDistance float64) (Direction, bool) {
	dx, dy := g.Delta()
	if math.Hypot(dx, dy) < minDistance {
		return 0, false
	}

	if math.Abs(dx) > math.Abs(dy) {
		if dx > 0 {
			return DirRight, true
		}
		return DirLeft, true
	}
	if dy > 0 {
		return DirDown, true
	}
	return DirUp, true
}

// InputAdapter turns key actions and swipes into directional commands,
// dropping everything while the State is not Idle.
type InputAdapter struct {
	state       *State
	minDistance float64
}

// NewInputAdapter creates an adapter gated on state.
func NewInputAdapter(state *State, minSwipeDistance float64) *InputAdapter {
	return &InputAdapter{
		state:       state,
		minDistance: minSwipeDistance,
	}
}

// FromAction returns the direction for a key action, if accepted.
func (ia *InputAdapter) FromAction(a core.Action) (Direction, bool) {
	if !ia.state.Idle() {
		return 0, false
	}
	return DirectionForAction(a)
}

// FromGesture returns the direction for a swipe, if accepted.
func (ia *InputAdapter) FromGesture(g core.Gesture) (Direction, bool) {
	if !ia.state.Idle() {
		return 0, false
	}
	return ClassifySwipe(g, ia.minDistance)
}

// directionalActions is the order in which simultaneous keys are tried.
var directionalActions = [...]core.Action{
	core.ActionUp,
	core.ActionDown,
	core.ActionLeft,
	core.ActionRight,
}

// Next returns the first accepted direction in the frame: keys first,
// then gestures in arrival order.
func (ia *InputAdapter) Next(in core.InputFrame) (Direction, bool) {
	for _, a := range directionalActions {
		if !in.Has(a) {
			continue
		}
		if dir, ok := ia.FromAction(a); ok {
			return dir, true
		}
	}
	for _, g := range in.Gestures {
		if dir, ok := ia.FromGesture(g); ok {
			return dir, true
		}
	}
	return 0, false
}
