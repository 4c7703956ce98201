package core

import "testing"

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if !f.Empty() {
		t.Fatal("new frame should be empty")
	}

	f.Set(ActionLeft)
	f.AddGesture(Gesture{StartX: 0, StartY: 0, EndX: 40, EndY: 5})

	if !f.Has(ActionLeft) {
		t.Error("Has(ActionLeft) should be true after Set")
	}
	if f.Has(ActionRight) {
		t.Error("Has(ActionRight) should be false")
	}
	if len(f.Gestures) != 1 {
		t.Fatalf("Gestures length = %d, want 1", len(f.Gestures))
	}

	dx, dy := f.Gestures[0].Delta()
	if dx != 40 || dy != 5 {
		t.Errorf("Delta() = (%v, %v), want (40, 5)", dx, dy)
	}

	f.Clear()
	if !f.Empty() {
		t.Error("frame should be empty after Clear")
	}
}

func TestZeroInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionUp) {
		t.Error("zero frame should report no actions")
	}
	f.Set(ActionUp)
	if !f.Has(ActionUp) {
		t.Error("Set on zero frame should allocate the action map")
	}
}

func TestActionString(t *testing.T) {
	tests := map[Action]string{
		ActionNone:    "None",
		ActionUp:      "Up",
		ActionLeft:    "Left",
		ActionRestart: "Restart",
		Action(99):    "Unknown",
	}
	for a, want := range tests {
		if got := a.String(); got != want {
			t.Errorf("Action(%d).String() = %q, want %q", a, got, want)
		}
	}
}
