package panel

import (
	"math"
	"testing"
)

func finishTransition(m *Machine) {
	for i := 0; i < m.Leaves(); i++ {
		m.LeafDone()
	}
}

func TestMachine_OpensAndCloses(t *testing.T) {
	m := NewMachine(Reversible)
	if m.State() != Closed {
		t.Fatalf("expected initial state closed, got %s", m.State())
	}

	if !m.HandleGesture(1) {
		t.Fatal("forward gesture from closed should start a transition")
	}
	if m.State() != Opening {
		t.Fatalf("expected opening, got %s", m.State())
	}

	finishTransition(m)
	if m.State() != Open {
		t.Fatalf("expected open after both leaves land, got %s", m.State())
	}

	if !m.HandleGesture(-1) {
		t.Fatal("backward gesture from open should start a transition")
	}
	finishTransition(m)
	if m.State() != Closed {
		t.Fatalf("expected closed, got %s", m.State())
	}
}

func TestMachine_DropsGesturesMidTransition(t *testing.T) {
	m := NewMachine(Reversible)
	m.HandleGesture(1)

	if m.HandleGesture(1) || m.HandleGesture(-1) {
		t.Fatal("gestures during a transition must be dropped")
	}
	if m.State() != Opening {
		t.Fatalf("expected opening, got %s", m.State())
	}
}

// Firing a storm of gestures with no animation completions in between must
// never stack transitions: at most one is active at any time.
func TestMachine_GestureStormStartsOneTransition(t *testing.T) {
	m := NewMachine(Reversible)
	started := 0
	for i := 0; i < 1000; i++ {
		delta := float64(1)
		if i%3 == 0 {
			delta = -1
		}
		if m.HandleGesture(delta) {
			started++
		}
	}
	if started != 1 {
		t.Fatalf("expected exactly one transition to start, got %d", started)
	}
	if m.State() != Opening {
		t.Fatalf("expected opening, got %s", m.State())
	}
}

func TestMachine_OpenCloseIdempotent(t *testing.T) {
	m := NewMachine(Reversible)
	if m.Close() {
		t.Fatal("close while closed must be a no-op")
	}

	m.Open()
	finishTransition(m)
	if m.Open() {
		t.Fatal("open while open must be a no-op")
	}
	if m.State() != Open {
		t.Fatalf("expected open, got %s", m.State())
	}
}

func TestMachine_SingleLeafDoesNotAdvance(t *testing.T) {
	m := NewMachine(Reversible)
	m.Open()

	if m.LeafDone() {
		t.Fatal("machine advanced before the second leaf landed")
	}
	if m.State() != Opening {
		t.Fatalf("expected opening, got %s", m.State())
	}
	if !m.LeafDone() {
		t.Fatal("machine did not advance after the second leaf landed")
	}
}

func TestMachine_OneShotRetiresGestures(t *testing.T) {
	m := NewMachine(OneShot)
	m.HandleGesture(1)
	finishTransition(m)

	if m.HandleGesture(-1) {
		t.Fatal("one-shot mode must ignore gestures once open")
	}
	if m.State() != Open {
		t.Fatalf("expected open, got %s", m.State())
	}
	if !m.Close() {
		t.Fatal("programmatic close must still work in one-shot mode")
	}
}

func TestDirectionFor_MalformedDeltas(t *testing.T) {
	for _, delta := range []float64{0, math.NaN(), math.Inf(1), math.Inf(-1)} {
		if DirectionFor(delta) != None {
			t.Fatalf("delta %v should carry no direction", delta)
		}
	}
	if DirectionFor(0.25) != Forward {
		t.Fatal("positive delta should be forward")
	}
	if DirectionFor(-3) != Backward {
		t.Fatal("negative delta should be backward")
	}
}
