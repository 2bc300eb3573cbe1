package anim

import (
	"testing"
	"time"
)

func TestAnimation_ProgressAndCompletion(t *testing.T) {
	a := New("panel/test", time.Second, Linear)
	a, cmd := a.Start()
	if cmd == nil {
		t.Fatal("expected a frame command")
	}
	if a.Progress() != 0 {
		t.Fatalf("expected zero progress at start, got %f", a.Progress())
	}

	a, cmd = a.Update(FrameMsg{ID: "panel/test", At: a.start.Add(500 * time.Millisecond)})
	if cmd == nil {
		t.Fatal("expected a follow-up frame command")
	}
	if got := a.Progress(); got < 0.49 || got > 0.51 {
		t.Fatalf("expected progress near 0.5, got %f", got)
	}

	a, cmd = a.Update(FrameMsg{ID: "panel/test", At: a.start.Add(time.Second)})
	if !a.Done() {
		t.Fatal("expected animation to be done")
	}
	msg := cmd()
	done, ok := msg.(DoneMsg)
	if !ok || done.ID != "panel/test" {
		t.Fatalf("expected DoneMsg for panel/test, got %#v", msg)
	}
	if a.Progress() != 1 {
		t.Fatalf("expected full progress, got %f", a.Progress())
	}
}

func TestAnimation_IgnoresForeignFrames(t *testing.T) {
	a := New("a", time.Second, Linear)
	a, _ = a.Start()

	updated, cmd := a.Update(FrameMsg{ID: "b", At: a.start.Add(2 * time.Second)})
	if cmd != nil {
		t.Fatal("foreign frame must not produce a command")
	}
	if updated.Done() {
		t.Fatal("foreign frame must not complete the animation")
	}
}

func TestEasing_Endpoints(t *testing.T) {
	for name, easing := range map[string]Easing{
		"linear":            Linear,
		"ease-in-cubic":     EaseInCubic,
		"ease-out-cubic":    EaseOutCubic,
		"ease-in-out-cubic": EaseInOutCubic,
	} {
		if got := easing(0); got != 0 {
			t.Fatalf("%s(0) = %f, want 0", name, got)
		}
		if got := easing(1); got < 0.999 || got > 1.001 {
			t.Fatalf("%s(1) = %f, want 1", name, got)
		}
	}
}

func TestEasingByName_UnknownFallsBackToLinear(t *testing.T) {
	easing := EasingByName("bounce-elastic")
	if got := easing(0.3); got != 0.3 {
		t.Fatalf("unknown easing should be linear, got %f at 0.3", got)
	}
}

func TestSequence_StagesPlayInOrder(t *testing.T) {
	s := NewSequence("overlay/reveal", []Step{
		{ID: "frame", Duration: 100 * time.Millisecond},
		{ID: "image", Duration: 100 * time.Millisecond},
	})
	s, cmd := s.Start()
	if cmd == nil {
		t.Fatal("expected a begin command")
	}
	if s.ActiveIndex() != 0 {
		t.Fatalf("expected stage 0 active, got %d", s.ActiveIndex())
	}

	s, _ = s.Update(stageBeginMsg{sequenceID: "overlay/reveal", index: 0})
	if !s.current.Running() {
		t.Fatal("stage 0 animation did not start")
	}
	if s.StageProgress(1) != 0 {
		t.Fatal("stage 1 must not progress before stage 0 completes")
	}

	s, cmd = s.Update(FrameMsg{ID: s.stepAnimationID(0), At: s.current.start.Add(100 * time.Millisecond)})
	s, cmd = s.Update(cmd())
	if cmd == nil {
		t.Fatal("expected stage-done and begin commands")
	}
	if s.ActiveIndex() != 1 {
		t.Fatalf("expected stage 1 active, got %d", s.ActiveIndex())
	}
	if s.StageProgress(0) != 1 {
		t.Fatal("completed stage must report full progress")
	}

	s, _ = s.Update(stageBeginMsg{sequenceID: "overlay/reveal", index: 1})
	s, cmd = s.Update(FrameMsg{ID: s.stepAnimationID(1), At: s.current.start.Add(100 * time.Millisecond)})
	s, cmd = s.Update(cmd())
	if !s.Done() {
		t.Fatal("sequence should be done after its last stage")
	}
}

func TestSequence_EmptyCompletesImmediately(t *testing.T) {
	s := NewSequence("empty", nil)
	s, cmd := s.Start()
	if !s.Done() {
		t.Fatal("empty sequence should complete immediately")
	}
	done, ok := cmd().(DoneMsg)
	if !ok || done.ID != "empty" {
		t.Fatal("empty sequence should emit its DoneMsg")
	}
}
