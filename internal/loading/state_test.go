package loading

import "testing"

func TestState_ZeroValueIsMountState(t *testing.T) {
	var s State
	if s.Progress != 0 || s.ContentIndex != 0 || s.Complete {
		t.Errorf("zero State = %+v, want mount state", s)
	}
	if s.Phase() != PhaseRunning {
		t.Errorf("Phase() = %v, want running", s.Phase())
	}
}

func TestState_Advance(t *testing.T) {
	var s State
	want := []int{1, 2, 3, 0, 1}
	for i, w := range want {
		s.Advance(4)
		if s.ContentIndex != w {
			t.Fatalf("after %d advances ContentIndex = %d, want %d", i+1, s.ContentIndex, w)
		}
	}

	s.Advance(0)
	if s.ContentIndex != 1 {
		t.Errorf("Advance(0) changed index to %d", s.ContentIndex)
	}
}

func TestState_SetProgress(t *testing.T) {
	var s State

	if !s.SetProgress(40) {
		t.Error("SetProgress(40) reported no change")
	}
	if s.SetProgress(30) {
		t.Error("SetProgress(30) after 40 reported a change")
	}
	if s.Progress != 40 {
		t.Errorf("Progress = %v, want 40 after decrease attempt", s.Progress)
	}
	if s.SetProgress(40) {
		t.Error("SetProgress with the same value reported a change")
	}
	if !s.SetProgress(250) || s.Progress != 100 {
		t.Errorf("SetProgress(250) left Progress = %v, want 100", s.Progress)
	}
}

func TestState_MarkComplete(t *testing.T) {
	var s State
	if !s.MarkComplete() {
		t.Error("first MarkComplete() = false")
	}
	if s.MarkComplete() {
		t.Error("second MarkComplete() = true")
	}
	if s.Phase() != PhaseComplete {
		t.Errorf("Phase() = %v, want complete", s.Phase())
	}
}

func TestPhase_String(t *testing.T) {
	tests := map[Phase]string{
		PhaseRunning:  "running",
		PhaseComplete: "complete",
		Phase(7):      "unknown",
	}
	for p, want := range tests {
		if got := p.String(); got != want {
			t.Errorf("Phase(%d).String() = %q, want %q", p, got, want)
		}
	}
}
