package loading

// Phase is the lifecycle position of a splash.
type Phase int

const (
	// PhaseRunning means the overlay is visible.
	PhaseRunning Phase = iota
	// PhaseComplete is terminal; the overlay has been removed.
	PhaseComplete
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhaseComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// State is the transient animation state of one mounted splash.
// The zero value is the mount state: no progress, first content, running.
type State struct {
	Progress     float64
	ContentIndex int
	Complete     bool
}

// Phase returns the lifecycle phase derived from Complete.
func (s State) Phase() Phase {
	if s.Complete {
		return PhaseComplete
	}
	return PhaseRunning
}

// Advance moves to the next content item, wrapping at n.
// It is a no-op when n is not positive.
func (s *State) Advance(n int) {
	if n <= 0 {
		return
	}
	s.ContentIndex = (s.ContentIndex + 1) % n
}

// SetProgress records a new progress value. Values are clamped to [0,100]
// and decreases are ignored. It reports whether the value changed.
func (s *State) SetProgress(p float64) bool {
	p = clamp(p, 0, 100)
	if p <= s.Progress {
		return false
	}
	s.Progress = p
	return true
}

// MarkComplete moves the state to its terminal phase. It reports whether
// this call performed the transition.
func (s *State) MarkComplete() bool {
	if s.Complete {
		return false
	}
	s.Complete = true
	return true
}
