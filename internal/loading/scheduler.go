package loading

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/nilote/bootsplash/internal/logging"
)

// Snapshot is a copy of the state handed to observers.
type Snapshot struct {
	State
	Elapsed time.Duration
}

// Observer receives a Snapshot after every state change. Observers run on
// the scheduler's goroutines while it holds its lock, so they must not call
// Stop; cancelling the context passed to Start is fine.
type Observer func(Snapshot)

// SchedulerOption configures a Scheduler.
type SchedulerOption func(*Scheduler)

// WithClock sets the clock used for tickers and elapsed time.
func WithClock(clock clockwork.Clock) SchedulerOption {
	return func(s *Scheduler) {
		s.clock = clock
	}
}

// WithLogger sets the logger.
func WithLogger(logger *logging.Logger) SchedulerOption {
	return func(s *Scheduler) {
		s.logger = logger
	}
}

// WithObserver registers an observer.
func WithObserver(obs Observer) SchedulerOption {
	return func(s *Scheduler) {
		s.observers = append(s.observers, obs)
	}
}

// Scheduler drives a State with two cancellable loops: a rotation ticker
// and a frame ticker followed by the completion delay. Both loops share one
// context, so the splash's lifetime is the context's lifetime.
type Scheduler struct {
	clock     clockwork.Clock
	logger    *logging.Logger
	timing    Timing
	count     int
	observers []Observer

	mu      sync.Mutex
	state   State
	start   time.Time
	started bool
	stopped bool

	cancel context.CancelFunc
	wg     sync.WaitGroup
	done   chan struct{}
}

// NewScheduler creates a scheduler rotating through contentCount items.
func NewScheduler(timing Timing, contentCount int, opts ...SchedulerOption) *Scheduler {
	s := &Scheduler{
		clock:  clockwork.NewRealClock(),
		logger: logging.NopLogger(),
		timing: timing.WithDefaults(),
		count:  contentCount,
		done:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start mounts the splash: it captures the start time and launches both
// loops. It returns an error if called more than once or after Stop.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.started || s.stopped {
		s.mu.Unlock()
		return fmt.Errorf("scheduler already started or stopped")
	}
	s.started = true
	s.start = s.clock.Now()
	ctx, s.cancel = context.WithCancel(ctx)
	s.mu.Unlock()

	s.logger.Info("splash mounted",
		"duration_ms", s.timing.Duration.Milliseconds(),
		"rotate_ms", s.timing.RotateInterval.Milliseconds(),
		"content_count", s.count)

	s.wg.Add(2)
	go s.rotate(ctx)
	go s.animate(ctx)
	return nil
}

// rotate advances the content index every RotateInterval until cancelled.
func (s *Scheduler) rotate(ctx context.Context) {
	defer s.wg.Done()

	ticker := s.clock.NewTicker(s.timing.RotateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.Chan():
			s.update(func(st *State) bool {
				st.Advance(s.count)
				return true
			})
		}
	}
}

// animate steps progress every FrameInterval until the curve reaches 100,
// then waits CompleteDelay and marks the state complete.
func (s *Scheduler) animate(ctx context.Context) {
	defer s.wg.Done()

	ticker := s.clock.NewTicker(s.timing.FrameInterval)
	var delay clockwork.Timer
	for delay == nil {
		select {
		case <-ctx.Done():
			ticker.Stop()
			return
		case <-ticker.Chan():
			elapsed := s.clock.Since(s.start)
			if elapsed >= s.timing.Duration {
				// Arm the delay before publishing 100 so observers that see
				// full progress can rely on the completion timer existing.
				ticker.Stop()
				delay = s.clock.NewTimer(s.timing.CompleteDelay)
			}
			progress := ProgressAt(elapsed, s.timing.Duration)
			s.update(func(st *State) bool {
				return st.SetProgress(progress)
			})
		}
	}

	select {
	case <-ctx.Done():
		delay.Stop()
		return
	case <-delay.Chan():
	}

	completed := false
	s.update(func(st *State) bool {
		completed = st.MarkComplete()
		return completed
	})
	if completed {
		s.logger.Info("splash complete", "elapsed_ms", s.clock.Since(s.start).Milliseconds())
		close(s.done)
	}
	// Completion unmounts the splash, which also ends the rotation loop.
	s.cancel()
}

// update applies fn and, when it reports a change, notifies observers.
// Nothing is applied once Stop has been called.
func (s *Scheduler) update(fn func(*State) bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped || !fn(&s.state) {
		return
	}
	snap := Snapshot{State: s.state, Elapsed: s.clock.Since(s.start)}
	for _, obs := range s.observers {
		obs(snap)
	}
}

// Stop unmounts the splash early. It cancels both loops and returns once
// they have exited; no observer runs after Stop returns. Stop is safe to
// call more than once and before Start.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	wasStopped := s.stopped
	s.stopped = true
	cancel := s.cancel
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	s.wg.Wait()

	if !wasStopped && !s.Snapshot().Complete {
		s.logger.Info("splash unmounted before completion", "progress", s.Snapshot().Progress)
	}
}

// Wait blocks until both loops have exited, either through completion or
// cancellation.
func (s *Scheduler) Wait() {
	s.wg.Wait()
}

// Done is closed when the splash completes. It is never closed when the
// splash is stopped early.
func (s *Scheduler) Done() <-chan struct{} {
	return s.done
}

// Snapshot returns the current state.
func (s *Scheduler) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	var elapsed time.Duration
	if s.started {
		elapsed = s.clock.Since(s.start)
	}
	return Snapshot{State: s.state, Elapsed: elapsed}
}
