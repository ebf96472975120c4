package overlay

import (
	"math"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"
	"github.com/nilote/bootsplash/internal/loading"
	"github.com/nilote/bootsplash/internal/tui/styles"
)

// newMounted returns an overlay mounted at the fake clock's current time.
func newMounted(t *testing.T, opts ...Option) (Model, *clockwork.FakeClock) {
	t.Helper()
	clock := clockwork.NewFakeClock()
	m := New(append([]Option{WithClock(clock)}, opts...)...)
	if cmd := m.Init(); cmd == nil {
		t.Fatal("Init() returned nil command")
	}
	return m, clock
}

// frame, rotate and complete deliver the tick each chain currently expects.
func frame(m Model) (Model, tea.Cmd)  { return m.Update(frameMsg{id: m.id, tag: m.frameTag}) }
func rotate(m Model) (Model, tea.Cmd) { return m.Update(rotateMsg{id: m.id, tag: m.rotateTag}) }
func complete(m Model) (Model, tea.Cmd) {
	return m.Update(completeMsg{id: m.id, tag: m.frameTag})
}

func TestNew_Defaults(t *testing.T) {
	m := New()

	if m.timing != loading.DefaultTiming() {
		t.Errorf("timing = %+v, want defaults", m.timing)
	}
	if len(m.content) != 4 {
		t.Errorf("len(content) = %d, want 4", len(m.content))
	}
	if m.Active() {
		t.Error("overlay should not be active before Init")
	}
	if m.View() != "" {
		t.Error("View() before Init should be empty")
	}
	if New().ID() == m.ID() {
		t.Error("overlays should get distinct IDs")
	}
}

func TestInit_MountsOnce(t *testing.T) {
	m, _ := newMounted(t)

	if !m.Active() {
		t.Fatal("overlay should be active after Init")
	}
	if s := m.State(); s.Progress != 0 || s.ContentIndex != 0 || s.Complete {
		t.Errorf("mount state = %+v, want zero", s)
	}
	if cmd := m.Init(); cmd != nil {
		t.Error("second Init() should not start new chains")
	}
}

func TestFrame_FollowsEasing(t *testing.T) {
	m, clock := newMounted(t)

	prev := 0.0
	for _, at := range []time.Duration{time.Second, 2500 * time.Millisecond, 5 * time.Second, 9 * time.Second} {
		clock.Advance(at - m.Elapsed())
		var cmd tea.Cmd
		m, cmd = frame(m)
		if cmd == nil {
			t.Fatalf("frame at %v returned nil command", at)
		}

		want := loading.ProgressAt(at, 10*time.Second)
		if got := m.State().Progress; got != want {
			t.Errorf("progress at %v = %v, want %v", at, got, want)
		}
		if m.State().Progress < prev {
			t.Errorf("progress decreased at %v", at)
		}
		prev = m.State().Progress
	}
}

func TestRotation_CyclesContent(t *testing.T) {
	m, clock := newMounted(t)

	want := []int{1, 2, 3, 0, 1}
	for i, w := range want {
		clock.Advance(2 * time.Second)
		var cmd tea.Cmd
		m, cmd = rotate(m)
		if cmd == nil {
			t.Fatalf("rotation %d returned nil command", i+1)
		}
		if got := m.State().ContentIndex; got != w {
			t.Errorf("after rotation %d index = %d, want %d", i+1, got, w)
		}
		wantIndex := loading.ContentIndexAt(m.Elapsed(), 2*time.Second, 4)
		if got := m.State().ContentIndex; got != wantIndex {
			t.Errorf("index at %v = %d, want floor(t/2000) mod 4 = %d", m.Elapsed(), got, wantIndex)
		}
	}
}

func TestStaleTicksAreDropped(t *testing.T) {
	m, clock := newMounted(t)
	clock.Advance(2 * time.Second)

	staleRotate := rotateMsg{id: m.id, tag: m.rotateTag}
	m, _ = m.Update(staleRotate)

	// The same tick delivered twice must not advance twice.
	m, cmd := m.Update(staleRotate)
	if cmd != nil || m.State().ContentIndex != 1 {
		t.Errorf("duplicate rotate tick: index = %d, cmd = %v", m.State().ContentIndex, cmd)
	}

	// Ticks for another overlay are ignored.
	m, cmd = m.Update(frameMsg{id: m.id + 1000, tag: m.frameTag})
	if cmd != nil || m.State().Progress != 0 {
		t.Errorf("foreign frame tick mutated state: progress = %v", m.State().Progress)
	}
}

func TestExitFade(t *testing.T) {
	m, clock := newMounted(t)

	if got := m.exitAlpha(); got != 1 {
		t.Fatalf("exitAlpha before 100%% = %v, want 1", got)
	}

	clock.Advance(10 * time.Second)
	m, _ = frame(m)
	if got := m.exitAlpha(); got != 1 {
		t.Errorf("exitAlpha at 100%% = %v, want 1", got)
	}

	// The default 600ms delay leaves 100ms fully visible, then 500ms of fade.
	clock.Advance(350 * time.Millisecond)
	if got := m.exitAlpha(); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("exitAlpha 250ms before completion = %v, want 0.5", got)
	}
	if m.View() == "" {
		t.Error("overlay should still render while fading out")
	}

	clock.Advance(250 * time.Millisecond)
	if got := m.exitAlpha(); got != 0 {
		t.Errorf("exitAlpha at completion = %v, want 0", got)
	}
	m, _ = complete(m)
	if !m.State().Complete {
		t.Error("fade must not delay completion")
	}
}

func TestCompletion(t *testing.T) {
	m, clock := newMounted(t)

	clock.Advance(10 * time.Second)
	m, cmd := frame(m)
	if m.State().Progress != 100 {
		t.Fatalf("progress at 10s = %v, want 100", m.State().Progress)
	}
	if m.State().Complete {
		t.Fatal("should not be complete before the trailing delay")
	}
	if cmd == nil {
		t.Fatal("reaching 100 should schedule the completion tick")
	}

	// Frame ticks stop once 100 is reached.
	if _, cmd := m.Update(frameMsg{id: m.id, tag: m.frameTag - 1}); cmd != nil {
		t.Error("old frame tag should be stale after scheduling completion")
	}

	clock.Advance(600 * time.Millisecond)
	m, cmd = complete(m)
	if !m.State().Complete {
		t.Fatal("should be complete at 10.6s")
	}
	if m.Elapsed() != 10600*time.Millisecond {
		t.Errorf("completed at %v, want 10.6s", m.Elapsed())
	}
	if m.View() != "" {
		t.Error("View() should be empty once complete")
	}

	if cmd == nil {
		t.Fatal("completion should emit CompletedMsg")
	}
	done, ok := cmd().(CompletedMsg)
	if !ok || done.ID != m.ID() || done.Skipped {
		t.Errorf("completion message = %#v", done)
	}

	// Completion is terminal: nothing moves afterwards.
	frozen := m.State()
	clock.Advance(5 * time.Second)
	m, _ = rotate(m)
	m, _ = frame(m)
	m, cmd = complete(m)
	if m.State() != frozen || cmd != nil {
		t.Errorf("state changed after completion: %+v", m.State())
	}
}

func TestUnmountStopsAllMutation(t *testing.T) {
	m, clock := newMounted(t)

	clock.Advance(500 * time.Millisecond)
	m, _ = frame(m)
	before := m.State()
	if before.Progress == 0 {
		t.Fatal("expected some progress at 500ms")
	}

	pendingRotate := rotateMsg{id: m.id, tag: m.rotateTag}
	pendingFrame := frameMsg{id: m.id, tag: m.frameTag}
	pendingComplete := completeMsg{id: m.id, tag: m.frameTag}

	m.Unmount()
	m.Unmount()

	clock.Advance(20 * time.Second)
	for _, msg := range []tea.Msg{pendingRotate, pendingFrame, pendingComplete, spinner.TickMsg{}} {
		var cmd tea.Cmd
		m, cmd = m.Update(msg)
		if cmd != nil {
			t.Errorf("%T after unmount returned a command", msg)
		}
	}

	if m.State() != before {
		t.Errorf("state mutated after unmount: %+v, want %+v", m.State(), before)
	}
	if m.View() != "" {
		t.Error("View() should be empty after unmount")
	}
	if m.Active() {
		t.Error("overlay still active after unmount")
	}
}

func TestSkip(t *testing.T) {
	t.Run("skippable", func(t *testing.T) {
		m, clock := newMounted(t, WithSkippable(true))
		clock.Advance(time.Second)

		m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
		if !m.State().Complete || m.State().Progress != 100 {
			t.Errorf("state after skip = %+v", m.State())
		}
		if cmd == nil {
			t.Fatal("skip should emit CompletedMsg")
		}
		if done, ok := cmd().(CompletedMsg); !ok || !done.Skipped {
			t.Errorf("skip message = %#v", done)
		}
	})

	t.Run("not skippable", func(t *testing.T) {
		m, _ := newMounted(t)
		m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
		if m.State().Complete || cmd != nil {
			t.Error("key press should be ignored when not skippable")
		}
	})
}

func TestPaletteMsg(t *testing.T) {
	m, _ := newMounted(t)

	sunset := styles.NewStyles(styles.SunsetPalette())
	m, _ = m.Update(PaletteMsg{Theme: "sunset", Styles: sunset})
	if m.styles != sunset {
		t.Error("PaletteMsg did not replace styles")
	}

	m, _ = m.Update(PaletteMsg{Theme: "broken"})
	if m.styles != sunset {
		t.Error("PaletteMsg without styles should be ignored")
	}
}

func TestWindowSize(t *testing.T) {
	m, _ := newMounted(t)

	m, _ = m.Update(tea.WindowSizeMsg{Width: 30, Height: 20})
	if m.bar.Width != 22 {
		t.Errorf("bar width = %d, want 22", m.bar.Width)
	}

	m, _ = m.Update(tea.WindowSizeMsg{Width: 200, Height: 50})
	if m.bar.Width != maxBarWidth {
		t.Errorf("bar width = %d, want %d", m.bar.Width, maxBarWidth)
	}
}

func TestAfter_UsesClock(t *testing.T) {
	clock := clockwork.NewFakeClock()
	m := New(WithClock(clock))

	got := make(chan tea.Msg, 1)
	go func() { got <- m.after(time.Second, rotateMsg{id: 7})() }()

	if err := clock.BlockUntilContext(t.Context(), 1); err != nil {
		t.Fatal(err)
	}
	select {
	case <-got:
		t.Fatal("message delivered before the clock advanced")
	default:
	}

	clock.Advance(time.Second)
	select {
	case msg := <-got:
		if msg != (rotateMsg{id: 7}) {
			t.Errorf("delivered %#v", msg)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("message not delivered after advancing the clock")
	}
}
