package overlay

import (
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"
	"github.com/nilote/bootsplash/internal/loading"
	"github.com/nilote/bootsplash/internal/logging"
	"github.com/nilote/bootsplash/internal/tui/styles"
)

const maxBarWidth = 48

// Option configures a Model.
type Option func(*Model)

// WithClock sets the clock used for elapsed time and tick scheduling.
func WithClock(clock clockwork.Clock) Option {
	return func(m *Model) {
		m.clock = clock
	}
}

// WithTiming sets the animation timing. Zero fields take defaults.
func WithTiming(t loading.Timing) Option {
	return func(m *Model) {
		m.timing = t.WithDefaults()
	}
}

// WithContent replaces the rotating content. An empty list keeps the
// built-in content.
func WithContent(items []loading.ContentItem) Option {
	return func(m *Model) {
		if len(items) > 0 {
			m.content = items
		}
	}
}

// WithStyles sets the styles.
func WithStyles(s *styles.Styles) Option {
	return func(m *Model) {
		if s != nil {
			m.styles = s
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *logging.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithSkippable lets any key finish the splash immediately.
func WithSkippable(skippable bool) Option {
	return func(m *Model) {
		m.skippable = skippable
	}
}

// Model is the loading overlay.
type Model struct {
	id        int
	clock     clockwork.Clock
	timing    loading.Timing
	content   []loading.ContentItem
	styles    *styles.Styles
	logger    *logging.Logger
	skippable bool

	state        loading.State
	start        time.Time
	contentSince time.Time
	fullAt       time.Time // when progress reached 100
	mounted      bool
	unmounted    bool

	// Tags of the tick currently expected on each chain. Anything else is stale.
	rotateTag int
	frameTag  int

	width  int
	height int

	bar     progress.Model
	spinner spinner.Model
}

// New creates an overlay. It does nothing until Init mounts it.
func New(opts ...Option) Model {
	m := Model{
		id:      nextID(),
		clock:   clockwork.NewRealClock(),
		timing:  loading.DefaultTiming(),
		content: loading.DefaultContent(),
		styles:  styles.Default(),
		logger:  logging.NopLogger(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.logger = m.logger.WithComponent("overlay").With("overlay_id", m.id)

	for _, problem := range loading.CheckContent(m.content) {
		m.logger.Warn("content item will not render as configured", "error", problem.Error())
	}

	m.spinner = spinner.New(spinner.WithSpinner(spinner.MiniDot))
	m.applyStyles()
	return m
}

// applyStyles rebuilds the widgets that cache colors.
func (m *Model) applyStyles() {
	p := m.styles.Palette
	m.bar = progress.New(
		progress.WithGradient(string(p.Gradient1), string(p.Gradient3)),
		progress.WithoutPercentage(),
		progress.WithWidth(m.barWidth()),
	)
	m.bar.EmptyColor = string(p.Surface)
	m.spinner.Style = m.styles.Spinner
}

func (m Model) barWidth() int {
	if m.width <= 0 {
		return maxBarWidth
	}
	return max(10, min(maxBarWidth, m.width-8))
}

// ID returns the overlay's mount ID. CompletedMsg carries the same value.
func (m Model) ID() int {
	return m.id
}

// State returns a copy of the animation state.
func (m Model) State() loading.State {
	return m.state
}

// Elapsed returns the time since mount, or zero before Init.
func (m Model) Elapsed() time.Duration {
	if !m.mounted {
		return 0
	}
	return m.clock.Since(m.start)
}

// CurrentContent returns the item being shown. ok is false when there is
// no content at all.
func (m Model) CurrentContent() (item loading.ContentItem, ok bool) {
	if len(m.content) == 0 {
		return loading.ContentItem{}, false
	}
	return m.content[m.state.ContentIndex%len(m.content)], true
}

// Active reports whether the overlay is mounted and still running.
func (m Model) Active() bool {
	return m.mounted && !m.unmounted && !m.state.Complete
}

// Init mounts the overlay: it records the start time and starts the
// rotation, frame and spinner chains.
func (m *Model) Init() tea.Cmd {
	if m.mounted {
		return nil
	}
	m.mounted = true
	m.start = m.clock.Now()
	m.contentSince = m.start

	m.logger.Info("overlay mounted",
		"duration_ms", m.timing.Duration.Milliseconds(),
		"rotate_ms", m.timing.RotateInterval.Milliseconds(),
		"content_count", len(m.content))

	return tea.Batch(m.rotateTick(), m.frameTick(), m.spinner.Tick)
}

// Unmount tears the overlay down. Ticks already in flight are ignored from
// now on and View renders nothing. Unmounting twice is a no-op.
func (m *Model) Unmount() {
	if m.unmounted {
		return
	}
	m.unmounted = true
	m.rotateTag++
	m.frameTag++

	if m.mounted && !m.state.Complete {
		m.logger.Info("overlay unmounted before completion",
			"progress", m.state.Progress,
			"elapsed_ms", m.Elapsed().Milliseconds())
	} else {
		m.logger.Debug("overlay unmounted")
	}
}

// Update handles tick, key, resize and palette messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case rotateMsg:
		if !m.Active() || msg.id != m.id || msg.tag != m.rotateTag {
			return m, nil
		}
		m.state.Advance(len(m.content))
		m.contentSince = m.clock.Now()
		m.rotateTag++
		return m, m.rotateTick()

	case frameMsg:
		if !m.Active() || msg.id != m.id || msg.tag != m.frameTag {
			return m, nil
		}
		elapsed := m.clock.Since(m.start)
		m.state.SetProgress(loading.ProgressAt(elapsed, m.timing.Duration))
		m.frameTag++
		if elapsed >= m.timing.Duration {
			m.fullAt = m.clock.Now()
			m.logger.Debug("progress reached 100", "elapsed_ms", elapsed.Milliseconds())
			return m, m.completeTick()
		}
		return m, m.frameTick()

	case completeMsg:
		if !m.Active() || msg.id != m.id || msg.tag != m.frameTag {
			return m, nil
		}
		return m.finish(false)

	case spinner.TickMsg:
		if !m.Active() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.skippable && m.Active() {
			m.state.SetProgress(100)
			return m.finish(true)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.bar.Width = m.barWidth()
		return m, nil

	case PaletteMsg:
		if msg.Styles == nil {
			return m, nil
		}
		m.styles = msg.Styles
		m.applyStyles()
		m.logger.Info("palette changed", "theme", msg.Theme)
		return m, nil
	}

	return m, nil
}

// exitAlpha is the opacity of the overlay during the trailing delay. It
// drops to zero over the last exitFade before completion.
func (m Model) exitAlpha() float64 {
	if m.fullAt.IsZero() {
		return 1
	}
	return fadeIn(m.timing.CompleteDelay-m.clock.Since(m.fullAt), exitFade)
}

// finish moves the overlay to its terminal state, ends both chains and
// emits CompletedMsg.
func (m Model) finish(skipped bool) (Model, tea.Cmd) {
	if !m.state.MarkComplete() {
		return m, nil
	}
	m.rotateTag++
	m.frameTag++

	m.logger.Info("overlay complete",
		"elapsed_ms", m.Elapsed().Milliseconds(),
		"skipped", skipped)

	id := m.id
	return m, func() tea.Msg {
		return CompletedMsg{ID: id, Skipped: skipped}
	}
}

func (m Model) rotateTick() tea.Cmd {
	return m.after(m.timing.RotateInterval, rotateMsg{id: m.id, tag: m.rotateTag})
}

func (m Model) frameTick() tea.Cmd {
	return m.after(m.timing.FrameInterval, frameMsg{id: m.id, tag: m.frameTag})
}

func (m Model) completeTick() tea.Cmd {
	return m.after(m.timing.CompleteDelay, completeMsg{id: m.id, tag: m.frameTag})
}

// after delivers msg once d has passed on the model's clock.
func (m Model) after(d time.Duration, msg tea.Msg) tea.Cmd {
	clock := m.clock
	return func() tea.Msg {
		<-clock.After(d)
		return msg
	}
}
