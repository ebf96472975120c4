package tui

import (
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/nilote/bootsplash/internal/logging"
	"github.com/nilote/bootsplash/internal/tui/overlay"
)

// interruptMsg carries an OS signal into the event loop.
type interruptMsg struct {
	signal os.Signal
}

// Result describes how the splash ended.
type Result struct {
	// Completed is true when the overlay reached its completion tick or was skipped.
	Completed bool
	// Skipped is true when a key press finished the splash.
	Skipped bool
	// Interrupted is true when ctrl+c or a signal ended the splash early.
	Interrupted bool
	// Progress is the last progress value shown.
	Progress float64
	// Elapsed is the time from mount to the end of the splash.
	Elapsed time.Duration
}

// Model is the host Bubble Tea model. It mounts the overlay on Init and
// unmounts it when the overlay completes or the user quits.
type Model struct {
	overlay  overlay.Model
	logger   *logging.Logger
	result   Result
	quitting bool
}

// NewModel creates a host model for ov.
func NewModel(ov overlay.Model, logger *logging.Logger) *Model {
	return &Model{
		overlay: ov,
		logger:  logger.WithComponent("host"),
	}
}

// Init mounts the overlay.
func (m *Model) Init() tea.Cmd {
	return m.overlay.Init()
}

// Update routes messages to the overlay and handles the ways the splash
// can end.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.logger.Info("quit requested")
			return m.stop()
		}

	case interruptMsg:
		m.logger.Info("signal received", "signal", msg.signal.String())
		return m.stop()

	case overlay.CompletedMsg:
		if msg.ID != m.overlay.ID() {
			return m, nil
		}
		m.result.Completed = true
		m.result.Skipped = msg.Skipped
		m.record()
		m.overlay.Unmount()
		m.quitting = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.overlay, cmd = m.overlay.Update(msg)
	return m, cmd
}

// stop unmounts the overlay early and quits.
func (m *Model) stop() (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}
	m.teardown()
	return m, tea.Quit
}

// teardown unmounts the overlay unless the splash already ended. Anything
// that ends here ended early.
func (m *Model) teardown() {
	if m.quitting {
		return
	}
	m.result.Interrupted = true
	m.record()
	m.overlay.Unmount()
	m.quitting = true
}

func (m *Model) record() {
	m.result.Progress = m.overlay.State().Progress
	m.result.Elapsed = m.overlay.Elapsed()
}

// View renders the overlay, or nothing once the host is quitting.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	return m.overlay.View()
}

// Result returns how the splash ended.
func (m *Model) Result() Result {
	return m.result
}
