package overlay

import (
	"sync/atomic"

	"github.com/nilote/bootsplash/internal/tui/styles"
)

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// rotateMsg advances the content rotation.
type rotateMsg struct {
	id  int
	tag int
}

// frameMsg steps the progress animation.
type frameMsg struct {
	id  int
	tag int
}

// completeMsg fires once the trailing delay after 100% has passed.
type completeMsg struct {
	id  int
	tag int
}

// CompletedMsg is emitted exactly once when the overlay finishes, either
// after the trailing delay or because the user skipped it.
type CompletedMsg struct {
	ID int
	// Skipped is true when a key press ended the splash early.
	Skipped bool
}

// PaletteMsg restyles a running overlay.
type PaletteMsg struct {
	Theme  string
	Styles *styles.Styles
}
