package tui

import (
	"context"
	"io"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
	"github.com/nilote/bootsplash/internal/loading"
	"github.com/nilote/bootsplash/internal/logging"
	"github.com/nilote/bootsplash/internal/tui/overlay"
	"github.com/nilote/bootsplash/internal/tui/styles"
)

func headlessProgram() AppOption {
	return WithProgramOptions(tea.WithInput(nil), tea.WithOutput(io.Discard))
}

func TestApp_RunCompletes(t *testing.T) {
	ov := overlay.New(overlay.WithTiming(loading.Timing{
		Duration:       60 * time.Millisecond,
		RotateInterval: 20 * time.Millisecond,
		CompleteDelay:  20 * time.Millisecond,
		FrameInterval:  10 * time.Millisecond,
	}))
	app := New(ov, logging.NopLogger(), headlessProgram())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := app.Run(ctx)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !res.Completed || res.Interrupted {
		t.Errorf("result = %+v, want completed", res)
	}
	if res.Progress != 100 {
		t.Errorf("Progress = %v, want 100", res.Progress)
	}
	if res.Elapsed < 80*time.Millisecond {
		t.Errorf("completed after %v, before duration + delay", res.Elapsed)
	}
}

func TestApp_RunCancelled(t *testing.T) {
	app := New(overlay.New(), logging.NopLogger(), headlessProgram())

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	res, err := app.Run(ctx)
	if err == nil {
		t.Fatal("Run() should report the cancellation")
	}
	if res.Completed || !res.Interrupted {
		t.Errorf("result = %+v, want interrupted", res)
	}
}

func TestPaletteForChange(t *testing.T) {
	prev := styles.SetThemesDirFunc(func() string { return t.TempDir() })
	t.Cleanup(func() {
		styles.SetThemesDirFunc(prev)
		styles.ClearCustomThemes()
	})

	logger := logging.NopLogger()
	write := fsnotify.Event{Name: "config.yaml", Op: fsnotify.Write}

	msg, ok := paletteForChange(write, "sunset", logger)
	if !ok {
		t.Fatal("write event with a valid theme should restyle")
	}
	if msg.Theme != "sunset" || msg.Styles.Palette.Primary != styles.SunsetPalette().Primary {
		t.Errorf("PaletteMsg = %+v", msg)
	}

	if _, ok := paletteForChange(write, "no-such-theme", logger); ok {
		t.Error("unknown theme should not restyle")
	}

	remove := fsnotify.Event{Name: "config.yaml", Op: fsnotify.Remove}
	if _, ok := paletteForChange(remove, "sunset", logger); ok {
		t.Error("remove event should be ignored")
	}
}
