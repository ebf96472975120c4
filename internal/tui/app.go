package tui

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
	"github.com/nilote/bootsplash/internal/logging"
	"github.com/nilote/bootsplash/internal/tui/overlay"
	"github.com/nilote/bootsplash/internal/tui/styles"
	"github.com/spf13/viper"
)

// App wraps the Bubbletea program hosting the splash overlay.
type App struct {
	program *tea.Program
	model   *Model
	logger  *logging.Logger

	watchConfig bool
	programOpts []tea.ProgramOption
}

// AppOption configures an App.
type AppOption func(*App)

// WithConfigWatch restyles the running splash when the config file changes.
func WithConfigWatch(enabled bool) AppOption {
	return func(a *App) {
		a.watchConfig = enabled
	}
}

// WithProgramOptions passes extra options to tea.NewProgram, replacing the
// default alt-screen option.
func WithProgramOptions(opts ...tea.ProgramOption) AppOption {
	return func(a *App) {
		a.programOpts = opts
	}
}

// New creates a TUI application hosting ov.
func New(ov overlay.Model, logger *logging.Logger, opts ...AppOption) *App {
	if logger == nil {
		logger = logging.NopLogger()
	}
	a := &App{
		model:       NewModel(ov, logger),
		logger:      logger.WithComponent("tui"),
		programOpts: []tea.ProgramOption{tea.WithAltScreen()},
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Run shows the splash until it completes, the user quits, a signal
// arrives or ctx is cancelled.
func (a *App) Run(ctx context.Context) (Result, error) {
	opts := append([]tea.ProgramOption{tea.WithContext(ctx)}, a.programOpts...)
	a.program = tea.NewProgram(a.model, opts...)

	// Signals unmount the overlay before quitting so the exit is recorded
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigChan)

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case sig := <-sigChan:
			a.program.Send(interruptMsg{signal: sig})
		case <-done:
		}
	}()

	if a.watchConfig && viper.ConfigFileUsed() != "" {
		viper.OnConfigChange(func(e fsnotify.Event) {
			if msg, ok := paletteForChange(e, viper.GetString("tui.theme"), a.logger); ok {
				a.program.Send(msg)
			}
		})
		viper.WatchConfig()
		a.logger.Debug("watching config file", "path", viper.ConfigFileUsed())
	}

	_, err := a.program.Run()
	a.model.teardown()
	result := a.model.Result()

	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		a.logger.Info("splash cancelled", "progress", result.Progress)
		return result, ctx.Err()
	}
	return result, err
}

// paletteForChange resolves the theme named in the reloaded config into a
// PaletteMsg. Custom theme files are rescanned first so edits to them take
// effect too.
func paletteForChange(e fsnotify.Event, theme string, logger *logging.Logger) (overlay.PaletteMsg, bool) {
	if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
		return overlay.PaletteMsg{}, false
	}

	if _, errs := styles.DiscoverCustomThemes(); len(errs) > 0 {
		for _, err := range errs {
			logger.Warn("skipping custom theme", "error", err.Error())
		}
	}

	palette, err := styles.ResolvePalette(theme)
	if err != nil {
		logger.Warn("config changed to an unknown theme", "theme", theme, "error", err.Error())
		return overlay.PaletteMsg{}, false
	}

	logger.Info("config changed, restyling splash", "theme", theme, "file", e.Name)
	return overlay.PaletteMsg{Theme: theme, Styles: styles.NewStyles(palette)}, true
}
