package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	configcmd "github.com/nilote/bootsplash/internal/cmd/config"
	"github.com/nilote/bootsplash/internal/config"
	"github.com/nilote/bootsplash/internal/errors"
	"github.com/nilote/bootsplash/internal/loading"
	"github.com/nilote/bootsplash/internal/logging"
	"github.com/nilote/bootsplash/internal/tui"
	"github.com/nilote/bootsplash/internal/tui/overlay"
	"github.com/nilote/bootsplash/internal/tui/styles"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

var cfgFile string

var (
	flagTheme     string
	flagDuration  time.Duration
	flagSkippable bool
	flagHeadless  bool
	flagWatch     bool
)

// shutdownSignals end a headless run early, the same signals that end the
// overlay.
var shutdownSignals = []os.Signal{syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP}

// isTerminal reports whether stdout is a TTY. Replaced in tests.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

var rootCmd = &cobra.Command{
	Use:   "bootsplash",
	Short: "Animated terminal splash screen",
	Long: `Bootsplash draws an animated loading overlay in the terminal: a gradient
logo, rotating promotional content, and an eased progress bar that fills
over ten seconds before the overlay dismisses itself.

When stdout is not a terminal (or with --headless) progress is printed as
plain lines instead.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runSplash,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is $HOME/.config/bootsplash/config.yaml)")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))

	addSplashFlags(rootCmd.Flags())

	configcmd.Register(rootCmd)
}

func addSplashFlags(flags *pflag.FlagSet) {
	flags.StringVar(&flagTheme, "theme", "", "color theme (built-in or custom)")
	flags.DurationVar(&flagDuration, "duration", 0, "time for the progress bar to reach 100%")
	flags.BoolVar(&flagSkippable, "skippable", false, "finish the splash on any key press")
	flags.BoolVar(&flagHeadless, "headless", false, "print progress lines instead of drawing the overlay")
	flags.BoolVar(&flagWatch, "watch", false, "restyle the splash when the config file changes")
}

func initConfig() {
	// A missing .env is the common case
	_ = godotenv.Load()

	config.SetDefaults()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath(".")
	}

	viper.SetEnvPrefix("BOOTSPLASH")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()

	_, errs := styles.DiscoverCustomThemes()
	for _, err := range errs {
		fmt.Fprintf(os.Stderr, "%s: %v\n", severityLabel(err), err)
	}
}

// severityLabel returns the prefix used when reporting err on stderr.
func severityLabel(err error) string {
	if errors.GetSeverity(err) >= errors.SeverityError {
		return "Error"
	}
	return "Warning"
}

// applyFlags overlays explicitly set command-line flags on cfg.
func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("theme") {
		if !styles.IsValidTheme(flagTheme) {
			return fmt.Errorf("invalid theme: %s\nValid options: %s",
				flagTheme, strings.Join(styles.ValidThemes(), ", "))
		}
		cfg.TUI.Theme = flagTheme
	}
	if flags.Changed("duration") {
		if flagDuration <= 0 {
			return fmt.Errorf("invalid duration: %s (must be positive)", flagDuration)
		}
		cfg.Splash.Duration = flagDuration
	}
	if flags.Changed("skippable") {
		cfg.Splash.Skippable = flagSkippable
	}
	if flags.Changed("watch") {
		cfg.TUI.WatchConfig = flagWatch
	}
	return nil
}

func newLogger(cfg *config.Config) (*logging.Logger, error) {
	logger, err := logging.NewLoggerWithRotation(cfg.Logging.LogDir(), cfg.Logging.Level, logging.RotationConfig{
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
		Compress:   cfg.Logging.Compress,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return logger, nil
}

func runSplash(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if err := applyFlags(cmd, cfg); err != nil {
		return err
	}

	root, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = root.Close() }()
	logger := root.WithSession(uuid.NewString())

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if flagHeadless || !isTerminal() {
		return runHeadless(ctx, cmd.OutOrStdout(), cfg, logger)
	}

	ov := overlay.New(
		overlay.WithTiming(cfg.Splash.Timing()),
		overlay.WithContent(cfg.Splash.ContentItems()),
		overlay.WithStyles(styles.ForTheme(cfg.TUI.Theme)),
		overlay.WithLogger(logger),
		overlay.WithSkippable(cfg.Splash.Skippable),
	)
	app := tui.New(ov, logger, tui.WithConfigWatch(cfg.TUI.WatchConfig))
	result, err := app.Run(ctx)
	if err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	logger.Info("splash finished",
		"completed", result.Completed,
		"skipped", result.Skipped,
		"interrupted", result.Interrupted,
		"elapsed_ms", result.Elapsed.Milliseconds())
	return nil
}

// runHeadless drives the splash with the loading scheduler and prints a line
// whenever the content rotates or progress crosses another tenth.
func runHeadless(ctx context.Context, out io.Writer, cfg *config.Config, logger *logging.Logger) error {
	ctx, stop := signal.NotifyContext(ctx, shutdownSignals...)
	defer stop()

	items := cfg.Splash.ContentItems()
	for _, err := range loading.CheckContent(items) {
		logger.Warn("content check failed", "error", err)
	}

	printer := newHeadlessPrinter(out, items)
	sched := loading.NewScheduler(cfg.Splash.Timing(), len(items),
		loading.WithLogger(logger.WithComponent("scheduler")),
		loading.WithObserver(printer.observe),
	)

	printer.printContent(0)
	if err := sched.Start(ctx); err != nil {
		return err
	}

	select {
	case <-sched.Done():
		sched.Wait()
		fmt.Fprintln(out, "done")
		return nil
	case <-ctx.Done():
		sched.Stop()
		logger.Info("headless run interrupted", "error", context.Cause(ctx))
		return ctx.Err()
	}
}

type headlessPrinter struct {
	out    io.Writer
	items  []loading.ContentItem
	index  int
	decile int
}

func newHeadlessPrinter(out io.Writer, items []loading.ContentItem) *headlessPrinter {
	return &headlessPrinter{out: out, items: items}
}

func (p *headlessPrinter) observe(s loading.Snapshot) {
	if s.ContentIndex != p.index {
		p.index = s.ContentIndex
		p.printContent(p.index)
	}
	percent := loading.RoundPercent(s.Progress)
	if d := percent / 10; d > p.decile {
		p.decile = d
		fmt.Fprintf(p.out, "[%3d%%] loading\n", percent)
	}
}

// printContent prints item i. Items with an unknown category print nothing,
// the same empty region the overlay draws for them.
func (p *headlessPrinter) printContent(i int) {
	if i < 0 || i >= len(p.items) || !p.items[i].Category.Known() {
		return
	}
	fmt.Fprintf(p.out, "       %s\n", p.items[i].String())
}
