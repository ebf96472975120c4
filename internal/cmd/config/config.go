// Package config provides CLI commands for managing bootsplash configuration.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	appconfig "github.com/nilote/bootsplash/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or create bootsplash configuration",
	Long: `View or create bootsplash configuration.

Use 'config show' to display the effective configuration.
Use 'config init' to write a config file with every option set to its default.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default config file",
	Long:  `Create a default config file at ~/.config/bootsplash/config.yaml with all available options.`,
	RunE:  runConfigInit,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file path",
	RunE:  runConfigPath,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
}

// Register adds the config and theme commands to the given parent command.
func Register(parent *cobra.Command) {
	parent.AddCommand(configCmd)
	parent.AddCommand(themeCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	cfg, err := appconfig.Load()
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v\nShowing defaults instead.\n\n", err)
		cfg = appconfig.Default()
	}

	fmt.Fprintln(out, "Current configuration:")
	fmt.Fprintln(out)

	if viper.ConfigFileUsed() != "" {
		fmt.Fprintf(out, "Config file: %s\n", viper.ConfigFileUsed())
	} else {
		fmt.Fprintf(out, "Config file: (none - using defaults)\n")
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "splash:")
	fmt.Fprintf(out, "  duration: %s\n", cfg.Splash.Duration)
	fmt.Fprintf(out, "  rotate_interval: %s\n", cfg.Splash.RotateInterval)
	fmt.Fprintf(out, "  complete_delay: %s\n", cfg.Splash.CompleteDelay)
	fmt.Fprintf(out, "  frame_rate: %d\n", cfg.Splash.FrameRate)
	fmt.Fprintf(out, "  min_visible_percent: %g\n", cfg.Splash.MinVisiblePercent)
	fmt.Fprintf(out, "  skippable: %v\n", cfg.Splash.Skippable)
	if len(cfg.Splash.Content) == 0 {
		fmt.Fprintln(out, "  content: (built-in)")
	} else {
		fmt.Fprintln(out, "  content:")
		for _, item := range cfg.Splash.ContentItems() {
			fmt.Fprintf(out, "    - [%s] %s\n", item.Category, item.String())
		}
	}

	fmt.Fprintln(out, "tui:")
	fmt.Fprintf(out, "  theme: %s\n", cfg.TUI.Theme)
	fmt.Fprintf(out, "  watch_config: %v\n", cfg.TUI.WatchConfig)

	fmt.Fprintln(out, "logging:")
	fmt.Fprintf(out, "  enabled: %v\n", cfg.Logging.Enabled)
	fmt.Fprintf(out, "  level: %s\n", cfg.Logging.Level)
	fmt.Fprintf(out, "  dir: %s\n", cfg.Logging.LogDir())
	fmt.Fprintf(out, "  max_size_mb: %d\n", cfg.Logging.MaxSizeMB)
	fmt.Fprintf(out, "  max_backups: %d\n", cfg.Logging.MaxBackups)
	fmt.Fprintf(out, "  compress: %v\n", cfg.Logging.Compress)

	return nil
}

// The yaml.v3 mirror of appconfig.Config written by 'config init'. Durations
// are strings so the file reads "10s" rather than nanoseconds.
type fileConfig struct {
	Splash  fileSplash  `yaml:"splash"`
	TUI     fileTUI     `yaml:"tui"`
	Logging fileLogging `yaml:"logging"`
}

type fileSplash struct {
	Duration          string                    `yaml:"duration"`
	RotateInterval    string                    `yaml:"rotate_interval"`
	CompleteDelay     string                    `yaml:"complete_delay"`
	FrameRate         int                       `yaml:"frame_rate"`
	MinVisiblePercent float64                   `yaml:"min_visible_percent"`
	Skippable         bool                      `yaml:"skippable"`
	Content           []appconfig.ContentConfig `yaml:"content"`
}

type fileTUI struct {
	Theme       string `yaml:"theme"`
	WatchConfig bool   `yaml:"watch_config"`
}

type fileLogging struct {
	Enabled    bool   `yaml:"enabled"`
	Level      string `yaml:"level"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	Compress   bool   `yaml:"compress"`
}

const configHeader = `# Bootsplash configuration
#
# splash.content replaces the built-in rotation when non-empty. Each item has
# text, category (partnership, powered, journey or modern), company or
# highlight, and a two-color gradient.
#
# Environment variables override any key: BOOTSPLASH_SPLASH_DURATION=5s
`

// defaultConfigYAML renders the defaults, with the built-in content spelled
// out so it can be edited in place.
func defaultConfigYAML() ([]byte, error) {
	d := appconfig.Default()

	fc := fileConfig{
		Splash: fileSplash{
			Duration:          d.Splash.Duration.String(),
			RotateInterval:    d.Splash.RotateInterval.String(),
			CompleteDelay:     d.Splash.CompleteDelay.String(),
			FrameRate:         d.Splash.FrameRate,
			MinVisiblePercent: d.Splash.MinVisiblePercent,
			Skippable:         d.Splash.Skippable,
		},
		TUI: fileTUI{
			Theme:       d.TUI.Theme,
			WatchConfig: d.TUI.WatchConfig,
		},
		Logging: fileLogging{
			Enabled:    d.Logging.Enabled,
			Level:      d.Logging.Level,
			MaxSizeMB:  d.Logging.MaxSizeMB,
			MaxBackups: d.Logging.MaxBackups,
			Compress:   d.Logging.Compress,
		},
	}
	for _, item := range d.Splash.ContentItems() {
		fc.Splash.Content = append(fc.Splash.Content, appconfig.ContentConfig{
			Text:      item.Text,
			Company:   item.Company,
			Highlight: item.Highlight,
			Category:  string(item.Category),
			Gradient:  []string{item.Gradient[0], item.Gradient[1]},
		})
	}

	body, err := yaml.Marshal(fc)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal default config: %w", err)
	}
	return append([]byte(configHeader), body...), nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	configDir := appconfig.ConfigDir()
	configFile := appconfig.ConfigFile()

	if _, err := os.Stat(configFile); err == nil {
		return fmt.Errorf("config file already exists at %s", configFile)
	}

	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := defaultConfigYAML()
	if err != nil {
		return err
	}
	if err := os.WriteFile(configFile, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created config file at %s\n", configFile)
	fmt.Fprintln(out, "Edit this file to customize the splash.")

	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	configFile := appconfig.ConfigFile()

	if viper.ConfigFileUsed() != "" {
		fmt.Fprintf(out, "Active config: %s\n", viper.ConfigFileUsed())
	} else {
		fmt.Fprintf(out, "Default path: %s (not created)\n", configFile)
	}

	printSearchPaths(out)
	return nil
}

func printSearchPaths(out io.Writer) {
	fmt.Fprintln(out, "\nSearch paths:")
	fmt.Fprintf(out, "  1. %s\n", filepath.Join(appconfig.ConfigDir(), "config.yaml"))
	fmt.Fprintf(out, "  2. ./config.yaml (current directory)\n")
	fmt.Fprintln(out, "\nEnvironment variables: BOOTSPLASH_* (e.g., BOOTSPLASH_TUI_THEME)")
	fmt.Fprintln(out, "A .env file in the current directory is loaded first.")
}
