package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/nilote/bootsplash/internal/loading"
	"github.com/spf13/viper"
)

// Config represents the complete bootsplash configuration
type Config struct {
	Splash  SplashConfig  `mapstructure:"splash"`
	TUI     TUIConfig     `mapstructure:"tui"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// SplashConfig controls the loading overlay's timing and content
type SplashConfig struct {
	// Duration is how long the progress animation takes to reach 100% (default: 10s)
	Duration time.Duration `mapstructure:"duration"`
	// RotateInterval is how often the promotional content changes (default: 2s)
	RotateInterval time.Duration `mapstructure:"rotate_interval"`
	// CompleteDelay is the pause between reaching 100% and unmounting (default: 600ms)
	CompleteDelay time.Duration `mapstructure:"complete_delay"`
	// FrameRate is the number of animation frames per second (default: 60, max: 240)
	FrameRate int `mapstructure:"frame_rate"`
	// MinVisiblePercent is the smallest bar fill ever drawn (default: 5)
	MinVisiblePercent float64 `mapstructure:"min_visible_percent"`
	// Skippable lets any key finish the splash immediately (default: false)
	Skippable bool `mapstructure:"skippable"`
	// Content replaces the built-in rotation when non-empty
	Content []ContentConfig `mapstructure:"content"`
}

// ContentConfig is one rotating content record as written in the config file.
// Company is shown for partnership/powered items, Highlight for journey/modern.
type ContentConfig struct {
	Text      string   `mapstructure:"text" yaml:"text"`
	Company   string   `mapstructure:"company" yaml:"company,omitempty"`
	Highlight string   `mapstructure:"highlight" yaml:"highlight,omitempty"`
	Category  string   `mapstructure:"category" yaml:"category"`
	Gradient  []string `mapstructure:"gradient" yaml:"gradient,flow"`
}

// TUIConfig controls the terminal UI behavior
type TUIConfig struct {
	// Theme is the color theme name, built-in or custom (default: "vibrant")
	Theme string `mapstructure:"theme"`
	// WatchConfig restyles the running splash when the config file changes (default: false)
	WatchConfig bool `mapstructure:"watch_config"`
}

// LoggingConfig controls debug logging behavior
type LoggingConfig struct {
	// Enabled controls whether logs are written at all (default: true)
	Enabled bool `mapstructure:"enabled"`
	// Level is the log level: "debug", "info", "warn", "error" (default: "info")
	Level string `mapstructure:"level"`
	// Dir overrides the log directory (default: <state dir>)
	Dir string `mapstructure:"dir"`
	// MaxSizeMB is the maximum log file size in megabytes before rotation (default: 10)
	MaxSizeMB int `mapstructure:"max_size_mb"`
	// MaxBackups is the number of backup log files to keep (default: 3)
	MaxBackups int `mapstructure:"max_backups"`
	// Compress gzips rotated log files (default: false)
	Compress bool `mapstructure:"compress"`
}

// Default returns a Config with sensible default values
func Default() *Config {
	timing := loading.DefaultTiming()
	return &Config{
		Splash: SplashConfig{
			Duration:          timing.Duration,
			RotateInterval:    timing.RotateInterval,
			CompleteDelay:     timing.CompleteDelay,
			FrameRate:         60,
			MinVisiblePercent: timing.MinVisiblePercent,
			Skippable:         false,
			Content:           []ContentConfig{}, // Empty means built-in content
		},
		TUI: TUIConfig{
			Theme:       "vibrant",
			WatchConfig: false,
		},
		Logging: LoggingConfig{
			Enabled:    true,
			Level:      "info",
			Dir:        "",
			MaxSizeMB:  10,
			MaxBackups: 3,
			Compress:   false,
		},
	}
}

// Timing converts the splash settings into the loading package's timing.
func (s *SplashConfig) Timing() loading.Timing {
	t := loading.Timing{
		Duration:          s.Duration,
		RotateInterval:    s.RotateInterval,
		CompleteDelay:     s.CompleteDelay,
		MinVisiblePercent: s.MinVisiblePercent,
	}
	if s.FrameRate > 0 {
		t.FrameInterval = time.Second / time.Duration(s.FrameRate)
	}
	return t
}

// ContentItems returns the rotation content: the configured list when
// present, the built-in list otherwise.
func (s *SplashConfig) ContentItems() []loading.ContentItem {
	if len(s.Content) == 0 {
		return loading.DefaultContent()
	}

	items := make([]loading.ContentItem, 0, len(s.Content))
	for _, c := range s.Content {
		item := loading.ContentItem{
			Text:      c.Text,
			Company:   c.Company,
			Highlight: c.Highlight,
			Category:  loading.Category(c.Category),
		}
		if len(c.Gradient) > 0 {
			item.Gradient[0] = c.Gradient[0]
			item.Gradient[1] = c.Gradient[0]
		}
		if len(c.Gradient) > 1 {
			item.Gradient[1] = c.Gradient[1]
		}
		items = append(items, item)
	}
	return items
}

// SetDefaults registers default values with viper
func SetDefaults() {
	defaults := Default()

	// Splash defaults
	viper.SetDefault("splash.duration", defaults.Splash.Duration)
	viper.SetDefault("splash.rotate_interval", defaults.Splash.RotateInterval)
	viper.SetDefault("splash.complete_delay", defaults.Splash.CompleteDelay)
	viper.SetDefault("splash.frame_rate", defaults.Splash.FrameRate)
	viper.SetDefault("splash.min_visible_percent", defaults.Splash.MinVisiblePercent)
	viper.SetDefault("splash.skippable", defaults.Splash.Skippable)
	viper.SetDefault("splash.content", defaults.Splash.Content)

	// TUI defaults
	viper.SetDefault("tui.theme", defaults.TUI.Theme)
	viper.SetDefault("tui.watch_config", defaults.TUI.WatchConfig)

	// Logging defaults
	viper.SetDefault("logging.enabled", defaults.Logging.Enabled)
	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.dir", defaults.Logging.Dir)
	viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	viper.SetDefault("logging.compress", defaults.Logging.Compress)
}

// Load reads the configuration from viper into a Config struct and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// Get returns the current configuration, falling back to defaults when the
// loaded configuration is invalid.
func Get() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "bootsplash")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".bootsplash"
	}
	return filepath.Join(home, ".config", "bootsplash")
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// StateDir returns the directory for logs and other runtime state
func StateDir() string {
	if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
		return filepath.Join(xdg, "bootsplash")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".bootsplash", "state")
	}
	return filepath.Join(home, ".local", "state", "bootsplash")
}

// LogDir resolves the directory the logger should write to. An empty string
// means logging is disabled.
func (l *LoggingConfig) LogDir() string {
	if !l.Enabled {
		return ""
	}
	if l.Dir != "" {
		return l.Dir
	}
	return StateDir()
}
