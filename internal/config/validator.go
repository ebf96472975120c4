package config

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/nilote/bootsplash/internal/tui/styles"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "splash.duration")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// hexColorRegex matches #RGB and #RRGGBB
var hexColorRegex = regexp.MustCompile(`^#([0-9A-Fa-f]{3}|[0-9A-Fa-f]{6})$`)

// Bounds for splash settings
const (
	maxDuration    = 5 * time.Minute
	minFrameRate   = 1
	maxFrameRate   = 240
	maxContentSize = 32
)

// ValidLogLevels returns the list of valid log levels
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, c.validateSplash()...)
	errors = append(errors, c.validateContent()...)
	errors = append(errors, c.validateTUI()...)
	errors = append(errors, c.validateLogging()...)

	return errors
}

func (c *Config) validateSplash() []ValidationError {
	var errors []ValidationError

	durations := []struct {
		field string
		value time.Duration
	}{
		{"splash.duration", c.Splash.Duration},
		{"splash.rotate_interval", c.Splash.RotateInterval},
	}
	for _, d := range durations {
		if d.value <= 0 {
			errors = append(errors, ValidationError{
				Field:   d.field,
				Value:   d.value,
				Message: "must be positive",
			})
		} else if d.value > maxDuration {
			errors = append(errors, ValidationError{
				Field:   d.field,
				Value:   d.value,
				Message: fmt.Sprintf("exceeds maximum of %s", maxDuration),
			})
		}
	}

	if c.Splash.CompleteDelay < 0 {
		errors = append(errors, ValidationError{
			Field:   "splash.complete_delay",
			Value:   c.Splash.CompleteDelay,
			Message: "must be non-negative",
		})
	}

	if c.Splash.FrameRate < minFrameRate || c.Splash.FrameRate > maxFrameRate {
		errors = append(errors, ValidationError{
			Field:   "splash.frame_rate",
			Value:   c.Splash.FrameRate,
			Message: fmt.Sprintf("must be between %d and %d", minFrameRate, maxFrameRate),
		})
	}

	if c.Splash.MinVisiblePercent < 0 || c.Splash.MinVisiblePercent > 100 {
		errors = append(errors, ValidationError{
			Field:   "splash.min_visible_percent",
			Value:   c.Splash.MinVisiblePercent,
			Message: "must be between 0 and 100",
		})
	}

	return errors
}

// validateContent checks the shape of configured content. Unknown categories
// are deliberately not rejected here; they render an empty region and are
// reported as warnings by the loading package.
func (c *Config) validateContent() []ValidationError {
	var errors []ValidationError

	if len(c.Splash.Content) > maxContentSize {
		errors = append(errors, ValidationError{
			Field:   "splash.content",
			Value:   len(c.Splash.Content),
			Message: fmt.Sprintf("exceeds maximum of %d items", maxContentSize),
		})
	}

	for i, item := range c.Splash.Content {
		field := fmt.Sprintf("splash.content[%d]", i)
		if strings.TrimSpace(item.Category) == "" {
			errors = append(errors, ValidationError{
				Field:   field + ".category",
				Value:   item.Category,
				Message: "is required",
			})
		}
		if len(item.Gradient) > 2 {
			errors = append(errors, ValidationError{
				Field:   field + ".gradient",
				Value:   item.Gradient,
				Message: "must have at most two colors",
			})
		}
		for _, color := range item.Gradient {
			if !hexColorRegex.MatchString(color) {
				errors = append(errors, ValidationError{
					Field:   field + ".gradient",
					Value:   color,
					Message: "must be a hex color (#RGB or #RRGGBB)",
				})
			}
		}
	}

	return errors
}

func (c *Config) validateTUI() []ValidationError {
	var errors []ValidationError

	if c.TUI.Theme != "" && !styles.IsValidTheme(c.TUI.Theme) {
		errors = append(errors, ValidationError{
			Field:   "tui.theme",
			Value:   c.TUI.Theme,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(styles.ValidThemes(), ", ")),
		})
	}

	return errors
}

func (c *Config) validateLogging() []ValidationError {
	var errors []ValidationError

	if c.Logging.Level != "" && !slices.Contains(ValidLogLevels(), strings.ToLower(c.Logging.Level)) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}

	if c.Logging.MaxSizeMB < 0 {
		errors = append(errors, ValidationError{
			Field:   "logging.max_size_mb",
			Value:   c.Logging.MaxSizeMB,
			Message: "must be non-negative",
		})
	}

	if c.Logging.MaxBackups < 0 {
		errors = append(errors, ValidationError{
			Field:   "logging.max_backups",
			Value:   c.Logging.MaxBackups,
			Message: "must be non-negative",
		})
	}

	return errors
}
