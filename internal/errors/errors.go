// Package errors provides centralized error definitions for bootsplash.
// It defines domain-specific errors for themes and rotation content, plus a
// severity classification used to decide how loudly to report them.
//
// # Error Types
//
// Domain-specific errors represent errors from specific subsystems:
//   - ThemeError: errors loading, resolving or exporting color themes
//   - ContentError: problems with the rotating promotional content list
//
// # Usage
//
//	err := errors.NewThemeError("cannot load theme", errors.ErrInvalidTheme).WithTheme("neon")
//
//	if errors.Is(err, errors.ErrInvalidTheme) { ... }
//
//	var themeErr *errors.ThemeError
//	if errors.As(err, &themeErr) { ... }
//
// None of these errors are produced by the overlay itself, which has no
// failure path. They are raised by the surrounding CLI while preparing it.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Re-export standard library functions for convenience.
// This allows callers to import only this package for all error handling.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	New    = errors.New
	Join   = errors.Join
)

// Severity represents the severity level of an error.
type Severity int

const (
	// SeverityDebug is for errors that are useful for debugging but not critical.
	SeverityDebug Severity = iota
	// SeverityInfo is for informational errors that don't indicate a problem.
	SeverityInfo
	// SeverityWarning is for errors that might indicate a problem but aren't critical.
	SeverityWarning
	// SeverityError is for errors that indicate a real problem.
	SeverityError
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityDebug:
		return "debug"
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Theme-related sentinel errors
var (
	// ErrThemeNotFound indicates that no built-in or custom theme has the requested name.
	ErrThemeNotFound = New("theme not found")
	// ErrInvalidTheme indicates that a theme file failed validation.
	ErrInvalidTheme = New("invalid theme")
	// ErrBuiltinOverride indicates a custom theme tried to shadow a built-in one.
	ErrBuiltinOverride = New("cannot override built-in theme")
)

// Content-related sentinel errors
var (
	// ErrUnknownCategory indicates a content item whose category has no render branch.
	ErrUnknownCategory = New("unknown content category")
	// ErrEmptyContent indicates a content item with nothing to display.
	ErrEmptyContent = New("content item has no text")
)

// SplashError is the base interface for all bootsplash errors.
type SplashError interface {
	error
	Unwrap() error
	Is(target error) bool
	Severity() Severity
}

// baseError provides common functionality for all error types.
type baseError struct {
	message  string
	cause    error
	severity Severity
}

// Error returns the error message.
func (e *baseError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

// Unwrap returns the underlying error.
func (e *baseError) Unwrap() error {
	return e.cause
}

// Is checks if this error matches the target.
func (e *baseError) Is(target error) bool {
	if e.cause != nil {
		return errors.Is(e.cause, target)
	}
	return false
}

// Severity returns the error severity.
func (e *baseError) Severity() Severity {
	return e.severity
}

// ThemeError represents errors related to color themes.
//
// Example:
//
//	err := errors.NewThemeError("cannot load theme", errors.ErrInvalidTheme).WithTheme("neon").WithPath("/tmp/neon.yaml")
//	fmt.Println(err) // "theme error [theme=neon, path=/tmp/neon.yaml]: cannot load theme: invalid theme"
type ThemeError struct {
	baseError
	Theme string
	Path  string
}

// NewThemeError creates a new ThemeError.
func NewThemeError(message string, cause error) *ThemeError {
	return &ThemeError{
		baseError: baseError{
			message:  message,
			cause:    cause,
			severity: SeverityError,
		},
	}
}

// WithTheme adds the theme name to the error context.
func (e *ThemeError) WithTheme(name string) *ThemeError {
	e.Theme = name
	return e
}

// WithPath adds the theme file path to the error context.
func (e *ThemeError) WithPath(path string) *ThemeError {
	e.Path = path
	return e
}

// WithSeverity sets the error severity.
func (e *ThemeError) WithSeverity(s Severity) *ThemeError {
	e.severity = s
	return e
}

// Error returns the formatted error message.
func (e *ThemeError) Error() string {
	var parts []string
	if e.Theme != "" {
		parts = append(parts, fmt.Sprintf("theme=%s", e.Theme))
	}
	if e.Path != "" {
		parts = append(parts, fmt.Sprintf("path=%s", e.Path))
	}
	return formatWithContext("theme error", parts, e.message, e.cause)
}

// Is checks if this error matches the target.
func (e *ThemeError) Is(target error) bool {
	if _, ok := target.(*ThemeError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// ContentError represents a problem with one rotating content item.
// Index is the item's position in the rotation, or -1 when unknown.
type ContentError struct {
	baseError
	Index    int
	Category string
}

// NewContentError creates a new ContentError. Content problems never stop
// the splash, so they default to warning severity.
func NewContentError(message string, cause error) *ContentError {
	return &ContentError{
		baseError: baseError{
			message:  message,
			cause:    cause,
			severity: SeverityWarning,
		},
		Index: -1,
	}
}

// WithIndex adds the item position to the error context.
func (e *ContentError) WithIndex(i int) *ContentError {
	e.Index = i
	return e
}

// WithCategory adds the item category to the error context.
func (e *ContentError) WithCategory(category string) *ContentError {
	e.Category = category
	return e
}

// Error returns the formatted error message.
func (e *ContentError) Error() string {
	var parts []string
	if e.Index >= 0 {
		parts = append(parts, fmt.Sprintf("index=%d", e.Index))
	}
	if e.Category != "" {
		parts = append(parts, fmt.Sprintf("category=%s", e.Category))
	}
	return formatWithContext("content error", parts, e.message, e.cause)
}

// Is checks if this error matches the target.
func (e *ContentError) Is(target error) bool {
	if _, ok := target.(*ContentError); ok {
		return true
	}
	return e.baseError.Is(target)
}

func formatWithContext(kind string, parts []string, message string, cause error) string {
	prefix := kind
	if len(parts) > 0 {
		prefix = fmt.Sprintf("%s [%s]", kind, strings.Join(parts, ", "))
	}
	if cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, message, cause)
	}
	return fmt.Sprintf("%s: %s", prefix, message)
}

// GetSeverity returns the severity level of the error.
// Returns SeverityError for errors that don't implement SplashError.
func GetSeverity(err error) Severity {
	if err == nil {
		return SeverityDebug
	}
	var splashErr SplashError
	if As(err, &splashErr) {
		return splashErr.Severity()
	}
	return SeverityError
}
