package styles

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"sort"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/gobwas/glob"
	"github.com/nilote/bootsplash/internal/errors"
	"gopkg.in/yaml.v3"
)

// ThemeFile represents a custom theme definition loaded from YAML.
type ThemeFile struct {
	// Name is the theme's display name (e.g., "Neon Nights")
	Name string `yaml:"name"`
	// Author is the theme creator's name (optional)
	Author string `yaml:"author,omitempty"`
	// Description provides details about the theme (optional)
	Description string `yaml:"description,omitempty"`
	// Version is the theme file format version (currently "1")
	Version string `yaml:"version"`
	// Colors defines the color palette
	Colors ThemeColors `yaml:"colors"`
}

// ThemeColors contains all color definitions for a theme.
// All colors should be hex format (#RRGGBB or #RGB).
type ThemeColors struct {
	// Required colors
	Primary   string `yaml:"primary"`
	Secondary string `yaml:"secondary"`
	Accent    string `yaml:"accent"`
	Dark      string `yaml:"dark"`
	Light     string `yaml:"light"`

	// Optional colors, derived from the required ones when empty
	Surface string `yaml:"surface,omitempty"`
	Muted   string `yaml:"muted,omitempty"`

	Accents  ThemeAccentColors   `yaml:"accents,omitempty"`
	Gradient ThemeGradientColors `yaml:"gradient,omitempty"`
}

// ThemeAccentColors defines the extended accent colors.
type ThemeAccentColors struct {
	Gold   string `yaml:"gold,omitempty"`
	Cyan   string `yaml:"cyan,omitempty"`
	Purple string `yaml:"purple,omitempty"`
	Orange string `yaml:"orange,omitempty"`
	Teal   string `yaml:"teal,omitempty"`
}

// ThemeGradientColors defines the three gradient stops.
type ThemeGradientColors struct {
	Start string `yaml:"start,omitempty"`
	Mid   string `yaml:"mid,omitempty"`
	End   string `yaml:"end,omitempty"`
}

// hexColorRegex validates hex color format.
var hexColorRegex = regexp.MustCompile(`^#([0-9A-Fa-f]{3}|[0-9A-Fa-f]{6})$`)

// themeFilePattern matches the file names picked up from the themes directory.
var themeFilePattern = glob.MustCompile("*.{yaml,yml}")

// LoadThemeFile loads a theme from a YAML file.
func LoadThemeFile(path string) (*ThemeFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewThemeError("reading theme file", err).WithPath(path)
	}

	var theme ThemeFile
	if err := yaml.Unmarshal(data, &theme); err != nil {
		return nil, errors.NewThemeError("parsing theme file", errors.Join(errors.ErrInvalidTheme, err)).WithPath(path)
	}

	if err := theme.Validate(); err != nil {
		return nil, errors.NewThemeError("invalid theme", err).WithPath(path).WithTheme(theme.Name)
	}

	return &theme, nil
}

// Validate checks that the theme file is well-formed. Every failure wraps
// errors.ErrInvalidTheme.
func (t *ThemeFile) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("%w: theme name is required", errors.ErrInvalidTheme)
	}

	if t.Version == "" {
		return fmt.Errorf("%w: theme version is required", errors.ErrInvalidTheme)
	}

	if t.Version != "1" {
		return fmt.Errorf("%w: unsupported theme version: %s (supported: 1)", errors.ErrInvalidTheme, t.Version)
	}

	// Ordered so the first reported problem is stable
	required := []struct{ name, color string }{
		{"primary", t.Colors.Primary},
		{"secondary", t.Colors.Secondary},
		{"accent", t.Colors.Accent},
		{"dark", t.Colors.Dark},
		{"light", t.Colors.Light},
	}
	for _, c := range required {
		if c.color == "" {
			return fmt.Errorf("%w: color '%s' is required", errors.ErrInvalidTheme, c.name)
		}
		if !isValidHexColor(c.color) {
			return fmt.Errorf("%w: color '%s' has invalid format: %s (expected #RGB or #RRGGBB)", errors.ErrInvalidTheme, c.name, c.color)
		}
	}

	optional := []struct{ name, color string }{
		{"surface", t.Colors.Surface},
		{"muted", t.Colors.Muted},
		{"accents.gold", t.Colors.Accents.Gold},
		{"accents.cyan", t.Colors.Accents.Cyan},
		{"accents.purple", t.Colors.Accents.Purple},
		{"accents.orange", t.Colors.Accents.Orange},
		{"accents.teal", t.Colors.Accents.Teal},
		{"gradient.start", t.Colors.Gradient.Start},
		{"gradient.mid", t.Colors.Gradient.Mid},
		{"gradient.end", t.Colors.Gradient.End},
	}
	for _, c := range optional {
		if c.color != "" && !isValidHexColor(c.color) {
			return fmt.Errorf("%w: color '%s' has invalid format: %s (expected #RGB or #RRGGBB)", errors.ErrInvalidTheme, c.name, c.color)
		}
	}

	return nil
}

// isValidHexColor checks if a string is a valid hex color.
func isValidHexColor(color string) bool {
	return hexColorRegex.MatchString(color)
}

// ToPalette converts the theme file to a ColorPalette.
func (t *ThemeFile) ToPalette() *ColorPalette {
	c := t.Colors
	p := &ColorPalette{
		Primary:   lipgloss.Color(c.Primary),
		Secondary: lipgloss.Color(c.Secondary),
		Accent:    lipgloss.Color(c.Accent),
		Dark:      lipgloss.Color(c.Dark),
		Light:     lipgloss.Color(c.Light),
	}

	p.Surface = colorOrDefault(c.Surface, c.Dark)
	p.Muted = colorOrDefault(c.Muted, c.Secondary)

	p.Gold = colorOrDefault(c.Accents.Gold, c.Accent)
	p.Cyan = colorOrDefault(c.Accents.Cyan, c.Accent)
	p.Purple = colorOrDefault(c.Accents.Purple, c.Primary)
	p.Orange = colorOrDefault(c.Accents.Orange, c.Secondary)
	p.Teal = colorOrDefault(c.Accents.Teal, c.Accent)

	p.Gradient1 = colorOrDefault(c.Gradient.Start, c.Primary)
	p.Gradient2 = colorOrDefault(c.Gradient.Mid, string(p.Purple))
	p.Gradient3 = colorOrDefault(c.Gradient.End, c.Secondary)

	return p
}

// colorOrDefault returns the color if non-empty, otherwise returns the default.
func colorOrDefault(color, defaultColor string) lipgloss.Color {
	if color != "" {
		return lipgloss.Color(color)
	}
	return lipgloss.Color(defaultColor)
}

// The registry is read from the UI goroutine and rewritten by the config
// watcher, so it is guarded.
var (
	customMu     sync.RWMutex
	customThemes = make(map[ThemeName]*ThemeFile)
)

// RegisterCustomTheme registers a custom theme by name.
func RegisterCustomTheme(name ThemeName, theme *ThemeFile) {
	customMu.Lock()
	defer customMu.Unlock()
	customThemes[name] = theme
}

// GetCustomTheme returns a custom theme by name, or nil if not found.
func GetCustomTheme(name ThemeName) *ThemeFile {
	customMu.RLock()
	defer customMu.RUnlock()
	return customThemes[name]
}

// CustomThemeNames returns the sorted names of all registered custom themes.
func CustomThemeNames() []string {
	customMu.RLock()
	defer customMu.RUnlock()

	names := make([]string, 0, len(customThemes))
	for name := range customThemes {
		names = append(names, string(name))
	}
	sort.Strings(names)
	return names
}

// ClearCustomThemes removes all registered custom themes.
// Primarily used for testing.
func ClearCustomThemes() {
	customMu.Lock()
	defer customMu.Unlock()
	customThemes = make(map[ThemeName]*ThemeFile)
}

// themesDirFn is the function that returns the themes directory.
// This can be overridden in tests.
var themesDirFn = defaultThemesDir

// defaultThemesDir returns the default themes directory path.
func defaultThemesDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "bootsplash", "themes")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".bootsplash", "themes")
	}
	return filepath.Join(home, ".config", "bootsplash", "themes")
}

// ThemesDir returns the directory where custom themes are stored.
func ThemesDir() string {
	return themesDirFn()
}

// SetThemesDirFunc sets the function used to determine the themes directory.
// This is primarily useful for testing. Returns the previous function.
func SetThemesDirFunc(fn func() string) func() string {
	prev := themesDirFn
	themesDirFn = fn
	return prev
}

// IsThemeFile reports whether a file name is picked up by DiscoverCustomThemes.
func IsThemeFile(name string) bool {
	return themeFilePattern.Match(name)
}

// DiscoverCustomThemes scans the themes directory and loads all valid themes.
// Invalid themes are skipped and returned as errors.
func DiscoverCustomThemes() ([]string, []error) {
	dir := ThemesDir()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, []error{errors.NewThemeError("creating themes directory", err).WithPath(dir)}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, []error{errors.NewThemeError("reading themes directory", err).WithPath(dir)}
	}

	var loaded []string
	var errs []error

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		if !IsThemeFile(name) {
			continue
		}

		path := filepath.Join(dir, name)
		theme, err := LoadThemeFile(path)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		// Theme name comes from the file name, not the name field
		themeName := strings.TrimSuffix(name, filepath.Ext(name))

		if IsBuiltinTheme(themeName) {
			errs = append(errs, errors.NewThemeError("cannot override built-in theme", errors.ErrBuiltinOverride).
				WithTheme(themeName).
				WithPath(path).
				WithSeverity(errors.SeverityWarning))
			continue
		}

		RegisterCustomTheme(ThemeName(themeName), theme)
		loaded = append(loaded, themeName)
	}

	return loaded, errs
}

// IsBuiltinTheme checks if a theme name is a built-in theme.
func IsBuiltinTheme(name string) bool {
	return slices.Contains(BuiltinThemes(), name)
}

// IsCustomTheme checks if a theme name is a registered custom theme.
func IsCustomTheme(name string) bool {
	return GetCustomTheme(ThemeName(name)) != nil
}

// ResolvePalette returns the palette for name, or an error wrapping
// errors.ErrThemeNotFound when no such theme exists. An empty name resolves
// to the default theme.
func ResolvePalette(name string) (*ColorPalette, error) {
	if name == "" {
		name = string(DefaultTheme)
	}
	if !IsValidTheme(name) {
		return nil, errors.NewThemeError(
			fmt.Sprintf("must be one of: %s", strings.Join(ValidThemes(), ", ")),
			errors.ErrThemeNotFound,
		).WithTheme(name)
	}
	return GetPalette(ThemeName(name)), nil
}

// ExportTheme exports a theme to YAML format.
// This can be used to save the current theme or create a template for customization.
func ExportTheme(name ThemeName) ([]byte, error) {
	themeFile := GetCustomTheme(name)
	if themeFile == nil {
		themeFile = paletteToThemeFile(string(name), GetPalette(name))
	}
	return yaml.Marshal(themeFile)
}

// paletteToThemeFile converts a ColorPalette to a ThemeFile for export.
func paletteToThemeFile(name string, p *ColorPalette) *ThemeFile {
	return &ThemeFile{
		Name:        name,
		Description: fmt.Sprintf("Exported from built-in theme '%s'", name),
		Version:     "1",
		Colors: ThemeColors{
			Primary:   string(p.Primary),
			Secondary: string(p.Secondary),
			Accent:    string(p.Accent),
			Dark:      string(p.Dark),
			Light:     string(p.Light),
			Surface:   string(p.Surface),
			Muted:     string(p.Muted),
			Accents: ThemeAccentColors{
				Gold:   string(p.Gold),
				Cyan:   string(p.Cyan),
				Purple: string(p.Purple),
				Orange: string(p.Orange),
				Teal:   string(p.Teal),
			},
			Gradient: ThemeGradientColors{
				Start: string(p.Gradient1),
				Mid:   string(p.Gradient2),
				End:   string(p.Gradient3),
			},
		},
	}
}

// SaveTheme saves a theme to the themes directory.
func SaveTheme(name string, theme *ThemeFile) error {
	dir := ThemesDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.NewThemeError("creating themes directory", err).WithPath(dir)
	}

	data, err := yaml.Marshal(theme)
	if err != nil {
		return errors.NewThemeError("marshaling theme", err).WithTheme(name)
	}

	path := filepath.Join(dir, name+".yaml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.NewThemeError("writing theme file", err).WithPath(path)
	}

	return nil
}
