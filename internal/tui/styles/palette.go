package styles

import (
	"slices"

	"github.com/charmbracelet/lipgloss"
)

// ThemeName represents a named color theme.
type ThemeName string

// Available theme names.
const (
	ThemeVibrant  ThemeName = "vibrant"  // Indigo/pink on slate, the standard splash look
	ThemeMidnight ThemeName = "midnight" // Deep blue with cyan accents
	ThemeSunset   ThemeName = "sunset"   // Warm orange/rose
	ThemeForest   ThemeName = "forest"   // Emerald and teal
	ThemeMono     ThemeName = "mono"     // Grayscale, for low-color terminals
)

// DefaultTheme is used when no theme is configured.
const DefaultTheme = ThemeVibrant

// BuiltinThemes returns all built-in theme names.
func BuiltinThemes() []string {
	return []string{
		string(ThemeVibrant),
		string(ThemeMidnight),
		string(ThemeSunset),
		string(ThemeForest),
		string(ThemeMono),
	}
}

// ValidThemes returns all valid theme names (built-in + custom).
func ValidThemes() []string {
	themes := BuiltinThemes()
	themes = append(themes, CustomThemeNames()...)
	return themes
}

// IsValidTheme checks if a theme name is valid (built-in or custom).
func IsValidTheme(name string) bool {
	if slices.Contains(BuiltinThemes(), name) {
		return true
	}
	return IsCustomTheme(name)
}

// ColorPalette holds the semantic color tokens of the splash.
type ColorPalette struct {
	// Brand colors
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color

	// Extended accents
	Gold   lipgloss.Color
	Cyan   lipgloss.Color
	Purple lipgloss.Color
	Orange lipgloss.Color
	Teal   lipgloss.Color

	// Dark is the backdrop, Light the foreground text.
	Dark  lipgloss.Color
	Light lipgloss.Color
	// Surface is used for the empty part of the progress track.
	Surface lipgloss.Color
	// Muted is used for secondary text and background particles.
	Muted lipgloss.Color

	// Gradient stops for the logo and progress fill
	Gradient1 lipgloss.Color
	Gradient2 lipgloss.Color
	Gradient3 lipgloss.Color
}

// VibrantPalette returns the standard splash palette.
func VibrantPalette() *ColorPalette {
	return &ColorPalette{
		Primary:   lipgloss.Color("#6366F1"), // Indigo
		Secondary: lipgloss.Color("#EC4899"), // Pink
		Accent:    lipgloss.Color("#10B981"), // Emerald

		Gold:   lipgloss.Color("#F59E0B"),
		Cyan:   lipgloss.Color("#06D6A0"),
		Purple: lipgloss.Color("#8B5CF6"),
		Orange: lipgloss.Color("#F97316"),
		Teal:   lipgloss.Color("#14B8A6"),

		Dark:    lipgloss.Color("#0F172A"), // Slate-900
		Light:   lipgloss.Color("#F8FAFC"), // Slate-50
		Surface: lipgloss.Color("#1E293B"), // Slate-800
		Muted:   lipgloss.Color("#64748B"), // Slate-500

		Gradient1: lipgloss.Color("#6366F1"),
		Gradient2: lipgloss.Color("#8B5CF6"),
		Gradient3: lipgloss.Color("#EC4899"),
	}
}

// MidnightPalette returns a deep blue palette.
func MidnightPalette() *ColorPalette {
	return &ColorPalette{
		Primary:   lipgloss.Color("#3B82F6"),
		Secondary: lipgloss.Color("#22D3EE"),
		Accent:    lipgloss.Color("#A78BFA"),

		Gold:   lipgloss.Color("#FBBF24"),
		Cyan:   lipgloss.Color("#22D3EE"),
		Purple: lipgloss.Color("#A78BFA"),
		Orange: lipgloss.Color("#FB923C"),
		Teal:   lipgloss.Color("#2DD4BF"),

		Dark:    lipgloss.Color("#020617"),
		Light:   lipgloss.Color("#E2E8F0"),
		Surface: lipgloss.Color("#172554"),
		Muted:   lipgloss.Color("#475569"),

		Gradient1: lipgloss.Color("#1D4ED8"),
		Gradient2: lipgloss.Color("#3B82F6"),
		Gradient3: lipgloss.Color("#22D3EE"),
	}
}

// SunsetPalette returns a warm orange/rose palette.
func SunsetPalette() *ColorPalette {
	return &ColorPalette{
		Primary:   lipgloss.Color("#F97316"),
		Secondary: lipgloss.Color("#F43F5E"),
		Accent:    lipgloss.Color("#FACC15"),

		Gold:   lipgloss.Color("#FACC15"),
		Cyan:   lipgloss.Color("#67E8F9"),
		Purple: lipgloss.Color("#C084FC"),
		Orange: lipgloss.Color("#FB923C"),
		Teal:   lipgloss.Color("#5EEAD4"),

		Dark:    lipgloss.Color("#1C1917"),
		Light:   lipgloss.Color("#FFF7ED"),
		Surface: lipgloss.Color("#292524"),
		Muted:   lipgloss.Color("#78716C"),

		Gradient1: lipgloss.Color("#FACC15"),
		Gradient2: lipgloss.Color("#F97316"),
		Gradient3: lipgloss.Color("#F43F5E"),
	}
}

// ForestPalette returns an emerald/teal palette.
func ForestPalette() *ColorPalette {
	return &ColorPalette{
		Primary:   lipgloss.Color("#10B981"),
		Secondary: lipgloss.Color("#14B8A6"),
		Accent:    lipgloss.Color("#84CC16"),

		Gold:   lipgloss.Color("#EAB308"),
		Cyan:   lipgloss.Color("#06D6A0"),
		Purple: lipgloss.Color("#A78BFA"),
		Orange: lipgloss.Color("#F59E0B"),
		Teal:   lipgloss.Color("#14B8A6"),

		Dark:    lipgloss.Color("#052E16"),
		Light:   lipgloss.Color("#ECFDF5"),
		Surface: lipgloss.Color("#064E3B"),
		Muted:   lipgloss.Color("#4B7F6B"),

		Gradient1: lipgloss.Color("#84CC16"),
		Gradient2: lipgloss.Color("#10B981"),
		Gradient3: lipgloss.Color("#14B8A6"),
	}
}

// MonoPalette returns a grayscale palette.
func MonoPalette() *ColorPalette {
	return &ColorPalette{
		Primary:   lipgloss.Color("#E5E5E5"),
		Secondary: lipgloss.Color("#A3A3A3"),
		Accent:    lipgloss.Color("#FAFAFA"),

		Gold:   lipgloss.Color("#D4D4D4"),
		Cyan:   lipgloss.Color("#D4D4D4"),
		Purple: lipgloss.Color("#A3A3A3"),
		Orange: lipgloss.Color("#D4D4D4"),
		Teal:   lipgloss.Color("#A3A3A3"),

		Dark:    lipgloss.Color("#0A0A0A"),
		Light:   lipgloss.Color("#FAFAFA"),
		Surface: lipgloss.Color("#262626"),
		Muted:   lipgloss.Color("#525252"),

		Gradient1: lipgloss.Color("#737373"),
		Gradient2: lipgloss.Color("#A3A3A3"),
		Gradient3: lipgloss.Color("#FAFAFA"),
	}
}

// GetPalette returns the color palette for the given theme name.
// Checks custom themes first, then falls back to built-in themes.
// Returns the vibrant palette for unknown theme names.
func GetPalette(name ThemeName) *ColorPalette {
	if custom := GetCustomTheme(name); custom != nil {
		return custom.ToPalette()
	}

	switch name {
	case ThemeMidnight:
		return MidnightPalette()
	case ThemeSunset:
		return SunsetPalette()
	case ThemeForest:
		return ForestPalette()
	case ThemeMono:
		return MonoPalette()
	default:
		return VibrantPalette()
	}
}
