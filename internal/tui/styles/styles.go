package styles

import "github.com/charmbracelet/lipgloss"

// Styles contains the lipgloss styles built from a color palette.
// Build a new value with NewStyles when the theme changes.
type Styles struct {
	Palette *ColorPalette

	// Backdrop fills the screen behind everything else. Every other style
	// carries the same background so the splash stays opaque.
	Backdrop lipgloss.Style
	// Particle colors the decorative background field
	Particle lipgloss.Style

	Logo lipgloss.Style

	// Content region
	Prefix    lipgloss.Style
	Company   lipgloss.Style
	Highlight lipgloss.Style

	// Progress area
	Percent lipgloss.Style
	Label   lipgloss.Style
	Spinner lipgloss.Style
	Hint    lipgloss.Style
}

// NewStyles creates a Styles from the given palette.
func NewStyles(p *ColorPalette) *Styles {
	return &Styles{
		Palette: p,

		Backdrop: lipgloss.NewStyle().
			Foreground(p.Light).
			Background(p.Dark),

		Particle: lipgloss.NewStyle().
			Foreground(p.Muted).
			Background(p.Dark),

		Logo: lipgloss.NewStyle().
			Bold(true).
			Background(p.Dark),

		Prefix: lipgloss.NewStyle().
			Foreground(p.Light).
			Background(p.Dark),

		Company: lipgloss.NewStyle().
			Bold(true).
			Background(p.Dark),

		Highlight: lipgloss.NewStyle().
			Bold(true).
			Background(p.Dark),

		Percent: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Light).
			Background(p.Dark),

		Label: lipgloss.NewStyle().
			Foreground(p.Muted).
			Background(p.Dark),

		Spinner: lipgloss.NewStyle().
			Foreground(p.Primary).
			Background(p.Dark),

		Hint: lipgloss.NewStyle().
			Foreground(p.Muted).
			Background(p.Dark).
			Faint(true),
	}
}

// Default returns the styles for the default theme.
func Default() *Styles {
	return NewStyles(GetPalette(DefaultTheme))
}

// ForTheme returns the styles for a theme name, falling back to the
// default theme when the name is unknown.
func ForTheme(name string) *Styles {
	return NewStyles(GetPalette(ThemeName(name)))
}
