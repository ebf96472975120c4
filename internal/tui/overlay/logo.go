package overlay

import (
	_ "embed"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

//go:embed assets/logo.txt
var logoArt string

// logoLines returns the embedded logo split into lines, without the
// trailing newline.
func logoLines() []string {
	return strings.Split(strings.TrimRight(logoArt, "\n"), "\n")
}

// logoWidth returns the width of the widest logo line.
func logoWidth() int {
	w := 0
	for _, line := range logoLines() {
		w = max(w, lipgloss.Width(line))
	}
	return w
}

// renderLogo draws the logo with a horizontal three-stop gradient, faded
// in from the backdrop over logoFadeIn. Every line is padded to the logo
// width on the backdrop.
func (m Model) renderLogo(elapsed time.Duration, exit float64) string {
	p := m.styles.Palette
	stops := []string{string(p.Gradient1), string(p.Gradient2), string(p.Gradient3)}
	alpha := fadeIn(elapsed, logoFadeIn) * exit
	width := logoWidth()
	blank := m.styles.Logo.Render(" ")

	lines := logoLines()
	out := make([]string, len(lines))
	for i, line := range lines {
		var sb strings.Builder
		for col, r := range []rune(line) {
			if r == ' ' {
				sb.WriteString(blank)
				continue
			}
			t := 0.0
			if width > 1 {
				t = float64(col) / float64(width-1)
			}
			c := fade(multiGradient(stops, t), string(p.Dark), alpha)
			sb.WriteString(m.styles.Logo.Foreground(c).Render(string(r)))
		}
		sb.WriteString(strings.Repeat(blank, max(0, width-lipgloss.Width(line))))
		out[i] = sb.String()
	}
	return strings.Join(out, "\n")
}
