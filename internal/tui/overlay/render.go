package overlay

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/nilote/bootsplash/internal/loading"
)

// particleField is the repeating pattern of the background decoration.
const particleField = "·      ˙    .        ·   ˙      .     "

const sgrReset = termenv.CSI + termenv.ResetSeq + "m"

// View renders the overlay. It returns an empty string before Init, after
// Unmount and once the overlay is complete.
func (m Model) View() string {
	if !m.Active() {
		return ""
	}

	elapsed := m.Elapsed()
	alpha := m.exitAlpha()
	sections := []string{
		m.renderLogo(elapsed, alpha),
		"",
		m.renderContent(elapsed, alpha),
		"",
		m.renderProgress(alpha),
		"",
		m.renderStatus(elapsed, alpha),
	}
	if m.skippable {
		hint := m.styles.Hint.Foreground(fade(parseColor(string(m.styles.Palette.Muted)), string(m.styles.Palette.Dark), alpha))
		sections = append(sections, "", hint.Render("press any key to skip"))
	}
	block := m.fillBackdrop(sections)

	if m.width <= 0 || m.height <= 0 {
		return block
	}
	return m.renderBackground(m.fitWidth(block), elapsed)
}

// fillBackdrop centers every section on a backdrop band as wide as the
// widest section, so no cell of the block shows the terminal background.
func (m Model) fillBackdrop(sections []string) string {
	width := 0
	for _, s := range sections {
		width = max(width, lipgloss.Width(s))
	}
	band := m.styles.Backdrop.Width(width).Align(lipgloss.Center)
	lines := make([]string, len(sections))
	for i, s := range sections {
		lines[i] = band.Render(s)
	}
	return strings.Join(lines, "\n")
}

// withBackdrop reopens the backdrop background after every SGR reset in s.
// Widgets like the progress bar only set a foreground.
func (m Model) withBackdrop(s string) string {
	bg := lipgloss.ColorProfile().Color(string(m.styles.Palette.Dark))
	if bg == nil || bg.Sequence(true) == "" {
		return s
	}
	open := termenv.CSI + bg.Sequence(true) + "m"
	out := strings.TrimSuffix(open+strings.ReplaceAll(s, sgrReset, sgrReset+open), open)
	if !strings.HasSuffix(out, sgrReset) {
		out += sgrReset
	}
	return out
}

// renderContent draws the current rotation item, faded in since it
// appeared.
func (m Model) renderContent(elapsed time.Duration, exit float64) string {
	item, ok := m.CurrentContent()
	if !ok {
		return ""
	}
	alpha := fadeIn(m.clock.Since(m.contentSince), contentFadeIn) * exit
	return m.renderItem(item, elapsed, alpha)
}

// renderItem draws one content item according to its category. Categories
// without a render branch produce an empty region.
func (m Model) renderItem(item loading.ContentItem, elapsed time.Duration, alpha float64) string {
	p := m.styles.Palette
	backdrop := string(p.Dark)
	from, to := m.itemGradient(item)

	prefix := m.styles.Prefix.
		Foreground(fade(parseColor(string(p.Light)), backdrop, alpha)).
		Render(item.Text)
	sep := m.styles.Backdrop.Render(" ")

	switch item.Category {
	case loading.CategoryPartnership:
		company := gradientText(item.Company, m.styles.Company, from, to, backdrop, pingPong(elapsed, shimmerPeriod), alpha)
		return prefix + sep + company

	case loading.CategoryPowered:
		glow := blend(from, to, pingPong(elapsed, glowPeriod))
		company := m.styles.Company.
			Foreground(fade(glow, backdrop, alpha)).
			Render(item.Company)
		return prefix + sep + company

	case loading.CategoryJourney, loading.CategoryModern:
		highlight := gradientText(item.Highlight, m.styles.Highlight, from, to, backdrop, pingPong(elapsed, shimmerPeriod), alpha)
		return prefix + sep + highlight

	default:
		return ""
	}
}

// itemGradient returns the item's gradient stops, or the palette's primary
// pair when the item has none.
func (m Model) itemGradient(item loading.ContentItem) (string, string) {
	from, to := item.Gradient[0], item.Gradient[1]
	if from == "" {
		from = string(m.styles.Palette.Primary)
	}
	if to == "" {
		to = string(m.styles.Palette.Secondary)
	}
	return from, to
}

// renderProgress draws the bar with its minimum visible fill and the
// rounded percentage.
func (m Model) renderProgress(alpha float64) string {
	p := m.styles.Palette
	fill := loading.DisplayWidth(m.state.Progress, m.timing.MinVisiblePercent) / 100
	percent := m.styles.Percent.
		Foreground(fade(parseColor(string(p.Light)), string(p.Dark), alpha)).
		Render(fmt.Sprintf("%3d%%", loading.RoundPercent(m.state.Progress)))
	return m.withBackdrop(m.bar.ViewAs(fill)) + m.styles.Backdrop.Render("  ") + percent
}

// renderStatus draws the spinner next to a pulsing "Loading" label.
func (m Model) renderStatus(elapsed time.Duration, alpha float64) string {
	p := m.styles.Palette
	pulse := blend(string(p.Muted), string(p.Light), pingPong(elapsed, labelPeriod))
	dots := int(elapsed/(labelPeriod/3)) % 4
	label := m.styles.Label.
		Foreground(fade(pulse, string(p.Dark), alpha)).
		Render("Loading" + strings.Repeat(".", dots) + strings.Repeat(" ", 3-dots))

	sp := m.spinner
	sp.Style = m.styles.Spinner.Foreground(fade(parseColor(string(p.Primary)), string(p.Dark), alpha))
	return sp.View() + m.styles.Backdrop.Render(" ") + label
}

// renderBackground centers block on a full-screen particle field that
// drifts one column every particleStep.
func (m Model) renderBackground(block string, elapsed time.Duration) string {
	p := m.styles.Palette
	return lipgloss.Place(m.width, m.height,
		lipgloss.Center, lipgloss.Center,
		block,
		lipgloss.WithWhitespaceChars(particles(elapsed)),
		lipgloss.WithWhitespaceForeground(m.styles.Particle.GetForeground()),
		lipgloss.WithWhitespaceBackground(p.Dark),
	)
}

// particles returns the particle pattern rotated for the given time.
func particles(elapsed time.Duration) string {
	runes := []rune(particleField)
	shift := int(elapsed/particleStep) % len(runes)
	return string(runes[shift:]) + string(runes[:shift])
}

// fitWidth truncates every line of s to the terminal width.
func (m Model) fitWidth(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if lipgloss.Width(line) > m.width {
			lines[i] = ansi.Truncate(line, m.width, "…")
		}
	}
	return strings.Join(lines, "\n")
}
