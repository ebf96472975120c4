package overlay

import (
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Animation periods for the decorative effects.
const (
	shimmerPeriod = 3 * time.Second
	glowPeriod    = 2 * time.Second
	labelPeriod   = 2 * time.Second
	logoFadeIn    = 1200 * time.Millisecond
	contentFadeIn = 500 * time.Millisecond
	exitFade      = 500 * time.Millisecond
	particleStep  = 250 * time.Millisecond
	fallbackColor = "#FFFFFF"
)

// parseColor converts a hex string, falling back to white for anything
// unparseable so a bad config never breaks rendering.
func parseColor(hex string) colorful.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		c, _ = colorful.Hex(fallbackColor)
	}
	return c
}

// blend mixes two hex colors in Luv space. t is clamped to [0,1].
func blend(from, to string, t float64) colorful.Color {
	switch {
	case t <= 0:
		return parseColor(from)
	case t >= 1:
		return parseColor(to)
	}
	return parseColor(from).BlendLuv(parseColor(to), t).Clamped()
}

// pingPong maps elapsed time onto a triangle wave that goes 0→1→0 once per
// period.
func pingPong(elapsed, period time.Duration) float64 {
	if period <= 0 {
		return 0
	}
	phase := float64(elapsed%period) / float64(period)
	return 1 - math.Abs(2*phase-1)
}

// fadeIn returns the opacity reached after elapsed time of a fade lasting d.
func fadeIn(elapsed, d time.Duration) float64 {
	if d <= 0 || elapsed >= d {
		return 1
	}
	if elapsed <= 0 {
		return 0
	}
	return float64(elapsed) / float64(d)
}

// fade dims color toward the backdrop: at alpha 0 it is the backdrop, at 1
// the color itself.
func fade(color colorful.Color, backdrop string, alpha float64) lipgloss.Color {
	switch {
	case alpha >= 1:
		return lipgloss.Color(color.Hex())
	case alpha <= 0:
		return lipgloss.Color(parseColor(backdrop).Hex())
	}
	return lipgloss.Color(parseColor(backdrop).BlendLuv(color, alpha).Clamped().Hex())
}

// gradientText colors each rune of text along a two-stop gradient. offset
// slides the gradient across the text; at 0 the first rune is exactly
// from, and as offset grows the colors shift toward to and back.
func gradientText(text string, base lipgloss.Style, from, to, backdrop string, offset, alpha float64) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}

	var sb strings.Builder
	for i, r := range runes {
		if r == ' ' {
			sb.WriteString(base.Render(" "))
			continue
		}
		pos := 0.0
		if len(runes) > 1 {
			pos = float64(i) / float64(len(runes)-1)
		}
		// Walk the gradient twice as wide as the text and mirror it, so the
		// slide wraps around without a visible seam.
		t := pos + offset
		t = 1 - math.Abs(1-math.Mod(t, 2))
		c := fade(blend(from, to, t), backdrop, alpha)
		sb.WriteString(base.Foreground(c).Render(string(r)))
	}
	return sb.String()
}

// multiGradient colors a rune position along evenly spaced stops.
func multiGradient(stops []string, t float64) colorful.Color {
	switch len(stops) {
	case 0:
		return parseColor(fallbackColor)
	case 1:
		return parseColor(stops[0])
	}
	t = math.Max(0, math.Min(1, t))
	seg := t * float64(len(stops)-1)
	i := int(seg)
	if i >= len(stops)-1 {
		return parseColor(stops[len(stops)-1])
	}
	return blend(stops[i], stops[i+1], seg-float64(i))
}
