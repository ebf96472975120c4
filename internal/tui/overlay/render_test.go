package overlay

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/nilote/bootsplash/internal/loading"
)

func TestRenderItem_Categories(t *testing.T) {
	m := New()

	tests := []struct {
		name string
		item loading.ContentItem
		want []string
	}{
		{
			name: "partnership",
			item: loading.ContentItem{Text: "In partnership with", Company: "DERIV", Category: loading.CategoryPartnership, Gradient: [2]string{"#F59E0B", "#F97316"}},
			want: []string{"In partnership with", "DERIV"},
		},
		{
			name: "powered",
			item: loading.ContentItem{Text: "Powered by", Company: "DERIV", Category: loading.CategoryPowered, Gradient: [2]string{"#EC4899", "#8B5CF6"}},
			want: []string{"Powered by", "DERIV"},
		},
		{
			name: "journey",
			item: loading.ContentItem{Text: "Simplifying your", Highlight: "trading journey", Category: loading.CategoryJourney},
			want: []string{"Simplifying your", "trading journey"},
		},
		{
			name: "modern",
			item: loading.ContentItem{Text: "Built for", Highlight: "modern traders", Category: loading.CategoryModern, Gradient: [2]string{"#6366F1", "#8B5CF6"}},
			want: []string{"Built for", "modern traders"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, elapsed := range []time.Duration{0, 750 * time.Millisecond, 1500 * time.Millisecond, 2900 * time.Millisecond} {
				out := ansiStrip(m.renderItem(tt.item, elapsed, 1))
				for _, w := range tt.want {
					if !strings.Contains(out, w) {
						t.Errorf("at %v render = %q, missing %q", elapsed, out, w)
					}
				}
			}
		})
	}
}

func TestRenderItem_UnknownCategoryIsEmpty(t *testing.T) {
	m := New()
	item := loading.ContentItem{Text: "Retro", Company: "ACME", Highlight: "vibes", Category: "retro"}
	if out := m.renderItem(item, time.Second, 1); out != "" {
		t.Errorf("unknown category rendered %q, want empty", out)
	}
}

func TestView_ShowsCurrentContentAndPercent(t *testing.T) {
	m, clock := newMounted(t)

	clock.Advance(5 * time.Second)
	m, _ = frame(m)
	m, _ = rotate(m)
	clock.Advance(time.Second)

	view := ansiStrip(m.View())
	if !strings.Contains(view, "Powered by") || !strings.Contains(view, "DERIV") {
		t.Errorf("view missing second content item:\n%s", view)
	}
	if !strings.Contains(view, "94%") {
		t.Errorf("view missing rounded percentage 94%%:\n%s", view)
	}
	if !strings.Contains(view, "Loading") {
		t.Errorf("view missing loading label:\n%s", view)
	}
	if strings.Contains(view, "press any key") {
		t.Error("skip hint shown for a non-skippable overlay")
	}
}

func TestView_UnknownCategoryLeavesRegionEmpty(t *testing.T) {
	items := []loading.ContentItem{{Text: "Retro", Company: "ACME", Category: "retro"}}
	m, _ := newMounted(t, WithContent(items))

	view := ansiStrip(m.View())
	if strings.Contains(view, "Retro") || strings.Contains(view, "ACME") {
		t.Errorf("unknown category should render nothing:\n%s", view)
	}
	if !strings.Contains(view, "0%") {
		t.Errorf("rest of the overlay should still render:\n%s", view)
	}
}

func TestView_SkipHint(t *testing.T) {
	m, _ := newMounted(t, WithSkippable(true))
	if !strings.Contains(ansiStrip(m.View()), "press any key to skip") {
		t.Error("skippable overlay should show the skip hint")
	}
}

func TestView_FitsTerminal(t *testing.T) {
	m, _ := newMounted(t)

	for _, size := range []tea.WindowSizeMsg{{Width: 20, Height: 12}, {Width: 80, Height: 24}} {
		m, _ = m.Update(size)
		view := m.View()
		for i, line := range strings.Split(view, "\n") {
			if w := lipgloss.Width(line); w > size.Width {
				t.Errorf("%dx%d: line %d is %d wide", size.Width, size.Height, i, w)
			}
		}
		if h := lipgloss.Height(view); h != size.Height {
			t.Errorf("%dx%d: view height = %d", size.Width, size.Height, h)
		}
	}
}

// trueColor forces 24-bit output for the duration of the test.
func trueColor(t *testing.T) {
	t.Helper()
	orig := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.TrueColor)
	t.Cleanup(func() { lipgloss.SetColorProfile(orig) })
}

func TestView_BackdropIsOpaque(t *testing.T) {
	trueColor(t)

	m, clock := newMounted(t, WithSkippable(true))
	m, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	clock.Advance(3 * time.Second)
	m, _ = frame(m)

	for i, line := range strings.Split(m.View(), "\n") {
		for _, seg := range strings.Split(line, sgrReset) {
			if strings.Contains(ansiStrip(seg), " ") && !strings.Contains(seg, "48;2;") {
				t.Errorf("line %d: cell run %q has no background", i, seg)
			}
		}
	}
}

func TestRenderLogo_LinesShareWidth(t *testing.T) {
	m := New()
	want := logoWidth()
	for i, line := range strings.Split(m.renderLogo(0, 1), "\n") {
		if w := lipgloss.Width(line); w != want {
			t.Errorf("logo line %d width = %d, want %d", i, w, want)
		}
	}
}

func TestWithBackdrop(t *testing.T) {
	trueColor(t)
	m := New()
	bg := termenv.TrueColor.Color(string(m.styles.Palette.Dark)).Sequence(true)
	open := termenv.CSI + bg + "m"

	bar := termenv.CSI + "38;2;1;2;3m█" + sgrReset + termenv.CSI + "38;2;4;5;6m░" + sgrReset
	got := m.withBackdrop(bar)
	want := open + termenv.CSI + "38;2;1;2;3m█" + sgrReset + open + termenv.CSI + "38;2;4;5;6m░" + sgrReset
	if got != want {
		t.Errorf("withBackdrop() = %q, want %q", got, want)
	}

	if got := m.withBackdrop("███"); got != open+"███"+sgrReset {
		t.Errorf("withBackdrop(plain) = %q", got)
	}
}

func TestWithBackdrop_NoColor(t *testing.T) {
	orig := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.Ascii)
	t.Cleanup(func() { lipgloss.SetColorProfile(orig) })

	if got := New().withBackdrop("███"); got != "███" {
		t.Errorf("withBackdrop() without color = %q, want input unchanged", got)
	}
}

func TestLogoLines(t *testing.T) {
	lines := logoLines()
	if len(lines) < 3 {
		t.Fatalf("logo has %d lines", len(lines))
	}
	if logoWidth() == 0 {
		t.Error("logo width is zero")
	}
}

func TestParticles(t *testing.T) {
	first := particles(0)
	if first != particleField {
		t.Errorf("particles(0) = %q, want the base field", first)
	}
	if particles(particleStep) == first {
		t.Error("particle field should drift over time")
	}
	if len([]rune(particles(time.Hour))) != len([]rune(particleField)) {
		t.Error("drift should keep the pattern length")
	}
}

func ansiStrip(s string) string {
	return ansiRe.ReplaceAllString(s, "")
}
