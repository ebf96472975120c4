package loading

import (
	"math"
	"testing"
	"time"
)

func TestEaseOutQuart(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{-1, 0},
		{0, 0},
		{0.5, 0.9375},
		{1, 1},
		{2, 1},
	}

	for _, tt := range tests {
		if got := EaseOutQuart(tt.in); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("EaseOutQuart(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestProgressAt(t *testing.T) {
	const d = 10 * time.Second

	tests := []struct {
		name    string
		elapsed time.Duration
		want    float64
	}{
		{"mount", 0, 0},
		{"one second", time.Second, (1 - math.Pow(0.9, 4)) * 100},
		{"halfway", 5 * time.Second, 93.75},
		{"just before end", 9999 * time.Millisecond, (1 - math.Pow(0.0001, 4)) * 100},
		{"at end", d, 100},
		{"past end", 12 * time.Second, 100},
		{"negative elapsed", -time.Second, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ProgressAt(tt.elapsed, d)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("ProgressAt(%v) = %v, want %v", tt.elapsed, got, tt.want)
			}
		})
	}
}

func TestProgressAt_Monotonic(t *testing.T) {
	const d = 10 * time.Second
	prev := -1.0
	for ms := 0; ms <= 11000; ms += 7 {
		p := ProgressAt(time.Duration(ms)*time.Millisecond, d)
		if p < prev {
			t.Fatalf("progress decreased at %dms: %v < %v", ms, p, prev)
		}
		if p < 0 || p > 100 {
			t.Fatalf("progress out of range at %dms: %v", ms, p)
		}
		prev = p
	}
}

func TestProgressAt_ZeroDuration(t *testing.T) {
	if got := ProgressAt(0, 0); got != 100 {
		t.Errorf("ProgressAt with zero duration = %v, want 100", got)
	}
}

func TestDisplayWidth(t *testing.T) {
	tests := []struct {
		progress float64
		want     float64
	}{
		{0, 5},
		{3, 5},
		{5, 5},
		{40, 40},
		{100, 100},
		{120, 100},
	}

	for _, tt := range tests {
		if got := DisplayWidth(tt.progress, 5); got != tt.want {
			t.Errorf("DisplayWidth(%v, 5) = %v, want %v", tt.progress, got, tt.want)
		}
	}
}

func TestContentIndexAt(t *testing.T) {
	const interval = 2 * time.Second

	tests := []struct {
		elapsed time.Duration
		n       int
		want    int
	}{
		{0, 4, 0},
		{1999 * time.Millisecond, 4, 0},
		{2 * time.Second, 4, 1},
		{7 * time.Second, 4, 3},
		{8 * time.Second, 4, 0},
		{10 * time.Second, 4, 1},
		{5 * time.Second, 0, 0},
		{-time.Second, 4, 0},
	}

	for _, tt := range tests {
		if got := ContentIndexAt(tt.elapsed, interval, tt.n); got != tt.want {
			t.Errorf("ContentIndexAt(%v, %v, %d) = %d, want %d", tt.elapsed, interval, tt.n, got, tt.want)
		}
	}
}

func TestRoundPercent(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{0, 0},
		{34.4, 34},
		{34.5, 35},
		{99.6, 100},
		{-3, 0},
		{140, 100},
	}

	for _, tt := range tests {
		if got := RoundPercent(tt.in); got != tt.want {
			t.Errorf("RoundPercent(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestTiming(t *testing.T) {
	d := DefaultTiming()
	if got := d.CompleteAt(); got != 10600*time.Millisecond {
		t.Errorf("CompleteAt() = %v, want 10.6s", got)
	}

	filled := Timing{CompleteDelay: -time.Second}.WithDefaults()
	if filled.Duration != d.Duration || filled.RotateInterval != d.RotateInterval || filled.FrameInterval != d.FrameInterval {
		t.Errorf("WithDefaults() did not fill zero fields: %+v", filled)
	}
	if filled.CompleteDelay != 0 {
		t.Errorf("WithDefaults() CompleteDelay = %v, want 0", filled.CompleteDelay)
	}

	custom := Timing{Duration: 3 * time.Second, RotateInterval: time.Second, FrameInterval: time.Millisecond}.WithDefaults()
	if custom.Duration != 3*time.Second || custom.RotateInterval != time.Second {
		t.Errorf("WithDefaults() overwrote set fields: %+v", custom)
	}
}
