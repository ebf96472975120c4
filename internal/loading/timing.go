package loading

import (
	"math"
	"time"
)

// Timing holds the constants that drive the splash.
type Timing struct {
	// Duration is the time the progress animation takes to reach 100.
	Duration time.Duration
	// RotateInterval is the period of the content rotation.
	RotateInterval time.Duration
	// CompleteDelay is the pause between reaching 100 and completing.
	CompleteDelay time.Duration
	// FrameInterval is the period of the progress animation steps.
	FrameInterval time.Duration
	// MinVisiblePercent is the smallest fill ever drawn.
	MinVisiblePercent float64
}

// DefaultTiming returns the standard splash timing: 10s progress, 2s
// rotation, 600ms trailing delay, 60 frames per second and a 5% minimum
// fill.
func DefaultTiming() Timing {
	return Timing{
		Duration:          10 * time.Second,
		RotateInterval:    2 * time.Second,
		CompleteDelay:     600 * time.Millisecond,
		FrameInterval:     time.Second / 60,
		MinVisiblePercent: 5,
	}
}

// WithDefaults fills zero fields from DefaultTiming.
func (t Timing) WithDefaults() Timing {
	d := DefaultTiming()
	if t.Duration <= 0 {
		t.Duration = d.Duration
	}
	if t.RotateInterval <= 0 {
		t.RotateInterval = d.RotateInterval
	}
	if t.CompleteDelay < 0 {
		t.CompleteDelay = 0
	}
	if t.FrameInterval <= 0 {
		t.FrameInterval = d.FrameInterval
	}
	return t
}

// CompleteAt returns the elapsed time at which the splash completes.
func (t Timing) CompleteAt() time.Duration {
	return t.Duration + t.CompleteDelay
}

// EaseOutQuart maps a linear fraction to 1-(1-t)^4. Inputs are clamped to [0,1].
func EaseOutQuart(t float64) float64 {
	t = clamp(t, 0, 1)
	return 1 - math.Pow(1-t, 4)
}

// Fraction returns min(elapsed/duration, 1), never negative.
func Fraction(elapsed, duration time.Duration) float64 {
	if duration <= 0 {
		return 1
	}
	return clamp(float64(elapsed)/float64(duration), 0, 1)
}

// ProgressAt returns the eased progress percentage after elapsed time.
// It is exactly 100 once elapsed >= duration.
func ProgressAt(elapsed, duration time.Duration) float64 {
	f := Fraction(elapsed, duration)
	if f >= 1 {
		return 100
	}
	return EaseOutQuart(f) * 100
}

// DisplayWidth returns the fill percentage actually drawn: progress, but
// never below minVisible.
func DisplayWidth(progress, minVisible float64) float64 {
	return math.Max(minVisible, clamp(progress, 0, 100))
}

// ContentIndexAt returns floor(elapsed/interval) mod n: the content shown
// after elapsed time when every rotation fired on schedule.
func ContentIndexAt(elapsed, interval time.Duration, n int) int {
	if n <= 0 || interval <= 0 || elapsed < 0 {
		return 0
	}
	return int(elapsed/interval) % n
}

// RoundPercent returns the percentage label value for progress.
func RoundPercent(progress float64) int {
	return int(math.Round(clamp(progress, 0, 100)))
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}
