// Package loading holds the renderer-independent core of the splash screen:
// the rotating content records, the eased progress curve, the animation
// state and its transitions, and a clock-driven Scheduler that runs the
// rotation and progress loops for hosts that do not have their own event
// loop.
//
// # Timing
//
// With [DefaultTiming] the progress value follows an ease-out quartic curve
// from 0 to 100 over 10 seconds, content rotates every 2 seconds, and the
// state becomes complete 600ms after progress reaches 100.
//
//	progress := loading.ProgressAt(elapsed, timing.Duration)
//	index := loading.ContentIndexAt(elapsed, timing.RotateInterval, len(items))
//	width := loading.DisplayWidth(progress, timing.MinVisiblePercent)
//
// # State
//
// [State] only moves forward: progress never decreases and completion is
// terminal. The Bubble Tea overlay and the [Scheduler] both mutate it through
// its methods.
//
// # Scheduler
//
// [Scheduler] runs the two loops as goroutines under one context. Cancelling
// the context or calling Stop tears both down, and no observer is invoked
// after Stop returns.
package loading
