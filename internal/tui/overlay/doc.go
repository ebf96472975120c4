// Package overlay implements the animated loading overlay shown while an
// application starts.
//
// The overlay is a Bubble Tea component. Once mounted it runs two tick
// chains: a rotation chain that cycles the promotional content and a frame
// chain that eases the progress value from 0 to 100. When progress reaches
// 100 a single trailing tick marks the overlay complete and emits a
// CompletedMsg carrying the overlay's ID.
//
// Every tick carries the overlay ID and a per-chain tag. Unmount and
// completion bump the tags, so ticks still in flight are dropped without
// touching state.
package overlay
