// Package anim converts render times into the build-in offset that
// drives title slides.
package anim

import "github.com/tinne26/voxtitle/ease"

// Durations and curvatures at or below this value disable the
// animation and the easing, respectively.
const Epsilon = 0.01

// Returns the build-in offset for the given render time, in [0, 1].
// An offset of 1 means the title is fully hidden, and 0 that it's at
// rest. The offset decays from 1 at time 0 to 0 at the given duration,
// eased by [ease.Solve]() unless the curvature is negligible. Negative
// render times behave like time 0.
func Offset(renderTime, duration, curvature float64) float64 {
	if !(duration > Epsilon) { return 0 }
	remaining := duration - renderTime
	if !(remaining > 0) { return 0 } // also NaN times
	progress := remaining/duration
	if progress > 1 { progress = 1 }
	if curvature > Epsilon {
		progress = ease.Solve(progress, curvature)
	}
	return progress
}

// Returns how much of the title has been revealed, which is
// simply 1 − [Offset]().
func Progress(renderTime, duration, curvature float64) float64 {
	return 1 - Offset(renderTime, duration, curvature)
}
