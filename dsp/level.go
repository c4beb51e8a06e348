package dsp

import "math"

// LevelDB converts a zero-centered sample magnitude to dB relative to full
// scale for the given maximum magnitude. A zero magnitude has no level and
// reports -Inf, so silence never counts as loud.
func LevelDB(magnitude, maxMagnitude int) float64 {
	if magnitude < 0 {
		magnitude = -magnitude
	}
	if magnitude == 0 || maxMagnitude <= 0 {
		return math.Inf(-1)
	}
	return 20 * math.Log10(float64(magnitude)/float64(maxMagnitude))
}
