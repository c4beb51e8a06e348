// SPDX-License-Identifier: EPL-2.0

package dsp

// Direction selects which way a zero-crossing search walks.
type Direction int

const (
	Forward Direction = iota
	Backward
)

// FindZeroCrossing searches from position for the nearest adjacent sample
// pair that straddles or touches zero, walking in the given direction. The
// samples must be zero-centered; callers with unsigned 8-bit data pass the
// zero-point-removed view, never the raw values.
//
// At most window adjacent pairs are examined, and the search never leaves
// the slice: position is clamped into [0, len(samples)-1] before walking.
// The returned index is the sample of the crossing pair closest to the
// starting position. When no crossing exists within the window the original
// position is returned unchanged, bounding the scan cost instead of failing.
func FindZeroCrossing(samples []int, position int, dir Direction, window int) int {
	if len(samples) < 2 || window <= 0 {
		return position
	}

	pos := position
	if pos < 0 {
		pos = 0
	}
	if pos > len(samples)-1 {
		pos = len(samples) - 1
	}

	switch dir {
	case Forward:
		last := pos + window
		if last > len(samples)-1 {
			last = len(samples) - 1
		}
		for i := pos; i < last; i++ {
			if crossesZero(samples[i], samples[i+1]) {
				return i
			}
		}
	case Backward:
		first := pos - window
		if first < 0 {
			first = 0
		}
		for i := pos; i > first; i-- {
			if crossesZero(samples[i], samples[i-1]) {
				return i
			}
		}
	}

	return position
}

// crossesZero reports whether the pair (a, b) straddles or touches zero.
// The comparisons are inclusive so an exact zero sample counts as a
// crossing with its neighbor.
func crossesZero(a, b int) bool {
	return (a >= 0 && b < 0) || (a <= 0 && b > 0)
}
