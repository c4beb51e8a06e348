// SPDX-License-Identifier: EPL-2.0

// Package dsp implements the sample-domain transforms of the module: peak
// normalization, trailing-silence trimming, zero-crossing location, stereo
// joining and tempo-based slicing.
//
// Every transform is a pure function over a pcm.Buffer: the input is never
// mutated, the output is freshly allocated, and no state survives a call.
// Two invocations on independent buffers never interfere, so callers may
// process many files in parallel without coordination from this package.
//
// # Peak Normalization
//
// Normalize scans all channels for the absolute peak and applies one global
// gain so the peak lands on a target level in dB relative to full scale:
//
//	res, err := dsp.Normalize(buf, -0.1)
//	if res.Silent {
//	    // input was pure silence; output is an identical copy
//	}
//
// Rescaled samples saturate at the depth's representable range rather than
// wrapping. A silent input is a defined outcome carried in the result, not
// an error.
//
// # Silence Trimming
//
// Trim walks a window backward from the end of each channel and cuts after
// the last window that exceeds a threshold, plus a configurable tail:
//
//	res, err := dsp.Trim(buf, dsp.TrimOptions{
//	    ThresholdDB: -60,
//	    MinTailSec:  0.5,
//	})
//	fmt.Printf("removed %.1f%%", res.Reduction*100)
//
// For multi-channel input the per-channel cut points are reconciled to the
// latest one, and the final cut is snapped backward to a zero crossing of
// channel 0 to avoid a click at the boundary.
//
// # Zero Crossings
//
// FindZeroCrossing is the shared search primitive. It operates on
// zero-centered samples, so unsigned 8-bit callers must remove the zero
// point first; pcm.Buffer.CenteredChannel produces the right view.
//
// # Joining and Slicing
//
// JoinStereo interleaves a mono pair into one stereo buffer, and Slice cuts
// a buffer into equal bar-length segments at a given tempo. Both preserve
// the input's sample rate and bit depth.
package dsp
