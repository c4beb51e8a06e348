// SPDX-License-Identifier: EPL-2.0

package dsp

import (
	"fmt"

	"github.com/ik5/sampletrim/pcm"
)

// Defaults applied by Trim when the corresponding TrimOptions field is zero.
const (
	DefaultThresholdDB    = -60.0
	DefaultMinTailSec     = 0.5
	DefaultWindowSize     = 1024
	DefaultCrossingWindow = 1000
)

// TrimOptions configures trailing-silence removal. The zero value selects
// the defaults above, except MinTailSec where an explicit 0 means no tail.
type TrimOptions struct {
	// ThresholdDB is the level below which a window counts as silence,
	// in dB relative to full scale. 0 selects DefaultThresholdDB.
	ThresholdDB float64
	// MinTailSec is how much audio to keep past the last loud window.
	MinTailSec float64
	// WindowSize is the silence-scan window in samples.
	WindowSize int
	// CrossingWindow bounds the zero-crossing snap search in samples.
	CrossingWindow int
}

func (o TrimOptions) withDefaults() TrimOptions {
	if o.ThresholdDB == 0 {
		o.ThresholdDB = DefaultThresholdDB
	}
	if o.MinTailSec < 0 {
		o.MinTailSec = 0
	}
	if o.WindowSize <= 0 {
		o.WindowSize = DefaultWindowSize
	}
	if o.CrossingWindow <= 0 {
		o.CrossingWindow = DefaultCrossingWindow
	}
	return o
}

// TrimResult is the outcome of a trailing-silence trim. Buffer is a new,
// truncated copy; the input buffer is left intact so callers can still
// report against it.
type TrimResult struct {
	Buffer *pcm.Buffer
	// CutFrame is the chosen cut point, which equals Buffer's frame count.
	CutFrame int
	// OriginalFrames is the input's frame count.
	OriginalFrames int
	// Reduction is the removed fraction of frames, in [0, 1]. It is 0 for
	// empty input.
	Reduction float64
}

// Trim removes trailing audio below the threshold, keeping a configured
// tail and landing the cut on a zero crossing so the boundary does not
// click.
//
// Each channel is scanned independently: a window slides backward from the
// end and the first window whose maximum level exceeds the threshold marks
// that channel's end of meaningful signal. The latest end point across all
// channels wins, so no channel ever loses audible content. The reconciled
// cut is then snapped backward to the nearest zero crossing of channel 0
// and all channels are truncated to the same frame count, preserving
// interleaving. A buffer that is entirely below the threshold is returned
// untouched rather than collapsed to nothing.
func Trim(buf *pcm.Buffer, opts TrimOptions) (TrimResult, error) {
	if !buf.Depth.Valid() {
		return TrimResult{}, fmt.Errorf("trim: %w", pcm.ErrUnsupportedDepth)
	}

	opts = opts.withDefaults()
	frames := buf.Frames()
	res := TrimResult{OriginalFrames: frames}

	if frames == 0 {
		res.Buffer = buf.Clone()
		return res, nil
	}

	maxMag := buf.Depth.MaxMagnitude()
	minTail := int(opts.MinTailSec * float64(buf.SampleRate))

	var first []int
	endPoint := 0
	for ch := 0; ch < buf.Channels; ch++ {
		centered := buf.CenteredChannel(ch)
		if ch == 0 {
			first = centered
		}
		ep := findEndPoint(centered, maxMag, opts.ThresholdDB, opts.WindowSize, minTail)
		if ep > endPoint {
			endPoint = ep
		}
	}

	cut := FindZeroCrossing(first, endPoint, Backward, opts.CrossingWindow)
	if cut > frames {
		cut = frames
	}

	out := &pcm.Buffer{
		Depth:      buf.Depth,
		Channels:   buf.Channels,
		SampleRate: buf.SampleRate,
		Data:       make([]int, cut*buf.Channels),
	}
	copy(out.Data, buf.Data[:cut*buf.Channels])

	res.Buffer = out
	res.CutFrame = cut
	res.Reduction = float64(frames-cut) / float64(frames)
	return res, nil
}

// findEndPoint scans backward over zero-centered samples for the last
// window whose maximum level exceeds thresholdDB, and returns that window's
// end extended by minTail, clamped to the channel length. When every window
// is below the threshold the full length is returned, so all-silence input
// is never trimmed.
func findEndPoint(samples []int, maxMag int, thresholdDB float64, windowSize, minTail int) int {
	for i := len(samples) - windowSize; i >= 1; i-- {
		end := i + windowSize
		if end > len(samples) {
			end = len(samples)
		}

		peak := 0
		for _, s := range samples[i:end] {
			if s < 0 {
				s = -s
			}
			if s > peak {
				peak = s
			}
		}

		// Max commutes with the monotonic dB conversion, so one level
		// computation per window is enough.
		if LevelDB(peak, maxMag) > thresholdDB {
			ep := i + windowSize + minTail
			if ep > len(samples) {
				ep = len(samples)
			}
			return ep
		}
	}

	return len(samples)
}
