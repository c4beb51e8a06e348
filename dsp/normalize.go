// SPDX-License-Identifier: EPL-2.0

package dsp

import (
	"fmt"
	"math"

	"github.com/ik5/sampletrim/pcm"
)

// NormalizeResult is the outcome of a peak normalization. Buffer always has
// the same frame count, channel count and depth as the input.
type NormalizeResult struct {
	Buffer *pcm.Buffer
	// Peak is the detected input peak magnitude relative to the zero point.
	Peak int
	// Gain is the linear scale that was applied.
	Gain float64
	// Silent reports that the input peak was zero. The output is then a
	// byte-identical copy of the input; this is a warning, not an error.
	Silent bool
}

// Normalize rescales the buffer so its absolute peak hits targetPeakDB
// relative to full scale. The peak is pooled over all channels and a single
// global gain is applied, so inter-channel balance is preserved. The input
// is never modified.
func Normalize(buf *pcm.Buffer, targetPeakDB float64) (NormalizeResult, error) {
	if !buf.Depth.Valid() {
		return NormalizeResult{}, fmt.Errorf("normalize: %w", pcm.ErrUnsupportedDepth)
	}

	zero := buf.Depth.ZeroPoint()
	maxMag := buf.Depth.MaxMagnitude()

	peak := 0
	for _, s := range buf.Data {
		m := s - zero
		if m < 0 {
			m = -m
		}
		if m > peak {
			peak = m
		}
	}

	res := NormalizeResult{Peak: peak, Gain: 1.0}
	if peak == 0 {
		res.Silent = true
		res.Buffer = buf.Clone()
		return res, nil
	}

	targetLinear := math.Pow(10, targetPeakDB/20) * float64(maxMag)
	res.Gain = targetLinear / float64(peak)

	lower := -maxMag
	if zero != 0 {
		// Unsigned formats saturate at the container floor, not at a
		// negative magnitude.
		lower = 0
	}
	upper := maxMag

	out := &pcm.Buffer{
		Depth:      buf.Depth,
		Channels:   buf.Channels,
		SampleRate: buf.SampleRate,
		Data:       make([]int, len(buf.Data)),
	}
	for i, s := range buf.Data {
		scaled := int(float64(s-zero)*res.Gain + float64(zero))
		if scaled > upper {
			scaled = upper
		} else if scaled < lower {
			scaled = lower
		}
		out.Data[i] = scaled
	}
	res.Buffer = out

	return res, nil
}
