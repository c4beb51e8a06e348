// SPDX-License-Identifier: EPL-2.0

// Package audiotest generates synthetic pcm.Buffers for tests.
package audiotest

import (
	"math"

	"github.com/ik5/sampletrim/pcm"
)

// Generate builds an interleaved buffer from a waveform function returning
// values in [-1, 1]. The values are scaled to the depth's magnitude and
// shifted onto its zero point, so generated data is always representable.
func Generate(depth pcm.Depth, sampleRate, channels, frames int, waveform func(frame, channel int) float64) *pcm.Buffer {
	zero := depth.ZeroPoint()
	maxMag := depth.MaxMagnitude()

	buf := &pcm.Buffer{
		Depth:      depth,
		Channels:   channels,
		SampleRate: sampleRate,
		Data:       make([]int, frames*channels),
	}
	for f := 0; f < frames; f++ {
		for ch := 0; ch < channels; ch++ {
			v := waveform(f, ch)
			if v > 1 {
				v = 1
			} else if v < -1 {
				v = -1
			}
			buf.Data[f*channels+ch] = int(v*float64(maxMag)) + zero
		}
	}
	return buf
}

// Silent builds an all-silence buffer.
func Silent(depth pcm.Depth, sampleRate, channels, frames int) *pcm.Buffer {
	return Generate(depth, sampleRate, channels, frames, func(frame, channel int) float64 {
		return 0
	})
}

// Sine builds a sine wave of the given frequency and amplitude in [0, 1] on
// every channel.
func Sine(depth pcm.Depth, sampleRate, channels, frames int, frequency, amplitude float64) *pcm.Buffer {
	return Generate(depth, sampleRate, channels, frames, func(frame, channel int) float64 {
		t := float64(frame) / float64(sampleRate)
		return amplitude * math.Sin(2*math.Pi*frequency*t)
	})
}

// Constant builds a buffer holding the same value, in [-1, 1], on every
// channel.
func Constant(depth pcm.Depth, sampleRate, channels, frames int, value float64) *pcm.Buffer {
	return Generate(depth, sampleRate, channels, frames, func(frame, channel int) float64 {
		return value
	})
}
