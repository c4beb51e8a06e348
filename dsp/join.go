package dsp

import (
	"github.com/ik5/sampletrim/pcm"
)

// JoinStereo interleaves two mono buffers into a single stereo buffer, left
// on channel 0 and right on channel 1. Both inputs must be mono and share
// sample rate and bit depth. When the inputs differ in length the result is
// truncated to the shorter one.
func JoinStereo(left, right *pcm.Buffer) (*pcm.Buffer, error) {
	if left.Channels != 1 || right.Channels != 1 {
		return nil, ErrNotMono
	}
	if left.SampleRate != right.SampleRate || left.Depth != right.Depth {
		return nil, ErrFormatMismatch
	}

	frames := left.Frames()
	if r := right.Frames(); r < frames {
		frames = r
	}

	out := &pcm.Buffer{
		Depth:      left.Depth,
		Channels:   2,
		SampleRate: left.SampleRate,
		Data:       make([]int, frames*2),
	}
	for i := 0; i < frames; i++ {
		out.Data[2*i] = left.Data[i]
		out.Data[2*i+1] = right.Data[i]
	}

	return out, nil
}
