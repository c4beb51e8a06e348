// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	goaudio "github.com/go-audio/audio"
)

// Buffer is a fully materialized PCM stream: interleaved samples widened to
// int, in frame-major order (sample i of channel c lives at i*Channels+c).
// Samples hold the raw container values for the depth, so 8-bit data is
// stored as 0..255 and 24-bit data as sign-extended signed values.
type Buffer struct {
	Depth      Depth
	Channels   int
	SampleRate int
	Data       []int
}

// Frames is the number of complete frames in the buffer.
func (b *Buffer) Frames() int {
	if b == nil || b.Channels <= 0 {
		return 0
	}
	return len(b.Data) / b.Channels
}

// Duration of the buffer in seconds.
func (b *Buffer) Duration() float64 {
	if b == nil || b.SampleRate <= 0 {
		return 0
	}
	return float64(b.Frames()) / float64(b.SampleRate)
}

// Clone returns a deep copy. Transforms in this module never mutate their
// input, so Clone is the only way two buffers ever share a shape.
func (b *Buffer) Clone() *Buffer {
	out := &Buffer{
		Depth:      b.Depth,
		Channels:   b.Channels,
		SampleRate: b.SampleRate,
		Data:       make([]int, len(b.Data)),
	}
	copy(out.Data, b.Data)
	return out
}

// Channel extracts one channel as a new slice of raw sample values.
func (b *Buffer) Channel(ch int) []int {
	frames := b.Frames()
	out := make([]int, frames)
	for i := 0; i < frames; i++ {
		out[i] = b.Data[i*b.Channels+ch]
	}
	return out
}

// CenteredChannel extracts one channel with the depth's zero point removed,
// so the result is zero-centered regardless of depth. The trimmer and the
// zero-crossing search operate on this view.
func (b *Buffer) CenteredChannel(ch int) []int {
	zero := b.Depth.ZeroPoint()
	frames := b.Frames()
	out := make([]int, frames)
	for i := 0; i < frames; i++ {
		out[i] = b.Data[i*b.Channels+ch] - zero
	}
	return out
}

// AsIntBuffer wraps the buffer in a go-audio IntBuffer sharing the same
// backing slice, for handing to go-audio encoders.
func (b *Buffer) AsIntBuffer() *goaudio.IntBuffer {
	return &goaudio.IntBuffer{
		Data: b.Data,
		Format: &goaudio.Format{
			NumChannels: b.Channels,
			SampleRate:  b.SampleRate,
		},
		SourceBitDepth: int(b.Depth),
	}
}

// FromIntBuffer adopts a go-audio IntBuffer produced by a container decoder.
// The IntBuffer's data slice is taken over, not copied.
func FromIntBuffer(ib *goaudio.IntBuffer, depth Depth) (*Buffer, error) {
	if !depth.Valid() {
		return nil, ErrUnsupportedDepth
	}
	channels := 1
	sampleRate := 0
	if ib.Format != nil {
		if ib.Format.NumChannels > 0 {
			channels = ib.Format.NumChannels
		}
		sampleRate = ib.Format.SampleRate
	}
	return &Buffer{
		Depth:      depth,
		Channels:   channels,
		SampleRate: sampleRate,
		Data:       ib.Data,
	}, nil
}
