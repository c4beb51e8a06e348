package dsp

import (
	"github.com/ik5/sampletrim/pcm"
)

// BeatsPerBar assumed by Slice. The tool targets 4/4 sample material.
const BeatsPerBar = 4

// Slice cuts the buffer into consecutive segments of barsPerSlice bars at
// the given tempo. Every segment is a new buffer with the input's format;
// the final segment holds whatever frames remain and may be shorter. An
// empty input yields no segments.
func Slice(buf *pcm.Buffer, bpm, barsPerSlice int) ([]*pcm.Buffer, error) {
	if bpm <= 0 || barsPerSlice <= 0 {
		return nil, ErrInvalidTempo
	}

	secondsPerSlice := 60.0 / float64(bpm) * BeatsPerBar * float64(barsPerSlice)
	framesPerSlice := int(secondsPerSlice * float64(buf.SampleRate))
	if framesPerSlice <= 0 {
		return nil, ErrInvalidTempo
	}

	frames := buf.Frames()
	var segments []*pcm.Buffer
	for start := 0; start < frames; start += framesPerSlice {
		end := start + framesPerSlice
		if end > frames {
			end = frames
		}

		seg := &pcm.Buffer{
			Depth:      buf.Depth,
			Channels:   buf.Channels,
			SampleRate: buf.SampleRate,
			Data:       make([]int, (end-start)*buf.Channels),
		}
		copy(seg.Data, buf.Data[start*buf.Channels:end*buf.Channels])
		segments = append(segments, seg)
	}

	return segments, nil
}
