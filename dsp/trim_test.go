// SPDX-License-Identifier: EPL-2.0

package dsp

import (
	"errors"
	"math"
	"testing"

	"github.com/ik5/sampletrim/internal/audiotest"
	"github.com/ik5/sampletrim/pcm"
)

// toneThenSilence builds a buffer where each channel carries a sine up to
// its own boundary (in frames) and silence after it.
func toneThenSilence(depth pcm.Depth, sampleRate, frames int, boundaries []int) *pcm.Buffer {
	return audiotest.Generate(depth, sampleRate, len(boundaries), frames, func(frame, channel int) float64 {
		if frame >= boundaries[channel] {
			return 0
		}
		t := float64(frame) / float64(sampleRate)
		return 0.8 * math.Sin(2*math.Pi*440*t)
	})
}

func TestTrim_RemovesTrailingSilence(t *testing.T) {
	t.Parallel()

	// 2 seconds mono, signal only in the first second.
	rate := 44100
	buf := toneThenSilence(pcm.Depth16, rate, 2*rate, []int{rate})

	res, err := Trim(buf, TrimOptions{ThresholdDB: -60, MinTailSec: 0.1})
	if err != nil {
		t.Fatalf("Trim() error = %v", err)
	}

	if res.CutFrame > buf.Frames() {
		t.Fatalf("CutFrame = %d > original %d", res.CutFrame, buf.Frames())
	}
	// Cut lands past the signal plus tail, but well before the full
	// two seconds.
	minWant := rate
	maxWant := rate + int(0.2*float64(rate)) + DefaultWindowSize
	if res.CutFrame < minWant || res.CutFrame > maxWant {
		t.Errorf("CutFrame = %d, want within [%d, %d]", res.CutFrame, minWant, maxWant)
	}
	if res.Reduction <= 0.4 {
		t.Errorf("Reduction = %v, want > 0.4", res.Reduction)
	}
}

func TestTrim_Monotonic(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		buf  *pcm.Buffer
	}{
		{"tone then silence", toneThenSilence(pcm.Depth16, 8000, 16000, []int{8000})},
		{"all tone", audiotest.Sine(pcm.Depth16, 8000, 1, 16000, 440, 0.9)},
		{"all silence", audiotest.Silent(pcm.Depth16, 8000, 1, 16000)},
		{"short", audiotest.Sine(pcm.Depth16, 8000, 2, 100, 440, 0.9)},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res, err := Trim(tt.buf, TrimOptions{})
			if err != nil {
				t.Fatalf("Trim() error = %v", err)
			}
			if res.Buffer.Frames() > tt.buf.Frames() {
				t.Errorf("trimmed frames = %d > original %d", res.Buffer.Frames(), tt.buf.Frames())
			}
			if res.CutFrame != res.Buffer.Frames() {
				t.Errorf("CutFrame = %d, want %d (buffer frames)", res.CutFrame, res.Buffer.Frames())
			}
		})
	}
}

func TestTrim_NoOpOnLoudContent(t *testing.T) {
	t.Parallel()

	// One second of constant full-scale tone never falls below -60 dB and
	// holds no zero crossing, so nothing may be removed.
	buf := audiotest.Constant(pcm.Depth16, 44100, 1, 44100, 1.0)

	res, err := Trim(buf, TrimOptions{ThresholdDB: -60, MinTailSec: 0.5})
	if err != nil {
		t.Fatalf("Trim() error = %v", err)
	}

	if res.Buffer.Frames() != buf.Frames() {
		t.Errorf("trimmed frames = %d, want %d (untouched)", res.Buffer.Frames(), buf.Frames())
	}
	if res.Reduction != 0 {
		t.Errorf("Reduction = %v, want 0", res.Reduction)
	}
}

func TestTrim_ReconcilesToLatestChannel(t *testing.T) {
	t.Parallel()

	// Stereo, 2 seconds: channel 0 goes silent at 1.0s, channel 1 at
	// 1.5s. The cut must honor channel 1's boundary.
	rate := 44100
	ch1End := rate + rate/2
	buf := toneThenSilence(pcm.Depth16, rate, 2*rate, []int{rate, ch1End})

	res, err := Trim(buf, TrimOptions{ThresholdDB: -60, MinTailSec: 0, WindowSize: 1024})
	if err != nil {
		t.Fatalf("Trim() error = %v", err)
	}

	// The snap searches channel 0, which is silent past 1.0s, so the cut
	// stays at the reconciled end point just past channel 1's boundary.
	if res.CutFrame < ch1End {
		t.Errorf("CutFrame = %d, cut before channel 1's boundary %d", res.CutFrame, ch1End)
	}
	if res.CutFrame > ch1End+2*1024 {
		t.Errorf("CutFrame = %d, want near %d", res.CutFrame, ch1End)
	}
}

func TestTrim_SilenceLeftUntouched(t *testing.T) {
	t.Parallel()

	buf := audiotest.Silent(pcm.Depth16, 44100, 2, 44100)
	res, err := Trim(buf, TrimOptions{})
	if err != nil {
		t.Fatalf("Trim() error = %v", err)
	}

	if res.Buffer.Frames() != buf.Frames() {
		t.Errorf("trimmed frames = %d, want %d (silence-only input is kept)", res.Buffer.Frames(), buf.Frames())
	}
}

func TestTrim_EmptyInput(t *testing.T) {
	t.Parallel()

	buf := &pcm.Buffer{Depth: pcm.Depth16, Channels: 2, SampleRate: 44100}
	res, err := Trim(buf, TrimOptions{})
	if err != nil {
		t.Fatalf("Trim() error = %v", err)
	}

	if res.Buffer.Frames() != 0 {
		t.Errorf("trimmed frames = %d, want 0", res.Buffer.Frames())
	}
	if res.Reduction != 0 {
		t.Errorf("Reduction = %v, want 0", res.Reduction)
	}
}

func TestTrim_WindowLargerThanBuffer(t *testing.T) {
	t.Parallel()

	buf := audiotest.Sine(pcm.Depth16, 8000, 1, 100, 440, 0.9)
	res, err := Trim(buf, TrimOptions{WindowSize: 100000})
	if err != nil {
		t.Fatalf("Trim() error = %v", err)
	}

	if res.Buffer.Frames() != buf.Frames() {
		t.Errorf("trimmed frames = %d, want %d (oversize window trims nothing)", res.Buffer.Frames(), buf.Frames())
	}
}

func TestTrim_PreservesInterleaving(t *testing.T) {
	t.Parallel()

	rate := 8000
	buf := toneThenSilence(pcm.Depth16, rate, 2*rate, []int{rate, rate})

	res, err := Trim(buf, TrimOptions{MinTailSec: 0})
	if err != nil {
		t.Fatalf("Trim() error = %v", err)
	}

	// The trimmed prefix must be frame-for-frame identical to the input.
	for i, s := range res.Buffer.Data {
		if s != buf.Data[i] {
			t.Fatalf("Data[%d] = %d, want %d", i, s, buf.Data[i])
		}
	}
	if len(res.Buffer.Data)%res.Buffer.Channels != 0 {
		t.Errorf("data length %d not a multiple of %d channels", len(res.Buffer.Data), res.Buffer.Channels)
	}
}

func TestTrim_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	buf := toneThenSilence(pcm.Depth16, 8000, 16000, []int{8000})
	before := buf.Clone()

	if _, err := Trim(buf, TrimOptions{}); err != nil {
		t.Fatalf("Trim() error = %v", err)
	}

	if buf.Frames() != before.Frames() {
		t.Fatalf("input frame count changed: %d, want %d", buf.Frames(), before.Frames())
	}
	for i := range before.Data {
		if buf.Data[i] != before.Data[i] {
			t.Fatalf("input mutated at Data[%d]", i)
		}
	}
}

func TestTrim_UnsupportedDepth(t *testing.T) {
	t.Parallel()

	buf := &pcm.Buffer{Depth: pcm.Depth(48), Channels: 1, Data: []int{1, 2}}
	_, err := Trim(buf, TrimOptions{})
	if !errors.Is(err, pcm.ErrUnsupportedDepth) {
		t.Errorf("Trim() error = %v, want pcm.ErrUnsupportedDepth", err)
	}
}

func BenchmarkTrim_Stereo16(b *testing.B) {
	rate := 44100
	buf := toneThenSilence(pcm.Depth16, rate, 2*rate, []int{rate, rate})
	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_, _ = Trim(buf, TrimOptions{})
	}
}
