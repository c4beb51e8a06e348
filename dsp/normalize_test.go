// SPDX-License-Identifier: EPL-2.0

package dsp

import (
	"errors"
	"math"
	"testing"

	"github.com/ik5/sampletrim/internal/audiotest"
	"github.com/ik5/sampletrim/pcm"
)

func peakOf(buf *pcm.Buffer) int {
	zero := buf.Depth.ZeroPoint()
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
	return peak
}

func TestNormalize_HitsTarget(t *testing.T) {
	t.Parallel()

	buf := audiotest.Sine(pcm.Depth16, 44100, 1, 4410, 440, 0.25)
	res, err := Normalize(buf, -6.0)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}

	wantPeak := math.Pow(10, -6.0/20) * 32767
	gotPeak := float64(peakOf(res.Buffer))
	gotDB := 20 * math.Log10(gotPeak/32767)
	if math.Abs(gotDB-(-6.0)) > 0.01 {
		t.Errorf("output peak = %.0f (%.3f dB), want %.0f (-6 dB)", gotPeak, gotDB, wantPeak)
	}
	if res.Silent {
		t.Error("Silent = true, want false")
	}
}

func TestNormalize_IdempotentAtTarget(t *testing.T) {
	t.Parallel()

	buf := audiotest.Sine(pcm.Depth16, 44100, 2, 8820, 220, 0.7)

	first, err := Normalize(buf, -3.0)
	if err != nil {
		t.Fatalf("first Normalize() error = %v", err)
	}
	second, err := Normalize(first.Buffer, -3.0)
	if err != nil {
		t.Fatalf("second Normalize() error = %v", err)
	}

	db1 := 20 * math.Log10(float64(peakOf(first.Buffer))/32767)
	db2 := 20 * math.Log10(float64(peakOf(second.Buffer))/32767)
	if math.Abs(db1-db2) >= 0.01 {
		t.Errorf("peak drifted from %.4f dB to %.4f dB, want < 0.01 dB drift", db1, db2)
	}
}

func TestNormalize_ClampSaturates(t *testing.T) {
	t.Parallel()

	// A gain above 1 has to saturate at the representable range, never
	// wrap.
	buf := audiotest.Sine(pcm.Depth16, 44100, 1, 4410, 440, 0.9)
	res, err := Normalize(buf, 0)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}

	maxMag := pcm.Depth16.MaxMagnitude()
	for i, s := range res.Buffer.Data {
		if s > maxMag || s < -maxMag {
			t.Fatalf("Data[%d] = %d outside [-%d, %d]", i, s, maxMag, maxMag)
		}
	}
}

func TestNormalize_8BitClampFloor(t *testing.T) {
	t.Parallel()

	// Unsigned samples must never scale below the container floor of 0.
	buf := &pcm.Buffer{
		Depth:      pcm.Depth8,
		Channels:   1,
		SampleRate: 8000,
		Data:       []int{0, 64, 128, 192, 255},
	}
	res, err := Normalize(buf, 0)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}

	for i, s := range res.Buffer.Data {
		if s < 0 || s > 255 {
			t.Fatalf("Data[%d] = %d outside [0, 255]", i, s)
		}
	}
}

func TestNormalize_SilencePreserved(t *testing.T) {
	t.Parallel()

	buf := audiotest.Silent(pcm.Depth16, 44100, 2, 1000)
	res, err := Normalize(buf, -0.1)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}

	if !res.Silent {
		t.Error("Silent = false, want true")
	}
	if res.Gain != 1.0 {
		t.Errorf("Gain = %v, want 1.0", res.Gain)
	}
	for i, s := range res.Buffer.Data {
		if s != 0 {
			t.Fatalf("Data[%d] = %d, want 0", i, s)
		}
	}
}

func TestNormalize_PreservesShape(t *testing.T) {
	t.Parallel()

	buf := audiotest.Sine(pcm.Depth24, 48000, 2, 4800, 1000, 0.5)
	res, err := Normalize(buf, -1.0)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}

	out := res.Buffer
	if out.Depth != buf.Depth || out.Channels != buf.Channels || out.SampleRate != buf.SampleRate {
		t.Errorf("output format %v/%d/%d, want %v/%d/%d",
			out.Depth, out.Channels, out.SampleRate, buf.Depth, buf.Channels, buf.SampleRate)
	}
	if out.Frames() != buf.Frames() {
		t.Errorf("output frames = %d, want %d", out.Frames(), buf.Frames())
	}
}

func TestNormalize_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	buf := audiotest.Sine(pcm.Depth16, 44100, 1, 1000, 440, 0.3)
	before := buf.Clone()

	if _, err := Normalize(buf, -0.1); err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}

	for i := range before.Data {
		if buf.Data[i] != before.Data[i] {
			t.Fatalf("input mutated at Data[%d]", i)
		}
	}
}

func TestNormalize_UnsupportedDepth(t *testing.T) {
	t.Parallel()

	buf := &pcm.Buffer{Depth: pcm.Depth(12), Channels: 1, Data: []int{1}}
	_, err := Normalize(buf, -0.1)
	if !errors.Is(err, pcm.ErrUnsupportedDepth) {
		t.Errorf("Normalize() error = %v, want pcm.ErrUnsupportedDepth", err)
	}
}

func BenchmarkNormalize_Stereo16(b *testing.B) {
	buf := audiotest.Sine(pcm.Depth16, 44100, 2, 44100, 440, 0.5)
	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_, _ = Normalize(buf, -0.1)
	}
}
