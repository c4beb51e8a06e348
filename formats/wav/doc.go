// SPDX-License-Identifier: EPL-2.0

// Package wav adapts PCM WAV containers to pcm.Buffers.
//
// It is a thin layer over github.com/go-audio/wav: the library parses and
// emits all RIFF/fmt/data chunk details, and this package only moves the
// sample payload in and out of the module's buffer type.
//
// # Reading
//
//	buf, err := wav.ReadFile("kick L.wav")
//	if errors.Is(err, wav.ErrNotWavFile) {
//	    // not a WAV container
//	}
//
// Decode accepts any io.ReadSeeker. All four PCM depths the module supports
// (8, 16, 24 and 32-bit) pass through; other depths fail with
// pcm.ErrUnsupportedDepth.
//
// # Writing
//
//	err := wav.WriteFile("kick_stereo.wav", buf)
//
// The output carries the buffer's own sample rate, bit depth and channel
// count. Encode needs an io.WriteSeeker because the RIFF sizes are patched
// after the payload is written.
package wav
