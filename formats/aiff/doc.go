// SPDX-License-Identifier: EPL-2.0

// Package aiff adapts PCM AIFF containers to pcm.Buffers, mirroring the wav
// package for the AIFF side of the sample library.
//
// Container chunks and the big-endian sample order are handled by
// github.com/go-audio/aiff. 16, 24 and 32-bit files pass through; 8-bit
// AIFF stores signed samples, which clashes with the module's unsigned
// 8-bit convention, and is rejected with Err8BitNotSupported.
//
//	buf, err := aiff.ReadFile("snare.aif")
//	...
//	err = aiff.WriteFile("snare_trimmed.aif", res.Buffer)
package aiff
