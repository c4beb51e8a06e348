// SPDX-License-Identifier: EPL-2.0

// Package pcm provides the sample-level data model for uncompressed audio.
//
// A Buffer holds a fully materialized PCM stream as interleaved int samples
// together with its declared Depth, channel count and sample rate. Decode
// and Encode convert between packed little-endian sample bytes and that
// uniform integer view.
//
// # Bit Depths
//
// Four depths are supported, each with its own zero point and maximum
// magnitude:
//
//	Depth8   unsigned, 0..255, zero point 128
//	Depth16  signed, max magnitude 32767
//	Depth24  signed, packed 3 bytes, max magnitude 8388607
//	Depth32  signed, max magnitude 2147483647
//
// The Depth methods ZeroPoint and MaxMagnitude are the single source of
// these constants for the whole module.
//
// # 24-bit Packing
//
// 24-bit PCM is not byte-aligned to the int the rest of the module works
// with. Decode sign-extends each 3-byte little-endian group into a full
// signed integer; Encode truncates the two's-complement representation back
// to the low three bytes. Trailing bytes that do not form a complete group
// are dropped rather than zero-padded:
//
//	buf, _ := pcm.Decode(data, pcm.Depth24, 2, 44100)
//	raw, _ := pcm.Encode(buf)
//
// # go-audio Interoperability
//
// Buffers convert to and from github.com/go-audio/audio IntBuffers, which
// the container adapters in formats/ use:
//
//	ib := buf.AsIntBuffer()
//	buf, err := pcm.FromIntBuffer(ib, pcm.Depth16)
//
// # Errors
//
// A depth outside {8, 16, 24, 32} fails with ErrUnsupportedDepth. All other
// inputs, including empty byte slices, decode to defined buffers.
package pcm
