// SPDX-License-Identifier: EPL-2.0

package pcm

import "fmt"

// Depth is the declared bit depth of a PCM stream. The zero offset and the
// maximum representable magnitude of every supported depth are derived here
// and nowhere else; the codec, the normalizer and the trimmer all go through
// these methods so the constants can never drift apart.
type Depth int

const (
	Depth8  Depth = 8  // unsigned, samples in 0..255 with 128 as zero
	Depth16 Depth = 16 // signed little-endian
	Depth24 Depth = 24 // signed little-endian, packed 3 bytes per sample
	Depth32 Depth = 32 // signed little-endian
)

// ParseDepth maps a bits-per-sample value to a Depth.
// Anything outside {8, 16, 24, 32} fails with ErrUnsupportedDepth.
func ParseDepth(bits int) (Depth, error) {
	d := Depth(bits)
	if !d.Valid() {
		return 0, fmt.Errorf("%d bits per sample: %w", bits, ErrUnsupportedDepth)
	}
	return d, nil
}

func (d Depth) Valid() bool {
	switch d {
	case Depth8, Depth16, Depth24, Depth32:
		return true
	}
	return false
}

// Bytes is the packed size of one sample on the wire.
func (d Depth) Bytes() int { return int(d) / 8 }

// ZeroPoint is the sample value that represents silence. 8-bit PCM is
// unsigned with silence at 128; every other depth is signed with silence
// at 0.
func (d Depth) ZeroPoint() int {
	if d == Depth8 {
		return 128
	}
	return 0
}

// MaxMagnitude is the largest representable distance from the zero point.
func (d Depth) MaxMagnitude() int {
	switch d {
	case Depth8:
		return 255
	case Depth16:
		return 32767
	case Depth24:
		return 8388607
	case Depth32:
		return 2147483647
	}
	return 0
}

func (d Depth) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Depth(%d)", int(d))
	}
	return fmt.Sprintf("%d-bit", int(d))
}
