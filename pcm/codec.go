package pcm

import (
	"encoding/binary"
	"fmt"
)

// Decode reinterprets little-endian packed sample bytes as a Buffer of
// int-widened samples. For 8, 16 and 32-bit data this is a direct
// reinterpretation; 24-bit groups are sign-extended into full integers.
// Trailing bytes that do not form a complete sample are dropped.
func Decode(data []byte, depth Depth, channels, sampleRate int) (*Buffer, error) {
	if !depth.Valid() {
		return nil, fmt.Errorf("decode: %w", ErrUnsupportedDepth)
	}
	if channels < 1 {
		channels = 1
	}

	width := depth.Bytes()
	count := len(data) / width
	samples := make([]int, count)

	switch depth {
	case Depth8:
		for i := 0; i < count; i++ {
			samples[i] = int(data[i])
		}
	case Depth16:
		for i := 0; i < count; i++ {
			samples[i] = int(int16(binary.LittleEndian.Uint16(data[2*i:])))
		}
	case Depth24:
		for i := 0; i < count; i++ {
			b := data[3*i : 3*i+3]
			v := uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16
			// Sign-extend when the top bit of the third byte is set.
			if b[2]&0x80 != 0 {
				v |= 0xFF << 24
			}
			samples[i] = int(int32(v))
		}
	case Depth32:
		for i := 0; i < count; i++ {
			samples[i] = int(int32(binary.LittleEndian.Uint32(data[4*i:])))
		}
	}

	return &Buffer{
		Depth:      depth,
		Channels:   channels,
		SampleRate: sampleRate,
		Data:       samples,
	}, nil
}

// Encode packs the buffer back into little-endian sample bytes, the exact
// inverse of Decode. 24-bit samples are truncated to their low three bytes
// of the two's-complement representation, which round-trips negative values.
func Encode(b *Buffer) ([]byte, error) {
	if !b.Depth.Valid() {
		return nil, fmt.Errorf("encode: %w", ErrUnsupportedDepth)
	}

	width := b.Depth.Bytes()
	out := make([]byte, len(b.Data)*width)

	switch b.Depth {
	case Depth8:
		for i, s := range b.Data {
			out[i] = byte(s)
		}
	case Depth16:
		for i, s := range b.Data {
			binary.LittleEndian.PutUint16(out[2*i:], uint16(int16(s)))
		}
	case Depth24:
		for i, s := range b.Data {
			v := uint32(int32(s))
			out[3*i] = byte(v)
			out[3*i+1] = byte(v >> 8)
			out[3*i+2] = byte(v >> 16)
		}
	case Depth32:
		for i, s := range b.Data {
			binary.LittleEndian.PutUint32(out[4*i:], uint32(int32(s)))
		}
	}

	return out, nil
}
