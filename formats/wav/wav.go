package wav

import (
	"fmt"
	"io"
	"os"

	gowav "github.com/go-audio/wav"
	"github.com/ik5/sampletrim/pcm"
)

// Decode reads a complete PCM WAV stream into a pcm.Buffer. The container
// headers are handled by github.com/go-audio/wav; only the sample payload
// ends up in the buffer.
func Decode(r io.ReadSeeker) (*pcm.Buffer, error) {
	dec := gowav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}

	depth, err := pcm.ParseDepth(int(dec.BitDepth))
	if err != nil {
		return nil, fmt.Errorf("wav decode: %w", err)
	}

	ib, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("wav decode: %w", err)
	}

	buf, err := pcm.FromIntBuffer(ib, depth)
	if err != nil {
		return nil, fmt.Errorf("wav decode: %w", err)
	}
	if buf.SampleRate == 0 {
		buf.SampleRate = int(dec.SampleRate)
	}
	return buf, nil
}

// Encode writes the buffer as a PCM WAV stream at its own sample rate, bit
// depth and channel count.
func Encode(w io.WriteSeeker, buf *pcm.Buffer) error {
	if !buf.Depth.Valid() {
		return fmt.Errorf("wav encode: %w", pcm.ErrUnsupportedDepth)
	}

	enc := gowav.NewEncoder(w, buf.SampleRate, int(buf.Depth), buf.Channels, 1)
	if err := enc.Write(buf.AsIntBuffer()); err != nil {
		return fmt.Errorf("wav encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("wav encode: %w", err)
	}
	return nil
}

// ReadFile decodes a WAV file from disk.
func ReadFile(path string) (*pcm.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("wav read %s: %w", path, err)
	}
	defer f.Close()

	buf, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("wav read %s: %w", path, err)
	}
	return buf, nil
}

// WriteFile encodes the buffer into a WAV file, creating or truncating it.
func WriteFile(path string, buf *pcm.Buffer) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("wav write %s: %w", path, err)
	}

	if err := Encode(f, buf); err != nil {
		f.Close()
		return fmt.Errorf("wav write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("wav write %s: %w", path, err)
	}
	return nil
}
