package aiff

import (
	"fmt"
	"io"
	"os"

	goaiff "github.com/go-audio/aiff"
	"github.com/ik5/sampletrim/pcm"
)

// Decode reads a complete PCM AIFF stream into a pcm.Buffer. Chunk parsing
// and the big-endian sample order are handled by github.com/go-audio/aiff.
// 8-bit AIFF stores signed samples, which clashes with the module's
// unsigned 8-bit convention, so only 16, 24 and 32-bit files are accepted.
func Decode(r io.ReadSeeker) (*pcm.Buffer, error) {
	dec := goaiff.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}

	depth, err := pcm.ParseDepth(int(dec.BitDepth))
	if err != nil {
		return nil, fmt.Errorf("aiff decode: %w", err)
	}
	if depth == pcm.Depth8 {
		return nil, fmt.Errorf("aiff decode: %w", Err8BitNotSupported)
	}

	ib, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("aiff decode: %w", err)
	}

	buf, err := pcm.FromIntBuffer(ib, depth)
	if err != nil {
		return nil, fmt.Errorf("aiff decode: %w", err)
	}
	if buf.SampleRate == 0 {
		buf.SampleRate = int(dec.SampleRate)
	}
	return buf, nil
}

// Encode writes the buffer as a PCM AIFF stream. As with Decode, 8-bit
// buffers are rejected.
func Encode(w io.WriteSeeker, buf *pcm.Buffer) error {
	if !buf.Depth.Valid() {
		return fmt.Errorf("aiff encode: %w", pcm.ErrUnsupportedDepth)
	}
	if buf.Depth == pcm.Depth8 {
		return fmt.Errorf("aiff encode: %w", Err8BitNotSupported)
	}

	enc := goaiff.NewEncoder(w, buf.SampleRate, int(buf.Depth), buf.Channels)
	if err := enc.Write(buf.AsIntBuffer()); err != nil {
		return fmt.Errorf("aiff encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("aiff encode: %w", err)
	}
	return nil
}

// ReadFile decodes an AIFF file from disk.
func ReadFile(path string) (*pcm.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("aiff read %s: %w", path, err)
	}
	defer f.Close()

	buf, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("aiff read %s: %w", path, err)
	}
	return buf, nil
}

// WriteFile encodes the buffer into an AIFF file, creating or truncating it.
func WriteFile(path string, buf *pcm.Buffer) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("aiff write %s: %w", path, err)
	}

	if err := Encode(f, buf); err != nil {
		f.Close()
		return fmt.Errorf("aiff write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("aiff write %s: %w", path, err)
	}
	return nil
}
