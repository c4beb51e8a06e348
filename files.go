package sampletrim

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ik5/sampletrim/formats/aiff"
	"github.com/ik5/sampletrim/formats/wav"
	"github.com/ik5/sampletrim/pcm"
)

// SupportedFile reports whether the path carries a container extension this
// module reads and writes.
func SupportedFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav", ".aiff", ".aif":
		return true
	}
	return false
}

// ReadFile decodes a WAV or AIFF file, chosen by extension.
func ReadFile(path string) (*pcm.Buffer, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		return wav.ReadFile(path)
	case ".aiff", ".aif":
		return aiff.ReadFile(path)
	}
	return nil, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
}

// WriteFile encodes the buffer into a WAV or AIFF file, chosen by the
// output path's extension.
func WriteFile(path string, buf *pcm.Buffer) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		return wav.WriteFile(path, buf)
	case ".aiff", ".aif":
		return aiff.WriteFile(path, buf)
	}
	return fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
}
