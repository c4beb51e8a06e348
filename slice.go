package sampletrim

import (
	"fmt"
	"path/filepath"

	"github.com/ik5/sampletrim/dsp"
)

// SliceFile cuts an audio file into bar-length segments at the given tempo
// and writes them as numbered files: prefix_01.wav, prefix_02.wav and so
// on, using the input's container format. It returns the written paths.
func SliceFile(inputPath, outputPrefix string, bpm, barsPerSlice int) ([]string, error) {
	buf, err := ReadFile(inputPath)
	if err != nil {
		return nil, err
	}

	segments, err := dsp.Slice(buf, bpm, barsPerSlice)
	if err != nil {
		return nil, fmt.Errorf("slice %s: %w", inputPath, err)
	}

	ext := filepath.Ext(inputPath)
	var written []string
	for i, seg := range segments {
		path := fmt.Sprintf("%s_%02d%s", outputPrefix, i+1, ext)
		if err := WriteFile(path, seg); err != nil {
			return written, err
		}
		written = append(written, path)
	}
	return written, nil
}
