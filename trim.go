// SPDX-License-Identifier: EPL-2.0

package sampletrim

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ik5/sampletrim/dsp"
)

// TrimFile reads an audio file, removes its trailing silence and writes the
// result. Input and output formats are each chosen by extension, so a WAV
// can be trimmed into an AIFF and vice versa. Nothing is written when the
// trim fails.
func TrimFile(inputPath, outputPath string, opts dsp.TrimOptions) (dsp.TrimResult, error) {
	buf, err := ReadFile(inputPath)
	if err != nil {
		return dsp.TrimResult{}, err
	}

	res, err := dsp.Trim(buf, opts)
	if err != nil {
		return dsp.TrimResult{}, fmt.Errorf("trim %s: %w", inputPath, err)
	}

	if err := WriteFile(outputPath, res.Buffer); err != nil {
		return dsp.TrimResult{}, err
	}
	return res, nil
}

// TrimDir trims every supported audio file in dir, writing each result next
// to its source (or under outDir when non-empty) with a "_trimmed" suffix.
// Per-file failures land in the reports; only an unreadable directory is an
// error.
func TrimDir(dir, outDir string, opts dsp.TrimOptions) (BatchResult, error) {
	files, err := listAudioFiles(dir)
	if err != nil {
		return BatchResult{}, fmt.Errorf("trim dir: %w", err)
	}
	if len(files) == 0 {
		return BatchResult{}, fmt.Errorf("trim dir %s: %w", dir, ErrNoFiles)
	}
	if outDir == "" {
		outDir = dir
	} else if err := os.MkdirAll(outDir, 0o755); err != nil {
		return BatchResult{}, fmt.Errorf("trim dir: %w", err)
	}

	var batch BatchResult
	for _, input := range files {
		output := filepath.Join(outDir, filepath.Base(withSuffix(input, "_trimmed")))
		res, err := TrimFile(input, output, opts)
		batch.Reports = append(batch.Reports, FileReport{
			Input:     input,
			Output:    output,
			Err:       err,
			Reduction: res.Reduction,
		})
	}
	return batch, nil
}
