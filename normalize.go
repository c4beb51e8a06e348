// SPDX-License-Identifier: EPL-2.0

package sampletrim

import (
	"fmt"

	"github.com/ik5/sampletrim/dsp"
)

// DefaultTargetPeakDB is the peak level file normalization aims for when
// the caller has no opinion: just below full scale.
const DefaultTargetPeakDB = -0.1

// NormalizeFile reads an audio file, rescales it so its peak hits
// targetPeakDB and writes the result. A silent input is written unchanged
// and flagged in the result rather than failing.
func NormalizeFile(inputPath, outputPath string, targetPeakDB float64) (dsp.NormalizeResult, error) {
	buf, err := ReadFile(inputPath)
	if err != nil {
		return dsp.NormalizeResult{}, err
	}

	res, err := dsp.Normalize(buf, targetPeakDB)
	if err != nil {
		return dsp.NormalizeResult{}, fmt.Errorf("normalize %s: %w", inputPath, err)
	}

	if err := WriteFile(outputPath, res.Buffer); err != nil {
		return dsp.NormalizeResult{}, err
	}
	return res, nil
}

// NormalizeDir normalizes every supported audio file in dir, writing each
// result alongside its source with a "_normalized" suffix.
func NormalizeDir(dir string, targetPeakDB float64) (BatchResult, error) {
	files, err := listAudioFiles(dir)
	if err != nil {
		return BatchResult{}, fmt.Errorf("normalize dir: %w", err)
	}
	if len(files) == 0 {
		return BatchResult{}, fmt.Errorf("normalize dir %s: %w", dir, ErrNoFiles)
	}

	var batch BatchResult
	for _, input := range files {
		output := withSuffix(input, "_normalized")
		res, err := NormalizeFile(input, output, targetPeakDB)
		batch.Reports = append(batch.Reports, FileReport{
			Input:  input,
			Output: output,
			Err:    err,
			Silent: res.Silent,
		})
	}
	return batch, nil
}
