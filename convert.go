package sampletrim

import (
	"fmt"
	"os/exec"
	"strconv"
)

// ffmpegBin is the transcoding tool conversion delegates to. Tests point it
// elsewhere.
var ffmpegBin = "ffmpeg"

// ConvertFile rewrites an audio file at a new sample rate and bit depth by
// delegating to ffmpeg. Resampling is deliberately not implemented in this
// module; the external tool owns that concern.
func ConvertFile(inputPath, outputPath string, sampleRate, bitDepth int) error {
	cmd := exec.Command(ffmpegBin,
		"-i", inputPath,
		"-ar", strconv.Itoa(sampleRate),
		"-sample_fmt", fmt.Sprintf("s%d", bitDepth),
		"-y",
		outputPath,
	)

	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("convert %s: %w: %s", inputPath, err, out)
	}
	return nil
}

// ConvertDir converts every supported audio file in dir, writing each
// result alongside its source with a "_converted" suffix.
func ConvertDir(dir string, sampleRate, bitDepth int) (BatchResult, error) {
	files, err := listAudioFiles(dir)
	if err != nil {
		return BatchResult{}, fmt.Errorf("convert dir: %w", err)
	}
	if len(files) == 0 {
		return BatchResult{}, fmt.Errorf("convert dir %s: %w", dir, ErrNoFiles)
	}

	var batch BatchResult
	for _, input := range files {
		output := withSuffix(input, "_converted")
		err := ConvertFile(input, output, sampleRate, bitDepth)
		batch.Reports = append(batch.Reports, FileReport{
			Input:  input,
			Output: output,
			Err:    err,
		})
	}
	return batch, nil
}
