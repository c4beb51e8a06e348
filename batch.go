package sampletrim

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FileReport is the outcome of one file inside a directory operation.
// Failures are carried here instead of aborting the batch, so callers can
// report per-file success the way the CLI does.
type FileReport struct {
	Input  string
	Output string
	Err    error

	// Reduction is set by trim batches: the removed fraction of frames.
	Reduction float64
	// Silent is set by normalize batches when the input held no signal.
	Silent bool
}

// BatchResult aggregates the per-file reports of a directory operation.
type BatchResult struct {
	Reports []FileReport
}

func (b BatchResult) Succeeded() int {
	n := 0
	for _, r := range b.Reports {
		if r.Err == nil {
			n++
		}
	}
	return n
}

func (b BatchResult) Failed() int { return len(b.Reports) - b.Succeeded() }

// listAudioFiles returns the supported audio files of a directory, sorted
// for deterministic batch order.
func listAudioFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !SupportedFile(e.Name()) {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	sort.Strings(files)
	return files, nil
}

// withSuffix inserts a suffix before the file extension:
// "kick.wav" + "_trimmed" -> "kick_trimmed.wav".
func withSuffix(path, suffix string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + suffix + ext
}
