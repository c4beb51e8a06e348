package sampletrim

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/sampletrim/dsp"
)

// ChannelPair is a matched left/right mono file pair and the stereo path
// their join will be written to.
type ChannelPair struct {
	Left   string
	Right  string
	Output string
}

// JoinFiles interleaves two mono audio files into one stereo file. Both
// inputs must be mono and share sample rate and bit depth; the result is
// truncated to the shorter input.
func JoinFiles(leftPath, rightPath, outputPath string) error {
	left, err := ReadFile(leftPath)
	if err != nil {
		return err
	}
	right, err := ReadFile(rightPath)
	if err != nil {
		return err
	}

	stereo, err := dsp.JoinStereo(left, right)
	if err != nil {
		return fmt.Errorf("join %s + %s: %w", leftPath, rightPath, err)
	}

	return WriteFile(outputPath, stereo)
}

// FindChannelPairs scans a directory for the "Name L.wav" / "Name R.wav"
// naming convention and pairs them up, with "Name_stereo.wav" as each
// pair's output. Left files without a matching right file are skipped.
func FindChannelPairs(dir string) ([]ChannelPair, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("find pairs: %w", err)
	}

	names := make(map[string]bool, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			names[e.Name()] = true
		}
	}

	var pairs []ChannelPair
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, " L.wav") {
			continue
		}
		base := strings.TrimSuffix(name, " L.wav")
		right := base + " R.wav"
		if !names[right] {
			continue
		}
		pairs = append(pairs, ChannelPair{
			Left:   filepath.Join(dir, name),
			Right:  filepath.Join(dir, right),
			Output: filepath.Join(dir, base+"_stereo.wav"),
		})
	}
	return pairs, nil
}

// JoinDir joins every matched L/R pair in the directory.
func JoinDir(dir string) (BatchResult, error) {
	pairs, err := FindChannelPairs(dir)
	if err != nil {
		return BatchResult{}, err
	}
	if len(pairs) == 0 {
		return BatchResult{}, fmt.Errorf("join dir %s: no matching L/R pairs: %w", dir, ErrNoFiles)
	}

	var batch BatchResult
	for _, p := range pairs {
		err := JoinFiles(p.Left, p.Right, p.Output)
		batch.Reports = append(batch.Reports, FileReport{
			Input:  p.Left,
			Output: p.Output,
			Err:    err,
		})
	}
	return batch, nil
}
